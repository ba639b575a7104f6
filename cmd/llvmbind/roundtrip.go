// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"llvmbind/inspect"
	"llvmbind/irtext"
	"llvmbind/llvm"
	"llvmbind/logger"
	"llvmbind/tools"
)

var roundtripFlags = struct {
	outputFn string
	bitcode  string
}{}

var roundtripCmd = cobra.Command{
	Use:   "roundtrip [flags] <input.ll|input.bc|input.c>...",
	Short: "Prints and re-reads modules as text and bitcode and compares the results",
	Args:  IsArgsn,
	RunE:  roundtripRun,

	DisableFlagsInUseLine: true,
}

func init() {
	flags := roundtripCmd.Flags()
	flags.StringVarP(&roundtripFlags.outputFn, "output", "o", "", "write the printed module to this file (single input only)")
	flags.StringVar(&roundtripFlags.bitcode, "emit-bc", "", "write the module as bitcode to this file (single input only)")
	rootCmd.AddCommand(&roundtripCmd)
}

func roundtripRun(cmd *cobra.Command, args []string) error {
	if len(args) > 1 && (roundtripFlags.outputFn != "" || roundtripFlags.bitcode != "") {
		return verror(usageError, fmt.Errorf("--output and --emit-bc take a single input"))
	}
	var (
		p      = printer(cmd, inspect.Text)
		failed = 0
	)
	for _, fn := range args {
		err := withModule(cmd.Context(), fn, cfg, func(m *llvm.Module) error {
			return roundtrip(m)
		})
		if err := p.Result(fn, err); err != nil {
			return verror(internalError, err)
		}
		if err != nil {
			if vfail(err).typ == internalError {
				return vfail(err)
			}
			failed++
		}
	}
	if failed > 0 {
		return verror(checkFail, fmt.Errorf("%d of %d modules did not survive the round trip", failed, len(args)))
	}
	return nil
}

// roundtrip compares the shape of m with the modules obtained by printing it
// and parsing the text, by writing and reading bitcode, and by parsing the
// text without the native library.
func roundtrip(m *llvm.Module) error {
	want, err := inspect.Summarize(m)
	if err != nil {
		return err
	}
	other := llvm.NewContext()
	defer other.Close()

	text, err := llvm.ParseAssembly(m.String(), other)
	if err != nil {
		return err
	}
	defer text.Close()
	if err := compare("text", want, text); err != nil {
		return err
	}

	buf, err := m.WriteBitcode()
	if err != nil {
		return err
	}
	defer buf.Close()
	bc, err := other.ParseBitcode(buf)
	if err != nil {
		return err
	}
	defer bc.Close()
	if err := compare("bitcode", want, bc); err != nil {
		return err
	}

	diff, err := inspect.CrossCheck(m)
	switch {
	case inspect.Skipped(err):
		logger.Infof("roundtrip: %s: %v", want.Source, err)
	case err != nil:
		return err
	default:
		if err := differences("llir", diff); err != nil {
			return err
		}
	}

	if fn := roundtripFlags.outputFn; fn != "" {
		if err := tools.Dump(m, fn); err != nil {
			return err
		}
	}
	if fn := roundtripFlags.bitcode; fn != "" {
		if err := m.WriteBitcodeToFile(fn); err != nil {
			return err
		}
	}
	logger.Debugf("roundtrip: %s survived", want.Source)
	return nil
}

func compare(how string, want *irtext.Summary, m *llvm.Module) error {
	action, err := cfg.Action()
	if err != nil {
		return err
	}
	if err := m.Verify(action); err != nil {
		return err
	}
	got, err := inspect.Summarize(m)
	if err != nil {
		return err
	}
	return differences(how, irtext.Diff(want, got))
}

func differences(how string, diff []irtext.Difference) error {
	if len(diff) == 0 {
		return nil
	}
	var lines []string
	for _, d := range diff {
		lines = append(lines, d.String())
	}
	return &llvm.VerificationError{
		Subject: how + " round trip",
		Message: strings.Join(lines, "\n"),
	}
}
