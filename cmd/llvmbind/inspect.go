// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"llvmbind/inspect"
	"llvmbind/llvm"
)

var inspectFlags = struct {
	format     string
	crossCheck bool
}{}

var inspectCmd = cobra.Command{
	Use:   "inspect [flags] <input.ll|input.bc|input.c>...",
	Short: "Prints the globals, functions and blocks of modules",
	Args:  IsArgsn,
	RunE:  inspectRun,

	DisableFlagsInUseLine: true,
}

func init() {
	flags := inspectCmd.Flags()
	flags.StringVarP(&inspectFlags.format, "format", "f", "", "report format text|yaml|json (default from configuration)")
	addCrossCheckFlag(flags, &inspectFlags.crossCheck)
	rootCmd.AddCommand(&inspectCmd)
}

func inspectRun(cmd *cobra.Command, args []string) error {
	name := cfg.Format
	if inspectFlags.format != "" {
		name = inspectFlags.format
	}
	format, err := inspect.ParseFormat(name)
	if err != nil {
		return verror(usageError, err)
	}
	var (
		p          = printer(cmd, format)
		crossCheck = cfg.CrossCheck || inspectFlags.crossCheck
		disagree   = 0
	)
	for _, fn := range args {
		err := withModule(cmd.Context(), fn, cfg, func(m *llvm.Module) error {
			s, err := inspect.Summarize(m)
			if err != nil {
				return err
			}
			skip(s, cfg)
			if err := p.Summary(s); err != nil {
				return err
			}
			if !crossCheck {
				return nil
			}
			diff, err := inspect.CrossCheck(m)
			if inspect.Skipped(err) {
				return p.Skipped(fn, err)
			}
			if err != nil {
				return err
			}
			ok, err := p.Differences(fn, diff)
			if !ok {
				disagree++
			}
			return err
		})
		if err != nil {
			return vfail(err)
		}
	}
	if disagree > 0 {
		return verror(checkFail, fmt.Errorf("%d modules disagree with their text form", disagree))
	}
	return nil
}
