// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"llvmbind/config"
	"llvmbind/irtext"
	"llvmbind/llvm"
	"llvmbind/logger"
	"llvmbind/tools"
)

// IsArgsn ensures there are 1 or more arguments of a known kind
func IsArgsn(_ *cobra.Command, args []string) error {
	if len(args) < 1 {
		return verror(usageError, fmt.Errorf("no input file specified"))
	}
	for _, fn := range args {
		if !known(fn) {
			return verror(usageError, unsupportedInput(fn))
		}
	}
	if err := tools.FilesExist(args); err != nil {
		return verror(usageError, err)
	}
	return nil
}

// loadModule reads fn into a new module owned by the caller. C sources are
// compiled to a temporary IR file first, bitcode is recognized by its suffix.
func loadModule(cctx context.Context, ctx *llvm.Context, fn string, c config.Config) (*llvm.Module, error) {
	logger.Infof("Load '%s'", fn)
	switch {
	case tools.IsSource(fn):
		ll, err := tools.Touch("", "llvmbind-*.ll")
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := tools.Remove(ll); err != nil {
				logger.Warnf("could not remove '%s': %v", ll, err)
			}
		}()
		if err := tools.Compile(cctx, c.Clang, c.CFlags, fn, ll); err != nil {
			return nil, err
		}
		return llvm.ParseIRFile(ll, ctx)
	case !tools.IsIR(fn):
		return nil, unsupportedInput(fn)
	case strings.HasSuffix(fn, ".bc"):
		buf, err := llvm.NewMemoryBufferFromFile(fn)
		if err != nil {
			return nil, err
		}
		defer buf.Close()
		return ctx.ParseBitcode(buf)
	default:
		return llvm.ParseIRFile(fn, ctx)
	}
}

func known(fn string) bool { return tools.IsSource(fn) || tools.IsIR(fn) }

func unsupportedInput(fn string) error {
	return fmt.Errorf("unsupported input '%s': expected .ll, .bc or C source", fn)
}

// withModule loads fn into a fresh context, runs f and releases both.
func withModule(cctx context.Context, fn string, c config.Config, f func(*llvm.Module) error) error {
	ctx := llvm.NewContext()
	defer ctx.Close()
	m, err := loadModule(cctx, ctx, fn, c)
	if err != nil {
		return err
	}
	defer m.Close()
	return f(m)
}

// skip drops the functions that the configuration hides from reports.
func skip(s *irtext.Summary, c config.Config) {
	kept := s.Functions[:0]
	for _, f := range s.Functions {
		if !c.Skipped(f.Name) {
			kept = append(kept, f)
		}
	}
	s.Functions = kept
}
