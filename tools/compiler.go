// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tools contains helpers shared by the llvmbind command: the
// environment variable registry, clang invocation to produce textual IR from C
// sources, the native LLVM version check and small file wrappers.
package tools

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"llvmbind/logger"
)

var (
	reIsC  = regexp.MustCompile(`\.(c|C|cc|cpp|cxx)$`)
	reIsIR = regexp.MustCompile(`\.(ll|bc)$`)
)

// IsSource reports whether fn must be compiled before it can be loaded.
func IsSource(fn string) bool { return reIsC.MatchString(fn) }

// IsIR reports whether fn holds textual IR or bitcode.
func IsIR(fn string) bool { return reIsIR.MatchString(fn) }

// Compile calls the compiler cmd (e.g. ["clang"]) and creates a textual LLVM
// IR module ofile from the source src.
func Compile(ctx context.Context, cmd, cflags []string, src, ofile string) error {
	if len(cmd) == 0 {
		return errors.New("no compiler command")
	}
	opts := append([]string{}, cflags...)
	opts = append(opts,
		"-Xclang", "-disable-O0-optnone",
		"-S", "-emit-llvm",
		"-o", ofile,
		src,
	)
	args := append(append([]string{}, cmd[1:]...), opts...)

	logger.Infof("Compiling '%s'", src)
	logger.Debugf("%v %v", cmd[0], strings.Join(args, " "))
	out, err := RunCmdContext(ctx, cmd[0], args, nil)
	logger.Debugf("%v", out)
	return err
}
