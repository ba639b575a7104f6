// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"llvmbind/llvm"
	"llvmbind/tools"
)

var (
	name    = "llvmbind"
	version = "latest"
)

var versionCmd = cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		native := llvm.VersionString()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\nLLVM %s\n", name, version, native)
		if err := tools.CheckLLVM(native, tools.GetEnv("LLVMBIND_LLVM_CONSTRAINT")); err != nil {
			return verror(internalError, err)
		}
		return nil
	},
}

func register() {
	rootCmd.AddCommand(&versionCmd)
}

func init() {
	versionCmd.SetHelpFunc(func(command *cobra.Command, strings []string) {})
	register()
}
