// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the llvmbind program: it loads, verifies, inspects and
// round-trips LLVM modules through the native binding.
package main

import (
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"llvmbind/config"
	"llvmbind/inspect"
	"llvmbind/logger"
	"llvmbind/ownership"
	"llvmbind/tools"
)

var rootCmd = cobra.Command{
	Use:           "llvmbind",
	Short:         "Load, verify and inspect LLVM modules through the native LLVM-C library",
	SilenceUsage:  true,
	SilenceErrors: true,

	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Println("run 'llvmbind -h' for help")
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if n := ownership.Default.ReportLeaks(); n > 0 {
			logger.Warnf("%d native objects were not released", n)
		}
	},
}

var rootFlags struct {
	log    string
	debug  bool
	quiet  bool
	config string
	color  string
}

// cfg is the configuration of the running command, set up by setup.
var cfg = config.Default()

func init() {
	helpMessage := `llvmbind -- memory-safe access to LLVM modules`

	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", "", "log level (ERROR|WARN|INFO|DEBUG)")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "do not produce output")
	flags.StringVar(&rootFlags.config, "config", "", "configuration file (default \""+config.DefaultFile+"\" if present)")
	flags.StringVar(&rootFlags.color, "color", "", "colored output (auto|always|never)")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func setup(cmd *cobra.Command) error {
	c, err := config.Load(rootFlags.config)
	if err != nil {
		return verror(usageError, err)
	}
	if rootFlags.log != "" {
		c.Log = rootFlags.log
	}
	if rootFlags.color != "" {
		c.Color = rootFlags.color
	}
	if err := c.Validate(); err != nil {
		return verror(usageError, err)
	}
	cfg = c

	level, _ := logger.ParseLevel(cfg.Log)
	if rootFlags.debug {
		level = logger.DEBUG
	}
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())
	if rootFlags.quiet {
		logger.SetOutput(nil)
	}
	return nil
}

// printer returns a report printer for the command output.
func printer(cmd *cobra.Command, format inspect.Format) *inspect.Printer {
	out := cmd.OutOrStdout()
	color := cfg.Color == "always"
	if cfg.Color == "auto" {
		if f, ok := out.(*os.File); ok {
			color = inspect.IsTerminal(f)
		}
	}
	return &inspect.Printer{Out: out, Format: format, Color: color}
}

var reExitStatus = regexp.MustCompile("^exit status [0-9]+$")

func main() {
	if err := rootCmd.Execute(); err != nil {
		var (
			code = getErrorCode(err)
			msg  = getErrorMessage(err)
		)
		if match := reExitStatus.MatchString(msg); !match && msg != "" {
			logger.SetLevel(logger.ERROR)
			logger.Error(msg)
		}
		os.Exit(code)
	}
}
