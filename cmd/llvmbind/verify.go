// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"llvmbind/config"
	"llvmbind/enum"
	"llvmbind/inspect"
	"llvmbind/llvm"
	"llvmbind/logger"
)

var verifyFlags = struct {
	jobs       int
	crossCheck bool
}{}

var verifyCmd = cobra.Command{
	Use:   "verify [flags] <input.ll|input.bc|input.c>...",
	Short: "Verifies modules, several files at a time",
	Args:  IsArgsn,
	RunE:  verifyRun,

	DisableFlagsInUseLine: true,
}

func init() {
	flags := verifyCmd.Flags()
	flags.IntVarP(&verifyFlags.jobs, "jobs", "j", 0, "files verified concurrently (default from configuration)")
	addCrossCheckFlag(flags, &verifyFlags.crossCheck)
	rootCmd.AddCommand(&verifyCmd)
}

func addCrossCheckFlag(flags *pflag.FlagSet, p *bool) {
	flags.BoolVar(p, "cross-check", false, "compare the native view with an independent parse of the printed text")
}

func verifyRun(cmd *cobra.Command, args []string) error {
	jobs := cfg.Jobs
	if verifyFlags.jobs > 0 {
		jobs = verifyFlags.jobs
	}
	action, err := cfg.Action()
	if err != nil {
		return verror(usageError, err)
	}

	// Every file gets its own context, so the workers share no native state.
	results := make([]error, len(args))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, fn := range args {
		i, fn := i, fn
		job := cfg.Copy()
		job.CrossCheck = job.CrossCheck || verifyFlags.crossCheck
		g.Go(func() error {
			results[i] = verifyFile(gctx, fn, job, action)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return verror(internalError, err)
	}

	var (
		p      = printer(cmd, inspect.Text)
		failed = 0
		worst  = noError
	)
	for i, fn := range args {
		if err := p.Result(fn, results[i]); err != nil {
			return verror(internalError, err)
		}
		if results[i] == nil {
			continue
		}
		failed++
		if t := vfail(results[i]).typ; t == internalError || worst == noError {
			worst = t
		}
	}
	if failed == 0 {
		return nil
	}
	return verror(worst, fmt.Errorf("%d of %d modules failed", failed, len(args)))
}

func verifyFile(cctx context.Context, fn string, c config.Config, action enum.VerifierFailureAction) error {
	return withModule(cctx, fn, c, func(m *llvm.Module) error {
		if err := m.Verify(action); err != nil {
			return err
		}
		if !c.CrossCheck {
			return nil
		}
		diff, err := inspect.CrossCheck(m)
		if inspect.Skipped(err) {
			logger.Warnf("%s: %v", fn, err)
			return nil
		}
		if err != nil {
			return err
		}
		if len(diff) > 0 {
			return &llvm.VerificationError{
				Subject: "cross-check of " + fn,
				Message: fmt.Sprintf("%d differences, first: %v", len(diff), diff[0]),
			}
		}
		return nil
	})
}
