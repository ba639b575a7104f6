// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"llvmbind/logger"
)

const fileMode = 0600

// Touch creates a new temporary file in dir with the given file pattern.
func Touch(dir, pattern string) (string, error) {
	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	if err := tmp.Close(); err != nil {
		logger.Warnf("error closing file: %v", err)
	}
	return tmp.Name(), nil
}

// RunCmdContext runs a command line with arguments and environment variable
// assignments and a context.
func RunCmdContext(ctx context.Context, cmdl string, args, env []string) (string, error) {
	logger.Debug(append(append(env, cmdl), args...))
	cmd := exec.CommandContext(ctx, cmdl, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()

	sout := string(out)
	if err == nil {
		return sout, nil
	}
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return sout, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// remove newline of output
		if end := len(sout); end > 0 && sout[end-1] == '\n' {
			sout = sout[:end-1]
		}
		if sout != "" {
			return sout, fmt.Errorf("%v: %s", err, sout)
		}
	}
	return sout, err
}

// FileExists returns nil if a file exists otherwise an error
func FileExists(fn string) error {
	st, err := os.Stat(fn)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("file does not exist: %s", fn)
	case err != nil:
		return err
	case st.IsDir():
		return fmt.Errorf("not a file: %s", fn)
	}
	return nil
}

// FilesExist returns the first FileExists error of fns.
func FilesExist(fns []string) error {
	for _, fn := range fns {
		if err := FileExists(fn); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes a file.
func Remove(fn string) error {
	logger.Debugf("Remove file '%s'", fn)
	return os.Remove(fn)
}

// Dump writes the printed form of m to a file.
func Dump(m fmt.Stringer, fn string) error {
	logger.Debugf("Dump file '%s'", fn)
	out, err := os.OpenFile(fn, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	_, err = fmt.Fprint(out, m)
	return err
}
