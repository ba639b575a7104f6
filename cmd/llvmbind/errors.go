// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os/exec"

	"llvmbind/llvm"
)

type errorType int

const (
	noError       errorType = 0
	internalError errorType = 1
	checkFail     errorType = 2
	usageError    errorType = 3
)

func (t errorType) String() string {
	switch t {
	case noError:
		return "noError"
	case internalError:
		return "internalError"
	case checkFail:
		return "checkFail"
	case usageError:
		return "usageError"
	default:
		return fmt.Sprintf("errorType(%d)", int(t))
	}
}

type vError struct {
	typ errorType
	err error
}

func (e *vError) Error() string {
	if e.err == nil {
		return e.typ.String()
	}
	return e.err.Error()
}

func (e *vError) Unwrap() error { return e.err }

func (e *vError) Code() int {
	return int(e.typ)
}

func verror(typ errorType, err error) *vError {
	return &vError{
		typ: typ,
		err: err,
	}
}

// vfail wraps a check result: a module that failed to parse, verify or
// round-trip is a check failure, anything else is internal.
func vfail(err error) *vError {
	var (
		parse  *llvm.IRParseError
		verify *llvm.VerificationError
		link   *llvm.LinkError
	)
	switch {
	case errors.As(err, &parse), errors.As(err, &verify), errors.As(err, &link):
		return verror(checkFail, err)
	default:
		return verror(internalError, err)
	}
}

func getErrorType(err error) errorType {
	if err == nil {
		return noError
	}
	var e *vError
	if errors.As(err, &e) {
		return e.typ
	}
	return internalError
}

func getErrorCode(err error) int {
	if err == nil {
		return 0
	}
	var (
		e    *vError
		exit *exec.ExitError
	)
	switch {
	case errors.As(err, &e):
		return e.Code()
	case errors.As(err, &exit):
		return exit.ExitCode()
	default:
		return int(internalError)
	}
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
