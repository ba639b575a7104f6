// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

import (
	"fmt"

	"llvmbind/ownership"
)

// UseAfterFreeError is returned when a handle is used after its owner was
// closed, or after its object was handed over to the native library.
type UseAfterFreeError = ownership.UseAfterFreeError

// ConstructionError reports arguments that cannot describe a valid native
// type or value. Nothing is allocated when it is returned.
type ConstructionError struct {
	Op     string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// IndexError reports an out-of-range structural access.
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Len)
}

// PositionError is returned by Builder emission methods before the builder
// was positioned.
type PositionError struct {
	Op string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: builder is not positioned", e.Op)
}

// IRParseError carries the diagnostic of the native IR or bitcode reader.
type IRParseError struct {
	Source  string
	Message string
}

func (e *IRParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("parse error: %s", e.Message)
	}
	return fmt.Sprintf("%s: parse error: %s", e.Source, e.Message)
}

// VerificationError reports a module or function that failed the native
// structural verifier. Message is empty for functions, whose verifier does
// not return text.
type VerificationError struct {
	Subject string
	Message string
}

func (e *VerificationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("verification of %s failed", e.Subject)
	}
	return fmt.Sprintf("verification of %s failed:\n%s", e.Subject, e.Message)
}

// LinkError carries the diagnostics of a failed module link.
type LinkError struct {
	Message string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link failed: %s", e.Message)
}

func constructionErrorf(op, format string, args ...any) error {
	return &ConstructionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
