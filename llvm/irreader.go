// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <llvm-c/IRReader.h>
#include <stdlib.h>
*/
import "C"

import (
	"llvmbind/logger"
)

// ParseIR parses textual IR from buf into a new module in ctx, or in the
// global context when ctx is nil.
//
// The buffer is handed to the native parser whether or not parsing
// succeeds: afterwards buf is inert and closing it returns
// ownership.ErrReleased. A malformed input returns an *IRParseError and
// never terminates the process.
func ParseIR(ctx *Context, buf *MemoryBuffer) (*Module, error) {
	if ctx == nil {
		ctx = GlobalContext()
	}
	if err := ctx.check(); err != nil {
		return nil, err
	}
	if err := buf.owner.Check(); err != nil {
		return nil, err
	}
	if err := buf.owner.Transfer(); err != nil {
		return nil, err
	}
	var m C.LLVMModuleRef
	var msg *C.char
	if C.LLVMParseIRInContext(ctx.c, buf.b, &m, &msg) != 0 {
		err := &IRParseError{Source: buf.name, Message: takeMessage(msg)}
		logger.Debugf("llvm: %v", err)
		return nil, err
	}
	return ownModule(m, ctx.c)
}

// ParseIR parses textual IR from buf into a new module in the context.
func (c *Context) ParseIR(buf *MemoryBuffer) (*Module, error) {
	return ParseIR(c, buf)
}

// ParseAssembly parses IR text into a new module in ctx, or in the global
// context when ctx is nil.
func ParseAssembly(text string, ctx *Context) (*Module, error) {
	return ParseIR(ctx, NewMemoryBufferFromString("<string>", text))
}

// ParseIRFile parses the textual IR file at path into a new module in ctx,
// or in the global context when ctx is nil.
func ParseIRFile(path string, ctx *Context) (*Module, error) {
	buf, err := NewMemoryBufferFromFile(path)
	if err != nil {
		return nil, err
	}
	return ParseIR(ctx, buf)
}
