// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/BitReader.h>
#include <llvm-c/BitWriter.h>
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"

	"llvmbind/logger"
)

// ParseBitcode reads a bitcode module from buf into ctx, or into the global
// context when ctx is nil. The buffer stays owned by the caller. Malformed
// bitcode returns an *IRParseError carrying the native diagnostics.
func ParseBitcode(ctx *Context, buf *MemoryBuffer) (*Module, error) {
	if ctx == nil {
		ctx = GlobalContext()
	}
	if err := ctx.check(); err != nil {
		return nil, err
	}
	if err := buf.owner.Check(); err != nil {
		return nil, err
	}
	var m C.LLVMModuleRef
	diag := captureDiagnostics(ctx.c)
	failed := C.LLVMParseBitcodeInContext2(ctx.c, buf.b, &m) != 0
	text, errs := diag.finish()
	if failed || errs > 0 {
		if m != nil {
			C.LLVMDisposeModule(m)
		}
		if text == "" {
			text = "invalid bitcode"
		}
		err := &IRParseError{Source: buf.name, Message: text}
		logger.Debugf("llvm: %v", err)
		return nil, err
	}
	return ownModule(m, ctx.c)
}

// ParseBitcode reads a bitcode module from buf into the context.
func (c *Context) ParseBitcode(buf *MemoryBuffer) (*Module, error) {
	return ParseBitcode(c, buf)
}

// WriteBitcode serializes the module into a new caller-owned buffer.
func (m *Module) WriteBitcode() (*MemoryBuffer, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	id, err := m.Identifier()
	if err != nil {
		return nil, err
	}
	return ownBuffer(C.LLVMWriteBitcodeToMemoryBuffer(m.m), id), nil
}

// WriteBitcodeToFile serializes the module into the file at path.
func (m *Module) WriteBitcodeToFile(path string) error {
	if err := m.check(); err != nil {
		return err
	}
	rc := withCString(path, func(p *C.char) C.int {
		return C.LLVMWriteBitcodeToFile(m.m, p)
	})
	if rc != 0 {
		return fmt.Errorf("write bitcode to %s failed", path)
	}
	return nil
}
