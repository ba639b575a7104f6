// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <llvm-c/Linker.h>
#include <stdlib.h>
*/
import "C"

import (
	"llvmbind/logger"
	"llvmbind/ownership"
)

// Link merges src into m. Both modules must live in the same context and src
// must be owned by the caller. The native linker destroys src whether or not
// linking succeeds, so src is inert afterwards. Conflicting definitions
// return a *LinkError carrying the native diagnostics.
func (m *Module) Link(src *Module) error {
	if err := m.check(); err != nil {
		return err
	}
	if src == nil {
		return constructionErrorf("Link", "nil source module")
	}
	if src.owner == nil {
		return ownership.ErrNotOwned
	}
	if err := src.owner.Check(); err != nil {
		return err
	}
	if m.m == src.m {
		return constructionErrorf("Link", "cannot link a module into itself")
	}
	if m.context() != src.context() {
		return constructionErrorf("Link", "modules belong to different contexts")
	}
	if err := src.owner.Transfer(); err != nil {
		return err
	}
	forgetModule(src.m)
	orphanBlocks(src.m)
	diag := captureDiagnostics(m.context())
	failed := C.LLVMLinkModules2(m.m, src.m) != 0
	text, _ := diag.finish()
	src.dropLease()
	if failed {
		if text == "" {
			text = "modules could not be linked"
		}
		logger.Debugf("llvm: link failed: %s", text)
		return &LinkError{Message: text}
	}
	return nil
}
