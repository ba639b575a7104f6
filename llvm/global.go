// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"llvmbind/enum"
)

// GlobalValue is a value at module scope: a function, variable, alias or
// ifunc.
type GlobalValue struct{ value }

// Module returns a borrowed view of the module the global belongs to.
func (g *GlobalValue) Module() (*Module, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	return viewModule(C.LLVMGetGlobalParent(g.v), g.ref), nil
}

// IsDeclaration reports whether the global has no definition in its module.
func (g *GlobalValue) IsDeclaration() (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	return C.LLVMIsDeclaration(g.v) != 0, nil
}

// ValueType returns the type of the object the global refers to.
func (g *GlobalValue) ValueType() (Type, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	t := C.LLVMGlobalGetValueType(g.v)
	return wrapType(t, contextRef(C.LLVMGetTypeContext(t))), nil
}

func (g *GlobalValue) Linkage() (enum.Linkage, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	return enum.Linkage(C.LLVMGetLinkage(g.v)), nil
}

func (g *GlobalValue) SetLinkage(l enum.Linkage) error {
	if err := g.check(); err != nil {
		return err
	}
	if err := member("SetLinkage", enum.LinkageTable, int64(l)); err != nil {
		return err
	}
	C.LLVMSetLinkage(g.v, C.LLVMLinkage(l))
	return nil
}

func (g *GlobalValue) Visibility() (enum.Visibility, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	return enum.Visibility(C.LLVMGetVisibility(g.v)), nil
}

func (g *GlobalValue) SetVisibility(v enum.Visibility) error {
	if err := g.check(); err != nil {
		return err
	}
	if err := member("SetVisibility", enum.VisibilityTable, int64(v)); err != nil {
		return err
	}
	C.LLVMSetVisibility(g.v, C.LLVMVisibility(v))
	return nil
}

func (g *GlobalValue) DLLStorageClass() (enum.DLLStorageClass, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	return enum.DLLStorageClass(C.LLVMGetDLLStorageClass(g.v)), nil
}

func (g *GlobalValue) SetDLLStorageClass(s enum.DLLStorageClass) error {
	if err := g.check(); err != nil {
		return err
	}
	if err := member("SetDLLStorageClass", enum.DLLStorageClassTable, int64(s)); err != nil {
		return err
	}
	C.LLVMSetDLLStorageClass(g.v, C.LLVMDLLStorageClass(s))
	return nil
}

func (g *GlobalValue) UnnamedAddr() (enum.UnnamedAddr, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	return enum.UnnamedAddr(C.LLVMGetUnnamedAddress(g.v)), nil
}

func (g *GlobalValue) SetUnnamedAddr(u enum.UnnamedAddr) error {
	if err := g.check(); err != nil {
		return err
	}
	if err := member("SetUnnamedAddr", enum.UnnamedAddrTable, int64(u)); err != nil {
		return err
	}
	C.LLVMSetUnnamedAddress(g.v, C.LLVMUnnamedAddr(u))
	return nil
}

// Section returns the object file section of the global, if any.
func (g *GlobalValue) Section() (string, error) {
	if err := g.check(); err != nil {
		return "", err
	}
	return C.GoString(C.LLVMGetSection(g.v)), nil
}

func (g *GlobalValue) SetSection(s string) error {
	if err := g.check(); err != nil {
		return err
	}
	cs := C.CString(s)
	defer freeCString(cs)
	C.LLVMSetSection(g.v, cs)
	return nil
}

// Alignment returns the explicit alignment in bytes, 0 if unset.
func (g *GlobalValue) Alignment() (int, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMGetAlignment(g.v)), nil
}

// SetAlignment sets the alignment in bytes; it must be a power of two.
func (g *GlobalValue) SetAlignment(bytes int) error {
	if err := g.check(); err != nil {
		return err
	}
	if err := validAlignment("SetAlignment", bytes); err != nil {
		return err
	}
	C.LLVMSetAlignment(g.v, C.unsigned(bytes))
	return nil
}

func validAlignment(op string, bytes int) error {
	if bytes < 0 || bytes&(bytes-1) != 0 || int64(bytes) > 1<<32 {
		return constructionErrorf(op, "alignment %d is not a power of two", bytes)
	}
	return nil
}

func member(op string, t *enum.Table, v int64) error {
	if _, ok := t.ByValue(v); !ok {
		return constructionErrorf(op, "%d is not a %s", v, t.Name)
	}
	return nil
}

// GlobalVariable is a module-level variable.
type GlobalVariable struct{ GlobalValue }

// Initializer returns the initial value, or nil for a declaration.
func (g *GlobalVariable) Initializer() (Value, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	return wrapValue(C.LLVMGetInitializer(g.v), g.ref), nil
}

// SetInitializer sets the initial value; init must be a constant of the
// global's value type.
func (g *GlobalVariable) SetInitializer(init Value) error {
	if err := g.check(); err != nil {
		return err
	}
	b, err := baseOf("SetInitializer", init)
	if err != nil {
		return err
	}
	if C.LLVMIsConstant(b.v) == 0 {
		return constructionErrorf("SetInitializer", "initializer is not a constant")
	}
	if C.LLVMTypeOf(b.v) != C.LLVMGlobalGetValueType(g.v) {
		return constructionErrorf("SetInitializer", "initializer type does not match the global")
	}
	C.LLVMSetInitializer(g.v, b.v)
	return nil
}

// IsGlobalConstant reports whether the variable is immutable.
func (g *GlobalVariable) IsGlobalConstant() (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	return C.LLVMIsGlobalConstant(g.v) != 0, nil
}

func (g *GlobalVariable) SetGlobalConstant(c bool) error {
	if err := g.check(); err != nil {
		return err
	}
	C.LLVMSetGlobalConstant(g.v, llvmBool(c))
	return nil
}

func (g *GlobalVariable) ThreadLocalMode() (enum.ThreadLocalMode, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	return enum.ThreadLocalMode(C.LLVMGetThreadLocalMode(g.v)), nil
}

func (g *GlobalVariable) SetThreadLocalMode(m enum.ThreadLocalMode) error {
	if err := g.check(); err != nil {
		return err
	}
	if err := member("SetThreadLocalMode", enum.ThreadLocalModeTable, int64(m)); err != nil {
		return err
	}
	C.LLVMSetThreadLocalMode(g.v, C.LLVMThreadLocalMode(m))
	return nil
}

func (g *GlobalVariable) IsExternallyInitialized() (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	return C.LLVMIsExternallyInitialized(g.v) != 0, nil
}

func (g *GlobalVariable) SetExternallyInitialized(ext bool) error {
	if err := g.check(); err != nil {
		return err
	}
	C.LLVMSetExternallyInitialized(g.v, llvmBool(ext))
	return nil
}

// Delete removes the variable from its module. Every handle derived from
// the module before the call becomes invalid.
func (g *GlobalVariable) Delete() error {
	if err := g.check(); err != nil {
		return err
	}
	C.LLVMDeleteGlobal(g.v)
	return g.ref.Revoke()
}

// GlobalAlias is a second name for a global object.
type GlobalAlias struct{ GlobalValue }

// Aliasee returns the aliased constant.
func (a *GlobalAlias) Aliasee() (Value, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	return wrapValue(C.LLVMAliasGetAliasee(a.v), a.ref), nil
}

// SetAliasee points the alias at target.
func (a *GlobalAlias) SetAliasee(target Value) error {
	if err := a.check(); err != nil {
		return err
	}
	b, err := baseOf("SetAliasee", target)
	if err != nil {
		return err
	}
	if C.LLVMIsConstant(b.v) == 0 {
		return constructionErrorf("SetAliasee", "aliasee is not a constant")
	}
	C.LLVMAliasSetAliasee(a.v, b.v)
	return nil
}
