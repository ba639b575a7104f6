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

// Function is a function declaration or definition.
type Function struct{ GlobalValue }

// Signature returns the function's type.
func (f *Function) Signature() (*FunctionType, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	t := C.LLVMGlobalGetValueType(f.v)
	return &FunctionType{typ{t: t, ref: contextRef(C.LLVMGetTypeContext(t))}}, nil
}

// ParamCount returns the number of formal parameters.
func (f *Function) ParamCount() (int, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMCountParams(f.v)), nil
}

// Params returns fresh handles for the formal parameters.
func (f *Function) Params() ([]*Argument, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	n := int(C.LLVMCountParams(f.v))
	out := make([]*Argument, n)
	for i := range out {
		out[i] = &Argument{value{v: C.LLVMGetParam(f.v, C.unsigned(i)), ref: f.ref}}
	}
	return out, nil
}

// Param returns the i-th formal parameter.
func (f *Function) Param(i int) (*Argument, error) {
	n, err := f.ParamCount()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, &IndexError{What: "parameter", Index: i, Len: n}
	}
	return &Argument{value{v: C.LLVMGetParam(f.v, C.unsigned(i)), ref: f.ref}}, nil
}

// BasicBlockCount returns the number of blocks in the body.
func (f *Function) BasicBlockCount() (int, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMCountBasicBlocks(f.v)), nil
}

// BasicBlocks returns the blocks of the body in layout order.
func (f *Function) BasicBlocks() ([]*BasicBlock, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	var out []*BasicBlock
	for bb := C.LLVMGetFirstBasicBlock(f.v); bb != nil; bb = C.LLVMGetNextBasicBlock(bb) {
		out = append(out, &BasicBlock{bb: bb, ref: f.ref})
	}
	return out, nil
}

// EntryBlock returns the first block, or nil for a declaration.
func (f *Function) EntryBlock() (*BasicBlock, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if C.LLVMCountBasicBlocks(f.v) == 0 {
		return nil, nil
	}
	return &BasicBlock{bb: C.LLVMGetEntryBasicBlock(f.v), ref: f.ref}, nil
}

// AppendBasicBlock adds a new block at the end of the body.
func (f *Function) AppendBasicBlock(name string) (*BasicBlock, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return viewContext(f.context(), f.ref).AppendBasicBlock(f, name)
}

// AppendExistingBasicBlock places a block made by Context.CreateBasicBlock at
// the end of the body. The function's module takes the block over: bb stays
// usable, now borrowed from the module.
func (f *Function) AppendExistingBasicBlock(bb *BasicBlock) error {
	if err := f.check(); err != nil {
		return err
	}
	if err := liveBlock("AppendExistingBasicBlock", bb); err != nil {
		return err
	}
	if bb.detached == nil {
		return constructionErrorf("AppendExistingBasicBlock", "block already belongs to a function")
	}
	if C.LLVMGetTypeContext(C.LLVMTypeOf(C.LLVMBasicBlockAsValue(bb.bb))) != f.context() {
		return constructionErrorf("AppendExistingBasicBlock", "block belongs to another context")
	}
	C.LLVMAppendExistingBasicBlock(f.v, bb.bb)
	if err := bb.detached.Transfer(); err != nil {
		return err
	}
	adoptBlock(bb.bb)
	bb.detached = nil
	bb.ref = f.ref
	return nil
}

// CallConv returns the calling convention.
func (f *Function) CallConv() (enum.CallConv, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	return enum.CallConv(C.LLVMGetFunctionCallConv(f.v)), nil
}

func (f *Function) SetCallConv(cc enum.CallConv) error {
	if err := f.check(); err != nil {
		return err
	}
	if err := member("SetCallConv", enum.CallConvTable, int64(cc)); err != nil {
		return err
	}
	C.LLVMSetFunctionCallConv(f.v, C.unsigned(cc))
	return nil
}

// GC returns the garbage collector strategy name, if any.
func (f *Function) GC() (string, error) {
	if err := f.check(); err != nil {
		return "", err
	}
	return C.GoString(C.LLVMGetGC(f.v)), nil
}

func (f *Function) SetGC(name string) error {
	if err := f.check(); err != nil {
		return err
	}
	if name == "" {
		C.LLVMSetGC(f.v, nil)
		return nil
	}
	cs := C.CString(name)
	defer freeCString(cs)
	C.LLVMSetGC(f.v, cs)
	return nil
}

// IntrinsicID returns the intrinsic id, 0 for ordinary functions.
func (f *Function) IntrinsicID() (uint32, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	return uint32(C.LLVMGetIntrinsicID(f.v)), nil
}

// Personality returns the personality function, or nil if there is none.
func (f *Function) Personality() (Value, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if C.LLVMHasPersonalityFn(f.v) == 0 {
		return nil, nil
	}
	return wrapValue(C.LLVMGetPersonalityFn(f.v), f.ref), nil
}

func (f *Function) SetPersonality(p *Function) error {
	if err := f.check(); err != nil {
		return err
	}
	b, err := baseOf("SetPersonality", p)
	if err != nil {
		return err
	}
	C.LLVMSetPersonalityFn(f.v, b.v)
	return nil
}

// Delete removes the function from its module. Every handle derived from
// the module before the call becomes invalid.
func (f *Function) Delete() error {
	if err := f.check(); err != nil {
		return err
	}
	C.LLVMDeleteFunction(f.v)
	return f.ref.Revoke()
}
