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

// RetVoid emits "ret void".
func (b *Builder) RetVoid() (Value, error) {
	ref, err := b.ready("RetVoid")
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildRetVoid(b.b)), nil
}

// Ret emits a return of v. When the cursor is inside a function, v must
// have the function's return type.
func (b *Builder) Ret(v Value) (Value, error) {
	ref, err := b.ready("Ret")
	if err != nil {
		return nil, err
	}
	x, err := b.operand("Ret", v)
	if err != nil {
		return nil, err
	}
	if fn := C.LLVMGetBasicBlockParent(b.block.bb); fn != nil {
		if C.LLVMGetReturnType(C.LLVMGlobalGetValueType(fn)) != C.LLVMTypeOf(x) {
			return nil, constructionErrorf("Ret", "value does not match the function return type")
		}
	}
	return b.result(ref, C.LLVMBuildRet(b.b, x)), nil
}

// AggregateRet emits a return of a struct built from vals.
func (b *Builder) AggregateRet(vals []Value) (Value, error) {
	ref, err := b.ready("AggregateRet")
	if err != nil {
		return nil, err
	}
	raw, err := b.operands("AggregateRet", vals)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, constructionErrorf("AggregateRet", "no values")
	}
	n, err := cUnsigned("AggregateRet", len(raw))
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildAggregateRet(b.b, valueRefs(raw), n)), nil
}

// Br emits an unconditional branch.
func (b *Builder) Br(dest *BasicBlock) (Value, error) {
	ref, err := b.ready("Br")
	if err != nil {
		return nil, err
	}
	d, err := b.blockArg("Br", dest)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildBr(b.b, d)), nil
}

// CondBr emits a branch on an i1 condition.
func (b *Builder) CondBr(cond Value, then, els *BasicBlock) (Value, error) {
	ref, err := b.ready("CondBr")
	if err != nil {
		return nil, err
	}
	c, err := b.operand("CondBr", cond)
	if err != nil {
		return nil, err
	}
	if !isBool(C.LLVMTypeOf(c)) {
		return nil, constructionErrorf("CondBr", "condition must be i1")
	}
	t, err := b.blockArg("CondBr", then)
	if err != nil {
		return nil, err
	}
	e, err := b.blockArg("CondBr", els)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildCondBr(b.b, c, t, e)), nil
}

func isBool(t C.LLVMTypeRef) bool {
	return enum.TypeKind(C.LLVMGetTypeKind(t)) == enum.TypeKindInteger && C.LLVMGetIntTypeWidth(t) == 1
}

// Switch emits a switch on an integer with room for numCases cases. Cases
// are added with SwitchInst.AddCase.
func (b *Builder) Switch(v Value, els *BasicBlock, numCases int) (Value, error) {
	ref, err := b.ready("Switch")
	if err != nil {
		return nil, err
	}
	x, err := b.operand("Switch", v)
	if err != nil {
		return nil, err
	}
	if enum.TypeKind(C.LLVMGetTypeKind(C.LLVMTypeOf(x))) != enum.TypeKindInteger {
		return nil, constructionErrorf("Switch", "condition must be an integer")
	}
	e, err := b.blockArg("Switch", els)
	if err != nil {
		return nil, err
	}
	n, err := cUnsigned("Switch", numCases)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildSwitch(b.b, x, e, n)), nil
}

// IndirectBr emits a branch to an address with room for numDests targets.
func (b *Builder) IndirectBr(addr Value, numDests int) (Value, error) {
	ref, err := b.ready("IndirectBr")
	if err != nil {
		return nil, err
	}
	a, err := b.pointer("IndirectBr", addr)
	if err != nil {
		return nil, err
	}
	n, err := cUnsigned("IndirectBr", numDests)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildIndirectBr(b.b, a, n)), nil
}

// Invoke emits a call of fn with type ft that continues at then, or at
// catch when the callee unwinds.
func (b *Builder) Invoke(ft *FunctionType, fn Value, args []Value, then, catch *BasicBlock, name string) (Value, error) {
	ref, err := b.ready("Invoke")
	if err != nil {
		return nil, err
	}
	t, callee, raw, err := b.callArgs("Invoke", ft, fn, args, name)
	if err != nil {
		return nil, err
	}
	th, err := b.blockArg("Invoke", then)
	if err != nil {
		return nil, err
	}
	ca, err := b.blockArg("Invoke", catch)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	v := C.LLVMBuildInvoke2(b.b, t, callee, valueRefs(raw), C.unsigned(len(raw)), th, ca, n)
	return b.result(ref, v), nil
}

// Unreachable emits "unreachable".
func (b *Builder) Unreachable() (Value, error) {
	ref, err := b.ready("Unreachable")
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildUnreachable(b.b)), nil
}

// Resume emits a resume of the in-flight exception exn.
func (b *Builder) Resume(exn Value) (Value, error) {
	ref, err := b.ready("Resume")
	if err != nil {
		return nil, err
	}
	x, err := b.operand("Resume", exn)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildResume(b.b, x)), nil
}

// LandingPad emits a landing pad of type t with room for numClauses
// clauses. A non-nil personality is also set on the enclosing function.
func (b *Builder) LandingPad(t Type, personality Value, numClauses int, name string) (Value, error) {
	ref, err := b.ready("LandingPad")
	if err != nil {
		return nil, err
	}
	ty, err := b.typeArg("LandingPad", t)
	if err != nil {
		return nil, err
	}
	var pers C.LLVMValueRef
	if !isNilValue(personality) {
		if pers, err = b.operand("LandingPad", personality); err != nil {
			return nil, err
		}
	}
	cn, err := cUnsigned("LandingPad", numClauses)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildLandingPad(b.b, ty, pers, cn, n)), nil
}

// CleanupRet emits a cleanupret from pad; a nil unwind block unwinds to the
// caller.
func (b *Builder) CleanupRet(pad Value, unwind *BasicBlock) (Value, error) {
	ref, err := b.ready("CleanupRet")
	if err != nil {
		return nil, err
	}
	p, err := b.operand("CleanupRet", pad)
	if err != nil {
		return nil, err
	}
	u, err := b.optionalBlock("CleanupRet", unwind)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildCleanupRet(b.b, p, u)), nil
}

// CatchRet emits a catchret from pad to dest.
func (b *Builder) CatchRet(pad Value, dest *BasicBlock) (Value, error) {
	ref, err := b.ready("CatchRet")
	if err != nil {
		return nil, err
	}
	p, err := b.operand("CatchRet", pad)
	if err != nil {
		return nil, err
	}
	d, err := b.blockArg("CatchRet", dest)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildCatchRet(b.b, p, d)), nil
}

// CatchPad emits a catchpad inside the catchswitch parent.
func (b *Builder) CatchPad(parent Value, args []Value, name string) (Value, error) {
	ref, err := b.ready("CatchPad")
	if err != nil {
		return nil, err
	}
	p, err := b.operand("CatchPad", parent)
	if err != nil {
		return nil, err
	}
	raw, err := b.operands("CatchPad", args)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildCatchPad(b.b, p, valueRefs(raw), C.unsigned(len(raw)), n)), nil
}

// CleanupPad emits a cleanuppad; a nil parent places it at the top level.
func (b *Builder) CleanupPad(parent Value, args []Value, name string) (Value, error) {
	ref, err := b.ready("CleanupPad")
	if err != nil {
		return nil, err
	}
	var p C.LLVMValueRef
	if !isNilValue(parent) {
		if p, err = b.operand("CleanupPad", parent); err != nil {
			return nil, err
		}
	}
	raw, err := b.operands("CleanupPad", args)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildCleanupPad(b.b, p, valueRefs(raw), C.unsigned(len(raw)), n)), nil
}

// CatchSwitch emits a catchswitch with room for numHandlers handlers. A nil
// parent places it at the top level; a nil unwind block unwinds to the
// caller.
func (b *Builder) CatchSwitch(parent Value, unwind *BasicBlock, numHandlers int, name string) (Value, error) {
	ref, err := b.ready("CatchSwitch")
	if err != nil {
		return nil, err
	}
	var p C.LLVMValueRef
	if !isNilValue(parent) {
		if p, err = b.operand("CatchSwitch", parent); err != nil {
			return nil, err
		}
	}
	u, err := b.optionalBlock("CatchSwitch", unwind)
	if err != nil {
		return nil, err
	}
	cn, err := cUnsigned("CatchSwitch", numHandlers)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildCatchSwitch(b.b, p, u, cn, n)), nil
}

// Call emits a call of fn with type ft.
func (b *Builder) Call(ft *FunctionType, fn Value, args []Value, name string) (Value, error) {
	ref, err := b.ready("Call")
	if err != nil {
		return nil, err
	}
	t, callee, raw, err := b.callArgs("Call", ft, fn, args, name)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildCall2(b.b, t, callee, valueRefs(raw), C.unsigned(len(raw)), n)), nil
}

// CallWithTailKind emits a call and marks it with the given tail call kind.
func (b *Builder) CallWithTailKind(ft *FunctionType, fn Value, args []Value, kind enum.TailCallKind, name string) (Value, error) {
	if _, err := b.ready("CallWithTailKind"); err != nil {
		return nil, err
	}
	if err := member("CallWithTailKind", enum.TailCallKindTable, int64(kind)); err != nil {
		return nil, err
	}
	v, err := b.Call(ft, fn, args, name)
	if err != nil {
		return nil, err
	}
	if call, ok := v.(*CallInst); ok {
		C.LLVMSetTailCallKind(call.v, C.LLVMTailCallKind(kind))
	}
	return v, nil
}

// callArgs validates a callee of type ft and its arguments.
func (b *Builder) callArgs(op string, ft *FunctionType, fn Value, args []Value, name string) (C.LLVMTypeRef, C.LLVMValueRef, []C.LLVMValueRef, error) {
	t, err := b.typeArg(op, ft)
	if err != nil {
		return nil, nil, nil, err
	}
	callee, err := b.operand(op, fn)
	if err != nil {
		return nil, nil, nil, err
	}
	if enum.TypeKind(C.LLVMGetTypeKind(C.LLVMTypeOf(callee))) != enum.TypeKindPointer {
		return nil, nil, nil, constructionErrorf(op, "callee is not a pointer")
	}
	raw, err := b.operands(op, args)
	if err != nil {
		return nil, nil, nil, err
	}
	nparams := int(C.LLVMCountParamTypes(t))
	variadic := C.LLVMIsFunctionVarArg(t) != 0
	if len(raw) < nparams || (!variadic && len(raw) != nparams) {
		return nil, nil, nil, constructionErrorf(op, "got %d arguments for %d parameters", len(raw), nparams)
	}
	if nparams > 0 {
		params := make([]C.LLVMTypeRef, nparams)
		C.LLVMGetParamTypes(t, typeRefs(params))
		for i, p := range params {
			if C.LLVMTypeOf(raw[i]) != p {
				return nil, nil, nil, constructionErrorf(op, "argument %d has the wrong type", i)
			}
		}
	}
	if name != "" && enum.TypeKind(C.LLVMGetTypeKind(C.LLVMGetReturnType(t))) == enum.TypeKindVoid {
		return nil, nil, nil, constructionErrorf(op, "void call cannot be named")
	}
	return t, callee, raw, nil
}

// pointer validates an operand that must be a pointer.
func (b *Builder) pointer(op string, v Value) (C.LLVMValueRef, error) {
	x, err := b.operand(op, v)
	if err != nil {
		return nil, err
	}
	if enum.TypeKind(C.LLVMGetTypeKind(C.LLVMTypeOf(x))) != enum.TypeKindPointer {
		return nil, constructionErrorf(op, "operand is not a pointer")
	}
	return x, nil
}
