// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"reflect"

	"llvmbind/enum"
	"llvmbind/ownership"
)

// Value is any node of the program graph that has a type. Handles are fresh
// wrappers on every access; two handles to the same native value are
// different Go pointers that compare Equal.
type Value interface {
	Name() (string, error)
	SetName(name string) error
	Type() (Type, error)
	Kind() (enum.ValueKind, error)
	String() string
	Equal(other Value) bool
	valueBase() *value
}

type value struct {
	v   C.LLVMValueRef
	ref ownership.Ref
}

func (v *value) valueBase() *value { return v }

func (v *value) check() error { return v.ref.Check() }

func (v *value) context() C.LLVMContextRef {
	return C.LLVMGetTypeContext(C.LLVMTypeOf(v.v))
}

// Name returns the value's name; unnamed values return "".
func (v *value) Name() (string, error) {
	if err := v.check(); err != nil {
		return "", err
	}
	var n C.size_t
	p := C.LLVMGetValueName2(v.v, &n)
	return goStringN(p, n), nil
}

// SetName renames the value. The module may add a suffix to keep names
// unique.
func (v *value) SetName(name string) error {
	if err := v.check(); err != nil {
		return err
	}
	cs := C.CString(name)
	defer freeCString(cs)
	C.LLVMSetValueName2(v.v, cs, C.size_t(len(name)))
	return nil
}

// Type returns the value's type.
func (v *value) Type() (Type, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	t := C.LLVMTypeOf(v.v)
	return wrapType(t, contextRef(C.LLVMGetTypeContext(t))), nil
}

// Kind returns the value's discriminant.
func (v *value) Kind() (enum.ValueKind, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	return enum.ValueKind(C.LLVMGetValueKind(v.v)), nil
}

// String renders the value as textual IR.
func (v *value) String() string {
	if err := v.check(); err != nil {
		return "<" + err.Error() + ">"
	}
	return takeMessage(C.LLVMPrintValueToString(v.v))
}

// Equal reports whether both handles refer to the same native value.
func (v *value) Equal(other Value) bool {
	if isNilValue(other) {
		return false
	}
	return v.v == other.valueBase().v
}

// IsConstant reports whether the value is a constant.
func (v *value) IsConstant() (bool, error) {
	if err := v.check(); err != nil {
		return false, err
	}
	return C.LLVMIsConstant(v.v) != 0, nil
}

// IsUndef reports whether the value is undef.
func (v *value) IsUndef() (bool, error) {
	if err := v.check(); err != nil {
		return false, err
	}
	return C.LLVMIsUndef(v.v) != 0, nil
}

// IsPoison reports whether the value is poison.
func (v *value) IsPoison() (bool, error) {
	if err := v.check(); err != nil {
		return false, err
	}
	return C.LLVMIsPoison(v.v) != 0, nil
}

// IsNull reports whether the value is the null constant of its type.
func (v *value) IsNull() (bool, error) {
	if err := v.check(); err != nil {
		return false, err
	}
	return C.LLVMIsNull(v.v) != 0, nil
}

// UseCount returns the number of uses of the value.
func (v *value) UseCount() (int, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	n := 0
	for u := C.LLVMGetFirstUse(v.v); u != nil; u = C.LLVMGetNextUse(u) {
		n++
	}
	return n, nil
}

// Users returns the values that use this one, one entry per use.
func (v *value) Users() ([]Value, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	var out []Value
	for u := C.LLVMGetFirstUse(v.v); u != nil; u = C.LLVMGetNextUse(u) {
		user := C.LLVMGetUser(u)
		out = append(out, wrapValue(user, valueRef(user, v.ref)))
	}
	return out, nil
}

// ReplaceAllUsesWith rewrites every use of the value to use with instead.
func (v *value) ReplaceAllUsesWith(with Value) error {
	if err := v.check(); err != nil {
		return err
	}
	w, err := baseOf("ReplaceAllUsesWith", with)
	if err != nil {
		return err
	}
	if C.LLVMTypeOf(v.v) != C.LLVMTypeOf(w.v) {
		return constructionErrorf("ReplaceAllUsesWith", "replacement has a different type")
	}
	C.LLVMReplaceAllUsesWith(v.v, w.v)
	return nil
}

func isNilValue(v Value) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// baseOf validates v as an argument of op.
func baseOf(op string, v Value) (*value, error) {
	if isNilValue(v) {
		return nil, constructionErrorf(op, "nil value")
	}
	b := v.valueBase()
	if err := b.check(); err != nil {
		return nil, err
	}
	return b, nil
}

// Argument is a formal parameter of a function.
type Argument struct{ value }

// Parent returns the function the argument belongs to.
func (a *Argument) Parent() (*Function, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	return &Function{GlobalValue{value{v: C.LLVMGetParamParent(a.v), ref: a.ref}}}, nil
}

// Index returns the position of the argument in its function.
func (a *Argument) Index() (int, error) {
	fn, err := a.Parent()
	if err != nil {
		return 0, err
	}
	n := int(C.LLVMCountParams(fn.v))
	for i := 0; i < n; i++ {
		if C.LLVMGetParam(fn.v, C.unsigned(i)) == a.v {
			return i, nil
		}
	}
	return -1, nil
}

// BasicBlockValue is the label view of a basic block.
type BasicBlockValue struct{ value }

// Block returns the basic block the label stands for.
func (b *BasicBlockValue) Block() (*BasicBlock, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return &BasicBlock{bb: C.LLVMValueAsBasicBlock(b.v), ref: b.ref}, nil
}

// InlineAsm is an inline assembler expression usable as a callee.
type InlineAsm struct{ value }

// AsmString returns the assembler template.
func (a *InlineAsm) AsmString() (string, error) {
	if err := a.check(); err != nil {
		return "", err
	}
	var n C.size_t
	return goStringN(C.LLVMGetInlineAsmAsmString(a.v, &n), n), nil
}

// Constraints returns the constraint string.
func (a *InlineAsm) Constraints() (string, error) {
	if err := a.check(); err != nil {
		return "", err
	}
	var n C.size_t
	return goStringN(C.LLVMGetInlineAsmConstraintString(a.v, &n), n), nil
}

// Dialect returns the assembler dialect.
func (a *InlineAsm) Dialect() (enum.InlineAsmDialect, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	return enum.InlineAsmDialect(C.LLVMGetInlineAsmDialect(a.v)), nil
}

// HasSideEffects reports whether the asm has side effects.
func (a *InlineAsm) HasSideEffects() (bool, error) {
	if err := a.check(); err != nil {
		return false, err
	}
	return C.LLVMGetInlineAsmHasSideEffects(a.v) != 0, nil
}

// MetadataValue wraps metadata used as an operand.
type MetadataValue struct{ value }

// OtherValue covers kinds without a dedicated wrapper.
type OtherValue struct{ value }

// wrapValue returns a fresh handle of the most specific wrapper for v.
func wrapValue(v C.LLVMValueRef, ref ownership.Ref) Value {
	if v == nil {
		return nil
	}
	b := value{v: v, ref: ref}
	switch k := enum.ValueKind(C.LLVMGetValueKind(v)); k {
	case enum.ValueKindArgument:
		return &Argument{b}
	case enum.ValueKindBasicBlock:
		return &BasicBlockValue{b}
	case enum.ValueKindFunction:
		return &Function{GlobalValue{b}}
	case enum.ValueKindGlobalVariable:
		return &GlobalVariable{GlobalValue{b}}
	case enum.ValueKindGlobalAlias:
		return &GlobalAlias{GlobalValue{b}}
	case enum.ValueKindGlobalIFunc:
		return &GlobalValue{b}
	case enum.ValueKindInlineAsm:
		return &InlineAsm{b}
	case enum.ValueKindMetadataAsValue:
		return &MetadataValue{b}
	case enum.ValueKindInstruction:
		return wrapInstruction(b, nil)
	default:
		if k.IsConstant() {
			return wrapConstant(b, k)
		}
	}
	return &OtherValue{b}
}

// valueRef returns the view a handle to v must carry: the owner of the
// module v lives in, or fallback when v belongs to no module.
func valueRef(v C.LLVMValueRef, fallback ownership.Ref) ownership.Ref {
	if m := moduleOf(v); m != nil {
		if o := moduleOwner(m); o != nil {
			return o.Ref()
		}
	}
	return fallback
}

// moduleOf finds the module holding v by walking up the native graph.
// Constants and detached instructions are held by the module of their first
// operand that has one; the rest belong to the context and yield nil.
func moduleOf(v C.LLVMValueRef) C.LLVMModuleRef {
	seen := make(map[C.LLVMValueRef]bool)
	var walk func(v C.LLVMValueRef) C.LLVMModuleRef
	walk = func(v C.LLVMValueRef) C.LLVMModuleRef {
		if v == nil || seen[v] {
			return nil
		}
		seen[v] = true
		switch {
		case C.LLVMIsAGlobalValue(v) != nil:
			return C.LLVMGetGlobalParent(v)
		case C.LLVMIsAArgument(v) != nil:
			return C.LLVMGetGlobalParent(C.LLVMGetParamParent(v))
		case C.LLVMIsABasicBlock(v) != nil:
			return blockModule(C.LLVMValueAsBasicBlock(v))
		case C.LLVMIsAInstruction(v) != nil:
			if m := blockModule(C.LLVMGetInstructionParent(v)); m != nil {
				return m
			}
		case C.LLVMIsAConstant(v) == nil:
			return nil
		}
		n := int(C.LLVMGetNumOperands(v))
		for i := 0; i < n; i++ {
			if m := walk(C.LLVMGetOperand(v, C.unsigned(i))); m != nil {
				return m
			}
		}
		return nil
	}
	return walk(v)
}

func blockModule(bb C.LLVMBasicBlockRef) C.LLVMModuleRef {
	if bb == nil {
		return nil
	}
	fn := C.LLVMGetBasicBlockParent(bb)
	if fn == nil {
		return nil
	}
	return C.LLVMGetGlobalParent(fn)
}

func wrapValues(raw []C.LLVMValueRef, ref ownership.Ref) []Value {
	out := make([]Value, len(raw))
	for i, v := range raw {
		out[i] = wrapValue(v, ref)
	}
	return out
}

// rawValues validates a list of value arguments of op.
func rawValues(op string, vs []Value) ([]C.LLVMValueRef, error) {
	raw := make([]C.LLVMValueRef, len(vs))
	for i, v := range vs {
		b, err := baseOf(op, v)
		if err != nil {
			return nil, err
		}
		raw[i] = b.v
	}
	return raw, nil
}
