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

// Type is a context-scoped, uniqued LLVM type. Handles are fresh on every
// access; use Equal to compare them.
type Type interface {
	Kind() (enum.TypeKind, error)
	Context() (*Context, error)
	IsSized() (bool, error)
	String() string
	Equal(other Type) bool
	typeBase() *typ
}

type typ struct {
	t   C.LLVMTypeRef
	ref ownership.Ref
}

func (t *typ) typeBase() *typ { return t }

func (t *typ) check() error { return t.ref.Check() }

// Kind returns the type's discriminant.
func (t *typ) Kind() (enum.TypeKind, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return enum.TypeKind(C.LLVMGetTypeKind(t.t)), nil
}

// Context returns a borrowed view of the context the type lives in.
func (t *typ) Context() (*Context, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	return viewContext(C.LLVMGetTypeContext(t.t), t.ref), nil
}

// IsSized reports whether the type has a size known at compile time.
func (t *typ) IsSized() (bool, error) {
	if err := t.check(); err != nil {
		return false, err
	}
	return C.LLVMTypeIsSized(t.t) != 0, nil
}

// String renders the type as textual IR, or a placeholder for a dead handle.
func (t *typ) String() string {
	if err := t.check(); err != nil {
		return "<" + err.Error() + ">"
	}
	return takeMessage(C.LLVMPrintTypeToString(t.t))
}

// Equal reports whether both handles name the same native type.
func (t *typ) Equal(other Type) bool {
	if isNilType(other) {
		return false
	}
	return t.t == other.typeBase().t
}

func isNilType(t Type) bool {
	if t == nil {
		return true
	}
	rv := reflect.ValueOf(t)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// typeOf validates t for use in op and returns its native handle.
func typeOf(op string, t Type) (*typ, error) {
	if isNilType(t) {
		return nil, constructionErrorf(op, "nil type")
	}
	b := t.typeBase()
	if err := b.check(); err != nil {
		return nil, err
	}
	return b, nil
}

func (t *typ) kind() enum.TypeKind { return enum.TypeKind(C.LLVMGetTypeKind(t.t)) }

func (t *typ) context() C.LLVMContextRef { return C.LLVMGetTypeContext(t.t) }

// IntType is an integer type of arbitrary bit width.
type IntType struct{ typ }

// Width returns the bit width.
func (t *IntType) Width() (int, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMGetIntTypeWidth(t.t)), nil
}

// RealType is one of the floating point types.
type RealType struct{ typ }

// VoidType has no values and no size.
type VoidType struct{ typ }

// LabelType is the type of basic block labels.
type LabelType struct{ typ }

// TokenType is used by instructions whose results cannot be inspected.
type TokenType struct{ typ }

// MetadataType is the type of metadata operands.
type MetadataType struct{ typ }

// X86AMXType is the x86 AMX tile type.
type X86AMXType struct{ typ }

// X86MMXType is the x86 MMX vector type.
type X86MMXType struct{ typ }

// FunctionType describes a function signature.
type FunctionType struct{ typ }

// Return returns the result type.
func (t *FunctionType) Return() (Type, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	return wrapType(C.LLVMGetReturnType(t.t), t.ref), nil
}

// IsVariadic reports whether the function takes variable arguments.
func (t *FunctionType) IsVariadic() (bool, error) {
	if err := t.check(); err != nil {
		return false, err
	}
	return C.LLVMIsFunctionVarArg(t.t) != 0, nil
}

// ParamCount returns the number of fixed parameters.
func (t *FunctionType) ParamCount() (int, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMCountParamTypes(t.t)), nil
}

// Params returns the fixed parameter types.
func (t *FunctionType) Params() ([]Type, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	n := int(C.LLVMCountParamTypes(t.t))
	raw := make([]C.LLVMTypeRef, n)
	if n > 0 {
		C.LLVMGetParamTypes(t.t, typeRefs(raw))
	}
	return wrapTypes(raw, t.ref), nil
}

// Param returns the i-th parameter type.
func (t *FunctionType) Param(i int) (Type, error) {
	params, err := t.Params()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(params) {
		return nil, &IndexError{What: "parameter", Index: i, Len: len(params)}
	}
	return params[i], nil
}

// StructType is a literal or named aggregate.
type StructType struct{ typ }

// Name returns the struct name; literal structs have none.
func (t *StructType) Name() (string, error) {
	if err := t.check(); err != nil {
		return "", err
	}
	return C.GoString(C.LLVMGetStructName(t.t)), nil
}

// IsPacked reports whether the fields are laid out without padding.
func (t *StructType) IsPacked() (bool, error) {
	if err := t.check(); err != nil {
		return false, err
	}
	return C.LLVMIsPackedStruct(t.t) != 0, nil
}

// IsOpaque reports whether the struct has no body yet.
func (t *StructType) IsOpaque() (bool, error) {
	if err := t.check(); err != nil {
		return false, err
	}
	return C.LLVMIsOpaqueStruct(t.t) != 0, nil
}

// IsLiteral reports whether the struct is uniqued by structure rather than
// by name.
func (t *StructType) IsLiteral() (bool, error) {
	if err := t.check(); err != nil {
		return false, err
	}
	return C.LLVMIsLiteralStruct(t.t) != 0, nil
}

// FieldCount returns the number of fields.
func (t *StructType) FieldCount() (int, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMCountStructElementTypes(t.t)), nil
}

// Fields returns the field types in order.
func (t *StructType) Fields() ([]Type, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	n := int(C.LLVMCountStructElementTypes(t.t))
	raw := make([]C.LLVMTypeRef, n)
	if n > 0 {
		C.LLVMGetStructElementTypes(t.t, typeRefs(raw))
	}
	return wrapTypes(raw, t.ref), nil
}

// Field returns the i-th field type.
func (t *StructType) Field(i int) (Type, error) {
	n, err := t.FieldCount()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, &IndexError{What: "struct field", Index: i, Len: n}
	}
	return wrapType(C.LLVMStructGetTypeAtIndex(t.t, C.unsigned(i)), t.ref), nil
}

// SetBody defines the fields of an opaque named struct.
func (t *StructType) SetBody(fields []Type, packed bool) error {
	if err := t.check(); err != nil {
		return err
	}
	if C.LLVMIsOpaqueStruct(t.t) == 0 {
		return constructionErrorf("SetBody", "struct already has a body")
	}
	raw, err := elementRefs("SetBody", t.context(), fields, enum.TypeKind.ValidStructElement)
	if err != nil {
		return err
	}
	n, err := cUnsigned("SetBody", len(raw))
	if err != nil {
		return err
	}
	C.LLVMStructSetBody(t.t, typeRefs(raw), n, llvmBool(packed))
	return nil
}

// ArrayType is a fixed-length sequence of one element type.
type ArrayType struct{ typ }

// Element returns the element type.
func (t *ArrayType) Element() (Type, error) { return t.element() }

// Len returns the number of elements.
func (t *ArrayType) Len() (uint64, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return uint64(C.LLVMGetArrayLength2(t.t)), nil
}

// VectorType is a SIMD vector, fixed or scalable.
type VectorType struct{ typ }

// Element returns the element type.
func (t *VectorType) Element() (Type, error) { return t.element() }

// Len returns the (minimum) number of elements.
func (t *VectorType) Len() (int, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMGetVectorSize(t.t)), nil
}

// IsScalable reports whether the length is a multiple of a runtime constant.
func (t *VectorType) IsScalable() (bool, error) {
	k, err := t.Kind()
	return k == enum.TypeKindScalableVector, err
}

func (t *typ) element() (Type, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	return wrapType(C.LLVMGetElementType(t.t), t.ref), nil
}

// PointerType is an opaque pointer in an address space.
type PointerType struct{ typ }

// AddressSpace returns the pointer's address space.
func (t *PointerType) AddressSpace() (int, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMGetPointerAddressSpace(t.t)), nil
}

// TargetExtType is a target specific type.
type TargetExtType struct{ typ }

// OtherType covers kinds without a dedicated wrapper.
type OtherType struct{ typ }

func wrapType(t C.LLVMTypeRef, ref ownership.Ref) Type {
	if t == nil {
		return nil
	}
	b := typ{t: t, ref: ref}
	switch enum.TypeKind(C.LLVMGetTypeKind(t)) {
	case enum.TypeKindInteger:
		return &IntType{b}
	case enum.TypeKindHalf, enum.TypeKindBFloat, enum.TypeKindFloat, enum.TypeKindDouble,
		enum.TypeKindX86FP80, enum.TypeKindFP128, enum.TypeKindPPCFP128:
		return &RealType{b}
	case enum.TypeKindVoid:
		return &VoidType{b}
	case enum.TypeKindLabel:
		return &LabelType{b}
	case enum.TypeKindToken:
		return &TokenType{b}
	case enum.TypeKindMetadata:
		return &MetadataType{b}
	case enum.TypeKindX86AMX:
		return &X86AMXType{b}
	case enum.TypeKindX86MMX:
		return &X86MMXType{b}
	case enum.TypeKindFunction:
		return &FunctionType{b}
	case enum.TypeKindStruct:
		return &StructType{b}
	case enum.TypeKindArray:
		return &ArrayType{b}
	case enum.TypeKindVector, enum.TypeKindScalableVector:
		return &VectorType{b}
	case enum.TypeKindPointer:
		return &PointerType{b}
	case enum.TypeKindTargetExt:
		return &TargetExtType{b}
	}
	return &OtherType{b}
}

func wrapTypes(raw []C.LLVMTypeRef, ref ownership.Ref) []Type {
	out := make([]Type, len(raw))
	for i, t := range raw {
		out[i] = wrapType(t, ref)
	}
	return out
}

// elementRefs validates a list of member types: live, same context as ctx,
// and accepted by valid.
func elementRefs(op string, ctx C.LLVMContextRef, ts []Type, valid func(enum.TypeKind) bool) ([]C.LLVMTypeRef, error) {
	raw := make([]C.LLVMTypeRef, len(ts))
	for i, t := range ts {
		b, err := typeOf(op, t)
		if err != nil {
			return nil, err
		}
		if b.context() != ctx {
			return nil, constructionErrorf(op, "type %d belongs to another context", i)
		}
		if k := b.kind(); !valid(k) {
			return nil, constructionErrorf(op, "%s is not a valid member type", k)
		}
		raw[i] = b.t
	}
	return raw, nil
}
