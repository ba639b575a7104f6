// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"strings"

	"llvmbind/enum"
)

// Constant is a constant without a more specific wrapper.
type Constant struct{ value }

// ConstantInt is an integer constant.
type ConstantInt struct{ value }

// ZExtValue returns the value zero-extended to 64 bits.
func (c *ConstantInt) ZExtValue() (uint64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return uint64(C.LLVMConstIntGetZExtValue(c.v)), nil
}

// SExtValue returns the value sign-extended to 64 bits.
func (c *ConstantInt) SExtValue() (int64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return int64(C.LLVMConstIntGetSExtValue(c.v)), nil
}

// ConstantFP is a floating point constant.
type ConstantFP struct{ value }

// Float64 returns the value as a double and whether the conversion lost
// precision.
func (c *ConstantFP) Float64() (float64, bool, error) {
	if err := c.check(); err != nil {
		return 0, false, err
	}
	var lost C.LLVMBool
	f := C.LLVMConstRealGetDouble(c.v, &lost)
	return float64(f), lost != 0, nil
}

// ConstantStruct is a struct constant with explicit fields.
type ConstantStruct struct{ value }

// ConstantArray is an array constant with explicit elements.
type ConstantArray struct{ value }

// ConstantDataArray is a packed array of simple elements, such as a string.
type ConstantDataArray struct{ value }

// IsString reports whether the array is an i8 array.
func (c *ConstantDataArray) IsString() (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return C.LLVMIsConstantString(c.v) != 0, nil
}

// AsString returns the raw bytes of an i8 array, terminator included.
func (c *ConstantDataArray) AsString() (string, error) {
	ok, err := c.IsString()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", constructionErrorf("AsString", "constant is not a string")
	}
	var n C.size_t
	p := C.LLVMGetAsString(c.v, &n)
	return goStringN(p, n), nil
}

// ConstantVector is a vector constant.
type ConstantVector struct{ value }

// ConstantExpr is a constant expression.
type ConstantExpr struct{ value }

// Opcode returns the operation of the expression.
func (c *ConstantExpr) Opcode() (enum.Opcode, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return enum.Opcode(C.LLVMGetConstOpcode(c.v)), nil
}

// ConstantPointerNull is the null pointer of a pointer type.
type ConstantPointerNull struct{ value }

// UndefValue is an undefined value.
type UndefValue struct{ value }

// PoisonValue is a poison value.
type PoisonValue struct{ value }

// ConstantAggregateZero is the zero initializer of an aggregate.
type ConstantAggregateZero struct{ value }

// aggregateLen returns the number of elements of a fixed-size aggregate.
func (v *value) aggregateLen() int {
	t := C.LLVMTypeOf(v.v)
	switch enum.TypeKind(C.LLVMGetTypeKind(t)) {
	case enum.TypeKindStruct:
		return int(C.LLVMCountStructElementTypes(t))
	case enum.TypeKindArray:
		return int(C.LLVMGetArrayLength2(t))
	case enum.TypeKindVector:
		return int(C.LLVMGetVectorSize(t))
	}
	return 0
}

func (v *value) element(i int) (Value, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if n := v.aggregateLen(); i < 0 || i >= n {
		return nil, &IndexError{What: "aggregate element", Index: i, Len: n}
	}
	e := C.LLVMGetAggregateElement(v.v, C.unsigned(i))
	return wrapValue(e, valueRef(e, v.ref)), nil
}

// Element returns the i-th field.
func (c *ConstantStruct) Element(i int) (Value, error) { return c.element(i) }

// Element returns the i-th element.
func (c *ConstantArray) Element(i int) (Value, error) { return c.element(i) }

// Element returns the i-th element.
func (c *ConstantDataArray) Element(i int) (Value, error) { return c.element(i) }

// Element returns the i-th element.
func (c *ConstantVector) Element(i int) (Value, error) { return c.element(i) }

// Element returns the i-th (zero) element.
func (c *ConstantAggregateZero) Element(i int) (Value, error) { return c.element(i) }

func wrapConstant(b value, k enum.ValueKind) Value {
	switch k {
	case enum.ValueKindConstantInt:
		return &ConstantInt{b}
	case enum.ValueKindConstantFP:
		return &ConstantFP{b}
	case enum.ValueKindConstantStruct:
		return &ConstantStruct{b}
	case enum.ValueKindConstantArray:
		return &ConstantArray{b}
	case enum.ValueKindConstantDataArray:
		return &ConstantDataArray{b}
	case enum.ValueKindConstantVector, enum.ValueKindConstantDataVector:
		return &ConstantVector{b}
	case enum.ValueKindConstantExpr:
		return &ConstantExpr{b}
	case enum.ValueKindConstantPointerNull:
		return &ConstantPointerNull{b}
	case enum.ValueKindUndefValue:
		return &UndefValue{b}
	case enum.ValueKindPoisonValue:
		return &PoisonValue{b}
	case enum.ValueKindConstantAggregateZero:
		return &ConstantAggregateZero{b}
	}
	return &Constant{b}
}

// ConstInt returns the integer constant v of type t. With signExtend, v is
// read as a two's complement int64 when t is wider than 64 bits.
func ConstInt(t *IntType, v uint64, signExtend bool) (*ConstantInt, error) {
	b, err := typeOf("ConstInt", t)
	if err != nil {
		return nil, err
	}
	return &ConstantInt{value{v: C.LLVMConstInt(b.t, C.ulonglong(v), llvmBool(signExtend)), ref: b.ref}}, nil
}

// ConstIntOfString parses text in the given radix (2, 8, 10, 16 or 36).
func ConstIntOfString(t *IntType, text string, radix int) (*ConstantInt, error) {
	b, err := typeOf("ConstIntOfString", t)
	if err != nil {
		return nil, err
	}
	if err := validIntText(text, radix); err != nil {
		return nil, err
	}
	cs := C.CString(text)
	defer freeCString(cs)
	v := C.LLVMConstIntOfStringAndSize(b.t, cs, C.unsigned(len(text)), C.uint8_t(radix))
	return &ConstantInt{value{v: v, ref: b.ref}}, nil
}

func validIntText(text string, radix int) error {
	switch radix {
	case 2, 8, 10, 16, 36:
	default:
		return constructionErrorf("ConstIntOfString", "unsupported radix %d", radix)
	}
	digits := strings.TrimLeft(text, "+-")
	if len(text)-len(digits) > 1 || digits == "" {
		return constructionErrorf("ConstIntOfString", "malformed integer %q", text)
	}
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	for _, r := range strings.ToLower(digits) {
		i := strings.IndexRune(alphabet, r)
		if i < 0 || i >= radix {
			return constructionErrorf("ConstIntOfString", "digit %q invalid in radix %d", r, radix)
		}
	}
	return nil
}

// ConstReal returns the floating point constant f of type t.
func ConstReal(t *RealType, f float64) (*ConstantFP, error) {
	b, err := typeOf("ConstReal", t)
	if err != nil {
		return nil, err
	}
	return &ConstantFP{value{v: C.LLVMConstReal(b.t, C.double(f)), ref: b.ref}}, nil
}

// ConstNull returns the zero value of t.
func ConstNull(t Type) (Value, error) {
	b, err := firstClass("ConstNull", t)
	if err != nil {
		return nil, err
	}
	return wrapValue(C.LLVMConstNull(b.t), b.ref), nil
}

// ConstAllOnes returns the value of an integer (or integer vector) type with
// every bit set.
func ConstAllOnes(t Type) (Value, error) {
	b, err := typeOf("ConstAllOnes", t)
	if err != nil {
		return nil, err
	}
	k := b.kind()
	if k == enum.TypeKindVector || k == enum.TypeKindScalableVector {
		k = enum.TypeKind(C.LLVMGetTypeKind(C.LLVMGetElementType(b.t)))
	}
	if k != enum.TypeKindInteger {
		return nil, constructionErrorf("ConstAllOnes", "%s is not an integer type", k)
	}
	return wrapValue(C.LLVMConstAllOnes(b.t), b.ref), nil
}

// Undef returns the undef value of t.
func Undef(t Type) (Value, error) {
	b, err := firstClass("Undef", t)
	if err != nil {
		return nil, err
	}
	return wrapValue(C.LLVMGetUndef(b.t), b.ref), nil
}

// Poison returns the poison value of t.
func Poison(t Type) (Value, error) {
	b, err := firstClass("Poison", t)
	if err != nil {
		return nil, err
	}
	return wrapValue(C.LLVMGetPoison(b.t), b.ref), nil
}

// ConstPointerNull returns the null pointer of t.
func ConstPointerNull(t *PointerType) (*ConstantPointerNull, error) {
	b, err := typeOf("ConstPointerNull", t)
	if err != nil {
		return nil, err
	}
	return &ConstantPointerNull{value{v: C.LLVMConstPointerNull(b.t), ref: b.ref}}, nil
}

func firstClass(op string, t Type) (*typ, error) {
	b, err := typeOf(op, t)
	if err != nil {
		return nil, err
	}
	switch k := b.kind(); k {
	case enum.TypeKindVoid, enum.TypeKindFunction, enum.TypeKindLabel, enum.TypeKindMetadata:
		return nil, constructionErrorf(op, "no constants of %s type", k)
	}
	return b, nil
}

// ConstString returns s as an i8 array constant, with a trailing NUL unless
// nullTerminate is false.
func (c *Context) ConstString(s string, nullTerminate bool) (*ConstantDataArray, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	n, err := cUnsigned("ConstString", len(s))
	if err != nil {
		return nil, err
	}
	cs := C.CString(s)
	defer freeCString(cs)
	v := C.LLVMConstStringInContext(c.c, cs, n, llvmBool(!nullTerminate))
	return &ConstantDataArray{value{v: v, ref: c.ref()}}, nil
}

// ConstStruct returns a literal struct constant of the given fields.
func (c *Context) ConstStruct(fields []Value, packed bool) (*ConstantStruct, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	raw, err := c.constants("ConstStruct", fields)
	if err != nil {
		return nil, err
	}
	n, err := cUnsigned("ConstStruct", len(raw))
	if err != nil {
		return nil, err
	}
	v := C.LLVMConstStructInContext(c.c, valueRefs(raw), n, llvmBool(packed))
	return &ConstantStruct{value{v: v, ref: valueRef(v, c.ref())}}, nil
}

// constants validates values that must be constants of context c.
func (c *Context) constants(op string, vs []Value) ([]C.LLVMValueRef, error) {
	raw, err := rawValues(op, vs)
	if err != nil {
		return nil, err
	}
	for i, v := range raw {
		if C.LLVMIsConstant(v) == 0 {
			return nil, constructionErrorf(op, "element %d is not a constant", i)
		}
		if C.LLVMGetTypeContext(C.LLVMTypeOf(v)) != c.c {
			return nil, constructionErrorf(op, "element %d belongs to another context", i)
		}
	}
	return raw, nil
}

// ConstNamedStruct returns a constant of the named struct t.
func ConstNamedStruct(t *StructType, fields []Value) (Value, error) {
	b, err := typeOf("ConstNamedStruct", t)
	if err != nil {
		return nil, err
	}
	want := int(C.LLVMCountStructElementTypes(b.t))
	if C.LLVMIsOpaqueStruct(b.t) != 0 {
		return nil, constructionErrorf("ConstNamedStruct", "struct is opaque")
	}
	if len(fields) != want {
		return nil, constructionErrorf("ConstNamedStruct", "got %d fields, struct has %d", len(fields), want)
	}
	raw, err := viewContext(b.context(), b.ref).constants("ConstNamedStruct", fields)
	if err != nil {
		return nil, err
	}
	for i, v := range raw {
		if C.LLVMTypeOf(v) != C.LLVMStructGetTypeAtIndex(b.t, C.unsigned(i)) {
			return nil, constructionErrorf("ConstNamedStruct", "field %d has the wrong type", i)
		}
	}
	v := C.LLVMConstNamedStruct(b.t, valueRefs(raw), C.unsigned(len(raw)))
	return wrapValue(v, valueRef(v, b.ref)), nil
}

// ConstArray returns an array constant whose elements all have type elem.
func ConstArray(elem Type, elems []Value) (Value, error) {
	b, err := typeOf("ConstArray", elem)
	if err != nil {
		return nil, err
	}
	if k := b.kind(); !k.ValidArrayElement() {
		return nil, constructionErrorf("ConstArray", "%s is not a valid array element", k)
	}
	raw, err := viewContext(b.context(), b.ref).constants("ConstArray", elems)
	if err != nil {
		return nil, err
	}
	for i, v := range raw {
		if C.LLVMTypeOf(v) != b.t {
			return nil, constructionErrorf("ConstArray", "element %d has the wrong type", i)
		}
	}
	v := C.LLVMConstArray2(b.t, valueRefs(raw), C.uint64_t(len(raw)))
	return wrapValue(v, valueRef(v, b.ref)), nil
}

// ConstVector returns a vector constant of one or more scalars of one type.
func ConstVector(elems []Value) (Value, error) {
	if len(elems) == 0 {
		return nil, constructionErrorf("ConstVector", "empty vector")
	}
	first, err := baseOf("ConstVector", elems[0])
	if err != nil {
		return nil, err
	}
	t := C.LLVMTypeOf(first.v)
	if k := enum.TypeKind(C.LLVMGetTypeKind(t)); !k.ValidVectorElement() {
		return nil, constructionErrorf("ConstVector", "%s is not a valid vector element", k)
	}
	raw, err := viewContext(first.context(), first.ref).constants("ConstVector", elems)
	if err != nil {
		return nil, err
	}
	for i, v := range raw {
		if C.LLVMTypeOf(v) != t {
			return nil, constructionErrorf("ConstVector", "element %d has the wrong type", i)
		}
	}
	n, err := cUnsigned("ConstVector", len(raw))
	if err != nil {
		return nil, err
	}
	v := C.LLVMConstVector(valueRefs(raw), n)
	return wrapValue(v, valueRef(v, first.ref)), nil
}

// InlineAsmSpec describes an inline assembler expression.
type InlineAsmSpec struct {
	Asm            string
	Constraints    string
	HasSideEffects bool
	IsAlignStack   bool
	Dialect        enum.InlineAsmDialect
	CanThrow       bool
}

// NewInlineAsm returns an inline assembler callee of type ft.
func NewInlineAsm(ft *FunctionType, spec InlineAsmSpec) (*InlineAsm, error) {
	b, err := typeOf("NewInlineAsm", ft)
	if err != nil {
		return nil, err
	}
	if _, ok := enum.InlineAsmDialectTable.ByValue(int64(spec.Dialect)); !ok {
		return nil, constructionErrorf("NewInlineAsm", "unknown dialect %d", spec.Dialect)
	}
	asm := C.CString(spec.Asm)
	defer freeCString(asm)
	cons := C.CString(spec.Constraints)
	defer freeCString(cons)
	v := C.LLVMGetInlineAsm(b.t, asm, C.size_t(len(spec.Asm)), cons, C.size_t(len(spec.Constraints)),
		llvmBool(spec.HasSideEffects), llvmBool(spec.IsAlignStack),
		C.LLVMInlineAsmDialect(spec.Dialect), llvmBool(spec.CanThrow))
	return &InlineAsm{value{v: v, ref: b.ref}}, nil
}
