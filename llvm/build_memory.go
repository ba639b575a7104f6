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

// Alloca emits a stack allocation of one t.
func (b *Builder) Alloca(t Type, name string) (Value, error) {
	ref, err := b.ready("Alloca")
	if err != nil {
		return nil, err
	}
	ty, err := b.sized("Alloca", t)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildAlloca(b.b, ty, n)), nil
}

// ArrayAlloca emits a stack allocation of count elements of type t.
func (b *Builder) ArrayAlloca(t Type, count Value, name string) (Value, error) {
	ref, err := b.ready("ArrayAlloca")
	if err != nil {
		return nil, err
	}
	ty, err := b.sized("ArrayAlloca", t)
	if err != nil {
		return nil, err
	}
	c, err := b.integer("ArrayAlloca", count)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildArrayAlloca(b.b, ty, c, n)), nil
}

// Malloc emits a call to malloc for one t. A declaration of malloc is added
// to the module when missing.
func (b *Builder) Malloc(t Type, name string) (Value, error) {
	ref, err := b.attached("Malloc")
	if err != nil {
		return nil, err
	}
	ty, err := b.sized("Malloc", t)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildMalloc(b.b, ty, n)), nil
}

// ArrayMalloc emits a call to malloc for count elements of type t.
func (b *Builder) ArrayMalloc(t Type, count Value, name string) (Value, error) {
	ref, err := b.attached("ArrayMalloc")
	if err != nil {
		return nil, err
	}
	ty, err := b.sized("ArrayMalloc", t)
	if err != nil {
		return nil, err
	}
	c, err := b.integer("ArrayMalloc", count)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildArrayMalloc(b.b, ty, c, n)), nil
}

// Free emits a call to free.
func (b *Builder) Free(ptr Value) (Value, error) {
	ref, err := b.attached("Free")
	if err != nil {
		return nil, err
	}
	p, err := b.pointer("Free", ptr)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildFree(b.b, p)), nil
}

// MemSet emits a memset of length bytes at ptr.
func (b *Builder) MemSet(ptr, val, length Value, align uint32) (Value, error) {
	ref, err := b.attached("MemSet")
	if err != nil {
		return nil, err
	}
	p, err := b.pointer("MemSet", ptr)
	if err != nil {
		return nil, err
	}
	v, err := b.operand("MemSet", val)
	if err != nil {
		return nil, err
	}
	if t := C.LLVMTypeOf(v); enum.TypeKind(C.LLVMGetTypeKind(t)) != enum.TypeKindInteger || C.LLVMGetIntTypeWidth(t) != 8 {
		return nil, constructionErrorf("MemSet", "value must be i8")
	}
	l, err := b.integer("MemSet", length)
	if err != nil {
		return nil, err
	}
	if err := validAlignment("MemSet", int(align)); err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildMemSet(b.b, p, v, l, C.unsigned(align))), nil
}

// MemCpy emits a memcpy of size bytes from src to dst.
func (b *Builder) MemCpy(dst Value, dstAlign uint32, src Value, srcAlign uint32, size Value) (Value, error) {
	return b.memTransfer("MemCpy", dst, dstAlign, src, srcAlign, size, false)
}

// MemMove emits a memmove of size bytes from src to dst.
func (b *Builder) MemMove(dst Value, dstAlign uint32, src Value, srcAlign uint32, size Value) (Value, error) {
	return b.memTransfer("MemMove", dst, dstAlign, src, srcAlign, size, true)
}

func (b *Builder) memTransfer(op string, dst Value, dstAlign uint32, src Value, srcAlign uint32, size Value, move bool) (Value, error) {
	ref, err := b.attached(op)
	if err != nil {
		return nil, err
	}
	d, err := b.pointer(op, dst)
	if err != nil {
		return nil, err
	}
	s, err := b.pointer(op, src)
	if err != nil {
		return nil, err
	}
	sz, err := b.integer(op, size)
	if err != nil {
		return nil, err
	}
	if err := validAlignment(op, int(dstAlign)); err != nil {
		return nil, err
	}
	if err := validAlignment(op, int(srcAlign)); err != nil {
		return nil, err
	}
	if move {
		return b.result(ref, C.LLVMBuildMemMove(b.b, d, C.unsigned(dstAlign), s, C.unsigned(srcAlign), sz)), nil
	}
	return b.result(ref, C.LLVMBuildMemCpy(b.b, d, C.unsigned(dstAlign), s, C.unsigned(srcAlign), sz)), nil
}

// GlobalString adds a private constant global holding s and returns it.
func (b *Builder) GlobalString(s, name string) (Value, error) {
	ref, err := b.attached("GlobalString")
	if err != nil {
		return nil, err
	}
	cs, n := C.CString(s), C.CString(name)
	defer freeCString(cs)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildGlobalString(b.b, cs, n)), nil
}

// GlobalStringPtr is like GlobalString but returns a pointer to the first
// character.
func (b *Builder) GlobalStringPtr(s, name string) (Value, error) {
	ref, err := b.attached("GlobalStringPtr")
	if err != nil {
		return nil, err
	}
	cs, n := C.CString(s), C.CString(name)
	defer freeCString(cs)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildGlobalStringPtr(b.b, cs, n)), nil
}

// Load emits a load of a t from ptr.
func (b *Builder) Load(t Type, ptr Value, name string) (Value, error) {
	ref, err := b.ready("Load")
	if err != nil {
		return nil, err
	}
	ty, err := b.sized("Load", t)
	if err != nil {
		return nil, err
	}
	p, err := b.pointer("Load", ptr)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildLoad2(b.b, ty, p, n)), nil
}

// Store emits a store of val to ptr.
func (b *Builder) Store(val, ptr Value) (Value, error) {
	ref, err := b.ready("Store")
	if err != nil {
		return nil, err
	}
	v, err := b.operand("Store", val)
	if err != nil {
		return nil, err
	}
	if C.LLVMTypeIsSized(C.LLVMTypeOf(v)) == 0 {
		return nil, constructionErrorf("Store", "stored value is not sized")
	}
	p, err := b.pointer("Store", ptr)
	if err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildStore(b.b, v, p)), nil
}

// GEP emits a getelementptr over a value of type t at ptr.
func (b *Builder) GEP(t Type, ptr Value, indices []Value, name string) (Value, error) {
	return b.gep("GEP", t, ptr, indices, name, false)
}

// InBoundsGEP emits an inbounds getelementptr.
func (b *Builder) InBoundsGEP(t Type, ptr Value, indices []Value, name string) (Value, error) {
	return b.gep("InBoundsGEP", t, ptr, indices, name, true)
}

func (b *Builder) gep(op string, t Type, ptr Value, indices []Value, name string, inBounds bool) (Value, error) {
	ref, err := b.ready(op)
	if err != nil {
		return nil, err
	}
	ty, err := b.typeArg(op, t)
	if err != nil {
		return nil, err
	}
	p, err := b.operand(op, ptr)
	if err != nil {
		return nil, err
	}
	if scalarKind(C.LLVMTypeOf(p)) != enum.TypeKindPointer {
		return nil, constructionErrorf(op, "base is not a pointer")
	}
	raw, err := b.operands(op, indices)
	if err != nil {
		return nil, err
	}
	if err := walkIndices(op, ty, raw); err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	if inBounds {
		return b.result(ref, C.LLVMBuildInBoundsGEP2(b.b, ty, p, valueRefs(raw), C.unsigned(len(raw)), n)), nil
	}
	return b.result(ref, C.LLVMBuildGEP2(b.b, ty, p, valueRefs(raw), C.unsigned(len(raw)), n)), nil
}

// walkIndices checks a getelementptr index path against the source type.
// The first index steps over the pointer; each later index selects a member
// of the current aggregate. Struct members need constant i32 indices.
func walkIndices(op string, t C.LLVMTypeRef, indices []C.LLVMValueRef) error {
	if C.LLVMTypeIsSized(t) == 0 {
		return constructionErrorf(op, "source element type is not sized")
	}
	for i, idx := range indices {
		if scalarKind(C.LLVMTypeOf(idx)) != enum.TypeKindInteger {
			return constructionErrorf(op, "index %d is not an integer", i)
		}
		if i == 0 {
			continue
		}
		switch enum.TypeKind(C.LLVMGetTypeKind(t)) {
		case enum.TypeKindStruct:
			it := C.LLVMTypeOf(idx)
			if C.LLVMIsAConstantInt(idx) == nil || C.LLVMGetIntTypeWidth(it) != 32 {
				return constructionErrorf(op, "struct index %d must be a constant i32", i)
			}
			field := C.LLVMConstIntZExtValue(idx)
			count := C.LLVMCountStructElementTypes(t)
			if field >= C.ulonglong(count) {
				return &IndexError{What: "struct field", Index: int(field), Len: int(count)}
			}
			t = C.LLVMStructGetTypeAtIndex(t, C.unsigned(field))
		case enum.TypeKindArray, enum.TypeKindVector, enum.TypeKindScalableVector:
			t = C.LLVMGetElementType(t)
		default:
			return constructionErrorf(op, "index %d steps into a non-aggregate", i)
		}
	}
	return nil
}

// StructGEP emits the address of field idx of the struct t at ptr.
func (b *Builder) StructGEP(t *StructType, ptr Value, idx int, name string) (Value, error) {
	ref, err := b.ready("StructGEP")
	if err != nil {
		return nil, err
	}
	ty, err := b.typeArg("StructGEP", t)
	if err != nil {
		return nil, err
	}
	p, err := b.pointer("StructGEP", ptr)
	if err != nil {
		return nil, err
	}
	if C.LLVMIsOpaqueStruct(ty) != 0 {
		return nil, constructionErrorf("StructGEP", "struct has no body")
	}
	if count := int(C.LLVMCountStructElementTypes(ty)); idx < 0 || idx >= count {
		return nil, &IndexError{What: "struct field", Index: idx, Len: count}
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildStructGEP2(b.b, ty, p, C.unsigned(idx), n)), nil
}

// Phi emits a phi node of type t. Incoming values are added with
// PHINode.AddIncoming.
func (b *Builder) Phi(t Type, name string) (Value, error) {
	ref, err := b.ready("Phi")
	if err != nil {
		return nil, err
	}
	ty, err := b.typeArg("Phi", t)
	if err != nil {
		return nil, err
	}
	if !enum.TypeKind(C.LLVMGetTypeKind(ty)).IsFirstClass() {
		return nil, constructionErrorf("Phi", "type is not first class")
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildPhi(b.b, ty, n)), nil
}

// Select emits a choice between then and els on cond.
func (b *Builder) Select(cond, then, els Value, name string) (Value, error) {
	ref, err := b.ready("Select")
	if err != nil {
		return nil, err
	}
	c, err := b.operand("Select", cond)
	if err != nil {
		return nil, err
	}
	ct := C.LLVMTypeOf(c)
	if scalarKind(ct) != enum.TypeKindInteger || C.LLVMGetIntTypeWidth(elementOrSelf(ct)) != 1 {
		return nil, constructionErrorf("Select", "condition must be i1")
	}
	t, err := b.operand("Select", then)
	if err != nil {
		return nil, err
	}
	e, err := b.operand("Select", els)
	if err != nil {
		return nil, err
	}
	if C.LLVMTypeOf(t) != C.LLVMTypeOf(e) {
		return nil, constructionErrorf("Select", "operand types differ")
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildSelect(b.b, c, t, e, n)), nil
}

func elementOrSelf(t C.LLVMTypeRef) C.LLVMTypeRef {
	switch enum.TypeKind(C.LLVMGetTypeKind(t)) {
	case enum.TypeKindVector, enum.TypeKindScalableVector:
		return C.LLVMGetElementType(t)
	}
	return t
}

// VAArg emits a read of the next variadic argument of type t from list.
func (b *Builder) VAArg(list Value, t Type, name string) (Value, error) {
	ref, err := b.ready("VAArg")
	if err != nil {
		return nil, err
	}
	l, err := b.pointer("VAArg", list)
	if err != nil {
		return nil, err
	}
	ty, err := b.typeArg("VAArg", t)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildVAArg(b.b, l, ty, n)), nil
}

// ExtractElement emits a read of one vector lane.
func (b *Builder) ExtractElement(vec, idx Value, name string) (Value, error) {
	ref, err := b.ready("ExtractElement")
	if err != nil {
		return nil, err
	}
	v, err := b.vector("ExtractElement", vec)
	if err != nil {
		return nil, err
	}
	i, err := b.integer("ExtractElement", idx)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildExtractElement(b.b, v, i, n)), nil
}

// InsertElement emits a copy of vec with one lane replaced by elt.
func (b *Builder) InsertElement(vec, elt, idx Value, name string) (Value, error) {
	ref, err := b.ready("InsertElement")
	if err != nil {
		return nil, err
	}
	v, err := b.vector("InsertElement", vec)
	if err != nil {
		return nil, err
	}
	e, err := b.operand("InsertElement", elt)
	if err != nil {
		return nil, err
	}
	if C.LLVMGetElementType(C.LLVMTypeOf(v)) != C.LLVMTypeOf(e) {
		return nil, constructionErrorf("InsertElement", "element type differs from the vector lanes")
	}
	i, err := b.integer("InsertElement", idx)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildInsertElement(b.b, v, e, i, n)), nil
}

// ShuffleVector emits a lane permutation of v1 and v2 selected by a
// constant mask.
func (b *Builder) ShuffleVector(v1, v2, mask Value, name string) (Value, error) {
	ref, err := b.ready("ShuffleVector")
	if err != nil {
		return nil, err
	}
	x, err := b.vector("ShuffleVector", v1)
	if err != nil {
		return nil, err
	}
	y, err := b.vector("ShuffleVector", v2)
	if err != nil {
		return nil, err
	}
	if C.LLVMTypeOf(x) != C.LLVMTypeOf(y) {
		return nil, constructionErrorf("ShuffleVector", "operand types differ")
	}
	m, err := b.vector("ShuffleVector", mask)
	if err != nil {
		return nil, err
	}
	if C.LLVMIsConstant(m) == 0 || scalarKind(C.LLVMTypeOf(m)) != enum.TypeKindInteger {
		return nil, constructionErrorf("ShuffleVector", "mask must be a constant integer vector")
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildShuffleVector(b.b, x, y, m, n)), nil
}

// ExtractValue emits a read of member idx of a struct or array value.
func (b *Builder) ExtractValue(agg Value, idx int, name string) (Value, error) {
	ref, err := b.ready("ExtractValue")
	if err != nil {
		return nil, err
	}
	a, err := b.aggregate("ExtractValue", agg, idx)
	if err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildExtractValue(b.b, a, C.unsigned(idx), n)), nil
}

// InsertValue emits a copy of agg with member idx replaced by elt.
func (b *Builder) InsertValue(agg, elt Value, idx int, name string) (Value, error) {
	ref, err := b.ready("InsertValue")
	if err != nil {
		return nil, err
	}
	a, err := b.aggregate("InsertValue", agg, idx)
	if err != nil {
		return nil, err
	}
	e, err := b.operand("InsertValue", elt)
	if err != nil {
		return nil, err
	}
	if memberType(C.LLVMTypeOf(a), idx) != C.LLVMTypeOf(e) {
		return nil, constructionErrorf("InsertValue", "element type differs from member %d", idx)
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildInsertValue(b.b, a, e, C.unsigned(idx), n)), nil
}

func memberType(t C.LLVMTypeRef, idx int) C.LLVMTypeRef {
	if enum.TypeKind(C.LLVMGetTypeKind(t)) == enum.TypeKindStruct {
		return C.LLVMStructGetTypeAtIndex(t, C.unsigned(idx))
	}
	return C.LLVMGetElementType(t)
}

// Freeze emits a freeze of v.
func (b *Builder) Freeze(v Value, name string) (Value, error) {
	return b.unary("Freeze", anyOperand, v, name, func(x C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFreeze(b.b, x, n)
	})
}

// IsNull emits a comparison of v against its null value.
func (b *Builder) IsNull(v Value, name string) (Value, error) {
	return b.unary("IsNull", intOrPointerOperand, v, name, func(x C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildIsNull(b.b, x, n)
	})
}

// IsNotNull emits the negation of IsNull.
func (b *Builder) IsNotNull(v Value, name string) (Value, error) {
	return b.unary("IsNotNull", intOrPointerOperand, v, name, func(x C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildIsNotNull(b.b, x, n)
	})
}

// PtrDiff emits the distance between two pointers in units of elem.
func (b *Builder) PtrDiff(elem Type, lhs, rhs Value, name string) (Value, error) {
	ref, err := b.ready("PtrDiff")
	if err != nil {
		return nil, err
	}
	t, err := b.sized("PtrDiff", elem)
	if err != nil {
		return nil, err
	}
	l, err := b.pointer("PtrDiff", lhs)
	if err != nil {
		return nil, err
	}
	r, err := b.pointer("PtrDiff", rhs)
	if err != nil {
		return nil, err
	}
	if C.LLVMTypeOf(l) != C.LLVMTypeOf(r) {
		return nil, constructionErrorf("PtrDiff", "operand types differ")
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildPtrDiff2(b.b, t, l, r, n)), nil
}

// Fence emits a fence. Only acquire, release, acq_rel and seq_cst fences
// exist.
func (b *Builder) Fence(ordering enum.AtomicOrdering, singleThread bool, name string) (Value, error) {
	ref, err := b.ready("Fence")
	if err != nil {
		return nil, err
	}
	if err := validOrdering("Fence", ordering, atomicOrderings[1:]...); err != nil {
		return nil, err
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, C.LLVMBuildFence(b.b, C.LLVMAtomicOrdering(ordering), llvmBool(singleThread), n)), nil
}

// AtomicRMW emits an atomic read-modify-write of ptr with val.
func (b *Builder) AtomicRMW(op enum.AtomicRMWBinOp, ptr, val Value, ordering enum.AtomicOrdering, singleThread bool) (Value, error) {
	ref, err := b.ready("AtomicRMW")
	if err != nil {
		return nil, err
	}
	if err := member("AtomicRMW", enum.AtomicRMWBinOpTable, int64(op)); err != nil {
		return nil, err
	}
	p, err := b.pointer("AtomicRMW", ptr)
	if err != nil {
		return nil, err
	}
	v, err := b.operand("AtomicRMW", val)
	if err != nil {
		return nil, err
	}
	k := enum.TypeKind(C.LLVMGetTypeKind(C.LLVMTypeOf(v)))
	switch op {
	case enum.RMWFAdd, enum.RMWFSub, enum.RMWFMax, enum.RMWFMin:
		if !k.IsFloatingPoint() {
			return nil, constructionErrorf("AtomicRMW", "%s needs a floating point value", op)
		}
	case enum.RMWXchg:
		if k != enum.TypeKindInteger && k != enum.TypeKindPointer && !k.IsFloatingPoint() {
			return nil, constructionErrorf("AtomicRMW", "xchg needs an integer, pointer or floating point value")
		}
	default:
		if k != enum.TypeKindInteger {
			return nil, constructionErrorf("AtomicRMW", "%s needs an integer value", op)
		}
	}
	if err := validOrdering("AtomicRMW", ordering, atomicOrderings...); err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildAtomicRMW(b.b, C.LLVMAtomicRMWBinOp(op), p, v,
		C.LLVMAtomicOrdering(ordering), llvmBool(singleThread))), nil
}

// AtomicCmpXchg emits a compare-and-exchange of ptr. The failure ordering
// cannot release.
func (b *Builder) AtomicCmpXchg(ptr, cmp, newVal Value, success, failure enum.AtomicOrdering, singleThread bool) (Value, error) {
	ref, err := b.ready("AtomicCmpXchg")
	if err != nil {
		return nil, err
	}
	p, err := b.pointer("AtomicCmpXchg", ptr)
	if err != nil {
		return nil, err
	}
	c, err := b.operand("AtomicCmpXchg", cmp)
	if err != nil {
		return nil, err
	}
	nv, err := b.operand("AtomicCmpXchg", newVal)
	if err != nil {
		return nil, err
	}
	if C.LLVMTypeOf(c) != C.LLVMTypeOf(nv) {
		return nil, constructionErrorf("AtomicCmpXchg", "operand types differ")
	}
	if k := enum.TypeKind(C.LLVMGetTypeKind(C.LLVMTypeOf(c))); k != enum.TypeKindInteger && k != enum.TypeKindPointer {
		return nil, constructionErrorf("AtomicCmpXchg", "operands must be integer or pointer values")
	}
	if err := validOrdering("AtomicCmpXchg", success, atomicOrderings...); err != nil {
		return nil, err
	}
	if err := validOrdering("AtomicCmpXchg", failure,
		enum.OrderingMonotonic, enum.OrderingAcquire, enum.OrderingSequentiallyConsistent); err != nil {
		return nil, err
	}
	return b.result(ref, C.LLVMBuildAtomicCmpXchg(b.b, p, c, nv,
		C.LLVMAtomicOrdering(success), C.LLVMAtomicOrdering(failure), llvmBool(singleThread))), nil
}

// sized validates a type argument that must have a size.
func (b *Builder) sized(op string, t Type) (C.LLVMTypeRef, error) {
	ty, err := b.typeArg(op, t)
	if err != nil {
		return nil, err
	}
	if C.LLVMTypeIsSized(ty) == 0 {
		return nil, constructionErrorf(op, "type is not sized")
	}
	return ty, nil
}

func (b *Builder) integer(op string, v Value) (C.LLVMValueRef, error) {
	x, err := b.operand(op, v)
	if err != nil {
		return nil, err
	}
	if enum.TypeKind(C.LLVMGetTypeKind(C.LLVMTypeOf(x))) != enum.TypeKindInteger {
		return nil, constructionErrorf(op, "operand is not an integer")
	}
	return x, nil
}

func (b *Builder) vector(op string, v Value) (C.LLVMValueRef, error) {
	x, err := b.operand(op, v)
	if err != nil {
		return nil, err
	}
	switch enum.TypeKind(C.LLVMGetTypeKind(C.LLVMTypeOf(x))) {
	case enum.TypeKindVector, enum.TypeKindScalableVector:
		return x, nil
	}
	return nil, constructionErrorf(op, "operand is not a vector")
}

// aggregate validates a struct or array operand and a member index into it.
func (b *Builder) aggregate(op string, v Value, idx int) (C.LLVMValueRef, error) {
	x, err := b.operand(op, v)
	if err != nil {
		return nil, err
	}
	t := C.LLVMTypeOf(x)
	var count int
	switch enum.TypeKind(C.LLVMGetTypeKind(t)) {
	case enum.TypeKindStruct:
		count = int(C.LLVMCountStructElementTypes(t))
	case enum.TypeKindArray:
		count = int(C.LLVMGetArrayLength2(t))
	default:
		return nil, constructionErrorf(op, "operand is not a struct or array")
	}
	if idx < 0 || idx >= count {
		return nil, &IndexError{What: "aggregate member", Index: idx, Len: count}
	}
	return x, nil
}
