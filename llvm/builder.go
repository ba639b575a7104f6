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
	"llvmbind/ownership"
)

type builderState int

const (
	unpositioned builderState = iota
	atEnd
	beforeInstruction
)

// Builder is a cursor that emits instructions into a basic block. It starts
// unpositioned: every emission method fails with a PositionError until
// PositionAtEnd, PositionBefore or Position is called. Each emitted
// instruction is inserted at the cursor, which then sits right after it.
//
// Emission methods return a Value rather than an Instruction because the
// native builder folds operations on constants into constants.
type Builder struct {
	b     C.LLVMBuilderRef
	ctx   C.LLVMContextRef
	owner *ownership.Owner
	state builderState
	block *BasicBlock
}

// NewBuilder creates a builder for ctx, or for the global context when ctx
// is nil.
func NewBuilder(ctx *Context) (*Builder, error) {
	if ctx == nil {
		ctx = GlobalContext()
	}
	return ctx.NewBuilder()
}

// NewBuilder creates a builder emitting into blocks of the context.
func (c *Context) NewBuilder() (*Builder, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	lease, err := contextLease(c.c)
	if err != nil {
		return nil, err
	}
	b := C.LLVMCreateBuilderInContext(c.c)
	owner := ownership.New("builder", func() {
		C.LLVMDisposeBuilder(b)
		if lease != nil {
			_ = lease.Drop()
		}
	})
	return &Builder{b: b, ctx: c.c, owner: owner}, nil
}

// Close disposes the builder.
func (b *Builder) Close() error { return b.owner.Release() }

// Positioned reports whether emission methods may be called.
func (b *Builder) Positioned() bool { return b.state != unpositioned }

// PositionAtEnd moves the cursor to the end of bb.
func (b *Builder) PositionAtEnd(bb *BasicBlock) error {
	if err := b.target("PositionAtEnd", bb); err != nil {
		return err
	}
	C.LLVMPositionBuilderAtEnd(b.b, bb.bb)
	b.state, b.block = atEnd, bb
	return nil
}

// PositionBefore moves the cursor right before inst.
func (b *Builder) PositionBefore(inst *Instruction) error {
	bb, err := b.anchor("PositionBefore", inst)
	if err != nil {
		return err
	}
	C.LLVMPositionBuilderBefore(b.b, inst.v)
	b.state, b.block = beforeInstruction, bb
	return nil
}

// Position moves the cursor before inst in bb, or to the end of bb when inst
// is nil.
func (b *Builder) Position(bb *BasicBlock, inst *Instruction) error {
	if inst == nil {
		return b.PositionAtEnd(bb)
	}
	if err := b.target("Position", bb); err != nil {
		return err
	}
	parent, err := b.anchor("Position", inst)
	if err != nil {
		return err
	}
	if parent.bb != bb.bb {
		return constructionErrorf("Position", "instruction is not in the block")
	}
	C.LLVMPositionBuilder(b.b, bb.bb, inst.v)
	b.state, b.block = beforeInstruction, bb
	return nil
}

// ClearPosition returns the builder to the unpositioned state.
func (b *Builder) ClearPosition() error {
	if err := b.owner.Check(); err != nil {
		return err
	}
	C.LLVMClearInsertionPosition(b.b)
	b.state, b.block = unpositioned, nil
	return nil
}

// InsertBlock returns the block the cursor is in, or nil when unpositioned.
func (b *Builder) InsertBlock() (*BasicBlock, error) {
	if err := b.owner.Check(); err != nil {
		return nil, err
	}
	if b.state == unpositioned {
		return nil, nil
	}
	if err := b.block.check(); err != nil {
		return nil, err
	}
	return &BasicBlock{bb: C.LLVMGetInsertBlock(b.b), ref: b.block.ref, detached: b.block.detached}, nil
}

// Insert places a detached instruction at the cursor. The module takes the
// instruction over; the returned handle is borrowed from it and inst
// becomes inert.
func (b *Builder) Insert(inst *Instruction, name string) (Value, error) {
	ref, err := b.ready("Insert")
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, constructionErrorf("Insert", "nil instruction")
	}
	if inst.detached == nil {
		return nil, constructionErrorf("Insert", "instruction already belongs to a block")
	}
	if err := inst.detached.Check(); err != nil {
		return nil, err
	}
	if !inst.ref.OwnerAlive() {
		return nil, &UseAfterFreeError{Resource: inst.ref.Resource()}
	}
	if inst.context() != b.ctx {
		return nil, constructionErrorf("Insert", "instruction belongs to another context")
	}
	n := C.CString(name)
	defer freeCString(n)
	C.LLVMInsertIntoBuilderWithName(b.b, inst.v, n)
	if err := inst.detached.Transfer(); err != nil {
		return nil, err
	}
	return wrapValue(inst.v, ref), nil
}

func (b *Builder) target(op string, bb *BasicBlock) error {
	if err := b.owner.Check(); err != nil {
		return err
	}
	if err := liveBlock(op, bb); err != nil {
		return err
	}
	if bb.context() != b.ctx {
		return constructionErrorf(op, "block belongs to another context")
	}
	return nil
}

func (b *Builder) anchor(op string, inst *Instruction) (*BasicBlock, error) {
	if err := b.owner.Check(); err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, constructionErrorf(op, "nil instruction")
	}
	if err := inst.check(); err != nil {
		return nil, err
	}
	if inst.context() != b.ctx {
		return nil, constructionErrorf(op, "instruction belongs to another context")
	}
	bb := C.LLVMGetInstructionParent(inst.v)
	if bb == nil {
		return nil, constructionErrorf(op, "instruction is not in a block")
	}
	return &BasicBlock{bb: bb, ref: inst.ref}, nil
}

// ready checks that an emission may happen and returns the view the new
// value borrows from. The position is checked before any argument.
func (b *Builder) ready(op string) (ownership.Ref, error) {
	if err := b.owner.Check(); err != nil {
		return ownership.Ref{}, err
	}
	if b.state == unpositioned {
		return ownership.Ref{}, &PositionError{Op: op}
	}
	if err := b.block.check(); err != nil {
		return ownership.Ref{}, err
	}
	return b.block.ref, nil
}

// attached additionally requires the cursor block to belong to a function,
// for emissions that add declarations to the module.
func (b *Builder) attached(op string) (ownership.Ref, error) {
	ref, err := b.ready(op)
	if err != nil {
		return ref, err
	}
	if C.LLVMGetBasicBlockParent(b.block.bb) == nil {
		return ref, constructionErrorf(op, "insertion block is not in a function")
	}
	return ref, nil
}

func (b *Builder) operand(op string, v Value) (C.LLVMValueRef, error) {
	x, err := baseOf(op, v)
	if err != nil {
		return nil, err
	}
	if x.context() != b.ctx {
		return nil, constructionErrorf(op, "operand belongs to another context")
	}
	return x.v, nil
}

func (b *Builder) operands(op string, vs []Value) ([]C.LLVMValueRef, error) {
	raw := make([]C.LLVMValueRef, len(vs))
	for i, v := range vs {
		x, err := b.operand(op, v)
		if err != nil {
			return nil, err
		}
		raw[i] = x
	}
	return raw, nil
}

func (b *Builder) typeArg(op string, t Type) (C.LLVMTypeRef, error) {
	x, err := typeOf(op, t)
	if err != nil {
		return nil, err
	}
	if x.context() != b.ctx {
		return nil, constructionErrorf(op, "type belongs to another context")
	}
	return x.t, nil
}

func (b *Builder) blockArg(op string, bb *BasicBlock) (C.LLVMBasicBlockRef, error) {
	if err := liveBlock(op, bb); err != nil {
		return nil, err
	}
	if bb.context() != b.ctx {
		return nil, constructionErrorf(op, "block belongs to another context")
	}
	return bb.bb, nil
}

// optionalBlock accepts nil, meaning "unwind to caller".
func (b *Builder) optionalBlock(op string, bb *BasicBlock) (C.LLVMBasicBlockRef, error) {
	if bb == nil {
		return nil, nil
	}
	return b.blockArg(op, bb)
}

func scalarKind(t C.LLVMTypeRef) enum.TypeKind {
	k := enum.TypeKind(C.LLVMGetTypeKind(t))
	if k == enum.TypeKindVector || k == enum.TypeKindScalableVector {
		return enum.TypeKind(C.LLVMGetTypeKind(C.LLVMGetElementType(t)))
	}
	return k
}

func shapeOf(t C.LLVMTypeRef) enum.CastShape {
	var s enum.CastShape
	k := enum.TypeKind(C.LLVMGetTypeKind(t))
	if k == enum.TypeKindVector || k == enum.TypeKindScalableVector {
		s.Lanes = int(C.LLVMGetVectorSize(t))
		s.Scalable = k == enum.TypeKindScalableVector
		t = C.LLVMGetElementType(t)
		k = enum.TypeKind(C.LLVMGetTypeKind(t))
	}
	s.Kind = k
	switch {
	case k == enum.TypeKindInteger:
		s.Bits = int(C.LLVMGetIntTypeWidth(t))
	case k == enum.TypeKindPointer:
		s.AddrSpace = int(C.LLVMGetPointerAddressSpace(t))
	default:
		s.Bits = k.FloatBits()
	}
	return s
}

type operandClass int

const (
	anyOperand operandClass = iota
	intOperand
	fpOperand
	intOrPointerOperand
)

func (c operandClass) accepts(t C.LLVMTypeRef) bool {
	switch c {
	case intOperand:
		return scalarKind(t) == enum.TypeKindInteger
	case fpOperand:
		return scalarKind(t).IsFloatingPoint()
	case intOrPointerOperand:
		k := scalarKind(t)
		return k == enum.TypeKindInteger || k == enum.TypeKindPointer
	}
	return true
}

func (c operandClass) String() string {
	switch c {
	case intOperand:
		return "integer"
	case fpOperand:
		return "floating point"
	case intOrPointerOperand:
		return "integer or pointer"
	}
	return "any"
}

func (b *Builder) result(ref ownership.Ref, v C.LLVMValueRef) Value {
	return wrapValue(v, ref)
}

func (b *Builder) binary(op string, class operandClass, lhs, rhs Value, name string,
	build func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef) (Value, error) {
	ref, err := b.ready(op)
	if err != nil {
		return nil, err
	}
	l, err := b.operand(op, lhs)
	if err != nil {
		return nil, err
	}
	r, err := b.operand(op, rhs)
	if err != nil {
		return nil, err
	}
	if C.LLVMTypeOf(l) != C.LLVMTypeOf(r) {
		return nil, constructionErrorf(op, "operand types differ")
	}
	if !class.accepts(C.LLVMTypeOf(l)) {
		return nil, constructionErrorf(op, "operands must be %s values", class)
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, build(l, r, n)), nil
}

func (b *Builder) unary(op string, class operandClass, v Value, name string,
	build func(v C.LLVMValueRef, n *C.char) C.LLVMValueRef) (Value, error) {
	ref, err := b.ready(op)
	if err != nil {
		return nil, err
	}
	x, err := b.operand(op, v)
	if err != nil {
		return nil, err
	}
	if !class.accepts(C.LLVMTypeOf(x)) {
		return nil, constructionErrorf(op, "operand must be a %s value", class)
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, build(x, n)), nil
}

// cast emits a conversion after checking that one of the opcodes the native
// entry point may pick accepts the operand and destination.
func (b *Builder) cast(op string, v Value, dest Type, name string, ops []enum.Opcode,
	build func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef) (Value, error) {
	ref, err := b.ready(op)
	if err != nil {
		return nil, err
	}
	x, err := b.operand(op, v)
	if err != nil {
		return nil, err
	}
	t, err := b.typeArg(op, dest)
	if err != nil {
		return nil, err
	}
	src, dst := shapeOf(C.LLVMTypeOf(x)), shapeOf(t)
	valid := false
	for _, o := range ops {
		valid = valid || enum.ValidCast(o, src, dst)
	}
	if !valid {
		return nil, constructionErrorf(op, "cannot convert %s to %s", src.Kind, dst.Kind)
	}
	n := C.CString(name)
	defer freeCString(n)
	return b.result(ref, build(x, t, n)), nil
}

func validOrdering(op string, o enum.AtomicOrdering, allowed ...enum.AtomicOrdering) error {
	for _, a := range allowed {
		if o == a {
			return nil
		}
	}
	return constructionErrorf(op, "ordering %s not allowed", o)
}

var atomicOrderings = []enum.AtomicOrdering{
	enum.OrderingMonotonic, enum.OrderingAcquire, enum.OrderingRelease,
	enum.OrderingAcquireRelease, enum.OrderingSequentiallyConsistent,
}
