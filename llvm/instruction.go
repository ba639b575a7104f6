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

// Instruction is an instruction inside a basic block, or a detached one
// produced by Clone or RemoveFromParent.
type Instruction struct {
	value
	detached *ownership.Owner
}

// AsInstruction returns the generic instruction view of v.
func AsInstruction(v Value) (*Instruction, bool) {
	if isNilValue(v) {
		return nil, false
	}
	switch i := v.(type) {
	case *Instruction:
		return i, true
	case interface{ instruction() *Instruction }:
		return i.instruction(), true
	}
	b := v.valueBase()
	if b.check() != nil || C.LLVMIsAInstruction(b.v) == nil {
		return nil, false
	}
	return &Instruction{value: *b}, true
}

func (i *Instruction) instruction() *Instruction { return i }

// Specialize returns the most specific wrapper for the instruction, such as
// *PHINode or *CallInst.
func (i *Instruction) Specialize() (Value, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return wrapInstruction(i.value, i.detached), nil
}

// Opcode returns the instruction's operation.
func (i *Instruction) Opcode() (enum.Opcode, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.Opcode(C.LLVMGetInstructionOpcode(i.v)), nil
}

// IsTerminator reports whether the instruction ends a block.
func (i *Instruction) IsTerminator() (bool, error) {
	if err := i.check(); err != nil {
		return false, err
	}
	return C.LLVMIsATerminatorInst(i.v) != nil, nil
}

// OperandCount returns the number of operands.
func (i *Instruction) OperandCount() (int, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMGetNumOperands(i.v)), nil
}

// Operand returns the i-th operand.
func (i *Instruction) Operand(n int) (Value, error) {
	count, err := i.OperandCount()
	if err != nil {
		return nil, err
	}
	if n < 0 || n >= count {
		return nil, &IndexError{What: "operand", Index: n, Len: count}
	}
	return wrapValue(C.LLVMGetOperand(i.v, C.unsigned(n)), i.ref), nil
}

// Operands returns all operands in order.
func (i *Instruction) Operands() ([]Value, error) {
	count, err := i.OperandCount()
	if err != nil {
		return nil, err
	}
	out := make([]Value, count)
	for n := range out {
		out[n] = wrapValue(C.LLVMGetOperand(i.v, C.unsigned(n)), i.ref)
	}
	return out, nil
}

// SetOperand replaces the i-th operand with a value of the same type.
func (i *Instruction) SetOperand(n int, v Value) error {
	count, err := i.OperandCount()
	if err != nil {
		return err
	}
	if n < 0 || n >= count {
		return &IndexError{What: "operand", Index: n, Len: count}
	}
	b, err := baseOf("SetOperand", v)
	if err != nil {
		return err
	}
	if C.LLVMTypeOf(b.v) != C.LLVMTypeOf(C.LLVMGetOperand(i.v, C.unsigned(n))) {
		return constructionErrorf("SetOperand", "operand %d has a different type", n)
	}
	C.LLVMSetOperand(i.v, C.unsigned(n), b.v)
	return nil
}

// Parent returns the block containing the instruction, or nil when detached.
func (i *Instruction) Parent() (*BasicBlock, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	bb := C.LLVMGetInstructionParent(i.v)
	if bb == nil {
		return nil, nil
	}
	return &BasicBlock{bb: bb, ref: i.ref}, nil
}

// Next returns the following instruction of the block, or nil.
func (i *Instruction) Next() (*Instruction, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return i.sibling(C.LLVMGetNextInstruction(i.v)), nil
}

// Prev returns the preceding instruction of the block, or nil.
func (i *Instruction) Prev() (*Instruction, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return i.sibling(C.LLVMGetPreviousInstruction(i.v)), nil
}

func (i *Instruction) sibling(v C.LLVMValueRef) *Instruction {
	if v == nil {
		return nil
	}
	return &Instruction{value: value{v: v, ref: i.ref}}
}

// SuccessorCount returns the number of successors of a terminator.
func (i *Instruction) SuccessorCount() (int, error) {
	term, err := i.IsTerminator()
	if err != nil || !term {
		return 0, err
	}
	return int(C.LLVMGetNumSuccessors(i.v)), nil
}

// Successor returns the n-th successor block of a terminator.
func (i *Instruction) Successor(n int) (*BasicBlock, error) {
	count, err := i.SuccessorCount()
	if err != nil {
		return nil, err
	}
	if n < 0 || n >= count {
		return nil, &IndexError{What: "successor", Index: n, Len: count}
	}
	return &BasicBlock{bb: C.LLVMGetSuccessor(i.v, C.unsigned(n)), ref: i.ref}, nil
}

// SetSuccessor redirects the n-th successor of a terminator.
func (i *Instruction) SetSuccessor(n int, bb *BasicBlock) error {
	count, err := i.SuccessorCount()
	if err != nil {
		return err
	}
	if n < 0 || n >= count {
		return &IndexError{What: "successor", Index: n, Len: count}
	}
	if err := liveBlock("SetSuccessor", bb); err != nil {
		return err
	}
	C.LLVMSetSuccessor(i.v, C.unsigned(n), bb.bb)
	return nil
}

// HasMetadata reports whether any metadata is attached.
func (i *Instruction) HasMetadata() (bool, error) {
	if err := i.check(); err != nil {
		return false, err
	}
	return C.LLVMHasMetadata(i.v) != 0, nil
}

// Metadata returns the metadata of the given kind id as a value, or nil.
func (i *Instruction) Metadata(kind uint32) (Value, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return wrapValue(C.LLVMGetMetadata(i.v, C.unsigned(kind)), i.ref), nil
}

// Clone returns a detached copy of the instruction, owned by the caller
// until it is inserted with Builder.Insert.
func (i *Instruction) Clone() (*Instruction, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return detachedInstruction(C.LLVMInstructionClone(i.v), i.ref), nil
}

// RemoveFromParent unlinks the instruction from its block and returns it as
// a detached instruction owned by the caller. Every handle derived from the
// module before the call becomes invalid.
func (i *Instruction) RemoveFromParent() (*Instruction, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	if i.detached != nil || C.LLVMGetInstructionParent(i.v) == nil {
		return nil, constructionErrorf("RemoveFromParent", "instruction has no parent")
	}
	C.LLVMInstructionRemoveFromParent(i.v)
	if err := i.ref.Revoke(); err != nil {
		return nil, err
	}
	return detachedInstruction(i.v, i.ref.Fresh()), nil
}

// Delete erases the instruction from its block, or frees a detached one.
// Every handle derived from the module before the call becomes invalid.
func (i *Instruction) Delete() error {
	if err := i.check(); err != nil {
		return err
	}
	if i.detached != nil {
		return i.Close()
	}
	C.LLVMInstructionEraseFromParent(i.v)
	return i.ref.Revoke()
}

// Close frees a detached instruction. Instructions inside a block are owned
// by the module and cannot be closed.
func (i *Instruction) Close() error {
	if i.detached == nil {
		return ownership.ErrNotOwned
	}
	if err := i.detached.Release(); err != nil {
		return err
	}
	// Other handles to the freed instruction carry the module view.
	if i.ref.Alive() {
		return i.ref.Revoke()
	}
	return nil
}

// detachedInstruction wraps an instruction outside any block. Its operands
// still point into the module of mod, so it is freed only while that module
// is alive.
func detachedInstruction(v C.LLVMValueRef, mod ownership.Ref) *Instruction {
	owner := ownership.New("instruction", func() {
		if mod.OwnerAlive() {
			C.LLVMDeleteInstruction(v)
		}
	})
	return &Instruction{value: value{v: v, ref: mod}, detached: owner}
}

// AllocaInst reserves stack memory.
type AllocaInst struct{ Instruction }

// AllocatedType returns the type of the reserved object.
func (i *AllocaInst) AllocatedType() (Type, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	t := C.LLVMGetAllocatedType(i.v)
	return wrapType(t, contextRef(C.LLVMGetTypeContext(t))), nil
}

// memoryAccess carries the accessors shared by load, store and atomics.
type memoryAccess struct{ Instruction }

// Alignment returns the access alignment in bytes.
func (i *memoryAccess) Alignment() (int, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMGetAlignment(i.v)), nil
}

// SetAlignment sets the access alignment in bytes.
func (i *memoryAccess) SetAlignment(bytes int) error {
	if err := i.check(); err != nil {
		return err
	}
	if err := validAlignment("SetAlignment", bytes); err != nil {
		return err
	}
	C.LLVMSetAlignment(i.v, C.unsigned(bytes))
	return nil
}

// IsVolatile reports whether the access is volatile.
func (i *memoryAccess) IsVolatile() (bool, error) {
	if err := i.check(); err != nil {
		return false, err
	}
	return C.LLVMGetVolatile(i.v) != 0, nil
}

func (i *memoryAccess) SetVolatile(v bool) error {
	if err := i.check(); err != nil {
		return err
	}
	C.LLVMSetVolatile(i.v, llvmBool(v))
	return nil
}

// Ordering returns the atomic ordering.
func (i *memoryAccess) Ordering() (enum.AtomicOrdering, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.AtomicOrdering(C.LLVMGetOrdering(i.v)), nil
}

func (i *memoryAccess) SetOrdering(o enum.AtomicOrdering) error {
	if err := i.check(); err != nil {
		return err
	}
	if err := member("SetOrdering", enum.AtomicOrderingTable, int64(o)); err != nil {
		return err
	}
	if C.LLVMIsAAtomicRMWInst(i.v) != nil && o < enum.OrderingMonotonic {
		return constructionErrorf("SetOrdering", "atomicrmw requires at least monotonic ordering")
	}
	C.LLVMSetOrdering(i.v, C.LLVMAtomicOrdering(o))
	return nil
}

// LoadInst reads memory.
type LoadInst struct{ memoryAccess }

// StoreInst writes memory.
type StoreInst struct{ memoryAccess }

// AtomicRMWInst atomically modifies memory.
type AtomicRMWInst struct{ memoryAccess }

// BinOp returns the modification performed.
func (i *AtomicRMWInst) BinOp() (enum.AtomicRMWBinOp, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.AtomicRMWBinOp(C.LLVMGetAtomicRMWBinOp(i.v)), nil
}

// AtomicCmpXchgInst atomically compares and exchanges memory.
type AtomicCmpXchgInst struct{ Instruction }

func (i *AtomicCmpXchgInst) SuccessOrdering() (enum.AtomicOrdering, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.AtomicOrdering(C.LLVMGetCmpXchgSuccessOrdering(i.v)), nil
}

func (i *AtomicCmpXchgInst) FailureOrdering() (enum.AtomicOrdering, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.AtomicOrdering(C.LLVMGetCmpXchgFailureOrdering(i.v)), nil
}

// IsWeak reports whether the exchange may fail spuriously.
func (i *AtomicCmpXchgInst) IsWeak() (bool, error) {
	if err := i.check(); err != nil {
		return false, err
	}
	return C.LLVMGetWeak(i.v) != 0, nil
}

func (i *AtomicCmpXchgInst) SetWeak(weak bool) error {
	if err := i.check(); err != nil {
		return err
	}
	C.LLVMSetWeak(i.v, llvmBool(weak))
	return nil
}

// FenceInst orders memory operations.
type FenceInst struct{ Instruction }

func (i *FenceInst) Ordering() (enum.AtomicOrdering, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.AtomicOrdering(C.LLVMGetOrdering(i.v)), nil
}

// CallInst calls a function or inline asm. InvokeInst shares its accessors.
type CallInst struct{ Instruction }

// CalledType returns the function type used for the call.
func (i *CallInst) CalledType() (*FunctionType, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	t := C.LLVMGetCalledFunctionType(i.v)
	return &FunctionType{typ{t: t, ref: contextRef(C.LLVMGetTypeContext(t))}}, nil
}

// Callee returns the called value.
func (i *CallInst) Callee() (Value, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return wrapValue(C.LLVMGetCalledValue(i.v), i.ref), nil
}

// ArgCount returns the number of call arguments.
func (i *CallInst) ArgCount() (int, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMGetNumArgOperands(i.v)), nil
}

func (i *CallInst) CallConv() (enum.CallConv, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.CallConv(C.LLVMGetInstructionCallConv(i.v)), nil
}

func (i *CallInst) SetCallConv(cc enum.CallConv) error {
	if err := i.check(); err != nil {
		return err
	}
	if err := member("SetCallConv", enum.CallConvTable, int64(cc)); err != nil {
		return err
	}
	C.LLVMSetInstructionCallConv(i.v, C.unsigned(cc))
	return nil
}

// TailCallKind returns the tail call marker of a call.
func (i *CallInst) TailCallKind() (enum.TailCallKind, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	if C.LLVMIsACallInst(i.v) == nil {
		return enum.TailCallNone, nil
	}
	return enum.TailCallKind(C.LLVMGetTailCallKind(i.v)), nil
}

func (i *CallInst) SetTailCallKind(k enum.TailCallKind) error {
	if err := i.check(); err != nil {
		return err
	}
	if err := member("SetTailCallKind", enum.TailCallKindTable, int64(k)); err != nil {
		return err
	}
	if C.LLVMIsACallInst(i.v) == nil {
		return constructionErrorf("SetTailCallKind", "not a call instruction")
	}
	C.LLVMSetTailCallKind(i.v, C.LLVMTailCallKind(k))
	return nil
}

// AttributeCount returns the number of call-site attributes at idx.
func (i *CallInst) AttributeCount(idx enum.AttributeIndex) (int, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	ci, err := attributeIndex(idx, int(C.LLVMGetNumArgOperands(i.v)))
	if err != nil {
		return 0, err
	}
	return int(C.LLVMGetCallSiteAttributeCount(i.v, ci)), nil
}

// AddAttribute attaches a call-site attribute at idx.
func (i *CallInst) AddAttribute(idx enum.AttributeIndex, a *Attribute) error {
	if err := i.check(); err != nil {
		return err
	}
	ci, err := attributeIndex(idx, int(C.LLVMGetNumArgOperands(i.v)))
	if err != nil {
		return err
	}
	if a == nil {
		return constructionErrorf("AddAttribute", "nil attribute")
	}
	if err := a.check(); err != nil {
		return err
	}
	C.LLVMAddCallSiteAttribute(i.v, ci, a.a)
	return nil
}

// InvokeInst calls with an exceptional successor.
type InvokeInst struct{ CallInst }

func (i *InvokeInst) NormalDest() (*BasicBlock, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return &BasicBlock{bb: C.LLVMGetNormalDest(i.v), ref: i.ref}, nil
}

func (i *InvokeInst) UnwindDest() (*BasicBlock, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return &BasicBlock{bb: C.LLVMGetUnwindDest(i.v), ref: i.ref}, nil
}

// ICmpInst compares integers or pointers.
type ICmpInst struct{ Instruction }

func (i *ICmpInst) Predicate() (enum.IntPredicate, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.IntPredicate(C.LLVMGetICmpPredicate(i.v)), nil
}

// FCmpInst compares floating point values.
type FCmpInst struct{ Instruction }

func (i *FCmpInst) Predicate() (enum.RealPredicate, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return enum.RealPredicate(C.LLVMGetFCmpPredicate(i.v)), nil
}

// PHINode selects a value by predecessor.
type PHINode struct{ Instruction }

// AddIncoming adds one (value, block) edge per pair.
func (i *PHINode) AddIncoming(vals []Value, blocks []*BasicBlock) error {
	if err := i.check(); err != nil {
		return err
	}
	if len(vals) != len(blocks) {
		return constructionErrorf("AddIncoming", "%d values for %d blocks", len(vals), len(blocks))
	}
	raw, err := rawValues("AddIncoming", vals)
	if err != nil {
		return err
	}
	t := C.LLVMTypeOf(i.v)
	rawBlocks := make([]C.LLVMBasicBlockRef, len(blocks))
	for n, bb := range blocks {
		if err := liveBlock("AddIncoming", bb); err != nil {
			return err
		}
		if C.LLVMTypeOf(raw[n]) != t {
			return constructionErrorf("AddIncoming", "value %d does not match the phi type", n)
		}
		rawBlocks[n] = bb.bb
	}
	if len(raw) == 0 {
		return nil
	}
	count, err := cUnsigned("AddIncoming", len(raw))
	if err != nil {
		return err
	}
	C.LLVMAddIncoming(i.v, valueRefs(raw), &rawBlocks[0], count)
	return nil
}

// IncomingCount returns the number of incoming edges.
func (i *PHINode) IncomingCount() (int, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return int(C.LLVMCountIncoming(i.v)), nil
}

// Incoming returns the n-th incoming value and its block.
func (i *PHINode) Incoming(n int) (Value, *BasicBlock, error) {
	count, err := i.IncomingCount()
	if err != nil {
		return nil, nil, err
	}
	if n < 0 || n >= count {
		return nil, nil, &IndexError{What: "incoming edge", Index: n, Len: count}
	}
	v := wrapValue(C.LLVMGetIncomingValue(i.v, C.unsigned(n)), i.ref)
	return v, &BasicBlock{bb: C.LLVMGetIncomingBlock(i.v, C.unsigned(n)), ref: i.ref}, nil
}

// BranchInst is an unconditional or conditional branch.
type BranchInst struct{ Instruction }

func (i *BranchInst) IsConditional() (bool, error) {
	if err := i.check(); err != nil {
		return false, err
	}
	return C.LLVMIsConditional(i.v) != 0, nil
}

// Condition returns the branch condition, or nil when unconditional.
func (i *BranchInst) Condition() (Value, error) {
	cond, err := i.IsConditional()
	if err != nil || !cond {
		return nil, err
	}
	return wrapValue(C.LLVMGetCondition(i.v), i.ref), nil
}

// SwitchInst branches on an integer value.
type SwitchInst struct{ Instruction }

// AddCase adds a destination for the constant on.
func (i *SwitchInst) AddCase(on *ConstantInt, dest *BasicBlock) error {
	if err := i.check(); err != nil {
		return err
	}
	b, err := baseOf("AddCase", on)
	if err != nil {
		return err
	}
	if err := liveBlock("AddCase", dest); err != nil {
		return err
	}
	if C.LLVMTypeOf(b.v) != C.LLVMTypeOf(C.LLVMGetOperand(i.v, 0)) {
		return constructionErrorf("AddCase", "case value does not match the condition type")
	}
	C.LLVMAddCase(i.v, b.v, dest.bb)
	return nil
}

// Default returns the default destination.
func (i *SwitchInst) Default() (*BasicBlock, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	return &BasicBlock{bb: C.LLVMGetSwitchDefaultDest(i.v), ref: i.ref}, nil
}

// IndirectBrInst branches to an address.
type IndirectBrInst struct{ Instruction }

// AddDestination registers a possible target.
func (i *IndirectBrInst) AddDestination(dest *BasicBlock) error {
	if err := i.check(); err != nil {
		return err
	}
	if err := liveBlock("AddDestination", dest); err != nil {
		return err
	}
	C.LLVMAddDestination(i.v, dest.bb)
	return nil
}

// GEPInst computes an address inside an aggregate.
type GEPInst struct{ Instruction }

func (i *GEPInst) InBounds() (bool, error) {
	if err := i.check(); err != nil {
		return false, err
	}
	return C.LLVMIsInBounds(i.v) != 0, nil
}

func (i *GEPInst) SetInBounds(inBounds bool) error {
	if err := i.check(); err != nil {
		return err
	}
	C.LLVMSetIsInBounds(i.v, llvmBool(inBounds))
	return nil
}

// SourceElementType returns the type the indices step through.
func (i *GEPInst) SourceElementType() (Type, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	t := C.LLVMGetGEPSourceElementType(i.v)
	return wrapType(t, contextRef(C.LLVMGetTypeContext(t))), nil
}

// LandingPadInst receives an in-flight exception.
type LandingPadInst struct{ Instruction }

// AddClause appends a catch or filter clause.
func (i *LandingPadInst) AddClause(clause Value) error {
	if err := i.check(); err != nil {
		return err
	}
	b, err := baseOf("AddClause", clause)
	if err != nil {
		return err
	}
	if C.LLVMIsConstant(b.v) == 0 {
		return constructionErrorf("AddClause", "clause is not a constant")
	}
	C.LLVMAddClause(i.v, b.v)
	return nil
}

func (i *LandingPadInst) SetCleanup(cleanup bool) error {
	if err := i.check(); err != nil {
		return err
	}
	C.LLVMSetCleanup(i.v, llvmBool(cleanup))
	return nil
}

func (i *LandingPadInst) IsCleanup() (bool, error) {
	if err := i.check(); err != nil {
		return false, err
	}
	return C.LLVMIsCleanup(i.v) != 0, nil
}

// CatchSwitchInst dispatches to catch handlers.
type CatchSwitchInst struct{ Instruction }

// AddHandler registers a handler block.
func (i *CatchSwitchInst) AddHandler(dest *BasicBlock) error {
	if err := i.check(); err != nil {
		return err
	}
	if err := liveBlock("AddHandler", dest); err != nil {
		return err
	}
	C.LLVMAddHandler(i.v, dest.bb)
	return nil
}

// ReturnInst returns from the function.
type ReturnInst struct{ Instruction }

// ReturnValue returns the returned value, or nil for ret void.
func (i *ReturnInst) ReturnValue() (Value, error) {
	if err := i.check(); err != nil {
		return nil, err
	}
	if C.LLVMGetNumOperands(i.v) == 0 {
		return nil, nil
	}
	return wrapValue(C.LLVMGetOperand(i.v, 0), i.ref), nil
}

func wrapInstruction(b value, detached *ownership.Owner) Value {
	in := Instruction{value: b, detached: detached}
	switch enum.Opcode(C.LLVMGetInstructionOpcode(b.v)) {
	case enum.OpcodeAlloca:
		return &AllocaInst{in}
	case enum.OpcodeLoad:
		return &LoadInst{memoryAccess{in}}
	case enum.OpcodeStore:
		return &StoreInst{memoryAccess{in}}
	case enum.OpcodeAtomicRMW:
		return &AtomicRMWInst{memoryAccess{in}}
	case enum.OpcodeAtomicCmpXchg:
		return &AtomicCmpXchgInst{in}
	case enum.OpcodeFence:
		return &FenceInst{in}
	case enum.OpcodeCall, enum.OpcodeCallBr:
		return &CallInst{in}
	case enum.OpcodeInvoke:
		return &InvokeInst{CallInst{in}}
	case enum.OpcodeICmp:
		return &ICmpInst{in}
	case enum.OpcodeFCmp:
		return &FCmpInst{in}
	case enum.OpcodePHI:
		return &PHINode{in}
	case enum.OpcodeBr:
		return &BranchInst{in}
	case enum.OpcodeSwitch:
		return &SwitchInst{in}
	case enum.OpcodeIndirectBr:
		return &IndirectBrInst{in}
	case enum.OpcodeGetElementPtr:
		return &GEPInst{in}
	case enum.OpcodeLandingPad:
		return &LandingPadInst{in}
	case enum.OpcodeCatchSwitch:
		return &CatchSwitchInst{in}
	case enum.OpcodeRet:
		return &ReturnInst{in}
	}
	return &in
}
