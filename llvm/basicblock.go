// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"

	"llvmbind/ownership"
)

// BasicBlock is a labeled sequence of instructions ending in a terminator.
//
// Blocks inside a function are borrowed from the module. A block made by
// Context.CreateBasicBlock or removed with RemoveFromParent is owned by the
// caller until it is placed into a function again.
type BasicBlock struct {
	bb       C.LLVMBasicBlockRef
	ref      ownership.Ref
	detached *ownership.Owner
}

// detachedBlocks holds the state of every block owned by a caller.
var detachedBlocks = struct {
	sync.Mutex
	live map[C.LLVMBasicBlockRef]*detachedState
}{live: make(map[C.LLVMBasicBlockRef]*detachedState)}

type detachedState struct {
	owner    *ownership.Owner
	lease    *ownership.Lease // keeps the native context alive
	orphaned bool             // a module used by the instructions was disposed
}

// detachedBlock takes ownership of bb, which belongs to no function. The
// block holds a lease on its context. If a module whose values its
// instructions use is disposed first, the block is orphaned: its handles
// become invalid and closing it no longer frees the native block.
func detachedBlock(bb C.LLVMBasicBlockRef) (*BasicBlock, error) {
	lease, err := contextLease(C.LLVMGetTypeContext(C.LLVMTypeOf(C.LLVMBasicBlockAsValue(bb))))
	if err != nil {
		C.LLVMDeleteBasicBlock(bb)
		return nil, err
	}
	st := &detachedState{lease: lease}
	st.owner = ownership.New("basic block", func() {
		forgetBlock(bb)
		if !st.orphaned {
			C.LLVMDeleteBasicBlock(bb)
		}
		st.dropLease()
	})
	detachedBlocks.Lock()
	detachedBlocks.live[bb] = st
	detachedBlocks.Unlock()
	return &BasicBlock{bb: bb, ref: st.owner.Ref(), detached: st.owner}, nil
}

func (st *detachedState) dropLease() {
	if st.lease != nil {
		_ = st.lease.Drop()
	}
}

func forgetBlock(bb C.LLVMBasicBlockRef) *detachedState {
	detachedBlocks.Lock()
	defer detachedBlocks.Unlock()
	st := detachedBlocks.live[bb]
	delete(detachedBlocks.live, bb)
	return st
}

// adoptBlock ends the caller's ownership of bb after a function took it
// over.
func adoptBlock(bb C.LLVMBasicBlockRef) {
	if st := forgetBlock(bb); st != nil {
		st.dropLease()
	}
}

// orphanBlocks is called before m is disposed. Detached blocks whose
// instructions use values of m are orphaned.
func orphanBlocks(m C.LLVMModuleRef) {
	detachedBlocks.Lock()
	defer detachedBlocks.Unlock()
	for bb, st := range detachedBlocks.live {
		if st.orphaned || !usesModule(bb, m) {
			continue
		}
		st.orphaned = true
		st.owner.Revoke()
	}
}

func usesModule(bb C.LLVMBasicBlockRef, m C.LLVMModuleRef) bool {
	for i := C.LLVMGetFirstInstruction(bb); i != nil; i = C.LLVMGetNextInstruction(i) {
		n := int(C.LLVMGetNumOperands(i))
		for k := 0; k < n; k++ {
			if moduleOf(C.LLVMGetOperand(i, C.unsigned(k))) == m {
				return true
			}
		}
	}
	return false
}

func (b *BasicBlock) check() error { return b.ref.Check() }

func liveBlock(op string, b *BasicBlock) error {
	if b == nil {
		return constructionErrorf(op, "nil basic block")
	}
	return b.check()
}

func (b *BasicBlock) context() C.LLVMContextRef {
	return C.LLVMGetTypeContext(C.LLVMTypeOf(C.LLVMBasicBlockAsValue(b.bb)))
}

// Equal reports whether both handles refer to the same native block.
func (b *BasicBlock) Equal(other *BasicBlock) bool {
	return other != nil && b.bb == other.bb
}

// Close deletes a detached block. Blocks inside a function are owned by the
// module and cannot be closed.
func (b *BasicBlock) Close() error {
	if b.detached == nil {
		return ownership.ErrNotOwned
	}
	return b.detached.Release()
}

// IsDetached reports whether the block belongs to no function.
func (b *BasicBlock) IsDetached() bool { return b.detached != nil }

// Name returns the block label.
func (b *BasicBlock) Name() (string, error) {
	if err := b.check(); err != nil {
		return "", err
	}
	return C.GoString(C.LLVMGetBasicBlockName(b.bb)), nil
}

// AsValue returns the label view of the block.
func (b *BasicBlock) AsValue() (*BasicBlockValue, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return &BasicBlockValue{value{v: C.LLVMBasicBlockAsValue(b.bb), ref: b.ref}}, nil
}

// Parent returns the function containing the block, or nil when detached.
func (b *BasicBlock) Parent() (*Function, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	fn := C.LLVMGetBasicBlockParent(b.bb)
	if fn == nil {
		return nil, nil
	}
	return &Function{GlobalValue{value{v: fn, ref: b.ref}}}, nil
}

// Terminator returns the terminating instruction, or nil if the block is
// not terminated yet.
func (b *BasicBlock) Terminator() (*Instruction, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return b.instruction(C.LLVMGetBasicBlockTerminator(b.bb)), nil
}

// FirstInstruction returns the first instruction, or nil for an empty block.
func (b *BasicBlock) FirstInstruction() (*Instruction, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return b.instruction(C.LLVMGetFirstInstruction(b.bb)), nil
}

// LastInstruction returns the last instruction, or nil for an empty block.
func (b *BasicBlock) LastInstruction() (*Instruction, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return b.instruction(C.LLVMGetLastInstruction(b.bb)), nil
}

// Instructions returns the instructions in order, terminator included.
func (b *BasicBlock) Instructions() ([]*Instruction, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	var out []*Instruction
	for i := C.LLVMGetFirstInstruction(b.bb); i != nil; i = C.LLVMGetNextInstruction(i) {
		out = append(out, b.instruction(i))
	}
	return out, nil
}

func (b *BasicBlock) instruction(i C.LLVMValueRef) *Instruction {
	if i == nil {
		return nil
	}
	return &Instruction{value: value{v: i, ref: b.ref}}
}

// Next returns the following block of the function, or nil.
func (b *BasicBlock) Next() (*BasicBlock, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return b.sibling(C.LLVMGetNextBasicBlock(b.bb)), nil
}

// Prev returns the preceding block of the function, or nil.
func (b *BasicBlock) Prev() (*BasicBlock, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return b.sibling(C.LLVMGetPreviousBasicBlock(b.bb)), nil
}

func (b *BasicBlock) sibling(bb C.LLVMBasicBlockRef) *BasicBlock {
	if bb == nil {
		return nil
	}
	return &BasicBlock{bb: bb, ref: b.ref}
}

// MoveBefore moves the block right before pos in the same function.
func (b *BasicBlock) MoveBefore(pos *BasicBlock) error {
	if err := b.placed("MoveBefore", pos); err != nil {
		return err
	}
	C.LLVMMoveBasicBlockBefore(b.bb, pos.bb)
	return nil
}

// MoveAfter moves the block right after pos in the same function.
func (b *BasicBlock) MoveAfter(pos *BasicBlock) error {
	if err := b.placed("MoveAfter", pos); err != nil {
		return err
	}
	C.LLVMMoveBasicBlockAfter(b.bb, pos.bb)
	return nil
}

func (b *BasicBlock) placed(op string, pos *BasicBlock) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := liveBlock(op, pos); err != nil {
		return err
	}
	parent := C.LLVMGetBasicBlockParent(b.bb)
	if parent == nil || parent != C.LLVMGetBasicBlockParent(pos.bb) {
		return constructionErrorf(op, "blocks are not in the same function")
	}
	return nil
}

// RemoveFromParent unlinks the block from its function and returns it as a
// detached block owned by the caller. Every handle derived from the module
// before the call becomes invalid.
func (b *BasicBlock) RemoveFromParent() (*BasicBlock, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if b.detached != nil || C.LLVMGetBasicBlockParent(b.bb) == nil {
		return nil, constructionErrorf("RemoveFromParent", "block has no parent")
	}
	C.LLVMRemoveBasicBlockFromParent(b.bb)
	if err := b.ref.Revoke(); err != nil {
		return nil, err
	}
	return detachedBlock(b.bb)
}

// Delete erases the block from its function, or frees a detached block.
// Every handle derived from the module before the call becomes invalid.
func (b *BasicBlock) Delete() error {
	if err := b.check(); err != nil {
		return err
	}
	if b.detached != nil {
		return b.detached.Release()
	}
	C.LLVMDeleteBasicBlock(b.bb)
	return b.ref.Revoke()
}
