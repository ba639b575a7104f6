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
	"unsafe"

	"llvmbind/ownership"
)

// Context is an isolation domain for types and values. Types are uniqued per
// context: asking twice for the same type yields Equal handles.
//
// A Context and everything created in it must not be used from more than one
// goroutine at a time.
type Context struct {
	c     C.LLVMContextRef
	lease *ownership.Lease // caller claim, nil for the global context and views
	view  ownership.Ref    // validity of a borrowed view
}

var contexts = struct {
	sync.Mutex
	owners map[C.LLVMContextRef]*ownership.Owner
}{owners: make(map[C.LLVMContextRef]*ownership.Owner)}

var (
	globalOnce sync.Once
	global     C.LLVMContextRef
)

// NewContext creates a context owned by the caller. Modules and builders
// created in it keep the native context alive until they are closed too, so
// closing the Context first is safe.
func NewContext() *Context {
	c := C.LLVMContextCreate()
	owner, lease := ownership.NewShared("context", func() {
		contexts.Lock()
		delete(contexts.owners, c)
		contexts.Unlock()
		C.LLVMContextDispose(c)
	})
	contexts.Lock()
	contexts.owners[c] = owner
	contexts.Unlock()
	return &Context{c: c, lease: lease, view: owner.Ref()}
}

// GlobalContext returns the process-wide context. It is never released;
// Close on it does nothing.
func GlobalContext() *Context {
	globalOnce.Do(func() {
		global = C.LLVMGetGlobalContext()
	})
	return &Context{c: global}
}

// contextRef returns the liveness view for the native context c. The global
// context is static and yields the always-alive zero Ref.
func contextRef(c C.LLVMContextRef) ownership.Ref {
	contexts.Lock()
	defer contexts.Unlock()
	if o, ok := contexts.owners[c]; ok {
		return o.Ref()
	}
	return ownership.Ref{}
}

func contextLease(c C.LLVMContextRef) (*ownership.Lease, error) {
	contexts.Lock()
	o, ok := contexts.owners[c]
	contexts.Unlock()
	if !ok {
		return nil, nil
	}
	return o.Acquire()
}

// viewContext returns a borrowed handle to c, valid as long as view is.
func viewContext(c C.LLVMContextRef, view ownership.Ref) *Context {
	return &Context{c: c, view: view}
}

func (c *Context) check() error {
	if c.lease != nil {
		return c.lease.Check()
	}
	return c.view.Check()
}

// ref is the view handed to types and constants created in the context.
func (c *Context) ref() ownership.Ref {
	return contextRef(c.c)
}

// Close gives up the caller's claim on the context. The native context is
// disposed once every module and builder created in it was closed as well.
func (c *Context) Close() error {
	if c.lease == nil {
		if c.c == global {
			return nil
		}
		return ownership.ErrNotOwned
	}
	return c.lease.Drop()
}

// IsGlobal reports whether c is the process-wide context.
func (c *Context) IsGlobal() bool { return c.c == global && global != nil }

// Equal reports whether both handles refer to the same native context.
func (c *Context) Equal(other *Context) bool {
	return other != nil && c.c == other.c
}

// DiscardValueNames reports whether value names are dropped on creation.
func (c *Context) DiscardValueNames() (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return C.LLVMContextShouldDiscardValueNames(c.c) != 0, nil
}

// SetDiscardValueNames configures whether value names are dropped. It is a
// memory optimization for contexts whose IR is never printed.
func (c *Context) SetDiscardValueNames(discard bool) error {
	if err := c.check(); err != nil {
		return err
	}
	C.LLVMContextSetDiscardValueNames(c.c, llvmBool(discard))
	return nil
}

// MDKindID returns the numeric id of a metadata kind name.
func (c *Context) MDKindID(name string) (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return uint32(C.LLVMGetMDKindIDInContext(c.c, cs, C.unsigned(len(name)))), nil
}

// TypeByName returns the named struct type, or nil if there is none.
func (c *Context) TypeByName(name string) (*StructType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	t := withCString(name, func(cs *C.char) C.LLVMTypeRef {
		return C.LLVMGetTypeByName2(c.c, cs)
	})
	if t == nil {
		return nil, nil
	}
	return &StructType{typ{t: t, ref: c.ref()}}, nil
}

// AppendBasicBlock adds a new block at the end of fn.
func (c *Context) AppendBasicBlock(fn *Function, name string) (*BasicBlock, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := c.owns("AppendBasicBlock", fn); err != nil {
		return nil, err
	}
	bb := withCString(name, func(cs *C.char) C.LLVMBasicBlockRef {
		return C.LLVMAppendBasicBlockInContext(c.c, fn.v, cs)
	})
	return &BasicBlock{bb: bb, ref: fn.ref}, nil
}

// InsertBasicBlock adds a new block right before at, in at's function.
func (c *Context) InsertBasicBlock(at *BasicBlock, name string) (*BasicBlock, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := liveBlock("InsertBasicBlock", at); err != nil {
		return nil, err
	}
	bb := withCString(name, func(cs *C.char) C.LLVMBasicBlockRef {
		return C.LLVMInsertBasicBlockInContext(c.c, at.bb, cs)
	})
	return &BasicBlock{bb: bb, ref: at.ref}, nil
}

// CreateBasicBlock creates a block that does not belong to any function yet.
// The returned block is owned by the caller until it is handed to
// Function.AppendExistingBasicBlock; Close deletes a block that was never
// placed.
func (c *Context) CreateBasicBlock(name string) (*BasicBlock, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	bb := withCString(name, func(cs *C.char) C.LLVMBasicBlockRef {
		return C.LLVMCreateBasicBlockInContext(c.c, cs)
	})
	return detachedBlock(bb)
}

// owns fails unless v is a live value created in c.
func (c *Context) owns(op string, v Value) error {
	b, err := baseOf(op, v)
	if err != nil {
		return err
	}
	if b.context() != c.c {
		return constructionErrorf(op, "value belongs to another context")
	}
	return nil
}
