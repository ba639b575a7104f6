// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"sync"

	"llvmbind/enum"
	"llvmbind/ownership"
)

// Module is a compilation unit: global variables, functions and aliases.
//
// A Module returned by NewModule, ParseIR, ParseBitcode or Clone is owned by
// the caller and must be closed exactly once. Closing it invalidates every
// handle derived from it. Modules returned by navigation, such as
// GlobalValue.Module, are borrowed views.
type Module struct {
	m     C.LLVMModuleRef
	owner *ownership.Owner
	lease *ownership.Lease
	view  ownership.Ref
}

// NewModule creates an empty module in ctx, or in the global context when
// ctx is nil.
func NewModule(name string, ctx *Context) (*Module, error) {
	if ctx == nil {
		ctx = GlobalContext()
	}
	return ctx.NewModule(name)
}

// NewModule creates an empty module in the context.
func (c *Context) NewModule(name string) (*Module, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	m := withCString(name, func(cs *C.char) C.LLVMModuleRef {
		return C.LLVMModuleCreateWithNameInContext(cs, c.c)
	})
	return ownModule(m, c.c)
}

// modules maps every live owned module to its owner, so that values found
// by walking the native graph borrow from the module they live in.
var modules = struct {
	sync.Mutex
	owners map[C.LLVMModuleRef]*ownership.Owner
}{owners: make(map[C.LLVMModuleRef]*ownership.Owner)}

// ownModule takes ownership of m. The module holds a lease on its context
// so the context is disposed only after the module.
func ownModule(m C.LLVMModuleRef, ctx C.LLVMContextRef) (*Module, error) {
	lease, err := contextLease(ctx)
	if err != nil {
		C.LLVMDisposeModule(m)
		return nil, err
	}
	mod := &Module{m: m, lease: lease}
	mod.owner = ownership.New("module", func() {
		forgetModule(m)
		orphanBlocks(m)
		C.LLVMDisposeModule(m)
		mod.dropLease()
	})
	modules.Lock()
	modules.owners[m] = mod.owner
	modules.Unlock()
	return mod, nil
}

func forgetModule(m C.LLVMModuleRef) {
	modules.Lock()
	delete(modules.owners, m)
	modules.Unlock()
}

// moduleOwner returns the owner of the native module m, or nil when m is not
// owned through this package.
func moduleOwner(m C.LLVMModuleRef) *ownership.Owner {
	modules.Lock()
	defer modules.Unlock()
	return modules.owners[m]
}

func (m *Module) dropLease() {
	if m.lease != nil {
		_ = m.lease.Drop()
	}
}

func viewModule(m C.LLVMModuleRef, view ownership.Ref) *Module {
	return &Module{m: m, view: view}
}

func (m *Module) check() error {
	if m.owner != nil {
		return m.owner.Check()
	}
	return m.view.Check()
}

// ref is the view handed to values borrowed from the module.
func (m *Module) ref() ownership.Ref {
	if m.owner != nil {
		return m.owner.Ref()
	}
	return m.view
}

func (m *Module) context() C.LLVMContextRef { return C.LLVMGetModuleContext(m.m) }

// Close disposes the module. Calling it again returns ownership.ErrReleased;
// calling it on a borrowed view returns ownership.ErrNotOwned.
func (m *Module) Close() error {
	if m.owner == nil {
		return ownership.ErrNotOwned
	}
	return m.owner.Release()
}

// Equal reports whether both handles refer to the same native module.
func (m *Module) Equal(other *Module) bool {
	return other != nil && m.m == other.m
}

// IsOwned reports whether the handle owns the module, as opposed to a view.
func (m *Module) IsOwned() bool { return m.owner != nil }

// Context returns a borrowed view of the module's context.
func (m *Module) Context() (*Context, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	return viewContext(m.context(), m.ref()), nil
}

// Identifier returns the module identifier.
func (m *Module) Identifier() (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	var n C.size_t
	return goStringN(C.LLVMGetModuleIdentifier(m.m, &n), n), nil
}

// SetIdentifier replaces the module identifier.
func (m *Module) SetIdentifier(id string) error {
	if err := m.check(); err != nil {
		return err
	}
	cs := C.CString(id)
	defer freeCString(cs)
	C.LLVMSetModuleIdentifier(m.m, cs, C.size_t(len(id)))
	return nil
}

// SourceFileName returns the name of the source the module came from.
func (m *Module) SourceFileName() (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	var n C.size_t
	return goStringN(C.LLVMGetSourceFileName(m.m, &n), n), nil
}

// SetSourceFileName records the name of the source the module came from.
func (m *Module) SetSourceFileName(name string) error {
	if err := m.check(); err != nil {
		return err
	}
	cs := C.CString(name)
	defer freeCString(cs)
	C.LLVMSetSourceFileName(m.m, cs, C.size_t(len(name)))
	return nil
}

// DataLayout returns the data layout string.
func (m *Module) DataLayout() (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	return C.GoString(C.LLVMGetDataLayoutStr(m.m)), nil
}

// SetDataLayout sets the data layout string.
func (m *Module) SetDataLayout(layout string) error {
	if err := m.check(); err != nil {
		return err
	}
	cs := C.CString(layout)
	defer freeCString(cs)
	C.LLVMSetDataLayout(m.m, cs)
	return nil
}

// Target returns the target triple.
func (m *Module) Target() (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	return C.GoString(C.LLVMGetTarget(m.m)), nil
}

// SetTarget sets the target triple.
func (m *Module) SetTarget(triple string) error {
	if err := m.check(); err != nil {
		return err
	}
	cs := C.CString(triple)
	defer freeCString(cs)
	C.LLVMSetTarget(m.m, cs)
	return nil
}

// InlineAsm returns the module-level inline assembly.
func (m *Module) InlineAsm() (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	var n C.size_t
	return goStringN(C.LLVMGetModuleInlineAsm(m.m, &n), n), nil
}

// SetInlineAsm replaces the module-level inline assembler.
func (m *Module) SetInlineAsm(asm string) error {
	if err := m.check(); err != nil {
		return err
	}
	cs := C.CString(asm)
	defer freeCString(cs)
	C.LLVMSetModuleInlineAsm2(m.m, cs, C.size_t(len(asm)))
	return nil
}

// AppendInlineAsm adds a line to the module-level inline assembler.
func (m *Module) AppendInlineAsm(asm string) error {
	if err := m.check(); err != nil {
		return err
	}
	cs := C.CString(asm)
	defer freeCString(cs)
	C.LLVMAppendModuleInlineAsm(m.m, cs, C.size_t(len(asm)))
	return nil
}

// Functions returns fresh handles for every function, in module order.
func (m *Module) Functions() ([]*Function, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	ref := m.ref()
	var out []*Function
	for f := C.LLVMGetFirstFunction(m.m); f != nil; f = C.LLVMGetNextFunction(f) {
		out = append(out, &Function{GlobalValue{value{v: f, ref: ref}}})
	}
	return out, nil
}

// GlobalVariables returns fresh handles for every global variable.
func (m *Module) GlobalVariables() ([]*GlobalVariable, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	ref := m.ref()
	var out []*GlobalVariable
	for g := C.LLVMGetFirstGlobal(m.m); g != nil; g = C.LLVMGetNextGlobal(g) {
		out = append(out, &GlobalVariable{GlobalValue{value{v: g, ref: ref}}})
	}
	return out, nil
}

// GlobalAliases returns fresh handles for every alias.
func (m *Module) GlobalAliases() ([]*GlobalAlias, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	ref := m.ref()
	var out []*GlobalAlias
	for a := C.LLVMGetFirstGlobalAlias(m.m); a != nil; a = C.LLVMGetNextGlobalAlias(a) {
		out = append(out, &GlobalAlias{GlobalValue{value{v: a, ref: ref}}})
	}
	return out, nil
}

// NamedFunction returns the function called name, or nil.
func (m *Module) NamedFunction(name string) (*Function, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	f := withCString(name, func(cs *C.char) C.LLVMValueRef {
		return C.LLVMGetNamedFunction(m.m, cs)
	})
	if f == nil {
		return nil, nil
	}
	return &Function{GlobalValue{value{v: f, ref: m.ref()}}}, nil
}

// NamedGlobal returns the global variable called name, or nil.
func (m *Module) NamedGlobal(name string) (*GlobalVariable, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	g := withCString(name, func(cs *C.char) C.LLVMValueRef {
		return C.LLVMGetNamedGlobal(m.m, cs)
	})
	if g == nil {
		return nil, nil
	}
	return &GlobalVariable{GlobalValue{value{v: g, ref: m.ref()}}}, nil
}

// NamedAlias returns the alias called name, or nil.
func (m *Module) NamedAlias(name string) (*GlobalAlias, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	cs := C.CString(name)
	defer freeCString(cs)
	a := C.LLVMGetNamedGlobalAlias(m.m, cs, C.size_t(len(name)))
	if a == nil {
		return nil, nil
	}
	return &GlobalAlias{GlobalValue{value{v: a, ref: m.ref()}}}, nil
}

// AddFunction declares a function of type ft.
func (m *Module) AddFunction(name string, ft *FunctionType) (*Function, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	t, err := m.member("AddFunction", ft)
	if err != nil {
		return nil, err
	}
	f := withCString(name, func(cs *C.char) C.LLVMValueRef {
		return C.LLVMAddFunction(m.m, cs, t.t)
	})
	return &Function{GlobalValue{value{v: f, ref: m.ref()}}}, nil
}

// AddGlobal declares a global variable holding a value of type t.
func (m *Module) AddGlobal(t Type, name string) (*GlobalVariable, error) {
	return m.AddGlobalInAddressSpace(t, name, 0)
}

// AddGlobalInAddressSpace declares a global variable in an address space.
func (m *Module) AddGlobalInAddressSpace(t Type, name string, addrSpace int) (*GlobalVariable, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	b, err := m.member("AddGlobal", t)
	if err != nil {
		return nil, err
	}
	if k := b.kind(); !k.ValidStructElement() {
		return nil, constructionErrorf("AddGlobal", "no globals of %s type", k)
	}
	as, err := cUnsigned("AddGlobal", addrSpace)
	if err != nil {
		return nil, err
	}
	g := withCString(name, func(cs *C.char) C.LLVMValueRef {
		return C.LLVMAddGlobalInAddressSpace(m.m, b.t, cs, as)
	})
	return &GlobalVariable{GlobalValue{value{v: g, ref: m.ref()}}}, nil
}

// AddAlias creates an alias of type valueType for aliasee.
func (m *Module) AddAlias(valueType Type, addrSpace int, aliasee Value, name string) (*GlobalAlias, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	t, err := m.member("AddAlias", valueType)
	if err != nil {
		return nil, err
	}
	target, err := baseOf("AddAlias", aliasee)
	if err != nil {
		return nil, err
	}
	if C.LLVMIsConstant(target.v) == 0 || enum.TypeKind(C.LLVMGetTypeKind(C.LLVMTypeOf(target.v))) != enum.TypeKindPointer {
		return nil, constructionErrorf("AddAlias", "aliasee must be a pointer constant")
	}
	as, err := cUnsigned("AddAlias", addrSpace)
	if err != nil {
		return nil, err
	}
	a := withCString(name, func(cs *C.char) C.LLVMValueRef {
		return C.LLVMAddAlias2(m.m, t.t, as, target.v, cs)
	})
	return &GlobalAlias{GlobalValue{value{v: a, ref: m.ref()}}}, nil
}

// IntrinsicDeclaration returns the declaration of the named intrinsic,
// adding it to the module when missing. Overloaded intrinsics need their
// overload types, in the order the intrinsic defines them.
func (m *Module) IntrinsicDeclaration(name string, overloads []Type) (*Function, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	id := IntrinsicID(name)
	if id == 0 {
		return nil, constructionErrorf("IntrinsicDeclaration", "unknown intrinsic %q", name)
	}
	overloaded := C.LLVMIntrinsicIsOverloaded(C.unsigned(id)) != 0
	if overloaded != (len(overloads) > 0) {
		return nil, constructionErrorf("IntrinsicDeclaration", "%s overloaded=%t, got %d overload types", name, overloaded, len(overloads))
	}
	raw, err := elementRefs("IntrinsicDeclaration", m.context(), overloads, enum.TypeKind.IsFirstClass)
	if err != nil {
		return nil, err
	}
	f := C.LLVMGetIntrinsicDeclaration(m.m, C.unsigned(id), typeRefs(raw), C.size_t(len(raw)))
	return &Function{GlobalValue{value{v: f, ref: m.ref()}}}, nil
}

// IntrinsicID returns the id of the named intrinsic, 0 if unknown.
func IntrinsicID(name string) uint32 {
	cs := C.CString(name)
	defer freeCString(cs)
	return uint32(C.LLVMLookupIntrinsicID(cs, C.size_t(len(name))))
}

// AddModuleFlag attaches a module flag whose value is the constant val.
func (m *Module) AddModuleFlag(behavior enum.ModuleFlagBehavior, key string, val Value) error {
	if err := m.check(); err != nil {
		return err
	}
	if err := member("AddModuleFlag", enum.ModuleFlagBehaviorTable, int64(behavior)); err != nil {
		return err
	}
	b, err := baseOf("AddModuleFlag", val)
	if err != nil {
		return err
	}
	if C.LLVMIsConstant(b.v) == 0 {
		return constructionErrorf("AddModuleFlag", "flag value is not a constant")
	}
	cs := C.CString(key)
	defer freeCString(cs)
	C.LLVMAddModuleFlag(m.m, C.LLVMModuleFlagBehavior(behavior), cs, C.size_t(len(key)), C.LLVMValueAsMetadata(b.v))
	return nil
}

// ModuleFlag returns the value of the flag key as a metadata value, or nil.
func (m *Module) ModuleFlag(key string) (Value, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	cs := C.CString(key)
	defer freeCString(cs)
	md := C.LLVMGetModuleFlag(m.m, cs, C.size_t(len(key)))
	if md == nil {
		return nil, nil
	}
	return wrapValue(C.LLVMMetadataAsValue(m.context(), md), m.ref()), nil
}

// String renders the module as textual IR.
func (m *Module) String() string {
	if err := m.check(); err != nil {
		return "<" + err.Error() + ">"
	}
	return takeMessage(C.LLVMPrintModuleToString(m.m))
}

// PrintToFile writes the textual IR to path.
func (m *Module) PrintToFile(path string) error {
	if err := m.check(); err != nil {
		return err
	}
	cs := C.CString(path)
	defer freeCString(cs)
	var msg *C.char
	if C.LLVMPrintModuleToFile(m.m, cs, &msg) != 0 {
		return fmt.Errorf("print %s: %s", path, takeMessage(msg))
	}
	return nil
}

// Clone returns a deep copy of the module, owned by the caller.
func (m *Module) Clone() (*Module, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	return ownModule(C.LLVMCloneModule(m.m), m.context())
}

// member validates a type argument: live and from the module's context.
func (m *Module) member(op string, t Type) (*typ, error) {
	b, err := typeOf(op, t)
	if err != nil {
		return nil, err
	}
	if b.context() != m.context() {
		return nil, constructionErrorf(op, "type belongs to another context")
	}
	return b, nil
}
