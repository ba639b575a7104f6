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
	"unsafe"

	"llvmbind/enum"
	"llvmbind/ownership"
)

// Attribute is an enum, integer, type or string attribute, uniqued in its
// context.
type Attribute struct {
	a   C.LLVMAttributeRef
	ref ownership.Ref
}

func (a *Attribute) check() error { return a.ref.Check() }

// Equal reports whether both handles name the same native attribute.
func (a *Attribute) Equal(other *Attribute) bool {
	return other != nil && a.a == other.a
}

// IsEnum reports whether the attribute is an enum (or integer) attribute.
func (a *Attribute) IsEnum() (bool, error) {
	if err := a.check(); err != nil {
		return false, err
	}
	return C.LLVMIsEnumAttribute(a.a) != 0, nil
}

// IsString reports whether the attribute is a key/value string attribute.
func (a *Attribute) IsString() (bool, error) {
	if err := a.check(); err != nil {
		return false, err
	}
	return C.LLVMIsStringAttribute(a.a) != 0, nil
}

// IsType reports whether the attribute carries a type.
func (a *Attribute) IsType() (bool, error) {
	if err := a.check(); err != nil {
		return false, err
	}
	return C.LLVMIsTypeAttribute(a.a) != 0, nil
}

// EnumKind returns the kind id of an enum or type attribute.
func (a *Attribute) EnumKind() (uint32, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	if C.LLVMIsStringAttribute(a.a) != 0 {
		return 0, constructionErrorf("EnumKind", "string attribute has no kind id")
	}
	return uint32(C.LLVMGetEnumAttributeKind(a.a)), nil
}

// EnumValue returns the integer payload of an enum attribute.
func (a *Attribute) EnumValue() (uint64, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	if C.LLVMIsEnumAttribute(a.a) == 0 {
		return 0, constructionErrorf("EnumValue", "not an enum attribute")
	}
	return uint64(C.LLVMGetEnumAttributeValue(a.a)), nil
}

// TypeValue returns the type payload of a type attribute.
func (a *Attribute) TypeValue() (Type, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if C.LLVMIsTypeAttribute(a.a) == 0 {
		return nil, constructionErrorf("TypeValue", "not a type attribute")
	}
	t := C.LLVMGetTypeAttributeValue(a.a)
	return wrapType(t, contextRef(C.LLVMGetTypeContext(t))), nil
}

// StringKind returns the key of a string attribute.
func (a *Attribute) StringKind() (string, error) {
	if err := a.check(); err != nil {
		return "", err
	}
	if C.LLVMIsStringAttribute(a.a) == 0 {
		return "", constructionErrorf("StringKind", "not a string attribute")
	}
	var n C.unsigned
	p := C.LLVMGetStringAttributeKind(a.a, &n)
	return goStringN(p, C.size_t(n)), nil
}

// StringValue returns the value of a string attribute.
func (a *Attribute) StringValue() (string, error) {
	if err := a.check(); err != nil {
		return "", err
	}
	if C.LLVMIsStringAttribute(a.a) == 0 {
		return "", constructionErrorf("StringValue", "not a string attribute")
	}
	var n C.unsigned
	p := C.LLVMGetStringAttributeValue(a.a, &n)
	return goStringN(p, C.size_t(n)), nil
}

func (a *Attribute) String() string {
	if s, _ := a.IsString(); s {
		k, _ := a.StringKind()
		v, _ := a.StringValue()
		return fmt.Sprintf("%q=%q", k, v)
	}
	k, err := a.EnumKind()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	if e, _ := a.IsEnum(); e {
		v, _ := a.EnumValue()
		return fmt.Sprintf("%s(%d)", AttributeKindName(k), v)
	}
	t, _ := a.TypeValue()
	return fmt.Sprintf("%s(%s)", AttributeKindName(k), t)
}

// AttributeKindID returns the kind id of a named enum attribute such as
// "nounwind", or 0 if the name is unknown.
func AttributeKindID(name string) uint32 {
	cs := C.CString(name)
	defer freeCString(cs)
	return uint32(C.LLVMGetEnumAttributeKindForName(cs, C.size_t(len(name))))
}

// LastAttributeKindID returns the largest enum attribute kind id.
func LastAttributeKindID() uint32 { return uint32(C.LLVMGetLastEnumAttributeKind()) }

var attributeNames = []string{
	"alwaysinline", "builtin", "cold", "convergent", "hot", "inlinehint", "minsize", "naked",
	"nobuiltin", "noduplicate", "nofree", "noinline", "nomerge", "norecurse", "noreturn",
	"nosync", "nounwind", "optnone", "optsize", "readnone", "readonly", "returns_twice",
	"speculatable", "ssp", "sspreq", "sspstrong", "uwtable", "willreturn", "writeonly",
	"noalias", "nocapture", "nonnull", "noundef", "returned", "signext", "zeroext", "inreg",
	"byval", "sret", "align", "dereferenceable", "dereferenceable_or_null", "immarg",
	"memory", "nofpclass", "allocsize", "allockind", "elementtype", "inalloca", "preallocated",
	"swifterror", "swiftself", "swiftasync", "nest", "mustprogress", "strictfp",
}

// AttributeKindName returns a name for a kind id, for diagnostics.
func AttributeKindName(kind uint32) string {
	for _, n := range attributeNames {
		if AttributeKindID(n) == kind {
			return n
		}
	}
	return fmt.Sprintf("attr#%d", kind)
}

// EnumAttribute creates the enum attribute kind with an integer payload (0
// for flag attributes).
func (c *Context) EnumAttribute(kind uint32, val uint64) (*Attribute, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if kind == 0 || kind > LastAttributeKindID() {
		return nil, constructionErrorf("EnumAttribute", "unknown attribute kind %d", kind)
	}
	return &Attribute{a: C.LLVMCreateEnumAttribute(c.c, C.unsigned(kind), C.uint64_t(val)), ref: c.ref()}, nil
}

// TypeAttribute creates a type attribute such as byval(<ty>).
func (c *Context) TypeAttribute(kind uint32, t Type) (*Attribute, error) {
	b, err := c.member("TypeAttribute", t)
	if err != nil {
		return nil, err
	}
	if kind == 0 || kind > LastAttributeKindID() {
		return nil, constructionErrorf("TypeAttribute", "unknown attribute kind %d", kind)
	}
	return &Attribute{a: C.LLVMCreateTypeAttribute(c.c, C.unsigned(kind), b.t), ref: c.ref()}, nil
}

// StringAttribute creates a key/value attribute.
func (c *Context) StringAttribute(key, val string) (*Attribute, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	k := C.CString(key)
	defer freeCString(k)
	v := C.CString(val)
	defer freeCString(v)
	a := C.LLVMCreateStringAttribute(c.c, k, C.unsigned(len(key)), v, C.unsigned(len(val)))
	return &Attribute{a: a, ref: c.ref()}, nil
}

// attributeIndex validates idx against a function with n parameters and
// returns the native index.
func attributeIndex(idx enum.AttributeIndex, n int) (C.LLVMAttributeIndex, error) {
	if idx == enum.AttributeIndexReturn || idx == enum.AttributeIndexFunction {
		return C.LLVMAttributeIndex(idx), nil
	}
	p, _ := idx.Param()
	if p < 0 || p >= n {
		return 0, &IndexError{What: "attribute parameter", Index: p, Len: n}
	}
	return C.LLVMAttributeIndex(idx), nil
}

// AttributeCount returns the number of attributes at idx.
func (f *Function) AttributeCount(idx enum.AttributeIndex) (int, error) {
	ci, err := f.attrIndex(idx)
	if err != nil {
		return 0, err
	}
	return int(C.LLVMGetAttributeCountAtIndex(f.v, ci)), nil
}

// Attributes returns the attributes at idx.
func (f *Function) Attributes(idx enum.AttributeIndex) ([]*Attribute, error) {
	ci, err := f.attrIndex(idx)
	if err != nil {
		return nil, err
	}
	n := int(C.LLVMGetAttributeCountAtIndex(f.v, ci))
	if n == 0 {
		return nil, nil
	}
	raw := make([]C.LLVMAttributeRef, n)
	C.LLVMGetAttributesAtIndex(f.v, ci, (*C.LLVMAttributeRef)(unsafe.Pointer(&raw[0])))
	out := make([]*Attribute, n)
	ref := contextRef(f.context())
	for i, a := range raw {
		out[i] = &Attribute{a: a, ref: ref}
	}
	return out, nil
}

// AddAttribute attaches a to idx.
func (f *Function) AddAttribute(idx enum.AttributeIndex, a *Attribute) error {
	ci, err := f.attrIndex(idx)
	if err != nil {
		return err
	}
	if a == nil {
		return constructionErrorf("AddAttribute", "nil attribute")
	}
	if err := a.check(); err != nil {
		return err
	}
	C.LLVMAddAttributeAtIndex(f.v, ci, a.a)
	return nil
}

// EnumAttribute returns the enum attribute of the given kind at idx, or nil.
func (f *Function) EnumAttribute(idx enum.AttributeIndex, kind uint32) (*Attribute, error) {
	ci, err := f.attrIndex(idx)
	if err != nil {
		return nil, err
	}
	a := C.LLVMGetEnumAttributeAtIndex(f.v, ci, C.unsigned(kind))
	if a == nil {
		return nil, nil
	}
	return &Attribute{a: a, ref: contextRef(f.context())}, nil
}

// StringAttribute returns the string attribute with the given key at idx, or
// nil.
func (f *Function) StringAttribute(idx enum.AttributeIndex, key string) (*Attribute, error) {
	ci, err := f.attrIndex(idx)
	if err != nil {
		return nil, err
	}
	cs := C.CString(key)
	defer freeCString(cs)
	a := C.LLVMGetStringAttributeAtIndex(f.v, ci, cs, C.unsigned(len(key)))
	if a == nil {
		return nil, nil
	}
	return &Attribute{a: a, ref: contextRef(f.context())}, nil
}

// RemoveEnumAttribute drops the enum attribute of the given kind at idx.
func (f *Function) RemoveEnumAttribute(idx enum.AttributeIndex, kind uint32) error {
	ci, err := f.attrIndex(idx)
	if err != nil {
		return err
	}
	C.LLVMRemoveEnumAttributeAtIndex(f.v, ci, C.unsigned(kind))
	return nil
}

// RemoveStringAttribute drops the string attribute with the given key at idx.
func (f *Function) RemoveStringAttribute(idx enum.AttributeIndex, key string) error {
	ci, err := f.attrIndex(idx)
	if err != nil {
		return err
	}
	cs := C.CString(key)
	defer freeCString(cs)
	C.LLVMRemoveStringAttributeAtIndex(f.v, ci, cs, C.unsigned(len(key)))
	return nil
}

func (f *Function) attrIndex(idx enum.AttributeIndex) (C.LLVMAttributeIndex, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	return attributeIndex(idx, int(C.LLVMCountParams(f.v)))
}
