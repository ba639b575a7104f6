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

// Int1 returns the 1-bit integer (boolean) type.
func (c *Context) Int1() (*IntType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &IntType{typ{t: C.LLVMInt1TypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Int8() (*IntType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &IntType{typ{t: C.LLVMInt8TypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Int16() (*IntType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &IntType{typ{t: C.LLVMInt16TypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Int32() (*IntType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &IntType{typ{t: C.LLVMInt32TypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Int64() (*IntType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &IntType{typ{t: C.LLVMInt64TypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Int128() (*IntType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &IntType{typ{t: C.LLVMInt128TypeInContext(c.c), ref: c.ref()}}, nil
}

// Half returns the IEEE 16-bit float type.
func (c *Context) Half() (*RealType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &RealType{typ{t: C.LLVMHalfTypeInContext(c.c), ref: c.ref()}}, nil
}

// BFloat returns the 16-bit brain float type.
func (c *Context) BFloat() (*RealType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &RealType{typ{t: C.LLVMBFloatTypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Float() (*RealType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &RealType{typ{t: C.LLVMFloatTypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Double() (*RealType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &RealType{typ{t: C.LLVMDoubleTypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) X86FP80() (*RealType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &RealType{typ{t: C.LLVMX86FP80TypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) FP128() (*RealType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &RealType{typ{t: C.LLVMFP128TypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) PPCFP128() (*RealType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &RealType{typ{t: C.LLVMPPCFP128TypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Void() (*VoidType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &VoidType{typ{t: C.LLVMVoidTypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Label() (*LabelType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &LabelType{typ{t: C.LLVMLabelTypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Token() (*TokenType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &TokenType{typ{t: C.LLVMTokenTypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) Metadata() (*MetadataType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &MetadataType{typ{t: C.LLVMMetadataTypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) X86AMX() (*X86AMXType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &X86AMXType{typ{t: C.LLVMX86AMXTypeInContext(c.c), ref: c.ref()}}, nil
}

func (c *Context) X86MMX() (*X86MMXType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return &X86MMXType{typ{t: C.LLVMX86MMXTypeInContext(c.c), ref: c.ref()}}, nil
}

// Int returns the integer type of the given bit width.
func (c *Context) Int(width int) (*IntType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if width < enum.MinIntWidth || width > enum.MaxIntWidth {
		return nil, constructionErrorf("Int", "width %d outside [%d, %d]", width, enum.MinIntWidth, enum.MaxIntWidth)
	}
	return &IntType{typ{t: C.LLVMIntTypeInContext(c.c, C.unsigned(width)), ref: c.ref()}}, nil
}

// FunctionTypeOf returns the signature ret(params...).
func (c *Context) FunctionTypeOf(ret Type, params []Type, variadic bool) (*FunctionType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	r, err := c.member("FunctionTypeOf", ret)
	if err != nil {
		return nil, err
	}
	if k := r.kind(); !k.ValidReturn() {
		return nil, constructionErrorf("FunctionTypeOf", "%s is not a valid return type", k)
	}
	raw, err := elementRefs("FunctionTypeOf", c.c, params, enum.TypeKind.ValidParam)
	if err != nil {
		return nil, err
	}
	n, err := cUnsigned("FunctionTypeOf", len(raw))
	if err != nil {
		return nil, err
	}
	t := C.LLVMFunctionType(r.t, typeRefs(raw), n, llvmBool(variadic))
	return &FunctionType{typ{t: t, ref: c.ref()}}, nil
}

// StructType returns the literal struct with the given fields.
func (c *Context) StructType(fields []Type, packed bool) (*StructType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	raw, err := elementRefs("StructType", c.c, fields, enum.TypeKind.ValidStructElement)
	if err != nil {
		return nil, err
	}
	n, err := cUnsigned("StructType", len(raw))
	if err != nil {
		return nil, err
	}
	t := C.LLVMStructTypeInContext(c.c, typeRefs(raw), n, llvmBool(packed))
	return &StructType{typ{t: t, ref: c.ref()}}, nil
}

// NamedStruct creates an opaque struct identified by name. Names are made
// unique by the context if they collide.
func (c *Context) NamedStruct(name string) (*StructType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	t := withCString(name, func(cs *C.char) C.LLVMTypeRef {
		return C.LLVMStructCreateNamed(c.c, cs)
	})
	return &StructType{typ{t: t, ref: c.ref()}}, nil
}

// ArrayOf returns the array type [n x elem].
func (c *Context) ArrayOf(elem Type, n uint64) (*ArrayType, error) {
	e, err := c.member("ArrayOf", elem)
	if err != nil {
		return nil, err
	}
	if k := e.kind(); !k.ValidArrayElement() {
		return nil, constructionErrorf("ArrayOf", "%s is not a valid array element", k)
	}
	return &ArrayType{typ{t: C.LLVMArrayType2(e.t, C.uint64_t(n)), ref: c.ref()}}, nil
}

// VectorOf returns the fixed vector type <n x elem>.
func (c *Context) VectorOf(elem Type, n int) (*VectorType, error) {
	return c.vector("VectorOf", elem, n, false)
}

// ScalableVectorOf returns the scalable vector type <vscale x n x elem>.
func (c *Context) ScalableVectorOf(elem Type, n int) (*VectorType, error) {
	return c.vector("ScalableVectorOf", elem, n, true)
}

func (c *Context) vector(op string, elem Type, n int, scalable bool) (*VectorType, error) {
	e, err := c.member(op, elem)
	if err != nil {
		return nil, err
	}
	if k := e.kind(); !k.ValidVectorElement() {
		return nil, constructionErrorf(op, "%s is not a valid vector element", k)
	}
	if n <= 0 {
		return nil, constructionErrorf(op, "vector length must be positive, got %d", n)
	}
	cn, err := cUnsigned(op, n)
	if err != nil {
		return nil, err
	}
	var t C.LLVMTypeRef
	if scalable {
		t = C.LLVMScalableVectorType(e.t, cn)
	} else {
		t = C.LLVMVectorType(e.t, cn)
	}
	return &VectorType{typ{t: t, ref: c.ref()}}, nil
}

// PointerType returns the opaque pointer type of an address space.
func (c *Context) PointerType(addrSpace int) (*PointerType, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	as, err := cUnsigned("PointerType", addrSpace)
	if err != nil {
		return nil, err
	}
	return &PointerType{typ{t: C.LLVMPointerTypeInContext(c.c, as), ref: c.ref()}}, nil
}

// PointerTo returns the pointer type for values of elem. Pointers are
// opaque, so the element type is only validated, not recorded.
func (c *Context) PointerTo(elem Type, addrSpace int) (*PointerType, error) {
	e, err := c.member("PointerTo", elem)
	if err != nil {
		return nil, err
	}
	if k := e.kind(); !k.ValidPointee() {
		return nil, constructionErrorf("PointerTo", "%s is not a valid pointee", k)
	}
	as, err := cUnsigned("PointerTo", addrSpace)
	if err != nil {
		return nil, err
	}
	return &PointerType{typ{t: C.LLVMPointerType(e.t, as), ref: c.ref()}}, nil
}

// member validates a single type argument of a constructor.
func (c *Context) member(op string, t Type) (*typ, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	b, err := typeOf(op, t)
	if err != nil {
		return nil, err
	}
	if b.context() != c.c {
		return nil, constructionErrorf(op, "type belongs to another context")
	}
	return b, nil
}
