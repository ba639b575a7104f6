// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// TypeKind discriminates the native type graph.
type TypeKind int

// TypeKind members.
const (
	TypeKindVoid           TypeKind = 0
	TypeKindHalf           TypeKind = 1
	TypeKindFloat          TypeKind = 2
	TypeKindDouble         TypeKind = 3
	TypeKindX86FP80        TypeKind = 4
	TypeKindFP128          TypeKind = 5
	TypeKindPPCFP128       TypeKind = 6
	TypeKindLabel          TypeKind = 7
	TypeKindInteger        TypeKind = 8
	TypeKindFunction       TypeKind = 9
	TypeKindStruct         TypeKind = 10
	TypeKindArray          TypeKind = 11
	TypeKindPointer        TypeKind = 12
	TypeKindVector         TypeKind = 13
	TypeKindMetadata       TypeKind = 14
	TypeKindX86MMX         TypeKind = 15
	TypeKindToken          TypeKind = 16
	TypeKindScalableVector TypeKind = 17
	TypeKindBFloat         TypeKind = 18
	TypeKindX86AMX         TypeKind = 19
	TypeKindTargetExt      TypeKind = 20
)

// TypeKindTable lists every TypeKind member with its native value.
var TypeKindTable = newTable("TypeKind", []Member{
	{Name: "Void", Value: int64(TypeKindVoid), Doc: "type with no size"},
	{Name: "Half", Value: int64(TypeKindHalf), Doc: "16 bit floating point type"},
	{Name: "Float", Value: int64(TypeKindFloat), Doc: "32 bit floating point type"},
	{Name: "Double", Value: int64(TypeKindDouble), Doc: "64 bit floating point type"},
	{Name: "X86_FP80", Value: int64(TypeKindX86FP80), Doc: "80 bit floating point type (X87)"},
	{Name: "FP128", Value: int64(TypeKindFP128), Doc: "128 bit floating point type (112-bit mantissa)"},
	{Name: "PPC_FP128", Value: int64(TypeKindPPCFP128), Doc: "128 bit floating point type (two 64-bits)"},
	{Name: "Label", Value: int64(TypeKindLabel), Doc: "Labels"},
	{Name: "Integer", Value: int64(TypeKindInteger), Doc: "Arbitrary bit width integers"},
	{Name: "Function", Value: int64(TypeKindFunction), Doc: "Functions"},
	{Name: "Struct", Value: int64(TypeKindStruct), Doc: "Structures"},
	{Name: "Array", Value: int64(TypeKindArray), Doc: "Arrays"},
	{Name: "Pointer", Value: int64(TypeKindPointer), Doc: "Pointers"},
	{Name: "Vector", Value: int64(TypeKindVector), Doc: "Fixed width SIMD vector type"},
	{Name: "Metadata", Value: int64(TypeKindMetadata), Doc: "Metadata"},
	{Name: "X86_MMX", Value: int64(TypeKindX86MMX), Doc: "X86 MMX"},
	{Name: "Token", Value: int64(TypeKindToken), Doc: "Tokens"},
	{Name: "ScalableVector", Value: int64(TypeKindScalableVector), Doc: "Scalable SIMD vector type"},
	{Name: "BFloat", Value: int64(TypeKindBFloat), Doc: "16 bit brain floating point type"},
	{Name: "X86_AMX", Value: int64(TypeKindX86AMX), Doc: "X86 AMX"},
	{Name: "TargetExt", Value: int64(TypeKindTargetExt), Doc: "Target extension type"},
})

func (v TypeKind) String() string { return TypeKindTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v TypeKind) Doc() string { return TypeKindTable.doc(int64(v)) }
