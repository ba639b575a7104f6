// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCast(t *testing.T) {
	i8 := CastShape{Kind: TypeKindInteger, Bits: 8}
	i32 := CastShape{Kind: TypeKindInteger, Bits: 32}
	i64 := CastShape{Kind: TypeKindInteger, Bits: 64}
	f32 := CastShape{Kind: TypeKindFloat, Bits: 32}
	f64 := CastShape{Kind: TypeKindDouble, Bits: 64}
	ptr := CastShape{Kind: TypeKindPointer}
	ptr1 := CastShape{Kind: TypeKindPointer, AddrSpace: 1}
	v2i32 := CastShape{Kind: TypeKindInteger, Bits: 32, Lanes: 2}
	v4i32 := CastShape{Kind: TypeKindInteger, Bits: 32, Lanes: 4}

	testCases := []struct {
		name     string
		op       Opcode
		src, dst CastShape
		valid    bool
	}{
		{"trunc", OpcodeTrunc, i32, i8, true},
		{"trunc widening", OpcodeTrunc, i8, i32, false},
		{"zext", OpcodeZExt, i8, i64, true},
		{"zext same width", OpcodeZExt, i32, i32, false},
		{"sext float", OpcodeSExt, f32, f64, false},
		{"fpext", OpcodeFPExt, f32, f64, true},
		{"fptrunc", OpcodeFPTrunc, f64, f32, true},
		{"fptosi", OpcodeFPToSI, f64, i32, true},
		{"sitofp", OpcodeSIToFP, i32, f32, true},
		{"sitofp vector mismatch", OpcodeSIToFP, v2i32, f32, false},
		{"ptrtoint", OpcodePtrToInt, ptr, i64, true},
		{"inttoptr", OpcodeIntToPtr, i64, ptr, true},
		{"addrspacecast", OpcodeAddrSpaceCast, ptr, ptr1, true},
		{"addrspacecast same space", OpcodeAddrSpaceCast, ptr, ptr, false},
		{"bitcast int float", OpcodeBitCast, i32, f32, true},
		{"bitcast size mismatch", OpcodeBitCast, i32, f64, false},
		{"bitcast vector to scalar", OpcodeBitCast, v2i32, i64, true},
		{"bitcast vector lanes", OpcodeBitCast, v4i32, v2i32, false},
		{"bitcast ptr int", OpcodeBitCast, ptr, i64, false},
		{"bitcast ptr ptr", OpcodeBitCast, ptr, ptr, true},
		{"not a cast", OpcodeAdd, i32, i32, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidCast(tc.op, tc.src, tc.dst))
		})
	}
}

func TestFloatBits(t *testing.T) {
	assert.Equal(t, 16, TypeKindBFloat.FloatBits())
	assert.Equal(t, 80, TypeKindX86FP80.FloatBits())
	assert.Equal(t, 0, TypeKindInteger.FloatBits())
}
