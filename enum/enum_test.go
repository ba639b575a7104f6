// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberCounts(t *testing.T) {
	counts := map[string]int{
		"Opcode":                67,
		"TypeKind":              21,
		"Linkage":               17,
		"Visibility":            3,
		"UnnamedAddr":           3,
		"DLLStorageClass":       3,
		"CallConv":              41,
		"ValueKind":             27,
		"IntPredicate":          10,
		"RealPredicate":         16,
		"LandingPadClauseTy":    2,
		"ThreadLocalMode":       5,
		"AtomicOrdering":        7,
		"AtomicRMWBinOp":        15,
		"DiagnosticSeverity":    4,
		"InlineAsmDialect":      2,
		"ModuleFlagBehavior":    6,
		"AttributeIndex":        2,
		"TailCallKind":          4,
		"FastMathFlags":         9,
		"VerifierFailureAction": 3,
	}
	assert.Equal(t, len(counts), len(Tables()))
	for _, tab := range Tables() {
		t.Run(tab.Name, func(t *testing.T) {
			want, ok := counts[tab.Name]
			require.True(t, ok, "unexpected table %s", tab.Name)
			assert.Equal(t, want, tab.Len())
		})
	}
}

func TestValues(t *testing.T) {
	assert.Equal(t, 32, int(IntEQ))
	assert.Equal(t, 41, int(IntSLE))
	assert.Equal(t, 67, int(OpcodeCallBr))
	assert.Equal(t, 68, int(OpcodeFreeze))
	assert.Equal(t, 7, int(OrderingSequentiallyConsistent))
	assert.Equal(t, 96, int(CallConvAMDGPUES))
	assert.Equal(t, 20, int(TypeKindTargetExt))
	assert.Equal(t, uint32(0xffffffff), uint32(AttributeIndexFunction))
	assert.Equal(t, 2, int(ReturnStatus))
	assert.Equal(t, FastMathFlags(0x7f), FastMathAll)
}

func TestDocAndString(t *testing.T) {
	assert.Equal(t, "type with no size", TypeKindVoid.Doc())
	assert.Equal(t, "Void", TypeKindVoid.String())
	assert.Equal(t, "EQ", IntEQ.String())
	assert.Equal(t, "equal", IntEQ.Doc())
	assert.Equal(t, "X86_FP80", TypeKindX86FP80.String())
	assert.Equal(t, "Opcode(6)", Opcode(6).String())
	assert.Equal(t, "", Opcode(6).Doc())
	assert.Equal(t, "Param(1)", ParamIndex(1).String())
	assert.Equal(t, "Function", AttributeIndexFunction.String())
}

func TestTableLookup(t *testing.T) {
	tab, ok := Lookup("Opcode")
	require.True(t, ok)
	m, ok := tab.ByName("Add")
	require.True(t, ok)
	assert.Equal(t, int64(OpcodeAdd), m.Value)

	_, ok = tab.ByValue(6)
	assert.False(t, ok)
	_, ok = Lookup("Nope")
	assert.False(t, ok)

	vs := IntPredicateTable.Values()
	assert.Equal(t, int64(32), vs[0])
	assert.Equal(t, int64(41), vs[len(vs)-1])
}

func TestUniqueValues(t *testing.T) {
	for _, tab := range Tables() {
		seen := make(map[int64]string)
		for _, m := range tab.Members {
			prev, dup := seen[m.Value]
			assert.False(t, dup, "%s: %s and %s share value %d", tab.Name, prev, m.Name, m.Value)
			seen[m.Value] = m.Name
		}
	}
}

func TestOpcodeClasses(t *testing.T) {
	testCases := []struct {
		op   Opcode
		term bool
		bin  bool
		cast bool
	}{
		{op: OpcodeRet, term: true},
		{op: OpcodeCallBr, term: true},
		{op: OpcodeAdd, bin: true},
		{op: OpcodeXor, bin: true},
		{op: OpcodeFNeg},
		{op: OpcodeTrunc, cast: true},
		{op: OpcodeAddrSpaceCast, cast: true},
		{op: OpcodeICmp},
	}
	for _, tc := range testCases {
		t.Run(tc.op.String(), func(t *testing.T) {
			assert.Equal(t, tc.term, tc.op.IsTerminator())
			assert.Equal(t, tc.bin, tc.op.IsBinaryOp())
			assert.Equal(t, tc.cast, tc.op.IsCast())
		})
	}
}

func TestFastMathFlags(t *testing.T) {
	f := FastMathNoNaNs | FastMathNoInfs
	assert.True(t, f.Has(FastMathNoNaNs))
	assert.False(t, f.Has(FastMathApproxFunc))
	assert.Equal(t, "NoNaNs|NoInfs", f.String())
	assert.Equal(t, "None", FastMathNone.String())
	assert.Equal(t, "All", FastMathAll.String())
}

func TestTypeKindRules(t *testing.T) {
	assert.False(t, TypeKindVoid.ValidPointee())
	assert.True(t, TypeKindInteger.ValidPointee())
	assert.False(t, TypeKindFunction.ValidArrayElement())
	assert.True(t, TypeKindStruct.ValidArrayElement())
	assert.False(t, TypeKindStruct.ValidVectorElement())
	assert.True(t, TypeKindDouble.ValidVectorElement())
	assert.False(t, TypeKindLabel.ValidStructElement())
	assert.True(t, TypeKindVoid.ValidReturn())
	assert.False(t, TypeKindVoid.ValidParam())
	assert.False(t, TypeKindMetadata.ValidReturn())
}

func TestValueKindClasses(t *testing.T) {
	assert.True(t, ValueKindFunction.IsConstant())
	assert.True(t, ValueKindFunction.IsGlobal())
	assert.True(t, ValueKindConstantInt.IsConstant())
	assert.False(t, ValueKindConstantInt.IsGlobal())
	assert.False(t, ValueKindInstruction.IsConstant())
}
