// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// ValueKind discriminates the native value hierarchy.
type ValueKind int

// ValueKind members.
const (
	ValueKindArgument              ValueKind = 0
	ValueKindBasicBlock            ValueKind = 1
	ValueKindMemoryUse             ValueKind = 2
	ValueKindMemoryDef             ValueKind = 3
	ValueKindMemoryPhi             ValueKind = 4
	ValueKindFunction              ValueKind = 5
	ValueKindGlobalAlias           ValueKind = 6
	ValueKindGlobalIFunc           ValueKind = 7
	ValueKindGlobalVariable        ValueKind = 8
	ValueKindBlockAddress          ValueKind = 9
	ValueKindConstantExpr          ValueKind = 10
	ValueKindConstantArray         ValueKind = 11
	ValueKindConstantStruct        ValueKind = 12
	ValueKindConstantVector        ValueKind = 13
	ValueKindUndefValue            ValueKind = 14
	ValueKindConstantAggregateZero ValueKind = 15
	ValueKindConstantDataArray     ValueKind = 16
	ValueKindConstantDataVector    ValueKind = 17
	ValueKindConstantInt           ValueKind = 18
	ValueKindConstantFP            ValueKind = 19
	ValueKindConstantPointerNull   ValueKind = 20
	ValueKindConstantTokenNone     ValueKind = 21
	ValueKindMetadataAsValue       ValueKind = 22
	ValueKindInlineAsm             ValueKind = 23
	ValueKindInstruction           ValueKind = 24
	ValueKindPoisonValue           ValueKind = 25
	ValueKindConstantTargetNone    ValueKind = 26
)

// ValueKindTable lists every ValueKind member with its native value.
var ValueKindTable = newTable("ValueKind", []Member{
	{Name: "Argument", Value: int64(ValueKindArgument)},
	{Name: "BasicBlock", Value: int64(ValueKindBasicBlock)},
	{Name: "MemoryUse", Value: int64(ValueKindMemoryUse)},
	{Name: "MemoryDef", Value: int64(ValueKindMemoryDef)},
	{Name: "MemoryPhi", Value: int64(ValueKindMemoryPhi)},
	{Name: "Function", Value: int64(ValueKindFunction)},
	{Name: "GlobalAlias", Value: int64(ValueKindGlobalAlias)},
	{Name: "GlobalIFunc", Value: int64(ValueKindGlobalIFunc)},
	{Name: "GlobalVariable", Value: int64(ValueKindGlobalVariable)},
	{Name: "BlockAddress", Value: int64(ValueKindBlockAddress)},
	{Name: "ConstantExpr", Value: int64(ValueKindConstantExpr)},
	{Name: "ConstantArray", Value: int64(ValueKindConstantArray)},
	{Name: "ConstantStruct", Value: int64(ValueKindConstantStruct)},
	{Name: "ConstantVector", Value: int64(ValueKindConstantVector)},
	{Name: "UndefValue", Value: int64(ValueKindUndefValue)},
	{Name: "ConstantAggregateZero", Value: int64(ValueKindConstantAggregateZero)},
	{Name: "ConstantDataArray", Value: int64(ValueKindConstantDataArray)},
	{Name: "ConstantDataVector", Value: int64(ValueKindConstantDataVector)},
	{Name: "ConstantInt", Value: int64(ValueKindConstantInt)},
	{Name: "ConstantFP", Value: int64(ValueKindConstantFP)},
	{Name: "ConstantPointerNull", Value: int64(ValueKindConstantPointerNull)},
	{Name: "ConstantTokenNone", Value: int64(ValueKindConstantTokenNone)},
	{Name: "MetadataAsValue", Value: int64(ValueKindMetadataAsValue)},
	{Name: "InlineAsm", Value: int64(ValueKindInlineAsm)},
	{Name: "Instruction", Value: int64(ValueKindInstruction)},
	{Name: "PoisonValue", Value: int64(ValueKindPoisonValue)},
	{Name: "ConstantTargetNone", Value: int64(ValueKindConstantTargetNone)},
})

func (v ValueKind) String() string { return ValueKindTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v ValueKind) Doc() string { return ValueKindTable.doc(int64(v)) }

// IsConstant reports whether values of this kind are constants, including
// global values.
func (v ValueKind) IsConstant() bool {
	switch v {
	case ValueKindFunction, ValueKindGlobalAlias, ValueKindGlobalIFunc, ValueKindGlobalVariable,
		ValueKindBlockAddress, ValueKindConstantExpr, ValueKindConstantArray, ValueKindConstantStruct,
		ValueKindConstantVector, ValueKindUndefValue, ValueKindConstantAggregateZero,
		ValueKindConstantDataArray, ValueKindConstantDataVector, ValueKindConstantInt,
		ValueKindConstantFP, ValueKindConstantPointerNull, ValueKindConstantTokenNone,
		ValueKindPoisonValue, ValueKindConstantTargetNone:
		return true
	}
	return false
}

// IsGlobal reports whether values of this kind live at module scope.
func (v ValueKind) IsGlobal() bool {
	switch v {
	case ValueKindFunction, ValueKindGlobalAlias, ValueKindGlobalIFunc, ValueKindGlobalVariable:
		return true
	}
	return false
}
