// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// Opcode is the operation code of an instruction.
type Opcode int

// Opcode members.
const (
	OpcodeRet            Opcode = 1
	OpcodeBr             Opcode = 2
	OpcodeSwitch         Opcode = 3
	OpcodeIndirectBr     Opcode = 4
	OpcodeInvoke         Opcode = 5
	OpcodeUnreachable    Opcode = 7
	OpcodeCallBr         Opcode = 67
	OpcodeFNeg           Opcode = 66
	OpcodeAdd            Opcode = 8
	OpcodeFAdd           Opcode = 9
	OpcodeSub            Opcode = 10
	OpcodeFSub           Opcode = 11
	OpcodeMul            Opcode = 12
	OpcodeFMul           Opcode = 13
	OpcodeUDiv           Opcode = 14
	OpcodeSDiv           Opcode = 15
	OpcodeFDiv           Opcode = 16
	OpcodeURem           Opcode = 17
	OpcodeSRem           Opcode = 18
	OpcodeFRem           Opcode = 19
	OpcodeShl            Opcode = 20
	OpcodeLShr           Opcode = 21
	OpcodeAShr           Opcode = 22
	OpcodeAnd            Opcode = 23
	OpcodeOr             Opcode = 24
	OpcodeXor            Opcode = 25
	OpcodeAlloca         Opcode = 26
	OpcodeLoad           Opcode = 27
	OpcodeStore          Opcode = 28
	OpcodeGetElementPtr  Opcode = 29
	OpcodeTrunc          Opcode = 30
	OpcodeZExt           Opcode = 31
	OpcodeSExt           Opcode = 32
	OpcodeFPToUI         Opcode = 33
	OpcodeFPToSI         Opcode = 34
	OpcodeUIToFP         Opcode = 35
	OpcodeSIToFP         Opcode = 36
	OpcodeFPTrunc        Opcode = 37
	OpcodeFPExt          Opcode = 38
	OpcodePtrToInt       Opcode = 39
	OpcodeIntToPtr       Opcode = 40
	OpcodeBitCast        Opcode = 41
	OpcodeAddrSpaceCast  Opcode = 60
	OpcodeICmp           Opcode = 42
	OpcodeFCmp           Opcode = 43
	OpcodePHI            Opcode = 44
	OpcodeCall           Opcode = 45
	OpcodeSelect         Opcode = 46
	OpcodeUserOp1        Opcode = 47
	OpcodeUserOp2        Opcode = 48
	OpcodeVAArg          Opcode = 49
	OpcodeExtractElement Opcode = 50
	OpcodeInsertElement  Opcode = 51
	OpcodeShuffleVector  Opcode = 52
	OpcodeExtractValue   Opcode = 53
	OpcodeInsertValue    Opcode = 54
	OpcodeFreeze         Opcode = 68
	OpcodeFence          Opcode = 55
	OpcodeAtomicCmpXchg  Opcode = 56
	OpcodeAtomicRMW      Opcode = 57
	OpcodeResume         Opcode = 58
	OpcodeLandingPad     Opcode = 59
	OpcodeCleanupRet     Opcode = 61
	OpcodeCatchRet       Opcode = 62
	OpcodeCatchPad       Opcode = 63
	OpcodeCleanupPad     Opcode = 64
	OpcodeCatchSwitch    Opcode = 65
)

// OpcodeTable lists every Opcode member with its native value.
var OpcodeTable = newTable("Opcode", []Member{
	{Name: "Ret", Value: int64(OpcodeRet), Doc: "Terminator: return from function"},
	{Name: "Br", Value: int64(OpcodeBr), Doc: "Terminator: unconditional or conditional branch"},
	{Name: "Switch", Value: int64(OpcodeSwitch), Doc: "Terminator: multi-way branch"},
	{Name: "IndirectBr", Value: int64(OpcodeIndirectBr)},
	{Name: "Invoke", Value: int64(OpcodeInvoke)},
	{Name: "Unreachable", Value: int64(OpcodeUnreachable), Doc: "Terminator: marks unreachable code"},
	{Name: "CallBr", Value: int64(OpcodeCallBr)},
	{Name: "FNeg", Value: int64(OpcodeFNeg)},
	{Name: "Add", Value: int64(OpcodeAdd)},
	{Name: "FAdd", Value: int64(OpcodeFAdd)},
	{Name: "Sub", Value: int64(OpcodeSub)},
	{Name: "FSub", Value: int64(OpcodeFSub)},
	{Name: "Mul", Value: int64(OpcodeMul)},
	{Name: "FMul", Value: int64(OpcodeFMul)},
	{Name: "UDiv", Value: int64(OpcodeUDiv)},
	{Name: "SDiv", Value: int64(OpcodeSDiv)},
	{Name: "FDiv", Value: int64(OpcodeFDiv)},
	{Name: "URem", Value: int64(OpcodeURem)},
	{Name: "SRem", Value: int64(OpcodeSRem)},
	{Name: "FRem", Value: int64(OpcodeFRem)},
	{Name: "Shl", Value: int64(OpcodeShl)},
	{Name: "LShr", Value: int64(OpcodeLShr)},
	{Name: "AShr", Value: int64(OpcodeAShr)},
	{Name: "And", Value: int64(OpcodeAnd)},
	{Name: "Or", Value: int64(OpcodeOr)},
	{Name: "Xor", Value: int64(OpcodeXor)},
	{Name: "Alloca", Value: int64(OpcodeAlloca), Doc: "Memory: stack allocation"},
	{Name: "Load", Value: int64(OpcodeLoad), Doc: "Memory: read"},
	{Name: "Store", Value: int64(OpcodeStore), Doc: "Memory: write"},
	{Name: "GetElementPtr", Value: int64(OpcodeGetElementPtr), Doc: "Memory: address computation"},
	{Name: "Trunc", Value: int64(OpcodeTrunc)},
	{Name: "ZExt", Value: int64(OpcodeZExt)},
	{Name: "SExt", Value: int64(OpcodeSExt)},
	{Name: "FPToUI", Value: int64(OpcodeFPToUI)},
	{Name: "FPToSI", Value: int64(OpcodeFPToSI)},
	{Name: "UIToFP", Value: int64(OpcodeUIToFP)},
	{Name: "SIToFP", Value: int64(OpcodeSIToFP)},
	{Name: "FPTrunc", Value: int64(OpcodeFPTrunc)},
	{Name: "FPExt", Value: int64(OpcodeFPExt)},
	{Name: "PtrToInt", Value: int64(OpcodePtrToInt)},
	{Name: "IntToPtr", Value: int64(OpcodeIntToPtr)},
	{Name: "BitCast", Value: int64(OpcodeBitCast)},
	{Name: "AddrSpaceCast", Value: int64(OpcodeAddrSpaceCast)},
	{Name: "ICmp", Value: int64(OpcodeICmp)},
	{Name: "FCmp", Value: int64(OpcodeFCmp)},
	{Name: "PHI", Value: int64(OpcodePHI), Doc: "Other: SSA merge of incoming values"},
	{Name: "Call", Value: int64(OpcodeCall), Doc: "Other: function call"},
	{Name: "Select", Value: int64(OpcodeSelect)},
	{Name: "UserOp1", Value: int64(OpcodeUserOp1)},
	{Name: "UserOp2", Value: int64(OpcodeUserOp2)},
	{Name: "VAArg", Value: int64(OpcodeVAArg)},
	{Name: "ExtractElement", Value: int64(OpcodeExtractElement)},
	{Name: "InsertElement", Value: int64(OpcodeInsertElement)},
	{Name: "ShuffleVector", Value: int64(OpcodeShuffleVector)},
	{Name: "ExtractValue", Value: int64(OpcodeExtractValue)},
	{Name: "InsertValue", Value: int64(OpcodeInsertValue)},
	{Name: "Freeze", Value: int64(OpcodeFreeze)},
	{Name: "Fence", Value: int64(OpcodeFence)},
	{Name: "AtomicCmpXchg", Value: int64(OpcodeAtomicCmpXchg)},
	{Name: "AtomicRMW", Value: int64(OpcodeAtomicRMW)},
	{Name: "Resume", Value: int64(OpcodeResume)},
	{Name: "LandingPad", Value: int64(OpcodeLandingPad)},
	{Name: "CleanupRet", Value: int64(OpcodeCleanupRet)},
	{Name: "CatchRet", Value: int64(OpcodeCatchRet)},
	{Name: "CatchPad", Value: int64(OpcodeCatchPad)},
	{Name: "CleanupPad", Value: int64(OpcodeCleanupPad)},
	{Name: "CatchSwitch", Value: int64(OpcodeCatchSwitch)},
})

func (v Opcode) String() string { return OpcodeTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v Opcode) Doc() string { return OpcodeTable.doc(int64(v)) }

// IsTerminator reports whether the opcode ends a basic block.
func (v Opcode) IsTerminator() bool {
	switch v {
	case OpcodeRet, OpcodeBr, OpcodeSwitch, OpcodeIndirectBr, OpcodeInvoke, OpcodeResume,
		OpcodeUnreachable, OpcodeCleanupRet, OpcodeCatchRet, OpcodeCatchSwitch, OpcodeCallBr:
		return true
	}
	return false
}

// IsBinaryOp reports whether the opcode is a two-operand arithmetic or bitwise operation.
func (v Opcode) IsBinaryOp() bool {
	return v >= OpcodeAdd && v <= OpcodeXor
}

// IsCast reports whether the opcode converts a value to another type.
func (v Opcode) IsCast() bool {
	return (v >= OpcodeTrunc && v <= OpcodeBitCast) || v == OpcodeAddrSpaceCast
}
