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

// Add emits integer addition.
func (b *Builder) Add(lhs, rhs Value, name string) (Value, error) {
	return b.binary("Add", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildAdd(b.b, l, r, n)
	})
}

// NSWAdd emits an addition with no signed wrap.
func (b *Builder) NSWAdd(lhs, rhs Value, name string) (Value, error) {
	return b.binary("NSWAdd", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNSWAdd(b.b, l, r, n)
	})
}

// NUWAdd emits an addition with no unsigned wrap.
func (b *Builder) NUWAdd(lhs, rhs Value, name string) (Value, error) {
	return b.binary("NUWAdd", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNUWAdd(b.b, l, r, n)
	})
}

// FAdd emits a floating point addition.
func (b *Builder) FAdd(lhs, rhs Value, name string) (Value, error) {
	return b.binary("FAdd", fpOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFAdd(b.b, l, r, n)
	})
}

func (b *Builder) Sub(lhs, rhs Value, name string) (Value, error) {
	return b.binary("Sub", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildSub(b.b, l, r, n)
	})
}

func (b *Builder) NSWSub(lhs, rhs Value, name string) (Value, error) {
	return b.binary("NSWSub", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNSWSub(b.b, l, r, n)
	})
}

func (b *Builder) NUWSub(lhs, rhs Value, name string) (Value, error) {
	return b.binary("NUWSub", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNUWSub(b.b, l, r, n)
	})
}

func (b *Builder) FSub(lhs, rhs Value, name string) (Value, error) {
	return b.binary("FSub", fpOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFSub(b.b, l, r, n)
	})
}

func (b *Builder) Mul(lhs, rhs Value, name string) (Value, error) {
	return b.binary("Mul", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildMul(b.b, l, r, n)
	})
}

func (b *Builder) NSWMul(lhs, rhs Value, name string) (Value, error) {
	return b.binary("NSWMul", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNSWMul(b.b, l, r, n)
	})
}

func (b *Builder) NUWMul(lhs, rhs Value, name string) (Value, error) {
	return b.binary("NUWMul", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNUWMul(b.b, l, r, n)
	})
}

func (b *Builder) FMul(lhs, rhs Value, name string) (Value, error) {
	return b.binary("FMul", fpOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFMul(b.b, l, r, n)
	})
}

// UDiv emits an unsigned division.
func (b *Builder) UDiv(lhs, rhs Value, name string) (Value, error) {
	return b.binary("UDiv", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildUDiv(b.b, l, r, n)
	})
}

// ExactUDiv emits an unsigned division known to have no remainder.
func (b *Builder) ExactUDiv(lhs, rhs Value, name string) (Value, error) {
	return b.binary("ExactUDiv", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildExactUDiv(b.b, l, r, n)
	})
}

// SDiv emits a signed division.
func (b *Builder) SDiv(lhs, rhs Value, name string) (Value, error) {
	return b.binary("SDiv", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildSDiv(b.b, l, r, n)
	})
}

func (b *Builder) ExactSDiv(lhs, rhs Value, name string) (Value, error) {
	return b.binary("ExactSDiv", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildExactSDiv(b.b, l, r, n)
	})
}

func (b *Builder) FDiv(lhs, rhs Value, name string) (Value, error) {
	return b.binary("FDiv", fpOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFDiv(b.b, l, r, n)
	})
}

func (b *Builder) URem(lhs, rhs Value, name string) (Value, error) {
	return b.binary("URem", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildURem(b.b, l, r, n)
	})
}

func (b *Builder) SRem(lhs, rhs Value, name string) (Value, error) {
	return b.binary("SRem", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildSRem(b.b, l, r, n)
	})
}

func (b *Builder) FRem(lhs, rhs Value, name string) (Value, error) {
	return b.binary("FRem", fpOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFRem(b.b, l, r, n)
	})
}

// Shl emits a left shift.
func (b *Builder) Shl(lhs, rhs Value, name string) (Value, error) {
	return b.binary("Shl", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildShl(b.b, l, r, n)
	})
}

// LShr emits a logical right shift.
func (b *Builder) LShr(lhs, rhs Value, name string) (Value, error) {
	return b.binary("LShr", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildLShr(b.b, l, r, n)
	})
}

// AShr emits an arithmetic right shift.
func (b *Builder) AShr(lhs, rhs Value, name string) (Value, error) {
	return b.binary("AShr", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildAShr(b.b, l, r, n)
	})
}

func (b *Builder) And(lhs, rhs Value, name string) (Value, error) {
	return b.binary("And", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildAnd(b.b, l, r, n)
	})
}

func (b *Builder) Or(lhs, rhs Value, name string) (Value, error) {
	return b.binary("Or", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildOr(b.b, l, r, n)
	})
}

func (b *Builder) Xor(lhs, rhs Value, name string) (Value, error) {
	return b.binary("Xor", intOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildXor(b.b, l, r, n)
	})
}

// BinOp emits the binary operator op.
func (b *Builder) BinOp(op enum.Opcode, lhs, rhs Value, name string) (Value, error) {
	if _, err := b.ready("BinOp"); err != nil {
		return nil, err
	}
	if !op.IsBinaryOp() {
		return nil, constructionErrorf("BinOp", "%s is not a binary operator", op)
	}
	class := intOperand
	switch op {
	case enum.OpcodeFAdd, enum.OpcodeFSub, enum.OpcodeFMul, enum.OpcodeFDiv, enum.OpcodeFRem:
		class = fpOperand
	}
	return b.binary("BinOp", class, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildBinOp(b.b, C.LLVMOpcode(op), l, r, n)
	})
}

// Neg emits an integer negation.
func (b *Builder) Neg(v Value, name string) (Value, error) {
	return b.unary("Neg", intOperand, v, name, func(v C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNeg(b.b, v, n)
	})
}

func (b *Builder) NSWNeg(v Value, name string) (Value, error) {
	return b.unary("NSWNeg", intOperand, v, name, func(v C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNSWNeg(b.b, v, n)
	})
}

func (b *Builder) NUWNeg(v Value, name string) (Value, error) {
	return b.unary("NUWNeg", intOperand, v, name, func(v C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNUWNeg(b.b, v, n)
	})
}

// FNeg emits a floating point negation.
func (b *Builder) FNeg(v Value, name string) (Value, error) {
	return b.unary("FNeg", fpOperand, v, name, func(v C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFNeg(b.b, v, n)
	})
}

// Not emits a bitwise complement.
func (b *Builder) Not(v Value, name string) (Value, error) {
	return b.unary("Not", intOperand, v, name, func(v C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildNot(b.b, v, n)
	})
}

func (b *Builder) Trunc(v Value, dest Type, name string) (Value, error) {
	return b.cast("Trunc", v, dest, name, []enum.Opcode{enum.OpcodeTrunc}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildTrunc(b.b, v, t, n)
	})
}

func (b *Builder) ZExt(v Value, dest Type, name string) (Value, error) {
	return b.cast("ZExt", v, dest, name, []enum.Opcode{enum.OpcodeZExt}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildZExt(b.b, v, t, n)
	})
}

func (b *Builder) SExt(v Value, dest Type, name string) (Value, error) {
	return b.cast("SExt", v, dest, name, []enum.Opcode{enum.OpcodeSExt}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildSExt(b.b, v, t, n)
	})
}

func (b *Builder) FPToUI(v Value, dest Type, name string) (Value, error) {
	return b.cast("FPToUI", v, dest, name, []enum.Opcode{enum.OpcodeFPToUI}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFPToUI(b.b, v, t, n)
	})
}

func (b *Builder) FPToSI(v Value, dest Type, name string) (Value, error) {
	return b.cast("FPToSI", v, dest, name, []enum.Opcode{enum.OpcodeFPToSI}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFPToSI(b.b, v, t, n)
	})
}

func (b *Builder) UIToFP(v Value, dest Type, name string) (Value, error) {
	return b.cast("UIToFP", v, dest, name, []enum.Opcode{enum.OpcodeUIToFP}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildUIToFP(b.b, v, t, n)
	})
}

func (b *Builder) SIToFP(v Value, dest Type, name string) (Value, error) {
	return b.cast("SIToFP", v, dest, name, []enum.Opcode{enum.OpcodeSIToFP}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildSIToFP(b.b, v, t, n)
	})
}

func (b *Builder) FPTrunc(v Value, dest Type, name string) (Value, error) {
	return b.cast("FPTrunc", v, dest, name, []enum.Opcode{enum.OpcodeFPTrunc}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFPTrunc(b.b, v, t, n)
	})
}

func (b *Builder) FPExt(v Value, dest Type, name string) (Value, error) {
	return b.cast("FPExt", v, dest, name, []enum.Opcode{enum.OpcodeFPExt}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFPExt(b.b, v, t, n)
	})
}

func (b *Builder) PtrToInt(v Value, dest Type, name string) (Value, error) {
	return b.cast("PtrToInt", v, dest, name, []enum.Opcode{enum.OpcodePtrToInt}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildPtrToInt(b.b, v, t, n)
	})
}

func (b *Builder) IntToPtr(v Value, dest Type, name string) (Value, error) {
	return b.cast("IntToPtr", v, dest, name, []enum.Opcode{enum.OpcodeIntToPtr}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildIntToPtr(b.b, v, t, n)
	})
}

func (b *Builder) BitCast(v Value, dest Type, name string) (Value, error) {
	return b.cast("BitCast", v, dest, name, []enum.Opcode{enum.OpcodeBitCast}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildBitCast(b.b, v, t, n)
	})
}

func (b *Builder) AddrSpaceCast(v Value, dest Type, name string) (Value, error) {
	return b.cast("AddrSpaceCast", v, dest, name, []enum.Opcode{enum.OpcodeAddrSpaceCast}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildAddrSpaceCast(b.b, v, t, n)
	})
}

func (b *Builder) ZExtOrBitCast(v Value, dest Type, name string) (Value, error) {
	return b.cast("ZExtOrBitCast", v, dest, name, []enum.Opcode{enum.OpcodeZExt, enum.OpcodeBitCast}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildZExtOrBitCast(b.b, v, t, n)
	})
}

func (b *Builder) SExtOrBitCast(v Value, dest Type, name string) (Value, error) {
	return b.cast("SExtOrBitCast", v, dest, name, []enum.Opcode{enum.OpcodeSExt, enum.OpcodeBitCast}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildSExtOrBitCast(b.b, v, t, n)
	})
}

func (b *Builder) TruncOrBitCast(v Value, dest Type, name string) (Value, error) {
	return b.cast("TruncOrBitCast", v, dest, name, []enum.Opcode{enum.OpcodeTrunc, enum.OpcodeBitCast}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildTruncOrBitCast(b.b, v, t, n)
	})
}

func (b *Builder) PointerCast(v Value, dest Type, name string) (Value, error) {
	return b.cast("PointerCast", v, dest, name, []enum.Opcode{enum.OpcodePtrToInt, enum.OpcodeBitCast, enum.OpcodeAddrSpaceCast}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildPointerCast(b.b, v, t, n)
	})
}

func (b *Builder) FPCast(v Value, dest Type, name string) (Value, error) {
	return b.cast("FPCast", v, dest, name, []enum.Opcode{enum.OpcodeFPTrunc, enum.OpcodeFPExt, enum.OpcodeBitCast}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFPCast(b.b, v, t, n)
	})
}

// IntCast emits a truncation or extension between integer types.
func (b *Builder) IntCast(v Value, dest Type, signed bool, name string) (Value, error) {
	ops := []enum.Opcode{enum.OpcodeTrunc, enum.OpcodeZExt, enum.OpcodeBitCast}
	return b.cast("IntCast", v, dest, name, ops, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildIntCast2(b.b, v, t, llvmBool(signed), n)
	})
}

// Cast emits the conversion op.
func (b *Builder) Cast(op enum.Opcode, v Value, dest Type, name string) (Value, error) {
	if _, err := b.ready("Cast"); err != nil {
		return nil, err
	}
	if !op.IsCast() {
		return nil, constructionErrorf("Cast", "%s is not a cast", op)
	}
	return b.cast("Cast", v, dest, name, []enum.Opcode{op}, func(v C.LLVMValueRef, t C.LLVMTypeRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildCast(b.b, C.LLVMOpcode(op), v, t, n)
	})
}

// ICmp emits an integer or pointer comparison.
func (b *Builder) ICmp(pred enum.IntPredicate, lhs, rhs Value, name string) (Value, error) {
	if _, err := b.ready("ICmp"); err != nil {
		return nil, err
	}
	if err := member("ICmp", enum.IntPredicateTable, int64(pred)); err != nil {
		return nil, err
	}
	return b.binary("ICmp", intOrPointerOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildICmp(b.b, C.LLVMIntPredicate(pred), l, r, n)
	})
}

// FCmp emits a floating point comparison.
func (b *Builder) FCmp(pred enum.RealPredicate, lhs, rhs Value, name string) (Value, error) {
	if _, err := b.ready("FCmp"); err != nil {
		return nil, err
	}
	if err := member("FCmp", enum.RealPredicateTable, int64(pred)); err != nil {
		return nil, err
	}
	return b.binary("FCmp", fpOperand, lhs, rhs, name, func(l, r C.LLVMValueRef, n *C.char) C.LLVMValueRef {
		return C.LLVMBuildFCmp(b.b, C.LLVMRealPredicate(pred), l, r, n)
	})
}
