// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// CastShape describes the source or destination type of a cast.
type CastShape struct {
	Kind      TypeKind // scalar kind, the element kind for vectors
	Bits      int      // scalar width; 0 for pointers and unknown kinds
	Lanes     int      // vector length, 0 for scalars
	Scalable  bool
	AddrSpace int
}

// FloatBits returns the width of a floating point kind, 0 for other kinds.
func (v TypeKind) FloatBits() int {
	switch v {
	case TypeKindHalf, TypeKindBFloat:
		return 16
	case TypeKindFloat:
		return 32
	case TypeKindDouble:
		return 64
	case TypeKindX86FP80:
		return 80
	case TypeKindFP128, TypeKindPPCFP128:
		return 128
	}
	return 0
}

func (s CastShape) isInt() bool { return s.Kind == TypeKindInteger }
func (s CastShape) isFP() bool  { return s.Kind.IsFloatingPoint() }
func (s CastShape) isPtr() bool { return s.Kind == TypeKindPointer }

func (s CastShape) totalBits() int {
	if s.Lanes == 0 {
		return s.Bits
	}
	return s.Bits * s.Lanes
}

// ValidCast reports whether op may convert src to dst. It follows the
// castIsValid rules of the native instruction classes.
func ValidCast(op Opcode, src, dst CastShape) bool {
	sameShape := src.Lanes == dst.Lanes && src.Scalable == dst.Scalable
	switch op {
	case OpcodeTrunc:
		return sameShape && src.isInt() && dst.isInt() && src.Bits > dst.Bits
	case OpcodeZExt, OpcodeSExt:
		return sameShape && src.isInt() && dst.isInt() && src.Bits < dst.Bits
	case OpcodeFPTrunc:
		return sameShape && src.isFP() && dst.isFP() && src.Bits > dst.Bits
	case OpcodeFPExt:
		return sameShape && src.isFP() && dst.isFP() && src.Bits < dst.Bits
	case OpcodeFPToUI, OpcodeFPToSI:
		return sameShape && src.isFP() && dst.isInt()
	case OpcodeUIToFP, OpcodeSIToFP:
		return sameShape && src.isInt() && dst.isFP()
	case OpcodePtrToInt:
		return sameShape && src.isPtr() && dst.isInt()
	case OpcodeIntToPtr:
		return sameShape && src.isInt() && dst.isPtr()
	case OpcodeAddrSpaceCast:
		return sameShape && src.isPtr() && dst.isPtr() && src.AddrSpace != dst.AddrSpace
	case OpcodeBitCast:
		if src.isPtr() || dst.isPtr() {
			return sameShape && src.isPtr() && dst.isPtr() && src.AddrSpace == dst.AddrSpace
		}
		if src.Scalable != dst.Scalable {
			return false
		}
		ok := func(s CastShape) bool { return (s.isInt() || s.isFP()) && s.Bits > 0 }
		return ok(src) && ok(dst) && src.totalBits() == dst.totalBits()
	}
	return false
}
