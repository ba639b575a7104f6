// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// The predicates below follow the isValidElementType family of the native
// type classes. Constructing a type that violates them is undefined behavior
// in a release build of the native library, so the binding checks them first.

// IsFloatingPoint reports whether the kind is one of the real types.
func (v TypeKind) IsFloatingPoint() bool {
	switch v {
	case TypeKindHalf, TypeKindBFloat, TypeKindFloat, TypeKindDouble,
		TypeKindX86FP80, TypeKindFP128, TypeKindPPCFP128:
		return true
	}
	return false
}

// IsFirstClass reports whether values of this kind can be produced by
// instructions and passed as arguments.
func (v TypeKind) IsFirstClass() bool {
	return v != TypeKindFunction && v != TypeKindVoid
}

// ValidPointee reports whether a pointer to this kind may be formed.
func (v TypeKind) ValidPointee() bool {
	switch v {
	case TypeKindVoid, TypeKindLabel, TypeKindMetadata, TypeKindToken, TypeKindX86AMX:
		return false
	}
	return true
}

// ValidArrayElement reports whether an array of this kind may be formed.
func (v TypeKind) ValidArrayElement() bool {
	switch v {
	case TypeKindVoid, TypeKindLabel, TypeKindMetadata, TypeKindFunction,
		TypeKindToken, TypeKindX86AMX, TypeKindScalableVector:
		return false
	}
	return true
}

// ValidVectorElement reports whether a vector of this kind may be formed.
func (v TypeKind) ValidVectorElement() bool {
	return v == TypeKindInteger || v == TypeKindPointer || v.IsFloatingPoint()
}

// ValidStructElement reports whether a struct field of this kind may be formed.
func (v TypeKind) ValidStructElement() bool {
	switch v {
	case TypeKindVoid, TypeKindLabel, TypeKindMetadata, TypeKindFunction, TypeKindToken:
		return false
	}
	return true
}

// ValidReturn reports whether a function may return this kind.
func (v TypeKind) ValidReturn() bool {
	return v != TypeKindFunction && v != TypeKindLabel && v != TypeKindMetadata
}

// ValidParam reports whether a function parameter may have this kind.
func (v TypeKind) ValidParam() bool {
	return v.IsFirstClass()
}

// Integer widths accepted by the native library.
const (
	MinIntWidth = 1
	MaxIntWidth = 1 << 23
)
