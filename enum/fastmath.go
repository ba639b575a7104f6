// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

import "strings"

// FastMathFlags is a bit set of floating point relaxations allowed on an
// instruction.
type FastMathFlags uint32

// FastMathFlags members.
const (
	FastMathAllowReassoc    FastMathFlags = 1 << 0
	FastMathNoNaNs          FastMathFlags = 1 << 1
	FastMathNoInfs          FastMathFlags = 1 << 2
	FastMathNoSignedZeros   FastMathFlags = 1 << 3
	FastMathAllowReciprocal FastMathFlags = 1 << 4
	FastMathAllowContract   FastMathFlags = 1 << 5
	FastMathApproxFunc      FastMathFlags = 1 << 6
	FastMathNone            FastMathFlags = 0
	FastMathAll             FastMathFlags = FastMathAllowReassoc | FastMathNoNaNs | FastMathNoInfs |
		FastMathNoSignedZeros | FastMathAllowReciprocal | FastMathAllowContract | FastMathApproxFunc
)

// FastMathFlagsTable lists every FastMathFlags member with its native value.
var FastMathFlagsTable = newTable("FastMathFlags", []Member{
	{Name: "AllowReassoc", Value: int64(FastMathAllowReassoc)},
	{Name: "NoNaNs", Value: int64(FastMathNoNaNs)},
	{Name: "NoInfs", Value: int64(FastMathNoInfs)},
	{Name: "NoSignedZeros", Value: int64(FastMathNoSignedZeros)},
	{Name: "AllowReciprocal", Value: int64(FastMathAllowReciprocal)},
	{Name: "AllowContract", Value: int64(FastMathAllowContract)},
	{Name: "ApproxFunc", Value: int64(FastMathApproxFunc)},
	{Name: "None", Value: int64(FastMathNone)},
	{Name: "All", Value: int64(FastMathAll)},
})

// Has reports whether every flag of f is set in v.
func (v FastMathFlags) Has(f FastMathFlags) bool { return v&f == f }

// String renders the set flags joined by '|'.
func (v FastMathFlags) String() string {
	switch v {
	case FastMathNone:
		return "None"
	case FastMathAll:
		return "All"
	}
	var parts []string
	for _, m := range FastMathFlagsTable.Members {
		bit := FastMathFlags(m.Value)
		if bit == FastMathNone || bit == FastMathAll {
			continue
		}
		if v.Has(bit) {
			parts = append(parts, m.Name)
			v &^= bit
		}
	}
	if v != 0 {
		parts = append(parts, FastMathFlagsTable.name(int64(v)))
	}
	return strings.Join(parts, "|")
}
