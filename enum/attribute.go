// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

import "fmt"

// AttributeIndex selects where an attribute applies on a function or call
// site. Parameters are addressed with ParamIndex.
type AttributeIndex uint32

// AttributeIndex members.
const (
	AttributeIndexReturn   AttributeIndex = 0
	AttributeIndexFunction AttributeIndex = ^AttributeIndex(0)
)

// AttributeIndexTable lists every AttributeIndex member with its native value.
var AttributeIndexTable = newTable("AttributeIndex", []Member{
	{Name: "Return", Value: int64(AttributeIndexReturn)},
	{Name: "Function", Value: int64(AttributeIndexFunction)},
})

// ParamIndex returns the attribute index of the zero-based parameter i.
func ParamIndex(i int) AttributeIndex {
	return AttributeIndex(i + 1)
}

// Param returns the zero-based parameter addressed by the index, or false
// for the return and function indices.
func (v AttributeIndex) Param() (int, bool) {
	if v == AttributeIndexReturn || v == AttributeIndexFunction {
		return 0, false
	}
	return int(v) - 1, true
}

func (v AttributeIndex) String() string {
	if p, ok := v.Param(); ok {
		return fmt.Sprintf("Param(%d)", p)
	}
	return AttributeIndexTable.name(int64(v))
}
