// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// IntPredicate is the comparison performed by an icmp instruction.
type IntPredicate int

// IntPredicate members.
const (
	IntEQ  IntPredicate = 32
	IntNE  IntPredicate = 33
	IntUGT IntPredicate = 34
	IntUGE IntPredicate = 35
	IntULT IntPredicate = 36
	IntULE IntPredicate = 37
	IntSGT IntPredicate = 38
	IntSGE IntPredicate = 39
	IntSLT IntPredicate = 40
	IntSLE IntPredicate = 41
)

// IntPredicateTable lists every IntPredicate member with its native value.
var IntPredicateTable = newTable("IntPredicate", []Member{
	{Name: "EQ", Value: int64(IntEQ), Doc: "equal"},
	{Name: "NE", Value: int64(IntNE), Doc: "not equal"},
	{Name: "UGT", Value: int64(IntUGT), Doc: "unsigned greater than"},
	{Name: "UGE", Value: int64(IntUGE), Doc: "unsigned greater or equal"},
	{Name: "ULT", Value: int64(IntULT), Doc: "unsigned less than"},
	{Name: "ULE", Value: int64(IntULE), Doc: "unsigned less or equal"},
	{Name: "SGT", Value: int64(IntSGT), Doc: "signed greater than"},
	{Name: "SGE", Value: int64(IntSGE), Doc: "signed greater or equal"},
	{Name: "SLT", Value: int64(IntSLT), Doc: "signed less than"},
	{Name: "SLE", Value: int64(IntSLE), Doc: "signed less or equal"},
})

func (v IntPredicate) String() string { return IntPredicateTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v IntPredicate) Doc() string { return IntPredicateTable.doc(int64(v)) }

// RealPredicate is the comparison performed by an fcmp instruction.
type RealPredicate int

// RealPredicate members.
const (
	RealFalse RealPredicate = 0
	RealOEQ   RealPredicate = 1
	RealOGT   RealPredicate = 2
	RealOGE   RealPredicate = 3
	RealOLT   RealPredicate = 4
	RealOLE   RealPredicate = 5
	RealONE   RealPredicate = 6
	RealORD   RealPredicate = 7
	RealUNO   RealPredicate = 8
	RealUEQ   RealPredicate = 9
	RealUGT   RealPredicate = 10
	RealUGE   RealPredicate = 11
	RealULT   RealPredicate = 12
	RealULE   RealPredicate = 13
	RealUNE   RealPredicate = 14
	RealTrue  RealPredicate = 15
)

// RealPredicateTable lists every RealPredicate member with its native value.
var RealPredicateTable = newTable("RealPredicate", []Member{
	{Name: "False", Value: int64(RealFalse), Doc: "Always false (always folded)"},
	{Name: "OEQ", Value: int64(RealOEQ), Doc: "True if ordered and equal"},
	{Name: "OGT", Value: int64(RealOGT), Doc: "True if ordered and greater than"},
	{Name: "OGE", Value: int64(RealOGE), Doc: "True if ordered and greater than or equal"},
	{Name: "OLT", Value: int64(RealOLT), Doc: "True if ordered and less than"},
	{Name: "OLE", Value: int64(RealOLE), Doc: "True if ordered and less than or equal"},
	{Name: "ONE", Value: int64(RealONE), Doc: "True if ordered and operands are unequal"},
	{Name: "ORD", Value: int64(RealORD), Doc: "True if ordered (no nans)"},
	{Name: "UNO", Value: int64(RealUNO), Doc: "True if unordered: isnan(X) | isnan(Y)"},
	{Name: "UEQ", Value: int64(RealUEQ), Doc: "True if unordered or equal"},
	{Name: "UGT", Value: int64(RealUGT), Doc: "True if unordered or greater than"},
	{Name: "UGE", Value: int64(RealUGE), Doc: "True if unordered, greater than, or equal"},
	{Name: "ULT", Value: int64(RealULT), Doc: "True if unordered or less than"},
	{Name: "ULE", Value: int64(RealULE), Doc: "True if unordered, less than, or equal"},
	{Name: "UNE", Value: int64(RealUNE), Doc: "True if unordered or not equal"},
	{Name: "True", Value: int64(RealTrue), Doc: "Always true (always folded)"},
})

func (v RealPredicate) String() string { return RealPredicateTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v RealPredicate) Doc() string { return RealPredicateTable.doc(int64(v)) }
