// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package enum mirrors the integer enumerations of the LLVM-C interface.
//
// Every enumeration is declared once, as typed constants carrying the exact
// native value, and described once, by a Table listing the (name, value,
// doc) triple of each member. String and Doc are derived from the table, so
// the table is the single place to audit against the native header.
package enum

import (
	"fmt"
	"sort"
)

// Member is one member of a mirrored enumeration.
type Member struct {
	Name  string
	Value int64
	Doc   string
}

// Table describes a mirrored enumeration.
type Table struct {
	Name    string
	Members []Member

	byValue map[int64]int
	byName  map[string]int
}

func newTable(name string, members []Member) *Table {
	t := &Table{
		Name:    name,
		Members: members,
		byValue: make(map[int64]int, len(members)),
		byName:  make(map[string]int, len(members)),
	}
	for i, m := range members {
		if _, dup := t.byName[m.Name]; dup {
			panic(fmt.Sprintf("enum %s: duplicate member %s", name, m.Name))
		}
		t.byName[m.Name] = i
		if _, dup := t.byValue[m.Value]; !dup {
			t.byValue[m.Value] = i
		}
	}
	return t
}

// Len returns the number of members.
func (t *Table) Len() int { return len(t.Members) }

// ByValue looks up the first member with the given native value.
func (t *Table) ByValue(v int64) (Member, bool) {
	i, ok := t.byValue[v]
	if !ok {
		return Member{}, false
	}
	return t.Members[i], true
}

// ByName looks up a member by name.
func (t *Table) ByName(name string) (Member, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Member{}, false
	}
	return t.Members[i], true
}

// Values returns the native values sorted in ascending order.
func (t *Table) Values() []int64 {
	vs := make([]int64, 0, len(t.Members))
	for _, m := range t.Members {
		vs = append(vs, m.Value)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

func (t *Table) name(v int64) string {
	if m, ok := t.ByValue(v); ok {
		return m.Name
	}
	return fmt.Sprintf("%s(%d)", t.Name, v)
}

func (t *Table) doc(v int64) string {
	if m, ok := t.ByValue(v); ok {
		return m.Doc
	}
	return ""
}

// Tables returns every mirrored enumeration in declaration order.
func Tables() []*Table {
	return []*Table{
		OpcodeTable,
		TypeKindTable,
		LinkageTable,
		VisibilityTable,
		UnnamedAddrTable,
		DLLStorageClassTable,
		CallConvTable,
		ValueKindTable,
		IntPredicateTable,
		RealPredicateTable,
		LandingPadClauseTyTable,
		ThreadLocalModeTable,
		AtomicOrderingTable,
		AtomicRMWBinOpTable,
		DiagnosticSeverityTable,
		InlineAsmDialectTable,
		ModuleFlagBehaviorTable,
		AttributeIndexTable,
		TailCallKindTable,
		FastMathFlagsTable,
		VerifierFailureActionTable,
	}
}

// Lookup returns the table of the enumeration called name.
func Lookup(name string) (*Table, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
