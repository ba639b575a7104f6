// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package irtext

import (
	"fmt"
	"strings"
)

// Difference is one mismatch between two summaries.
type Difference struct {
	Where string
	Left  string
	Right string
}

func (d Difference) String() string {
	return fmt.Sprintf("%s: %s != %s", d.Where, d.Left, d.Right)
}

// Diff compares two summaries and returns every mismatch, in a stable order.
// Sources are not compared.
func Diff(left, right *Summary) []Difference {
	var diff []Difference
	add := func(where string, l, r any) {
		diff = append(diff, Difference{Where: where, Left: fmt.Sprint(l), Right: fmt.Sprint(r)})
	}

	if strings.Join(left.Globals, ",") != strings.Join(right.Globals, ",") {
		add("globals", left.Globals, right.Globals)
	}

	seen := make(map[string]bool)
	for i := range left.Functions {
		lf := &left.Functions[i]
		seen[lf.Name] = true
		rf := right.Function(lf.Name)
		if rf == nil {
			add("@"+lf.Name, "present", "missing")
			continue
		}
		diff = append(diff, diffFunction(lf, rf)...)
	}
	for i := range right.Functions {
		if name := right.Functions[i].Name; !seen[name] {
			add("@"+name, "missing", "present")
		}
	}
	return diff
}

func diffFunction(l, r *Function) []Difference {
	var diff []Difference
	add := func(where string, lv, rv any) {
		diff = append(diff, Difference{
			Where: "@" + l.Name + where,
			Left:  fmt.Sprint(lv),
			Right: fmt.Sprint(rv),
		})
	}
	if l.Params != r.Params {
		add(" params", l.Params, r.Params)
	}
	if l.Variadic != r.Variadic {
		add(" variadic", l.Variadic, r.Variadic)
	}
	if len(l.Blocks) != len(r.Blocks) {
		add(" blocks", len(l.Blocks), len(r.Blocks))
		return diff
	}
	for i := range l.Blocks {
		lb, rb := l.Blocks[i], r.Blocks[i]
		where := fmt.Sprintf(" block %d", i)
		if lb.Name != rb.Name {
			add(where+" name", quote(lb.Name), quote(rb.Name))
		}
		if lb.Instructions != rb.Instructions {
			add(where+" instructions", lb.Instructions, rb.Instructions)
		}
		if lb.Terminator != rb.Terminator {
			add(where+" terminator", quote(lb.Terminator), quote(rb.Terminator))
		}
	}
	return diff
}

func quote(s string) string { return fmt.Sprintf("%q", s) }
