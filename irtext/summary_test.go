// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package irtext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countIR = `
@limit = global i32 10
@zero = constant i32 0

declare i32 @printf(i32, ...)

define i32 @count(i32 %n) {
entry:
  br label %loop

loop:
  %i = phi i32 [ 0, %entry ], [ %next, %loop ]
  %next = add i32 %i, 1
  %done = icmp sge i32 %next, %n
  br i1 %done, label %exit, label %loop

exit:
  ret i32 %next
}

define void @spin() {
  br label %1

1:
  unreachable
}
`

func TestParse(t *testing.T) {
	s, err := Parse("count.ll", countIR)
	require.Nil(t, err)

	assert.Equal(t, "count.ll", s.Source)
	assert.Equal(t, []string{"limit", "zero"}, s.Globals)
	require.Len(t, s.Functions, 3)
	assert.Equal(t, 2, s.Definitions())

	printf := s.Function("printf")
	require.NotNil(t, printf)
	assert.True(t, printf.IsDeclaration())
	assert.True(t, printf.Variadic)
	assert.Equal(t, 1, printf.Params)

	count := s.Function("count")
	require.NotNil(t, count)
	assert.Equal(t, []Block{
		{Name: "entry", Instructions: 1, Terminator: "br"},
		{Name: "loop", Instructions: 4, Terminator: "br"},
		{Name: "exit", Instructions: 1, Terminator: "ret"},
	}, count.Blocks)
	assert.Equal(t, 6, count.Instructions())

	spin := s.Function("spin")
	require.NotNil(t, spin)
	require.Len(t, spin.Blocks, 2)
	assert.Equal(t, "", spin.Blocks[0].Name)
	assert.Equal(t, "unreachable", spin.Blocks[1].Terminator)

	assert.Nil(t, s.Function("missing"))
}

func TestParseError(t *testing.T) {
	_, err := Parse("broken.ll", "define i32 @f( {")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "irtext")
}

func TestParseOpaquePointers(t *testing.T) {
	testCases := []struct {
		name        string
		text        string
		unsupported bool
	}{
		{"global load", "@g = global i32 1\n\ndefine i32 @f() {\n  %v = load i32, ptr @g\n  ret i32 %v\n}\n", true},
		{"pointer param", "define void @f(ptr %p) {\n  ret void\n}\n", true},
		{"pointer declaration", "declare i32 @printf(ptr, ...)\n", true},
		{"named ptr", "define i32 @f(i32 %ptr) {\n  ret i32 %ptr(\n}\n", false},
		{"broken", "define i32 @f( {", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.name+".ll", tc.text)
			require.NotNil(t, err)
			assert.Equal(t, tc.unsupported, errors.Is(err, ErrUnsupported), err.Error())
		})
	}

	fn := filepath.Join(t.TempDir(), "ptr.ll")
	require.Nil(t, os.WriteFile(fn, []byte(testCases[0].text), 0600))
	_, err := ParseFile(fn)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestParseFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "count.ll")
	require.Nil(t, os.WriteFile(fn, []byte(countIR), 0600))

	s, err := ParseFile(fn)
	require.Nil(t, err)
	assert.Equal(t, fn, s.Source)
	assert.Len(t, s.Functions, 3)

	_, err = ParseFile(filepath.Join(t.TempDir(), "none.ll"))
	assert.NotNil(t, err)
}

func TestDiff(t *testing.T) {
	left, err := Parse("a.ll", countIR)
	require.Nil(t, err)
	right, err := Parse("b.ll", countIR)
	require.Nil(t, err)
	assert.Empty(t, Diff(left, right))

	right.Globals = right.Globals[:1]
	right.Functions[0].Blocks[1].Instructions = 3
	right.Functions[0].Blocks[2].Terminator = "unreachable"
	right.Functions = append(right.Functions, Function{Name: "extra"})

	diff := Diff(left, right)
	var where []string
	for _, d := range diff {
		where = append(where, d.Where)
	}
	assert.Equal(t, []string{
		"globals",
		"@count block 1 instructions",
		"@count block 2 terminator",
		"@extra",
	}, where)
	assert.Equal(t, `@count block 2 terminator: "ret" != "unreachable"`, diff[2].String())
	assert.Equal(t, "missing", diff[3].Left)

	left.Functions[0].Blocks = nil
	diff = Diff(left, right)
	assert.Contains(t, diff, Difference{Where: "@count blocks", Left: "0", Right: "3"})
}
