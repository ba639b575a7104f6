// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package inspect

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llvmbind/irtext"
	"llvmbind/llvm"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// buildModule creates a module with one global, one variadic declaration and
// "sum", whose second block is unnamed.
func buildModule(t *testing.T) *llvm.Module {
	t.Helper()
	ctx := llvm.NewContext()
	m := must(ctx.NewModule("shapes"))
	t.Cleanup(func() {
		m.Close()
		ctx.Close()
	})

	i32 := must(ctx.Int32())
	g := must(m.AddGlobal(i32, "counter"))
	require.Nil(t, g.SetInitializer(must(llvm.ConstInt(i32, 7, false))))

	ext := must(ctx.FunctionTypeOf(i32, []llvm.Type{i32}, true))
	_ = must(m.AddFunction("ext", ext))

	ft := must(ctx.FunctionTypeOf(i32, []llvm.Type{i32, i32}, false))
	fn := must(m.AddFunction("sum", ft))
	entry := must(fn.AppendBasicBlock("entry"))
	done := must(fn.AppendBasicBlock(""))

	b := must(ctx.NewBuilder())
	defer b.Close()
	params := must(fn.Params())
	require.Nil(t, b.PositionAtEnd(entry))
	s := must(b.Add(params[0], params[1], "s"))
	_ = must(b.Br(done))
	require.Nil(t, b.PositionAtEnd(done))
	_ = must(b.Ret(s))
	return m
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(buildModule(t))
	require.Nil(t, err)

	assert.Equal(t, "shapes", s.Source)
	assert.Equal(t, []string{"counter"}, s.Globals)
	assert.Equal(t, []irtext.Function{
		{Name: "ext", Params: 1, Variadic: true},
		{Name: "sum", Params: 2, Blocks: []irtext.Block{
			{Name: "entry", Instructions: 2, Terminator: "br"},
			{Instructions: 1, Terminator: "ret"},
		}},
	}, s.Functions)
}

func TestCrossCheck(t *testing.T) {
	m := buildModule(t)
	diff, err := CrossCheck(m)
	require.Nil(t, err)
	assert.Empty(t, diff)

	require.Nil(t, m.Close())
	_, err = CrossCheck(m)
	var uaf *llvm.UseAfterFreeError
	assert.True(t, errors.As(err, &uaf))
}

const pointerIR = `
@counter = global i32 0

define i32 @next() {
entry:
  %v = load i32, ptr @counter
  %n = add i32 %v, 1
  store i32 %n, ptr @counter
  ret i32 %n
}
`

func TestCrossCheckOpaquePointers(t *testing.T) {
	ctx := llvm.NewContext()
	defer ctx.Close()
	m, err := llvm.ParseAssembly(pointerIR, ctx)
	require.Nil(t, err)
	defer m.Close()

	s, err := Summarize(m)
	require.Nil(t, err)
	next := s.Function("next")
	require.NotNil(t, next)
	assert.Equal(t, 4, next.Instructions())

	diff, err := CrossCheck(m)
	assert.Empty(t, diff)
	require.NotNil(t, err)
	assert.True(t, Skipped(err))
	assert.True(t, errors.Is(err, irtext.ErrUnsupported))

	var buf bytes.Buffer
	p := Printer{Out: &buf}
	require.Nil(t, p.Skipped("next.ll", err))
	assert.Contains(t, buf.String(), "skip next.ll: cross-check: irtext: syntax not supported by llir")

	assert.False(t, Skipped(nil))
	assert.False(t, Skipped(errors.New("cross-check: broken")))
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "YAML", "json"} {
		_, err := ParseFormat(in)
		assert.Nil(t, err, in)
	}
	_, err := ParseFormat("xml")
	assert.NotNil(t, err)
}

func TestPrinterFormats(t *testing.T) {
	s, err := Summarize(buildModule(t))
	require.Nil(t, err)

	testCases := []struct {
		format Format
		want   []string
	}{
		{Text, []string{"== shapes ==", "@counter", "declare @ext(1, ...)", "define  @sum(2) blocks=2 instructions=3", "#1"}},
		{YAML, []string{"source: shapes", "- counter", "name: sum", "terminator: ret"}},
		{JSON, []string{`"source": "shapes"`, `"variadic": true`, `"instructions": 2`}},
	}
	for _, tc := range testCases {
		t.Run(string(tc.format), func(t *testing.T) {
			var buf bytes.Buffer
			p := Printer{Out: &buf, Format: tc.format}
			require.Nil(t, p.Summary(s))
			for _, w := range tc.want {
				assert.Contains(t, buf.String(), w)
			}
			assert.NotContains(t, buf.String(), "\x1b[")
		})
	}
}

func TestPrinterColor(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{Out: &buf, Color: true}
	require.Nil(t, p.Result("a.ll", nil))
	assert.Contains(t, buf.String(), "\x1b[32m")

	buf.Reset()
	p.Color = false
	require.Nil(t, p.Result("b.ll", errors.New("broken")))
	assert.Equal(t, "FAIL b.ll: broken\n", buf.String())

	buf.Reset()
	agree, err := p.Differences("c.ll", []irtext.Difference{{Where: "globals", Left: "[a]", Right: "[]"}})
	require.Nil(t, err)
	assert.False(t, agree)
	assert.Equal(t, "FAIL c.ll: 1 differences\n  globals: [a] != []\n", buf.String())
}
