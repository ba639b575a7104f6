// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llvmbind/enum"
	"llvmbind/ownership"
)

const brokenIR = `
@glob = global i32 0

define i32 @sum(i32 %a, i32 %b) {
entry:
  %t1 = add i32 %a, %b
  %t2 = add i32 %t1, %glob.v
  ret i32 %t2
}

declare i32 @a_readonly_func(ptr nocapture readonly)
`

func TestParseExample(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()

	text := `
@glob = global i32 0

define i32 @sum(i32 %a, i32 %b) {
entry:
  %t1 = add i32 %a, %b
  %t2 = add i32 %t1, %b
  ret i32 %t2
}

declare i32 @a_readonly_func(ptr nocapture readonly)
`
	m := must(ParseAssembly(text, ctx))
	defer m.Close()

	var names []string
	for _, fn := range must(m.Functions()) {
		names = append(names, must(fn.Name()))
	}
	assert.Equal(t, []string{"sum", "a_readonly_func"}, names)

	globals := must(m.GlobalVariables())
	require.Len(t, globals, 1)
	assert.Equal(t, "glob", must(globals[0].Name()))

	sum := must(m.NamedFunction("sum"))
	assert.Equal(t, 2, must(sum.ParamCount()))
	blocks := must(sum.BasicBlocks())
	require.Len(t, blocks, 1)
	insts := must(blocks[0].Instructions())
	require.Len(t, insts, 3)
	for i, inst := range insts {
		assert.Equal(t, i == 2, must(inst.IsTerminator()))
	}
	assert.Equal(t, enum.OpcodeAdd, must(insts[0].Opcode()))

	decl := must(m.NamedFunction("a_readonly_func"))
	assert.True(t, must(decl.IsDeclaration()))
	assert.Equal(t, 0, must(decl.BasicBlockCount()))
}

func TestParseErrorConsumesBuffer(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()

	// brokenIR refers to an undefined value.
	buf := NewMemoryBufferFromString("broken.ll", brokenIR)
	_, err := ParseIR(ctx, buf)
	var pe *IRParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "broken.ll", pe.Source)
	assert.Contains(t, pe.Message, "glob.v")

	assert.False(t, buf.Alive())
	assert.ErrorIs(t, buf.Close(), ownership.ErrReleased)
	var uaf *UseAfterFreeError
	_, err = buf.Bytes()
	require.True(t, errors.As(err, &uaf))
	assert.True(t, uaf.Transferred)

	// A consumed buffer cannot be parsed again.
	_, err = ParseIR(ctx, buf)
	assert.True(t, errors.As(err, &uaf))
}

func TestParseIRFile(t *testing.T) {
	leakCheck(t)
	path := filepath.Join(t.TempDir(), "one.ll")
	require.Nil(t, os.WriteFile(path, []byte("define void @one() {\n  ret void\n}\n"), 0o644))

	ctx := NewContext()
	defer ctx.Close()
	m := must(ParseIRFile(path, ctx))
	defer m.Close()
	assert.NotNil(t, must(m.NamedFunction("one")))

	_, err := ParseIRFile(filepath.Join(t.TempDir(), "missing.ll"), ctx)
	assert.NotNil(t, err)
}

type shape struct {
	name   string
	params int
	blocks int
}

func shapes(t *testing.T, m *Module) []shape {
	t.Helper()
	var out []shape
	for _, fn := range must(m.Functions()) {
		out = append(out, shape{must(fn.Name()), must(fn.ParamCount()), must(fn.BasicBlockCount())})
	}
	return out
}

func TestTextRoundTrip(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	defer m.Close()
	_ = must(m.AddFunction("ext", must(ctx.FunctionTypeOf(must(ctx.Void()), nil, true))))

	other := NewContext()
	defer other.Close()
	back := must(ParseAssembly(m.String(), other))
	defer back.Close()

	assert.Equal(t, shapes(t, m), shapes(t, back))
	require.Nil(t, back.Verify(enum.ReturnStatus))
}

func TestPrintToFile(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	defer m.Close()

	path := filepath.Join(t.TempDir(), "sum.ll")
	require.Nil(t, m.PrintToFile(path))
	back := must(ParseIRFile(path, ctx))
	defer back.Close()
	assert.Equal(t, shapes(t, m), shapes(t, back))
}

func TestBitcodeRoundTrip(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	defer m.Close()

	buf := must(m.WriteBitcode())
	defer buf.Close()
	assert.Greater(t, must(buf.Len()), 0)

	back := must(ParseBitcode(ctx, buf))
	defer back.Close()
	assert.Equal(t, shapes(t, m), shapes(t, back))
	assert.True(t, buf.Alive())

	path := filepath.Join(t.TempDir(), "sum.bc")
	require.Nil(t, m.WriteBitcodeToFile(path))
	file := must(NewMemoryBufferFromFile(path))
	defer file.Close()
	again := must(ctx.ParseBitcode(file))
	defer again.Close()
	assert.Equal(t, shapes(t, m), shapes(t, again))
}

func TestMalformedBitcode(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()

	buf := NewMemoryBufferFromString("junk.bc", "definitely not bitcode")
	defer buf.Close()
	_, err := ParseBitcode(ctx, buf)
	var pe *IRParseError
	require.True(t, errors.As(err, &pe))
	assert.NotEmpty(t, pe.Message)
	assert.True(t, buf.Alive())

	// The context is usable afterwards and its own handler is back.
	m := must(ctx.NewModule("after"))
	require.Nil(t, m.Close())
}

func TestLink(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	dst := must(ParseAssembly("declare i32 @sum(i32, i32)\n", ctx))
	defer dst.Close()
	src := sumModule(t, ctx)

	require.Nil(t, dst.Link(src))
	assert.False(t, must(must(dst.NamedFunction("sum")).IsDeclaration()))
	assert.ErrorIs(t, src.Close(), ownership.ErrReleased)

	clash := sumModule(t, ctx)
	err := dst.Link(clash)
	var le *LinkError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, le.Message, "sum")
	assert.ErrorIs(t, clash.Close(), ownership.ErrReleased)

	foreign := NewContext()
	defer foreign.Close()
	far := must(foreign.NewModule("far"))
	defer far.Close()
	var ce *ConstructionError
	assert.True(t, errors.As(dst.Link(far), &ce))
}

func TestClone(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	c := must(m.Clone())
	require.Nil(t, m.Close())
	defer c.Close()

	assert.True(t, c.IsOwned())
	assert.NotNil(t, must(c.NamedFunction("sum")))
	require.Nil(t, c.Verify(enum.ReturnStatus))
}

func TestNativeEnumsMatchMirror(t *testing.T) {
	native := NativeEnumValues()
	require.Len(t, native, len(enum.Tables()))
	for _, table := range enum.Tables() {
		t.Run(table.Name, func(t *testing.T) {
			values, ok := native[table.Name]
			require.True(t, ok)
			assert.Len(t, values, table.Len())
			for _, m := range table.Members {
				assert.Equal(t, values[m.Name], m.Value, m.Name)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	major, _, _ := Version()
	assert.GreaterOrEqual(t, major, 18)
	assert.Regexp(t, `^\d+\.\d+\.\d+$`, VersionString())
}
