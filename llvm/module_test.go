// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llvmbind/enum"
	"llvmbind/ownership"
)

func TestModuleCloseInvalidatesHandles(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()

	m := must(ctx.NewModule("m"))
	i32 := must(ctx.Int32())
	g := must(m.AddGlobal(i32, "glob"))
	fetched := must(m.GlobalVariables())
	require.Len(t, fetched, 1)
	view := must(g.Module())

	require.Nil(t, m.Close())
	assert.ErrorIs(t, m.Close(), ownership.ErrReleased)

	var uaf *UseAfterFreeError
	_, err := fetched[0].Name()
	assert.True(t, errors.As(err, &uaf))
	_, err = g.Initializer()
	assert.True(t, errors.As(err, &uaf))
	_, err = view.Functions()
	assert.True(t, errors.As(err, &uaf))
	assert.ErrorIs(t, view.Close(), ownership.ErrNotOwned)
}

func TestContextOutlivesModules(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	m := must(ctx.NewModule("m"))
	require.Nil(t, ctx.Close())
	assert.ErrorIs(t, ctx.Close(), ownership.ErrReleased)

	_, err := ctx.Int32()
	assert.NotNil(t, err)

	// The module still holds the native context.
	mctx := must(m.Context())
	i8 := must(mctx.Int8())
	_ = must(m.AddGlobal(i8, "byte"))
	assert.Contains(t, m.String(), "@byte")

	require.Nil(t, m.Close())
	_, err = mctx.Int8()
	assert.NotNil(t, err)
}

func TestGlobalContext(t *testing.T) {
	g1, g2 := GlobalContext(), GlobalContext()
	assert.True(t, g1.IsGlobal())
	assert.True(t, g1.Equal(g2))
	assert.Nil(t, g1.Close())

	m := must(NewModule("in-global", nil))
	defer m.Close()
	assert.True(t, must(m.Context()).Equal(g1))

	ctx := NewContext()
	defer ctx.Close()
	assert.False(t, ctx.Equal(g1))
	assert.False(t, ctx.IsGlobal())
}

func TestModuleProperties(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := must(ctx.NewModule("first"))
	defer m.Close()

	assert.Equal(t, "first", must(m.Identifier()))
	require.Nil(t, m.SetIdentifier("second"))
	assert.Equal(t, "second", must(m.Identifier()))

	require.Nil(t, m.SetTarget("x86_64-pc-linux-gnu"))
	assert.Equal(t, "x86_64-pc-linux-gnu", must(m.Target()))
	layout := "e-m:e-p270:32:32-p271:32:32-p272:64:64-i64:64-i128:128-f80:128-n8:16:32:64-S128"
	require.Nil(t, m.SetDataLayout(layout))
	assert.Equal(t, layout, must(m.DataLayout()))
	require.Nil(t, m.SetSourceFileName("a.c"))
	assert.Equal(t, "a.c", must(m.SourceFileName()))
	require.Nil(t, m.SetInlineAsm("nop"))
	require.Nil(t, m.AppendInlineAsm("nop"))
	assert.Contains(t, must(m.InlineAsm()), "nop")
}

func TestNavigationIsRederived(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	defer m.Close()

	a := must(m.NamedFunction("sum"))
	a2 := must(m.Functions())[0]
	assert.True(t, a.Equal(a2))
	assert.NotSame(t, a, a2)

	entry := must(a.EntryBlock())
	parent := must(entry.Parent())
	assert.True(t, parent.Equal(a))

	ret := must(entry.Terminator())
	assert.Equal(t, enum.OpcodeRet, must(ret.Opcode()))
	operand := must(ret.Operand(0))
	add := must(entry.FirstInstruction())
	assert.True(t, operand.Equal(add))

	_, err := ret.Operand(1)
	var idx *IndexError
	assert.True(t, errors.As(err, &idx))

	missing := must(m.NamedFunction("nope"))
	assert.Nil(t, missing)
}

func TestDeleteRevokesHandles(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	defer m.Close()

	fn := must(m.NamedFunction("sum"))
	stale := must(fn.EntryBlock())
	g := must(m.AddGlobal(must(ctx.Int32()), "dead"))
	require.Nil(t, g.Delete())

	var uaf *UseAfterFreeError
	_, err := stale.Name()
	assert.True(t, errors.As(err, &uaf))

	fresh := must(m.NamedFunction("sum"))
	assert.Equal(t, 1, must(fresh.BasicBlockCount()))
	assert.Nil(t, must(m.NamedGlobal("dead")))
}

func TestDetachedBlock(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	defer m.Close()

	orphan := must(ctx.CreateBasicBlock("orphan"))
	assert.True(t, orphan.IsDetached())
	assert.Nil(t, must(orphan.Parent()))
	require.Nil(t, orphan.Close())
	assert.ErrorIs(t, orphan.Close(), ownership.ErrReleased)

	extra := must(ctx.CreateBasicBlock("extra"))
	fn := must(m.NamedFunction("sum"))
	require.Nil(t, fn.AppendExistingBasicBlock(extra))
	assert.False(t, extra.IsDetached())
	assert.Equal(t, 2, must(fn.BasicBlockCount()))
	assert.ErrorIs(t, extra.Close(), ownership.ErrNotOwned)

	removed := must(extra.RemoveFromParent())
	assert.True(t, removed.IsDetached())
	fn = must(m.NamedFunction("sum"))
	assert.Equal(t, 1, must(fn.BasicBlockCount()))
	require.Nil(t, removed.Close())
}

func TestDetachedInstruction(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	defer m.Close()

	entry := must(must(m.NamedFunction("sum")).EntryBlock())
	add := must(entry.FirstInstruction())
	clone := must(add.Clone())
	assert.Nil(t, must(clone.Parent()))

	b := must(ctx.NewBuilder())
	defer b.Close()
	require.Nil(t, b.PositionBefore(must(entry.Terminator())))
	placed := must(b.Insert(clone, "again"))
	assert.Equal(t, "again", must(placed.Name()))
	assert.ErrorIs(t, clone.Close(), ownership.ErrReleased)
	assert.Len(t, must(entry.Instructions()), 3)

	spare := must(add.Clone())
	require.Nil(t, spare.Close())
	assert.ErrorIs(t, spare.Close(), ownership.ErrReleased)
}

func TestAddGlobalRejectsForeignTypes(t *testing.T) {
	leakCheck(t)
	a, b := NewContext(), NewContext()
	defer a.Close()
	defer b.Close()
	m := must(a.NewModule("m"))
	defer m.Close()

	_, err := m.AddGlobal(must(b.Int32()), "g")
	var ce *ConstructionError
	assert.True(t, errors.As(err, &ce))
	_, err = m.AddGlobal(must(a.Void()), "v")
	assert.True(t, errors.As(err, &ce))
	_, err = m.AddGlobal(nil, "n")
	assert.True(t, errors.As(err, &ce))
}

func TestGlobalVariableProperties(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := must(ctx.NewModule("m"))
	defer m.Close()

	i32 := must(ctx.Int32())
	g := must(m.AddGlobal(i32, "counter"))
	assert.True(t, must(g.IsDeclaration()))
	require.Nil(t, g.SetInitializer(must(ConstInt(i32, 7, false))))
	assert.False(t, must(g.IsDeclaration()))
	require.Nil(t, g.SetLinkage(enum.LinkageInternal))
	assert.Equal(t, enum.LinkageInternal, must(g.Linkage()))
	require.Nil(t, g.SetAlignment(8))
	assert.Equal(t, 8, must(g.Alignment()))
	assert.NotNil(t, g.SetAlignment(3))
	assert.NotNil(t, g.SetLinkage(enum.Linkage(99)))

	_, err := ConstInt(must(ctx.Int64()), 1, false)
	require.Nil(t, err)
	assert.NotNil(t, g.SetInitializer(must(ConstInt(must(ctx.Int64()), 1, false))))

	init := must(g.Initializer())
	c, ok := init.(*ConstantInt)
	require.True(t, ok)
	assert.Equal(t, uint64(7), must(c.ZExtValue()))
}

func TestUsersAndElementsBorrowFromModule(t *testing.T) {
	leakCheck(t)
	gctx := GlobalContext()
	m := must(NewModule("users", nil))
	i32 := must(gctx.Int32())
	g := must(m.AddGlobal(i32, "counter"))
	ft := must(gctx.FunctionTypeOf(i32, []Type{i32}, false))
	fn := must(m.AddFunction("inc", ft))
	entry := must(fn.AppendBasicBlock("entry"))

	// constants of the global context carry no owner of their own
	one := must(ConstInt(i32, 1, false))
	b := must(gctx.NewBuilder())
	defer b.Close()
	require.Nil(t, b.PositionAtEnd(entry))
	next := must(b.Add(must(fn.Param(0)), one, "next"))
	_ = must(b.Ret(next))

	var user Value
	for _, u := range must(one.Users()) {
		if u.Equal(next) {
			user = u
		}
	}
	require.NotNil(t, user)
	assert.Equal(t, "next", must(user.Name()))

	agg := must(gctx.ConstStruct([]Value{g, one}, false))
	elem := must(agg.Element(0))
	assert.True(t, elem.Equal(g))
	arr := must(ConstArray(must(g.Type()), []Value{g}))
	plain := must(gctx.ConstStruct([]Value{one, one}, false))

	require.Nil(t, m.Close())

	var uaf *UseAfterFreeError
	_, err := user.Name()
	assert.True(t, errors.As(err, &uaf), "user")
	_, err = elem.Name()
	assert.True(t, errors.As(err, &uaf), "element")
	_, err = agg.Element(1)
	assert.True(t, errors.As(err, &uaf), "struct")
	_, err = arr.Type()
	assert.True(t, errors.As(err, &uaf), "array")

	// nothing of the module is reachable from these
	assert.Equal(t, uint64(1), must(must(plain.Element(1)).(*ConstantInt).ZExtValue()))
	_, err = one.Users()
	assert.Nil(t, err)
}

func TestDetachedBlockCloseOrder(t *testing.T) {
	testCases := []struct {
		name  string
		order []string
	}{
		{"module first", []string{"module", "block", "context"}},
		{"context first", []string{"context", "block", "module"}},
		{"block last", []string{"context", "module", "block"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			leakCheck(t)
			ctx := NewContext()
			m := sumModule(t, ctx)
			params := must(must(m.NamedFunction("sum")).Params())

			spare := must(ctx.CreateBasicBlock("spare"))
			b := must(ctx.NewBuilder())
			require.Nil(t, b.PositionAtEnd(spare))
			twice := must(b.Add(params[0], params[1], "twice"))
			require.Nil(t, b.Close())

			moduleClosed := false
			var uaf *UseAfterFreeError
			for _, step := range tc.order {
				switch step {
				case "module":
					require.Nil(t, m.Close())
					moduleClosed = true
					_, err := spare.Name()
					assert.True(t, errors.As(err, &uaf), "block after module close")
					_, err = twice.Name()
					assert.True(t, errors.As(err, &uaf), "instruction after module close")
				case "context":
					require.Nil(t, ctx.Close())
					if !moduleClosed {
						// the block keeps the native context alive
						assert.Equal(t, "spare", must(spare.Name()))
						assert.Equal(t, "twice", must(twice.Name()))
					}
				case "block":
					require.Nil(t, spare.Close())
					assert.ErrorIs(t, spare.Close(), ownership.ErrReleased)
				}
			}
		})
	}
}

func TestDetachedBlockWithoutModuleValues(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	m := sumModule(t, ctx)

	spare := must(ctx.CreateBasicBlock("spare"))
	b := must(ctx.NewBuilder())
	require.Nil(t, b.PositionAtEnd(spare))
	_ = must(b.Ret(must(ConstInt(must(ctx.Int32()), 0, false))))
	require.Nil(t, b.Close())

	require.Nil(t, m.Close())
	assert.Equal(t, "spare", must(spare.Name()))
	require.Nil(t, ctx.Close())
	assert.Len(t, must(spare.Instructions()), 1)
	require.Nil(t, spare.Close())
}
