// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"llvmbind/ownership"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// leakCheck records the live owner counts and, at cleanup, requires that the
// test released everything it created.
func leakCheck(t *testing.T) {
	t.Helper()
	before := ownership.Default.Snapshot()
	t.Cleanup(func() {
		require.Equal(t, before, ownership.Default.Snapshot(), "owners leaked")
	})
}

// sumModule builds "define i32 @sum(i32 %a, i32 %b)" returning a+b.
func sumModule(t *testing.T, ctx *Context) *Module {
	t.Helper()
	m := must(ctx.NewModule("sum"))
	i32 := must(ctx.Int32())
	ft := must(ctx.FunctionTypeOf(i32, []Type{i32, i32}, false))
	fn := must(m.AddFunction("sum", ft))
	entry := must(fn.AppendBasicBlock("entry"))

	b := must(ctx.NewBuilder())
	defer b.Close()
	require.Nil(t, b.PositionAtEnd(entry))
	params := must(fn.Params())
	s := must(b.Add(params[0], params[1], "s"))
	_ = must(b.Ret(s))
	return m
}
