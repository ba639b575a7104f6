// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llvmbind/enum"
)

func TestTypeIdentity(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()

	a, b := must(ctx.Int32()), must(ctx.Int(32))
	assert.True(t, a.Equal(b))
	assert.NotSame(t, a, b)
	assert.Equal(t, 32, must(a.Width()))
	assert.Equal(t, "i32", a.String())

	i8 := must(ctx.Int8())
	assert.False(t, a.Equal(i8))

	f1 := must(ctx.FunctionTypeOf(a, []Type{i8, a}, false))
	f2 := must(ctx.FunctionTypeOf(b, []Type{must(ctx.Int(8)), b}, false))
	assert.True(t, f1.Equal(f2))
	assert.Equal(t, 2, must(f1.ParamCount()))
	assert.True(t, must(f1.Return()).Equal(a))

	other := NewContext()
	defer other.Close()
	assert.False(t, must(other.Int32()).Equal(a))
}

func TestTypeConstructionErrors(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	other := NewContext()
	defer other.Close()

	void := must(ctx.Void())
	label := must(ctx.Label())
	i32 := must(ctx.Int32())
	ft := must(ctx.FunctionTypeOf(void, nil, false))

	testCases := []struct {
		name string
		do   func() error
	}{
		{"zero width", func() error { _, err := ctx.Int(0); return err }},
		{"huge width", func() error { _, err := ctx.Int(enum.MaxIntWidth + 1); return err }},
		{"array of void", func() error { _, err := ctx.ArrayOf(void, 4); return err }},
		{"array of function", func() error { _, err := ctx.ArrayOf(ft, 4); return err }},
		{"vector of struct", func() error {
			_, err := ctx.VectorOf(must(ctx.StructType([]Type{i32}, false)), 4)
			return err
		}},
		{"empty vector", func() error { _, err := ctx.VectorOf(i32, 0); return err }},
		{"pointer to label", func() error { _, err := ctx.PointerTo(label, 0); return err }},
		{"negative address space", func() error { _, err := ctx.PointerType(-1); return err }},
		{"label return", func() error { _, err := ctx.FunctionTypeOf(label, nil, false); return err }},
		{"void param", func() error { _, err := ctx.FunctionTypeOf(i32, []Type{void}, false); return err }},
		{"nil field", func() error { _, err := ctx.StructType([]Type{i32, nil}, false); return err }},
		{"foreign element", func() error { _, err := ctx.ArrayOf(must(other.Int8()), 2); return err }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ce *ConstructionError
			assert.True(t, errors.As(tc.do(), &ce))
		})
	}
}

func TestStructTypes(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	i32, i8 := must(ctx.Int32()), must(ctx.Int8())

	lit := must(ctx.StructType([]Type{i32, i8}, true))
	assert.True(t, must(lit.IsLiteral()))
	assert.True(t, must(lit.IsPacked()))
	assert.Equal(t, 2, must(lit.FieldCount()))
	assert.True(t, must(lit.Field(1)).Equal(i8))
	_, err := lit.Field(2)
	var idx *IndexError
	require.True(t, errors.As(err, &idx))
	assert.Equal(t, 2, idx.Len)

	named := must(ctx.NamedStruct("pair"))
	assert.True(t, must(named.IsOpaque()))
	assert.Equal(t, "pair", must(named.Name()))
	require.Nil(t, named.SetBody([]Type{i32, i32}, false))
	assert.False(t, must(named.IsOpaque()))
	assert.NotNil(t, named.SetBody([]Type{i32}, false))

	found := must(ctx.TypeByName("pair"))
	assert.True(t, found.Equal(named))
	assert.Nil(t, must(ctx.TypeByName("missing")))
}

func TestCompositeQueries(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	f := must(ctx.Float())

	arr := must(ctx.ArrayOf(f, 10))
	assert.Equal(t, uint64(10), must(arr.Len()))
	assert.True(t, must(arr.Element()).Equal(f))
	assert.Equal(t, enum.TypeKindArray, must(arr.Kind()))

	vec := must(ctx.ScalableVectorOf(f, 4))
	assert.True(t, must(vec.IsScalable()))
	assert.Equal(t, 4, must(vec.Len()))

	p := must(ctx.PointerType(3))
	assert.Equal(t, 3, must(p.AddressSpace()))
	assert.True(t, must(ctx.PointerTo(f, 3)).Equal(p))

	ft := must(ctx.FunctionTypeOf(must(ctx.Void()), []Type{p}, true))
	assert.True(t, must(ft.IsVariadic()))
	_, err := ft.Param(1)
	var idx *IndexError
	assert.True(t, errors.As(err, &idx))
	assert.False(t, must(must(ctx.Void()).IsSized()))
}

func TestConstantIdentity(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	i32 := must(ctx.Int32())

	a := must(ConstInt(i32, 42, false))
	b := must(ConstInt(must(ctx.Int(32)), 42, false))
	assert.True(t, a.Equal(b))
	assert.NotSame(t, a, b)
	assert.False(t, a.Equal(must(ConstInt(i32, 43, false))))

	neg := must(ConstInt(i32, ^uint64(0), true))
	assert.Equal(t, int64(-1), must(neg.SExtValue()))
	assert.Equal(t, uint64(0xffffffff), must(neg.ZExtValue()))

	hex := must(ConstIntOfString(i32, "2a", 16))
	assert.True(t, hex.Equal(a))
	_, err := ConstIntOfString(i32, "2a", 10)
	var ce *ConstructionError
	assert.True(t, errors.As(err, &ce))
	_, err = ConstIntOfString(i32, "1", 7)
	assert.True(t, errors.As(err, &ce))

	d := must(ConstReal(must(ctx.Double()), 1.5))
	v, lost, err := d.Float64()
	require.Nil(t, err)
	assert.Equal(t, 1.5, v)
	assert.False(t, lost)
}

func TestAggregateConstants(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	i8, i32 := must(ctx.Int8()), must(ctx.Int32())

	s := must(ctx.ConstString("hi", true))
	assert.True(t, must(s.IsString()))
	assert.Equal(t, "hi\x00", must(s.AsString()))

	one, two := must(ConstInt(i32, 1, false)), must(ConstInt(i32, 2, false))
	st := must(ctx.ConstStruct([]Value{one, must(ConstInt(i8, 3, false))}, false))
	assert.True(t, must(st.Element(0)).Equal(one))
	_, err := st.Element(2)
	var idx *IndexError
	assert.True(t, errors.As(err, &idx))

	arr := must(ConstArray(i32, []Value{one, two}))
	assert.Equal(t, enum.ValueKindConstantDataArray, must(arr.Kind()))
	_, err = ConstArray(i8, []Value{one})
	var ce *ConstructionError
	assert.True(t, errors.As(err, &ce))

	zero := must(ConstNull(must(ctx.ArrayOf(i32, 3))))
	assert.True(t, must(zero.(*ConstantAggregateZero).IsNull()))
	undef := must(Undef(i32))
	assert.True(t, must(undef.(*UndefValue).IsUndef()))
	poison := must(Poison(i32))
	assert.True(t, must(poison.(*PoisonValue).IsPoison()))
	_, err = ConstNull(must(ctx.Void()))
	assert.True(t, errors.As(err, &ce))
}
