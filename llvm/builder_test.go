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

type emitter struct {
	name string
	emit func(b *Builder) (Value, error)
}

func allEmitters() []emitter {
	bin := func(name string, f func(b *Builder) func(l, r Value, n string) (Value, error)) emitter {
		return emitter{name, func(b *Builder) (Value, error) { return f(b)(nil, nil, "") }}
	}
	un := func(name string, f func(b *Builder) func(v Value, n string) (Value, error)) emitter {
		return emitter{name, func(b *Builder) (Value, error) { return f(b)(nil, "") }}
	}
	cast := func(name string, f func(b *Builder) func(v Value, t Type, n string) (Value, error)) emitter {
		return emitter{name, func(b *Builder) (Value, error) { return f(b)(nil, nil, "") }}
	}
	return []emitter{
		{"RetVoid", func(b *Builder) (Value, error) { return b.RetVoid() }},
		{"Ret", func(b *Builder) (Value, error) { return b.Ret(nil) }},
		{"AggregateRet", func(b *Builder) (Value, error) { return b.AggregateRet(nil) }},
		{"Br", func(b *Builder) (Value, error) { return b.Br(nil) }},
		{"CondBr", func(b *Builder) (Value, error) { return b.CondBr(nil, nil, nil) }},
		{"Switch", func(b *Builder) (Value, error) { return b.Switch(nil, nil, 0) }},
		{"IndirectBr", func(b *Builder) (Value, error) { return b.IndirectBr(nil, 0) }},
		{"Invoke", func(b *Builder) (Value, error) { return b.Invoke(nil, nil, nil, nil, nil, "") }},
		{"Unreachable", func(b *Builder) (Value, error) { return b.Unreachable() }},
		{"Resume", func(b *Builder) (Value, error) { return b.Resume(nil) }},
		{"LandingPad", func(b *Builder) (Value, error) { return b.LandingPad(nil, nil, 0, "") }},
		{"CleanupRet", func(b *Builder) (Value, error) { return b.CleanupRet(nil, nil) }},
		{"CatchRet", func(b *Builder) (Value, error) { return b.CatchRet(nil, nil) }},
		{"CatchPad", func(b *Builder) (Value, error) { return b.CatchPad(nil, nil, "") }},
		{"CleanupPad", func(b *Builder) (Value, error) { return b.CleanupPad(nil, nil, "") }},
		{"CatchSwitch", func(b *Builder) (Value, error) { return b.CatchSwitch(nil, nil, 0, "") }},
		bin("Add", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.Add }),
		bin("NSWAdd", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.NSWAdd }),
		bin("NUWAdd", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.NUWAdd }),
		bin("FAdd", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.FAdd }),
		bin("Sub", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.Sub }),
		bin("NSWSub", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.NSWSub }),
		bin("NUWSub", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.NUWSub }),
		bin("FSub", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.FSub }),
		bin("Mul", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.Mul }),
		bin("NSWMul", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.NSWMul }),
		bin("NUWMul", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.NUWMul }),
		bin("FMul", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.FMul }),
		bin("UDiv", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.UDiv }),
		bin("ExactUDiv", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.ExactUDiv }),
		bin("SDiv", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.SDiv }),
		bin("ExactSDiv", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.ExactSDiv }),
		bin("FDiv", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.FDiv }),
		bin("URem", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.URem }),
		bin("SRem", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.SRem }),
		bin("FRem", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.FRem }),
		bin("Shl", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.Shl }),
		bin("LShr", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.LShr }),
		bin("AShr", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.AShr }),
		bin("And", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.And }),
		bin("Or", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.Or }),
		bin("Xor", func(b *Builder) func(l, r Value, n string) (Value, error) { return b.Xor }),
		{"BinOp", func(b *Builder) (Value, error) { return b.BinOp(enum.OpcodeAdd, nil, nil, "") }},
		un("Neg", func(b *Builder) func(v Value, n string) (Value, error) { return b.Neg }),
		un("NSWNeg", func(b *Builder) func(v Value, n string) (Value, error) { return b.NSWNeg }),
		un("NUWNeg", func(b *Builder) func(v Value, n string) (Value, error) { return b.NUWNeg }),
		un("FNeg", func(b *Builder) func(v Value, n string) (Value, error) { return b.FNeg }),
		un("Not", func(b *Builder) func(v Value, n string) (Value, error) { return b.Not }),
		un("Freeze", func(b *Builder) func(v Value, n string) (Value, error) { return b.Freeze }),
		un("IsNull", func(b *Builder) func(v Value, n string) (Value, error) { return b.IsNull }),
		un("IsNotNull", func(b *Builder) func(v Value, n string) (Value, error) { return b.IsNotNull }),
		{"Malloc", func(b *Builder) (Value, error) { return b.Malloc(nil, "") }},
		{"ArrayMalloc", func(b *Builder) (Value, error) { return b.ArrayMalloc(nil, nil, "") }},
		{"Free", func(b *Builder) (Value, error) { return b.Free(nil) }},
		{"MemSet", func(b *Builder) (Value, error) { return b.MemSet(nil, nil, nil, 1) }},
		{"MemCpy", func(b *Builder) (Value, error) { return b.MemCpy(nil, 1, nil, 1, nil) }},
		{"MemMove", func(b *Builder) (Value, error) { return b.MemMove(nil, 1, nil, 1, nil) }},
		{"Alloca", func(b *Builder) (Value, error) { return b.Alloca(nil, "") }},
		{"ArrayAlloca", func(b *Builder) (Value, error) { return b.ArrayAlloca(nil, nil, "") }},
		{"Load", func(b *Builder) (Value, error) { return b.Load(nil, nil, "") }},
		{"Store", func(b *Builder) (Value, error) { return b.Store(nil, nil) }},
		{"GEP", func(b *Builder) (Value, error) { return b.GEP(nil, nil, nil, "") }},
		{"InBoundsGEP", func(b *Builder) (Value, error) { return b.InBoundsGEP(nil, nil, nil, "") }},
		{"StructGEP", func(b *Builder) (Value, error) { return b.StructGEP(nil, nil, 0, "") }},
		{"GlobalString", func(b *Builder) (Value, error) { return b.GlobalString("s", "") }},
		{"GlobalStringPtr", func(b *Builder) (Value, error) { return b.GlobalStringPtr("s", "") }},
		cast("Trunc", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.Trunc }),
		cast("ZExt", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.ZExt }),
		cast("SExt", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.SExt }),
		cast("FPToUI", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.FPToUI }),
		cast("FPToSI", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.FPToSI }),
		cast("UIToFP", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.UIToFP }),
		cast("SIToFP", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.SIToFP }),
		cast("FPTrunc", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.FPTrunc }),
		cast("FPExt", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.FPExt }),
		cast("PtrToInt", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.PtrToInt }),
		cast("IntToPtr", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.IntToPtr }),
		cast("BitCast", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.BitCast }),
		cast("AddrSpaceCast", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.AddrSpaceCast }),
		cast("ZExtOrBitCast", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.ZExtOrBitCast }),
		cast("SExtOrBitCast", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.SExtOrBitCast }),
		cast("TruncOrBitCast", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.TruncOrBitCast }),
		cast("PointerCast", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.PointerCast }),
		cast("FPCast", func(b *Builder) func(v Value, t Type, n string) (Value, error) { return b.FPCast }),
		{"IntCast", func(b *Builder) (Value, error) { return b.IntCast(nil, nil, true, "") }},
		{"Cast", func(b *Builder) (Value, error) { return b.Cast(enum.OpcodeZExt, nil, nil, "") }},
		{"ICmp", func(b *Builder) (Value, error) { return b.ICmp(enum.IntEQ, nil, nil, "") }},
		{"FCmp", func(b *Builder) (Value, error) { return b.FCmp(enum.RealOEQ, nil, nil, "") }},
		{"Phi", func(b *Builder) (Value, error) { return b.Phi(nil, "") }},
		{"Call", func(b *Builder) (Value, error) { return b.Call(nil, nil, nil, "") }},
		{"CallWithTailKind", func(b *Builder) (Value, error) {
			return b.CallWithTailKind(nil, nil, nil, enum.TailCallTail, "")
		}},
		{"Select", func(b *Builder) (Value, error) { return b.Select(nil, nil, nil, "") }},
		{"VAArg", func(b *Builder) (Value, error) { return b.VAArg(nil, nil, "") }},
		{"ExtractElement", func(b *Builder) (Value, error) { return b.ExtractElement(nil, nil, "") }},
		{"InsertElement", func(b *Builder) (Value, error) { return b.InsertElement(nil, nil, nil, "") }},
		{"ShuffleVector", func(b *Builder) (Value, error) { return b.ShuffleVector(nil, nil, nil, "") }},
		{"ExtractValue", func(b *Builder) (Value, error) { return b.ExtractValue(nil, 0, "") }},
		{"InsertValue", func(b *Builder) (Value, error) { return b.InsertValue(nil, nil, 0, "") }},
		{"PtrDiff", func(b *Builder) (Value, error) { return b.PtrDiff(nil, nil, nil, "") }},
		{"Fence", func(b *Builder) (Value, error) { return b.Fence(enum.OrderingSequentiallyConsistent, false, "") }},
		{"AtomicRMW", func(b *Builder) (Value, error) {
			return b.AtomicRMW(enum.RMWAdd, nil, nil, enum.OrderingMonotonic, false)
		}},
		{"AtomicCmpXchg", func(b *Builder) (Value, error) {
			return b.AtomicCmpXchg(nil, nil, nil, enum.OrderingSequentiallyConsistent, enum.OrderingMonotonic, false)
		}},
		{"Insert", func(b *Builder) (Value, error) { return b.Insert(nil, "") }},
	}
}

func TestEmitBeforePositioning(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	b := must(ctx.NewBuilder())
	defer b.Close()
	assert.False(t, b.Positioned())

	for _, e := range allEmitters() {
		t.Run(e.name, func(t *testing.T) {
			v, err := e.emit(b)
			assert.Nil(t, v)
			var pe *PositionError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, e.name, pe.Op)
		})
	}
}

func TestEmitAfterClearPosition(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	defer m.Close()
	b := must(ctx.NewBuilder())
	defer b.Close()

	entry := must(must(m.NamedFunction("sum")).EntryBlock())
	require.Nil(t, b.PositionAtEnd(entry))
	assert.True(t, b.Positioned())
	assert.True(t, must(b.InsertBlock()).Equal(entry))
	require.Nil(t, b.ClearPosition())

	_, err := b.Unreachable()
	var pe *PositionError
	assert.True(t, errors.As(err, &pe))
}

func TestBuilderLifetime(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	b := must(ctx.NewBuilder())
	require.Nil(t, ctx.Close())
	require.Nil(t, b.Close())
	assert.ErrorIs(t, b.Close(), ownership.ErrReleased)

	var uaf *UseAfterFreeError
	_, err := b.RetVoid()
	assert.True(t, errors.As(err, &uaf))
}

func TestEmitIntoClosedModule(t *testing.T) {
	leakCheck(t)
	ctx := NewContext()
	defer ctx.Close()
	m := sumModule(t, ctx)
	b := must(ctx.NewBuilder())
	defer b.Close()
	require.Nil(t, b.PositionAtEnd(must(must(m.NamedFunction("sum")).EntryBlock())))
	require.Nil(t, m.Close())

	var uaf *UseAfterFreeError
	_, err := b.Unreachable()
	assert.True(t, errors.As(err, &uaf))
}

// loopFixture is a function "i32 @count(i32 %n)" with an entry, a loop and
// an exit block, and a builder positioned at the end of the entry block.
type loopFixture struct {
	ctx               *Context
	m                 *Module
	fn                *Function
	b                 *Builder
	entry, loop, exit *BasicBlock
	i32               *IntType
}

func newLoopFixture(t *testing.T) *loopFixture {
	t.Helper()
	ctx := NewContext()
	m := must(ctx.NewModule("loop"))
	i32 := must(ctx.Int32())
	fn := must(m.AddFunction("count", must(ctx.FunctionTypeOf(i32, []Type{i32}, false))))
	f := &loopFixture{
		ctx:   ctx,
		m:     m,
		fn:    fn,
		b:     must(ctx.NewBuilder()),
		entry: must(fn.AppendBasicBlock("entry")),
		loop:  must(fn.AppendBasicBlock("loop")),
		exit:  must(fn.AppendBasicBlock("exit")),
		i32:   i32,
	}
	require.Nil(t, f.b.PositionAtEnd(f.entry))
	t.Cleanup(func() {
		f.b.Close()
		f.m.Close()
		f.ctx.Close()
	})
	return f
}

func TestBuildLoop(t *testing.T) {
	f := newLoopFixture(t)
	b := f.b
	zero := must(ConstInt(f.i32, 0, false))
	one := must(ConstInt(f.i32, 1, false))
	n := must(f.fn.Param(0))

	_ = must(b.Br(f.loop))
	require.Nil(t, b.PositionAtEnd(f.loop))
	phi := must(b.Phi(f.i32, "i")).(*PHINode)
	next := must(b.Add(phi, one, "next"))
	done := must(b.ICmp(enum.IntSGE, next, n, "done"))
	_ = must(b.CondBr(done, f.exit, f.loop))
	require.Nil(t, phi.AddIncoming([]Value{zero, next}, []*BasicBlock{f.entry, f.loop}))
	assert.Equal(t, 2, must(phi.IncomingCount()))

	require.Nil(t, b.PositionAtEnd(f.exit))
	ret := must(b.Ret(next))
	assert.Equal(t, enum.ValueKindInstruction, must(ret.Kind()))

	require.Nil(t, VerifyModule(f.m, enum.ReturnStatus))
	require.Nil(t, f.fn.Verify(enum.ReturnStatus))

	term := must(f.loop.Terminator())
	br, ok := must(term.Specialize()).(*BranchInst)
	require.True(t, ok)
	assert.True(t, must(br.IsConditional()))
	assert.Equal(t, 2, must(term.SuccessorCount()))
	cmp := must(br.Condition()).(*ICmpInst)
	assert.Equal(t, enum.IntSGE, must(cmp.Predicate()))
}

func TestMissingTerminatorFailsVerification(t *testing.T) {
	f := newLoopFixture(t)
	_ = must(f.b.Br(f.loop))
	require.Nil(t, f.b.PositionAtEnd(f.loop))
	_ = must(f.b.Br(f.exit))
	// exit is left without a terminator.

	err := VerifyModule(f.m, enum.ReturnStatus)
	var ve *VerificationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Message)

	err = VerifyFunction(f.fn, enum.ReturnStatus)
	require.True(t, errors.As(err, &ve))
	assert.Empty(t, ve.Message)
	assert.Contains(t, ve.Subject, "count")

	var ce *ConstructionError
	assert.True(t, errors.As(VerifyModule(f.m, enum.VerifierFailureAction(7)), &ce))
}

func TestConstantFolding(t *testing.T) {
	f := newLoopFixture(t)
	two := must(ConstInt(f.i32, 2, false))
	three := must(ConstInt(f.i32, 3, false))
	sum := must(f.b.Mul(two, three, "six"))
	c, ok := sum.(*ConstantInt)
	require.True(t, ok)
	assert.Equal(t, uint64(6), must(c.ZExtValue()))
	assert.Nil(t, must(f.entry.FirstInstruction()))
}

func TestEmitterArgumentValidation(t *testing.T) {
	f := newLoopFixture(t)
	b := f.b
	ctx := f.ctx
	i64 := must(ctx.Int64())
	dbl := must(ctx.Double())
	ptr := must(ctx.PointerType(0))
	n := must(f.fn.Param(0))
	wide := must(ConstInt(i64, 1, false))
	real := must(ConstReal(dbl, 1))
	slot := must(b.Alloca(f.i32, "slot"))
	pair := must(ctx.StructType([]Type{f.i32, dbl}, false))
	other := NewContext()
	defer other.Close()

	testCases := []struct {
		name string
		emit func() (Value, error)
	}{
		{"mixed widths", func() (Value, error) { return b.Add(n, wide, "") }},
		{"int op on fp", func() (Value, error) { return b.Add(real, real, "") }},
		{"fp op on int", func() (Value, error) { return b.FAdd(n, n, "") }},
		{"nil operand", func() (Value, error) { return b.Sub(n, nil, "") }},
		{"foreign operand", func() (Value, error) {
			return b.Add(n, must(ConstInt(must(other.Int32()), 1, false)), "")
		}},
		{"trunc widens", func() (Value, error) { return b.Trunc(n, i64, "") }},
		{"zext of fp", func() (Value, error) { return b.ZExt(real, i64, "") }},
		{"bitcast size", func() (Value, error) { return b.BitCast(n, dbl, "") }},
		{"addrspacecast same space", func() (Value, error) { return b.AddrSpaceCast(slot, ptr, "") }},
		{"fcmp on ints", func() (Value, error) { return b.FCmp(enum.RealOEQ, n, n, "") }},
		{"condbr on i32", func() (Value, error) { return b.CondBr(n, f.loop, f.exit) }},
		{"ret type", func() (Value, error) { return b.Ret(real) }},
		{"load of void", func() (Value, error) { return b.Load(must(ctx.Void()), slot, "") }},
		{"load from int", func() (Value, error) { return b.Load(f.i32, n, "") }},
		{"struct gep non-constant", func() (Value, error) {
			return b.GEP(pair, slot, []Value{n, n}, "")
		}},
		{"select types", func() (Value, error) {
			return b.Select(must(ConstInt(must(ctx.Int1()), 1, false)), n, real, "")
		}},
		{"call arity", func() (Value, error) {
			return b.Call(must(f.fn.Signature()), f.fn, nil, "")
		}},
		{"call arg type", func() (Value, error) {
			return b.Call(must(f.fn.Signature()), f.fn, []Value{real}, "")
		}},
		{"named void call", func() (Value, error) {
			void := must(ctx.FunctionTypeOf(must(ctx.Void()), nil, false))
			callee := must(f.m.AddFunction("nothing", void))
			return b.Call(void, callee, nil, "named")
		}},
		{"fence monotonic", func() (Value, error) { return b.Fence(enum.OrderingMonotonic, false, "") }},
		{"rmw unordered", func() (Value, error) {
			return b.AtomicRMW(enum.RMWAdd, slot, n, enum.OrderingUnordered, false)
		}},
		{"rmw fadd on int", func() (Value, error) {
			return b.AtomicRMW(enum.RMWFAdd, slot, n, enum.OrderingMonotonic, false)
		}},
		{"rmw unknown op", func() (Value, error) {
			return b.AtomicRMW(enum.AtomicRMWBinOp(99), slot, n, enum.OrderingMonotonic, false)
		}},
		{"cmpxchg release failure", func() (Value, error) {
			return b.AtomicCmpXchg(slot, n, n, enum.OrderingSequentiallyConsistent, enum.OrderingRelease, false)
		}},
		{"memset alignment", func() (Value, error) {
			return b.MemSet(slot, must(ConstInt(must(ctx.Int8()), 0, false)), wide, 3)
		}},
		{"phi of void", func() (Value, error) { return b.Phi(must(ctx.Void()), "") }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.emit()
			assert.Nil(t, v)
			var ce *ConstructionError
			assert.True(t, errors.As(err, &ce), "got %v", err)
		})
	}
}

func TestIndexErrors(t *testing.T) {
	f := newLoopFixture(t)
	b := f.b
	dbl := must(f.ctx.Double())
	pair := must(f.ctx.StructType([]Type{f.i32, dbl}, false))
	slot := must(b.Alloca(pair, "pair"))
	zero := must(ConstInt(f.i32, 0, false))
	five := must(ConstInt(f.i32, 5, false))

	var idx *IndexError
	_, err := b.StructGEP(pair, slot, 2, "")
	require.True(t, errors.As(err, &idx))
	assert.Equal(t, 2, idx.Len)

	_, err = b.GEP(pair, slot, []Value{zero, five}, "")
	assert.True(t, errors.As(err, &idx))

	agg := must(b.Load(pair, slot, "agg"))
	_, err = b.ExtractValue(agg, 2, "")
	assert.True(t, errors.As(err, &idx))

	field := must(b.StructGEP(pair, slot, 1, "f"))
	gep, ok := field.(*GEPInst)
	require.True(t, ok)
	assert.True(t, must(gep.SourceElementType()).Equal(pair))
	x := must(b.ExtractValue(agg, 1, "x"))
	assert.True(t, must(x.Type()).Equal(dbl))
}

func TestMemoryAndAtomics(t *testing.T) {
	f := newLoopFixture(t)
	b := f.b
	n := must(f.fn.Param(0))
	slot := must(b.Alloca(f.i32, "slot"))
	_ = must(b.Store(n, slot))

	load := must(b.Load(f.i32, slot, "v")).(*LoadInst)
	require.Nil(t, load.SetVolatile(true))
	assert.True(t, must(load.IsVolatile()))
	require.Nil(t, load.SetAlignment(4))
	assert.Equal(t, 4, must(load.Alignment()))

	rmw := must(b.AtomicRMW(enum.RMWXchg, slot, n, enum.OrderingAcquireRelease, false)).(*AtomicRMWInst)
	assert.Equal(t, enum.RMWXchg, must(rmw.BinOp()))
	assert.Equal(t, enum.OrderingAcquireRelease, must(rmw.Ordering()))

	cx := must(b.AtomicCmpXchg(slot, n, n, enum.OrderingSequentiallyConsistent, enum.OrderingAcquire, false))
	xchg := cx.(*AtomicCmpXchgInst)
	assert.Equal(t, enum.OrderingAcquire, must(xchg.FailureOrdering()))

	fence := must(b.Fence(enum.OrderingRelease, true, "")).(*FenceInst)
	assert.Equal(t, enum.OrderingRelease, must(fence.Ordering()))

	str := must(b.GlobalStringPtr("hello", "greeting"))
	assert.Equal(t, enum.TypeKindPointer, must(must(str.Type()).Kind()))
	_ = must(b.Ret(n))
	for _, bb := range []*BasicBlock{f.loop, f.exit} {
		require.Nil(t, b.PositionAtEnd(bb))
		_ = must(b.Unreachable())
	}
	require.Nil(t, f.fn.Verify(enum.ReturnStatus))
}

func TestCallsAndSwitch(t *testing.T) {
	f := newLoopFixture(t)
	b := f.b
	n := must(f.fn.Param(0))

	call := must(b.CallWithTailKind(must(f.fn.Signature()), f.fn, []Value{n}, enum.TailCallTail, "r")).(*CallInst)
	assert.Equal(t, enum.TailCallTail, must(call.TailCallKind()))
	assert.True(t, must(call.Callee()).Equal(f.fn))
	assert.Equal(t, 1, must(call.ArgCount()))

	sw := must(b.Switch(n, f.exit, 1)).(*SwitchInst)
	require.Nil(t, sw.AddCase(must(ConstInt(f.i32, 7, false)), f.loop))
	assert.True(t, must(sw.Default()).Equal(f.exit))

	require.Nil(t, b.PositionAtEnd(f.loop))
	_ = must(b.Br(f.exit))
	require.Nil(t, b.PositionAtEnd(f.exit))
	_ = must(b.Ret(call))
	require.Nil(t, f.m.Verify(enum.ReturnStatus))
}
