// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package inspect reports the shape of modules loaded through the native
// binding and cross-checks it against an independent parse of the printed
// text.
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"llvmbind/irtext"
	"llvmbind/llvm"
	"llvmbind/logger"
)

// Summarize walks m through the binding and returns its shape.
func Summarize(m *llvm.Module) (*irtext.Summary, error) {
	id, err := m.Identifier()
	if err != nil {
		return nil, err
	}
	s := &irtext.Summary{Source: id}

	globals, err := m.GlobalVariables()
	if err != nil {
		return nil, err
	}
	for _, g := range globals {
		name, err := g.Name()
		if err != nil {
			return nil, err
		}
		s.Globals = append(s.Globals, name)
	}

	funcs, err := m.Functions()
	if err != nil {
		return nil, err
	}
	for _, f := range funcs {
		fn, err := function(f)
		if err != nil {
			return nil, err
		}
		s.Functions = append(s.Functions, fn)
	}
	s.Sort()
	return s, nil
}

func function(f *llvm.Function) (irtext.Function, error) {
	var out irtext.Function
	var err error
	if out.Name, err = f.Name(); err != nil {
		return out, err
	}
	sig, err := f.Signature()
	if err != nil {
		return out, err
	}
	if out.Params, err = sig.ParamCount(); err != nil {
		return out, err
	}
	if out.Variadic, err = sig.IsVariadic(); err != nil {
		return out, err
	}
	blocks, err := f.BasicBlocks()
	if err != nil {
		return out, err
	}
	for _, bb := range blocks {
		b, err := block(bb)
		if err != nil {
			return out, err
		}
		out.Blocks = append(out.Blocks, b)
	}
	return out, nil
}

func block(bb *llvm.BasicBlock) (irtext.Block, error) {
	var out irtext.Block
	var err error
	if out.Name, err = bb.Name(); err != nil {
		return out, err
	}
	insts, err := bb.Instructions()
	if err != nil {
		return out, err
	}
	out.Instructions = len(insts)
	term, err := bb.Terminator()
	if err != nil || term == nil {
		return out, err
	}
	op, err := term.Opcode()
	if err != nil {
		return out, err
	}
	out.Terminator = strings.ToLower(op.String())
	return out, nil
}

// CrossCheck prints m, parses the text again without the native library and
// returns the differences between both views. An error means one of the two
// views could not be built. The text was printed by the native library, so a
// failure to parse it again is a limit of llir: the error then wraps
// irtext.ErrUnsupported and the check counts as skipped, see Skipped.
func CrossCheck(m *llvm.Module) ([]irtext.Difference, error) {
	native, err := Summarize(m)
	if err != nil {
		return nil, err
	}
	text, err := irtext.Parse(native.Source, m.String())
	if err != nil {
		if !errors.Is(err, irtext.ErrUnsupported) {
			err = fmt.Errorf("%w: %v", irtext.ErrUnsupported, err)
		}
		logger.Infof("inspect: %s cross-check skipped: %v", native.Source, err)
		return nil, fmt.Errorf("cross-check: %w", err)
	}
	diff := irtext.Diff(native, text)
	logger.Debugf("inspect: %s cross-check found %d differences", native.Source, len(diff))
	return diff, nil
}

// Skipped reports whether err only says that CrossCheck could not run.
func Skipped(err error) bool { return errors.Is(err, irtext.ErrUnsupported) }
