// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package irtext reads textual LLVM IR without the native library.
//
// It parses printed modules with github.com/llir/llvm and reduces them to a
// Summary: the shape of a module (globals, functions, blocks and instruction
// counts) that does not depend on value numbering or attribute spelling. The
// llvmbind command compares such summaries against the ones taken from the
// native binding to cross-check printing and parsing.
package irtext

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"

	"llvmbind/logger"
)

// Summary is the shape of one module.
type Summary struct {
	Source    string     `json:"source" yaml:"source"`
	Globals   []string   `json:"globals,omitempty" yaml:"globals,omitempty"`
	Functions []Function `json:"functions,omitempty" yaml:"functions,omitempty"`
}

// Function is the shape of one function. Declarations have no blocks.
type Function struct {
	Name     string  `json:"name" yaml:"name"`
	Params   int     `json:"params" yaml:"params"`
	Variadic bool    `json:"variadic,omitempty" yaml:"variadic,omitempty"`
	Blocks   []Block `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// Block is the shape of one basic block. Unnamed blocks have an empty Name.
// Instructions counts the terminator as well.
type Block struct {
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Instructions int    `json:"instructions" yaml:"instructions"`
	Terminator   string `json:"terminator,omitempty" yaml:"terminator,omitempty"`
}

// IsDeclaration reports whether f has no body.
func (f *Function) IsDeclaration() bool { return len(f.Blocks) == 0 }

// Instructions returns the number of instructions over all blocks.
func (f *Function) Instructions() int {
	n := 0
	for _, b := range f.Blocks {
		n += b.Instructions
	}
	return n
}

// Function returns the function with the given name, or nil.
func (s *Summary) Function(name string) *Function {
	for i := range s.Functions {
		if s.Functions[i].Name == name {
			return &s.Functions[i]
		}
	}
	return nil
}

// Definitions returns the number of functions with a body.
func (s *Summary) Definitions() int {
	n := 0
	for i := range s.Functions {
		if !s.Functions[i].IsDeclaration() {
			n++
		}
	}
	return n
}

// Sort orders globals and functions by name. Blocks keep their layout order.
func (s *Summary) Sort() {
	sort.Strings(s.Globals)
	sort.Slice(s.Functions, func(i, j int) bool {
		return s.Functions[i].Name < s.Functions[j].Name
	})
}

// ErrUnsupported marks IR text that is valid for the native library but
// outside the syntax llir understands, such as opaque pointers.
var ErrUnsupported = errors.New("irtext: syntax not supported by llir")

var reOpaquePtr = regexp.MustCompile(`(^|[\s(,\[<{])ptr\b`)

// Parse summarizes the IR text. name is only used in messages and as the
// summary source. Text that fails to parse because it uses opaque pointers
// yields an error wrapping ErrUnsupported.
func Parse(name, text string) (*Summary, error) {
	logger.Debugf("irtext: parse '%s'", name)
	m, err := asm.ParseString(name, text)
	if err != nil {
		if reOpaquePtr.MatchString(text) {
			return nil, fmt.Errorf("%w: opaque pointers: %v", ErrUnsupported, err)
		}
		return nil, fmt.Errorf("irtext: %w", err)
	}
	return Summarize(name, m), nil
}

// ParseFile summarizes the IR text stored in path.
func ParseFile(path string) (*Summary, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("irtext: %w", err)
	}
	return Parse(path, string(text))
}

// Summarize reduces an already parsed module.
func Summarize(source string, m *ir.Module) *Summary {
	s := &Summary{Source: source}
	for _, g := range m.Globals {
		s.Globals = append(s.Globals, g.Name())
	}
	for _, f := range m.Funcs {
		fn := Function{
			Name:     f.Name(),
			Params:   len(f.Params),
			Variadic: f.Sig.Variadic,
		}
		for _, b := range f.Blocks {
			fn.Blocks = append(fn.Blocks, block(b))
		}
		s.Functions = append(s.Functions, fn)
	}
	s.Sort()
	return s
}

func block(b *ir.Block) Block {
	out := Block{Instructions: len(b.Insts)}
	if !b.IsUnnamed() {
		out.Name = b.LocalName
	}
	if b.Term != nil {
		out.Instructions++
		out.Terminator = terminator(b.Term)
	}
	return out
}

// terminator returns the lower-case opcode name of t, as printed in IR.
func terminator(t ir.Terminator) string {
	switch t.(type) {
	case *ir.TermRet:
		return "ret"
	case *ir.TermBr, *ir.TermCondBr:
		return "br"
	case *ir.TermSwitch:
		return "switch"
	case *ir.TermIndirectBr:
		return "indirectbr"
	case *ir.TermInvoke:
		return "invoke"
	case *ir.TermCallBr:
		return "callbr"
	case *ir.TermResume:
		return "resume"
	case *ir.TermCatchSwitch:
		return "catchswitch"
	case *ir.TermCatchRet:
		return "catchret"
	case *ir.TermCleanupRet:
		return "cleanupret"
	case *ir.TermUnreachable:
		return "unreachable"
	default:
		logger.Warnf("irtext: unknown terminator %T", t)
		return fmt.Sprintf("%T", t)
	}
}
