// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"llvmbind/irtext"
)

// Format selects the report encoding.
type Format string

// Report formats.
const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, YAML, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format '%s' (text|yaml|json)", s)
	}
}

// IsTerminal reports whether f is attached to a terminal, which is when
// colored output is enabled by default.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Printer writes reports.
type Printer struct {
	Out    io.Writer
	Format Format
	Color  bool
}

func (p *Printer) paint(attr ...color.Attribute) func(a ...any) string {
	c := color.New(attr...)
	if p.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Summary writes s in the printer's format.
func (p *Printer) Summary(s *irtext.Summary) error {
	switch p.Format {
	case YAML:
		out, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		_, err = p.Out.Write(out)
		return err
	case JSON:
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.Out, "%s\n", out)
		return err
	default:
		return p.text(s)
	}
}

func (p *Printer) text(s *irtext.Summary) error {
	var (
		title = p.paint(color.Bold)
		decl  = p.paint(color.FgBlue)
		def   = p.paint(color.FgGreen)
		w     = &errWriter{w: p.Out}
	)
	w.printf("== %s ==\n\n", title(s.Source))
	w.printf("Globals\n")
	for _, g := range s.Globals {
		w.printf("  @%s\n", g)
	}
	w.printf("\nFunctions\n")
	for i := range s.Functions {
		f := &s.Functions[i]
		if f.IsDeclaration() {
			w.printf("  %s @%s(%d%s)\n", decl("declare"), f.Name, f.Params, variadic(f))
			continue
		}
		w.printf("  %s  @%s(%d%s) blocks=%d instructions=%d\n",
			def("define"), f.Name, f.Params, variadic(f), len(f.Blocks), f.Instructions())
		for j, b := range f.Blocks {
			name := b.Name
			if name == "" {
				name = fmt.Sprintf("#%d", j)
			}
			w.printf("    %-12s %3d  %s\n", name, b.Instructions, b.Terminator)
		}
	}
	w.printf("\n")
	return w.err
}

func variadic(f *irtext.Function) string {
	if f.Variadic {
		return ", ..."
	}
	return ""
}

// Differences writes the outcome of a cross-check and returns whether the
// two views agreed.
func (p *Printer) Differences(source string, diff []irtext.Difference) (bool, error) {
	var (
		ok   = p.paint(color.FgGreen)
		fail = p.paint(color.FgRed)
		w    = &errWriter{w: p.Out}
	)
	if len(diff) == 0 {
		w.printf("%s %s: native and text views agree\n", ok("ok"), source)
		return true, w.err
	}
	w.printf("%s %s: %d differences\n", fail("FAIL"), source, len(diff))
	for _, d := range diff {
		w.printf("  %s\n", d)
	}
	return false, w.err
}

// Skipped writes the reason a cross-check of source did not run.
func (p *Printer) Skipped(source string, reason error) error {
	w := &errWriter{w: p.Out}
	w.printf("%s %s: %v\n", p.paint(color.FgYellow)("skip"), source, reason)
	return w.err
}

// Result writes one line for a checked file. A nil err reports success.
func (p *Printer) Result(file string, err error) error {
	w := &errWriter{w: p.Out}
	if err == nil {
		w.printf("%s %s\n", p.paint(color.FgGreen)("ok"), file)
	} else {
		w.printf("%s %s: %v\n", p.paint(color.FgRed)("FAIL"), file, err)
	}
	return w.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
