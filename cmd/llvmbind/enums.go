// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"llvmbind/enum"
	"llvmbind/llvm"
)

var enumsFlags = struct {
	list bool
}{}

var enumsCmd = cobra.Command{
	Use:   "enums [flags] [table]...",
	Short: "Compares the enumeration mirror with the values of the native headers",
	RunE:  enumsRun,
}

func init() {
	enumsCmd.Flags().BoolVarP(&enumsFlags.list, "list", "l", false, "list the members of the selected tables")
	rootCmd.AddCommand(&enumsCmd)
}

// mismatch is one member whose mirrored value differs from the native one.
type mismatch struct {
	table, member string
	mirror        int64
	native        int64
	missing       bool
}

func (m mismatch) String() string {
	if m.missing {
		return fmt.Sprintf("%s.%s: not found in native headers", m.table, m.member)
	}
	return fmt.Sprintf("%s.%s: mirror %d, native %d", m.table, m.member, m.mirror, m.native)
}

func compareEnums(tables []*enum.Table, native map[string]map[string]int64) []mismatch {
	var out []mismatch
	for _, t := range tables {
		values := native[t.Name]
		for _, m := range t.Members {
			v, ok := values[m.Name]
			switch {
			case !ok:
				out = append(out, mismatch{table: t.Name, member: m.Name, mirror: m.Value, missing: true})
			case v != m.Value:
				out = append(out, mismatch{table: t.Name, member: m.Name, mirror: m.Value, native: v})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].table < out[j].table })
	return out
}

func selectTables(names []string) ([]*enum.Table, error) {
	if len(names) == 0 {
		return enum.Tables(), nil
	}
	var out []*enum.Table
	for _, n := range names {
		t, ok := enum.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("unknown enumeration '%s'", n)
		}
		out = append(out, t)
	}
	return out, nil
}

func enumsRun(cmd *cobra.Command, args []string) error {
	tables, err := selectTables(args)
	if err != nil {
		return verror(usageError, err)
	}
	out := cmd.OutOrStdout()
	if enumsFlags.list {
		for _, t := range tables {
			fmt.Fprintf(out, "%s\n", t.Name)
			for _, m := range t.Members {
				fmt.Fprintf(out, "  %-28s %d\n", m.Name, m.Value)
			}
		}
	}

	bad := compareEnums(tables, llvm.NativeEnumValues())
	for _, m := range bad {
		fmt.Fprintf(out, "%v\n", m)
	}
	if len(bad) > 0 {
		return verror(checkFail, fmt.Errorf("%d enumeration members differ from LLVM %s", len(bad), llvm.VersionString()))
	}
	fmt.Fprintf(out, "%d enumerations match LLVM %s\n", len(tables), llvm.VersionString())
	return nil
}
