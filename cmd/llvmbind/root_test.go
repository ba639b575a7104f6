// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llvmbind/enum"
	"llvmbind/llvm"
	"llvmbind/logger"
)

const sumIR = `
@counter = global i32 0

declare i32 @ext(i32, ...)

define i32 @sum(i32 %a, i32 %b) {
entry:
  %s = add i32 %a, %b
  br label %done

done:
  ret i32 %s
}
`

const pointerIR = `
@counter = global i32 0

define i32 @next(ptr %step) {
entry:
  %v = load i32, ptr @counter
  %d = load i32, ptr %step
  %n = add i32 %v, %d
  store i32 %n, ptr @counter
  ret i32 %n
}
`

const brokenIR = `
define i32 @f() {
entry:
  %x = add i32 1, %undefined
  ret i32 %x
}
`

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(fn, []byte(text), 0600))
	return fn
}

// run executes the command line and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootFlags.log, rootFlags.debug, rootFlags.quiet = "", false, false
	rootFlags.config, rootFlags.color = "", "never"
	verifyFlags.jobs, verifyFlags.crossCheck = 0, false
	inspectFlags.format, inspectFlags.crossCheck = "", false
	roundtripFlags.outputFn, roundtripFlags.bitcode = "", ""
	enumsFlags.list = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--color", "never"}, args...))
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, 0, getErrorCode(nil))
	assert.Equal(t, 2, getErrorCode(verror(checkFail, errors.New("x"))))
	assert.Equal(t, 1, getErrorCode(errors.New("plain")))
	assert.Equal(t, 3, getErrorCode(fmt.Errorf("wrapped: %w", verror(usageError, nil))))
	assert.Equal(t, "usageError", verror(usageError, nil).Error())
	assert.Equal(t, "", getErrorMessage(nil))

	assert.Equal(t, checkFail, vfail(&llvm.IRParseError{Message: "bad"}).typ)
	assert.Equal(t, checkFail, vfail(fmt.Errorf("f: %w", &llvm.VerificationError{Subject: "module"})).typ)
	assert.Equal(t, internalError, vfail(errors.New("disk on fire")).typ)
	assert.Equal(t, checkFail, getErrorType(vfail(&llvm.LinkError{})))
	assert.Equal(t, noError, getErrorType(nil))
}

func TestVerify(t *testing.T) {
	good := writeFile(t, "sum.ll", sumIR)
	bad := writeFile(t, "broken.ll", brokenIR)

	out, err := run(t, "verify", "--cross-check", good)
	require.Nil(t, err)
	assert.Contains(t, out, "ok "+good)

	out, err = run(t, "verify", "-j", "2", good, bad, good)
	require.NotNil(t, err)
	assert.Equal(t, int(checkFail), getErrorCode(err))
	assert.Contains(t, out, "FAIL "+bad)
	assert.Contains(t, err.Error(), "1 of 3")

	_, err = run(t, "verify", filepath.Join(t.TempDir(), "none.ll"))
	assert.Equal(t, int(usageError), getErrorCode(err))

	_, err = run(t, "verify")
	assert.Equal(t, int(usageError), getErrorCode(err))

	_, err = run(t, "verify", writeFile(t, "sum.txt", sumIR))
	assert.Equal(t, int(usageError), getErrorCode(err))
	assert.Contains(t, err.Error(), "unsupported input")
}

func TestLoadModuleSuffix(t *testing.T) {
	ctx := llvm.NewContext()
	defer ctx.Close()
	_, err := loadModule(context.Background(), ctx, writeFile(t, "sum.txt", sumIR), cfg)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unsupported input")

	m, err := loadModule(context.Background(), ctx, writeFile(t, "sum.ll", sumIR), cfg)
	require.Nil(t, err)
	assert.Nil(t, m.Close())
}

func TestOpaquePointers(t *testing.T) {
	ptr := writeFile(t, "next.ll", pointerIR)

	out, err := run(t, "verify", "--cross-check", ptr)
	require.Nil(t, err)
	assert.Contains(t, out, "ok "+ptr)

	out, err = run(t, "inspect", "--cross-check", ptr)
	require.Nil(t, err)
	assert.Contains(t, out, "define  @next(1) blocks=1 instructions=5")
	assert.Contains(t, out, "skip "+ptr)

	out, err = run(t, "roundtrip", ptr)
	require.Nil(t, err)
	assert.Contains(t, out, "ok "+ptr)
}

func TestInspect(t *testing.T) {
	good := writeFile(t, "sum.ll", sumIR)

	out, err := run(t, "inspect", "--format", "json", "--cross-check", good)
	require.Nil(t, err)
	assert.Contains(t, out, `"name": "sum"`)
	assert.Contains(t, out, `"variadic": true`)
	assert.Contains(t, out, "native and text views agree")

	out, err = run(t, "inspect", good)
	require.Nil(t, err)
	assert.Contains(t, out, "define  @sum(2) blocks=2 instructions=3")

	_, err = run(t, "inspect", "--format", "xml", good)
	assert.Equal(t, int(usageError), getErrorCode(err))

	_, err = run(t, "inspect", writeFile(t, "broken.ll", brokenIR))
	assert.Equal(t, int(checkFail), getErrorCode(err))
}

func TestRoundtrip(t *testing.T) {
	good := writeFile(t, "sum.ll", sumIR)
	dir := t.TempDir()
	ll := filepath.Join(dir, "out.ll")
	bc := filepath.Join(dir, "out.bc")

	out, err := run(t, "roundtrip", "-o", ll, "--emit-bc", bc, good)
	require.Nil(t, err)
	assert.Contains(t, out, "ok "+good)

	// the emitted files load again and survive a second trip
	out, err = run(t, "roundtrip", ll, bc)
	require.Nil(t, err)
	assert.Contains(t, out, "ok "+bc)

	_, err = run(t, "roundtrip", "-o", ll, good, good)
	assert.Equal(t, int(usageError), getErrorCode(err))
}

func TestEnums(t *testing.T) {
	out, err := run(t, "enums")
	require.Nil(t, err)
	assert.Contains(t, out, fmt.Sprintf("%d enumerations match", len(enum.Tables())))

	out, err = run(t, "enums", "--list", "AtomicOrdering")
	require.Nil(t, err)
	assert.Contains(t, out, "SequentiallyConsistent")

	_, err = run(t, "enums", "NoSuchEnum")
	assert.Equal(t, int(usageError), getErrorCode(err))
}

func TestCompareEnums(t *testing.T) {
	tab, ok := enum.Lookup("VerifierFailureAction")
	require.True(t, ok)
	native := map[string]map[string]int64{
		"VerifierFailureAction": {"AbortProcess": 0, "PrintMessage": 7},
	}
	bad := compareEnums([]*enum.Table{tab}, native)
	require.Len(t, bad, 2)
	assert.Equal(t, "VerifierFailureAction.PrintMessage: mirror 1, native 7", bad[0].String())
	assert.Equal(t, "VerifierFailureAction.ReturnStatus: not found in native headers", bad[1].String())
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.Nil(t, err)
	assert.Contains(t, out, "llvmbind latest")
	assert.Contains(t, out, "LLVM "+llvm.VersionString())
}
