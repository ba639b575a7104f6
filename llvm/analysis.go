// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Analysis.h>
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"llvmbind/enum"
)

// VerifyModule runs the native structural verifier on m.
//
// With enum.ReturnStatus nothing is printed and a broken module yields a
// *VerificationError carrying the verifier text. With enum.PrintMessage the
// text is also written to stderr by the native library. enum.AbortProcess
// makes the native library abort the process on failure; it is the only
// fatal path in this package and must be chosen explicitly.
func VerifyModule(m *Module, action enum.VerifierFailureAction) error {
	if err := m.check(); err != nil {
		return err
	}
	if err := member("VerifyModule", enum.VerifierFailureActionTable, int64(action)); err != nil {
		return err
	}
	var msg *C.char
	broken := C.LLVMVerifyModule(m.m, C.LLVMVerifierFailureAction(action), &msg) != 0
	text := takeMessage(msg)
	if !broken {
		return nil
	}
	id, _ := m.Identifier()
	return &VerificationError{Subject: "module " + id, Message: text}
}

// Verify runs VerifyModule on the module.
func (m *Module) Verify(action enum.VerifierFailureAction) error {
	return VerifyModule(m, action)
}

// VerifyFunction runs the native verifier on a single function. The native
// function verifier reports no text, so the returned *VerificationError has
// an empty Message.
func VerifyFunction(fn *Function, action enum.VerifierFailureAction) error {
	if err := fn.check(); err != nil {
		return err
	}
	if err := member("VerifyFunction", enum.VerifierFailureActionTable, int64(action)); err != nil {
		return err
	}
	if C.LLVMVerifyFunction(fn.v, C.LLVMVerifierFailureAction(action)) == 0 {
		return nil
	}
	name, _ := fn.Name()
	return &VerificationError{Subject: "function " + name}
}

// Verify runs VerifyFunction on the function.
func (f *Function) Verify(action enum.VerifierFailureAction) error {
	return VerifyFunction(f, action)
}
