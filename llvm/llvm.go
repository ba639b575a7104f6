// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package llvm exposes the LLVM-C interface as memory-safe Go handles.
//
// Every native object reached through this package is wrapped in a handle
// that either owns the object (Context, Module, MemoryBuffer, Builder and
// detached instructions) or borrows it from an owner (types, values, basic
// blocks, attributes). Owning handles release their object exactly once, on
// Close. Borrowed handles check the liveness of their owner on every call and
// fail with a UseAfterFreeError once it is gone, instead of reading freed
// native memory.
//
// Handles are fresh wrappers on every access: two handles fetched separately
// for the same native object are different Go values that compare Equal.
// Navigation (functions of a module, blocks of a function, operands of an
// instruction) always asks the native graph again and is never cached.
//
// The native library is not safe for concurrent mutation. A Context, and
// everything created in it, must be used by one goroutine at a time;
// different goroutines may use different contexts freely.
package llvm

/*
#cgo CFLAGS: -D__STDC_CONSTANT_MACROS -D__STDC_FORMAT_MACROS -D__STDC_LIMIT_MACROS
#cgo linux CFLAGS: -I/usr/lib/llvm-18/include
#cgo linux LDFLAGS: -L/usr/lib/llvm-18/lib -lLLVM-18
#cgo darwin CFLAGS: -I/opt/homebrew/opt/llvm@18/include
#cgo darwin LDFLAGS: -L/opt/homebrew/opt/llvm@18/lib -Wl,-search_paths_first -Wl,-headerpad_max_install_names -lLLVM
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"fortio.org/safecast"
)

func llvmBool(b bool) C.LLVMBool {
	if b {
		return 1
	}
	return 0
}

// takeMessage copies a message allocated by the native library and frees it.
func takeMessage(msg *C.char) string {
	if msg == nil {
		return ""
	}
	defer C.LLVMDisposeMessage(msg)
	return C.GoString(msg)
}

// withCString calls fn with a NUL-terminated copy of s.
func withCString[T any](s string, fn func(*C.char) T) T {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return fn(cs)
}

// goStringN copies a native (pointer, length) pair.
func goStringN(p *C.char, n C.size_t) string {
	if p == nil || n == 0 {
		return ""
	}
	return C.GoStringN(p, C.int(n))
}

// cUnsigned converts a Go count or index to a native unsigned int.
func cUnsigned(op string, n int) (C.unsigned, error) {
	u, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, &ConstructionError{Op: op, Reason: err.Error()}
	}
	return C.unsigned(u), nil
}

func typeRefs(ts []C.LLVMTypeRef) *C.LLVMTypeRef {
	if len(ts) == 0 {
		return nil
	}
	return (*C.LLVMTypeRef)(unsafe.Pointer(&ts[0]))
}

func valueRefs(vs []C.LLVMValueRef) *C.LLVMValueRef {
	if len(vs) == 0 {
		return nil
	}
	return (*C.LLVMValueRef)(unsafe.Pointer(&vs[0]))
}

func freeCString(cs *C.char) { C.free(unsafe.Pointer(cs)) }
