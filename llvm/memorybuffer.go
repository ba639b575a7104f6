// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"llvmbind/ownership"
)

// MemoryBuffer is an owned byte buffer that feeds the IR readers. Passing it
// to ParseIR hands it over to the native library: afterwards the handle is
// inert and Close has nothing left to release.
type MemoryBuffer struct {
	b     C.LLVMMemoryBufferRef
	name  string
	owner *ownership.Owner
}

func ownBuffer(b C.LLVMMemoryBufferRef, name string) *MemoryBuffer {
	return &MemoryBuffer{
		b:     b,
		name:  name,
		owner: ownership.New("memory buffer", func() { C.LLVMDisposeMemoryBuffer(b) }),
	}
}

// NewMemoryBufferFromBytes copies data into a new buffer called name.
func NewMemoryBufferFromBytes(name string, data []byte) *MemoryBuffer {
	cname := C.CString(name)
	defer freeCString(cname)
	var p *C.char
	if len(data) > 0 {
		p = (*C.char)(unsafe.Pointer(&data[0]))
	}
	return ownBuffer(C.LLVMCreateMemoryBufferWithMemoryRangeCopy(p, C.size_t(len(data)), cname), name)
}

// NewMemoryBufferFromString copies s into a new buffer called name.
func NewMemoryBufferFromString(name, s string) *MemoryBuffer {
	return NewMemoryBufferFromBytes(name, []byte(s))
}

// NewMemoryBufferFromFile reads the file at path.
func NewMemoryBufferFromFile(path string) (*MemoryBuffer, error) {
	cpath := C.CString(path)
	defer freeCString(cpath)
	var b C.LLVMMemoryBufferRef
	var msg *C.char
	if C.LLVMCreateMemoryBufferWithContentsOfFile(cpath, &b, &msg) != 0 {
		return nil, fmt.Errorf("read %s: %s", path, takeMessage(msg))
	}
	return ownBuffer(b, path), nil
}

// NewMemoryBufferFromStdin reads standard input until EOF.
func NewMemoryBufferFromStdin() (*MemoryBuffer, error) {
	var b C.LLVMMemoryBufferRef
	var msg *C.char
	if C.LLVMCreateMemoryBufferWithSTDIN(&b, &msg) != 0 {
		return nil, fmt.Errorf("read stdin: %s", takeMessage(msg))
	}
	return ownBuffer(b, "<stdin>"), nil
}

// Name returns the identifier the buffer was created with.
func (m *MemoryBuffer) Name() string { return m.name }

// Len returns the size of the buffer in bytes.
func (m *MemoryBuffer) Len() (int, error) {
	if err := m.owner.Check(); err != nil {
		return 0, err
	}
	return int(C.LLVMGetBufferSize(m.b)), nil
}

// Bytes returns a copy of the buffer contents.
func (m *MemoryBuffer) Bytes() ([]byte, error) {
	if err := m.owner.Check(); err != nil {
		return nil, err
	}
	n := C.LLVMGetBufferSize(m.b)
	if n == 0 {
		return []byte{}, nil
	}
	return C.GoBytes(unsafe.Pointer(C.LLVMGetBufferStart(m.b)), C.int(n)), nil
}

// Close frees the buffer. It returns ownership.ErrReleased if the buffer was
// already closed or handed to the parser.
func (m *MemoryBuffer) Close() error {
	return m.owner.Release()
}

// Alive reports whether the handle still owns its buffer.
func (m *MemoryBuffer) Alive() bool { return m.owner.Alive() }
