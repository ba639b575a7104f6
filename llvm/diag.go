// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
	char *text;
	size_t len;
	int errors;
} llvmbindSink;

static void llvmbindCollect(LLVMDiagnosticInfoRef info, void *opaque) {
	llvmbindSink *sink = opaque;
	if (LLVMGetDiagInfoSeverity(info) == LLVMDSError)
		sink->errors++;
	char *msg = LLVMGetDiagInfoDescription(info);
	size_t n = strlen(msg);
	char *grown = realloc(sink->text, sink->len + n + 2);
	if (grown != NULL) {
		if (sink->len > 0)
			grown[sink->len++] = '\n';
		memcpy(grown + sink->len, msg, n + 1);
		sink->len += n;
		sink->text = grown;
	}
	LLVMDisposeMessage(msg);
}

typedef struct {
	LLVMDiagnosticHandler handler;
	void *opaque;
	llvmbindSink *sink;
} llvmbindScope;

static llvmbindScope llvmbindBegin(LLVMContextRef c) {
	llvmbindScope s;
	s.handler = LLVMContextGetDiagnosticHandler(c);
	s.opaque = LLVMContextGetDiagnosticContext(c);
	s.sink = calloc(1, sizeof(llvmbindSink));
	LLVMContextSetDiagnosticHandler(c, llvmbindCollect, s.sink);
	return s;
}

static void llvmbindEnd(LLVMContextRef c, llvmbindScope s) {
	LLVMContextSetDiagnosticHandler(c, s.handler, s.opaque);
}
*/
import "C"

import (
	"unsafe"
)

// diagnostics captures the native diagnostics reported on a context while
// it is installed. Without a handler, the native library prints errors and
// exits the process.
type diagnostics struct {
	c     C.LLVMContextRef
	scope C.llvmbindScope
}

func captureDiagnostics(c C.LLVMContextRef) *diagnostics {
	return &diagnostics{c: c, scope: C.llvmbindBegin(c)}
}

// finish restores the previous handler and returns the collected text and
// the number of errors among the diagnostics.
func (d *diagnostics) finish() (string, int) {
	C.llvmbindEnd(d.c, d.scope)
	sink := d.scope.sink
	if sink == nil {
		return "", 0
	}
	defer C.free(unsafe.Pointer(sink))
	text := ""
	if sink.text != nil {
		text = C.GoStringN(sink.text, C.int(sink.len))
		C.free(unsafe.Pointer(sink.text))
	}
	return text, int(sink.errors)
}
