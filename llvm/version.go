// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Core.h>
*/
import "C"

import "fmt"

// Version returns the version of the linked native library.
func Version() (major, minor, patch int) {
	var ma, mi, pa C.unsigned
	C.LLVMGetVersion(&ma, &mi, &pa)
	return int(ma), int(mi), int(pa)
}

// VersionString returns Version as "major.minor.patch".
func VersionString() string {
	ma, mi, pa := Version()
	return fmt.Sprintf("%d.%d.%d", ma, mi, pa)
}
