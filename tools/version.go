// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedLLVM is the range of native LLVM versions the binding is built
// against.
const SupportedLLVM = ">= 18.0.0, < 19.0.0"

func init() {
	RegEnv("LLVMBIND_LLVM_CONSTRAINT", SupportedLLVM, "Accepted native LLVM versions")
}

// CheckLLVM returns an error if version does not satisfy constraint.
func CheckLLVM(version, constraint string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid LLVM version '%s': %w", version, err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid LLVM constraint '%s': %w", constraint, err)
	}
	if ok, errs := c.Validate(v); !ok {
		return fmt.Errorf("LLVM %s is not supported: %v", v, errs)
	}
	return nil
}
