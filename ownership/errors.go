// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package ownership

import "fmt"

// UseAfterFreeError is returned when a handle is used after the native
// resource behind it was released or handed over to the native library.
type UseAfterFreeError struct {
	Resource    string
	Transferred bool
}

func (e *UseAfterFreeError) Error() string {
	if e.Transferred {
		return fmt.Sprintf("use after free: %s was transferred to the native library", e.Resource)
	}
	return fmt.Sprintf("use after free: %s was released", e.Resource)
}
