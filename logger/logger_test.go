// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer SetLevel(ERROR)

	SetLevel(WARN)
	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)
	assert.Equal(t, "warn 3\nerror 4\n", buf.String())

	buf.Reset()
	SetLevel(DEBUG)
	Debug("a", "b")
	assert.Equal(t, "a b\n", buf.String())
}

func TestQuiet(t *testing.T) {
	SetOutput(nil)
	defer SetOutput(os.Stdout)
	Println("nobody listens")
	assert.Nil(t, Err())
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in  string
		out Level
		err bool
	}{
		{in: "error", out: ERROR},
		{in: "WARN", out: WARN},
		{in: "Info", out: INFO},
		{in: "debug", out: DEBUG},
		{in: "loud", err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			l, err := ParseLevel(tc.in)
			if tc.err {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.out, l)
			assert.Equal(t, tc.out.String(), l.String())
		})
	}
}
