// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llvmbind/enum"
	"llvmbind/tools"
)

// clearEnv unsets the variables read by Load for the duration of the test.
func clearEnv(t *testing.T) {
	for _, name := range []string{"LLVMBIND_JOBS", "LLVMBIND_COLOR", "LLVMBIND_VERIFIER_ACTION", "CFLAGS", "CLANG_CMD"} {
		t.Setenv(name, "")
		require.Nil(t, os.Unsetenv(name))
	}
}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "llvmbind.toml")
	require.Nil(t, os.WriteFile(fn, []byte(text), 0600))
	return fn
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Nil(t, cfg.Validate())
	a, err := cfg.Action()
	require.Nil(t, err)
	assert.Equal(t, enum.ReturnStatus, a)
	assert.True(t, cfg.Skipped("llvm.memcpy.p0.p0.i64"))
	assert.False(t, cfg.Skipped("main"))
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	fn := writeConfig(t, `
jobs = 8
color = "never"
cross_check = true
verifier_action = "PrintMessage"
skip = ["llvm.", "__"]
`)
	cfg, err := Load(fn)
	require.Nil(t, err)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.CrossCheck)
	assert.Equal(t, []string{"llvm.", "__"}, cfg.Skip)
	assert.Equal(t, "text", cfg.Format)
	a, err := cfg.Action()
	require.Nil(t, err)
	assert.Equal(t, enum.PrintMessage, a)
}

func TestLoadMissing(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.Nil(t, err)
	require.Nil(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load("none.toml")
	assert.NotNil(t, err)
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLVMBIND_JOBS", "2")
	t.Setenv("LLVMBIND_COLOR", "always")
	t.Setenv("CFLAGS", "-O1 -g")
	cfg, err := Load(writeConfig(t, "jobs = 8\n"))
	require.Nil(t, err)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, "always", cfg.Color)
	assert.Equal(t, []string{"-O1", "-g"}, cfg.CFlags)

	t.Setenv("LLVMBIND_JOBS", "many")
	_, err = Load(writeConfig(t, ""))
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	testCases := []struct {
		name string
		edit func(*Config)
	}{
		{"jobs", func(c *Config) { c.Jobs = 0 }},
		{"color", func(c *Config) { c.Color = "sometimes" }},
		{"log", func(c *Config) { c.Log = "loud" }},
		{"abort", func(c *Config) { c.VerifierAction = "AbortProcess" }},
		{"clang", func(c *Config) { c.Clang = nil }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.edit(&cfg)
			assert.NotNil(t, cfg.Validate())
		})
	}

	_, err := Load(writeConfig(t, "jobs = -1\n"))
	assert.NotNil(t, err)
	_, err = Load(writeConfig(t, "jobs = \"x\"\n"))
	assert.NotNil(t, err)
}

func TestCompilerEnv(t *testing.T) {
	var names []string
	for _, ev := range tools.GetEnvvars() {
		names = append(names, ev.Name)
	}
	assert.Contains(t, names, "CLANG_CMD")
	assert.Contains(t, names, "CFLAGS")

	clearEnv(t)
	cfg, err := Load(writeConfig(t, "clang = [\"clang-18\"]\n"))
	require.Nil(t, err)
	assert.Equal(t, []string{"clang-18"}, cfg.Clang)
	assert.Nil(t, cfg.CFlags)

	t.Setenv("CLANG_CMD", "ccache clang")
	cfg, err = Load(writeConfig(t, "clang = [\"clang-18\"]\n"))
	require.Nil(t, err)
	assert.Equal(t, []string{"ccache", "clang"}, cfg.Clang)

	t.Setenv("CLANG_CMD", " ")
	_, err = Load(writeConfig(t, ""))
	assert.NotNil(t, err)
}

func TestCopyIsDeep(t *testing.T) {
	cfg := Default()
	cp := cfg.Copy()
	assert.Equal(t, cfg, cp)
	assert.Nil(t, cp.CFlags)
	cp.Skip[0] = "changed"
	cp.Clang = append(cp.Clang, "-m64")
	assert.Equal(t, "llvm.", cfg.Skip[0])
	assert.Equal(t, []string{"clang"}, cfg.Clang)
}
