// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the options of the llvmbind command. Options come from
// the defaults, an optional TOML file and the environment, in that order;
// command-line flags are applied last by the command itself.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jinzhu/copier"

	"llvmbind/enum"
	"llvmbind/logger"
	"llvmbind/tools"
)

// DefaultFile is read when no configuration file is given explicitly.
const DefaultFile = "llvmbind.toml"

func init() {
	tools.RegEnv("LLVMBIND_JOBS", "4", "Number of files verified concurrently")
	tools.RegEnv("LLVMBIND_COLOR", "auto", "Colored output (auto|always|never)")
	tools.RegEnv("LLVMBIND_VERIFIER_ACTION", "ReturnStatus", "Verifier failure action (ReturnStatus|PrintMessage)")
	tools.RegEnv("CLANG_CMD", "clang", "Compiler command for C inputs")
	tools.RegEnv("CFLAGS", "", "Extra compiler flags for C inputs")
}

// Config enables the options of the llvmbind subcommands.
type Config struct {
	Log            string   `toml:"log"`             // log level
	Color          string   `toml:"color"`           // auto, always or never
	Jobs           int      `toml:"jobs"`            // files verified concurrently
	VerifierAction string   `toml:"verifier_action"` // ReturnStatus or PrintMessage
	CrossCheck     bool     `toml:"cross_check"`     // compare native and text views
	Format         string   `toml:"format"`          // inspect report format
	Clang          []string `toml:"clang"`           // compiler command for C inputs
	CFlags         []string `toml:"cflags"`          // extra compiler flags
	Skip           []string `toml:"skip"`            // function name prefixes ignored in reports
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Log:            "ERROR",
		Color:          "auto",
		Jobs:           4,
		VerifierAction: "ReturnStatus",
		Format:         "text",
		Clang:          []string{"clang"},
		Skip:           []string{"llvm."},
	}
}

// Load returns the defaults overlaid with the file at path and then with the
// environment. A missing file is not an error when path is DefaultFile.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
		logger.Debugf("config: loaded '%s'", path)
		if undec := md.Undecoded(); len(undec) > 0 {
			logger.Warnf("config: unknown keys in '%s': %v", path, undec)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := tools.LookupEnv("LLVMBIND_JOBS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: LLVMBIND_JOBS: %w", err)
		}
		c.Jobs = n
	}
	if v, ok := tools.LookupEnv("LLVMBIND_COLOR"); ok {
		c.Color = v
	}
	if v, ok := tools.LookupEnv("LLVMBIND_VERIFIER_ACTION"); ok {
		c.VerifierAction = v
	}
	var err error
	if c.Clang, err = tools.FindCmd("CLANG_CMD", c.Clang...); err != nil {
		return fmt.Errorf("config: CLANG_CMD: %w", err)
	}
	if c.CFlags, err = tools.FindCmd("CFLAGS", c.CFlags...); err != nil {
		return fmt.Errorf("config: CFLAGS: %w", err)
	}
	return nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("config: jobs must be positive, got %d", c.Jobs)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: unknown color mode '%s'", c.Color)
	}
	if _, err := logger.ParseLevel(c.Log); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Action(); err != nil {
		return err
	}
	if len(c.Clang) == 0 {
		return errors.New("config: empty compiler command")
	}
	return nil
}

// Action returns the verifier failure action. AbortProcess is refused: the
// command must never let the native verifier terminate it.
func (c *Config) Action() (enum.VerifierFailureAction, error) {
	switch c.VerifierAction {
	case "ReturnStatus":
		return enum.ReturnStatus, nil
	case "PrintMessage":
		return enum.PrintMessage, nil
	default:
		return 0, fmt.Errorf("config: unsupported verifier action '%s'", c.VerifierAction)
	}
}

// Skipped reports whether a function name matches one of the Skip prefixes.
func (c *Config) Skipped(name string) bool {
	for _, p := range c.Skip {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Copy returns a deep copy, so that concurrent jobs can adjust their own
// options. Nil lists stay nil.
func (c *Config) Copy() Config {
	var out Config
	if err := copier.CopyWithOption(&out, c, copier.Option{DeepCopy: true}); err != nil {
		logger.Warnf("config: copy: %v", err)
		return *c
	}
	keepNil(&out.Clang, c.Clang)
	keepNil(&out.CFlags, c.CFlags)
	keepNil(&out.Skip, c.Skip)
	return out
}

// keepNil undoes the empty slices copier allocates for nil sources.
func keepNil(dst *[]string, src []string) {
	if src == nil {
		*dst = nil
	}
}
