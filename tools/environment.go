// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// Envvar is a registered environment variable.
type Envvar struct {
	Name string
	Defv string
	Desc string
}

var (
	envMu   sync.Mutex
	envvars = make(map[string]Envvar)
)

// RegEnv registers an environment variable with its default value and a
// description shown in the command help.
func RegEnv(name, defv, desc string) {
	envMu.Lock()
	defer envMu.Unlock()
	envvars[name] = Envvar{Name: name, Defv: defv, Desc: desc}
}

// GetEnv returns the value of a registered variable, or its default when it
// is not set. Unregistered variables are read as is.
func GetEnv(name string) string {
	if v, ok := os.LookupEnv(name); ok { //permit:os.LookupEnv
		return v
	}
	envMu.Lock()
	defer envMu.Unlock()
	return envvars[name].Defv
}

// LookupEnv returns the value of a variable and whether it is set.
func LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name) //permit:os.LookupEnv
}

// GetEnvvars returns the registered variables sorted by name.
func GetEnvvars() []Envvar {
	envMu.Lock()
	defer envMu.Unlock()
	var out []Envvar
	for _, ev := range envvars {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindCmd looks for the value of an environment variable.
// If not set returns a default value.
func FindCmd(envVar string, defaultVal ...string) ([]string, error) {
	if cmd, has := LookupEnv(envVar); has {
		return strings.Fields(cmd), nil
	}
	return defaultVal, nil
}
