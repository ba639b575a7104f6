// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger implements a small leveled logger shared by the binding
// layer and the llvmbind command. Output is serialized, so verification
// workers running on separate goroutines can log concurrently.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level represents the amount of detail in which the log is output.
type Level int

const (
	fatal Level = iota
	// ERROR only log errors
	ERROR
	// WARN log warnings and errors
	WARN
	// INFO log information, warnings and errors
	INFO
	// DEBUG log as much as possible
	DEBUG
)

var levelNames = map[string]Level{
	"ERROR": ERROR,
	"WARN":  WARN,
	"INFO":  INFO,
	"DEBUG": DEBUG,
}

// ParseLevel converts a level name (case-insensitive) into a Level.
func ParseLevel(s string) (Level, error) {
	if l, ok := levelNames[strings.ToUpper(s)]; ok {
		return l, nil
	}
	return ERROR, fmt.Errorf("unknown log level '%s'", s)
}

func (l Level) String() string {
	for name, v := range levelNames {
		if v == l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

var (
	mu     sync.Mutex
	out    *bufio.Writer
	level  = ERROR
	failed error
)

func init() {
	out = bufio.NewWriter(os.Stdout)
}

// SetOutput sets the writer to which the output is sent.
// If w is nil, no output is shown.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		out = nil
		return
	}
	out = bufio.NewWriter(w)
}

// SetLevel reconfigures the level of the logger.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// GetLevel returns the current level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// Err returns the first write error encountered, if any.
func Err() error {
	mu.Lock()
	defer mu.Unlock()
	return failed
}

func enabled(l Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil && level >= l
}

// Error works as fmt.Println when the level is ERROR or above.
func Error(args ...any) {
	if enabled(ERROR) {
		Println(args...)
	}
}

// Errorf works as fmt.Printf, but it adds a newline at the end of the format string.
func Errorf(format string, args ...any) {
	if enabled(ERROR) {
		Printf(format+"\n", args...)
	}
}

// Warn works as fmt.Println when the level is WARN or above.
func Warn(args ...any) {
	if enabled(WARN) {
		Println(args...)
	}
}

// Warnf works as fmt.Printf when the level is WARN or above. It adds a newline at the end of the format string.
func Warnf(format string, args ...any) {
	if enabled(WARN) {
		Printf(format+"\n", args...)
	}
}

// Info works as fmt.Println when the level is INFO or above.
func Info(args ...any) {
	if enabled(INFO) {
		Println(args...)
	}
}

// Infof works as fmt.Printf when the level is INFO or above. It adds a newline at the end of the format string.
func Infof(format string, args ...any) {
	if enabled(INFO) {
		Printf(format+"\n", args...)
	}
}

// Debug works as fmt.Println when the level is DEBUG.
func Debug(args ...any) {
	if enabled(DEBUG) {
		Println(args...)
	}
}

// Debugf works as fmt.Printf when the level is DEBUG. It adds a newline at the end of the format string.
func Debugf(format string, args ...any) {
	if enabled(DEBUG) {
		Printf(format+"\n", args...)
	}
}

// Print works as fmt.Print, but flushes the output.
func Print(args ...any) {
	write(fmt.Sprint(args...))
}

// Println works as fmt.Println, but flushes the output.
func Println(args ...any) {
	write(fmt.Sprintln(args...))
}

// Printf works as fmt.Printf, but flushes the output.
func Printf(format string, args ...any) {
	write(fmt.Sprintf(format, args...))
}

func write(s string) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return
	}
	if _, err := out.WriteString(s); err != nil && failed == nil {
		failed = err
	}
	if err := out.Flush(); err != nil && failed == nil {
		failed = err
	}
}
