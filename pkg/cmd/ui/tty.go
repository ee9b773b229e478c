// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

// diagWrapWidth bounds parse-diagnostic lines so long messages stay
// readable on narrow terminals.
const diagWrapWidth = 100

type TTY struct {
	debug  bool
	stdout io.Writer
	stderr io.Writer
}

var _ UI = TTY{}

func NewTTY(debug bool) TTY {
	return TTY{debug, os.Stdout, os.Stderr}
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	fmt.Fprintf(t.stderr, str, args...)
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.stderr, str, args...)
	}
}

// Diagnosticf prints one parser diagnostic. Recovered diagnostics are
// warnings (formatting still proceeds); fatal ones are errors.
func (t TTY) Diagnosticf(sev yamlcst.Severity, str string, args ...interface{}) {
	label := "Warning"
	if sev == yamlcst.SeverityFatal {
		label = "Error"
	}
	msg := wordwrap.WrapString(fmt.Sprintf(str, args...), diagWrapWidth)
	fmt.Fprintf(t.stderr, "%s: %s\n", label, strings.TrimRight(msg, "\n"))
}

// Used for testing whether TTY writes correct output to stdout/stderr
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return TTY{debug, stdout, stderr}
}
