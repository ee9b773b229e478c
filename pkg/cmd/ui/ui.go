// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
	Warnf(str string, args ...interface{})
	Diagnosticf(sev yamlcst.Severity, str string, args ...interface{})
}
