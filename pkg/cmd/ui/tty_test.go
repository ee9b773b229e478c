// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"prettyyaml.dev/prettyyaml/pkg/cmd/ui"
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

func TestTTYWriters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	tty := ui.NewCustomWriterTTY(false, &stdout, &stderr)

	tty.Printf("out %d\n", 1)
	tty.Warnf("warn\n")
	tty.Debugf("hidden\n")

	require.Equal(t, "out 1\n", stdout.String())
	require.Equal(t, "warn\n", stderr.String())

	var debugErr bytes.Buffer
	ui.NewCustomWriterTTY(true, nil, &debugErr).Debugf("shown\n")
	require.Equal(t, "shown\n", debugErr.String())
}

func TestTTYDiagnosticf(t *testing.T) {
	var stderr bytes.Buffer
	tty := ui.NewCustomWriterTTY(false, nil, &stderr)

	tty.Diagnosticf(yamlcst.SeverityRecovered, "in.yaml:1:2: %s", "tab character used for indentation")
	require.Equal(t, "Warning: in.yaml:1:2: tab character used for indentation\n", stderr.String())

	stderr.Reset()
	tty.Diagnosticf(yamlcst.SeverityFatal, "boom")
	require.Equal(t, "Error: boom\n", stderr.String())
}
