// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prettyyaml.dev/prettyyaml/pkg/yamlfmt"
)

func TestOptionsValidate(t *testing.T) {
	opts := yamlfmt.DefaultOptions()
	require.NoError(t, opts.Validate())

	opts = yamlfmt.DefaultOptions()
	opts.IndentWidth = 0
	require.Error(t, opts.Validate())

	opts = yamlfmt.DefaultOptions()
	opts.PrintWidth = -1
	require.Error(t, opts.Validate())

	opts = yamlfmt.DefaultOptions()
	opts.Quotes = "sideways"
	require.Error(t, opts.Validate())

	for _, quotes := range []yamlfmt.Quotes{
		yamlfmt.QuotesPreferDouble, yamlfmt.QuotesPreferSingle,
		yamlfmt.QuotesForceDouble, yamlfmt.QuotesForceSingle,
	} {
		opts = yamlfmt.DefaultOptions()
		opts.Quotes = quotes
		require.NoError(t, opts.Validate(), "quotes: %s", quotes)
	}
}

func TestOptionsRequiredVersion(t *testing.T) {
	opts := yamlfmt.DefaultOptions()
	opts.RequiredVersion = ">= 0.1.0"
	require.NoError(t, opts.Validate())

	opts.RequiredVersion = ">= 99.0.0"
	err := opts.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "required version")

	opts.RequiredVersion = "not-a-constraint-%%"
	require.Error(t, opts.Validate())
}

func TestPerKindPreferSingleLineOverrides(t *testing.T) {
	yes := true

	// map override only: the sequence still breaks on source line break
	opts := yamlfmt.DefaultOptions()
	opts.FlowMapPreferSingleLine = &yes
	out, err := yamlfmt.FormatText([]byte("{\na: 1}"), opts)
	require.NoError(t, err)
	require.Equal(t, "{ a: 1 }\n", out)

	out, err = yamlfmt.FormatText([]byte("[\n1]"), opts)
	require.NoError(t, err)
	require.Equal(t, "[\n  1,\n]\n", out)

	// sequence override
	opts = yamlfmt.DefaultOptions()
	opts.FlowSequencePreferSingleLine = &yes
	out, err = yamlfmt.FormatText([]byte("[\n1]"), opts)
	require.NoError(t, err)
	require.Equal(t, "[1]\n", out)
}
