// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"prettyyaml.dev/prettyyaml/pkg/cmd/ui"
	"prettyyaml.dev/prettyyaml/pkg/yamlfmt"
)

func TestLoadOptionsDefaultsWhenNoConfig(t *testing.T) {
	opts, err := LoadOptions("", ui.NewTTY(false))
	require.NoError(t, err)
	require.Equal(t, yamlfmt.DefaultOptions(), opts)
}

func TestLoadOptionsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	config := "printWidth = 100\nquotes = \"preferSingle\"\nindentWidth = 4\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0600))

	opts, err := LoadOptions(path, ui.NewTTY(false))
	require.NoError(t, err)
	require.Equal(t, 100, opts.PrintWidth)
	require.Equal(t, yamlfmt.QuotesPreferSingle, opts.Quotes)
	require.Equal(t, 4, opts.IndentWidth)
	// untouched options keep their defaults
	require.True(t, opts.TrailingComma)
	require.True(t, opts.BraceSpacing)
}

func TestLoadOptionsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	config := "printWidth: 120\ntrimTrailingZero: true\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0600))

	opts, err := LoadOptions(path, ui.NewTTY(false))
	require.NoError(t, err)
	require.Equal(t, 120, opts.PrintWidth)
	require.True(t, opts.TrimTrailingZero)
}

func TestLoadOptionsRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("indentWidth = 0\n"), 0600))

	_, err := LoadOptions(path, ui.NewTTY(false))
	require.Error(t, err)
	require.Contains(t, err.Error(), "indentWidth")
}

func TestOptionsFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("printWidth", "60")
	query.Set("quotes", "forceSingle")
	query.Set("preferSingleLine", "true")

	opts, err := optionsFromQuery(query)
	require.NoError(t, err)
	require.Equal(t, 60, opts.PrintWidth)
	require.Equal(t, yamlfmt.QuotesForceSingle, opts.Quotes)
	require.True(t, opts.PreferSingleLine)

	_, err = optionsFromQuery(url.Values{"nope": []string{"1"}})
	require.Error(t, err)

	_, err = optionsFromQuery(url.Values{"quotes": []string{"sideways"}})
	require.Error(t, err)
}
