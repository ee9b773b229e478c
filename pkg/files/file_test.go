// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"prettyyaml.dev/prettyyaml/pkg/files"
)

func TestNewSortedFilesFromPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("b: 1\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("a: 1\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0600))

	collected, err := files.NewSortedFilesFromPaths([]string{dir})
	require.NoError(t, err)
	require.Len(t, collected, 2)
	require.Equal(t, filepath.Join(dir, "a.yaml"), collected[0].Path())
	require.Equal(t, filepath.Join(dir, "b.yml"), collected[1].Path())

	data, err := collected[0].Bytes()
	require.NoError(t, err)
	require.Equal(t, "a: 1\n", string(data))
}

func TestFileReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x:   1\n"), 0600))

	collected, err := files.NewSortedFilesFromPaths([]string{path})
	require.NoError(t, err)
	require.Len(t, collected, 1)

	require.NoError(t, collected[0].Replace([]byte("x: 1\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "x: 1\n", string(data))
}

func TestMissingPathErrors(t *testing.T) {
	_, err := files.NewSortedFilesFromPaths([]string{"does-not-exist.yaml"})
	require.Error(t, err)
}
