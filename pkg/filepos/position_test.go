// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

func TestIndexPositions(t *testing.T) {
	idx := filepos.NewIndex("ab\ncd\r\nef")

	require.Equal(t, filepos.Position{LineNum: 1, ColNum: 1}, idx.Position(0))
	require.Equal(t, filepos.Position{LineNum: 1, ColNum: 3}, idx.Position(2))
	require.Equal(t, filepos.Position{LineNum: 2, ColNum: 1}, idx.Position(3))
	require.Equal(t, filepos.Position{LineNum: 3, ColNum: 1}, idx.Position(7))
	require.Equal(t, filepos.Position{LineNum: 3, ColNum: 3}, idx.Position(9))
	// past the end clamps
	require.Equal(t, filepos.Position{LineNum: 3, ColNum: 3}, idx.Position(100))
}

func TestIndexColumnsAreCodePoints(t *testing.T) {
	idx := filepos.NewIndex("éé: x")
	// each é is two bytes but one column
	require.Equal(t, filepos.Position{LineNum: 1, ColNum: 3}, idx.Position(4))
}

func TestIndexLine(t *testing.T) {
	idx := filepos.NewIndex("ab\ncd\r\nef")
	require.Equal(t, "ab", idx.Line(1))
	require.Equal(t, "cd", idx.Line(2))
	require.Equal(t, "ef", idx.Line(3))
	require.Equal(t, "", idx.Line(4))
}

func TestRange(t *testing.T) {
	r := filepos.NewRange(2, 5)
	require.Equal(t, 3, r.Len())
	require.True(t, r.Contains(2))
	require.True(t, r.Contains(4))
	require.False(t, r.Contains(5))
	require.Equal(t, "[2,5)", r.String())
}
