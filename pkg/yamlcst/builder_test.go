// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderTextConcatenation(t *testing.T) {
	b := NewBuilder()
	b.StartNode(Root)
	b.Token(PlainScalar, "a")
	b.Token(Whitespace, " ")
	b.Token(PlainScalar, "b")
	b.FinishNode()

	root := newRedTree(b.Finish())
	require.Equal(t, "a b", root.Text())
	require.Equal(t, 3, len(root.Children()))
}

func TestBuilderCheckpointWrapsRetroactively(t *testing.T) {
	b := NewBuilder()
	b.StartNode(Root)
	cp := b.Checkpoint()
	b.Token(PlainScalar, "key")
	b.StartNodeAt(cp, BlockMapKey)
	b.FinishNode()
	b.Token(Colon, ":")
	b.FinishNode()

	root := newRedTree(b.Finish())
	require.Equal(t, "key:", root.Text())
	require.Equal(t, 2, len(root.Children()))
	require.Equal(t, BlockMapKey, root.Children()[0].Kind())
	require.Equal(t, "key", root.Children()[0].Text())
	require.Equal(t, Colon, root.Children()[1].Kind())
}

func TestBuilderMarkReset(t *testing.T) {
	b := NewBuilder()
	b.StartNode(Root)
	b.Token(PlainScalar, "keep")
	m := b.MarkState()
	b.StartNode(Block)
	b.Token(PlainScalar, "discard")
	b.ResetTo(m)
	b.Token(PlainScalar, "!")
	b.FinishNode()

	root := newRedTree(b.Finish())
	require.Equal(t, "keep!", root.Text())
}

func TestRedTreeNavigation(t *testing.T) {
	tree, err := Parse([]byte("a: b\n"))
	require.NoError(t, err)

	doc := tree.Root.FindChild(Document)
	require.NotNil(t, doc)
	entry := doc.FindChild(Block).FindChild(BlockMap).FindChild(BlockMapEntry)
	require.NotNil(t, entry)

	colon := entry.FindChild(Colon)
	require.NotNil(t, colon)
	require.Equal(t, BlockMapKey, colon.PrevSibling().Kind())
	require.Equal(t, Whitespace, colon.NextSibling().Kind())
	require.Equal(t, Whitespace, colon.NextToken().Kind())
	require.Equal(t, "a", colon.PrevToken().Text())
	require.Equal(t, 1, int(colon.Offset()))
}
