// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prettyyaml.dev/prettyyaml/pkg/yamlast"
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

func mustParse(t *testing.T, src string) yamlast.Root {
	t.Helper()
	tree, err := yamlcst.Parse([]byte(src))
	require.NoError(t, err)
	root, ok := yamlast.NewRoot(tree.Root)
	require.True(t, ok)
	return root
}

func TestTypedAccessors(t *testing.T) {
	root := mustParse(t, "a: 1\nb:\n  - x\n  - y\n")

	docs := root.Documents()
	require.Len(t, docs, 1)

	body := docs[0].Body()
	require.NotNil(t, body)
	require.Equal(t, yamlcst.Block, body.Kind())

	blockMap, ok := yamlast.NewBlock(body).BlockMap()
	require.True(t, ok)

	entries := blockMap.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "a", entries[0].Key().Text())
	require.Equal(t, "1", entries[0].Value().Text())
	require.Equal(t, "b", entries[1].Key().Text())

	valueBlock := yamlast.NewBlock(entries[1].Value().FindChild(yamlcst.Block))
	seq, ok := valueBlock.BlockSeq()
	require.True(t, ok)
	seqEntries := seq.Entries()
	require.Len(t, seqEntries, 2)
	require.Equal(t, "x", seqEntries[0].Flow().Text())
	require.Equal(t, "y", seqEntries[1].Flow().Text())
}

func TestFlowAccessors(t *testing.T) {
	root := mustParse(t, "[1, {k: v}]\n")

	body := root.Documents()[0].Body()
	require.Equal(t, yamlcst.Flow, body.Kind())

	flow := yamlast.NewFlow(body)
	seq := yamlast.NewFlowSeq(flow.FlowSeq())
	require.NotNil(t, seq.LBracket())
	require.NotNil(t, seq.RBracket())

	entries := yamlast.FlowSeqEntriesOf(seq.Entries())
	require.Len(t, entries, 2)
	require.Equal(t, "1", entries[0].Flow().Text())

	innerMap := yamlast.NewFlowMap(yamlast.NewFlow(entries[1].Flow()).FlowMap())
	mapEntries := yamlast.FlowMapEntriesOf(innerMap.Entries())
	require.Len(t, mapEntries, 1)
	require.Equal(t, "k", mapEntries[0].Key().Text())
	require.Equal(t, "v", mapEntries[0].Value().Text())
}

func TestTriviaQueries(t *testing.T) {
	root := mustParse(t, "a: 1 # note\nb: 2\n")

	blockMap, ok := yamlast.NewBlock(root.Documents()[0].Body()).BlockMap()
	require.True(t, ok)
	entries := blockMap.Entries()
	require.Len(t, entries, 2)

	trailing := yamlast.TrailingTrivia(entries[0].Syntax())
	var comments []string
	for _, tr := range trailing {
		if tr.Kind() == yamlcst.Comment {
			comments = append(comments, tr.Text())
		}
	}
	require.Equal(t, []string{"# note"}, comments)

	leading := yamlast.LeadingTrivia(entries[1].Syntax())
	require.NotEmpty(t, leading)
	require.Equal(t, yamlcst.Whitespace, leading[len(leading)-1].Kind())
}

func TestPropertiesAccessors(t *testing.T) {
	root := mustParse(t, "!tag &name value\n")

	flow := yamlast.NewFlow(root.Documents()[0].Body())
	props := yamlast.NewProperties(flow.Properties())
	require.NotNil(t, props.Tag())
	require.NotNil(t, props.Anchor())

	anchor := yamlast.NewAnchorProperty(props.Anchor())
	require.Equal(t, "name", anchor.AnchorName().Text())

	tag := yamlast.NewTagProperty(props.Tag())
	shorthand := yamlast.NewShorthandTag(tag.ShorthandTag())
	require.Equal(t, "tag", shorthand.TagChar().Text())
}
