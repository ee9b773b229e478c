// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"a\n",
		"a: b\n",
		"a: b\nc: d\n",
		"a:\n  b: c\n",
		"- a\n- b\n",
		"-  a\n-     b",
		"- - a\n  - b\n",
		"key:\n- item\n",
		"key:\n  - item\n",
		"outer:\n    - k1: v1\n      k2: v2\n",
		"[1,\n2,\n3]",
		"[1, 2, 3]\n",
		"[a, [b, c], {d: e}]\n",
		"{k1: v1,\n k2: v2,\n k3: v3}",
		"{a: , b: c}\n",
		"{: v}\n",
		"[]\n",
		"{}\n",
		"[ , ]\n",
		"'single'\n",
		"\"double\"\n",
		"\"esc \\\" aped\"\n",
		"'it''s'\n",
		"a: 'quoted'\nb: \"also\"\n",
		"plain scalar with spaces\n",
		"multi\n  line\n  plain\n",
		"a: |\n  literal\n  text\n",
		"a: >-\n  folded\n  text\n",
		"a: |2\n    indented\n",
		"a: |+\n  keep\n",
		"? explicit\n: value\n",
		"? a\n",
		"&anchor value\n",
		"!tag value\n",
		"!!str value\n",
		"!<verbatim:tag> value\n",
		"&a !t value\n",
		"!t &a value\n",
		"- *alias\n",
		"%YAML 1.2\n---\na: b\n",
		"%TAG !e! tag:example.com,2000:\n---\n- !e!foo bar\n",
		"%FOO bar baz\n---\nx\n",
		"--- a\n",
		"---\na: b\n...\n",
		"a: b\n---\nc: d\n",
		"# comment only\n",
		"a: 1 # inline\n# own line\nb: 2\n",
		"a: 1\n\n\n\nb: 2\n",
		"a: b\r\nc: d\r\n",
		"\uFEFFa: b\n",
		"a: [1, {b: [2]}]\n",
		"[a: b, c]\n",
		"seq:\n- \n- x\n",
		"- # empty with comment\n- x\n",
		"a:\n\tb\n",
		"key: value # trailing\n",
		"'quoted\n  continuation'\n",
		"\"quoted\n  continuation\"\n",
		"....\n",
		"x: ::vector\n",
		"safe:colon\n",
	}

	for _, input := range inputs {
		tree, err := yamlcst.Parse([]byte(input))
		require.NoError(t, err, "input: %q", input)
		require.Equal(t, input, tree.Root.Text(), "input: %q", input)
	}
}

func TestParseRoundTripFuzz(t *testing.T) {
	f := fuzz.New().NumElements(0, 120)

	var s string
	for i := 0; i < 300; i++ {
		f.Fuzz(&s)
		tree, err := yamlcst.Parse([]byte(s))
		if err != nil {
			// fatal errors are allowed; they just produce no tree
			continue
		}
		require.Equal(t, s, tree.Root.Text(), "input: %q", s)
	}
}

func TestParseFatalErrors(t *testing.T) {
	inputs := map[string]yamlcst.ErrorKind{
		"{":          yamlcst.UnterminatedFlowCollection,
		"[1, 2":      yamlcst.UnterminatedFlowCollection,
		"{a: b":      yamlcst.UnterminatedFlowCollection,
		"\"abc":      yamlcst.UnterminatedQuotedScalar,
		"'abc":       yamlcst.UnterminatedQuotedScalar,
		"a: \"b\nc:": yamlcst.UnterminatedQuotedScalar,
	}

	for input, kind := range inputs {
		_, err := yamlcst.Parse([]byte(input))
		require.Error(t, err, "input: %q", input)
		parseErr, ok := err.(*yamlcst.Error)
		require.True(t, ok, "input: %q", input)
		require.Equal(t, kind, parseErr.Kind, "input: %q", input)
		require.Equal(t, yamlcst.SeverityFatal, parseErr.Severity, "input: %q", input)
	}
}

func TestParseRecoveredErrors(t *testing.T) {
	tree, err := yamlcst.Parse([]byte("a:\n\tb\n"))
	require.NoError(t, err)
	require.NotEmpty(t, tree.Errors)
	require.Equal(t, yamlcst.InvalidIndentation, tree.Errors[0].Kind)
	require.Equal(t, yamlcst.SeverityRecovered, tree.Errors[0].Severity)

	tree, err = yamlcst.Parse([]byte("x: \"a\\qb\"\n"))
	require.NoError(t, err)
	require.NotEmpty(t, tree.Errors)
	require.Equal(t, yamlcst.InvalidEscapeSequence, tree.Errors[0].Kind)

	tree, err = yamlcst.Parse([]byte("%YAML 1.9\n---\na\n"))
	require.NoError(t, err)
	require.NotEmpty(t, tree.Errors)
	require.Equal(t, yamlcst.DirectiveSyntax, tree.Errors[0].Kind)
}

func TestParseStructure(t *testing.T) {
	tree, err := yamlcst.Parse([]byte("a: [1, 2]\n"))
	require.NoError(t, err)

	root := tree.Root
	require.Equal(t, yamlcst.Root, root.Kind())

	doc := root.FindChild(yamlcst.Document)
	require.NotNil(t, doc)

	block := doc.FindChild(yamlcst.Block)
	require.NotNil(t, block)

	blockMap := block.FindChild(yamlcst.BlockMap)
	require.NotNil(t, blockMap)

	entry := blockMap.FindChild(yamlcst.BlockMapEntry)
	require.NotNil(t, entry)
	require.Equal(t, "a: [1, 2]", entry.Text())

	key := entry.FindChild(yamlcst.BlockMapKey)
	require.NotNil(t, key)
	require.Equal(t, "a", key.Text())

	value := entry.FindChild(yamlcst.BlockMapValue)
	require.NotNil(t, value)
	require.Equal(t, "[1, 2]", value.Text())

	flow := value.FindChild(yamlcst.Flow)
	require.NotNil(t, flow)
	require.NotNil(t, flow.FindChild(yamlcst.FlowSeq))
}

func TestParseMappingKeyPromotion(t *testing.T) {
	// A plain scalar only becomes a mapping key once the colon is seen.
	tree, err := yamlcst.Parse([]byte("scalar only\n"))
	require.NoError(t, err)
	doc := tree.Root.FindChild(yamlcst.Document)
	require.NotNil(t, doc)
	flow := doc.FindChild(yamlcst.Flow)
	require.NotNil(t, flow)
	require.Nil(t, doc.FindChild(yamlcst.Block))

	tree, err = yamlcst.Parse([]byte("scalar only: value\n"))
	require.NoError(t, err)
	doc = tree.Root.FindChild(yamlcst.Document)
	block := doc.FindChild(yamlcst.Block)
	require.NotNil(t, block)
	blockMap := block.FindChild(yamlcst.BlockMap)
	require.NotNil(t, blockMap)
	entry := blockMap.FindChild(yamlcst.BlockMapEntry)
	require.NotNil(t, entry)
	require.Equal(t, "scalar only", entry.FindChild(yamlcst.BlockMapKey).Text())
}

func TestParseBlockScalarBody(t *testing.T) {
	tree, err := yamlcst.Parse([]byte("a: |\n  one\n  two\nb: c\n"))
	require.NoError(t, err)

	doc := tree.Root.FindChild(yamlcst.Document)
	blockMap := doc.FindChild(yamlcst.Block).FindChild(yamlcst.BlockMap)
	entry := blockMap.FindChild(yamlcst.BlockMapEntry)
	scalar := entry.FindChild(yamlcst.BlockMapValue).FindChild(yamlcst.Block).FindChild(yamlcst.BlockScalar)
	require.NotNil(t, scalar)

	body := scalar.FindChild(yamlcst.BlockScalarText)
	require.NotNil(t, body)
	require.Equal(t, "\n  one\n  two", body.Text())
}

func TestParseAnchorTagOrderPreserved(t *testing.T) {
	for _, input := range []string{"&a !t v\n", "!t &a v\n"} {
		tree, err := yamlcst.Parse([]byte(input))
		require.NoError(t, err, "input: %q", input)
		doc := tree.Root.FindChild(yamlcst.Document)
		flow := doc.FindChild(yamlcst.Flow)
		require.NotNil(t, flow, "input: %q", input)
		props := flow.FindChild(yamlcst.Properties)
		require.NotNil(t, props, "input: %q", input)
		require.Equal(t, input[:5], props.Text(), "input: %q", input)
	}
}
