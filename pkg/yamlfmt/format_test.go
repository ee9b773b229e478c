// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"prettyyaml.dev/prettyyaml/pkg/yamlast"
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
	"prettyyaml.dev/prettyyaml/pkg/yamlfmt"
)

func format(t *testing.T, input string, adjust func(*yamlfmt.Options)) string {
	t.Helper()
	opts := yamlfmt.DefaultOptions()
	if adjust != nil {
		adjust(&opts)
	}
	out, err := yamlfmt.FormatText([]byte(input), opts)
	require.NoError(t, err, "input: %q", input)
	return out
}

func TestFormatScenarios(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		adjust func(*yamlfmt.Options)
		output string
	}{
		{
			name:   "normalizes sequence spacing",
			input:  "-  a\n-     b",
			output: "- a\n- b\n",
		},
		{
			name:   "joins flow sequence that fits",
			input:  "[1,\n2,\n3]",
			output: "[1, 2, 3]\n",
		},
		{
			name:   "breaks flow map over narrow width",
			input:  "{k1: v1,\n k2: v2,\n k3: v3}",
			adjust: func(o *yamlfmt.Options) { o.PrintWidth = 10 },
			output: "{\n  k1: v1,\n  k2: v2,\n  k3: v3,\n}\n",
		},
		{
			name:   "sequence in map without extra indent",
			input:  "key:\n- item\n",
			adjust: func(o *yamlfmt.Options) { o.IndentBlockSequenceInMap = false },
			output: "key:\n- item\n",
		},
		{
			name:   "sequence in map with indent",
			input:  "key:\n- item\n",
			output: "key:\n  - item\n",
		},
		{
			name:  "dash spacing indent",
			input: "outer:\n    - k1: v1\n      k2: v2\n",
			adjust: func(o *yamlfmt.Options) {
				o.IndentWidth = 4
				o.DashSpacing = yamlfmt.DashSpacingIndent
			},
			output: "outer:\n    -   k1: v1\n        k2: v2\n",
		},
		{
			name:   "single to double quotes",
			input:  "- 'text'",
			output: "- \"text\"\n",
		},
		{
			name:   "quote conversion blocked by apostrophe",
			input:  "- \"it's\"",
			adjust: func(o *yamlfmt.Options) { o.Quotes = yamlfmt.QuotesPreferSingle },
			output: "- \"it's\"\n",
		},
		{
			name:   "trailing zero trimming",
			input:  "- 1.20\n- 1.0\n",
			adjust: func(o *yamlfmt.Options) { o.TrimTrailingZero = true },
			output: "- 1.2\n- 1\n",
		},
		{
			name:   "simple map unchanged",
			input:  "a: b\nc: d\n",
			output: "a: b\nc: d\n",
		},
		{
			name:   "inline comment kept",
			input:  "x: 1 # hi\n",
			output: "x: 1 # hi\n",
		},
		{
			name:   "blank lines collapse to one",
			input:  "a: 1\n\n\n\nb: 2\n",
			output: "a: 1\n\nb: 2\n",
		},
		{
			name:   "crlf input normalized to lf",
			input:  "a: b\r\nc: d\r\n",
			output: "a: b\nc: d\n",
		},
		{
			name:   "crlf output",
			input:  "a: b\nc: d\n",
			adjust: func(o *yamlfmt.Options) { o.LineBreak = yamlfmt.LineBreakCrlf },
			output: "a: b\r\nc: d\r\n",
		},
		{
			name:   "empty flow collections",
			input:  "a: {}\nb: []\n",
			output: "a: {}\nb: []\n",
		},
		{
			name:   "brace spacing",
			input:  "m: {a: 1}\n",
			output: "m: { a: 1 }\n",
		},
		{
			name:   "no bracket spacing by default",
			input:  "s: [1, 2]\n",
			output: "s: [1, 2]\n",
		},
		{
			name:   "bracket spacing enabled",
			input:  "s: [1, 2]\n",
			adjust: func(o *yamlfmt.Options) { o.BracketSpacing = true },
			output: "s: [ 1, 2 ]\n",
		},
		{
			name:   "format comments adds space",
			input:  "#x\ny: 1\n",
			adjust: func(o *yamlfmt.Options) { o.FormatComments = true },
			output: "# x\ny: 1\n",
		},
		{
			name:   "comments already spaced untouched",
			input:  "# x\ny: 1\n",
			adjust: func(o *yamlfmt.Options) { o.FormatComments = true },
			output: "# x\ny: 1\n",
		},
		{
			name:   "block scalar body verbatim",
			input:  "a: |\n  one\n  two\n",
			output: "a: |\n  one\n  two\n",
		},
		{
			name:   "block scalar chomping kept",
			input:  "a: |-\n  text\n",
			output: "a: |-\n  text\n",
		},
		{
			name:   "explicit key becomes implicit",
			input:  "? a\n: b\n",
			output: "a: b\n",
		},
		{
			name:   "explicit key without value stays explicit",
			input:  "? a\n",
			output: "? a\n",
		},
		{
			name:   "anchor and alias preserved",
			input:  "a: &x 1\nb: *x\n",
			output: "a: &x 1\nb: *x\n",
		},
		{
			name:   "tag before anchor order kept",
			input:  "a: !t &n v\n",
			output: "a: !t &n v\n",
		},
		{
			name:   "anchor before tag order kept",
			input:  "a: &n !t v\n",
			output: "a: &n !t v\n",
		},
		{
			name:   "document markers",
			input:  "---\na: b\n...\n",
			output: "---\na: b\n...\n",
		},
		{
			name:   "bom preserved",
			input:  "\uFEFFa: b\n",
			output: "\uFEFFa: b\n",
		},
		{
			name:   "missing final newline added",
			input:  "a: b",
			output: "a: b\n",
		},
		{
			name:   "prefer single line flow map",
			input:  "{\nk: v}",
			adjust: func(o *yamlfmt.Options) { o.PreferSingleLine = true },
			output: "{ k: v }\n",
		},
		{
			name:   "newline after opener forces break",
			input:  "{\nk: v}",
			output: "{\n  k: v,\n}\n",
		},
		{
			name:   "no trailing comma when disabled",
			input:  "{\nk: v}",
			adjust: func(o *yamlfmt.Options) { o.TrailingComma = false },
			output: "{\n  k: v\n}\n",
		},
		{
			name:   "force single quotes escapes apostrophes",
			input:  "- \"a'b\"\n",
			adjust: func(o *yamlfmt.Options) { o.Quotes = yamlfmt.QuotesForceSingle },
			output: "- 'a''b'\n",
		},
		{
			name:   "force double quotes unescapes apostrophes",
			input:  "- 'a''b'\n",
			adjust: func(o *yamlfmt.Options) { o.Quotes = yamlfmt.QuotesForceDouble },
			output: "- \"a'b\"\n",
		},
		{
			name:   "prose wrap always",
			input:  "msg: one two three four five six\n",
			adjust: func(o *yamlfmt.Options) { o.ProseWrap = yamlfmt.ProseWrapAlways; o.PrintWidth = 20 },
			output: "msg: one two three\n  four five six\n",
		},
		{
			name:   "use tabs",
			input:  "a:\n  b: c\n",
			adjust: func(o *yamlfmt.Options) { o.UseTabs = true },
			output: "a:\n\tb: c\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.output, format(t, test.input, test.adjust))
		})
	}
}

func TestFormatEmptyInput(t *testing.T) {
	require.Equal(t, "", format(t, "", nil))
}

func TestFormatFatalError(t *testing.T) {
	_, err := yamlfmt.FormatText([]byte("{"), yamlfmt.DefaultOptions())
	require.Error(t, err)
	parseErr, ok := err.(*yamlcst.Error)
	require.True(t, ok)
	require.Equal(t, yamlcst.UnterminatedFlowCollection, parseErr.Kind)
}

func TestFormatRejectsZeroIndentWidth(t *testing.T) {
	opts := yamlfmt.DefaultOptions()
	opts.IndentWidth = 0
	_, err := yamlfmt.FormatText([]byte("a: b\n"), opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "indentWidth")
}

func TestFormatIdempotence(t *testing.T) {
	inputs := []string{
		"a: b\nc: d\n",
		"-  a\n-     b",
		"[1,\n2,\n3]",
		"key:\n- item\n",
		"x: 1 # hi\n",
		"a: |\n  one\n  two\n",
		"a: 1\n\n\nb: 2\n",
		"{\nk: v}",
		"? a\n: b\n",
		"nested:\n  map:\n    - 1\n    - {a: b}\n",
	}
	for _, input := range inputs {
		once := format(t, input, nil)
		twice := format(t, once, nil)
		require.Equal(t, once, twice, "input: %q", input)
	}
}

func TestFormatLineBreakUniformity(t *testing.T) {
	input := "a: b\r\nc: |\r\n  x\r\nd: 'q\r\n  r'\r\n"

	out := format(t, input, nil)
	require.NotContains(t, out, "\r")

	out = format(t, input, func(o *yamlfmt.Options) { o.LineBreak = yamlfmt.LineBreakCrlf })
	require.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\r")
	require.True(t, strings.HasSuffix(out, "\r\n"))
}

func TestFormatNoTrailingWhitespace(t *testing.T) {
	input := "a: b   \nc:   \n  d: e\n"
	out := format(t, input, nil)
	for _, line := range strings.Split(out, "\n") {
		require.Equal(t, strings.TrimRight(line, " \t"), line)
	}
}

func TestFormatCommentBodiesPreserved(t *testing.T) {
	input := "# top\na: 1 # inline\n\n# section\nb: 2\n"
	out := format(t, input, nil)
	for _, body := range []string{"# top", "# inline", "# section"} {
		require.Equal(t, 1, strings.Count(out, body), "comment %q", body)
	}
}

func TestFormatIgnoreDirective(t *testing.T) {
	input := "a: 1\n# pretty-yaml-ignore\nb:    2\n"
	out := format(t, input, nil)
	require.Equal(t, "a: 1\n# pretty-yaml-ignore\nb:    2\n", out)

	input = "# pretty-yaml-ignore\nk:   [1,2]\n"
	out = format(t, input, nil)
	require.Equal(t, "# pretty-yaml-ignore\nk:   [1,2]\n", out)

	// custom directive
	input = "# fmt-off\nk:   1\n"
	out = format(t, input, func(o *yamlfmt.Options) { o.IgnoreCommentDirective = "fmt-off" })
	require.Equal(t, "# fmt-off\nk:   1\n", out)
}

func TestPrintTreeNeverFails(t *testing.T) {
	// recovered errors are embedded in the tree and formatted around
	tree, err := yamlcst.Parse([]byte("a:\n\tb\n"))
	require.NoError(t, err)
	require.NotEmpty(t, tree.Errors)

	root, ok := yamlast.NewRoot(tree.Root)
	require.True(t, ok)
	require.NotEmpty(t, yamlfmt.PrintTree(root, yamlfmt.DefaultOptions()))

	out, err := yamlfmt.FormatText([]byte("a:\n\tb\n"), yamlfmt.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
