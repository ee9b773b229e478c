// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package prettyprint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	pp "prettyyaml.dev/prettyyaml/pkg/prettyprint"
)

func defaultOpts() pp.PrintOptions {
	return pp.PrintOptions{Width: 80, TabSize: 2, LineBreak: "\n"}
}

func listDoc() *pp.Doc {
	return pp.Group(pp.Concat(
		pp.Text("["),
		pp.Nest(2, pp.Concat(
			pp.LineOrNil(),
			pp.Text("aaa"),
			pp.Text(","),
			pp.LineOrSpace(),
			pp.Text("bbb"),
			pp.IfBreak(pp.Nil(), pp.Text(",")),
		)),
		pp.LineOrNil(),
		pp.Text("]"),
	))
}

func TestGroupFitsFlat(t *testing.T) {
	out := pp.Print(listDoc(), defaultOpts())
	require.Equal(t, "[aaa, bbb]", out)
}

func TestGroupBreaks(t *testing.T) {
	opts := defaultOpts()
	opts.Width = 6
	out := pp.Print(listDoc(), opts)
	require.Equal(t, "[\n  aaa,\n  bbb,\n]", out)
}

func TestHardLineForcesBreak(t *testing.T) {
	doc := pp.Group(pp.Concat(
		pp.Text("{"),
		pp.Nest(2, pp.Concat(pp.LineOrSpace(), pp.Text("a"), pp.HardLine(), pp.Text("b"))),
		pp.LineOrSpace(),
		pp.Text("}"),
	))
	out := pp.Print(doc, defaultOpts())
	require.Equal(t, "{\n  a\n  b\n}", out)
}

func TestEmptyLineEmitsNoIndent(t *testing.T) {
	doc := pp.Nest(4, pp.Concat(pp.Text("a"), pp.EmptyLine(), pp.HardLine(), pp.Text("b")))
	out := pp.Print(doc, defaultOpts())
	require.Equal(t, "a\n\n    b", out)
}

func TestNestedGroupsBreakIndependently(t *testing.T) {
	inner := pp.Group(pp.Concat(pp.Text("["), pp.LineOrNil(), pp.Text("x"), pp.LineOrNil(), pp.Text("]")))
	doc := pp.Group(pp.Concat(
		pp.Text("start"),
		pp.Nest(2, pp.Concat(pp.LineOrSpace(), pp.Text("aaaaaaaaaa"), pp.LineOrSpace(), inner)),
	))
	opts := defaultOpts()
	opts.Width = 12
	out := pp.Print(doc, opts)
	require.Equal(t, "start\n  aaaaaaaaaa\n  [x]", out)
}

func TestFill(t *testing.T) {
	words := []*pp.Doc{
		pp.Text("one"), pp.Text("two"), pp.Text("three"), pp.Text("four"), pp.Text("five"),
	}
	opts := defaultOpts()
	opts.Width = 12
	out := pp.Print(pp.Fill(words), opts)
	require.Equal(t, "one two\nthree four\nfive", out)
}

func TestTabsIndent(t *testing.T) {
	doc := pp.Nest(4, pp.Concat(pp.Text("a:"), pp.HardLine(), pp.Text("b")))
	opts := defaultOpts()
	opts.IndentKind = pp.IndentTabs
	opts.TabSize = 2
	out := pp.Print(doc, opts)
	require.Equal(t, "a:\n\t\tb", out)
}

func TestCrlfLineBreaks(t *testing.T) {
	doc := pp.Concat(pp.Text("a"), pp.HardLine(), pp.Text("b"))
	opts := defaultOpts()
	opts.LineBreak = "\r\n"
	out := pp.Print(doc, opts)
	require.Equal(t, "a\r\nb", out)
}

func TestTrimTrailingWhitespace(t *testing.T) {
	doc := pp.Concat(pp.Text("a:  "), pp.HardLine(), pp.Text("b"))
	opts := defaultOpts()
	opts.TrimTrailingWhitespace = true
	out := pp.Print(doc, opts)
	require.Equal(t, "a:\nb", out)

	opts.TrimTrailingWhitespace = false
	out = pp.Print(pp.Concat(pp.Text("a:  "), pp.HardLine(), pp.Text("b")), opts)
	require.Equal(t, "a:  \nb", out)
}

func TestWidthCountsCodePoints(t *testing.T) {
	// Five two-byte runes plus " x" are seven code points and fit a width of 7.
	doc := pp.Group(pp.Concat(pp.Text("ééééé"), pp.LineOrSpace(), pp.Text("x")))
	opts := defaultOpts()
	opts.Width = 7
	out := pp.Print(doc, opts)
	require.Equal(t, "ééééé x", out)
}
