// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"prettyyaml.dev/prettyyaml/pkg/prettyprint"
	"prettyyaml.dev/prettyyaml/pkg/yamlast"
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

// FormatText parses src and renders it under the given options. Recovered
// parse diagnostics do not prevent formatting; fatal ones (unterminated
// quoted scalars or flow collections) are returned as an error, as are
// invalid options.
func FormatText(src []byte, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if len(src) == 0 {
		return "", nil
	}
	tree, err := yamlcst.Parse(src)
	if err != nil {
		return "", err
	}
	root, ok := yamlast.NewRoot(tree.Root)
	if !ok {
		return "", nil
	}
	return PrintTree(root, opts), nil
}

// PrintTree renders an already-parsed tree. It never fails: parse
// diagnostics are embedded in the tree and simply formatted around.
func PrintTree(root yamlast.Root, opts Options) string {
	p := newPrinter(&opts)
	doc := p.root(root)
	return prettyprint.Print(doc, prettyprint.PrintOptions{
		Width:                  opts.PrintWidth,
		IndentKind:             indentKind(opts.UseTabs),
		TabSize:                opts.IndentWidth,
		LineBreak:              opts.lineBreakString(),
		TrimTrailingWhitespace: opts.TrimTrailingWhitespaces,
	})
}

func indentKind(useTabs bool) prettyprint.IndentKind {
	if useTabs {
		return prettyprint.IndentTabs
	}
	return prettyprint.IndentSpaces
}
