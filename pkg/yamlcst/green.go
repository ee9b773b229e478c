// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import "strings"

// green is an immutable syntax node. Tokens carry text; branches carry
// children. The total text of a branch is the concatenation of its
// children's text, which keeps the tree lossless by construction.
type green struct {
	kind     SyntaxKind
	text     string
	children []*green
	textLen  int
}

func newGreenToken(kind SyntaxKind, text string) *green {
	return &green{kind: kind, text: text, textLen: len(text)}
}

func newGreenBranch(kind SyntaxKind, children []*green) *green {
	total := 0
	for _, c := range children {
		total += c.textLen
	}
	return &green{kind: kind, children: children, textLen: total}
}

func (g *green) isToken() bool { return g.children == nil && !g.kind.isBranchKind() }

func (g *green) writeText(sb *strings.Builder) {
	if g.children == nil {
		sb.WriteString(g.text)
		return
	}
	for _, c := range g.children {
		c.writeText(sb)
	}
}

func (k SyntaxKind) isBranchKind() bool { return k >= Properties }
