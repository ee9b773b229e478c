// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

// LeadingTrivia returns the run of whitespace and comment siblings directly
// before n, in source order.
func LeadingTrivia(n *yamlcst.Node) []*yamlcst.Node {
	var rev []*yamlcst.Node
	for prev := n.PrevSibling(); prev != nil && prev.Kind().IsTrivia(); prev = prev.PrevSibling() {
		rev = append(rev, prev)
	}
	out := make([]*yamlcst.Node, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

// TrailingTrivia returns the run of whitespace and comment siblings directly
// after n, in source order.
func TrailingTrivia(n *yamlcst.Node) []*yamlcst.Node {
	var out []*yamlcst.Node
	for next := n.NextSibling(); next != nil && next.Kind().IsTrivia(); next = next.NextSibling() {
		out = append(out, next)
	}
	return out
}
