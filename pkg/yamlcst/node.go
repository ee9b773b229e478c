// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	"strings"

	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

// Node is the red view over a green node: it knows its parent, its index
// among siblings and its absolute byte offset in the source. Tokens and
// branches are both Nodes; IsToken distinguishes them.
type Node struct {
	green    *green
	parent   *Node
	index    int
	offset   filepos.Pos
	children []*Node
}

func newRedTree(root *green) *Node {
	n := &Node{green: root}
	n.materialize()
	return n
}

func (n *Node) materialize() {
	offset := n.offset
	for i, g := range n.green.children {
		child := &Node{green: g, parent: n, index: i, offset: offset}
		offset += filepos.Pos(g.textLen)
		n.children = append(n.children, child)
		child.materialize()
	}
}

func (n *Node) Kind() SyntaxKind { return n.green.kind }

func (n *Node) IsToken() bool { return n.green.isToken() }

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Index() int { return n.index }

func (n *Node) Offset() filepos.Pos { return n.offset }

func (n *Node) Range() filepos.Range {
	return filepos.NewRange(n.offset, n.offset+filepos.Pos(n.green.textLen))
}

func (n *Node) TextLen() int { return n.green.textLen }

// Text returns the exact source text covered by this node.
func (n *Node) Text() string {
	if n.IsToken() {
		return n.green.text
	}
	var sb strings.Builder
	sb.Grow(n.green.textLen)
	n.green.writeText(&sb)
	return sb.String()
}

// Children returns all children, tokens included.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

func (n *Node) NextSibling() *Node {
	if n.parent == nil || n.index+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[n.index+1]
}

func (n *Node) PrevSibling() *Node {
	if n.parent == nil || n.index == 0 {
		return nil
	}
	return n.parent.children[n.index-1]
}

// FollowingSiblings returns the siblings after this node, in order.
func (n *Node) FollowingSiblings() []*Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.children[n.index+1:]
}

// NextToken returns the next token in tree order after this node.
func (n *Node) NextToken() *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if sib := cur.NextSibling(); sib != nil {
			return sib.firstToken()
		}
	}
	return nil
}

// PrevToken returns the previous token in tree order before this node.
func (n *Node) PrevToken() *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if sib := cur.PrevSibling(); sib != nil {
			return sib.lastToken()
		}
	}
	return nil
}

func (n *Node) firstToken() *Node {
	cur := n
	for !cur.IsToken() {
		if len(cur.children) == 0 {
			return nil
		}
		cur = cur.children[0]
	}
	return cur
}

func (n *Node) lastToken() *Node {
	cur := n
	for !cur.IsToken() {
		if len(cur.children) == 0 {
			return nil
		}
		cur = cur.children[len(cur.children)-1]
	}
	return cur
}

// FindChild returns the first child (token or branch) of the given kind.
func (n *Node) FindChild(kind SyntaxKind) *Node {
	for _, c := range n.children {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// ContainsLineBreakToken reports whether any token directly under this node
// contains a line break.
func (n *Node) ContainsLineBreakToken() bool {
	for _, c := range n.children {
		if c.IsToken() && strings.ContainsAny(c.Text(), "\n\r") {
			return true
		}
	}
	return false
}
