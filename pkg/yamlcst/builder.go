// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import "fmt"

// Builder assembles green nodes bottom-up. Branch nodes are opened with
// StartNode and closed with FinishNode; Checkpoint plus StartNodeAt allows
// wrapping already-built children retroactively (used when a plain scalar
// turns out to be a mapping key).
type Builder struct {
	children []*green
	parents  []parentFrame
}

type parentFrame struct {
	kind       SyntaxKind
	firstChild int
}

// Checkpoint marks a position in the child list for later StartNodeAt.
type Checkpoint int

// Mark captures the full builder state so a parser can backtrack.
type Mark struct {
	children int
	parents  int
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) StartNode(kind SyntaxKind) {
	b.parents = append(b.parents, parentFrame{kind: kind, firstChild: len(b.children)})
}

// StartNodeAt opens a branch that will contain every child added since the
// checkpoint was taken, in addition to children added afterwards.
func (b *Builder) StartNodeAt(cp Checkpoint, kind SyntaxKind) {
	if n := len(b.parents); n > 0 && int(cp) < b.parents[n-1].firstChild {
		panic("yamlcst: checkpoint crosses an open node boundary")
	}
	if int(cp) > len(b.children) {
		panic("yamlcst: checkpoint no longer valid")
	}
	b.parents = append(b.parents, parentFrame{kind: kind, firstChild: int(cp)})
}

func (b *Builder) FinishNode() {
	n := len(b.parents)
	if n == 0 {
		panic("yamlcst: FinishNode without StartNode")
	}
	frame := b.parents[n-1]
	b.parents = b.parents[:n-1]
	children := make([]*green, len(b.children)-frame.firstChild)
	copy(children, b.children[frame.firstChild:])
	b.children = append(b.children[:frame.firstChild], newGreenBranch(frame.kind, children))
}

func (b *Builder) Token(kind SyntaxKind, text string) {
	b.children = append(b.children, newGreenToken(kind, text))
}

func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.children))
}

// MarkState returns a snapshot that ResetTo can restore. Only valid while no
// node opened before the mark has been finished.
func (b *Builder) MarkState() Mark {
	return Mark{children: len(b.children), parents: len(b.parents)}
}

func (b *Builder) ResetTo(m Mark) {
	if m.children > len(b.children) || m.parents > len(b.parents) {
		panic("yamlcst: invalid builder mark")
	}
	b.children = b.children[:m.children]
	b.parents = b.parents[:m.parents]
}

// Finish closes the builder and returns the single root node.
func (b *Builder) Finish() *green {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("yamlcst: %d unfinished node(s)", len(b.parents)))
	}
	if len(b.children) != 1 {
		panic(fmt.Sprintf("yamlcst: expected a single root, have %d", len(b.children)))
	}
	return b.children[0]
}
