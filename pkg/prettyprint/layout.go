// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package prettyprint

import "unicode/utf8"

type docKind int

const (
	kindText docKind = iota
	kindConcat
	kindNest
	kindGroup
	kindHardLine
	kindEmptyLine
	kindLineOrSpace
	kindLineOrNil
	kindIfBreak
	kindFill
)

// Doc is one layout tree node. Build docs with the package constructors and
// render them with Print.
type Doc struct {
	kind     docKind
	text     string
	children []*Doc
	indent   int
	flat     *Doc
	broken   *Doc

	measured  bool
	flatWidth int
	forced    bool
}

// Nil is an empty layout.
func Nil() *Doc { return &Doc{kind: kindText} }

// Text emits s verbatim. s must not contain line breaks; use the line
// primitives for those.
func Text(s string) *Doc { return &Doc{kind: kindText, text: s} }

// Space emits a single space.
func Space() *Doc { return &Doc{kind: kindText, text: " "} }

// Concat renders children in order.
func Concat(children ...*Doc) *Doc {
	return &Doc{kind: kindConcat, children: children}
}

// List is Concat over a slice.
func List(children []*Doc) *Doc {
	return &Doc{kind: kindConcat, children: children}
}

// Nest increases the indentation of line breaks inside child by n columns.
func Nest(n int, child *Doc) *Doc {
	return &Doc{kind: kindNest, indent: n, children: []*Doc{child}}
}

// Group renders child flat when it fits the remaining width, broken
// otherwise.
func Group(child *Doc) *Doc {
	return &Doc{kind: kindGroup, children: []*Doc{child}}
}

// HardLine always breaks. A group containing one never renders flat.
func HardLine() *Doc { return &Doc{kind: kindHardLine} }

// EmptyLine breaks without emitting indentation, producing a blank line
// when followed by another line break.
func EmptyLine() *Doc { return &Doc{kind: kindEmptyLine} }

// LineOrSpace breaks in broken groups and is a space in flat ones.
func LineOrSpace() *Doc { return &Doc{kind: kindLineOrSpace} }

// LineOrNil breaks in broken groups and vanishes in flat ones.
func LineOrNil() *Doc { return &Doc{kind: kindLineOrNil} }

// IfBreak renders flat in flat groups and broken in broken ones.
func IfBreak(flat, broken *Doc) *Doc {
	return &Doc{kind: kindIfBreak, flat: flat, broken: broken}
}

// Fill lays children out like words in a paragraph: separated by a space
// while the next child fits the width, by a line break otherwise.
func Fill(children []*Doc) *Doc {
	return &Doc{kind: kindFill, children: children}
}

// measure computes the flat width of a doc in code points, and whether the
// doc forces a break. Results are cached per node.
func (d *Doc) measure() (int, bool) {
	if d.measured {
		return d.flatWidth, d.forced
	}
	switch d.kind {
	case kindText:
		d.flatWidth = utf8.RuneCountInString(d.text)
	case kindConcat, kindNest, kindGroup:
		for _, c := range d.children {
			w, forced := c.measure()
			d.flatWidth += w
			d.forced = d.forced || forced
		}
	case kindFill:
		for i, c := range d.children {
			w, forced := c.measure()
			if i > 0 {
				d.flatWidth++
			}
			d.flatWidth += w
			d.forced = d.forced || forced
		}
	case kindHardLine, kindEmptyLine:
		d.forced = true
	case kindLineOrSpace:
		d.flatWidth = 1
	case kindLineOrNil:
		// nothing when flat
	case kindIfBreak:
		d.flatWidth, d.forced = d.flat.measure()
	}
	d.measured = true
	return d.flatWidth, d.forced
}
