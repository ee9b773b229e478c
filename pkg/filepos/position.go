// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Pos is a byte offset into the original source.
type Pos int

// Range is a half-open [Start,End) byte span.
type Range struct {
	Start Pos
	End   Pos
}

func NewRange(start, end Pos) Range {
	if end < start {
		panic("filepos: range end before start")
	}
	return Range{Start: start, End: end}
}

func (r Range) Len() int { return int(r.End - r.Start) }

func (r Range) Contains(p Pos) bool { return p >= r.Start && p < r.End }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Position is a resolved 1-based line and column pair.
type Position struct {
	LineNum int // 1 based
	ColNum  int // 1 based, in code points
}

func (p Position) AsString() string {
	return fmt.Sprintf("line %d, column %d", p.LineNum, p.ColNum)
}

func (p Position) AsCompactString() string {
	return fmt.Sprintf("%d:%d", p.LineNum, p.ColNum)
}

// Index resolves byte offsets into line/column positions for one source buffer.
type Index struct {
	src        string
	lineStarts []Pos
}

func NewIndex(src string) *Index {
	lineStarts := []Pos{0}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			lineStarts = append(lineStarts, Pos(i+1))
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			lineStarts = append(lineStarts, Pos(i+1))
		}
	}
	return &Index{src: src, lineStarts: lineStarts}
}

// Position resolves offset into a 1-based line/column pair. Offsets past the
// end of the source resolve to the position just past the last character.
func (x *Index) Position(offset Pos) Position {
	if offset > Pos(len(x.src)) {
		offset = Pos(len(x.src))
	}
	lineIdx := sort.Search(len(x.lineStarts), func(i int) bool {
		return x.lineStarts[i] > offset
	}) - 1
	col := utf8.RuneCountInString(x.src[x.lineStarts[lineIdx]:offset])
	return Position{LineNum: lineIdx + 1, ColNum: col + 1}
}

// Line returns the text of the given 1-based line without its line break.
func (x *Index) Line(lineNum int) string {
	if lineNum < 1 || lineNum > len(x.lineStarts) {
		return ""
	}
	start := int(x.lineStarts[lineNum-1])
	end := len(x.src)
	if lineNum < len(x.lineStarts) {
		end = int(x.lineStarts[lineNum])
	}
	for end > start && (x.src[end-1] == '\n' || x.src[end-1] == '\r') {
		end--
	}
	return x.src[start:end]
}
