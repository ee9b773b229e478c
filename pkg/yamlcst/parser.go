// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	"fmt"
	"strings"

	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

// Tree is the result of parsing: a red root node plus every diagnostic the
// parser recovered from along the way.
type Tree struct {
	Root   *Node
	Errors []Error
	Source string

	index *filepos.Index
}

// Index returns a lazily-built line/column resolver for the source.
func (t *Tree) Index() *filepos.Index {
	if t.index == nil {
		t.index = filepos.NewIndex(t.Source)
	}
	return t.index
}

const bomMark = "\uFEFF"

// Parse builds a lossless CST from src. Recovered diagnostics are collected
// on the returned Tree; a fatal diagnostic (unterminated quoted scalar or
// flow collection) is returned as *Error and no tree is produced.
func Parse(src []byte) (*Tree, error) {
	s := string(src)

	p := &parser{
		c: newCursor(s),
		b: NewBuilder(),
	}

	p.b.StartNode(Root)
	if strings.HasPrefix(s, bomMark) {
		p.b.Token(BOM, p.c.advance(len(bomMark)))
	}

	base := detectBaseIndent(p.c.rest())
	st := state{
		prevIndent:  -1,
		indent:      base,
		bfCtx:       ctxBlockIn,
		documentTop: true,
	}
	p.prevDocFinished = true
	p.trackIndentValue(base)

	p.root(&st)

	if p.fatal != nil {
		fatal := *p.fatal
		return nil, &fatal
	}

	p.b.FinishNode()
	tree := &Tree{
		Root:   newRedTree(p.b.Finish()),
		Errors: p.errs,
		Source: s,
	}
	return tree, nil
}

// Parsing context per the YAML spec's block/flow parameter.
type blockFlowCtx int

const (
	ctxBlockIn blockFlowCtx = iota
	ctxBlockOut
	ctxBlockKey
	ctxFlowIn
	ctxFlowOut
	ctxFlowKey
)

// state carries the (context, indent) pair the grammar is parameterised by.
// It is threaded explicitly; helpers that the grammar treats as scoped make
// a copy, mutate it, and restore afterwards.
type state struct {
	prevIndent  int // -1 when unset
	indent      int
	lastWsHasNl bool
	bfCtx       blockFlowCtx
	documentTop bool
}

type parser struct {
	c *cursor
	b *Builder

	errs  []Error
	fatal *Error

	trackedIndents  uint64
	prevDocFinished bool
}

type parseMark struct {
	pos     int
	builder Mark
	errs    int
}

func (p *parser) mark() parseMark {
	return parseMark{pos: p.c.pos, builder: p.b.MarkState(), errs: len(p.errs)}
}

func (p *parser) reset(m parseMark) {
	p.c.pos = m.pos
	p.b.ResetTo(m.builder)
	p.errs = p.errs[:m.errs]
}

func (p *parser) failed() bool { return p.fatal != nil }

func (p *parser) errRecovered(kind ErrorKind, r filepos.Range, msg string) {
	p.errs = append(p.errs, Error{Kind: kind, Range: r, Msg: msg, Severity: SeverityRecovered})
}

func (p *parser) errFatal(kind ErrorKind, r filepos.Range, msg string) {
	if p.fatal == nil {
		p.fatal = &Error{Kind: kind, Range: r, Msg: msg, Severity: SeverityFatal}
	}
}

func (p *parser) rangeHere() filepos.Range {
	return filepos.NewRange(p.c.offset(), p.c.offset())
}

func (p *parser) trackIndent(st *state) { p.trackIndentValue(st.indent) }

func (p *parser) trackIndentValue(indent int) {
	if indent < 64 {
		p.trackedIndents |= 1 << uint(indent)
	}
}

func (p *parser) indentTracked(indent int) bool {
	return indent >= 64 || p.trackedIndents&(1<<uint(indent)) != 0
}

// deeperIndentBlocked mirrors the "require deeper indent" guard: content on
// a fresh line must be indented past the enclosing node.
func (p *parser) deeperIndentBlocked(st *state) bool {
	return !st.documentTop && st.lastWsHasNl && st.prevIndent >= 0 && st.prevIndent >= st.indent
}

// detectWsIndent returns the number of bytes after the last line break in
// text, or -1 when text contains no line break.
func detectWsIndent(text string) int {
	idx := strings.LastIndexAny(text, "\n\r")
	if idx < 0 {
		return -1
	}
	return len(text) - idx - 1
}

// detectBaseIndent computes the column of the first contentful character so
// that already-indented fragments parse with the right starting indent.
func detectBaseIndent(code string) int {
	first := strings.IndexFunc(code, func(r rune) bool {
		return r != ' ' && r != '\t' && r != '\n' && r != '\r'
	})
	if first < 0 {
		return 0
	}
	lastBreak := strings.LastIndexByte(code[:first], '\n')
	if lastBreak >= 0 {
		return first - lastBreak - 1
	}
	return first
}

// ws consumes a run of whitespace, updating the indentation state when the
// run contains a line break.
func (p *parser) ws(st *state) bool {
	start := p.c.offset()
	text := p.c.takeWhile(isASCIIWhitespace)
	if text == "" {
		return false
	}
	if ind := detectWsIndent(text); ind >= 0 {
		st.indent = ind
		st.lastWsHasNl = true
		if strings.ContainsRune(text[len(text)-ind:], '\t') {
			p.errRecovered(InvalidIndentation, filepos.NewRange(start, p.c.offset()),
				"tab character used for indentation")
		}
	} else {
		st.lastWsHasNl = false
	}
	p.b.Token(Whitespace, text)
	return true
}

// space consumes horizontal whitespace only.
func (p *parser) space(st *state) bool {
	text := p.c.takeWhile(isSpace)
	if text == "" {
		return false
	}
	st.lastWsHasNl = false
	p.b.Token(Whitespace, text)
	return true
}

func (p *parser) comment() bool {
	if p.c.cur() != '#' {
		return false
	}
	start := p.c.pos
	p.c.advance(1)
	p.c.takeTillLineEnding()
	p.b.Token(Comment, p.c.src[start:p.c.pos])
	return true
}

func (p *parser) cmtOrWs(st *state) bool {
	if p.comment() {
		return true
	}
	return p.ws(st)
}

func (p *parser) cmtsOrWs0(st *state) {
	for p.cmtOrWs(st) {
	}
}

func (p *parser) cmtsOrWs1(st *state) bool {
	if !p.cmtOrWs(st) {
		return false
	}
	p.cmtsOrWs0(st)
	return true
}

// statelessCmtOrWs consumes trivia without touching the indentation state.
func (p *parser) statelessCmtOrWs() bool {
	if p.comment() {
		return true
	}
	text := p.c.takeWhile(isASCIIWhitespace)
	if text == "" {
		return false
	}
	p.b.Token(Whitespace, text)
	return true
}

func (p *parser) statelessCmtsOrWs0() {
	for p.statelessCmtOrWs() {
	}
}

func (p *parser) statelessCmtsOrWs1() bool {
	if !p.statelessCmtOrWs() {
		return false
	}
	p.statelessCmtsOrWs0()
	return true
}

// statelessSeparate is the "s-separate" production: in key contexts only
// horizontal space separates, elsewhere any trivia does.
func (p *parser) statelessSeparate(st *state) bool {
	if st.bfCtx == ctxFlowKey || st.bfCtx == ctxBlockKey {
		text := p.c.takeWhile(isSpace)
		if text == "" {
			return false
		}
		p.b.Token(Whitespace, text)
		return true
	}
	return p.statelessCmtsOrWs1()
}

// recoverLine records an unexpected-character diagnostic and skips to the
// next line so parsing can continue.
func (p *parser) recoverLine(msg string) {
	start := p.c.pos
	r := p.rangeHere()
	p.c.takeTillLineEnding()
	p.c.matchLineBreak()
	if p.c.pos == start {
		p.c.bumpRune()
	}
	p.errRecovered(UnexpectedCharacter, filepos.NewRange(r.Start, p.c.offset()),
		fmt.Sprintf("%s: %q", msg, firstRune(p.c.src[start:p.c.pos])))
	p.b.Token(ErrorToken, p.c.src[start:p.c.pos])
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
