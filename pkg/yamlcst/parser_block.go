// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	"fmt"

	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

// block parses a node in block context: optionally properties, then a block
// sequence, block map, block scalar, or (indented deeper) a flow node.
func (p *parser) block(st *state) bool {
	if p.blockWithProperties(st) {
		return true
	}
	if p.failed() {
		return false
	}

	if !p.deeperIndentBlocked(st) {
		saved := *st
		st.bfCtx = ctxFlowOut
		ok := p.flowNode(st)
		*st = saved
		if ok {
			return true
		}
		if p.failed() {
			return false
		}
	}

	m := p.mark()
	p.b.StartNode(Block)
	if p.properties(st) {
		p.b.FinishNode()
		return true
	}
	p.reset(m)
	return false
}

func (p *parser) blockWithProperties(st *state) bool {
	m := p.mark()
	cp := p.b.Checkpoint()

	pm := p.mark()
	if p.properties(st) {
		// Properties in block context must be separated from their node by
		// trivia ending in a line break, unless a block scalar follows.
		if p.cmtsOrWs1(st) {
			p.trackIndent(st)
			if !(st.lastWsHasNl || p.c.cur() == '|' || p.c.cur() == '>') {
				p.reset(pm)
			}
		} else {
			p.reset(pm)
		}
	} else {
		p.reset(pm)
	}

	if !p.blockContent(st) || p.failed() {
		p.reset(m)
		return false
	}
	p.b.StartNodeAt(cp, Block)
	p.b.FinishNode()
	return true
}

func (p *parser) blockContent(st *state) bool {
	m := p.mark()
	if st.bfCtx == ctxBlockIn {
		if !p.deeperIndentBlocked(st) && p.blockSequence(st) {
			return true
		}
	} else if st.prevIndent >= 0 && st.indent >= st.prevIndent && p.blockSequence(st) {
		return true
	}
	if p.failed() {
		return false
	}
	p.reset(m)

	if st.bfCtx == ctxBlockOut {
		if !p.deeperIndentBlocked(st) && p.blockMap(st) {
			return true
		}
	} else if p.blockMap(st) {
		return true
	}
	if p.failed() {
		return false
	}
	p.reset(m)

	return p.blockScalar(st)
}

func (p *parser) blockSequence(st *state) bool {
	m := p.mark()
	p.b.StartNode(BlockSeq)
	if !p.blockSequenceEntry(st) {
		p.reset(m)
		return false
	}
	for !p.failed() {
		mm := p.mark()
		seqIndent := st.indent
		if !p.cmtsOrWs1(st) {
			break
		}
		if st.indent != seqIndent && !p.c.eof() {
			deeperUntracked := st.indent > seqIndent && !p.indentTracked(st.indent)
			found := st.indent
			r := p.rangeHere()
			p.reset(mm)
			if deeperUntracked {
				p.errRecovered(InvalidIndentation, r,
					fmt.Sprintf("expected indentation of %d, found %d", seqIndent, found))
			}
			break
		}
		if !p.blockSequenceEntry(st) {
			p.reset(mm)
			break
		}
	}
	p.b.FinishNode()
	return true
}

func (p *parser) blockSequenceEntry(st *state) bool {
	if p.c.cur() != '-' {
		return false
	}
	m := p.mark()
	p.b.StartNode(BlockSeqEntry)
	p.b.Token(Minus, p.c.advance(1))

	saved := *st
	st.bfCtx = ctxBlockIn
	st.documentTop = false
	ok := p.blockSequenceEntryValue(st)
	*st = saved

	if !ok || p.failed() {
		p.reset(m)
		return false
	}
	p.b.FinishNode()
	return true
}

func (p *parser) blockSequenceEntryValue(st *state) bool {
	if p.blockCompactCollection(st, 0) {
		return true
	}
	if p.failed() {
		return false
	}

	mm := p.mark()
	prevSaved := st.prevIndent
	st.prevIndent = st.indent
	if p.cmtsOrWs1(st) {
		p.trackIndent(st)
		if p.block(st) {
			return true
		}
		if p.failed() {
			return false
		}
	} else {
		st.prevIndent = prevSaved
	}
	p.reset(mm)

	// Empty entry: a bare dash followed by nothing but optional trailing
	// spaces and a comment.
	i := 0
	for isSpace(p.c.peek(i)) {
		i++
	}
	if p.c.peek(i) == '#' {
		for p.c.pos+i < len(p.c.src) && !isLineBreak(p.c.peek(i)) {
			i++
		}
	}
	return p.c.pos+i >= len(p.c.src) || isLineBreak(p.c.peek(i))
}

// blockCompactCollection parses a collection starting on the same line as
// the dash or question mark that introduces it. When wrap is non-zero the
// collection's Block node is additionally wrapped in a node of that kind.
func (p *parser) blockCompactCollection(st *state, wrap SyntaxKind) bool {
	saved := *st
	m := p.mark()

	text := p.c.takeWhile(isSpace)
	if text == "" {
		return false
	}
	p.b.Token(Whitespace, text)
	st.prevIndent = st.indent
	st.indent += len(text) + 1
	p.trackIndent(st)

	cp := p.b.Checkpoint()
	p.b.StartNode(Block)
	ok := p.blockSequence(st)
	if !ok && !p.failed() {
		ok = p.blockMap(st)
	}
	*st = saved
	if !ok || p.failed() {
		p.reset(m)
		return false
	}
	p.b.FinishNode()
	if wrap != 0 {
		p.b.StartNodeAt(cp, wrap)
		p.b.FinishNode()
	}
	return true
}

func (p *parser) blockMap(st *state) bool {
	m := p.mark()
	p.b.StartNode(BlockMap)
	mapIndent := st.indent
	if !p.blockMapEntry(st) {
		p.reset(m)
		return false
	}
	for !p.failed() {
		mm := p.mark()
		if !p.cmtsOrWs1(st) {
			break
		}
		if st.indent != mapIndent && !p.c.eof() {
			p.reset(mm)
			break
		}
		if !p.blockMapEntry(st) {
			p.reset(mm)
			break
		}
	}
	p.b.FinishNode()
	return true
}

func (p *parser) blockMapEntry(st *state) bool {
	if p.blockMapImplicitEntry(st) {
		return true
	}
	if p.failed() {
		return false
	}
	return p.blockMapExplicitEntry(st)
}

func (p *parser) blockMapImplicitEntry(st *state) bool {
	saved := *st
	st.documentTop = false
	ok := p.blockMapImplicitEntryInner(st)
	*st = saved
	return ok
}

func (p *parser) blockMapImplicitEntryInner(st *state) bool {
	m := p.mark()
	cpEntry := p.b.Checkpoint()

	km := p.mark()
	prevSaved := st.prevIndent
	st.prevIndent = st.indent
	if p.blockMapImplicitKey(st) {
		p.space(st)
	} else {
		st.prevIndent = prevSaved
		p.reset(km)
	}
	if p.failed() || p.c.cur() != ':' {
		p.reset(m)
		return false
	}
	p.b.Token(Colon, p.c.advance(1))

	p.blockMapValueOpt(st)

	p.b.StartNodeAt(cpEntry, BlockMapEntry)
	p.b.FinishNode()
	return true
}

// blockMapValueOpt parses the optional trivia-separated value of a mapping
// entry, wrapping the resulting node in BlockMapValue.
func (p *parser) blockMapValueOpt(st *state) {
	vm := p.mark()
	if !p.cmtsOrWs1(st) {
		return
	}
	p.trackIndent(st)
	vsaved := *st
	st.bfCtx = ctxBlockOut
	cp := p.b.Checkpoint()
	ok := p.block(st)
	*st = vsaved
	if !ok || p.failed() {
		p.reset(vm)
		return
	}
	p.b.StartNodeAt(cp, BlockMapValue)
	p.b.FinishNode()
}

// blockMapImplicitKey parses a single-line flow node as a mapping key. The
// key is wrapped retroactively once the following ':' confirms it.
func (p *parser) blockMapImplicitKey(st *state) bool {
	saved := *st
	st.bfCtx = ctxBlockKey
	cp := p.b.Checkpoint()
	ok := p.flowNode(st)
	*st = saved
	if !ok {
		return false
	}
	p.b.StartNodeAt(cp, BlockMapKey)
	p.b.FinishNode()
	return true
}

func (p *parser) blockMapExplicitEntry(st *state) bool {
	saved := *st
	st.documentTop = false
	ok := p.blockMapExplicitEntryInner(st)
	*st = saved
	return ok
}

func (p *parser) blockMapExplicitEntryInner(st *state) bool {
	m := p.mark()
	cpEntry := p.b.Checkpoint()

	prevSaved := st.prevIndent
	st.prevIndent = st.indent
	if !p.blockMapExplicitKey(st) {
		st.prevIndent = prevSaved
		p.reset(m)
		return false
	}

	om := p.mark()
	osaved := *st
	st.bfCtx = ctxBlockOut
	if !p.blockMapExplicitValue(st) {
		p.reset(om)
	}
	*st = osaved

	p.b.StartNodeAt(cpEntry, BlockMapEntry)
	p.b.FinishNode()
	return true
}

func (p *parser) blockMapExplicitValue(st *state) bool {
	if !p.cmtsOrWs1(st) {
		return false
	}
	if p.c.cur() != ':' {
		return false
	}
	p.b.Token(Colon, p.c.advance(1))
	if p.blockCompactCollection(st, BlockMapValue) {
		return true
	}
	vm := p.mark()
	if p.cmtsOrWs1(st) {
		p.trackIndent(st)
		cp := p.b.Checkpoint()
		if p.block(st) && !p.failed() {
			p.b.StartNodeAt(cp, BlockMapValue)
			p.b.FinishNode()
			return true
		}
	}
	p.reset(vm)
	return true
}

func (p *parser) blockMapExplicitKey(st *state) bool {
	if p.c.cur() != '?' {
		return false
	}
	m := p.mark()
	p.b.StartNode(BlockMapKey)
	p.b.Token(QuestionMark, p.c.advance(1))

	switch {
	case p.blockCompactCollection(st, 0):
	case p.failed():
		p.reset(m)
		return false
	default:
		km := p.mark()
		parsed := false
		if p.cmtsOrWs1(st) {
			p.trackIndent(st)
			ksaved := *st
			st.bfCtx = ctxBlockOut
			parsed = p.block(st)
			*st = ksaved
		}
		if !parsed || p.failed() {
			p.reset(km)
			if p.failed() || !(p.c.eof() || isLineBreak(p.c.cur())) {
				p.reset(m)
				return false
			}
		}
	}
	p.b.FinishNode()
	return true
}

func (p *parser) blockScalar(st *state) bool {
	style := p.c.cur()
	if style != '|' && style != '>' {
		return false
	}
	baseIndent := st.indent
	if st.prevIndent >= 0 {
		baseIndent = st.prevIndent
	}
	docTop := st.documentTop

	p.b.StartNode(BlockScalar)
	if style == '|' {
		p.b.Token(Bar, p.c.advance(1))
	} else {
		p.b.Token(GreaterThan, p.c.advance(1))
	}

	explicitIndent := -1
	switch c := p.c.cur(); {
	case isDigit(c):
		digit := p.c.advance(1)
		p.b.Token(IndentIndicator, digit)
		explicitIndent = baseIndent + int(digit[0]-'0')
		if p.c.cur() == '+' || p.c.cur() == '-' {
			p.chompingIndicator()
		}
	case c == '+' || c == '-':
		p.chompingIndicator()
		if isDigit(p.c.cur()) {
			digit := p.c.advance(1)
			p.b.Token(IndentIndicator, digit)
			explicitIndent = baseIndent + int(digit[0]-'0')
		}
	case c == 0 || isASCIIWhitespace(c) || c == '#':
		// no indicators
	default:
		start := p.c.pos
		r := p.rangeHere()
		p.c.takeTillLineEnding()
		p.errRecovered(UnexpectedCharacter, filepos.NewRange(r.Start, p.c.offset()),
			"invalid block scalar header")
		p.b.Token(ErrorToken, p.c.src[start:p.c.pos])
	}

	p.space(st)
	p.comment()

	contentIndent := explicitIndent
	if contentIndent < 0 {
		contentIndent = 0
		if detected := p.peekContentIndent(); detected >= 0 {
			contentIndent = detected
		}
	}

	if contentIndent > baseIndent || docTop {
		start := p.c.pos
		for {
			save := p.c.pos
			wsText := p.c.takeWhile(func(c byte) bool {
				return c == ' ' || c == '\n' || c == '\r'
			})
			detected := detectWsIndent(wsText)
			if wsText == "" || detected < 0 || detected < contentIndent {
				p.c.pos = save
				break
			}
			line := p.c.takeTillLineEnding()
			if line == "" || detected == 0 && (line == "---" || line == "...") {
				p.c.pos = save
				break
			}
		}
		if p.c.pos > start {
			p.b.Token(BlockScalarText, p.c.src[start:p.c.pos])
		}
	}

	p.b.FinishNode()
	return true
}

// peekContentIndent looks ahead over line breaks and spaces for the indent
// of the first content line of a block scalar without consuming anything.
func (p *parser) peekContentIndent() int {
	i := 0
	for {
		c := p.c.peek(i)
		if c != ' ' && c != '\n' && c != '\r' {
			break
		}
		i++
	}
	if i == 0 {
		return -1
	}
	return detectWsIndent(p.c.src[p.c.pos : p.c.pos+i])
}

func (p *parser) chompingIndicator() {
	p.b.StartNode(ChompingIndicator)
	if p.c.cur() == '+' {
		p.b.Token(Plus, p.c.advance(1))
	} else {
		p.b.Token(Minus, p.c.advance(1))
	}
	p.b.FinishNode()
}
