// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

// inFlowCtx maps the surrounding context to the context used inside a flow
// collection (YAML 1.2.2 "in-flow" rule).
func inFlowCtx(ctx blockFlowCtx) blockFlowCtx {
	switch ctx {
	case ctxFlowOut, ctxFlowIn:
		return ctxFlowIn
	case ctxBlockKey, ctxFlowKey:
		return ctxFlowKey
	default:
		return ctx
	}
}

func (p *parser) flowNode(st *state) bool {
	if p.c.eof() {
		return false
	}
	m := p.mark()
	p.b.StartNode(Flow)
	ok := false
	switch p.c.cur() {
	case '*':
		ok = p.alias()
	case '&', '!':
		ok = p.properties(st)
		if ok {
			sm := p.mark()
			if !(p.statelessSeparate(st) && p.flowContent(st)) {
				p.reset(sm)
			}
		}
	default:
		ok = p.flowContent(st)
	}
	if !ok || p.failed() {
		p.reset(m)
		return false
	}
	p.b.FinishNode()
	return true
}

func (p *parser) flowContent(st *state) bool {
	switch p.c.cur() {
	case '"':
		return p.doubleQuotedScalar()
	case '\'':
		return p.singleQuotedScalar()
	case '[':
		return p.flowSequence(st)
	case '{':
		return p.flowMap(st)
	default:
		return p.plainScalar(st)
	}
}

func (p *parser) alias() bool {
	if p.c.cur() != '*' {
		return false
	}
	p.b.StartNode(Alias)
	p.b.Token(Asterisk, p.c.advance(1))
	p.anchorName("alias")
	p.b.FinishNode()
	return true
}

func (p *parser) anchorName(what string) {
	name := p.c.takeWhile(func(c byte) bool {
		return !isFlowIndicator(c) && !isASCIIWhitespace(c)
	})
	if name == "" {
		p.errRecovered(UnexpectedCharacter, p.rangeHere(), "missing "+what+" name")
		return
	}
	p.b.Token(AnchorName, name)
}

func (p *parser) anchorProperty() bool {
	if p.c.cur() != '&' {
		return false
	}
	p.b.StartNode(AnchorProperty)
	p.b.Token(Ampersand, p.c.advance(1))
	p.anchorName("anchor")
	p.b.FinishNode()
	return true
}

func (p *parser) properties(st *state) bool {
	c := p.c.cur()
	if c != '&' && c != '!' {
		return false
	}
	m := p.mark()
	p.b.StartNode(Properties)
	var ok bool
	if c == '&' {
		ok = p.anchorProperty()
		if ok {
			p.propertiesSecond(st, p.tagProperty)
		}
	} else {
		ok = p.tagProperty()
		if ok {
			p.propertiesSecond(st, func() bool { return p.anchorProperty() })
		}
	}
	if !ok {
		p.reset(m)
		return false
	}
	p.b.FinishNode()
	return true
}

// propertiesSecond optionally parses the other property after a separator,
// unless yet another property-looking token follows (which would be an
// error better reported downstream).
func (p *parser) propertiesSecond(st *state, second func() bool) {
	m := p.mark()
	if !(p.statelessSeparate(st) && second()) || p.anotherPropertyFollows() {
		p.reset(m)
	}
}

func (p *parser) anotherPropertyFollows() bool {
	i := 0
	for isSpace(p.c.peek(i)) {
		i++
	}
	if i == 0 {
		return false
	}
	next := p.c.peek(i)
	return next == '&' || next == '!'
}

func (p *parser) tagProperty() bool {
	if p.c.cur() != '!' {
		return false
	}
	m := p.mark()
	p.b.StartNode(TagProperty)
	ok := p.verbatimTag() || p.shorthandTag() || p.nonSpecificTag()
	if !ok {
		p.reset(m)
		return false
	}
	p.b.FinishNode()
	return true
}

func (p *parser) verbatimTag() bool {
	if !p.c.at("!<") {
		return false
	}
	save := p.c.pos
	p.c.advance(2)
	body := p.c.takeWhile(isURLChar)
	if body == "" || p.c.cur() != '>' {
		p.c.pos = save
		return false
	}
	p.c.advance(1)
	p.b.Token(VerbatimTag, p.c.src[save:p.c.pos])
	return true
}

func (p *parser) shorthandTag() bool {
	m := p.mark()
	p.b.StartNode(ShorthandTag)
	if !p.tagHandle() {
		p.reset(m)
		return false
	}
	chars := p.c.takeWhile(isTagChar)
	if chars == "" {
		p.reset(m)
		return false
	}
	p.b.Token(TagChar, chars)
	p.b.FinishNode()
	return true
}

func (p *parser) tagHandle() bool {
	p.b.StartNode(TagHandle)
	switch {
	case p.c.cur() == '!' && isWordChar(p.c.peek(1)):
		// possibly a named handle !word!
		save := p.c.pos
		p.c.advance(1)
		p.c.takeWhile(isWordChar)
		if p.c.cur() == '!' {
			p.c.advance(1)
			p.b.Token(TagHandleNamed, p.c.src[save:p.c.pos])
		} else {
			p.c.pos = save
			p.b.Token(TagHandlePrimary, p.c.advance(1))
		}
	case p.c.at("!!"):
		p.b.Token(TagHandleSecondary, p.c.advance(2))
	case p.c.cur() == '!':
		p.b.Token(TagHandlePrimary, p.c.advance(1))
	default:
		p.b.FinishNode()
		return false
	}
	p.b.FinishNode()
	return true
}

func (p *parser) nonSpecificTag() bool {
	if p.c.cur() != '!' {
		return false
	}
	p.b.StartNode(NonSpecificTag)
	p.b.Token(ExclamationMark, p.c.advance(1))
	p.b.FinishNode()
	return true
}

func (p *parser) flowSequence(st *state) bool {
	if p.c.cur() != '[' {
		return false
	}
	opener := p.c.offset()
	m := p.mark()
	p.b.StartNode(FlowSeq)
	p.b.Token(LBracket, p.c.advance(1))
	p.statelessCmtsOrWs0()

	inner := *st
	inner.bfCtx = inFlowCtx(st.bfCtx)
	p.flowCollectionEntries(&inner, ']', FlowSeqEntries, p.flowSequenceEntry)

	if p.failed() {
		p.reset(m)
		return false
	}
	if p.c.cur() != ']' {
		p.errFatal(UnterminatedFlowCollection, filepos.NewRange(opener, p.c.offset()),
			"missing closing ']'")
		p.reset(m)
		return false
	}
	p.b.Token(RBracket, p.c.advance(1))
	p.b.FinishNode()
	return true
}

func (p *parser) flowMap(st *state) bool {
	if p.c.cur() != '{' {
		return false
	}
	opener := p.c.offset()
	m := p.mark()
	p.b.StartNode(FlowMap)
	p.b.Token(LBrace, p.c.advance(1))
	p.statelessCmtsOrWs0()

	inner := *st
	inner.bfCtx = inFlowCtx(st.bfCtx)
	p.flowCollectionEntries(&inner, '}', FlowMapEntries, p.flowMapEntry)

	if p.failed() {
		p.reset(m)
		return false
	}
	if p.c.cur() != '}' {
		p.errFatal(UnterminatedFlowCollection, filepos.NewRange(opener, p.c.offset()),
			"missing closing '}'")
		p.reset(m)
		return false
	}
	p.b.Token(RBrace, p.c.advance(1))
	p.b.FinishNode()
	return true
}

func (p *parser) flowCollectionEntries(st *state, closer byte, kind SyntaxKind, entry func(*state) bool) {
	p.b.StartNode(kind)
	for !p.failed() {
		if p.statelessCmtOrWs() {
			continue
		}
		if p.c.eof() || p.c.cur() == closer {
			break
		}
		m := p.mark()
		if entry(st) {
			p.statelessCmtsOrWs0()
			if p.c.cur() == ',' {
				p.b.Token(Comma, p.c.advance(1))
				continue
			}
			if p.c.cur() == closer || p.c.eof() {
				continue
			}
			p.recoverFlowJunk(closer)
			continue
		}
		if p.failed() {
			break
		}
		p.reset(m)
		p.recoverFlowJunk(closer)
	}
	p.b.FinishNode()
}

// recoverFlowJunk skips unparseable content inside a flow collection up to
// the next separator, closer or line break.
func (p *parser) recoverFlowJunk(closer byte) {
	start := p.c.pos
	for !p.c.eof() {
		c := p.c.cur()
		if c == closer || c == ',' || c == '\n' || c == '\r' {
			break
		}
		p.c.bumpRune()
	}
	if p.c.pos == start {
		p.c.bumpRune()
	}
	r := filepos.NewRange(filepos.Pos(start), p.c.offset())
	p.errRecovered(UnexpectedCharacter, r, "unexpected content in flow collection")
	p.b.Token(ErrorToken, p.c.src[start:p.c.pos])
}

func (p *parser) flowSequenceEntry(st *state) bool {
	m := p.mark()
	p.b.StartNode(FlowSeqEntry)
	if p.flowNode(st) {
		if !p.colonFollowsAhead() {
			p.b.FinishNode()
			return true
		}
	}
	if p.failed() {
		p.reset(m)
		return false
	}
	p.reset(m)
	p.b.StartNode(FlowSeqEntry)
	if !p.flowPair(st) {
		p.reset(m)
		return false
	}
	p.b.FinishNode()
	return true
}

// colonFollowsAhead peeks past trivia for a ':' that would make the entry a
// flow pair rather than a plain value.
func (p *parser) colonFollowsAhead() bool {
	i := p.c.pos
	src := p.c.src
	for i < len(src) {
		switch {
		case isASCIIWhitespace(src[i]):
			i++
		case src[i] == '#':
			for i < len(src) && !isLineBreak(src[i]) {
				i++
			}
		default:
			return src[i] == ':'
		}
	}
	return false
}

func (p *parser) flowPair(st *state) bool {
	m := p.mark()
	p.b.StartNode(FlowPair)

	km := p.mark()
	var keyOK bool
	if p.c.cur() == '?' && isASCIIWhitespace(p.c.peek(1)) {
		keyOK = p.flowMapEntryKey(st)
	} else {
		inner := *st
		inner.bfCtx = ctxFlowKey
		keyOK = p.flowMapEntryKey(&inner)
	}
	if !keyOK {
		p.reset(km)
	}
	p.statelessCmtsOrWs0()
	if p.c.cur() != ':' || p.failed() {
		p.reset(m)
		return false
	}
	p.b.Token(Colon, p.c.advance(1))
	p.flowValueOpt(st)
	p.b.FinishNode()
	return true
}

// flowValueOpt parses an optional trivia-separated flow value wrapped in a
// FlowMapValue node.
func (p *parser) flowValueOpt(st *state) {
	m := p.mark()
	p.statelessCmtsOrWs0()
	cp := p.b.Checkpoint()
	if !p.flowNode(st) || p.failed() {
		p.reset(m)
		return
	}
	p.b.StartNodeAt(cp, FlowMapValue)
	p.b.FinishNode()
}

func (p *parser) flowMapEntry(st *state) bool {
	m := p.mark()
	p.b.StartNode(FlowMapEntry)

	keyOK := p.flowMapEntryKey(st)
	if p.failed() {
		p.reset(m)
		return false
	}
	if keyOK {
		tm := p.mark()
		p.statelessCmtsOrWs0()
		if p.c.cur() != ':' {
			p.reset(tm)
			p.b.FinishNode()
			return true
		}
	} else if p.c.cur() != ':' {
		p.reset(m)
		return false
	}
	p.b.Token(Colon, p.c.advance(1))
	p.flowValueOpt(st)
	p.b.FinishNode()
	return true
}

func (p *parser) flowMapEntryKey(st *state) bool {
	m := p.mark()
	p.b.StartNode(FlowMapKey)
	if p.flowNode(st) {
		p.b.FinishNode()
		return true
	}
	if p.failed() || p.c.cur() != '?' {
		p.reset(m)
		return false
	}
	p.b.Token(QuestionMark, p.c.advance(1))
	km := p.mark()
	if !(p.statelessCmtsOrWs1() && p.flowNode(st)) || p.failed() {
		p.reset(km)
	}
	if p.failed() {
		p.reset(m)
		return false
	}
	p.b.FinishNode()
	return true
}
