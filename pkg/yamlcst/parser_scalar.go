// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	"strings"

	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

// Valid escape characters after a backslash in a double-quoted scalar.
const doubleQuoteEscapes = "0abtnvfre \"/\\N_LPxuU\t\n\r"

func (p *parser) doubleQuotedScalar() bool {
	if p.c.cur() != '"' {
		return false
	}
	opener := p.c.offset()
	start := p.c.pos
	p.c.advance(1)
	for {
		if p.c.eof() {
			p.errFatal(UnterminatedQuotedScalar, filepos.NewRange(opener, p.c.offset()),
				"missing closing '\"'")
			return false
		}
		switch c := p.c.cur(); {
		case c == '\\':
			escStart := p.c.offset()
			p.c.advance(1)
			if p.c.eof() {
				p.errFatal(UnterminatedQuotedScalar, filepos.NewRange(opener, p.c.offset()),
					"missing closing '\"'")
				return false
			}
			esc := p.c.bumpRune()
			if len(esc) != 1 || !strings.Contains(doubleQuoteEscapes, esc) {
				p.errRecovered(InvalidEscapeSequence, filepos.NewRange(escStart, p.c.offset()),
					"unknown escape \\"+esc)
			}
		case c == '"':
			p.c.advance(1)
			p.b.Token(DoubleQuotedScalar, p.c.src[start:p.c.pos])
			return true
		default:
			p.c.bumpRune()
		}
	}
}

func (p *parser) singleQuotedScalar() bool {
	if p.c.cur() != '\'' {
		return false
	}
	opener := p.c.offset()
	start := p.c.pos
	p.c.advance(1)
	for {
		if p.c.eof() {
			p.errFatal(UnterminatedQuotedScalar, filepos.NewRange(opener, p.c.offset()),
				"missing closing \"'\"")
			return false
		}
		if p.c.cur() == '\'' {
			if p.c.peek(1) == '\'' {
				p.c.advance(2)
				continue
			}
			p.c.advance(1)
			p.b.Token(SingleQuotedScalar, p.c.src[start:p.c.pos])
			return true
		}
		p.c.bumpRune()
	}
}

// plainScalar scans an unquoted scalar, including multi-line continuations
// in flow-in/flow-out context. The whole scalar, internal line breaks
// included, becomes a single token; folding is left to the formatter.
func (p *parser) plainScalar(st *state) bool {
	// Entry-time snapshot; continuation checks compare against the scalar's
	// starting indentation, not whatever trivia inside it set.
	indent := st.indent
	lastWsHasNl := st.lastWsHasNl
	documentTop := st.documentTop

	start := p.c.pos
	if !p.plainScalarOneLine(st) {
		return false
	}

	if st.bfCtx == ctxFlowIn || st.bfCtx == ctxFlowOut {
		safeIn := st.bfCtx == ctxFlowIn
		charsSafeIn := st.bfCtx == ctxFlowIn || st.bfCtx == ctxFlowKey
		for {
			save := p.c.pos
			wsText := p.c.takeWhile(isASCIIWhitespace)
			if wsText == "" {
				break
			}
			if !p.plainScalarMayContinue(wsText, safeIn, indent, lastWsHasNl, documentTop) {
				p.c.pos = save
				break
			}
			p.plainScalarChars(charsSafeIn)
		}
	}

	p.b.Token(PlainScalar, p.c.src[start:p.c.pos])
	return true
}

func (p *parser) plainScalarMayContinue(wsText string, safeIn bool, indent int, lastWsHasNl, documentTop bool) bool {
	c := p.c.cur()
	switch {
	case p.c.eof():
		return false
	case c == '\n' || c == '\r' || c == '#' || safeIn && isFlowIndicator(c):
		return false
	case c == ':':
		next := p.c.peek(1)
		if isASCIIWhitespace(next) || safeIn && isFlowIndicator(next) {
			return false
		}
	}
	if (p.c.at("---") || p.c.at("...")) && isASCIIWhitespace(p.c.peek(3)) {
		// A document marker only closes the scalar at the start of a line.
		return !strings.ContainsAny(wsText[len(wsText)-1:], "\n\r")
	}
	if detected := detectWsIndent(wsText); detected >= 0 {
		if lastWsHasNl {
			return detected >= indent
		}
		return detected > indent || documentTop
	}
	return true
}

func (p *parser) plainScalarOneLine(st *state) bool {
	c := p.c.cur()
	if p.c.eof() || isASCIIWhitespace(c) {
		return false
	}
	switch {
	case !isIndicator(c):
		p.c.bumpRune()
	case c == '-' || c == ':' || c == '?':
		next := p.c.peek(1)
		if p.c.pos+1 >= len(p.c.src) || isASCIIWhitespace(next) || isFlowIndicator(next) {
			return false
		}
		p.c.advance(1)
	default:
		return false
	}
	p.plainScalarChars(st.bfCtx == ctxFlowIn || st.bfCtx == ctxFlowKey)
	return true
}

func (p *parser) plainScalarChars(safeIn bool) {
	for {
		run := p.c.takeWhile(func(c byte) bool {
			return !isASCIIWhitespace(c) && c != ':' && !(safeIn && isFlowIndicator(c))
		})
		if run != "" {
			continue
		}
		if p.c.cur() == ':' {
			next := p.c.peek(1)
			if p.c.pos+1 < len(p.c.src) && !isASCIIWhitespace(next) && !(safeIn && isFlowIndicator(next)) {
				p.c.advance(1)
				continue
			}
		}
		if isSpace(p.c.cur()) {
			save := p.c.pos
			p.c.takeWhile(isSpace)
			if p.plainScalarSpaceTerminates(safeIn) {
				p.c.pos = save
				return
			}
			continue
		}
		return
	}
}

func (p *parser) plainScalarSpaceTerminates(safeIn bool) bool {
	c := p.c.cur()
	switch {
	case p.c.eof():
		return true
	case c == '\n' || c == '\r' || c == '#' || safeIn && isFlowIndicator(c):
		return true
	case c == ':':
		next := p.c.peek(1)
		if p.c.pos+1 < len(p.c.src) && (isASCIIWhitespace(next) || safeIn && isFlowIndicator(next)) {
			return true
		}
	}
	return false
}
