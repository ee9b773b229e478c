// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	goversion "github.com/hashicorp/go-version"

	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

var maxSupportedYamlVersion = goversion.Must(goversion.NewVersion("1.2"))

func (p *parser) root(st *state) {
	for !p.c.eof() && !p.failed() {
		if p.cmtOrWs(st) {
			continue
		}
		if p.document(st) {
			continue
		}
		if p.failed() {
			return
		}
		p.recoverLine("unexpected character")
	}
}

func (p *parser) document(st *state) bool {
	if p.documentWithDirectives(st) {
		return true
	}
	if p.failed() {
		return false
	}

	if p.c.at("...") {
		p.b.StartNode(Document)
		p.b.Token(DocumentEnd, p.c.advance(3))
		p.prevDocFinished = true
		p.b.FinishNode()
		return true
	}

	if p.documentBare(st) {
		return true
	}
	if p.failed() {
		return false
	}

	m := p.mark()
	p.b.StartNode(Document)
	if !p.directivesEnd() {
		p.reset(m)
		return false
	}
	p.documentEndOpt(st)
	p.b.FinishNode()
	return true
}

func (p *parser) documentWithDirectives(st *state) bool {
	if p.c.cur() != '%' {
		return false
	}
	m := p.mark()
	p.b.StartNode(Document)
	n := 0
	for p.c.cur() == '%' && !p.failed() {
		p.directive(st)
		p.cmtsOrWs0(st)
		n++
	}
	if n == 0 || !p.directivesEnd() {
		p.reset(m)
		return false
	}
	p.documentBodyOpt(st)
	p.documentEndOpt(st)
	p.b.FinishNode()
	return true
}

func (p *parser) documentBare(st *state) bool {
	m := p.mark()
	p.b.StartNode(Document)
	hasEnd := false
	if p.directivesEnd() {
		hasEnd = true
		p.cmtsOrWs0(st)
	}
	if !hasEnd && !p.prevDocFinished {
		p.errRecovered(UnexpectedCharacter, p.rangeHere(),
			"expected \"...\" or \"---\" before a new document")
	}
	if !p.topLevelBlock(st) || p.failed() {
		p.reset(m)
		return false
	}
	p.documentEndOpt(st)
	p.b.FinishNode()
	return true
}

// documentBodyOpt parses the optional block after an explicit "---".
func (p *parser) documentBodyOpt(st *state) {
	m := p.mark()
	p.cmtsOrWs0(st)
	if !p.topLevelBlock(st) || p.failed() {
		p.reset(m)
	}
}

// documentEndOpt parses an optional trivia-separated "..." marker.
func (p *parser) documentEndOpt(st *state) {
	m := p.mark()
	if p.cmtsOrWs1(st) && p.c.at("...") {
		p.b.Token(DocumentEnd, p.c.advance(3))
		p.prevDocFinished = true
		return
	}
	p.reset(m)
}

func (p *parser) topLevelBlock(st *state) bool {
	if p.c.at("...") {
		return false
	}
	prevSaved := st.prevIndent
	st.prevIndent = st.indent
	saved := *st
	st.bfCtx = ctxBlockIn
	st.documentTop = true
	ok := p.block(st)
	*st = saved
	if !ok {
		st.prevIndent = prevSaved
		return false
	}
	p.prevDocFinished = false
	return true
}

func (p *parser) directivesEnd() bool {
	if p.c.at("---") && isASCIIWhitespace(p.c.peek(3)) {
		p.b.Token(DirectivesEnd, p.c.advance(3))
		return true
	}
	return false
}

func (p *parser) directive(st *state) {
	p.b.StartNode(Directive)
	p.b.Token(Percent, p.c.advance(1))
	if !(p.yamlDirective(st) || p.tagDirective(st) || p.reservedDirective(st)) {
		start := p.c.pos
		r := p.rangeHere()
		p.c.takeTillLineEnding()
		p.errRecovered(DirectiveSyntax, filepos.NewRange(r.Start, p.c.offset()),
			"malformed directive")
		if p.c.pos > start {
			p.b.Token(ErrorToken, p.c.src[start:p.c.pos])
		}
	}
	p.b.FinishNode()
}

func (p *parser) yamlDirective(st *state) bool {
	if !p.c.at("YAML") {
		return false
	}
	m := p.mark()
	p.b.StartNode(YamlDirective)
	p.b.Token(DirectiveName, p.c.advance(4))
	if !p.space(st) {
		p.reset(m)
		return false
	}
	verStart := p.c.offset()
	major := p.c.takeWhile(isDigit)
	if major == "" || p.c.cur() != '.' {
		p.reset(m)
		return false
	}
	p.c.advance(1)
	minor := p.c.takeWhile(isDigit)
	if minor == "" {
		p.reset(m)
		return false
	}
	version := major + "." + minor
	p.b.Token(YamlVersion, version)
	if v, err := goversion.NewVersion(version); err == nil && v.GreaterThan(maxSupportedYamlVersion) {
		p.errRecovered(DirectiveSyntax, filepos.NewRange(verStart, p.c.offset()),
			"YAML version "+version+" is newer than the supported 1.2")
	}
	p.b.FinishNode()
	return true
}

func (p *parser) tagDirective(st *state) bool {
	if !p.c.at("TAG") {
		return false
	}
	m := p.mark()
	p.b.StartNode(TagDirective)
	p.b.Token(DirectiveName, p.c.advance(3))
	if !p.space(st) || !p.tagHandle() || !p.space(st) || !p.tagPrefix() {
		p.reset(m)
		return false
	}
	p.b.FinishNode()
	return true
}

func (p *parser) tagPrefix() bool {
	c := p.c.cur()
	if c != '!' && !isTagChar(c) {
		return false
	}
	start := p.c.pos
	p.c.advance(1)
	p.c.takeWhile(isURLChar)
	p.b.Token(TagPrefix, p.c.src[start:p.c.pos])
	return true
}

func (p *parser) reservedDirective(st *state) bool {
	name := p.c.takeWhile(func(c byte) bool { return !isASCIIWhitespace(c) })
	if name == "" {
		return false
	}
	p.b.StartNode(ReservedDirective)
	defer p.b.FinishNode()
	p.b.Token(DirectiveName, name)
	if !p.space(st) {
		return true
	}
	start := p.c.pos
	for {
		if run := p.c.takeWhile(func(c byte) bool { return !isASCIIWhitespace(c) }); run != "" {
			continue
		}
		if isSpace(p.c.cur()) {
			save := p.c.pos
			p.c.takeWhile(isSpace)
			if p.c.cur() == '#' || p.c.eof() {
				p.c.pos = save
				break
			}
			continue
		}
		break
	}
	if param := p.c.src[start:p.c.pos]; param != "" {
		p.b.Token(DirectiveParam, param)
	}
	return true
}
