// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"strings"

	pp "prettyyaml.dev/prettyyaml/pkg/prettyprint"
	"prettyyaml.dev/prettyyaml/pkg/yamlast"
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

type printer struct {
	opts *Options
}

func newPrinter(opts *Options) *printer {
	return &printer{opts: opts}
}

func (p *printer) root(r yamlast.Root) *pp.Doc {
	var docs []*pp.Doc
	syntax := r.Syntax()
	firstContent := 0
	if first := syntax.FirstChild(); first != nil && first.Kind() == yamlcst.BOM {
		docs = append(docs, pp.Text(first.Text()))
		firstContent = 1
	}
	docs = append(docs, p.lineBreakSeparatedList(syntax, yamlcst.Document, func(n *yamlcst.Node) *pp.Doc {
		return p.document(yamlast.NewDocument(n))
	}, true, firstContent)...)
	docs = append(docs, pp.HardLine())
	return pp.List(docs)
}

func (p *printer) document(d yamlast.Document) *pp.Doc {
	var docs []*pp.Doc
	children := d.Syntax().Children()
	for i, child := range children {
		switch child.Kind() {
		case yamlcst.Block:
			docs = append(docs, p.block(yamlast.NewBlock(child)))
		case yamlcst.Flow:
			docs = append(docs, p.flow(yamlast.NewFlow(child)))
		case yamlcst.Directive:
			docs = append(docs, p.directive(yamlast.NewDirective(child)))
		case yamlcst.Comment:
			docs = append(docs, p.comment(child))
		case yamlcst.Whitespace:
			switch n := countNewlines(child.Text()); {
			case n == 0:
				if i+1 < len(children) && children[i+1].Kind() == yamlcst.Comment {
					docs = append(docs, pp.Space())
				} else {
					docs = append(docs, pp.HardLine())
				}
			case n == 1:
				docs = append(docs, pp.HardLine())
			default:
				docs = append(docs, pp.EmptyLine(), pp.HardLine())
			}
		case yamlcst.DirectivesEnd:
			docs = append(docs, pp.Text("---"))
		case yamlcst.DocumentEnd:
			docs = append(docs, pp.Text("..."))
		case yamlcst.ErrorToken:
			docs = append(docs, reflowDocs(child.Text())...)
		}
	}
	return pp.List(docs)
}

func (p *printer) directive(d yamlast.Directive) *pp.Doc {
	docs := []*pp.Doc{pp.Text("%")}
	if tag := d.TagDirective(); tag != nil {
		docs = append(docs, p.tagDirective(tag))
	} else if yml := d.YamlDirective(); yml != nil {
		docs = append(docs, p.yamlDirective(yml))
	} else if res := d.ReservedDirective(); res != nil {
		docs = append(docs, p.reservedDirective(res))
	}
	return pp.List(docs)
}

func (p *printer) yamlDirective(n *yamlcst.Node) *pp.Doc {
	if version := n.FindChild(yamlcst.YamlVersion); version != nil {
		return pp.Text("YAML " + version.Text())
	}
	return pp.Text("YAML")
}

func (p *printer) tagDirective(n *yamlcst.Node) *pp.Doc {
	docs := []*pp.Doc{pp.Text("TAG")}
	if handle := n.FindChild(yamlcst.TagHandle); handle != nil {
		docs = append(docs, pp.Space(), p.tagHandle(handle))
	}
	if prefix := n.FindChild(yamlcst.TagPrefix); prefix != nil {
		docs = append(docs, pp.Space(), pp.Text(prefix.Text()))
	}
	return pp.List(docs)
}

func (p *printer) reservedDirective(n *yamlcst.Node) *pp.Doc {
	var docs []*pp.Doc
	if name := n.FindChild(yamlcst.DirectiveName); name != nil {
		docs = append(docs, pp.Text(name.Text()))
	}
	if param := n.FindChild(yamlcst.DirectiveParam); param != nil {
		docs = append(docs, pp.Space(), pp.Text(param.Text()))
	}
	return pp.List(docs)
}

func (p *printer) block(b yamlast.Block) *pp.Doc {
	var docs []*pp.Doc
	var triviaAfterProps []*pp.Doc
	hasProperties := false
	if props := b.Properties(); props != nil {
		docs = append(docs, p.properties(props))
		if tok := props.NextSibling(); tok != nil && tok.Kind() == yamlcst.Whitespace {
			triviaAfterProps = p.triviasAfter(tok)
		}
		hasProperties = true
	}
	if blockMap, ok := b.BlockMap(); ok {
		if hasProperties {
			if len(triviaAfterProps) > 0 {
				docs = append(docs, pp.Space())
				docs = append(docs, triviaAfterProps...)
			} else {
				docs = append(docs, pp.HardLine())
			}
		}
		docs = append(docs, p.blockMap(blockMap))
	} else if blockSeq, ok := b.BlockSeq(); ok {
		if hasProperties {
			if len(triviaAfterProps) > 0 {
				docs = append(docs, pp.Space())
				docs = append(docs, triviaAfterProps...)
			} else {
				docs = append(docs, pp.HardLine())
			}
		}
		docs = append(docs, p.blockSeq(blockSeq))
	} else if scalar := b.BlockScalar(); scalar != nil {
		if hasProperties {
			docs = append(docs, pp.Space())
			docs = append(docs, triviaAfterProps...)
		}
		docs = append(docs, p.blockScalar(scalar))
	}
	return pp.List(docs)
}

func (p *printer) blockMap(m yamlast.BlockMap) *pp.Doc {
	return pp.List(p.lineBreakSeparatedList(m.Syntax(), yamlcst.BlockMapEntry, func(n *yamlcst.Node) *pp.Doc {
		return p.blockMapEntry(yamlast.NewBlockMapEntry(n))
	}, false, 0))
}

func (p *printer) blockMapEntry(e yamlast.BlockMapEntry) *pp.Doc {
	return p.formatKeyValuePair(e.Key(), e.Colon(), e.Value())
}

func (p *printer) blockSeq(s yamlast.BlockSeq) *pp.Doc {
	return pp.List(p.lineBreakSeparatedList(s.Syntax(), yamlcst.BlockSeqEntry, func(n *yamlcst.Node) *pp.Doc {
		return p.blockSeqEntry(yamlast.NewBlockSeqEntry(n))
	}, false, 0))
}

func (p *printer) blockSeqEntry(e yamlast.BlockSeqEntry) *pp.Doc {
	var docs []*pp.Doc

	if minus := e.Minus(); minus != nil {
		docs = append(docs, pp.Text("-"))
		var spacing *pp.Doc
		if p.opts.DashSpacing == DashSpacingIndent {
			n := p.opts.IndentWidth - 1
			if n < 1 {
				n = 1
			}
			spacing = pp.Text(strings.Repeat(" ", n))
		} else {
			spacing = pp.Space()
		}
		if tok := minus.NextSibling(); tok != nil && tok.Kind() == yamlcst.Whitespace {
			docs = append(docs, spacing)
			docs = append(docs, p.triviasAfter(tok)...)
		} else if e.Block() != nil || e.Flow() != nil {
			docs = append(docs, spacing)
		}
	}

	if block := e.Block(); block != nil {
		docs = append(docs, p.block(yamlast.NewBlock(block)))
	} else if flow := e.Flow(); flow != nil {
		docs = append(docs, p.flow(yamlast.NewFlow(flow)))
	}

	nest := 2
	if p.opts.DashSpacing == DashSpacingIndent {
		nest = p.opts.IndentWidth
	}
	return pp.Nest(nest, pp.List(docs))
}

func (p *printer) blockScalar(n *yamlcst.Node) *pp.Doc {
	hasIndentIndicator := n.FindChild(yamlcst.IndentIndicator) != nil
	var docs []*pp.Doc
	for _, child := range n.Children() {
		if !child.IsToken() {
			docs = append(docs, pp.Text(child.Text()))
			continue
		}
		switch child.Kind() {
		case yamlcst.Whitespace:
		case yamlcst.Comment:
			docs = append(docs, pp.Space(), p.comment(child))
		case yamlcst.BlockScalarText:
			docs = append(docs, p.blockScalarText(child.Text(), hasIndentIndicator))
		default:
			docs = append(docs, pp.Text(child.Text()))
		}
	}
	return pp.List(docs)
}

func (p *printer) blockScalarText(text string, hasIndentIndicator bool) *pp.Doc {
	if hasIndentIndicator {
		// With an explicit indentation indicator every leading space is
		// content; copy the body verbatim.
		return pp.List(reflowDocs(text))
	}
	spaceLen := -1
	if first := strings.IndexFunc(text, func(r rune) bool {
		return r != ' ' && r != '\t' && r != '\n' && r != '\r'
	}); first >= 0 {
		if lastBreak := strings.LastIndexByte(text[:first], '\n'); lastBreak >= 0 {
			spaceLen = first - lastBreak - 1
		} else {
			spaceLen = first
		}
	}
	if spaceLen < 0 {
		return pp.Nil()
	}
	var lines []string
	for _, line := range splitLines(text) {
		switch {
		case strings.TrimSpace(line) == "":
			lines = append(lines, "")
		case p.opts.TrimTrailingWhitespaces:
			lines = append(lines, strings.TrimRight(line[spaceLen:], " \t"))
		default:
			lines = append(lines, line[spaceLen:])
		}
	}
	var docs []*pp.Doc
	intersperseLines(&docs, lines)
	return pp.Nest(p.opts.IndentWidth, pp.List(docs))
}

func (p *printer) flow(f yamlast.Flow) *pp.Doc {
	var docs []*pp.Doc
	if props := f.Properties(); props != nil {
		docs = append(docs, p.properties(props))
		hasContent := false
		for _, child := range f.Syntax().Children() {
			switch child.Kind() {
			case yamlcst.DoubleQuotedScalar, yamlcst.SingleQuotedScalar, yamlcst.PlainScalar,
				yamlcst.FlowSeq, yamlcst.FlowMap:
				hasContent = true
			}
		}
		if hasContent {
			docs = append(docs, pp.Space())
		}
		if tok := props.NextSibling(); tok != nil && tok.Kind() == yamlcst.Whitespace {
			docs = append(docs, p.triviasAfter(tok)...)
		}
	}
	switch {
	case f.DoubleQuotedScalar() != nil:
		p.doubleQuoted(f.DoubleQuotedScalar().Text(), &docs)
	case f.SingleQuotedScalar() != nil:
		p.singleQuoted(f.SingleQuotedScalar().Text(), &docs)
	case f.PlainScalar() != nil:
		p.plainScalarDoc(f.PlainScalar().Text(), &docs)
	case f.FlowSeq() != nil:
		docs = append(docs, p.flowSeq(yamlast.NewFlowSeq(f.FlowSeq())))
	case f.FlowMap() != nil:
		docs = append(docs, p.flowMap(yamlast.NewFlowMap(f.FlowMap())))
	case f.Alias() != nil:
		docs = append(docs, p.alias(f.Alias()))
	}
	return pp.List(docs)
}

func (p *printer) doubleQuoted(text string, docs *[]*pp.Doc) {
	inner := text[1 : len(text)-1]
	var quotesOption *Quotes
	quote := `"`
	if !strings.Contains(inner, `\`) {
		switch p.opts.Quotes {
		case QuotesPreferSingle:
			if !strings.ContainsAny(inner, `'"`) {
				quote = `'`
				quotesOption = &p.opts.Quotes
			}
		case QuotesForceSingle:
			quote = `'`
			quotesOption = &p.opts.Quotes
		}
	}
	*docs = append(*docs, pp.Text(quote))
	p.formatQuotedScalar(inner, quotesOption, docs)
	*docs = append(*docs, pp.Text(quote))
}

func (p *printer) singleQuoted(text string, docs *[]*pp.Doc) {
	inner := text[1 : len(text)-1]
	var quotesOption *Quotes
	quote := `'`
	if !strings.ContainsAny(inner, `\"`) {
		switch p.opts.Quotes {
		case QuotesPreferDouble:
			if !strings.ContainsAny(inner, `'"`) {
				quote = `"`
				quotesOption = &p.opts.Quotes
			}
		case QuotesForceDouble:
			quote = `"`
			quotesOption = &p.opts.Quotes
		}
	}
	*docs = append(*docs, pp.Text(quote))
	p.formatQuotedScalar(inner, quotesOption, docs)
	*docs = append(*docs, pp.Text(quote))
}

func (p *printer) plainScalarDoc(text string, docs *[]*pp.Doc) {
	if p.opts.TrimTrailingZero {
		if trimmed, ok := trimTrailingZero(text); ok {
			*docs = append(*docs, pp.Text(trimmed))
			return
		}
	}
	if p.opts.ProseWrap == ProseWrapAlways && !strings.ContainsAny(text, "\n\r") {
		words := strings.Fields(text)
		if len(words) > 1 {
			wordDocs := make([]*pp.Doc, len(words))
			for i, w := range words {
				wordDocs[i] = pp.Text(w)
			}
			*docs = append(*docs, pp.Nest(p.opts.IndentWidth, pp.Fill(wordDocs)))
			return
		}
	}
	var lines []string
	for _, line := range splitLines(text) {
		lines = append(lines, strings.TrimSpace(line))
	}
	intersperseLines(docs, lines)
}

func (p *printer) flowSeq(s yamlast.FlowSeq) *pp.Doc {
	entries := s.Entries()
	if (entries == nil || len(entries.Children()) == 0) && s.Syntax().FindChild(yamlcst.Comment) == nil {
		return pp.Text("[]")
	}
	if entries == nil {
		return pp.Nil()
	}
	body := p.flowEntries(entries, yamlcst.FlowSeqEntry, func(n *yamlcst.Node) *pp.Doc {
		return p.flowSeqEntry(yamlast.NewFlowSeqEntry(n))
	})
	fc := flowCollection{
		openText:         "[",
		closeText:        "]",
		spacing:          p.opts.BracketSpacing,
		open:             s.LBracket(),
		close:            s.RBracket(),
		preferSingleLine: p.opts.flowSequencePreferSingleLine(),
	}
	return p.formatFlowCollection(fc, body)
}

func (p *printer) flowSeqEntry(e yamlast.FlowSeqEntry) *pp.Doc {
	if flow := e.Flow(); flow != nil {
		return p.flow(yamlast.NewFlow(flow))
	}
	if pair := e.FlowPair(); pair != nil {
		return p.flowPair(yamlast.NewFlowPair(pair))
	}
	return pp.List(reflowDocs(e.Syntax().Text()))
}

func (p *printer) flowMap(m yamlast.FlowMap) *pp.Doc {
	entries := m.Entries()
	if (entries == nil || len(entries.Children()) == 0) && m.Syntax().FindChild(yamlcst.Comment) == nil {
		return pp.Text("{}")
	}
	if entries == nil {
		return pp.Nil()
	}
	body := p.flowEntries(entries, yamlcst.FlowMapEntry, func(n *yamlcst.Node) *pp.Doc {
		return p.flowMapEntry(yamlast.NewFlowMapEntry(n))
	})
	fc := flowCollection{
		openText:         "{",
		closeText:        "}",
		spacing:          p.opts.BraceSpacing,
		open:             m.LBrace(),
		close:            m.RBrace(),
		preferSingleLine: p.opts.flowMapPreferSingleLine(),
	}
	return p.formatFlowCollection(fc, body)
}

func (p *printer) flowMapEntry(e yamlast.FlowMapEntry) *pp.Doc {
	return p.formatKeyValuePair(e.Key(), e.Colon(), e.Value())
}

func (p *printer) flowPair(e yamlast.FlowPair) *pp.Doc {
	return p.formatKeyValuePair(e.Key(), e.Colon(), e.Value())
}

func (p *printer) flowMapValue(n *yamlcst.Node) *pp.Doc {
	if flow := n.FindChild(yamlcst.Flow); flow != nil {
		return p.flow(yamlast.NewFlow(flow))
	}
	return pp.Nil()
}

func (p *printer) blockMapValue(n *yamlcst.Node) *pp.Doc {
	if block := n.FindChild(yamlcst.Block); block != nil {
		return p.block(yamlast.NewBlock(block))
	}
	if flow := n.FindChild(yamlcst.Flow); flow != nil {
		return p.flow(yamlast.NewFlow(flow))
	}
	return pp.Nil()
}

// valueDoc dispatches a BlockMapValue or FlowMapValue node.
func (p *printer) valueDoc(n *yamlcst.Node) *pp.Doc {
	if n.Kind() == yamlcst.FlowMapValue {
		return p.flowMapValue(n)
	}
	return p.blockMapValue(n)
}

// keyDoc dispatches a BlockMapKey or FlowMapKey node.
func (p *printer) keyDoc(n *yamlcst.Node) *pp.Doc {
	if n.Kind() == yamlcst.BlockMapKey {
		key := yamlast.NewBlockMapKey(n)
		if block := key.Block(); block != nil {
			return p.formatKey(n, key.QuestionMark(), block)
		}
		return p.formatKey(n, key.QuestionMark(), key.Flow())
	}
	key := yamlast.NewFlowMapKey(n)
	return p.formatKey(n, key.QuestionMark(), key.Flow())
}

// contentDoc dispatches a Block or Flow node.
func (p *printer) contentDoc(n *yamlcst.Node) *pp.Doc {
	if n.Kind() == yamlcst.Block {
		return p.block(yamlast.NewBlock(n))
	}
	return p.flow(yamlast.NewFlow(n))
}

func (p *printer) properties(n *yamlcst.Node) *pp.Doc {
	var docs []*pp.Doc
	for _, child := range n.Children() {
		switch child.Kind() {
		case yamlcst.Whitespace:
			docs = append(docs, pp.LineOrSpace())
		case yamlcst.Comment:
			docs = append(docs, p.comment(child))
		case yamlcst.AnchorProperty:
			docs = append(docs, p.anchorProperty(child))
		case yamlcst.TagProperty:
			docs = append(docs, p.tagProperty(child))
		default:
			docs = append(docs, pp.Text(child.Text()))
		}
	}
	return pp.Group(pp.List(docs))
}

func (p *printer) tagProperty(n *yamlcst.Node) *pp.Doc {
	tag := yamlast.NewTagProperty(n)
	if shorthand := tag.ShorthandTag(); shorthand != nil {
		return p.shorthandTag(shorthand)
	}
	if tag.NonSpecificTag() != nil {
		return pp.Text("!")
	}
	if verbatim := tag.VerbatimTag(); verbatim != nil {
		return pp.Text(verbatim.Text())
	}
	return pp.Text(n.Text())
}

func (p *printer) shorthandTag(n *yamlcst.Node) *pp.Doc {
	tag := yamlast.NewShorthandTag(n)
	var docs []*pp.Doc
	if handle := tag.TagHandle(); handle != nil {
		docs = append(docs, p.tagHandle(handle))
	}
	if chars := tag.TagChar(); chars != nil {
		docs = append(docs, pp.Text(chars.Text()))
	}
	return pp.List(docs)
}

func (p *printer) tagHandle(n *yamlcst.Node) *pp.Doc {
	return pp.Text(n.Text())
}

func (p *printer) anchorProperty(n *yamlcst.Node) *pp.Doc {
	docs := []*pp.Doc{pp.Text("&")}
	if name := yamlast.NewAnchorProperty(n).AnchorName(); name != nil {
		docs = append(docs, pp.Text(name.Text()))
	}
	return pp.List(docs)
}

func (p *printer) alias(n *yamlcst.Node) *pp.Doc {
	docs := []*pp.Doc{pp.Text("*")}
	if name := yamlast.NewAlias(n).AnchorName(); name != nil {
		docs = append(docs, pp.Text(name.Text()))
	}
	return pp.List(docs)
}
