// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"strings"

	pp "prettyyaml.dev/prettyyaml/pkg/prettyprint"
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

func countNewlines(s string) int { return strings.Count(s, "\n") }

func containsBreak(s string) bool { return strings.ContainsAny(s, "\n\r") }

// splitLines splits on "\n", dropping one trailing "\r" per line so CRLF
// input never leaks carriage returns into the output.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func nodeChild(n *yamlcst.Node, kind yamlcst.SyntaxKind) *yamlcst.Node {
	if n == nil {
		return nil
	}
	return n.FindChild(kind)
}

// firstNodeChild returns the first non-token child.
func firstNodeChild(n *yamlcst.Node) *yamlcst.Node {
	for _, c := range n.Children() {
		if !c.IsToken() {
			return c
		}
	}
	return nil
}

// reflowDocs renders text byte-for-byte, one doc per line with no
// reindentation (line breaks still follow the configured style).
func reflowDocs(text string) []*pp.Doc {
	var docs []*pp.Doc
	for i, line := range splitLines(text) {
		if i > 0 {
			docs = append(docs, pp.EmptyLine())
		}
		docs = append(docs, pp.Text(line))
	}
	return docs
}

func intersperseLines(docs *[]*pp.Doc, lines []string) {
	for i, line := range lines {
		if i == 0 {
			*docs = append(*docs, pp.Text(line))
			continue
		}
		if line == "" {
			*docs = append(*docs, pp.EmptyLine())
		} else {
			*docs = append(*docs, pp.HardLine(), pp.Text(line))
		}
	}
}

func (p *printer) comment(tok *yamlcst.Node) *pp.Doc {
	text := strings.TrimRight(tok.Text(), " \t\r\n")
	if p.opts.FormatComments {
		content := strings.TrimPrefix(text, "#")
		if content != "" && !strings.HasPrefix(content, " ") && !strings.HasPrefix(content, "\t") {
			return pp.Text("# " + content)
		}
	}
	return pp.Text(text)
}

// trivias renders the trivia run following `after`, skipping the `skip`
// node (the whitespace owned by a later construct). hasComment is shared
// across calls that build up one line.
func (p *printer) trivias(after *yamlcst.Node, skip *yamlcst.Node, hasComment *bool) []*pp.Doc {
	var toks []*yamlcst.Node
	for _, sib := range after.FollowingSiblings() {
		if sib == skip {
			continue
		}
		if !sib.Kind().IsTrivia() {
			break
		}
		toks = append(toks, sib)
	}

	var docs []*pp.Doc
	for i, tok := range toks {
		switch tok.Kind() {
		case yamlcst.Whitespace:
			switch n := countNewlines(tok.Text()); {
			case n == 0:
				if *hasComment {
					docs = append(docs, pp.HardLine())
				} else if i+1 < len(toks) && toks[i+1].Kind() == yamlcst.Comment {
					docs = append(docs, pp.Space())
				} else {
					docs = append(docs, pp.LineOrSpace())
				}
			case n == 1:
				if *hasComment {
					docs = append(docs, pp.HardLine())
				} else {
					docs = append(docs, pp.LineOrSpace())
				}
			default:
				docs = append(docs, pp.EmptyLine(), pp.HardLine())
			}
		case yamlcst.Comment:
			docs = append(docs, p.comment(tok))
			*hasComment = true
		}
	}
	return docs
}

func (p *printer) triviasAfter(tok *yamlcst.Node) []*pp.Doc {
	hasComment := false
	return p.trivias(tok, nil, &hasComment)
}

// lineBreakSeparatedList renders containers whose items sit on their own
// lines (documents in a stream, block map/sequence entries), preserving
// blank lines collapsed to at most one.
func (p *printer) lineBreakSeparatedList(container *yamlcst.Node, itemKind yamlcst.SyntaxKind,
	itemDoc func(*yamlcst.Node) *pp.Doc, skipSideWs bool, firstContent int) []*pp.Doc {

	var docs []*pp.Doc
	children := container.Children()
	prevKind := yamlcst.Whitespace
	for i, child := range children {
		kind := child.Kind()
		if !child.IsToken() {
			if p.shouldIgnore(child) {
				docs = append(docs, reflowDocs(child.Text())...)
			} else if kind == itemKind {
				docs = append(docs, itemDoc(child))
			}
			prevKind = kind
			continue
		}
		switch kind {
		case yamlcst.Comment:
			docs = append(docs, p.comment(child))
		case yamlcst.Whitespace:
			if !skipSideWs || child.Index() > firstContent && i+1 < len(children) {
				switch n := countNewlines(child.Text()); {
				case n == 0:
					if prevKind == yamlcst.Comment {
						docs = append(docs, pp.HardLine())
					} else {
						docs = append(docs, pp.Space())
					}
				case n == 1:
					docs = append(docs, pp.HardLine())
				default:
					docs = append(docs, pp.EmptyLine(), pp.HardLine())
				}
			}
		case yamlcst.ErrorToken:
			docs = append(docs, reflowDocs(child.Text())...)
		}
		prevKind = kind
	}
	return docs
}

// shouldIgnore reports whether node is preceded by a comment matching the
// configured ignore directive and must be copied verbatim.
func (p *printer) shouldIgnore(node *yamlcst.Node) bool {
	var candidate *yamlcst.Node
	if prev := node.PrevSibling(); prev != nil {
		candidate = prev.PrevSibling()
	}
	if candidate == nil {
		if parent := node.Parent(); parent != nil {
			if prev := parent.PrevSibling(); prev != nil {
				candidate = prev.PrevSibling()
			}
		}
	}
	if candidate == nil || candidate.Kind() != yamlcst.Comment {
		return false
	}
	body := strings.TrimPrefix(candidate.Text(), "#")
	rest, found := strings.CutPrefix(strings.TrimLeft(body, " \t"), p.opts.IgnoreCommentDirective)
	if !found {
		return false
	}
	return rest == "" || isASCIISpace(rest[0])
}

func isASCIISpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// canOmitQuestionMark reports whether an explicit "? key" can be printed in
// implicit form without changing meaning.
func canOmitQuestionMark(key *yamlcst.Node) bool {
	parent := key.Parent()
	omittable := parent != nil && parent.Kind() == yamlcst.FlowMapEntry
	if !omittable && parent != nil {
		omittable = nodeChild(parent, yamlcst.FlowMapValue) != nil ||
			nodeChild(parent, yamlcst.BlockMapValue) != nil
	}
	if !omittable {
		return false
	}
	if key.FindChild(yamlcst.Comment) != nil {
		return false
	}
	for _, sib := range key.FollowingSiblings() {
		if !sib.Kind().IsTrivia() {
			break
		}
		if sib.Kind() == yamlcst.Comment {
			return false
		}
	}
	flow := nodeChild(key, yamlcst.Flow)
	if flow == nil {
		return false
	}
	for _, child := range flow.Children() {
		if child.IsToken() {
			switch child.Kind() {
			case yamlcst.DoubleQuotedScalar, yamlcst.SingleQuotedScalar, yamlcst.PlainScalar:
				if !containsBreak(child.Text()) {
					return true
				}
			}
		} else if child.Kind() == yamlcst.Alias {
			return true
		}
	}
	return false
}

func (p *printer) formatKey(keySyntax, questionMark, content *yamlcst.Node) *pp.Doc {
	var docs []*pp.Doc

	hasLineBreak := false
	omitted := questionMark == nil || canOmitQuestionMark(keySyntax)
	if questionMark != nil {
		if !omitted {
			docs = append(docs, pp.Text("?"))
		}
		if tok := questionMark.NextToken(); tok != nil && tok.Kind() == yamlcst.Whitespace && content != nil {
			if !omitted {
				if containsBreak(tok.Text()) {
					docs = append(docs, pp.HardLine())
					hasLineBreak = true
				} else {
					docs = append(docs, pp.Space())
				}
			}
			var lastWs *yamlcst.Node
			if prev := content.PrevSibling(); prev != nil && prev.Kind() == yamlcst.Whitespace {
				lastWs = prev
			}
			if lastWs != nil {
				hasComment := false
				docs = append(docs, p.trivias(tok, lastWs, &hasComment)...)
				if hasComment {
					docs = append(docs, pp.HardLine())
					hasLineBreak = true
				}
			}
		}
	}

	if content != nil {
		doc := p.contentDoc(content)
		if content.Kind() == yamlcst.Block && !hasLineBreak {
			docs = append(docs, pp.Nest(2, doc))
		} else {
			docs = append(docs, doc)
		}
	}

	doc := pp.Group(pp.List(docs))
	if hasLineBreak || content != nil && content.ContainsLineBreakToken() {
		return pp.Nest(p.opts.IndentWidth, doc)
	}
	return doc
}

func (p *printer) formatKeyValuePair(key, colon, value *yamlcst.Node) *pp.Doc {
	var docs []*pp.Doc

	var triviaBeforeColon []*pp.Doc
	hasQuestionMark := false
	if key != nil {
		hasQuestionMark = key.FindChild(yamlcst.QuestionMark) != nil && !canOmitQuestionMark(key)
		docs = append(docs, p.keyDoc(key))
		if tok := key.NextSibling(); tok != nil && tok.Kind() == yamlcst.Whitespace {
			triviaBeforeColon = p.triviasAfter(tok)
		}

		if flow := nodeChild(key, yamlcst.Flow); flow != nil {
			last := flow.LastChild()
			if nodeChild(flow, yamlcst.Alias) != nil || last != nil && last.Kind() == yamlcst.Properties {
				docs = append(docs, pp.Space())
			}
		}
	}

	hasTriviaBeforeColon := len(triviaBeforeColon) > 0
	if colon != nil {
		if hasQuestionMark {
			if !hasTriviaBeforeColon {
				docs = append(docs, pp.HardLine())
			} else {
				docs = append(docs, pp.Space(), pp.List(triviaBeforeColon))
			}
			docs = append(docs, pp.Text(":"))
		} else {
			docs = append(docs, pp.Text(":"))
			if hasTriviaBeforeColon {
				docs = append(docs, pp.Space(), pp.Nest(p.opts.IndentWidth, pp.List(triviaBeforeColon)))
			}
		}

		hasLineBreak := false
		if value != nil {
			var valueDocs []*pp.Doc
			if tok := colon.NextToken(); tok != nil && tok.Kind() == yamlcst.Whitespace {
				var lastWs *yamlcst.Node
				if prev := value.PrevSibling(); prev != nil && prev.Kind() == yamlcst.Whitespace {
					lastWs = prev
				}
				if lastWs != nil {
					hasComment := false
					valueDocs = append(valueDocs, p.trivias(colon, lastWs, &hasComment)...)
					if hasComment {
						valueDocs = append(valueDocs, pp.HardLine())
						hasLineBreak = true
					}
				}
				switch {
				case hasLineBreak:
				case value.Kind() == yamlcst.FlowMapValue:
					valueDocs = append(valueDocs, pp.Space())
				case containsBreak(tok.Text()) || valueStartsWithBlockSeq(value) && !hasQuestionMark:
					valueDocs = append(valueDocs, pp.HardLine())
					hasLineBreak = true
				default:
					valueDocs = append(valueDocs, pp.Space())
				}
			} else if !hasTriviaBeforeColon {
				docs = append(docs, pp.Space())
			}

			valueDocs = append(valueDocs, p.valueDoc(value))
			doc := pp.List(valueDocs)
			block := nodeChild(value, yamlcst.Block)
			switch {
			case block != nil && nodeChild(block, yamlcst.BlockSeq) != nil:
				if p.opts.IndentBlockSequenceInMap {
					docs = append(docs, pp.Nest(p.opts.IndentWidth, doc))
				} else {
					docs = append(docs, doc)
				}
			case hasLineBreak,
				block != nil && nodeChild(block, yamlcst.BlockMap) != nil,
				valueFlowHasLineBreak(value):
				docs = append(docs, pp.Nest(p.opts.IndentWidth, doc))
			default:
				docs = append(docs, doc)
			}
		}
	}

	return pp.Group(pp.List(docs))
}

// valueStartsWithBlockSeq reports whether the value is a block sequence not
// preceded by properties; those move to the next line in block maps.
func valueStartsWithBlockSeq(value *yamlcst.Node) bool {
	block := nodeChild(value, yamlcst.Block)
	if block == nil {
		return false
	}
	first := firstNodeChild(block)
	return first != nil && first.Kind() == yamlcst.BlockSeq
}

func valueFlowHasLineBreak(value *yamlcst.Node) bool {
	flow := nodeChild(value, yamlcst.Flow)
	return flow != nil && flow.ContainsLineBreakToken()
}

type flowCollection struct {
	openText, closeText string
	spacing             bool
	open, close         *yamlcst.Node
	preferSingleLine    bool
}

func (fc flowCollection) spaceDoc() *pp.Doc {
	if fc.spacing {
		return pp.LineOrSpace()
	}
	return pp.LineOrNil()
}

func (p *printer) formatFlowCollection(fc flowCollection, body *pp.Doc) *pp.Doc {
	var docs []*pp.Doc
	docs = append(docs, pp.Text(fc.openText))

	if fc.open != nil {
		if tok := fc.open.NextToken(); tok != nil && tok.Kind() == yamlcst.Whitespace {
			if fc.preferSingleLine {
				docs = append(docs, fc.spaceDoc())
			} else if containsBreak(tok.Text()) {
				docs = append(docs, pp.HardLine())
			} else {
				docs = append(docs, fc.spaceDoc())
			}
			docs = append(docs, p.triviasAfter(tok)...)
		} else {
			docs = append(docs, fc.spaceDoc())
			docs = append(docs, p.triviasAfter(fc.open)...)
		}
	}

	docs = append(docs, body)

	hasComment := false
	if fc.close != nil {
		var lastWs *yamlcst.Node
		if prev := fc.close.PrevToken(); prev != nil && prev.Kind() == yamlcst.Whitespace {
			lastWs = prev
		}
		var lastNonTrivia *yamlcst.Node
		for sib := fc.close.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
			if !sib.Kind().IsTrivia() {
				lastNonTrivia = sib
				break
			}
		}
		// Trailing trivia of a comma-less last entry lives inside the
		// entries node; descend so comments there are not lost. Trivia after
		// a trailing comma is already emitted with the entries.
		if lastNonTrivia != nil &&
			(lastNonTrivia.Kind() == yamlcst.FlowSeqEntries || lastNonTrivia.Kind() == yamlcst.FlowMapEntries) {
			children := lastNonTrivia.Children()
			for i := len(children) - 1; i >= 0; i-- {
				if children[i].Kind().IsTrivia() {
					continue
				}
				switch children[i].Kind() {
				case yamlcst.FlowSeqEntry, yamlcst.FlowMapEntry:
					lastNonTrivia = children[i]
				case yamlcst.Comma:
					// Comments here were already emitted with the entries;
					// they still pin the closer onto its own line.
					for _, sib := range children[i].FollowingSiblings() {
						if !sib.Kind().IsTrivia() {
							break
						}
						if sib.Kind() == yamlcst.Comment {
							hasComment = true
						}
					}
					lastNonTrivia = nil
				}
				break
			}
		}
		if lastNonTrivia != nil {
			docs = append(docs, p.trivias(lastNonTrivia, lastWs, &hasComment)...)
		}
	}

	closeSep := fc.spaceDoc()
	if hasComment {
		closeSep = pp.HardLine()
	}
	return pp.Group(pp.Concat(
		pp.Nest(p.opts.IndentWidth, pp.List(docs)),
		closeSep,
		pp.Text(fc.closeText),
	))
}

func (p *printer) flowEntries(entriesNode *yamlcst.Node, entryKind yamlcst.SyntaxKind,
	entryDoc func(*yamlcst.Node) *pp.Doc) *pp.Doc {

	var entries []*yamlcst.Node
	var commas []*yamlcst.Node
	for _, child := range entriesNode.Children() {
		switch child.Kind() {
		case entryKind:
			entries = append(entries, child)
		case yamlcst.Comma:
			commas = append(commas, child)
		}
	}

	var docs []*pp.Doc
	for i, entry := range entries {
		docs = append(docs, entryDoc(entry))
		if i+1 < len(entries) {
			docs = append(docs, pp.Text(","))
		} else if p.opts.TrailingComma {
			docs = append(docs, pp.IfBreak(pp.Nil(), pp.Text(",")))
		}

		var comma *yamlcst.Node
		if i < len(commas) {
			comma = commas[i]
		}
		hasCommentBeforeComma := false
		if comma != nil {
			if prev := comma.PrevToken(); prev != nil && prev.Kind() == yamlcst.Whitespace {
				docs = append(docs, p.trivias(entry, prev, &hasCommentBeforeComma)...)
			}
			if i+1 < len(entries) {
				trailing := p.trivias(comma, nil, &hasCommentBeforeComma)
				if len(trailing) > 0 {
					docs = append(docs, trailing...)
				} else {
					docs = append(docs, pp.LineOrSpace())
				}
			} else {
				// After the final comma only comments are emitted; the
				// closing bracket owns the final separator.
				docs = append(docs, p.trailingCommaTrivia(comma)...)
			}
		}
	}
	return pp.List(docs)
}

// trailingCommaTrivia renders trivia after a collection's final comma up to
// and including the last comment; trailing whitespace is dropped.
func (p *printer) trailingCommaTrivia(comma *yamlcst.Node) []*pp.Doc {
	var toks []*yamlcst.Node
	for _, sib := range comma.FollowingSiblings() {
		if !sib.Kind().IsTrivia() {
			break
		}
		toks = append(toks, sib)
	}
	lastComment := -1
	for i, tok := range toks {
		if tok.Kind() == yamlcst.Comment {
			lastComment = i
		}
	}
	if lastComment < 0 {
		return nil
	}
	var docs []*pp.Doc
	hasComment := false
	for _, tok := range toks[:lastComment+1] {
		switch tok.Kind() {
		case yamlcst.Whitespace:
			switch n := countNewlines(tok.Text()); {
			case n == 0:
				docs = append(docs, pp.Space())
			case n == 1:
				if hasComment {
					docs = append(docs, pp.HardLine())
				} else {
					docs = append(docs, pp.LineOrSpace())
				}
			default:
				docs = append(docs, pp.EmptyLine(), pp.HardLine())
			}
		case yamlcst.Comment:
			docs = append(docs, p.comment(tok))
			hasComment = true
		}
	}
	return docs
}

func (p *printer) formatQuotedScalar(text string, quotesOption *Quotes, docs *[]*pp.Doc) {
	if text == "" {
		return
	}
	lines := splitLines(text)
	last := len(lines) - 1
	for i, line := range lines {
		if i > 0 {
			line = strings.TrimLeft(line, " \t")
		}
		if i < last && p.opts.TrimTrailingWhitespaces {
			line = strings.TrimRight(line, " \t")
		}
		switch {
		case i == 0:
			*docs = append(*docs, pp.Text(formatQuotedScalarLine(line, quotesOption)))
		case line == "":
			*docs = append(*docs, pp.EmptyLine())
		default:
			*docs = append(*docs, pp.HardLine(), pp.Text(formatQuotedScalarLine(line, quotesOption)))
		}
	}
}

func formatQuotedScalarLine(s string, quotesOption *Quotes) string {
	if quotesOption == nil {
		return s
	}
	switch *quotesOption {
	case QuotesForceDouble:
		return strings.ReplaceAll(s, "''", "'")
	case QuotesForceSingle:
		return strings.ReplaceAll(s, "'", "''")
	default:
		return s
	}
}

// trimTrailingZero rewrites decimal literals like "1.20" to "1.2" and
// "1.0" to "1". Non-numeric text is reported as not applicable.
func trimTrailingZero(text string) (string, bool) {
	intStart, intEnd, fracStart, fracEnd, ok := parseFloatRanges(text)
	if !ok {
		return "", false
	}
	fraction := text[fracStart:fracEnd]
	if !strings.HasSuffix(fraction, "0") {
		return "", false
	}
	trimmed := strings.TrimRight(fraction, "0")
	if trimmed == "." {
		out := text[:fracStart] + text[fracEnd:]
		if intStart == intEnd {
			out = out[:intStart] + "0" + out[intStart:]
		}
		return out, true
	}
	return text[:fracStart] + trimmed + text[fracEnd:], true
}

// parseFloatRanges locates the integer and fraction (dot included) parts of
// a decimal literal with optional sign and exponent. ok is false when text
// is not exactly such a literal.
func parseFloatRanges(text string) (intStart, intEnd, fracStart, fracEnd int, ok bool) {
	s := text
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	intStart = len(text) - len(s)
	s = strings.TrimLeft(s, "0123456789")
	intEnd = len(text) - len(s)

	fracStart = intEnd
	fracEnd = len(text)
	if !strings.HasPrefix(s, ".") {
		return 0, 0, 0, 0, false
	}
	s = s[1:]
	s = strings.TrimLeft(s, "0123456789")

	if strings.HasPrefix(s, "e") || strings.HasPrefix(s, "E") {
		fracEnd = len(text) - len(s)
		s = s[1:]
		if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
			s = s[1:]
		}
		s = strings.TrimLeft(s, "0123456789")
	}
	if s != "" {
		return 0, 0, 0, 0, false
	}
	return intStart, intEnd, fracStart, fracEnd, true
}
