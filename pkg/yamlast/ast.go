// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
)

func childNode(n *yamlcst.Node, kind yamlcst.SyntaxKind) *yamlcst.Node {
	return n.FindChild(kind)
}

func childNodes(n *yamlcst.Node, kind yamlcst.SyntaxKind) []*yamlcst.Node {
	var out []*yamlcst.Node
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Root is the stream: documents plus surrounding trivia.
type Root struct{ n *yamlcst.Node }

func NewRoot(n *yamlcst.Node) (Root, bool) {
	if n == nil || n.Kind() != yamlcst.Root {
		return Root{}, false
	}
	return Root{n}, true
}

func (r Root) Syntax() *yamlcst.Node { return r.n }

func (r Root) Documents() []Document {
	var out []Document
	for _, c := range childNodes(r.n, yamlcst.Document) {
		out = append(out, Document{c})
	}
	return out
}

type Document struct{ n *yamlcst.Node }

func (d Document) Syntax() *yamlcst.Node { return d.n }

// Body returns the document's content node (a Block or Flow), if any.
func (d Document) Body() *yamlcst.Node {
	if b := childNode(d.n, yamlcst.Block); b != nil {
		return b
	}
	return childNode(d.n, yamlcst.Flow)
}

type Directive struct{ n *yamlcst.Node }

func (d Directive) Syntax() *yamlcst.Node { return d.n }

func (d Directive) YamlDirective() *yamlcst.Node     { return childNode(d.n, yamlcst.YamlDirective) }
func (d Directive) TagDirective() *yamlcst.Node      { return childNode(d.n, yamlcst.TagDirective) }
func (d Directive) ReservedDirective() *yamlcst.Node { return childNode(d.n, yamlcst.ReservedDirective) }

// Block is a node in block context: optional properties plus a block map,
// block sequence or block scalar.
type Block struct{ n *yamlcst.Node }

func (b Block) Syntax() *yamlcst.Node { return b.n }

func (b Block) Properties() *yamlcst.Node  { return childNode(b.n, yamlcst.Properties) }
func (b Block) BlockMap() (BlockMap, bool) { return asBlockMap(childNode(b.n, yamlcst.BlockMap)) }
func (b Block) BlockSeq() (BlockSeq, bool) { return asBlockSeq(childNode(b.n, yamlcst.BlockSeq)) }
func (b Block) BlockScalar() *yamlcst.Node { return childNode(b.n, yamlcst.BlockScalar) }

func asBlockMap(n *yamlcst.Node) (BlockMap, bool) {
	if n == nil {
		return BlockMap{}, false
	}
	return BlockMap{n}, true
}

func asBlockSeq(n *yamlcst.Node) (BlockSeq, bool) {
	if n == nil {
		return BlockSeq{}, false
	}
	return BlockSeq{n}, true
}

// Flow is a node in flow context: optional properties plus a scalar, flow
// collection or alias.
type Flow struct{ n *yamlcst.Node }

func (f Flow) Syntax() *yamlcst.Node { return f.n }

func (f Flow) Properties() *yamlcst.Node         { return childNode(f.n, yamlcst.Properties) }
func (f Flow) DoubleQuotedScalar() *yamlcst.Node { return childNode(f.n, yamlcst.DoubleQuotedScalar) }
func (f Flow) SingleQuotedScalar() *yamlcst.Node { return childNode(f.n, yamlcst.SingleQuotedScalar) }
func (f Flow) PlainScalar() *yamlcst.Node        { return childNode(f.n, yamlcst.PlainScalar) }
func (f Flow) FlowSeq() *yamlcst.Node            { return childNode(f.n, yamlcst.FlowSeq) }
func (f Flow) FlowMap() *yamlcst.Node            { return childNode(f.n, yamlcst.FlowMap) }
func (f Flow) Alias() *yamlcst.Node              { return childNode(f.n, yamlcst.Alias) }

type BlockMap struct{ n *yamlcst.Node }

func (m BlockMap) Syntax() *yamlcst.Node { return m.n }

func (m BlockMap) Entries() []BlockMapEntry {
	var out []BlockMapEntry
	for _, c := range childNodes(m.n, yamlcst.BlockMapEntry) {
		out = append(out, BlockMapEntry{c})
	}
	return out
}

type BlockMapEntry struct{ n *yamlcst.Node }

func (e BlockMapEntry) Syntax() *yamlcst.Node { return e.n }

func (e BlockMapEntry) Key() *yamlcst.Node   { return childNode(e.n, yamlcst.BlockMapKey) }
func (e BlockMapEntry) Colon() *yamlcst.Node { return childNode(e.n, yamlcst.Colon) }
func (e BlockMapEntry) Value() *yamlcst.Node { return childNode(e.n, yamlcst.BlockMapValue) }

type BlockSeq struct{ n *yamlcst.Node }

func (s BlockSeq) Syntax() *yamlcst.Node { return s.n }

func (s BlockSeq) Entries() []BlockSeqEntry {
	var out []BlockSeqEntry
	for _, c := range childNodes(s.n, yamlcst.BlockSeqEntry) {
		out = append(out, BlockSeqEntry{c})
	}
	return out
}

type BlockSeqEntry struct{ n *yamlcst.Node }

func (e BlockSeqEntry) Syntax() *yamlcst.Node { return e.n }

func (e BlockSeqEntry) Minus() *yamlcst.Node { return childNode(e.n, yamlcst.Minus) }
func (e BlockSeqEntry) Block() *yamlcst.Node { return childNode(e.n, yamlcst.Block) }
func (e BlockSeqEntry) Flow() *yamlcst.Node  { return childNode(e.n, yamlcst.Flow) }

type FlowSeq struct{ n *yamlcst.Node }

func NewFlowSeq(n *yamlcst.Node) FlowSeq { return FlowSeq{n} }

func (s FlowSeq) Syntax() *yamlcst.Node   { return s.n }
func (s FlowSeq) LBracket() *yamlcst.Node { return childNode(s.n, yamlcst.LBracket) }
func (s FlowSeq) RBracket() *yamlcst.Node { return childNode(s.n, yamlcst.RBracket) }
func (s FlowSeq) Entries() *yamlcst.Node  { return childNode(s.n, yamlcst.FlowSeqEntries) }

func FlowSeqEntriesOf(entries *yamlcst.Node) []FlowSeqEntry {
	var out []FlowSeqEntry
	if entries == nil {
		return out
	}
	for _, c := range childNodes(entries, yamlcst.FlowSeqEntry) {
		out = append(out, FlowSeqEntry{c})
	}
	return out
}

type FlowSeqEntry struct{ n *yamlcst.Node }

func (e FlowSeqEntry) Syntax() *yamlcst.Node { return e.n }

func (e FlowSeqEntry) Flow() *yamlcst.Node     { return childNode(e.n, yamlcst.Flow) }
func (e FlowSeqEntry) FlowPair() *yamlcst.Node { return childNode(e.n, yamlcst.FlowPair) }

type FlowMap struct{ n *yamlcst.Node }

func NewFlowMap(n *yamlcst.Node) FlowMap { return FlowMap{n} }

func (m FlowMap) Syntax() *yamlcst.Node  { return m.n }
func (m FlowMap) LBrace() *yamlcst.Node  { return childNode(m.n, yamlcst.LBrace) }
func (m FlowMap) RBrace() *yamlcst.Node  { return childNode(m.n, yamlcst.RBrace) }
func (m FlowMap) Entries() *yamlcst.Node { return childNode(m.n, yamlcst.FlowMapEntries) }

func FlowMapEntriesOf(entries *yamlcst.Node) []FlowMapEntry {
	var out []FlowMapEntry
	if entries == nil {
		return out
	}
	for _, c := range childNodes(entries, yamlcst.FlowMapEntry) {
		out = append(out, FlowMapEntry{c})
	}
	return out
}

type FlowMapEntry struct{ n *yamlcst.Node }

func (e FlowMapEntry) Syntax() *yamlcst.Node { return e.n }

func (e FlowMapEntry) Key() *yamlcst.Node   { return childNode(e.n, yamlcst.FlowMapKey) }
func (e FlowMapEntry) Colon() *yamlcst.Node { return childNode(e.n, yamlcst.Colon) }
func (e FlowMapEntry) Value() *yamlcst.Node { return childNode(e.n, yamlcst.FlowMapValue) }

type FlowPair struct{ n *yamlcst.Node }

func NewFlowPair(n *yamlcst.Node) FlowPair { return FlowPair{n} }

func (e FlowPair) Syntax() *yamlcst.Node { return e.n }

func (e FlowPair) Key() *yamlcst.Node   { return childNode(e.n, yamlcst.FlowMapKey) }
func (e FlowPair) Colon() *yamlcst.Node { return childNode(e.n, yamlcst.Colon) }
func (e FlowPair) Value() *yamlcst.Node { return childNode(e.n, yamlcst.FlowMapValue) }

type FlowMapKey struct{ n *yamlcst.Node }

func NewFlowMapKey(n *yamlcst.Node) FlowMapKey { return FlowMapKey{n} }

func (k FlowMapKey) Syntax() *yamlcst.Node       { return k.n }
func (k FlowMapKey) QuestionMark() *yamlcst.Node { return childNode(k.n, yamlcst.QuestionMark) }
func (k FlowMapKey) Flow() *yamlcst.Node         { return childNode(k.n, yamlcst.Flow) }

type BlockMapKey struct{ n *yamlcst.Node }

func NewBlockMapKey(n *yamlcst.Node) BlockMapKey { return BlockMapKey{n} }

func (k BlockMapKey) Syntax() *yamlcst.Node       { return k.n }
func (k BlockMapKey) QuestionMark() *yamlcst.Node { return childNode(k.n, yamlcst.QuestionMark) }
func (k BlockMapKey) Flow() *yamlcst.Node         { return childNode(k.n, yamlcst.Flow) }
func (k BlockMapKey) Block() *yamlcst.Node        { return childNode(k.n, yamlcst.Block) }

type Properties struct{ n *yamlcst.Node }

func NewProperties(n *yamlcst.Node) Properties { return Properties{n} }

func (p Properties) Syntax() *yamlcst.Node         { return p.n }
func (p Properties) Anchor() *yamlcst.Node         { return childNode(p.n, yamlcst.AnchorProperty) }
func (p Properties) Tag() *yamlcst.Node            { return childNode(p.n, yamlcst.TagProperty) }

type TagProperty struct{ n *yamlcst.Node }

func NewTagProperty(n *yamlcst.Node) TagProperty { return TagProperty{n} }

func (t TagProperty) Syntax() *yamlcst.Node         { return t.n }
func (t TagProperty) ShorthandTag() *yamlcst.Node   { return childNode(t.n, yamlcst.ShorthandTag) }
func (t TagProperty) NonSpecificTag() *yamlcst.Node { return childNode(t.n, yamlcst.NonSpecificTag) }
func (t TagProperty) VerbatimTag() *yamlcst.Node    { return childNode(t.n, yamlcst.VerbatimTag) }

type ShorthandTag struct{ n *yamlcst.Node }

func NewShorthandTag(n *yamlcst.Node) ShorthandTag { return ShorthandTag{n} }

func (s ShorthandTag) Syntax() *yamlcst.Node    { return s.n }
func (s ShorthandTag) TagHandle() *yamlcst.Node { return childNode(s.n, yamlcst.TagHandle) }
func (s ShorthandTag) TagChar() *yamlcst.Node   { return childNode(s.n, yamlcst.TagChar) }

type TagHandle struct{ n *yamlcst.Node }

func NewTagHandle(n *yamlcst.Node) TagHandle { return TagHandle{n} }

func (h TagHandle) Syntax() *yamlcst.Node    { return h.n }
func (h TagHandle) Primary() *yamlcst.Node   { return childNode(h.n, yamlcst.TagHandlePrimary) }
func (h TagHandle) Secondary() *yamlcst.Node { return childNode(h.n, yamlcst.TagHandleSecondary) }
func (h TagHandle) Named() *yamlcst.Node     { return childNode(h.n, yamlcst.TagHandleNamed) }

type AnchorProperty struct{ n *yamlcst.Node }

func NewAnchorProperty(n *yamlcst.Node) AnchorProperty { return AnchorProperty{n} }

func (a AnchorProperty) Syntax() *yamlcst.Node     { return a.n }
func (a AnchorProperty) AnchorName() *yamlcst.Node { return childNode(a.n, yamlcst.AnchorName) }

type Alias struct{ n *yamlcst.Node }

func NewAlias(n *yamlcst.Node) Alias { return Alias{n} }

func (a Alias) Syntax() *yamlcst.Node     { return a.n }
func (a Alias) AnchorName() *yamlcst.Node { return childNode(a.n, yamlcst.AnchorName) }

// NewBlock and NewFlow cast raw nodes into their typed views.
func NewBlock(n *yamlcst.Node) Block { return Block{n} }
func NewFlow(n *yamlcst.Node) Flow   { return Flow{n} }

func NewDocument(n *yamlcst.Node) Document   { return Document{n} }
func NewDirective(n *yamlcst.Node) Directive { return Directive{n} }

func NewBlockMap(n *yamlcst.Node) BlockMap           { return BlockMap{n} }
func NewBlockSeq(n *yamlcst.Node) BlockSeq           { return BlockSeq{n} }
func NewBlockMapEntry(n *yamlcst.Node) BlockMapEntry { return BlockMapEntry{n} }
func NewBlockSeqEntry(n *yamlcst.Node) BlockSeqEntry { return BlockSeqEntry{n} }
func NewFlowMapEntry(n *yamlcst.Node) FlowMapEntry   { return FlowMapEntry{n} }
func NewFlowSeqEntry(n *yamlcst.Node) FlowSeqEntry   { return FlowSeqEntry{n} }
