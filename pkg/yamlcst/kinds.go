// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

// SyntaxKind tags every token and branch node in the tree.
type SyntaxKind uint8

const (
	// tokens
	LBrace SyntaxKind = iota
	RBrace
	LBracket
	RBracket
	Ampersand
	Asterisk
	Colon
	Comma
	ExclamationMark
	Plus
	Minus
	QuestionMark
	Bar
	Percent
	IndentIndicator
	GreaterThan
	VerbatimTag
	TagChar
	TagHandleNamed
	TagHandleSecondary
	TagHandlePrimary
	TagPrefix
	AnchorName
	DoubleQuotedScalar
	SingleQuotedScalar
	PlainScalar
	BlockScalarText
	DirectivesEnd
	DirectiveName
	YamlVersion
	DirectiveParam
	DocumentEnd
	Comment
	Whitespace
	BOM
	ErrorToken

	// branch nodes
	Properties
	TagProperty
	ShorthandTag
	TagHandle
	NonSpecificTag
	AnchorProperty
	Alias
	FlowSeq
	FlowSeqEntries
	FlowSeqEntry
	FlowMap
	FlowMapEntries
	FlowMapEntry
	FlowMapKey
	FlowMapValue
	FlowPair
	Flow
	ChompingIndicator
	BlockScalar
	BlockSeq
	BlockSeqEntry
	BlockMap
	BlockMapEntry
	BlockMapKey
	BlockMapValue
	Block
	YamlDirective
	TagDirective
	ReservedDirective
	Directive
	Document
	Root
)

var kindNames = [...]string{
	LBrace:             "LBrace",
	RBrace:             "RBrace",
	LBracket:           "LBracket",
	RBracket:           "RBracket",
	Ampersand:          "Ampersand",
	Asterisk:           "Asterisk",
	Colon:              "Colon",
	Comma:              "Comma",
	ExclamationMark:    "ExclamationMark",
	Plus:               "Plus",
	Minus:              "Minus",
	QuestionMark:       "QuestionMark",
	Bar:                "Bar",
	Percent:            "Percent",
	IndentIndicator:    "IndentIndicator",
	GreaterThan:        "GreaterThan",
	VerbatimTag:        "VerbatimTag",
	TagChar:            "TagChar",
	TagHandleNamed:     "TagHandleNamed",
	TagHandleSecondary: "TagHandleSecondary",
	TagHandlePrimary:   "TagHandlePrimary",
	TagPrefix:          "TagPrefix",
	AnchorName:         "AnchorName",
	DoubleQuotedScalar: "DoubleQuotedScalar",
	SingleQuotedScalar: "SingleQuotedScalar",
	PlainScalar:        "PlainScalar",
	BlockScalarText:    "BlockScalarText",
	DirectivesEnd:      "DirectivesEnd",
	DirectiveName:      "DirectiveName",
	YamlVersion:        "YamlVersion",
	DirectiveParam:     "DirectiveParam",
	DocumentEnd:        "DocumentEnd",
	Comment:            "Comment",
	Whitespace:         "Whitespace",
	BOM:                "BOM",
	ErrorToken:         "ErrorToken",
	Properties:         "Properties",
	TagProperty:        "TagProperty",
	ShorthandTag:       "ShorthandTag",
	TagHandle:          "TagHandle",
	NonSpecificTag:     "NonSpecificTag",
	AnchorProperty:     "AnchorProperty",
	Alias:              "Alias",
	FlowSeq:            "FlowSeq",
	FlowSeqEntries:     "FlowSeqEntries",
	FlowSeqEntry:       "FlowSeqEntry",
	FlowMap:            "FlowMap",
	FlowMapEntries:     "FlowMapEntries",
	FlowMapEntry:       "FlowMapEntry",
	FlowMapKey:         "FlowMapKey",
	FlowMapValue:       "FlowMapValue",
	FlowPair:           "FlowPair",
	Flow:               "Flow",
	ChompingIndicator:  "ChompingIndicator",
	BlockScalar:        "BlockScalar",
	BlockSeq:           "BlockSeq",
	BlockSeqEntry:      "BlockSeqEntry",
	BlockMap:           "BlockMap",
	BlockMapEntry:      "BlockMapEntry",
	BlockMapKey:        "BlockMapKey",
	BlockMapValue:      "BlockMapValue",
	Block:              "Block",
	YamlDirective:      "YamlDirective",
	TagDirective:       "TagDirective",
	ReservedDirective:  "ReservedDirective",
	Directive:          "Directive",
	Document:           "Document",
	Root:               "Root",
}

func (k SyntaxKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsTrivia reports whether the kind is whitespace or a comment.
func (k SyntaxKind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}
