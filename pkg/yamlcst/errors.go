// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	"fmt"

	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

// Severity of a parse error.
type Severity int

const (
	// SeverityRecovered marks problems the parser skipped over; the tree is
	// still complete and formattable.
	SeverityRecovered Severity = iota
	// SeverityFatal marks problems the parser could not recover from.
	SeverityFatal
)

func (s Severity) String() string {
	if s == SeverityFatal {
		return "fatal"
	}
	return "recovered"
}

// ErrorKind classifies parse errors.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	UnterminatedFlowCollection
	UnterminatedQuotedScalar
	InvalidIndentation
	InvalidEscapeSequence
	DirectiveSyntax
)

var errorKindNames = [...]string{
	UnexpectedCharacter:        "unexpected character",
	UnterminatedFlowCollection: "unterminated flow collection",
	UnterminatedQuotedScalar:   "unterminated quoted scalar",
	InvalidIndentation:         "invalid indentation",
	InvalidEscapeSequence:      "invalid escape sequence",
	DirectiveSyntax:            "directive syntax",
}

func (k ErrorKind) String() string { return errorKindNames[k] }

// Error is a single parse diagnostic.
type Error struct {
	Kind     ErrorKind
	Range    filepos.Range
	Msg      string
	Severity Severity
}

func (e Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Range.Start, e.Msg)
}

// Position resolves the error's start offset against a source index.
func (e Error) Position(idx *filepos.Index) filepos.Position {
	return idx.Position(e.Range.Start)
}
