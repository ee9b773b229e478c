// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"

	"prettyyaml.dev/prettyyaml/pkg/version"
)

type Quotes string

const (
	QuotesPreferDouble Quotes = "preferDouble"
	QuotesPreferSingle Quotes = "preferSingle"
	QuotesForceDouble  Quotes = "forceDouble"
	QuotesForceSingle  Quotes = "forceSingle"
)

type DashSpacing string

const (
	DashSpacingOneSpace DashSpacing = "oneSpace"
	DashSpacingIndent   DashSpacing = "indent"
)

type LineBreak string

const (
	LineBreakLf   LineBreak = "lf"
	LineBreakCrlf LineBreak = "crlf"
)

type ProseWrap string

const (
	ProseWrapPreserve ProseWrap = "preserve"
	ProseWrapAlways   ProseWrap = "always"
)

// Options is the full configuration surface of the formatter. The zero
// value is not usable; start from DefaultOptions.
type Options struct {
	PrintWidth               int         `toml:"printWidth" yaml:"printWidth" json:"printWidth"`
	UseTabs                  bool        `toml:"useTabs" yaml:"useTabs" json:"useTabs"`
	IndentWidth              int         `toml:"indentWidth" yaml:"indentWidth" json:"indentWidth"`
	LineBreak                LineBreak   `toml:"lineBreak" yaml:"lineBreak" json:"lineBreak"`
	Quotes                   Quotes      `toml:"quotes" yaml:"quotes" json:"quotes"`
	TrailingComma            bool        `toml:"trailingComma" yaml:"trailingComma" json:"trailingComma"`
	FormatComments           bool        `toml:"formatComments" yaml:"formatComments" json:"formatComments"`
	IndentBlockSequenceInMap bool        `toml:"indentBlockSequenceInMap" yaml:"indentBlockSequenceInMap" json:"indentBlockSequenceInMap"`
	BraceSpacing             bool        `toml:"braceSpacing" yaml:"braceSpacing" json:"braceSpacing"`
	BracketSpacing           bool        `toml:"bracketSpacing" yaml:"bracketSpacing" json:"bracketSpacing"`
	DashSpacing              DashSpacing `toml:"dashSpacing" yaml:"dashSpacing" json:"dashSpacing"`
	TrimTrailingWhitespaces  bool        `toml:"trimTrailingWhitespaces" yaml:"trimTrailingWhitespaces" json:"trimTrailingWhitespaces"`
	TrimTrailingZero         bool        `toml:"trimTrailingZero" yaml:"trimTrailingZero" json:"trimTrailingZero"`
	ProseWrap                ProseWrap   `toml:"proseWrap" yaml:"proseWrap" json:"proseWrap"`
	PreferSingleLine         bool        `toml:"preferSingleLine" yaml:"preferSingleLine" json:"preferSingleLine"`

	// Per-kind overrides; nil inherits PreferSingleLine.
	FlowSequencePreferSingleLine *bool `toml:"flowSequence.preferSingleLine" yaml:"flowSequence.preferSingleLine" json:"flowSequence.preferSingleLine"`
	FlowMapPreferSingleLine      *bool `toml:"flowMap.preferSingleLine" yaml:"flowMap.preferSingleLine" json:"flowMap.preferSingleLine"`

	IgnoreCommentDirective string `toml:"ignoreCommentDirective" yaml:"ignoreCommentDirective" json:"ignoreCommentDirective"`

	// RequiredVersion is an optional go-version constraint the running
	// formatter version must satisfy (e.g. ">= 0.1.0").
	RequiredVersion string `toml:"requiredVersion" yaml:"requiredVersion" json:"requiredVersion"`
}

func DefaultOptions() Options {
	return Options{
		PrintWidth:               80,
		UseTabs:                  false,
		IndentWidth:              2,
		LineBreak:                LineBreakLf,
		Quotes:                   QuotesPreferDouble,
		TrailingComma:            true,
		FormatComments:           false,
		IndentBlockSequenceInMap: true,
		BraceSpacing:             true,
		BracketSpacing:           false,
		DashSpacing:              DashSpacingOneSpace,
		TrimTrailingWhitespaces:  true,
		TrimTrailingZero:         false,
		ProseWrap:                ProseWrapPreserve,
		PreferSingleLine:         false,
		IgnoreCommentDirective:   "pretty-yaml-ignore",
	}
}

// Validate rejects configurations the formatter cannot honor.
func (o *Options) Validate() error {
	if o.PrintWidth < 0 {
		return fmt.Errorf("printWidth must not be negative, got %d", o.PrintWidth)
	}
	if o.IndentWidth < 1 {
		return fmt.Errorf("indentWidth must be at least 1, got %d", o.IndentWidth)
	}
	switch o.LineBreak {
	case LineBreakLf, LineBreakCrlf:
	default:
		return fmt.Errorf("unknown lineBreak %q", o.LineBreak)
	}
	switch o.Quotes {
	case QuotesPreferDouble, QuotesPreferSingle, QuotesForceDouble, QuotesForceSingle:
	default:
		return fmt.Errorf("unknown quotes option %q", o.Quotes)
	}
	switch o.DashSpacing {
	case DashSpacingOneSpace, DashSpacingIndent:
	default:
		return fmt.Errorf("unknown dashSpacing %q", o.DashSpacing)
	}
	switch o.ProseWrap {
	case ProseWrapPreserve, ProseWrapAlways:
	default:
		return fmt.Errorf("unknown proseWrap %q", o.ProseWrap)
	}
	if o.RequiredVersion != "" {
		constraint, err := goversion.NewConstraint(o.RequiredVersion)
		if err != nil {
			return fmt.Errorf("invalid requiredVersion constraint %q: %s", o.RequiredVersion, err)
		}
		current, err := goversion.NewVersion(version.Version)
		if err != nil {
			return fmt.Errorf("invalid build version %q: %s", version.Version, err)
		}
		if !constraint.Check(current) {
			return fmt.Errorf("pretty-yaml version %s does not satisfy required version %q",
				version.Version, o.RequiredVersion)
		}
	}
	return nil
}

func (o *Options) flowSequencePreferSingleLine() bool {
	if o.FlowSequencePreferSingleLine != nil {
		return *o.FlowSequencePreferSingleLine
	}
	return o.PreferSingleLine
}

func (o *Options) flowMapPreferSingleLine() bool {
	if o.FlowMapPreferSingleLine != nil {
		return *o.FlowMapPreferSingleLine
	}
	return o.PreferSingleLine
}

func (o *Options) lineBreakString() string {
	if o.LineBreak == LineBreakCrlf {
		return "\r\n"
	}
	return "\n"
}
