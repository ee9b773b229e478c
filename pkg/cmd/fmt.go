// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/k14s/difflib"
	"github.com/spf13/cobra"

	"prettyyaml.dev/prettyyaml/pkg/cmd/ui"
	"prettyyaml.dev/prettyyaml/pkg/files"
	"prettyyaml.dev/prettyyaml/pkg/yamlast"
	"prettyyaml.dev/prettyyaml/pkg/yamlcst"
	"prettyyaml.dev/prettyyaml/pkg/yamlfmt"
)

type FmtOptions struct {
	Files      []string
	Write      bool
	Check      bool
	ConfigPath string
	Debug      bool

	flags    yamlfmt.Options
	flagsSet *cobra.Command
}

func NewFmtOptions() *FmtOptions {
	return &FmtOptions{flags: yamlfmt.DefaultOptions()}
}

func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Format YAML files",
		RunE:  func(c *cobra.Command, _ []string) error { o.flagsSet = c; return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File or directory (ie local path, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&o.Write, "write", "w", false, "Rewrite files in place instead of printing to stdout")
	cmd.Flags().BoolVar(&o.Check, "check", false, "Exit non-zero when files are not already formatted; print a diff")
	cmd.Flags().StringVar(&o.ConfigPath, "config", "", "Config file (default: .pretty-yaml.toml or .pretty-yaml.yml in the working directory)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")

	registerOptionFlags(cmd, &o.flags)
	return cmd
}

func registerOptionFlags(cmd *cobra.Command, opts *yamlfmt.Options) {
	cmd.Flags().IntVar(&opts.PrintWidth, "print-width", opts.PrintWidth, "Target maximum line width")
	cmd.Flags().BoolVar(&opts.UseTabs, "use-tabs", opts.UseTabs, "Indent with tabs instead of spaces")
	cmd.Flags().IntVar(&opts.IndentWidth, "indent-width", opts.IndentWidth, "Columns per indentation level")
	cmd.Flags().StringVar((*string)(&opts.LineBreak), "line-break", string(opts.LineBreak), "Line break style (lf|crlf)")
	cmd.Flags().StringVar((*string)(&opts.Quotes), "quotes", string(opts.Quotes), "Quote style (preferDouble|preferSingle|forceDouble|forceSingle)")
	cmd.Flags().BoolVar(&opts.TrailingComma, "trailing-comma", opts.TrailingComma, "Add a trailing comma to broken flow collections")
	cmd.Flags().BoolVar(&opts.FormatComments, "format-comments", opts.FormatComments, "Ensure a space after '#' in comments")
	cmd.Flags().BoolVar(&opts.IndentBlockSequenceInMap, "indent-block-sequence-in-map", opts.IndentBlockSequenceInMap, "Indent block sequences under their map key")
	cmd.Flags().BoolVar(&opts.BraceSpacing, "brace-spacing", opts.BraceSpacing, "Add spaces inside braces of single-line flow maps")
	cmd.Flags().BoolVar(&opts.BracketSpacing, "bracket-spacing", opts.BracketSpacing, "Add spaces inside brackets of single-line flow sequences")
	cmd.Flags().StringVar((*string)(&opts.DashSpacing), "dash-spacing", string(opts.DashSpacing), "Spacing after sequence dashes (oneSpace|indent)")
	cmd.Flags().BoolVar(&opts.TrimTrailingWhitespaces, "trim-trailing-whitespaces", opts.TrimTrailingWhitespaces, "Remove trailing whitespace from emitted lines")
	cmd.Flags().BoolVar(&opts.TrimTrailingZero, "trim-trailing-zero", opts.TrimTrailingZero, "Trim trailing zeros from decimal numbers")
	cmd.Flags().StringVar((*string)(&opts.ProseWrap), "prose-wrap", string(opts.ProseWrap), "Prose wrapping for plain scalars (preserve|always)")
	cmd.Flags().BoolVar(&opts.PreferSingleLine, "prefer-single-line", opts.PreferSingleLine, "Try single-line flow collections regardless of source line breaks")
	cmd.Flags().StringVar(&opts.IgnoreCommentDirective, "ignore-comment-directive", opts.IgnoreCommentDirective, "Comment directive marking the next node as not-to-be-formatted")
}

func (o *FmtOptions) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	opts, err := LoadOptions(o.ConfigPath, ui)
	if err != nil {
		return err
	}
	if o.flagsSet != nil {
		applyOptionFlags(o.flagsSet, &opts, &o.flags)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	paths := o.Files
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	filesToProcess, err := files.NewSortedFilesFromPaths(paths)
	if err != nil {
		return err
	}

	var unformatted []string
	for _, file := range filesToProcess {
		data, err := file.Bytes()
		if err != nil {
			return err
		}

		tree, err := yamlcst.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %s", file.Path(), err)
		}
		o.warnRecovered(ui, file.Path(), tree)

		result := ""
		if len(data) > 0 {
			root, _ := yamlast.NewRoot(tree.Root)
			result = yamlfmt.PrintTree(root, opts)
		}

		switch {
		case o.Check:
			if result != string(data) {
				unformatted = append(unformatted, file.Path())
				diff := difflib.PPDiff(strings.Split(string(data), "\n"), strings.Split(result, "\n"))
				ui.Printf("%s is not formatted:\n%s\n", file.Path(), diff)
			}
		case o.Write && !file.IsStdin():
			if result != string(data) {
				if err := file.Replace([]byte(result)); err != nil {
					return err
				}
				ui.Debugf("rewrote %s\n", file.Path())
			}
		default:
			ui.Printf("%s", result)
		}
	}

	if len(unformatted) > 0 {
		return fmt.Errorf("%d file(s) are not formatted", len(unformatted))
	}
	return nil
}

func (o *FmtOptions) warnRecovered(ui ui.UI, path string, tree *yamlcst.Tree) {
	for _, parseErr := range tree.Errors {
		pos := parseErr.Position(tree.Index())
		ui.Diagnosticf(parseErr.Severity, "%s:%s: %s: %s",
			path, pos.AsCompactString(), parseErr.Kind, parseErr.Msg)
	}
}

// applyOptionFlags copies values of explicitly-set option flags over the
// config-file options so the command line wins.
func applyOptionFlags(cmd *cobra.Command, base, flags *yamlfmt.Options) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("print-width") {
		base.PrintWidth = flags.PrintWidth
	}
	if set("use-tabs") {
		base.UseTabs = flags.UseTabs
	}
	if set("indent-width") {
		base.IndentWidth = flags.IndentWidth
	}
	if set("line-break") {
		base.LineBreak = flags.LineBreak
	}
	if set("quotes") {
		base.Quotes = flags.Quotes
	}
	if set("trailing-comma") {
		base.TrailingComma = flags.TrailingComma
	}
	if set("format-comments") {
		base.FormatComments = flags.FormatComments
	}
	if set("indent-block-sequence-in-map") {
		base.IndentBlockSequenceInMap = flags.IndentBlockSequenceInMap
	}
	if set("brace-spacing") {
		base.BraceSpacing = flags.BraceSpacing
	}
	if set("bracket-spacing") {
		base.BracketSpacing = flags.BracketSpacing
	}
	if set("dash-spacing") {
		base.DashSpacing = flags.DashSpacing
	}
	if set("trim-trailing-whitespaces") {
		base.TrimTrailingWhitespaces = flags.TrimTrailingWhitespaces
	}
	if set("trim-trailing-zero") {
		base.TrimTrailingZero = flags.TrimTrailingZero
	}
	if set("prose-wrap") {
		base.ProseWrap = flags.ProseWrap
	}
	if set("prefer-single-line") {
		base.PreferSingleLine = flags.PreferSingleLine
	}
	if set("ignore-comment-directive") {
		base.IgnoreCommentDirective = flags.IgnoreCommentDirective
	}
}
