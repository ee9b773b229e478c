// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"prettyyaml.dev/prettyyaml/pkg/website"
	"prettyyaml.dev/prettyyaml/pkg/yamlfmt"
)

type WebsiteOptions struct {
	ListenAddr      string
	RedirectToHTTPS bool
}

func NewWebsiteOptions() *WebsiteOptions {
	return &WebsiteOptions{}
}

func NewWebsiteCmd(o *WebsiteOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "website",
		Short: "Starts the format service HTTP server",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.ListenAddr, "listen-addr", "localhost:8080", "Listen address")
	cmd.Flags().BoolVar(&o.RedirectToHTTPS, "redirect-to-https", true, "Redirect to HTTPs address")
	return cmd
}

func (o *WebsiteOptions) Server() *website.Server {
	opts := website.ServerOpts{
		ListenAddr:      o.ListenAddr,
		RedirectToHTTPS: o.RedirectToHTTPS,
		FormatFunc:      o.format,
	}
	return website.NewServer(opts)
}

func (o *WebsiteOptions) Run() error {
	return o.Server().Run()
}

func (o *WebsiteOptions) format(data []byte, query url.Values) ([]byte, error) {
	opts, err := optionsFromQuery(query)
	if err != nil {
		return nil, err
	}
	out, err := yamlfmt.FormatText(data, opts)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// optionsFromQuery applies option overrides given as query parameters, eg
// /format?printWidth=100&quotes=preferSingle.
func optionsFromQuery(query url.Values) (yamlfmt.Options, error) {
	opts := yamlfmt.DefaultOptions()
	for key, vals := range query {
		if len(vals) == 0 {
			continue
		}
		val := vals[0]
		var err error
		switch key {
		case "printWidth":
			opts.PrintWidth, err = strconv.Atoi(val)
		case "useTabs":
			opts.UseTabs, err = strconv.ParseBool(val)
		case "indentWidth":
			opts.IndentWidth, err = strconv.Atoi(val)
		case "lineBreak":
			opts.LineBreak = yamlfmt.LineBreak(val)
		case "quotes":
			opts.Quotes = yamlfmt.Quotes(val)
		case "trailingComma":
			opts.TrailingComma, err = strconv.ParseBool(val)
		case "formatComments":
			opts.FormatComments, err = strconv.ParseBool(val)
		case "indentBlockSequenceInMap":
			opts.IndentBlockSequenceInMap, err = strconv.ParseBool(val)
		case "braceSpacing":
			opts.BraceSpacing, err = strconv.ParseBool(val)
		case "bracketSpacing":
			opts.BracketSpacing, err = strconv.ParseBool(val)
		case "dashSpacing":
			opts.DashSpacing = yamlfmt.DashSpacing(val)
		case "trimTrailingWhitespaces":
			opts.TrimTrailingWhitespaces, err = strconv.ParseBool(val)
		case "trimTrailingZero":
			opts.TrimTrailingZero, err = strconv.ParseBool(val)
		case "proseWrap":
			opts.ProseWrap = yamlfmt.ProseWrap(val)
		case "preferSingleLine":
			opts.PreferSingleLine, err = strconv.ParseBool(val)
		case "ignoreCommentDirective":
			opts.IgnoreCommentDirective = val
		default:
			return opts, fmt.Errorf("Unknown option %q", key)
		}
		if err != nil {
			return opts, fmt.Errorf("Invalid value for option %q: %s", key, err)
		}
	}
	return opts, opts.Validate()
}
