// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	"prettyyaml.dev/prettyyaml/pkg/version"
)

type PrettyYamlOptions struct{}

func NewDefaultPrettyYamlOptions() *PrettyYamlOptions {
	return &PrettyYamlOptions{}
}

func NewDefaultPrettyYamlCmd() *cobra.Command {
	return NewPrettyYamlCmd(NewDefaultPrettyYamlOptions())
}

func NewPrettyYamlCmd(o *PrettyYamlOptions) *cobra.Command {
	cmd := NewFmtCmd(NewFmtOptions())

	cmd.Use = "pretty-yaml"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "pretty-yaml formats YAML"
	cmd.Long = `pretty-yaml formats YAML, preserving comments, under a width-aware layout.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewFmtCmd(NewFmtOptions())) // for scripting as "pretty-yaml fmt"
	cmd.AddCommand(NewWebsiteCmd(NewWebsiteOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
