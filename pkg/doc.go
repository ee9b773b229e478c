// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
pretty-yaml.

From top-down, the code is layered in this way:

# Entry Points

pretty-yaml is built into two executable formats:

	./cmd/pretty-yaml                  // a command-line tool
	./cmd/pretty-yaml-lambda-website   // an AWS Lambda function

# Commands

	pkg/cmd          // fmt (the default), version, website
	pkg/cmd/ui       // TTY output abstraction
	pkg/files        // collecting input files for the CLI
	pkg/website      // the HTTP format service

# The Engine

Formatting is a pure function from bytes and options to bytes. The engine is
split into the lossless parser and the width-aware renderer:

	pkg/yamlcst      // cursor, green/red tree, builder, parser, diagnostics
	pkg/yamlast      // typed, trivia-filtering view over the tree
	pkg/prettyprint  // layout primitives (text, lines, nest, group, fill)
	pkg/yamlfmt      // options plus the tree-to-layout formatter

# Utilities

	pkg/filepos      // byte offsets, ranges, lazy line/column resolution
	pkg/version      // version string
*/
package pkg
