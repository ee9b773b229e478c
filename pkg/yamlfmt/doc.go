// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlfmt formats YAML (preserving comments) under a width-aware
layout. It walks the lossless syntax tree produced by yamlcst and renders it
through the prettyprint layout engine, honoring the style options in
Options.
*/
package yamlfmt
