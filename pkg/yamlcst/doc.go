// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlcst parses YAML 1.2 into a lossless concrete syntax tree.

Every byte of the input, including whitespace, line breaks and comments, is
kept as a token in the tree; concatenating the text of all leaves reproduces
the input exactly. The tree is split into immutable "green" nodes and an
ephemeral "red" view (Node) that adds parent pointers and absolute offsets.

The parser is error tolerant: recoverable problems are collected into the
Tree's error list while parsing continues. Only unterminated quoted scalars
and flow collections missing their closing bracket abort parsing; a closing
bracket without a matching opener is skipped as a recovered error.
*/
package yamlcst
