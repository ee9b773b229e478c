// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlast offers typed, trivia-filtering accessors over the concrete
syntax tree produced by yamlcst. The wrappers own nothing: they borrow the
underlying nodes, and every accessor is a cheap scan over direct children.
*/
package yamlast
