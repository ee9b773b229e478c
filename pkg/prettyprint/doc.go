// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package prettyprint is a small width-aware layout engine.

Layouts are trees of Doc values built from a handful of primitives: literal
text, line breaks of varying hardness, indentation, and groups. A group is
rendered on a single line when its flat width fits into the remaining print
width, otherwise its soft line breaks turn into real ones.
*/
package prettyprint
