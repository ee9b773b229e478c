// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides byte-offset based source positions and ranges.

The parser records plain byte offsets; line and column numbers are derived
lazily through an Index built once per source buffer. Columns are counted in
Unicode code points, not bytes, so error messages line up with what editors
display.
*/
package filepos
