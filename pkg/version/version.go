// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version of the pretty-yaml binary and library. Set via ldflags on release builds.
var Version = "0.1.0"
