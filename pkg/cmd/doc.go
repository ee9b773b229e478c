// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements the pretty-yaml command line interface.
package cmd
