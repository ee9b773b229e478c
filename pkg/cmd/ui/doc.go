// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

// Package ui provides the command line output abstraction.
package ui
