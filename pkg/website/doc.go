// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

// Package website serves the HTTP format service backing the playground.
package website
