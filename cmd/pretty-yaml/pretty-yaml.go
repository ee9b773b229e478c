// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"prettyyaml.dev/prettyyaml/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultPrettyYamlCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pretty-yaml: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
