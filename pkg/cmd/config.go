// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"prettyyaml.dev/prettyyaml/pkg/cmd/ui"
	"prettyyaml.dev/prettyyaml/pkg/yamlfmt"
)

var configFileNames = []string{".pretty-yaml.toml", ".pretty-yaml.yml", ".pretty-yaml.yaml"}

// LoadOptions returns formatter options from the given config file, or from
// a config file discovered in the working directory, or the defaults.
func LoadOptions(path string, ui ui.UI) (yamlfmt.Options, error) {
	opts := yamlfmt.DefaultOptions()

	if path == "" {
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return opts, nil
		}
	}

	ui.Debugf("loading config from %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("Reading config file '%s': %s", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("Parsing config file '%s': %s", path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("Parsing config file '%s': %s", path, err)
		}
	default:
		return opts, fmt.Errorf("Unsupported config file extension '%s'", filepath.Ext(path))
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("Config file '%s': %s", path, err)
	}
	return opts, nil
}
