// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var yamlExts = []string{".yaml", ".yml"}

// File is one YAML input. Stdin ("-") is read once and cached.
type File struct {
	path  string
	stdin bool
	data  []byte
}

func (f *File) Path() string {
	if f.stdin {
		return "stdin"
	}
	return f.path
}

func (f *File) IsStdin() bool { return f.stdin }

func (f *File) Bytes() ([]byte, error) {
	if f.data != nil {
		return f.data, nil
	}
	if f.stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		f.data = data
		return data, nil
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading file '%s'", f.path)
	}
	return data, nil
}

// Replace writes data back to the file, preserving its permissions.
func (f *File) Replace(data []byte) error {
	if f.stdin {
		return errors.New("cannot write back to stdin")
	}
	info, err := os.Stat(f.path)
	if err != nil {
		return errors.Wrapf(err, "checking file '%s'", f.path)
	}
	if err := os.WriteFile(f.path, data, info.Mode()); err != nil {
		return errors.Wrapf(err, "writing file '%s'", f.path)
	}
	return nil
}

// NewSortedFilesFromPaths expands paths into a sorted list of YAML files.
// Directories are walked recursively, picking up .yaml and .yml files.
func NewSortedFilesFromPaths(paths []string) ([]*File, error) {
	var out []*File
	for _, path := range paths {
		if path == "-" {
			out = append(out, &File{stdin: true})
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "checking path '%s'", path)
		}
		if !info.IsDir() {
			out = append(out, &File{path: path})
			continue
		}
		var collected []string
		err = filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
			if err != nil || fi.IsDir() {
				return err
			}
			if hasYamlExt(walkedPath) {
				collected = append(collected, walkedPath)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "listing directory '%s'", path)
		}
		sort.Strings(collected)
		for _, p := range collected {
			out = append(out, &File{path: p})
		}
	}
	return out, nil
}

func hasYamlExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range yamlExts {
		if ext == known {
			return true
		}
	}
	return false
}
