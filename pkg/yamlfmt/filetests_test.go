// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k14s/difflib"

	"prettyyaml.dev/prettyyaml/pkg/yamlfmt"
)

// Filetests hold an input document and the expected formatting separated by
// a "+++" line.
func TestYAMLFmtFiletests(t *testing.T) {
	var files []string

	err := filepath.Walk("filetests", func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Listing files")
	}
	if len(files) == 0 {
		t.Fatalf("Expected filetests to be present")
	}

	var errs []error

	for _, filePath := range files {
		contents, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatal(err)
		}

		pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)
		if len(pieces) != 2 {
			t.Fatalf("expected file %s to include +++ separator", filePath)
		}

		resultStr, err := yamlfmt.FormatText([]byte(pieces[0]), yamlfmt.DefaultOptions())
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s", filePath, err))
			continue
		}

		if resultStr != pieces[1] {
			diff := difflib.PPDiff(strings.Split(pieces[1], "\n"), strings.Split(resultStr, "\n"))
			errs = append(errs, fmt.Errorf("%s: not equal; diff expected...actual:\n%v", filePath, diff))
		}
	}

	for _, err := range errs {
		t.Errorf("%s", err.Error())
	}
}
