// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden runs file-system-driven test corpora: each input file under
// a testdata root is one test case, and each case's expected outputs live
// next to it as files with an extra extension.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes one corpus of golden tests.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// The name of an environment variable. When set, cases whose names match
	// its doublestar glob run in refresh mode: expected outputs are
	// rewritten from the observed values instead of compared, and the test
	// fails so a refresh cannot pass CI silently.
	Refresh string

	// The file extension (without a dot) of files that define a test case.
	Extension string

	// The extensions of the expected outputs, appended to the case's file
	// name. A missing output file is treated as expecting empty output.
	Outputs []string

	// Test runs one case and returns one string per entry of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Run enumerates the corpus and runs every case as a subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir()
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	refresh := os.Getenv(c.Refresh)
	if c.Refresh != "" && refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in $%s: %q", c.Refresh, refresh)
		}
		t.Logf("golden: refreshing expectations because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, casePath := range cases {
		name, _ := filepath.Rel(testDir, casePath)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(casePath)
			if err != nil {
				t.Fatalf("golden: error while loading input %q: %v", casePath, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: Test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			doRefresh, _ := doublestar.Match(refresh, name)
			for i, ext := range c.Outputs {
				outPath := fmt.Sprint(casePath, ".", ext)
				if doRefresh {
					c.refresh(t, outPath, results[i])
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: error while loading output %q: %v", outPath, err)
					continue
				}
				if diff := diff(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", outPath, diff)
				}
			}
		})
	}
}

// refresh rewrites one expectation file, deleting it when the observed output
// is empty.
func (c Corpus) refresh(t *testing.T, path, got string) {
	if got == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("golden: error while deleting output %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(got), 0o666); err != nil {
		t.Errorf("golden: error while writing output %q: %v", path, err)
	}
}

// diff returns a unified diff between got and want, or "" if they are equal.
func diff(got, want string) string {
	if got == want {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

// callerDir returns the directory of the test file that called [Corpus.Run].
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
