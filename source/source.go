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

// Package source abstracts where module text comes from: real files, an
// in-memory table for tests, or any chain of fallbacks.
package source

import (
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/tidwall/btree"

	"github.com/roboteng/roc/report"
)

// Opener is a mechanism for opening source files.
type Opener interface {
	// Open opens a file, potentially returning an error.
	//
	// A return value of [fs.ErrNotExist] is given special treatment by some
	// Opener adapters, such as the [Openers] type.
	Open(path string) (*report.File, error)
}

// Map implements [Opener] via lookup in an in-memory table, mainly for tests
// and for tooling that synthesizes sources. Paths iterate in sorted order, so
// anything enumerating a Map's contents is deterministic.
//
// Missing entries result in [fs.ErrNotExist]. A Map is not safe for
// concurrent mutation.
type Map struct {
	files btree.Map[string, *report.File]
}

// NewMap creates a [Map] holding the given texts keyed by path.
func NewMap(texts map[string]string) *Map {
	m := new(Map)
	for path, text := range texts {
		m.Add(path, text)
	}
	return m
}

// Add adds a new file to this map, replacing any previous file at that path.
func (m *Map) Add(path, text string) {
	m.files.Set(path, report.NewFile(path, text))
}

// Paths returns every path in the map, in sorted order.
func (m *Map) Paths() []string {
	paths := make([]string, 0, m.files.Len())
	m.files.Scan(func(path string, _ *report.File) bool {
		paths = append(paths, path)
		return true
	})
	return paths
}

// Open implements [Opener].
func (m *Map) Open(path string) (*report.File, error) {
	file, ok := m.files.Get(path)
	if !ok {
		return nil, fs.ErrNotExist
	}
	return file, nil
}

// FS wraps an [fs.FS] to give it an [Opener] interface.
type FS struct {
	fs.FS

	// If not nil, paths are passed to this function before being forwarded
	// to fs.
	PathMapper func(string) string
}

// Open implements [Opener].
func (f *FS) Open(path string) (*report.File, error) {
	mapped := path
	if f.PathMapper != nil {
		mapped = f.PathMapper(path)
	}

	file, err := f.FS.Open(mapped)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var buf strings.Builder
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, err
	}
	return report.NewFile(path, buf.String()), nil
}

// Openers wraps a sequence of [Opener]s.
//
// When calling Open, it calls each Opener in sequence until one does not
// return [fs.ErrNotExist].
type Openers []Opener

// Open implements [Opener].
func (o *Openers) Open(path string) (*report.File, error) {
	for _, opener := range *o {
		file, err := opener.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return file, err
	}
	return nil, fs.ErrNotExist
}
