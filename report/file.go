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

// Package report converts parser failures into human-readable diagnostics:
// file/line/column resolution, terminal-aware column widths, and a renderer
// that frames the offending source line.
package report

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/roboteng/roc/region"
)

// File is a source file involved in a diagnostic.
//
// A File is cheap to copy around by pointer and safe for concurrent use; the
// line index is computed on demand, once.
type File struct {
	path, text string

	once      sync.Once
	lineIndex []int
}

// NewFile wraps a path and the text it contained.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns the file's path, as shown in diagnostics.
func (f *File) Path() string {
	return f.path
}

// Text returns the file's full text.
func (f *File) Text() string {
	return f.text
}

// Location resolves a byte position to a line and column.
//
// Columns are measured in terminal cells, not bytes, so a column number can
// be used directly to point at a character in a monospace rendering of the
// line. Both line and column are 1-indexed.
func (f *File) Location(pos region.Position) Location {
	lines := f.lines()
	offset := int(pos.Offset)

	// Find the largest index in lines such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := f.text[lines[line]:offset]
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: stringWidth(0, chunk) + 1,
	}
}

// Line returns the given 1-indexed line, without its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimRight(f.text[start:end], "\r\n")
}

// LineOffsets returns the offsets for the given 1-indexed line, including its
// trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	start = lines[line-1]
	if line < len(lines) {
		return start, lines[line]
	}
	return start, len(f.text)
}

// lines computes the prefix sum of line starts on demand.
func (f *File) lines() []int {
	f.once.Do(func() {
		var next int
		text := f.text
		for {
			// We add 1 to the return value of IndexByte because we want the
			// index immediately *after* the newline byte.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}
		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}

// Location is a line/column pair within a file, along with the byte offset it
// was resolved from.
type Location struct {
	Offset int

	// 1-indexed; Column is in terminal cells.
	Line, Column int
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
