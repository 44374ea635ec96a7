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

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer renders diagnostics in a compiler-style plain-text layout:
//
//	error: parsing stopped inside a list
//	 --> demo.roc:2:7
//	  |
//	2 |   [1, 2
//	  |       ^
type Renderer struct {
	// HideSnippet suppresses the quoted source window, leaving only the
	// message and location lines.
	HideSnippet bool
}

// Render writes the diagnostic to w.
func (r Renderer) Render(w io.Writer, d Diagnostic) error {
	loc := d.File.Location(d.Primary())

	if _, err := fmt.Fprintf(w, "error: %s\n --> %s:%v\n", d.Message(), d.File.Path(), loc); err != nil {
		return err
	}
	if r.HideSnippet {
		return nil
	}

	line := d.File.Line(loc.Line)
	number := strconv.Itoa(loc.Line)
	margin := strings.Repeat(" ", len(number))

	// The caret sits under the column the diagnostic points at; columns are
	// 1-indexed terminal cells, so column-1 cells of padding precede it.
	_, err := fmt.Fprintf(w, "%s |\n%s | %s\n%s | %s^\n",
		margin, number, line, margin, strings.Repeat(" ", loc.Column-1))
	return err
}
