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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// NonPrint reports whether a rune is unprintable for the purposes of
// diagnostics, meaning the renderer will show it as <U+NNNN>.
func NonPrint(r rune) bool {
	return !strings.ContainsRune(" \r\t\n", r) && !unicode.IsPrint(r)
}

// stringWidth calculates the rendered width of text if placed at the given
// column, accounting for tabstops.
//
// We can't just use uniseg.StringWidth, because that doesn't respect tabstops
// correctly.
func stringWidth(column int, text string) int {
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		next := text
		if haveTab {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		for next != "" {
			nonPrint := strings.IndexFunc(next, NonPrint)
			if nonPrint == -1 {
				column += uniseg.StringWidth(next)
				break
			}

			chunk := next[:nonPrint]
			r, runeLen := utf8.DecodeRuneInString(next[nonPrint:])
			next = next[nonPrint+runeLen:]
			column += uniseg.StringWidth(chunk) + len(fmt.Sprintf("<U+%04X>", r))
		}

		if haveTab {
			column += TabstopWidth - (column % TabstopWidth)
		}
	}
	return column
}
