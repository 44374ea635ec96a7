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

package parse

import (
	"github.com/roboteng/roc/internal/arena"
	"github.com/roboteng/roc/region"
)

// StringLiteral parses a double-quoted single-line string, yielding the text
// between the quotes with escapes still encoded.
//
// The recognized escapes are \n, \t, \r, \\, and \". A line break or end of
// input before the closing quote is an EndlessSingleLine failure at the
// opening quote, which makes the renderer underline the whole runaway
// literal's start rather than the end of the file.
func StringLiteral(toErr func(EStringKind, region.Position) EString) Parser[string, EString] {
	return func(_ *arena.Arena, state State, _ uint32) Result[string, EString] {
		start := state.Pos()
		rest := state.Bytes()
		if len(rest) == 0 || rest[0] != '"' {
			return Errored[string, EString](NoProgress, toErr(EStringOpen, start))
		}
		for i := 1; i < len(rest); i++ {
			switch rest[i] {
			case '"':
				text := string(rest[1:i])
				return Ok[string, EString](MadeProgress, text, state.Advance(uint32(i)+1))
			case '\n', '\r':
				return Errored[string, EString](MadeProgress, toErr(EStringEndlessSingleLine, start))
			case '\\':
				if i+1 >= len(rest) || !isEscapable(rest[i+1]) {
					pos := state.Advance(uint32(i)).Pos()
					return Errored[string, EString](MadeProgress, toErr(EStringUnknownEscape, pos))
				}
				i++
			}
		}
		return Errored[string, EString](MadeProgress, toErr(EStringEndlessSingleLine, start))
	}
}

func isEscapable(b byte) bool {
	switch b {
	case 'n', 't', 'r', '\\', '"':
		return true
	}
	return false
}
