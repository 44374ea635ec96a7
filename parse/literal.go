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
	"bytes"
	"strings"

	"github.com/roboteng/roc/internal/arena"
	"github.com/roboteng/roc/region"
)

// Leaf matchers. All of them report MadeProgress with an advanced state on a
// match and NoProgress with the caller-supplied error on a mismatch. None of
// them accept a newline as part of the literal; line transitions belong to
// the whitespace parsers, which keep the state's line bookkeeping true.

// Word matches a multi-byte keyword. It matches only when the keyword is
// followed by a space, a comment start, a line ending, or the end of input,
// so that `when` never matches a prefix of `whence`.
func Word[E any](keyword string, toErr func(region.Position) E) Parser[struct{}, E] {
	if strings.ContainsAny(keyword, "\n") {
		panic("parse: Word literal must not contain a newline: " + keyword)
	}

	return func(_ *arena.Arena, state State, _ uint32) Result[struct{}, E] {
		rest := state.Bytes()
		if !bytes.HasPrefix(rest, []byte(keyword)) {
			return Errored[struct{}, E](NoProgress, toErr(state.Pos()))
		}

		// The next byte must not be able to extend an identifier, so that
		// keyword-prefixed identifiers are left alone.
		if len(rest) > len(keyword) {
			switch rest[len(keyword)] {
			case ' ', '#', '\n', '\r':
			default:
				return Errored[struct{}, E](NoProgress, toErr(state.Pos()))
			}
		}
		return Ok[struct{}, E](MadeProgress, struct{}{}, state.Advance(uint32(len(keyword))))
	}
}

// Byte matches a single byte.
func Byte[E any](want byte, toErr func(region.Position) E) Parser[struct{}, E] {
	assertNotNewline(want)

	return func(_ *arena.Arena, state State, _ uint32) Result[struct{}, E] {
		rest := state.Bytes()
		if len(rest) == 0 || rest[0] != want {
			return Errored[struct{}, E](NoProgress, toErr(state.Pos()))
		}
		return Ok[struct{}, E](MadeProgress, struct{}{}, state.Advance(1))
	}
}

// ByteIndent is [Byte] gated by the indentation threshold: if the ambient
// minIndent exceeds the token's column, the token is rejected with NoProgress
// before its bytes are even inspected. Badly placed tokens fail as ordinary
// token mismatches, not as a separate error class.
func ByteIndent[E any](want byte, toErr func(region.Position) E) Parser[struct{}, E] {
	assertNotNewline(want)

	return func(_ *arena.Arena, state State, minIndent uint32) Result[struct{}, E] {
		if minIndent > state.Column() {
			return Errored[struct{}, E](NoProgress, toErr(state.Pos()))
		}

		rest := state.Bytes()
		if len(rest) == 0 || rest[0] != want {
			return Errored[struct{}, E](NoProgress, toErr(state.Pos()))
		}
		return Ok[struct{}, E](MadeProgress, struct{}{}, state.Advance(1))
	}
}

// TwoBytes matches two bytes in a row.
func TwoBytes[E any](first, second byte, toErr func(region.Position) E) Parser[struct{}, E] {
	assertNotNewline(first)
	assertNotNewline(second)
	needle := []byte{first, second}

	return func(_ *arena.Arena, state State, _ uint32) Result[struct{}, E] {
		if !bytes.HasPrefix(state.Bytes(), needle) {
			return Errored[struct{}, E](NoProgress, toErr(state.Pos()))
		}
		return Ok[struct{}, E](MadeProgress, struct{}{}, state.Advance(2))
	}
}

// ThreeBytes matches three bytes in a row.
func ThreeBytes[E any](first, second, third byte, toErr func(region.Position) E) Parser[struct{}, E] {
	assertNotNewline(first)
	assertNotNewline(second)
	assertNotNewline(third)
	needle := []byte{first, second, third}

	return func(_ *arena.Arena, state State, _ uint32) Result[struct{}, E] {
		if !bytes.HasPrefix(state.Bytes(), needle) {
			return Errored[struct{}, E](NoProgress, toErr(state.Pos()))
		}
		return Ok[struct{}, E](MadeProgress, struct{}{}, state.Advance(3))
	}
}

func assertNotNewline(b byte) {
	if b == '\n' {
		panic("parse: literal matchers do not handle newlines")
	}
}
