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

// Identifiers are ASCII: a letter followed by letters, digits, and
// underscores. The case of the first letter decides the token class, so the
// two parsers below never overlap and can sit in the same [OneOf] in either
// order.

// LowercaseIdent parses an identifier starting with a lowercase letter.
//
// Keywords are identifiers to this parser; grammars that reserve words place
// their [Word] alternatives ahead of this one.
func LowercaseIdent[E any](toErr func(region.Position) E) Parser[string, E] {
	return ident(isLower, toErr)
}

// UppercaseIdent parses an identifier starting with an uppercase letter.
func UppercaseIdent[E any](toErr func(region.Position) E) Parser[string, E] {
	return ident(isUpper, toErr)
}

func ident[E any](first func(byte) bool, toErr func(region.Position) E) Parser[string, E] {
	return func(_ *arena.Arena, state State, _ uint32) Result[string, E] {
		rest := state.Bytes()
		if len(rest) == 0 || !first(rest[0]) {
			return Errored[string, E](NoProgress, toErr(state.Pos()))
		}
		length := uint32(1)
		for int(length) < len(rest) && isIdentByte(rest[length]) {
			length++
		}
		return Ok[string, E](MadeProgress, string(rest[:length]), state.Advance(length))
	}
}

func isLower(b byte) bool {
	return 'a' <= b && b <= 'z'
}

func isUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

func isIdentByte(b byte) bool {
	return isLower(b) || isUpper(b) || isDigit(b) || b == '_'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
