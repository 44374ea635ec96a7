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

// NumberLiteral parses an optionally negated integer literal, yielding its
// source text. The value is not decoded here; range checking belongs to a
// later phase that can report overflow with the whole literal's region.
//
// A lone minus fails with progress: once the sign is consumed the literal is
// committed.
func NumberLiteral[E any](toErr func(region.Position) E) Parser[string, E] {
	return func(_ *arena.Arena, state State, _ uint32) Result[string, E] {
		rest := state.Bytes()
		length := uint32(0)
		if len(rest) > 0 && rest[0] == '-' {
			length = 1
		}
		digits := uint32(0)
		for int(length) < len(rest) && isDigit(rest[length]) {
			length++
			digits++
		}
		if digits == 0 {
			return Errored[string, E](ProgressWhen(length > 0), toErr(state.Pos()))
		}
		return Ok[string, E](MadeProgress, string(rest[:length]), state.Advance(length))
	}
}
