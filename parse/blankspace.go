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
	"unicode/utf8"

	"github.com/roboteng/roc/ast"
	"github.com/roboteng/roc/internal/arena"
	"github.com/roboteng/roc/region"
)

// Whitespace is not discarded: the elements of it that a formatter would need
// to reproduce, comments and line breaks, come back as the parsed value.
// Spaces within a line produce nothing.
//
// Whitespace is also where the indentation ledger is maintained. Every time a
// scan crosses a newline it marks the new line's indent on the State, so that
// the indentation combinators can compare columns against it.

// Spaces consumes spaces, newlines, and comments, yielding the comments and
// newlines in order. It succeeds consuming nothing when no whitespace is
// present.
//
// Tabs, stray carriage returns, other ASCII control characters, and invalid
// UTF-8 inside comments fail through toBad as committed errors.
func Spaces[E any](toBad func(BadInput, region.Position) E) Parser[[]ast.CommentOrNewline, E] {
	return func(ar *arena.Arena, state State, _ uint32) Result[[]ast.CommentOrNewline, E] {
		return consumeSpaces(ar, state, toBad)
	}
}

// Space0E is [Spaces] with an indentation floor: if the scan crossed a
// newline, whatever follows the whitespace must sit at column minIndent or
// further right, or the parser fails through toIndent at the position after
// the whitespace.
func Space0E[E any](
	toBad func(BadInput, region.Position) E,
	toIndent func(region.Position) E,
) Parser[[]ast.CommentOrNewline, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[[]ast.CommentOrNewline, E] {
		r := consumeSpaces(ar, state, toBad)
		if r.Failed() {
			return r
		}
		if len(r.Value) > 0 && r.State.Column() < minIndent {
			return Errored[[]ast.CommentOrNewline, E](r.Progress, toIndent(r.State.Pos()))
		}
		return r
	}
}

// SpacesBefore runs p after optional whitespace, discarding the trivia.
func SpacesBefore[T, E any](p Parser[T, E], toBad func(BadInput, region.Position) E) Parser[T, E] {
	return SkipFirst(Spaces(toBad), p)
}

// SpacesAround runs p between optional whitespace on both sides.
func SpacesAround[T, E any](p Parser[T, E], toBad func(BadInput, region.Position) E) Parser[T, E] {
	return SkipSecond(SkipFirst(Spaces(toBad), p), Spaces(toBad))
}

func consumeSpaces[E any](
	ar *arena.Arena,
	state State,
	toBad func(BadInput, region.Position) E,
) Result[[]ast.CommentOrNewline, E] {
	start := state
	var found []ast.CommentOrNewline

	for {
		rest := state.Bytes()
		if len(rest) == 0 {
			break
		}
		switch b := rest[0]; {
		case b == ' ':
			state = state.Advance(1)
		case b == '\n':
			state = state.AdvanceNewline()
			found = append(found, ast.CommentOrNewline{Kind: ast.Newline})
		case b == '\r':
			if len(rest) < 2 || rest[1] != '\n' {
				return spacesErr[E](toBad(HasMisplacedCarriageReturn, state.Pos()))
			}
			state = state.Advance(1).AdvanceNewline()
			found = append(found, ast.CommentOrNewline{Kind: ast.Newline})
		case b == '\t':
			return spacesErr[E](toBad(HasTab, state.Pos()))
		case b == '#':
			comment, next, bad := consumeComment(state)
			if bad != nil {
				return spacesErr[E](toBad(bad.input, bad.pos))
			}
			state = next
			found = append(found, comment)
		case b < ' ':
			return spacesErr[E](toBad(HasAsciiControl, state.Pos()))
		default:
			// First byte of the next token. If a newline was crossed, this is
			// the line's indentation mark.
			if len(found) > 0 {
				state = state.MarkLineIndent()
			}
			progress := ProgressFromLengths(len(start.Bytes()), len(rest))
			return Ok[[]ast.CommentOrNewline, E](progress, arena.AllocSlice(ar, found), state)
		}
	}

	if len(found) > 0 {
		state = state.MarkLineIndent()
	}
	progress := ProgressFromLengths(len(start.Bytes()), len(state.Bytes()))
	return Ok[[]ast.CommentOrNewline, E](progress, arena.AllocSlice(ar, found), state)
}

type badAt struct {
	input BadInput
	pos   region.Position
}

// consumeComment scans a # or ## comment up to, but not including, the line
// break that ends it.
func consumeComment(state State) (ast.CommentOrNewline, State, *badAt) {
	kind := ast.LineComment
	state = state.Advance(1)
	if rest := state.Bytes(); len(rest) > 0 && rest[0] == '#' {
		kind = ast.DocComment
		state = state.Advance(1)
	}

	rest := state.Bytes()
	end := bytes.IndexByte(rest, '\n')
	if end < 0 {
		end = len(rest)
	}
	body := rest[:end]
	// A comment ending in \r\n keeps the \r out of its text.
	if len(body) > 0 && body[len(body)-1] == '\r' {
		body = body[:len(body)-1]
	}

	for i := 0; i < len(body); {
		b := body[i]
		switch {
		case b == '\t':
			return ast.CommentOrNewline{}, state, &badAt{HasTab, state.Advance(uint32(i)).Pos()}
		case b < ' ':
			return ast.CommentOrNewline{}, state, &badAt{HasAsciiControl, state.Advance(uint32(i)).Pos()}
		case b < utf8.RuneSelf:
			i++
		default:
			_, size := utf8.DecodeRune(body[i:])
			if size == 1 {
				return ast.CommentOrNewline{}, state, &badAt{BadUtf8, state.Advance(uint32(i)).Pos()}
			}
			i += size
		}
	}

	text := string(bytes.TrimPrefix(body, []byte{' '}))
	return ast.CommentOrNewline{Kind: kind, Text: text}, state.Advance(uint32(len(body))), nil
}

// Bad input is unconditionally fatal. The error reports MadeProgress even
// when the offending byte is the first one scanned, so no enclosing choice
// retries past it.
func spacesErr[E any](err E) Result[[]ast.CommentOrNewline, E] {
	return Errored[[]ast.CommentOrNewline, E](MadeProgress, err)
}
