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

// This file is the layout discipline. Significant whitespace is not resolved
// by a separate layout pass; instead every parser carries minIndent, the
// minimum column at which a token of the current construct may begin, and
// these wrappers are the only ways minIndent changes.

// ResetMinIndent runs p with minIndent 0. Used on entry to a fully bracketed
// context, where outer indentation stops constraining inner tokens.
func ResetMinIndent[T, E any](p Parser[T, E]) Parser[T, E] {
	return func(ar *arena.Arena, state State, _ uint32) Result[T, E] {
		return p(ar, state, 0)
	}
}

// SetMinIndent runs p with the given minIndent, ignoring the ambient value.
func SetMinIndent[T, E any](minIndent uint32, p Parser[T, E]) Parser[T, E] {
	return func(ar *arena.Arena, state State, _ uint32) Result[T, E] {
		return p(ar, state, minIndent)
	}
}

// IncrementMinIndent runs p one indent level deeper than the ambient
// requirement.
func IncrementMinIndent[T, E any](p Parser[T, E]) Parser[T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[T, E] {
		return p(ar, state, minIndent+1)
	}
}

// LineMinIndent runs p with minIndent raised to the current line's starting
// column if that is deeper than the ambient requirement. Used when a
// construct's continuation must align with the line the construct began on.
func LineMinIndent[T, E any](p Parser[T, E]) Parser[T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[T, E] {
		return p(ar, state, max(state.LineIndent(), minIndent))
	}
}

// AbsoluteColumnMinIndent runs p with minIndent set to one past the current
// column, for bodies that must sit strictly right of their introducer.
func AbsoluteColumnMinIndent[T, E any](p Parser[T, E]) Parser[T, E] {
	return func(ar *arena.Arena, state State, _ uint32) Result[T, E] {
		return p(ar, state, state.Column()+1)
	}
}

// IndentedSeq parses an introducer and then a body that must be more
// indented than the introducer's line: first runs at the current line's
// starting column, body runs one column deeper. The introducer's output is
// discarded.
func IndentedSeq[T, D, E any](first Parser[D, E], body Parser[T, E]) Parser[T, E] {
	return func(ar *arena.Arena, state State, _ uint32) Result[T, E] {
		firstIndent := state.LineIndent()

		r1 := first(ar, state, firstIndent)
		if r1.Failed() {
			return Errored[T, E](r1.Progress, r1.Err)
		}
		r2 := body(ar, r1.State, firstIndent+1)
		if r2.Failed() {
			return Errored[T, E](r1.Progress.Or(r2.Progress), r2.Err)
		}
		return Ok[T, E](r1.Progress.Or(r2.Progress), r2.Value, r2.State)
	}
}

// AbsoluteIndentedSeq is [IndentedSeq] keyed to the introducer's own column
// rather than its line's indentation, and it keeps both outputs.
func AbsoluteIndentedSeq[A, B, E any](first Parser[A, E], body Parser[B, E]) Parser[Pair[A, B], E] {
	return func(ar *arena.Arena, state State, _ uint32) Result[Pair[A, B], E] {
		firstIndent := state.Column()

		r1 := first(ar, state, firstIndent)
		if r1.Failed() {
			return Errored[Pair[A, B], E](r1.Progress, r1.Err)
		}
		r2 := body(ar, r1.State, firstIndent+1)
		if r2.Failed() {
			return Errored[Pair[A, B], E](r1.Progress.Or(r2.Progress), r2.Err)
		}
		return Ok[Pair[A, B], E](
			r1.Progress.Or(r2.Progress),
			Pair[A, B]{First: r1.Value, Second: r2.Value},
			r2.State,
		)
	}
}

// CheckIndent consumes nothing; it fails with toErr when the cursor sits
// left of the ambient minIndent.
func CheckIndent[E any](toErr func(region.Position) E) Parser[struct{}, E] {
	return func(_ *arena.Arena, state State, minIndent uint32) Result[struct{}, E] {
		if minIndent > state.Column() {
			return Errored[struct{}, E](NoProgress, toErr(state.Pos()))
		}
		return Ok[struct{}, E](NoProgress, struct{}{}, state)
	}
}
