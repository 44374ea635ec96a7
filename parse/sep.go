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

// SepBy0 parses zero or more elements separated by delimiter, discarding the
// delimiter outputs.
//
// After the first element the loop alternates delimiter and element. A
// delimiter failing without progress ends the list successfully. A delimiter
// failing after progress, or an element failing after a delimiter parsed, is
// a hard error: the delimiter committed the list to another element.
func SepBy0[T, D, E any](delimiter Parser[D, E], element Parser[T, E]) Parser[[]T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[[]T, E] {
		startLen := len(state.Bytes())

		first := element(ar, state, minIndent)
		if first.Failed() {
			if first.Progress == MadeProgress {
				return Errored[[]T, E](MadeProgress, first.Err)
			}
			return Ok[[]T, E](NoProgress, nil, state)
		}

		buf := []T{first.Value}
		st := first.State
		for {
			d := delimiter(ar, st, minIndent)
			if d.Failed() {
				if d.Progress == MadeProgress {
					return Errored[[]T, E](MadeProgress, d.Err)
				}
				progress := ProgressFromLengths(startLen, len(st.Bytes()))
				return Ok[[]T, E](progress, arena.AllocSlice(ar, buf), st)
			}

			next := element(ar, d.State, minIndent)
			if next.Failed() {
				progress := ProgressFromLengths(startLen, len(d.State.Bytes()))
				return Errored[[]T, E](progress, next.Err)
			}
			buf = append(buf, next.Value)
			st = next.State
		}
	}
}

// TrailingSepBy0 is [SepBy0] except that a delimiter followed by an element
// that fails without progress is not an error: the delimiter is read as
// trailing, and the list ends successfully just past it. An element that
// fails after partial progress is still a hard error.
func TrailingSepBy0[T, D, E any](delimiter Parser[D, E], element Parser[T, E]) Parser[[]T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[[]T, E] {
		startLen := len(state.Bytes())

		first := element(ar, state, minIndent)
		if first.Failed() {
			if first.Progress == MadeProgress {
				return Errored[[]T, E](MadeProgress, first.Err)
			}
			return Ok[[]T, E](NoProgress, nil, state)
		}

		buf := []T{first.Value}
		st := first.State
		for {
			d := delimiter(ar, st, minIndent)
			if d.Failed() {
				if d.Progress == MadeProgress {
					return Errored[[]T, E](MadeProgress, d.Err)
				}
				progress := ProgressFromLengths(startLen, len(st.Bytes()))
				return Ok[[]T, E](progress, arena.AllocSlice(ar, buf), st)
			}

			next := element(ar, d.State, minIndent)
			if next.Failed() {
				if next.Progress == MadeProgress {
					return Errored[[]T, E](MadeProgress, next.Err)
				}
				// The delimiter was trailing; end just past it.
				progress := ProgressFromLengths(startLen, len(d.State.Bytes()))
				return Ok[[]T, E](progress, arena.AllocSlice(ar, buf), d.State)
			}
			buf = append(buf, next.Value)
			st = next.State
		}
	}
}

// SepBy1 is [SepBy0] requiring at least one element; an empty list is the
// first element's failure, propagated verbatim.
func SepBy1[T, D, E any](delimiter Parser[D, E], element Parser[T, E]) Parser[[]T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[[]T, E] {
		startLen := len(state.Bytes())

		first := element(ar, state, minIndent)
		if first.Failed() {
			return Errored[[]T, E](first.Progress, first.Err)
		}

		buf := []T{first.Value}
		st := first.State
		for {
			d := delimiter(ar, st, minIndent)
			if d.Failed() {
				if d.Progress == MadeProgress {
					return Errored[[]T, E](MadeProgress, d.Err)
				}
				progress := ProgressFromLengths(startLen, len(st.Bytes()))
				return Ok[[]T, E](progress, arena.AllocSlice(ar, buf), st)
			}

			next := element(ar, d.State, minIndent)
			if next.Failed() {
				return Errored[[]T, E](MadeProgress, next.Err)
			}
			buf = append(buf, next.Value)
			st = next.State
		}
	}
}

// SepBy1E is [SepBy1], but an element failing without progress, at the start
// or after a delimiter, is rephrased through toElementErr at the position the
// missing element was expected. A partial-progress element failure still
// propagates verbatim.
func SepBy1E[T, D, E any](
	delimiter Parser[D, E],
	element Parser[T, E],
	toElementErr func(region.Position) E,
) Parser[[]T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[[]T, E] {
		startLen := len(state.Bytes())

		first := element(ar, state, minIndent)
		if first.Failed() {
			if first.Progress == MadeProgress {
				return Errored[[]T, E](MadeProgress, first.Err)
			}
			return Errored[[]T, E](NoProgress, toElementErr(state.Pos()))
		}

		buf := []T{first.Value}
		st := first.State
		for {
			d := delimiter(ar, st, minIndent)
			if d.Failed() {
				if d.Progress == MadeProgress {
					return Errored[[]T, E](MadeProgress, d.Err)
				}
				progress := ProgressFromLengths(startLen, len(st.Bytes()))
				return Ok[[]T, E](progress, arena.AllocSlice(ar, buf), st)
			}

			next := element(ar, d.State, minIndent)
			if next.Failed() {
				if next.Progress == MadeProgress {
					return Errored[[]T, E](MadeProgress, next.Err)
				}
				return Errored[[]T, E](NoProgress, toElementErr(d.State.Pos()))
			}
			buf = append(buf, next.Value)
			st = next.State
		}
	}
}
