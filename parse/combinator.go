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

// Map transforms the output of a successful parse; failures pass through
// unchanged.
func Map[A, B, E any](p Parser[A, E], transform func(A) B) Parser[B, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[B, E] {
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[B, E](r.Progress, r.Err)
		}
		return Ok[B, E](r.Progress, transform(r.Value), r.State)
	}
}

// MapWithArena is [Map] for transforms that need to allocate, such as when
// the parsed pieces become a new arena-allocated node.
func MapWithArena[A, B, E any](p Parser[A, E], transform func(*arena.Arena, A) B) Parser[B, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[B, E] {
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[B, E](r.Progress, r.Err)
		}
		return Ok[B, E](r.Progress, transform(ar, r.Value), r.State)
	}
}

// AndThen feeds a successful output into transform to pick the parser for
// what follows. The chosen parser runs on the remaining input.
func AndThen[A, B, E any](p Parser[A, E], transform func(Progress, A) Parser[B, E]) Parser[B, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[B, E] {
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[B, E](r.Progress, r.Err)
		}
		return transform(r.Progress, r.Value)(ar, r.State, minIndent)
	}
}

// Then runs p and hands its success to transform, which may itself succeed or
// fail. Failures of p pass through unchanged.
func Then[A, B, E any](p Parser[A, E], transform func(*arena.Arena, State, Progress, A) Result[B, E]) Parser[B, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[B, E] {
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[B, E](r.Progress, r.Err)
		}
		return transform(ar, r.State, r.Progress, r.Value)
	}
}

// And runs first then second, yielding both outputs.
//
// The combined progress is the Or of the two steps' progress, on success and
// on second's failure alike. That fold is what commits an enclosing [OneOf]
// once the first step has consumed input: the choice sees MadeProgress on the
// failure and stops trying siblings.
func And[A, B, E any](first Parser[A, E], second Parser[B, E]) Parser[Pair[A, B], E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[Pair[A, B], E] {
		r1 := first(ar, state, minIndent)
		if r1.Failed() {
			return Errored[Pair[A, B], E](r1.Progress, r1.Err)
		}
		r2 := second(ar, r1.State, minIndent)
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

// SkipFirst runs both parsers and keeps only the second output.
func SkipFirst[A, B, E any](first Parser[A, E], second Parser[B, E]) Parser[B, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[B, E] {
		r1 := first(ar, state, minIndent)
		if r1.Failed() {
			return Errored[B, E](r1.Progress, r1.Err)
		}
		r2 := second(ar, r1.State, minIndent)
		if r2.Failed() {
			return Errored[B, E](r1.Progress.Or(r2.Progress), r2.Err)
		}
		return Ok[B, E](r1.Progress.Or(r2.Progress), r2.Value, r2.State)
	}
}

// SkipSecond runs both parsers and keeps only the first output.
func SkipSecond[A, B, E any](first Parser[A, E], second Parser[B, E]) Parser[A, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[A, E] {
		r1 := first(ar, state, minIndent)
		if r1.Failed() {
			return Errored[A, E](r1.Progress, r1.Err)
		}
		r2 := second(ar, r1.State, minIndent)
		if r2.Failed() {
			return Errored[A, E](r1.Progress.Or(r2.Progress), r2.Err)
		}
		return Ok[A, E](r1.Progress.Or(r2.Progress), r1.Value, r2.State)
	}
}

// Between parses open, then p, then close, keeping only p's output. Useful
// for bracketed constructs.
func Between[T, A, B, E any](open Parser[A, E], p Parser[T, E], close Parser[B, E]) Parser[T, E] {
	return SkipFirst(open, SkipSecond(p, close))
}

// OneOf tries the alternatives in order, returning the first success.
//
// An alternative that fails without consuming input is undone, and the next
// one runs against the original state. An alternative that fails after
// consuming input is committed: its failure is returned at once and later
// siblings never run. If every alternative fails without progress, the last
// failure is returned.
func OneOf[T, E any](parsers ...Parser[T, E]) Parser[T, E] {
	if len(parsers) == 0 {
		panic("parse: OneOf requires at least one alternative")
	}

	return func(ar *arena.Arena, state State, minIndent uint32) Result[T, E] {
		var last Result[T, E]
		for _, p := range parsers {
			last = p(ar, state, minIndent)
			if !last.Failed() || last.Progress == MadeProgress {
				return last
			}
		}
		return last
	}
}

// EitherOf is [OneOf] over two parsers with different output types.
func EitherOf[A, B, E any](first Parser[A, E], second Parser[B, E]) Parser[Either[A, B], E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[Either[A, B], E] {
		r1 := first(ar, state, minIndent)
		if !r1.Failed() {
			return Ok[Either[A, B], E](r1.Progress, Either[A, B]{First: r1.Value}, r1.State)
		}
		if r1.Progress == MadeProgress {
			return Errored[Either[A, B], E](MadeProgress, r1.Err)
		}

		r2 := second(ar, state, minIndent)
		if r2.Failed() {
			return Errored[Either[A, B], E](r2.Progress, r2.Err)
		}
		return Ok[Either[A, B], E](r2.Progress, Either[A, B]{Second: r2.Value, IsSecond: true}, r2.State)
	}
}

// Optional turns p's no-progress failure into a nil success at the original
// state. A failure after consuming input still propagates: a half-matched
// optional construct is a real error, not an absent one.
func Optional[T, E any](p Parser[T, E]) Parser[*T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[*T, E] {
		r := p(ar, state, minIndent)
		switch {
		case !r.Failed():
			return Ok[*T, E](r.Progress, &r.Value, r.State)
		case r.Progress == MadeProgress:
			return Errored[*T, E](MadeProgress, r.Err)
		default:
			return Ok[*T, E](NoProgress, nil, state)
		}
	}
}

// ZeroOrMore applies p until an attempt fails, collecting the outputs in
// arena-backed storage.
//
// An attempt that fails after partial progress is a hard error. An attempt
// that fails without progress ends the run, which succeeds with whatever was
// collected, an empty sequence included. Progress reflects the total bytes
// consumed across the whole run.
func ZeroOrMore[T, E any](p Parser[T, E]) Parser[[]T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[[]T, E] {
		startLen := len(state.Bytes())

		var buf []T
		for {
			before := state
			r := p(ar, state, minIndent)
			if r.Failed() {
				if r.Progress == MadeProgress {
					// Made progress on an element and then broke; that is a
					// real error, not the end of the sequence.
					return Errored[[]T, E](MadeProgress, r.Err)
				}
				progress := ProgressFromLengths(startLen, len(before.Bytes()))
				return Ok[[]T, E](progress, arena.AllocSlice(ar, buf), before)
			}
			buf = append(buf, r.Value)
			state = r.State
		}
	}
}

// OneOrMore is [ZeroOrMore] requiring at least one element. When the first
// attempt fails, the failure is rephrased through toErr at the start
// position, so call sites can say "expected at least one X" in their own
// error vocabulary rather than surfacing X's internals.
func OneOrMore[T, E any](p Parser[T, E], toErr func(region.Position) E) Parser[[]T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[[]T, E] {
		first := p(ar, state, minIndent)
		if first.Failed() {
			return Errored[[]T, E](first.Progress, toErr(state.Pos()))
		}

		buf := []T{first.Value}
		st := first.State
		for {
			before := st
			r := p(ar, st, minIndent)
			if r.Failed() {
				if r.Progress == MadeProgress {
					return Errored[[]T, E](MadeProgress, r.Err)
				}
				return Ok[[]T, E](MadeProgress, arena.AllocSlice(ar, buf), before)
			}
			buf = append(buf, r.Value)
			st = r.State
		}
	}
}

// Allocated moves a successful output into the arena and yields a reference
// to it, for nodes that are shared rather than copied.
func Allocated[T, E any](p Parser[T, E]) Parser[*T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[*T, E] {
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[*T, E](r.Progress, r.Err)
		}
		return Ok[*T, E](r.Progress, arena.Alloc(ar, r.Value), r.State)
	}
}

// Backtrackable reports NoProgress no matter how much p actually consumed, on
// success and failure alike. An enclosing [OneOf] therefore remains free to
// try a sibling even when p consumed input before failing, which turns p into
// a pure lookahead probe with no effect on the choice's cut rule.
func Backtrackable[T, E any](p Parser[T, E]) Parser[T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[T, E] {
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[T, E](NoProgress, r.Err)
		}
		return Ok[T, E](NoProgress, r.Value, r.State)
	}
}

// SpecializeErr converts a parser's low-level error into a higher-level one.
//
// The mapping receives the position the attempt started from, not the
// position the inner parser stopped at, so the resulting error points a human
// at where the enclosing construct began.
func SpecializeErr[T, X, Y any](mapErr func(X, region.Position) Y, p Parser[T, X]) Parser[T, Y] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[T, Y] {
		start := state.Pos()
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[T, Y](r.Progress, mapErr(r.Err, start))
		}
		return Ok[T, Y](r.Progress, r.Value, r.State)
	}
}

// SpecializeErrRef is [SpecializeErr] with the child error moved into the
// arena first, for error types too large to carry inline.
func SpecializeErrRef[T, X, Y any](mapErr func(*X, region.Position) Y, p Parser[T, X]) Parser[T, Y] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[T, Y] {
		start := state.Pos()
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[T, Y](r.Progress, mapErr(arena.Alloc(ar, r.Err), start))
		}
		return Ok[T, Y](r.Progress, r.Value, r.State)
	}
}

// Loc records the positions before and after p and packages the output with
// the spanning region. Pure bookkeeping; progress and failures are untouched.
func Loc[T, E any](p Parser[T, E]) Parser[region.Loc[T], E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[region.Loc[T], E] {
		start := state.Pos()
		r := p(ar, state, minIndent)
		if r.Failed() {
			return Errored[region.Loc[T], E](r.Progress, r.Err)
		}
		loc := region.At(region.Between(start, r.State.Pos()), r.Value)
		return Ok[region.Loc[T], E](r.Progress, loc, r.State)
	}
}
