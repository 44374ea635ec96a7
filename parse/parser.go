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

// Progress records whether a parse attempt consumed any input.
//
// Progress is what keeps composite parsers honest: a choice only retries an
// alternative that failed with NoProgress, and a repetition only stops at an
// attempt that failed with NoProgress. An attempt that consumed bytes and
// then failed is a committed branch, and its failure is the real syntax
// error.
type Progress uint8

const (
	NoProgress Progress = iota
	MadeProgress
)

// ProgressWhen converts a made-progress condition into a Progress.
func ProgressWhen(madeProgress bool) Progress {
	if madeProgress {
		return MadeProgress
	}
	return NoProgress
}

// ProgressFromLengths derives Progress from the remaining-input lengths
// before and after an attempt.
func ProgressFromLengths(before, after int) Progress {
	return ProgressWhen(before != after)
}

// Or folds two Progress values: the combination advanced if either did.
//
// Sequencing depends on this exact fold. Once any step of a sequence has
// consumed input, the whole sequence reports MadeProgress, including on a
// later step's failure, which is what makes an enclosing [OneOf] stop trying
// siblings. Do not weaken this to And.
func (p Progress) Or(other Progress) Progress {
	return ProgressWhen(p == MadeProgress || other == MadeProgress)
}

// And folds two Progress values, advancing only if both did.
func (p Progress) And(other Progress) Progress {
	return ProgressWhen(p == MadeProgress && other == MadeProgress)
}

// String implements [fmt.Stringer].
func (p Progress) String() string {
	if p == MadeProgress {
		return "MadeProgress"
	}
	return "NoProgress"
}

// Result is the outcome of one parse attempt: either a value with the state
// after it, or an error of the parser's own error type. Both cases carry
// Progress.
//
// A failed Result carries no state; the caller retains its own pre-attempt
// State if it intends to retry.
type Result[T, E any] struct {
	Progress Progress

	// The parsed value and the state after it. Meaningful only when Err is
	// not set.
	Value T
	State State

	// The failure, when failed is set.
	Err    E
	failed bool
}

// Ok builds a successful Result.
func Ok[T, E any](progress Progress, value T, state State) Result[T, E] {
	return Result[T, E]{Progress: progress, Value: value, State: state}
}

// Errored builds a failed Result.
func Errored[T, E any](progress Progress, err E) Result[T, E] {
	return Result[T, E]{Progress: progress, Err: err, failed: true}
}

// Failed reports whether this result is a failure.
func (r Result[T, E]) Failed() bool {
	return r.failed
}

// Parser is one parse step. It reads from state, allocates anything it needs
// to outlive the call into ar, and must begin no token left of column
// minIndent.
//
// Every Parser must be deterministic and must report Progress honestly: if it
// consumed at least one byte it reports MadeProgress, and if it consumed
// nothing it reports NoProgress, on success and failure alike. The
// combinators in this package cannot check this; a dishonest leaf manifests
// as a non-terminating repetition or an error attributed to the wrong
// position.
type Parser[T, E any] func(ar *arena.Arena, state State, minIndent uint32) Result[T, E]

// Pair is the output of [And]: both sub-parsers' outputs in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Either is the output of [EitherOf]: exactly one of the two alternatives'
// outputs.
type Either[A, B any] struct {
	First    A
	Second   B
	IsSecond bool
}

// Succeed returns a parser that consumes nothing and yields value.
func Succeed[T, E any](value T) Parser[T, E] {
	return func(_ *arena.Arena, state State, _ uint32) Result[T, E] {
		return Ok[T, E](NoProgress, value, state)
	}
}

// Fail returns a parser that consumes nothing and fails with toErr applied to
// the current position.
func Fail[T, E any](toErr func(region.Position) E) Parser[T, E] {
	return func(_ *arena.Arena, state State, _ uint32) Result[T, E] {
		return Errored[T, E](NoProgress, toErr(state.Pos()))
	}
}

// FailWhen inverts a parser into a negative-lookahead check: if p succeeds,
// fail with toErr at the position p started from; if p fails, propagate its
// failure.
func FailWhen[T, U, E any](toErr func(region.Position) E, p Parser[U, E]) Parser[T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[T, E] {
		start := state.Pos()
		r := p(ar, state, minIndent)
		if !r.Failed() {
			return Errored[T, E](MadeProgress, toErr(start))
		}
		return Errored[T, E](r.Progress, r.Err)
	}
}
