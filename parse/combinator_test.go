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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboteng/roc/internal/arena"
	"github.com/roboteng/roc/region"
)

func byteA() Parser[struct{}, testErr] { return Byte('a', errAt("want a")) }
func byteB() Parser[struct{}, testErr] { return Byte('b', errAt("want b")) }
func byteC() Parser[struct{}, testErr] { return Byte('c', errAt("want c")) }

func TestMap(t *testing.T) {
	t.Parallel()

	double := Map(NumberLiteral(errAt("want number")), func(text string) string {
		return text + text
	})

	r := runParser(double, "12")
	require.False(t, r.Failed())
	assert.Equal(t, "1212", r.Value)

	// Failures pass through untransformed.
	r = runParser(double, "x")
	assert.True(t, r.Failed())
	assert.Equal(t, "want number", r.Err.Msg)
}

func TestMapWithArena(t *testing.T) {
	t.Parallel()

	shared := MapWithArena(NumberLiteral(errAt("want number")),
		func(ar *arena.Arena, text string) *string {
			return arena.Alloc(ar, text)
		})

	r := runParser(shared, "7")
	require.False(t, r.Failed())
	require.NotNil(t, r.Value)
	assert.Equal(t, "7", *r.Value)
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	// The parsed byte picks the parser for the rest of the input.
	tagged := AndThen(
		EitherOf(byteA(), byteB()),
		func(_ Progress, which Either[struct{}, struct{}]) Parser[string, testErr] {
			if which.IsSecond {
				return Map(NumberLiteral(errAt("want number")), func(s string) string { return "num:" + s })
			}
			return Map(LowercaseIdent(errAt("want ident")), func(s string) string { return "id:" + s })
		},
	)

	r := runParser(tagged, "axy")
	require.False(t, r.Failed())
	assert.Equal(t, "id:xy", r.Value)

	r = runParser(tagged, "b42")
	require.False(t, r.Failed())
	assert.Equal(t, "num:42", r.Value)
}

func TestThen(t *testing.T) {
	t.Parallel()

	// A validation step that can reject an otherwise well-formed token.
	small := Then(NumberLiteral(errAt("want number")),
		func(_ *arena.Arena, state State, progress Progress, text string) Result[string, testErr] {
			if len(text) > 2 {
				return Errored[string, testErr](progress, testErr{At: state.Pos(), Msg: "too long"})
			}
			return Ok[string, testErr](progress, text, state)
		})

	r := runParser(small, "42")
	require.False(t, r.Failed())
	assert.Equal(t, "42", r.Value)

	r = runParser(small, "1234")
	assert.True(t, r.Failed())
	assert.Equal(t, MadeProgress, r.Progress)
	assert.Equal(t, "too long", r.Err.Msg)
}

func TestAndFoldsProgressOnFailure(t *testing.T) {
	t.Parallel()

	// The first step consumed input, so the pair's failure must report
	// MadeProgress even though the failing step itself consumed nothing.
	r := runParser(And(byteA(), byteB()), "ax")
	assert.True(t, r.Failed())
	assert.Equal(t, MadeProgress, r.Progress)
	assert.Equal(t, "want b", r.Err.Msg)
}

func TestAndSuccess(t *testing.T) {
	t.Parallel()

	r := runParser(And(byteA(), byteB()), "ab")
	require.False(t, r.Failed())
	assert.Equal(t, MadeProgress, r.Progress)
	assert.Equal(t, region.Pos(2), r.State.Pos())
}

func TestOneOfRetriesOnlyWithoutProgress(t *testing.T) {
	t.Parallel()

	choice := OneOf(And(byteA(), byteB()), And(byteA(), byteC()))

	// "ac" matches the second alternative, but the first alternative fails
	// only after consuming the shared prefix, which commits the choice.
	r := runParser(choice, "ac")
	assert.True(t, r.Failed())
	assert.Equal(t, MadeProgress, r.Progress)
	assert.Equal(t, "want b", r.Err.Msg)

	// Here the first alternative fails at its first byte, consuming
	// nothing, so the second still runs.
	r = runParser(OneOf(And(byteB(), byteC()), And(byteA(), byteC())), "ac")
	assert.False(t, r.Failed())
}

func TestOneOfReturnsLastFailure(t *testing.T) {
	t.Parallel()

	r := runParser(OneOf(byteA(), byteB(), byteC()), "x")
	assert.True(t, r.Failed())
	assert.Equal(t, NoProgress, r.Progress)
	assert.Equal(t, "want c", r.Err.Msg)
}

func TestBacktrackableUndoesCommitment(t *testing.T) {
	t.Parallel()

	// Identical to TestOneOfRetriesOnlyWithoutProgress's committed case,
	// except the first alternative is marked backtrackable, which frees the
	// choice to try the second.
	choice := OneOf(Backtrackable(And(byteA(), byteB())), And(byteA(), byteC()))
	r := runParser(choice, "ac")
	require.False(t, r.Failed())
	assert.Equal(t, region.Pos(2), r.State.Pos())
}

func TestBacktrackableHidesProgressOnSuccess(t *testing.T) {
	t.Parallel()

	r := runParser(Backtrackable(byteA()), "a")
	require.False(t, r.Failed())
	assert.Equal(t, NoProgress, r.Progress)
	// The state still advanced; only the report is damped.
	assert.Equal(t, region.Pos(1), r.State.Pos())
}

func TestEitherOf(t *testing.T) {
	t.Parallel()

	either := EitherOf(byteA(), byteB())

	r := runParser(either, "a")
	require.False(t, r.Failed())
	assert.False(t, r.Value.IsSecond)

	r = runParser(either, "b")
	require.False(t, r.Failed())
	assert.True(t, r.Value.IsSecond)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	opt := Optional(And(byteA(), byteB()))

	r := runParser(opt, "ab")
	require.False(t, r.Failed())
	assert.NotNil(t, r.Value)

	r = runParser(opt, "xy")
	require.False(t, r.Failed())
	assert.Nil(t, r.Value)
	assert.Equal(t, NoProgress, r.Progress)

	// A half-matched optional construct is an error, not an absence.
	r = runParser(opt, "ax")
	assert.True(t, r.Failed())
	assert.Equal(t, MadeProgress, r.Progress)
}

func TestZeroOrMore(t *testing.T) {
	t.Parallel()

	digits := ZeroOrMore(byteA())

	r := runParser(digits, "aaab")
	require.False(t, r.Failed())
	assert.Len(t, r.Value, 3)
	assert.Equal(t, MadeProgress, r.Progress)

	r = runParser(digits, "b")
	require.False(t, r.Failed())
	assert.Empty(t, r.Value)
	assert.Equal(t, NoProgress, r.Progress)
}

func TestZeroOrMorePartialElementIsFatal(t *testing.T) {
	t.Parallel()

	pairs := ZeroOrMore(And(byteA(), byteB()))

	// Two full elements, then an element that breaks halfway through.
	r := runParser(pairs, "ababax")
	assert.True(t, r.Failed())
	assert.Equal(t, MadeProgress, r.Progress)
	assert.Equal(t, "want b", r.Err.Msg)
}

func TestOneOrMore(t *testing.T) {
	t.Parallel()

	some := OneOrMore(byteA(), errAt("expected at least one a"))

	r := runParser(some, "aab")
	require.False(t, r.Failed())
	assert.Len(t, r.Value, 2)
	assert.Equal(t, MadeProgress, r.Progress)

	r = runParser(some, "b")
	assert.True(t, r.Failed())
	assert.Equal(t, NoProgress, r.Progress)
	assert.Equal(t, testErr{At: region.Pos(0), Msg: "expected at least one a"}, r.Err)
}

func TestSpecializeErrUsesStartPosition(t *testing.T) {
	t.Parallel()

	// The inner parser fails two bytes in; the specialized error still
	// points at where the attempt began.
	inner := And(And(byteA(), byteB()), byteC())
	specialized := SpecializeErr(func(e testErr, pos region.Position) testErr {
		return testErr{At: pos, Msg: "in pair: " + e.Msg}
	}, inner)

	st := NewState([]byte("xxabx")).Advance(2)
	r := specialized(nil, st, 0)
	assert.True(t, r.Failed())
	assert.Equal(t, testErr{At: region.Pos(2), Msg: "in pair: want c"}, r.Err)
}

func TestLocRecordsRegion(t *testing.T) {
	t.Parallel()

	r := runParser(Loc(And(byteA(), byteB())), "ab!")
	require.False(t, r.Failed())
	assert.Equal(t, region.Span(0, 2), r.Value.Region)
}

func TestAllocated(t *testing.T) {
	t.Parallel()

	number := NumberLiteral(errAt("want number"))
	r := runParser(Allocated(number), "123")
	require.False(t, r.Failed())
	require.NotNil(t, r.Value)
	assert.Equal(t, "123", *r.Value)
}

// End-to-end: a parenthesized, comma-separated run of
// number literals.
func TestTupleOfNumbers(t *testing.T) {
	t.Parallel()

	number := NumberLiteral(errAt("want number"))
	comma := SkipSecond(Byte(',', errAt("want comma")), Optional(Byte(' ', errAt("want space"))))
	tuple := Loc(Between(
		Byte('(', errAt("want open paren")),
		SepBy1(comma, number),
		Byte(')', errAt("want close paren")),
	))

	r := runParser(tuple, "(1, 2, 3)")
	require.False(t, r.Failed())
	assert.Equal(t, MadeProgress, r.Progress)
	assert.Equal(t, []string{"1", "2", "3"}, r.Value.Value)
	assert.Equal(t, region.Span(0, 9), r.Value.Region)
	assert.Empty(t, r.State.Bytes())
}
