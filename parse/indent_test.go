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

	"github.com/roboteng/roc/internal/arena"
)

// probeMinIndent succeeds with whatever minIndent it was run at.
func probeMinIndent() Parser[uint32, testErr] {
	return func(_ *arena.Arena, state State, minIndent uint32) Result[uint32, testErr] {
		return Ok[uint32, testErr](NoProgress, minIndent, state)
	}
}

func TestMinIndentWrappers(t *testing.T) {
	t.Parallel()

	ar := arena.New()
	st := NewState([]byte("   x")).Advance(3).MarkLineIndent()

	run := func(p Parser[uint32, testErr], ambient uint32) uint32 {
		r := p(ar, st, ambient)
		assert.False(t, r.Failed())
		return r.Value
	}

	assert.Equal(t, uint32(0), run(ResetMinIndent(probeMinIndent()), 7))
	assert.Equal(t, uint32(9), run(SetMinIndent(9, probeMinIndent()), 7))
	assert.Equal(t, uint32(8), run(IncrementMinIndent(probeMinIndent()), 7))

	// Line indent is 3; the ambient requirement wins when deeper.
	assert.Equal(t, uint32(3), run(LineMinIndent(probeMinIndent()), 1))
	assert.Equal(t, uint32(7), run(LineMinIndent(probeMinIndent()), 7))

	// Column is 3, so the body requirement is one past it.
	assert.Equal(t, uint32(4), run(AbsoluteColumnMinIndent(probeMinIndent()), 7))
}

func TestIndentedSeq(t *testing.T) {
	t.Parallel()

	seq := IndentedSeq(byteA(), probeMinIndent())

	// The line's indent is 2, so the body must clear column 3.
	st := NewState([]byte("  a")).Advance(2).MarkLineIndent()
	r := seq(arena.New(), st, 0)
	assert.False(t, r.Failed())
	assert.Equal(t, uint32(3), r.Value)
	assert.Equal(t, MadeProgress, r.Progress)
}

func TestAbsoluteIndentedSeq(t *testing.T) {
	t.Parallel()

	seq := AbsoluteIndentedSeq(byteA(), probeMinIndent())

	// Keyed to the introducer's own column (4), not its line's indent (2).
	st := NewState([]byte("  x a")).Advance(2).MarkLineIndent()
	st = st.Advance(2)
	r := seq(arena.New(), st, 0)
	assert.False(t, r.Failed())
	assert.Equal(t, uint32(5), r.Value.Second)
}

func TestCheckIndent(t *testing.T) {
	t.Parallel()

	check := CheckIndent[testErr](errAt("outdented"))

	st := NewState([]byte("  x")).Advance(2)
	r := check(arena.New(), st, 2)
	assert.False(t, r.Failed())
	assert.Equal(t, NoProgress, r.Progress)

	r = check(arena.New(), st, 3)
	assert.True(t, r.Failed())
	assert.Equal(t, NoProgress, r.Progress)
	assert.Equal(t, "outdented", r.Err.Msg)
}
