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
	"github.com/roboteng/roc/region"
)

func TestWordKeywordBoundary(t *testing.T) {
	t.Parallel()

	when := Word("when", errAt("want when"))

	tests := []struct {
		input string
		match bool
	}{
		{"when", true},
		{"when x is", true},
		{"when#comment", true},
		{"when\nx", true},
		{"when\r\nx", true},
		{"whence", false},
		{"when_", false},
		{"when2", false},
		{"whe", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			r := runParser(when, tt.input)
			if tt.match {
				assert.False(t, r.Failed())
				assert.Equal(t, MadeProgress, r.Progress)
				assert.Equal(t, region.Pos(4), r.State.Pos())
			} else {
				assert.True(t, r.Failed())
				assert.Equal(t, NoProgress, r.Progress)
			}
		})
	}
}

func TestWordRejectsNewlineLiteral(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Word("a\nb", errAt("nope")) })
	assert.Panics(t, func() { Byte('\n', errAt("nope")) })
}

func TestByte(t *testing.T) {
	t.Parallel()

	r := runParser(Byte('!', errAt("want bang")), "!?")
	assert.False(t, r.Failed())
	assert.Equal(t, region.Pos(1), r.State.Pos())

	r = runParser(Byte('!', errAt("want bang")), "")
	assert.True(t, r.Failed())
	assert.Equal(t, NoProgress, r.Progress)
}

func TestTwoAndThreeBytes(t *testing.T) {
	t.Parallel()

	arrow := TwoBytes('-', '>', errAt("want arrow"))
	r := runParser(arrow, "->x")
	assert.False(t, r.Failed())
	assert.Equal(t, region.Pos(2), r.State.Pos())

	r = runParser(arrow, "-x")
	assert.True(t, r.Failed())
	assert.Equal(t, NoProgress, r.Progress)

	ellipsis := ThreeBytes('.', '.', '.', errAt("want ellipsis"))
	r = runParser(ellipsis, "...")
	assert.False(t, r.Failed())

	r = runParser(ellipsis, "..")
	assert.True(t, r.Failed())
}

func TestByteIndentGate(t *testing.T) {
	t.Parallel()

	open := ByteIndent('(', errAt("want open paren"))

	// Cursor at column 2, requirement 5: rejected before the byte is read.
	st := NewState([]byte("  (")).Advance(2)
	r := open(arena.New(), st, 5)
	assert.True(t, r.Failed())
	assert.Equal(t, NoProgress, r.Progress)

	// Cursor at column 5, requirement 5: accepted.
	st = NewState([]byte("     (")).Advance(5)
	r = open(arena.New(), st, 5)
	assert.False(t, r.Failed())
	assert.Equal(t, region.Pos(6), r.State.Pos())
}
