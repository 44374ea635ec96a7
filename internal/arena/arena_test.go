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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roboteng/roc/internal/arena"
)

func TestAllocStability(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := arena.New()

	p1 := arena.Alloc(a, 5)
	assert.Equal(5, *p1)

	// Blow past several page boundaries and make sure p1 didn't move.
	ptrs := []*int{p1}
	for i := 0; i < 100; i++ {
		ptrs = append(ptrs, arena.Alloc(a, i))
	}
	assert.Same(p1, ptrs[0])
	assert.Equal(5, *p1)
	for i, p := range ptrs[1:] {
		assert.Equal(i, *p)
	}
}

func TestAllocSlice(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := arena.New()

	s1 := arena.AllocSlice(a, []string{"a", "b", "c"})
	s2 := arena.AllocSlice(a, []string{"d"})
	assert.Equal([]string{"a", "b", "c"}, s1)
	assert.Equal([]string{"d"}, s2)

	// The returned slices are capped; appending must not clobber a neighbor.
	_ = append(s1, "x")
	assert.Equal([]string{"d"}, s2)

	assert.Nil(arena.AllocSlice(a, []int(nil)))
}

func TestDistinctTypes(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := arena.New()
	pi := arena.Alloc(a, 42)
	ps := arena.Alloc(a, "forty-two")
	assert.Equal(42, *pi)
	assert.Equal("forty-two", *ps)

	assert.Equal("[42]", arena.String[int](a))
	assert.Equal("[forty-two]", arena.String[string](a))
}

func TestPageBoundaries(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := arena.New()
	for i := 0; i < 17; i++ {
		arena.Alloc(a, i)
	}
	assert.Equal("[0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15|16]", arena.String[int](a))
}
