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

// Package arena defines a bump allocator for parse-lifetime values.
//
// Every value produced by one parse (AST nodes, node slices, nested error
// values) is allocated from a single Arena, and the whole allocation is
// released as a unit when the caller drops the Arena. Nothing is freed
// per-value.
package arena

import (
	"fmt"
	"reflect"
	"strings"
)

// pagesMinLenShift is the log2 of the size of the smallest page in a pool.
const (
	pagesMinLenShift = 4
	pagesMinLen      = 1 << pagesMinLenShift
)

// Arena is a bump allocator. Values of any type are copied into per-type
// pages and addressed by ordinary pointers.
//
// Pages grow logarithmically, mimicking the resizing behavior of an ordinary
// slice without ever moving previously allocated values, so pointers returned
// by [Alloc] and slices returned by [AllocSlice] remain valid for the life of
// the Arena.
//
// A zero Arena is empty and ready to use. An Arena must not be shared between
// goroutines; each parse owns its own.
type Arena struct {
	pools map[reflect.Type]any // map to the *pool[T] for each T
}

// pool holds the pages for a single type.
//
// Invariants:
//  1. cap(pages[0]) >= pagesMinLen.
//  2. cap(pages[n]) >= 2*cap(pages[n-1]).
type pool[T any] struct {
	pages [][]T
}

// New returns a fresh arena.
//
// This is a convenience for callers that want a pointer; the zero value works
// just as well.
func New() *Arena {
	return &Arena{}
}

// Alloc copies value into the arena and returns a stable pointer to the copy.
func Alloc[T any](a *Arena, value T) *T {
	return &AllocSlice(a, []T{value})[0]
}

// AllocSlice copies elems into storage owned by the arena and returns the
// arena-backed slice. The elements are contiguous, and the returned slice has
// no spare capacity, so appending to it will not clobber neighbors.
//
// An empty elems returns nil without touching the arena.
func AllocSlice[T any](a *Arena, elems []T) []T {
	if len(elems) == 0 {
		return nil
	}

	p := poolOf[T](a)
	page := p.reserve(len(elems))
	start := len(*page)
	*page = append(*page, elems...)
	return (*page)[start:len(*page):len(*page)]
}

// poolOf finds or creates the pool for T in a.
func poolOf[T any](a *Arena) *pool[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if p, ok := a.pools[key]; ok {
		return p.(*pool[T])
	}

	if a.pools == nil {
		a.pools = make(map[reflect.Type]any)
	}
	p := new(pool[T])
	a.pools[key] = p
	return p
}

// reserve returns a page with capacity for at least n more elements.
func (p *pool[T]) reserve(n int) *[]T {
	if p.pages == nil {
		p.pages = [][]T{make([]T, 0, max(pagesMinLen, n))}
	}

	last := &p.pages[len(p.pages)-1]
	if cap(*last)-len(*last) < n {
		// Grow by doubling the size of the next page; an oversized request
		// gets a page all to itself.
		p.pages = append(p.pages, make([]T, 0, max(2*cap(*last), n)))
		last = &p.pages[len(p.pages)-1]
	}
	return last
}

// String renders the values of type T allocated so far, showing the page
// boundaries. This is a debugging aid for tests.
func String[T any](a *Arena) string {
	p := poolOf[T](a)

	var b strings.Builder
	b.WriteRune('[')
	for i, page := range p.pages {
		if i != 0 {
			b.WriteRune('|')
		}
		for i, v := range page {
			if i != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}
