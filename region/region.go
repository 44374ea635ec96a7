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

// Package region provides byte-offset positions and spans for source text,
// and a wrapper for attaching a span to any parsed value.
package region

import "fmt"

// Position is a byte offset into a source buffer.
//
// Positions are plain offsets; resolving one into a line and column is the
// job of [report.File], which holds the text the offset points into.
type Position struct {
	Offset uint32
}

// Pos constructs a Position at the given offset.
func Pos(offset uint32) Position {
	return Position{Offset: offset}
}

// Bump returns the position count bytes past p.
func (p Position) Bump(count uint32) Position {
	return Position{Offset: p.Offset + count}
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	return fmt.Sprintf("@%d", p.Offset)
}

// Region is a half-open span [Start, End) of a source buffer.
//
// Zero-width regions are legal; they identify an empty match at Start.
type Region struct {
	Start, End Position
}

// Between constructs the region spanning start to end.
//
// Panics if end precedes start; parsing only ever moves forward, so a
// backwards region is always a bug in the caller.
func Between(start, end Position) Region {
	if end.Offset < start.Offset {
		panic(fmt.Sprintf("region: backwards region: %v..%v", start, end))
	}
	return Region{Start: start, End: end}
}

// Span constructs a region from raw offsets, as a shorthand for tests and
// leaf parsers.
func Span(start, end uint32) Region {
	return Between(Pos(start), Pos(end))
}

// Len returns the length of this region in bytes.
func (r Region) Len() uint32 {
	return r.End.Offset - r.Start.Offset
}

// IsEmpty returns whether this region is zero-width.
func (r Region) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns whether pos lies within this region.
func (r Region) Contains(pos Position) bool {
	return pos.Offset >= r.Start.Offset && pos.Offset < r.End.Offset
}

// Join returns the smallest region containing both r and other.
func (r Region) Join(other Region) Region {
	joined := r
	if other.Start.Offset < joined.Start.Offset {
		joined.Start = other.Start
	}
	if other.End.Offset > joined.End.Offset {
		joined.End = other.End
	}
	return joined
}

// String implements [fmt.Stringer].
func (r Region) String() string {
	return fmt.Sprintf("@%d..%d", r.Start.Offset, r.End.Offset)
}

// Loc attaches the region a value was parsed from to the value itself.
//
// The region bounds exactly the bytes consumed while producing Value.
type Loc[T any] struct {
	Region Region
	Value  T
}

// At wraps value with the given region.
func At[T any](region Region, value T) Loc[T] {
	return Loc[T]{Region: region, Value: value}
}

// String implements [fmt.Stringer].
func (l Loc[T]) String() string {
	return fmt.Sprintf("%v %v", l.Region, l.Value)
}
