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
	"fmt"

	"github.com/roboteng/roc/region"
)

// State is a cursor over one module's source bytes.
//
// A State never mutates the buffer it reads; advancing produces a new value
// that shares the same backing array. Copying a State is therefore the whole
// backtracking mechanism: a caller keeps its pre-attempt State and retries
// from it when an alternative fails without progress.
type State struct {
	// The full original input. Never modified.
	src []byte

	// Byte offset of the cursor into src.
	offset uint32

	// Byte offset of the first byte of the line the cursor is on.
	lineStart uint32

	// Byte offset of the first non-whitespace byte of that line. Whitespace
	// parsers maintain this; LineIndent derives from it.
	lineStartAfterWhitespace uint32

	// Nesting depth for the optional debug tracer. Meaningful only under the
	// parsedebug build tag; always zero otherwise.
	traceDepth uint16
}

// NewState starts a cursor at the beginning of src.
func NewState(src []byte) State {
	return State{src: src}
}

// Bytes returns the input remaining past the cursor.
func (s State) Bytes() []byte {
	return s.src[s.offset:]
}

// OriginalBytes returns the whole input buffer, including consumed bytes.
func (s State) OriginalBytes() []byte {
	return s.src
}

// Pos returns the cursor's position.
func (s State) Pos() region.Position {
	return region.Pos(s.offset)
}

// Advance moves the cursor count bytes forward within the current line.
//
// The bytes being skipped must not include a newline; crossing lines goes
// through [State.AdvanceNewline] so the line bookkeeping stays true.
func (s State) Advance(count uint32) State {
	s.offset += count
	return s
}

// AdvanceNewline moves the cursor past a newline byte and starts a fresh
// line. The new line's indentation is unknown until a whitespace parser calls
// [State.MarkLineIndent] at its first non-whitespace byte.
func (s State) AdvanceNewline() State {
	s.offset++
	s.lineStart = s.offset
	s.lineStartAfterWhitespace = s.offset
	return s
}

// MarkLineIndent records that the cursor sits at the current line's first
// non-whitespace byte.
func (s State) MarkLineIndent() State {
	s.lineStartAfterWhitespace = s.offset
	return s
}

// Column returns the cursor's zero-based column on the current line.
func (s State) Column() uint32 {
	return s.offset - s.lineStart
}

// LineIndent returns the column of the current line's first non-whitespace
// byte: the indentation that tokens on this line are measured against.
func (s State) LineIndent() uint32 {
	return s.lineStartAfterWhitespace - s.lineStart
}

// String implements [fmt.Stringer], for trace output.
func (s State) String() string {
	length := min(len(s.Bytes()), 24)
	return fmt.Sprintf("State(%d) %q", s.offset, s.Bytes()[:length])
}
