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

//go:build parsedebug

package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/roboteng/roc/internal/arena"
)

// Trace prints an entry line before running p and an exit line after,
// indented by nesting depth, which the wrapper threads through the state
// rather than through process-wide storage. It never alters p's outcome.
func (p Parser[T, E]) Trace(message string) Parser[T, E] {
	return func(ar *arena.Arena, state State, minIndent uint32) Result[T, E] {
		depth := state.traceDepth
		margin := strings.Repeat("| ", int(depth))
		fmt.Fprintf(os.Stderr, "%-5v %s%s\n", state.Pos(), margin, message)

		inner := state
		inner.traceDepth = depth + 1
		r := p(ar, inner, minIndent)

		if r.Failed() {
			fmt.Fprintf(os.Stderr, "%-5v %s%s %v %v\n",
				state.Pos(), margin, message, r.Progress, r.Err)
			return r
		}

		r.State.traceDepth = depth
		fmt.Fprintf(os.Stderr, "%-5v %s%s %v %v\n",
			r.State.Pos(), margin, message, r.Progress, r.Value)
		return r
	}
}
