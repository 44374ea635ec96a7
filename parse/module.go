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
	"github.com/roboteng/roc/ast"
	"github.com/roboteng/roc/internal/arena"
	"github.com/roboteng/roc/region"
)

// Module parses a whole source buffer: optional whitespace, one expression,
// optional whitespace, end of input. Everything the returned tree references
// lives in ar.
func Module(ar *arena.Arena, src []byte) (ast.Module, *SyntaxError) {
	toBad := func(b BadInput, pos region.Position) SyntaxError {
		return SyntaxError{Kind: SyntaxSpace, Pos: pos, Space: b}
	}
	expr := SpecializeErrRef(func(e *EExpr, pos region.Position) SyntaxError {
		return SyntaxError{Kind: SyntaxExpr, Pos: pos, Expr: e}
	}, LocExpr())

	p := And(And(Spaces(toBad), expr), Spaces(toBad))
	r := p(ar, NewState(src), 0)
	if r.Failed() {
		err := r.Err
		// An expression that failed to even start at the end of the buffer
		// means the input ran out, not that a construct was malformed.
		if err.Kind == SyntaxExpr && err.Expr.Kind == EExprStart &&
			err.Expr.Pos == region.Pos(uint32(len(src))) {
			return ast.Module{}, &SyntaxError{Kind: SyntaxEOF, Pos: err.Expr.Pos}
		}
		return ast.Module{}, &err
	}
	if len(r.State.Bytes()) != 0 {
		return ast.Module{}, &SyntaxError{Kind: SyntaxNotEndOfFile, Pos: r.State.Pos()}
	}

	return ast.Module{
		Before: r.Value.First.First,
		Expr:   r.Value.First.Second,
		After:  r.Value.Second,
	}, nil
}
