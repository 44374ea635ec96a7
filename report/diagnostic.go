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

package report

import (
	"strings"

	"github.com/roboteng/roc/parse"
	"github.com/roboteng/roc/region"
)

// Diagnostic is a parse failure bound to the file it happened in, ready to be
// rendered.
type Diagnostic struct {
	File *File
	Err  *parse.SyntaxError
}

// Primary returns the position the diagnostic points at: the innermost
// position recorded along the error's context chain.
func (d Diagnostic) Primary() region.Position {
	pos := d.Err.Pos
	if d.Err.Kind == parse.SyntaxExpr {
		walkExpr(d.Err.Expr, func(name string, p region.Position) {
			pos = p
		})
	}
	return pos
}

// Message returns a one-line description of the failure, naming the chain of
// constructs the parser was inside when it stopped.
func (d Diagnostic) Message() string {
	switch d.Err.Kind {
	case parse.SyntaxSpace:
		return "unexpected " + d.Err.Space.String()
	case parse.SyntaxNotEndOfFile:
		return "expected the end of the file"
	case parse.SyntaxEOF:
		return "unexpected end of file"
	}

	var chain []string
	walkExpr(d.Err.Expr, func(name string, _ region.Position) {
		if name != "" && (len(chain) == 0 || chain[len(chain)-1] != name) {
			chain = append(chain, name)
		}
	})
	if len(chain) == 0 {
		return "expected an expression"
	}
	return "parsing stopped inside " + strings.Join(chain, ", inside ")
}

// walkExpr visits the context chain of an expression error from the outside
// in, reporting each construct's name and the position pinned at that level.
func walkExpr(e *parse.EExpr, visit func(name string, pos region.Position)) {
	if e == nil {
		return
	}
	switch e.Kind {
	case parse.EExprNumber:
		visit("a number literal", e.Number.Pos)
	case parse.EExprStr:
		visit("a string literal", e.Str.Pos)
	case parse.EExprList:
		visit("a list", e.List.Pos)
		if e.List.Kind == parse.EListExpr {
			walkExpr(e.List.Expr, visit)
		}
	case parse.EExprInParens:
		visit("a parenthesized expression", e.InParens.Pos)
		if e.InParens.Kind == parse.EInParensExpr {
			walkExpr(e.InParens.Expr, visit)
		}
	case parse.EExprIf:
		visit("an if expression", e.If.Pos)
		walkExpr(e.If.Expr, visit)
	case parse.EExprWhen:
		visit("a when expression", e.When.Pos)
		if e.When.Kind == parse.EWhenPattern {
			visit("a pattern", e.When.Pattern.Pos)
		}
		walkExpr(e.When.Expr, visit)
	default:
		// Start/end/space failures carry no construct of their own.
		visit("", e.Pos)
	}
}
