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

// Package ast defines the syntax tree produced by the parser.
//
// Nodes hold slices of their source text rather than decoded values; literal
// decoding happens in later phases, once the tree is known to be well formed.
// Child nodes and node slices live in the arena that the parser was given, so
// a whole tree is freed by dropping the arena.
package ast

import (
	"fmt"

	"github.com/roboteng/roc/region"
)

// Expr is an expression node.
//
// It is a closed sum: the only implementations are the types in this package.
type Expr interface {
	fmt.Stringer

	isExpr()
}

// Num is a number literal, stored as its source text.
type Num struct {
	Text string
}

// Str is a single-line string literal, stored without its quotes and with
// escapes still encoded.
type Str struct {
	Text string
}

// Var is a reference to a lowercase identifier.
type Var struct {
	Ident string
}

// Tag is an uppercase identifier, such as True or Ok.
type Tag struct {
	Name string
}

// List is a list literal. Items live in the parser's arena.
type List struct {
	Items []region.Loc[Expr]
}

// Tuple is a tuple literal of two or more elements.
type Tuple struct {
	Items []region.Loc[Expr]
}

// ParensAround is a parenthesized expression of exactly one element.
type ParensAround struct {
	Expr region.Loc[Expr]
}

// If is a conditional with one or more condition/then pairs and a final
// else branch.
type If struct {
	Branches []IfBranch
	Else     region.Loc[Expr]
}

// IfBranch is one condition/then pair of an [If].
type IfBranch struct {
	Condition region.Loc[Expr]
	Then      region.Loc[Expr]
}

// When is a pattern match over a scrutinee.
type When struct {
	Condition region.Loc[Expr]
	Branches  []WhenBranch
}

// WhenBranch is one arm of a [When]. Alternative patterns for a single
// branch share one body.
type WhenBranch struct {
	Patterns []region.Loc[Pattern]
	Body     region.Loc[Expr]
}

func (Num) isExpr()          {}
func (Str) isExpr()          {}
func (Var) isExpr()          {}
func (Tag) isExpr()          {}
func (List) isExpr()         {}
func (Tuple) isExpr()        {}
func (ParensAround) isExpr() {}
func (If) isExpr()           {}
func (When) isExpr()         {}

// Pattern is a pattern node in a when branch.
type Pattern interface {
	fmt.Stringer

	isPattern()
}

// Identifier binds the matched value to a name.
type Identifier struct {
	Ident string
}

// TagPattern matches a tag by name.
type TagPattern struct {
	Name string
}

// NumLiteral matches a number literal exactly.
type NumLiteral struct {
	Text string
}

// Underscore matches anything without binding.
type Underscore struct{}

func (Identifier) isPattern() {}
func (TagPattern) isPattern() {}
func (NumLiteral) isPattern() {}
func (Underscore) isPattern() {}

// CommentOrNewline is one element of the whitespace between tokens. The
// formatter needs comments and blank lines verbatim, so the parser keeps
// them instead of discarding trivia.
type CommentOrNewline struct {
	Kind CommentKind
	// Text is the comment body without its leading marker, empty for
	// Newline.
	Text string
}

type CommentKind uint8

const (
	// Newline is a line break that was not preceded by a comment.
	Newline CommentKind = iota
	// LineComment is a comment beginning with a single #.
	LineComment
	// DocComment is a comment beginning with ##.
	DocComment
)

// Module is the root of a parsed source file: a single expression and the
// trivia around it.
type Module struct {
	Before []CommentOrNewline
	Expr   region.Loc[Expr]
	After  []CommentOrNewline
}
