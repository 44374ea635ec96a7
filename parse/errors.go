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

// Each grammar rule has its own closed error set: a kind, the position the
// failure is pinned to, and, for composite kinds, the child rule's error by
// arena reference. A whole failure therefore reads as a path from the
// outermost construct down to the exact failing token. There is no catch and
// recover anywhere in the engine; a MadeProgress failure is terminal for the
// parse attempt.

// BadInput classifies byte-level input problems found while scanning
// whitespace and comments.
type BadInput uint8

const (
	HasTab BadInput = iota
	HasMisplacedCarriageReturn
	HasAsciiControl
	BadUtf8
)

// String implements [fmt.Stringer].
func (b BadInput) String() string {
	switch b {
	case HasTab:
		return "tab character"
	case HasMisplacedCarriageReturn:
		return "misplaced carriage return"
	case HasAsciiControl:
		return "ASCII control character"
	default:
		return "invalid UTF-8"
	}
}

// SyntaxError is the failure of a whole-module parse.
type SyntaxError struct {
	Kind SyntaxErrorKind
	Pos  region.Position

	Expr  *EExpr   // for SyntaxExpr
	Space BadInput // for SyntaxSpace
}

type SyntaxErrorKind uint8

const (
	SyntaxExpr SyntaxErrorKind = iota
	SyntaxSpace
	SyntaxNotEndOfFile
	SyntaxEOF
)

// Error implements error.
func (e *SyntaxError) Error() string {
	switch e.Kind {
	case SyntaxSpace:
		return fmt.Sprintf("%v at %v", e.Space, e.Pos)
	case SyntaxNotEndOfFile:
		return fmt.Sprintf("expected the end of the file at %v", e.Pos)
	case SyntaxEOF:
		return fmt.Sprintf("unexpected end of file at %v", e.Pos)
	default:
		return fmt.Sprintf("syntax error in expression at %v", innermost(e.Expr))
	}
}

// innermost follows the child chain of an expression error down to the
// position of the failing token.
func innermost(e *EExpr) region.Position {
	if e == nil {
		return region.Position{}
	}
	switch e.Kind {
	case EExprStr:
		return e.Str.Pos
	case EExprList:
		if e.List.Kind == EListExpr {
			return innermost(e.List.Expr)
		}
		return e.List.Pos
	case EExprInParens:
		if e.InParens.Kind == EInParensExpr {
			return innermost(e.InParens.Expr)
		}
		return e.InParens.Pos
	case EExprIf:
		if e.If.Expr != nil {
			return innermost(e.If.Expr)
		}
		return e.If.Pos
	case EExprWhen:
		if e.When.Expr != nil {
			return innermost(e.When.Expr)
		}
		return e.When.Pos
	default:
		return e.Pos
	}
}

// EExpr is the error set for expression parsing.
type EExpr struct {
	Kind EExprKind
	Pos  region.Position

	Space    BadInput   // for EExprSpace
	Number   *ENumber   // for EExprNumber
	Str      *EString   // for EExprStr
	List     *EList     // for EExprList
	InParens *EInParens // for EExprInParens
	If       *EIf       // for EExprIf
	When     *EWhen     // for EExprWhen
}

type EExprKind uint8

const (
	// No expression could begin here.
	EExprStart EExprKind = iota
	// An expression ended where more input was required.
	EExprEnd
	EExprSpace
	EExprIndentStart
	EExprNumber
	EExprStr
	EExprList
	EExprInParens
	EExprIf
	EExprWhen
)

// ENumber is the error set for number literals.
type ENumber struct {
	Pos region.Position
}

// EString is the error set for string literals.
type EString struct {
	Kind EStringKind
	Pos  region.Position
}

type EStringKind uint8

const (
	EStringOpen EStringKind = iota
	EStringEndlessSingleLine
	EStringUnknownEscape
)

// EList is the error set for list literals.
type EList struct {
	Kind EListKind
	Pos  region.Position

	Space BadInput // for EListSpace
	Expr  *EExpr   // for EListExpr
}

type EListKind uint8

const (
	EListOpen EListKind = iota
	EListEnd
	EListSpace
	EListExpr
)

// EInParens is the error set for parenthesized and tuple expressions.
type EInParens struct {
	Kind EInParensKind
	Pos  region.Position

	Space BadInput // for EInParensSpace
	Expr  *EExpr   // for EInParensExpr
}

type EInParensKind uint8

const (
	EInParensOpen EInParensKind = iota
	EInParensEnd
	EInParensEmpty
	EInParensSpace
	EInParensExpr
)

// EIf is the error set for if expressions.
type EIf struct {
	Kind EIfKind
	Pos  region.Position

	Space BadInput // for EIfSpace
	Expr  *EExpr   // for the branch kinds
}

type EIfKind uint8

const (
	EIfIf EIfKind = iota
	EIfThen
	EIfElse
	EIfCondition
	EIfThenBranch
	EIfElseBranch
	EIfIndentCondition
	EIfIndentThenBranch
	EIfIndentElseBranch
	EIfSpace
)

// EWhen is the error set for when expressions.
type EWhen struct {
	Kind EWhenKind
	Pos  region.Position

	Space   BadInput  // for EWhenSpace
	Expr    *EExpr    // for EWhenCondition and EWhenBranch
	Pattern *EPattern // for EWhenPattern
}

type EWhenKind uint8

const (
	EWhenWhen EWhenKind = iota
	EWhenIs
	EWhenArrow
	EWhenCondition
	EWhenBranch
	EWhenPattern
	EWhenIndentCondition
	EWhenIndentPattern
	EWhenIndentBranch
	EWhenSpace
)

// EPattern is the error set for patterns in when branches.
type EPattern struct {
	Kind EPatternKind
	Pos  region.Position

	Space BadInput // for EPatternSpace
}

type EPatternKind uint8

const (
	EPatternStart EPatternKind = iota
	EPatternSpace
)
