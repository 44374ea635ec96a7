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

// The expression grammar. Literals, identifiers, bracketed collections, and
// the two layout-sensitive keyword forms, if and when. Each rule parses with
// its own error type and is lifted into EExpr at the boundary, so a failure
// deep inside a construct still names the construct it happened in.

// exprAlternatives is assembled once at init; the rules recurse into it
// through exprHelp.
var exprAlternatives Parser[ast.Expr, EExpr]

func init() {
	exprAlternatives = OneOf(
		stringExpr(),
		numberExpr(),
		listExpr(),
		parensExpr(),
		ifExpr(),
		whenExpr(),
		tagExpr(),
		varExpr(),
	)
}

// exprHelp ties the grammar's recursive knot. The rules refer to expressions
// through this function instead of exprAlternatives directly, which would
// trip Go's initialization cycle check.
func exprHelp(ar *arena.Arena, state State, minIndent uint32) Result[ast.Expr, EExpr] {
	return exprAlternatives(ar, state, minIndent)
}

// LocExpr parses one expression together with its source region.
func LocExpr() Parser[region.Loc[ast.Expr], EExpr] {
	return Loc(Parser[ast.Expr, EExpr](exprHelp)).Trace("expr")
}

func eExpr(kind EExprKind) func(region.Position) EExpr {
	return func(pos region.Position) EExpr { return EExpr{Kind: kind, Pos: pos} }
}

func eList(kind EListKind) func(region.Position) EList {
	return func(pos region.Position) EList { return EList{Kind: kind, Pos: pos} }
}

func eInParens(kind EInParensKind) func(region.Position) EInParens {
	return func(pos region.Position) EInParens { return EInParens{Kind: kind, Pos: pos} }
}

func eIf(kind EIfKind) func(region.Position) EIf {
	return func(pos region.Position) EIf { return EIf{Kind: kind, Pos: pos} }
}

func eWhen(kind EWhenKind) func(region.Position) EWhen {
	return func(pos region.Position) EWhen { return EWhen{Kind: kind, Pos: pos} }
}

func numberExpr() Parser[ast.Expr, EExpr] {
	number := NumberLiteral(func(pos region.Position) ENumber {
		return ENumber{Pos: pos}
	})
	lifted := SpecializeErrRef(func(e *ENumber, pos region.Position) EExpr {
		return EExpr{Kind: EExprNumber, Pos: pos, Number: e}
	}, number)
	return Map(lifted, func(text string) ast.Expr {
		return ast.Num{Text: text}
	})
}

func stringExpr() Parser[ast.Expr, EExpr] {
	str := StringLiteral(func(kind EStringKind, pos region.Position) EString {
		return EString{Kind: kind, Pos: pos}
	})
	lifted := SpecializeErrRef(func(e *EString, pos region.Position) EExpr {
		return EExpr{Kind: EExprStr, Pos: pos, Str: e}
	}, str)
	return Map(lifted, func(text string) ast.Expr {
		return ast.Str{Text: text}
	})
}

func varExpr() Parser[ast.Expr, EExpr] {
	return Map(LowercaseIdent(eExpr(EExprStart)), func(ident string) ast.Expr {
		return ast.Var{Ident: ident}
	})
}

func tagExpr() Parser[ast.Expr, EExpr] {
	return Map(UppercaseIdent(eExpr(EExprStart)), func(name string) ast.Expr {
		return ast.Tag{Name: name}
	})
}

// listExpr parses [a, b, c], with optional trailing comma and free layout
// inside the brackets.
func listExpr() Parser[ast.Expr, EExpr] {
	return SpecializeErrRef(func(e *EList, pos region.Position) EExpr {
		return EExpr{Kind: EExprList, Pos: pos, List: e}
	}, listHelp())
}

func listHelp() Parser[ast.Expr, EList] {
	spaceErr := func(b BadInput, pos region.Position) EList {
		return EList{Kind: EListSpace, Pos: pos, Space: b}
	}
	// Whitespace before an element or comma is probed backtrackably, so that
	// spaces before the closing bracket do not commit the list to another
	// element.
	spaces := Backtrackable(Spaces(spaceErr))

	element := SkipFirst(spaces, Loc(SpecializeErrRef(func(e *EExpr, pos region.Position) EList {
		return EList{Kind: EListExpr, Pos: pos, Expr: e}
	}, Parser[ast.Expr, EExpr](exprHelp))))
	comma := SkipFirst(spaces, Byte(',', eList(EListEnd)))

	open := Byte('[', eList(EListOpen))
	close := SpacesBefore(Byte(']', eList(EListEnd)), spaceErr)

	items := Between(open, ResetMinIndent(TrailingSepBy0(comma, element)), close)
	return Map(items, func(items []region.Loc[ast.Expr]) ast.Expr {
		return ast.List{Items: items}
	})
}

// parensExpr parses (a) as grouping and (a, b, ...) as a tuple. The opening
// parenthesis is the one indentation-gated token of the grammar: a
// parenthesized expression may not begin left of the ambient indentation
// requirement.
func parensExpr() Parser[ast.Expr, EExpr] {
	return SpecializeErrRef(func(e *EInParens, pos region.Position) EExpr {
		return EExpr{Kind: EExprInParens, Pos: pos, InParens: e}
	}, parensHelp())
}

func parensHelp() Parser[ast.Expr, EInParens] {
	spaceErr := func(b BadInput, pos region.Position) EInParens {
		return EInParens{Kind: EInParensSpace, Pos: pos, Space: b}
	}
	spaces := Backtrackable(Spaces(spaceErr))

	element := SkipFirst(spaces, Loc(SpecializeErrRef(func(e *EExpr, pos region.Position) EInParens {
		return EInParens{Kind: EInParensExpr, Pos: pos, Expr: e}
	}, Parser[ast.Expr, EExpr](exprHelp))))
	comma := SkipFirst(spaces, Byte(',', eInParens(EInParensEnd)))

	open := ByteIndent('(', eInParens(EInParensOpen))
	close := SpacesBefore(Byte(')', eInParens(EInParensEnd)), spaceErr)

	items := Between(open, ResetMinIndent(SepBy1E(comma, element, eInParens(EInParensEmpty))), close)
	return Map(items, func(items []region.Loc[ast.Expr]) ast.Expr {
		if len(items) == 1 {
			return ast.ParensAround{Expr: items[0]}
		}
		return ast.Tuple{Items: items}
	})
}

// ifExpr parses if c1 then e1 else if c2 then e2 else e3, with any number of
// else-if links. Conditions and branch bodies must be indented past the
// ambient requirement.
func ifExpr() Parser[ast.Expr, EExpr] {
	return SpecializeErrRef(func(e *EIf, pos region.Position) EExpr {
		return EExpr{Kind: EExprIf, Pos: pos, If: e}
	}, Parser[ast.Expr, EIf](ifHelp).Trace("if"))
}

func ifHelp(ar *arena.Arena, state State, minIndent uint32) Result[ast.Expr, EIf] {
	r := Word("if", eIf(EIfIf))(ar, state, minIndent)
	if r.Failed() {
		return Errored[ast.Expr, EIf](r.Progress, r.Err)
	}
	state = r.State

	condThen := And(
		ifClause(EIfCondition, EIfIndentCondition, Word("then", eIf(EIfThen))),
		ifClause(EIfThenBranch, EIfIndentThenBranch, Word("else", eIf(EIfElse))),
	)

	var branches []ast.IfBranch
	for {
		cr := condThen(ar, state, minIndent)
		if cr.Failed() {
			return Errored[ast.Expr, EIf](MadeProgress, cr.Err)
		}
		branches = append(branches, ast.IfBranch{
			Condition: cr.Value.First,
			Then:      cr.Value.Second,
		})
		state = cr.State

		sr := Space0E(ifSpaceErr, eIf(EIfIndentElseBranch))(ar, state, minIndent+1)
		if sr.Failed() {
			return Errored[ast.Expr, EIf](MadeProgress, sr.Err)
		}
		state = sr.State

		// "else if" extends the chain with another condition/then pair.
		again := Word("if", eIf(EIfIf))(ar, state, minIndent)
		if !again.Failed() {
			state = again.State
			continue
		}

		elseBody := IncrementMinIndent(ifBody(EIfElseBranch))
		er := elseBody(ar, state, minIndent)
		if er.Failed() {
			return Errored[ast.Expr, EIf](MadeProgress, er.Err)
		}
		node := ast.If{Branches: arena.AllocSlice(ar, branches), Else: er.Value}
		return Ok[ast.Expr, EIf](MadeProgress, node, er.State)
	}
}

// ifClause parses whitespace, an indented expression, whitespace, and a
// terminating keyword, keeping the expression.
func ifClause(kind, indentKind EIfKind, terminator Parser[struct{}, EIf]) Parser[region.Loc[ast.Expr], EIf] {
	space := Space0E(ifSpaceErr, eIf(indentKind))
	return IncrementMinIndent(SkipSecond(
		SkipFirst(space, ifBody(kind)),
		SkipFirst(space, terminator),
	))
}

func ifBody(kind EIfKind) Parser[region.Loc[ast.Expr], EIf] {
	return SpecializeErrRef(func(e *EExpr, pos region.Position) EIf {
		return EIf{Kind: kind, Pos: pos, Expr: e}
	}, Loc(Parser[ast.Expr, EExpr](exprHelp)))
}

func ifSpaceErr(b BadInput, pos region.Position) EIf {
	return EIf{Kind: EIfSpace, Pos: pos, Space: b}
}

// whenExpr parses
//
//	when c is
//	    p1 | p2 -> e1
//	    p3 -> e2
//
// Branches must sit strictly right of the when keyword's column, and every
// branch must start at the same column as the first one.
func whenExpr() Parser[ast.Expr, EExpr] {
	return SpecializeErrRef(func(e *EWhen, pos region.Position) EExpr {
		return EExpr{Kind: EExprWhen, Pos: pos, When: e}
	}, Parser[ast.Expr, EWhen](whenHelp).Trace("when"))
}

func whenHelp(ar *arena.Arena, state State, minIndent uint32) Result[ast.Expr, EWhen] {
	seq := AbsoluteIndentedSeq(
		whenCondition(),
		Parser[[]ast.WhenBranch, EWhen](whenBranches),
	)
	r := seq(ar, state, minIndent)
	if r.Failed() {
		return Errored[ast.Expr, EWhen](r.Progress, r.Err)
	}
	node := ast.When{Condition: r.Value.First, Branches: r.Value.Second}
	return Ok[ast.Expr, EWhen](r.Progress, node, r.State)
}

// whenCondition parses the when keyword, the scrutinee, and the is keyword.
// The scrutinee may wrap lines, but no deeper construct of it may outdent
// past the line the when keyword sits on.
func whenCondition() Parser[region.Loc[ast.Expr], EWhen] {
	space := Space0E(whenSpaceErr, eWhen(EWhenIndentCondition))
	condition := SpecializeErrRef(func(e *EExpr, pos region.Position) EWhen {
		return EWhen{Kind: EWhenCondition, Pos: pos, Expr: e}
	}, Loc(Parser[ast.Expr, EExpr](exprHelp)))

	return Between(
		Word("when", eWhen(EWhenWhen)),
		LineMinIndent(IncrementMinIndent(SkipFirst(space, condition))),
		SkipFirst(space, Word("is", eWhen(EWhenIs))),
	)
}

// whenBranches runs with minIndent just past the when keyword's column. The
// first branch's column becomes the required column for every later branch.
func whenBranches(ar *arena.Arena, state State, minIndent uint32) Result[[]ast.WhenBranch, EWhen] {
	sr := Space0E(whenSpaceErr, eWhen(EWhenIndentPattern))(ar, state, minIndent)
	if sr.Failed() {
		return Errored[[]ast.WhenBranch, EWhen](MadeProgress, sr.Err)
	}
	state = sr.State

	branchCol := state.Column()
	branch := SetMinIndent(branchCol, SkipFirst(
		CheckIndent[EWhen](eWhen(EWhenIndentPattern)),
		whenBranch(),
	))

	first := branch(ar, state, minIndent)
	if first.Failed() {
		return Errored[[]ast.WhenBranch, EWhen](MadeProgress, first.Err)
	}
	branches := []ast.WhenBranch{first.Value}
	state = first.State

	for {
		sp := Backtrackable(Spaces(whenSpaceErr))(ar, state, minIndent)
		if sp.Failed() {
			return Errored[[]ast.WhenBranch, EWhen](MadeProgress, sp.Err)
		}
		// A next branch must align exactly with the first one; anything else
		// ends the when and is left for the enclosing construct.
		if sp.State.Column() != branchCol {
			break
		}
		next := branch(ar, sp.State, minIndent)
		if next.Failed() {
			if next.Progress == MadeProgress {
				return Errored[[]ast.WhenBranch, EWhen](MadeProgress, next.Err)
			}
			break
		}
		branches = append(branches, next.Value)
		state = next.State
	}

	return Ok[[]ast.WhenBranch, EWhen](MadeProgress, arena.AllocSlice(ar, branches), state)
}

// whenBranch parses p1 | p2 | ... -> body.
func whenBranch() Parser[ast.WhenBranch, EWhen] {
	space := Space0E(whenSpaceErr, eWhen(EWhenIndentBranch))
	spaces := Backtrackable(Spaces(whenSpaceErr))

	pattern := SkipFirst(spaces, whenPattern())
	bar := SkipFirst(spaces, Byte('|', eWhen(EWhenArrow)))
	patterns := SepBy1(bar, pattern)

	arrow := SkipFirst(space, TwoBytes('-', '>', eWhen(EWhenArrow)))
	body := IncrementMinIndent(SkipFirst(space, SpecializeErrRef(func(e *EExpr, pos region.Position) EWhen {
		return EWhen{Kind: EWhenBranch, Pos: pos, Expr: e}
	}, Loc(Parser[ast.Expr, EExpr](exprHelp)))))

	return Map(
		And(SkipSecond(patterns, arrow), body),
		func(p Pair[[]region.Loc[ast.Pattern], region.Loc[ast.Expr]]) ast.WhenBranch {
			return ast.WhenBranch{Patterns: p.First, Body: p.Second}
		},
	)
}

func whenPattern() Parser[region.Loc[ast.Pattern], EWhen] {
	return SpecializeErrRef(func(e *EPattern, pos region.Position) EWhen {
		return EWhen{Kind: EWhenPattern, Pos: pos, Pattern: e}
	}, LocPattern())
}

func whenSpaceErr(b BadInput, pos region.Position) EWhen {
	return EWhen{Kind: EWhenSpace, Pos: pos, Space: b}
}
