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

package ast

import (
	"fmt"
	"strings"

	"github.com/roboteng/roc/region"
)

// The String methods render nodes as S-expressions. The rendering is for
// debugging and golden tests; it is stable but not meant to be parsed back.

// String implements [fmt.Stringer].
func (n Num) String() string {
	return fmt.Sprintf("(num %s)", n.Text)
}

// String implements [fmt.Stringer].
func (s Str) String() string {
	return fmt.Sprintf("(str %q)", s.Text)
}

// String implements [fmt.Stringer].
func (v Var) String() string {
	return fmt.Sprintf("(var %s)", v.Ident)
}

// String implements [fmt.Stringer].
func (t Tag) String() string {
	return fmt.Sprintf("(tag %s)", t.Name)
}

// String implements [fmt.Stringer].
func (l List) String() string {
	return sexpr("list", locExprs(l.Items)...)
}

// String implements [fmt.Stringer].
func (t Tuple) String() string {
	return sexpr("tuple", locExprs(t.Items)...)
}

// String implements [fmt.Stringer].
func (p ParensAround) String() string {
	return sexpr("parens", p.Expr.Value)
}

// String implements [fmt.Stringer].
func (i If) String() string {
	parts := make([]fmt.Stringer, 0, 2*len(i.Branches)+1)
	for _, b := range i.Branches {
		parts = append(parts, b.Condition.Value, b.Then.Value)
	}
	parts = append(parts, i.Else.Value)
	return sexpr("if", parts...)
}

// String implements [fmt.Stringer].
func (w When) String() string {
	parts := make([]fmt.Stringer, 0, len(w.Branches)+1)
	parts = append(parts, w.Condition.Value)
	for _, b := range w.Branches {
		parts = append(parts, b)
	}
	return sexpr("when", parts...)
}

// String implements [fmt.Stringer].
func (b WhenBranch) String() string {
	parts := make([]fmt.Stringer, 0, len(b.Patterns)+1)
	for _, p := range b.Patterns {
		parts = append(parts, p.Value)
	}
	parts = append(parts, b.Body.Value)
	return sexpr("branch", parts...)
}

// String implements [fmt.Stringer].
func (i Identifier) String() string {
	return fmt.Sprintf("(ident %s)", i.Ident)
}

// String implements [fmt.Stringer].
func (t TagPattern) String() string {
	return fmt.Sprintf("(ptag %s)", t.Name)
}

// String implements [fmt.Stringer].
func (n NumLiteral) String() string {
	return fmt.Sprintf("(pnum %s)", n.Text)
}

// String implements [fmt.Stringer].
func (Underscore) String() string {
	return "(underscore)"
}

// String implements [fmt.Stringer].
func (c CommentOrNewline) String() string {
	switch c.Kind {
	case LineComment:
		return fmt.Sprintf("(comment %q)", c.Text)
	case DocComment:
		return fmt.Sprintf("(doc-comment %q)", c.Text)
	default:
		return "(newline)"
	}
}

// String implements [fmt.Stringer].
func (m Module) String() string {
	return m.Expr.Value.String()
}

func sexpr(head string, parts ...fmt.Stringer) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, p := range parts {
		sb.WriteByte(' ')
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func locExprs(items []region.Loc[Expr]) []fmt.Stringer {
	parts := make([]fmt.Stringer, len(items))
	for i, item := range items {
		parts[i] = item.Value
	}
	return parts
}
