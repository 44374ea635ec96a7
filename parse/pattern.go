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
	"github.com/roboteng/roc/region"
)

// LocPattern parses one when-branch pattern with its source region: an
// underscore, a number literal, a tag, or a binding identifier.
func LocPattern() Parser[region.Loc[ast.Pattern], EPattern] {
	return Loc(OneOf(
		underscorePattern(),
		numberPattern(),
		tagPatternParser(),
		identifierPattern(),
	))
}

func ePattern(kind EPatternKind) func(region.Position) EPattern {
	return func(pos region.Position) EPattern { return EPattern{Kind: kind, Pos: pos} }
}

func underscorePattern() Parser[ast.Pattern, EPattern] {
	return Map(Byte('_', ePattern(EPatternStart)), func(struct{}) ast.Pattern {
		return ast.Underscore{}
	})
}

func numberPattern() Parser[ast.Pattern, EPattern] {
	return Map(NumberLiteral(ePattern(EPatternStart)), func(text string) ast.Pattern {
		return ast.NumLiteral{Text: text}
	})
}

func tagPatternParser() Parser[ast.Pattern, EPattern] {
	return Map(UppercaseIdent(ePattern(EPatternStart)), func(name string) ast.Pattern {
		return ast.TagPattern{Name: name}
	})
}

func identifierPattern() Parser[ast.Pattern, EPattern] {
	return Map(LowercaseIdent(ePattern(EPatternStart)), func(ident string) ast.Pattern {
		return ast.Identifier{Ident: ident}
	})
}
