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

package report_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roboteng/roc/internal/arena"
	"github.com/roboteng/roc/parse"
	"github.com/roboteng/roc/region"
	"github.com/roboteng/roc/report"
)

// locationCase is one entry of testdata/locations.yaml.
type locationCase struct {
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Offset   uint32 `yaml:"offset"`
	Location string `yaml:"location"`
}

func TestLocation(t *testing.T) {
	t.Parallel()

	text, err := os.ReadFile("testdata/locations.yaml")
	require.NoError(t, err)

	var cases []locationCase
	require.NoError(t, yaml.Unmarshal(text, &cases))

	for _, tt := range cases {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			file := report.NewFile(tt.Name, tt.Source)
			loc := file.Location(region.Pos(tt.Offset))
			assert.Equal(t, tt.Location, loc.String())
		})
	}
}

func TestLineLookup(t *testing.T) {
	t.Parallel()

	file := report.NewFile("x", "one\ntwo\nthree")
	assert.Equal(t, "one", file.Line(1))
	assert.Equal(t, "two", file.Line(2))
	assert.Equal(t, "three", file.Line(3))
}

func diagnose(t *testing.T, path, src string) report.Diagnostic {
	t.Helper()

	_, perr := parse.Module(arena.New(), []byte(src))
	require.NotNil(t, perr, "expected a parse failure")
	return report.Diagnostic{File: report.NewFile(path, src), Err: perr}
}

func TestDiagnosticMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, source, message string
	}{
		{"empty", "", "unexpected end of file"},
		{"stray comma", ",", "expected an expression"},
		{"tab", "\t", "unexpected tab character"},
		{"garbage after expr", "1 1", "expected the end of the file"},
		{"unclosed list", "[1, 2", "parsing stopped inside a list"},
		{
			"nested", `[(1, "x]`,
			"parsing stopped inside a list, inside a parenthesized expression, inside a string literal",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := diagnose(t, tt.name, tt.source)
			assert.Equal(t, tt.message, d.Message())
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	d := diagnose(t, "demo.roc", "[1, 2 3]\n")

	var buf strings.Builder
	require.NoError(t, report.Renderer{}.Render(&buf, d))
	assert.Equal(t, strings.Join([]string{
		"error: parsing stopped inside a list",
		" --> demo.roc:1:7",
		"  |",
		"1 | [1, 2 3]",
		"  |       ^",
		"",
	}, "\n"), buf.String())
}

func TestRenderHideSnippet(t *testing.T) {
	t.Parallel()

	d := diagnose(t, "demo.roc", "\t")

	var buf strings.Builder
	require.NoError(t, report.Renderer{HideSnippet: true}.Render(&buf, d))
	assert.Equal(t, "error: unexpected tab character\n --> demo.roc:1:1\n", buf.String())
}
