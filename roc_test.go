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

package roc_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboteng/roc"
	"github.com/roboteng/roc/internal/arena"
	"github.com/roboteng/roc/internal/golden"
	"github.com/roboteng/roc/parse"
	"github.com/roboteng/roc/report"
	"github.com/roboteng/roc/source"
)

func TestParseModules(t *testing.T) {
	t.Parallel()

	opener := source.NewMap(map[string]string{
		"ok.roc":    "[1, 2, 3]",
		"also.roc":  `"fine"`,
		"bad.roc":   "(1, 2",
		"empty.roc": "",
	})
	parser := roc.NewParser(opener)

	modules, err := parser.ParseModules(
		context.Background(),
		"ok.roc", "bad.roc", "also.roc", "empty.roc", "missing.roc",
	)
	require.Error(t, err)
	require.Len(t, modules, 5)

	// Successes come back in argument order; failures leave nil holes.
	require.NotNil(t, modules[0])
	assert.Equal(t, "(list (num 1) (num 2) (num 3))", modules[0].AST.String())
	assert.Nil(t, modules[1])
	require.NotNil(t, modules[2])
	assert.Equal(t, `(str "fine")`, modules[2].AST.String())
	assert.Nil(t, modules[3])
	assert.Nil(t, modules[4])

	var perr *roc.Error
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseModulesAllGood(t *testing.T) {
	t.Parallel()

	opener := source.NewMap(map[string]string{
		"a.roc": "1",
		"b.roc": "2",
	})
	parser := roc.NewParser(opener)
	parser.MaxParallelism = 1

	modules, err := parser.ParseModules(context.Background(), "a.roc", "b.roc")
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "(num 1)", modules[0].AST.String())
	assert.Equal(t, "(num 2)", modules[1].AST.String())
}

func TestParseModulesCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parser := roc.NewParser(source.NewMap(nil))
	parser.MaxParallelism = 1

	_, err := parser.ParseModules(ctx, "a.roc", "b.roc", "c.roc")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	parser := roc.NewParser(source.NewMap(map[string]string{
		"bad.roc": "[1, 2 3]",
	}))

	_, err := parser.ParseModules(context.Background(), "bad.roc")
	require.Error(t, err)

	var perr *roc.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.roc:1:7: parsing stopped inside a list", perr.Error())
}

func TestCorpus(t *testing.T) {
	golden.Corpus{
		Root:      "testdata",
		Refresh:   "ROC_REFRESH",
		Extension: "roc",
		Outputs:   []string{"ast", "stderr"},
		Test: func(t *testing.T, path, text string) []string {
			tree, perr := parse.Module(arena.New(), []byte(text))
			if perr != nil {
				var buf strings.Builder
				d := report.Diagnostic{File: report.NewFile(path, text), Err: perr}
				require.NoError(t, report.Renderer{}.Render(&buf, d))
				return []string{"", buf.String()}
			}
			return []string{tree.String() + "\n", ""}
		},
	}.Run(t)
}
