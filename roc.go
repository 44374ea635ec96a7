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

// Package roc is the front end: it resolves paths through a source.Opener,
// parses each file into a syntax tree, and reports failures as diagnostics
// bound to their files.
package roc

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/roboteng/roc/ast"
	"github.com/roboteng/roc/internal/arena"
	"github.com/roboteng/roc/parse"
	"github.com/roboteng/roc/report"
	"github.com/roboteng/roc/source"
)

// Module is one successfully parsed source file.
type Module struct {
	File *report.File
	AST  ast.Module

	// The arena the AST's nodes live in. The AST is valid only as long as
	// this is reachable.
	Arena *arena.Arena
}

// Error is a parse failure tied to the file it happened in. It renders as a
// one-line message; use [report.Renderer] for the full source window.
type Error struct {
	Diagnostic report.Diagnostic
}

// Error implements error.
func (e *Error) Error() string {
	loc := e.Diagnostic.File.Location(e.Diagnostic.Primary())
	return fmt.Sprintf("%s:%v: %s", e.Diagnostic.File.Path(), loc, e.Diagnostic.Message())
}

// Parser parses batches of files concurrently.
//
// The zero value is not usable; construct with [NewParser]. A Parser may be
// reused and is safe for concurrent use.
type Parser struct {
	// Resolves paths to file contents.
	Opener source.Opener

	// The maximum number of files parsed in parallel. NewParser defaults it
	// to GOMAXPROCS.
	MaxParallelism int
}

// NewParser returns a Parser reading through opener.
func NewParser(opener source.Opener) *Parser {
	return &Parser{
		Opener:         opener,
		MaxParallelism: runtime.GOMAXPROCS(0),
	}
}

// ParseModules parses the given paths, in parallel, each into its own arena.
//
// Results are returned in the order the paths were given, with a nil entry
// for each path that failed. The returned error joins every failure, in path
// order; when all files parse, err is nil.
func (p *Parser) ParseModules(ctx context.Context, paths ...string) ([]*Module, error) {
	par := p.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(par))

	modules := make([]*Module, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			modules[i], errs[i] = p.parseOne(path)
		}()
	}
	wg.Wait()

	return modules, errors.Join(errs...)
}

func (p *Parser) parseOne(path string) (*Module, error) {
	file, err := p.Opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	ar := arena.New()
	tree, perr := parse.Module(ar, []byte(file.Text()))
	if perr != nil {
		return nil, &Error{Diagnostic: report.Diagnostic{File: file, Err: perr}}
	}
	return &Module{File: file, AST: tree, Arena: ar}, nil
}
