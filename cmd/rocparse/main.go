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

// rocparse parses source files and prints either their syntax trees or the
// diagnostics for files that fail to parse.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/roboteng/roc"
	"github.com/roboteng/roc/report"
	"github.com/roboteng/roc/source"
)

func main() {
	root := &cobra.Command{
		Use:           "rocparse",
		Short:         "Parse source files and inspect the results",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(checkCmd(), astCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rocparse:", err)
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <glob>...",
		Short: "Parse files and report syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := parseAll(cmd, args)
			return err
		},
	}
}

func astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <glob>...",
		Short: "Parse files and print their syntax trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modules, err := parseAll(cmd, args)
			if err != nil {
				return err
			}
			for _, m := range modules {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", m.File.Path(), m.AST)
			}
			return nil
		},
	}
}

// parseAll expands the argument globs, parses every match in parallel, and
// renders a diagnostic to stderr for each parse failure.
func parseAll(cmd *cobra.Command, globs []string) ([]*roc.Module, error) {
	var paths []string
	for _, glob := range globs {
		matches, err := doublestar.FilepathGlob(glob)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", glob, err)
		}
		if matches == nil {
			// Nothing matched; treat the argument as a literal path so the
			// open error names it.
			matches = []string{glob}
		}
		paths = append(paths, matches...)
	}

	parser := roc.NewParser(&source.FS{FS: os.DirFS(".")})
	modules, err := parser.ParseModules(cmd.Context(), paths...)
	if err == nil {
		return modules, nil
	}

	renderer := report.Renderer{}
	failures := 0
	for _, cause := range flatten(err) {
		failures++
		var perr *roc.Error
		if !errors.As(cause, &perr) {
			fmt.Fprintln(cmd.ErrOrStderr(), "rocparse:", cause)
			continue
		}
		if rerr := renderer.Render(cmd.ErrOrStderr(), perr.Diagnostic); rerr != nil {
			return nil, rerr
		}
	}
	return nil, fmt.Errorf("%d of %d files failed to parse", failures, len(paths))
}

// flatten unwraps one level of an errors.Join error.
func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
