/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for smalim.
package validate

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/smalim/config"
	"bennypowers.dev/smalim/fs"
	"bennypowers.dev/smalim/load"
	"bennypowers.dev/smalim/resolver"
	"bennypowers.dev/smalim/token"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate token files",
	Long:  `Validate token documents by parsing every file and resolving every token expression, reporting unparseable values, dangling references, and reference cycles.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	// Use config files if no args provided
	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		doc, err := load.Load(filesystem, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		faults := Check(doc)
		for _, fault := range faults {
			fmt.Fprintf(os.Stderr, "Resolution error in %s: %v\n", file, fault)
			hasErrors = true
		}
		if len(faults) > 0 {
			continue
		}

		if !quiet {
			fmt.Printf("  %d tokens ok\n", countTokens(doc.Root))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All files valid.")
	}
	return nil
}

// Check resolves every token in the document and collects the faults:
// dangling references, reference cycles, type mismatches in arithmetic,
// composite tokens used as scalars, and unsupported extension combinations.
func Check(doc *token.Document) []error {
	r := resolver.New(doc)
	var faults []error
	checkGroup(doc.Root, nil, r, &faults)
	return faults
}

func checkGroup(g *token.Group, path []string, r *resolver.Resolver, faults *[]error) {
	for _, name := range g.Names() {
		child, _ := g.Get(name)
		childPath := append(path[:len(path):len(path)], name)
		switch n := child.(type) {
		case *token.Group:
			checkGroup(n, childPath, r, faults)
		case *token.Token:
			checkToken(n, childPath, r, faults)
		}
	}
}

func checkToken(t *token.Token, path []string, r *resolver.Resolver, faults *[]error) {
	name := strings.Join(path, ".")
	if t.Value.IsComposite() {
		for _, entry := range t.Value.Entries {
			if _, err := r.Evaluate(entry.Expression); err != nil {
				*faults = append(*faults, fmt.Errorf("%s.%s: %w", name, entry.Key, err))
			}
		}
		return
	}
	if _, err := r.ResolveToken(t); err != nil {
		*faults = append(*faults, fmt.Errorf("%s: %w", name, err))
	}
}

func countTokens(g *token.Group) int {
	count := 0
	for _, name := range g.Names() {
		child, _ := g.Get(name)
		switch n := child.(type) {
		case *token.Group:
			count += countTokens(n)
		case *token.Token:
			count++
		}
	}
	return count
}
