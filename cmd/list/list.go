/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for smalim.
package list

import (
	"fmt"
	"os"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/smalim/fs"
	"bennypowers.dev/smalim/load"
	"bennypowers.dev/smalim/resolver"
	"bennypowers.dev/smalim/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List resolved tokens from token files",
	Long:  `List all tokens from token documents with their fully resolved values.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("category", "", "Filter by token category (border, typography, other)")
	Cmd.Flags().String("format", "table", "Output format: table, markdown")
}

// Row holds computed display values for a single token or composite entry.
type Row struct {
	Name     string // dot-joined token path
	Category string
	Value    string // fully resolved display value
	IsColor  bool   // whether the value renders as a color swatch
	Group    string // top-level group, used for markdown headings
}

func run(cmd *cobra.Command, args []string) error {
	categoryFilter, _ := cmd.Flags().GetString("category")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()

	var rows []Row
	for _, file := range args {
		doc, err := load.Load(filesystem, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			continue
		}
		rows = append(rows, ComputeRows(doc)...)
	}

	if categoryFilter != "" {
		filtered := make([]Row, 0)
		for _, r := range rows {
			if r.Category == categoryFilter {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	switch format {
	case "markdown":
		return outputMarkdown(rows)
	default:
		return outputTable(rows)
	}
}

// ComputeRows resolves every token in the document into display rows, in
// traversal order. Composite tokens contribute one row per sub-entry named
// "path.key". Tokens that fail to resolve show the error as their value.
func ComputeRows(doc *token.Document) []Row {
	r := resolver.New(doc)
	var rows []Row
	computeGroup(doc.Root, nil, r, &rows)
	return rows
}

func computeGroup(g *token.Group, path []string, r *resolver.Resolver, rows *[]Row) {
	for _, name := range g.Names() {
		child, _ := g.Get(name)
		childPath := append(path[:len(path):len(path)], name)
		switch n := child.(type) {
		case *token.Group:
			computeGroup(n, childPath, r, rows)
		case *token.Token:
			computeToken(n, childPath, r, rows)
		}
	}
}

func computeToken(t *token.Token, path []string, r *resolver.Resolver, rows *[]Row) {
	group := path[0]
	category := t.Category.String()

	if t.Value.IsComposite() {
		for _, entry := range t.Value.Entries {
			name := strings.Join(path, ".") + "." + entry.Key
			row := Row{Name: name, Category: category, Group: group}
			if v, err := r.Evaluate(entry.Expression); err != nil {
				row.Value = fmt.Sprintf("<%v>", err)
			} else {
				row.Value = v.CSS()
				row.IsColor = isColor(row.Value)
			}
			*rows = append(*rows, row)
		}
		return
	}

	row := Row{Name: strings.Join(path, "."), Category: category, Group: group}
	if v, err := r.ResolveToken(t); err != nil {
		row.Value = fmt.Sprintf("<%v>", err)
	} else {
		row.Value = v.CSS()
		row.IsColor = isColor(row.Value)
	}
	*rows = append(*rows, row)
}

func isColor(value string) bool {
	if !strings.HasPrefix(value, "#") {
		return false
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

func outputTable(rows []Row) error {
	nameW := 4
	for _, r := range rows {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
	}
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		fmt.Printf("%-*s  %-12s %s%s\n", nameW, r.Name, r.Category, swatch, r.Value)
	}
	return nil
}

func outputMarkdown(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows by top-level group, preserving order of first occurrence
	groupOrder := make([]string, 0)
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byGroup[r.Group]; !exists {
			groupOrder = append(groupOrder, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	caser := cases.Title(language.English)
	first := true
	for _, group := range groupOrder {
		rows := byGroup[group]
		if !first {
			fmt.Println()
		}
		first = false

		fmt.Printf("## %s\n\n", caser.String(group))

		nameW, valW := 4, 5
		for _, r := range rows {
			if len(r.Name) > nameW {
				nameW = len(r.Name)
			}
			if len(r.Value) > valW {
				valW = len(r.Value)
			}
		}

		fmt.Printf("| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Printf("|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
		for _, r := range rows {
			fmt.Printf("| %-*s | %-*s |\n", nameW, r.Name, valW, r.Value)
		}
	}
	return nil
}
