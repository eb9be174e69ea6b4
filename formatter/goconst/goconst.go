/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package goconst renders a token document as Go constant declarations.
//
// Unlike the stylesheet renderer, every expression is fully resolved
// before emission: there are no live cross-references in this output.
// Numeric tokens emit float64 constants, everything else emits strings,
// and composite tokens emit an ordered list of (sub-key, value) pairs.
package goconst

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/smalim/formatter"
	"bennypowers.dev/smalim/resolver"
	"bennypowers.dev/smalim/token"
	"bennypowers.dev/smalim/value"
)

// DefaultPackage is the package name used when none is configured.
const DefaultPackage = "tokens"

// Options configures the constant renderer.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
}

// Formatter renders Go source output.
type Formatter struct {
	opts Options
}

// New creates a constant renderer with default options.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a constant renderer with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	return &Formatter{opts: opts}
}

// Extension returns ".go".
func (f *Formatter) Extension() string {
	return ".go"
}

// Format renders the document as a compilable Go file. Identifiers are
// underscore-joined upper-cased paths namespaced by the document name.
func (f *Formatter) Format(doc *token.Document) ([]byte, error) {
	r := resolver.New(doc)
	prefix := formatter.SlugifyConst(doc.Name)

	var declarations []string
	if err := f.walk(doc.Root, []string{prefix}, r, &declarations); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("// Code generated by smalim. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", f.opts.Package)
	b.WriteString(strings.Join(declarations, "\n"))
	b.WriteString("\n")
	return []byte(b.String()), nil
}

func (f *Formatter) walk(g *token.Group, path []string, r *resolver.Resolver, declarations *[]string) error {
	for _, name := range g.Names() {
		child, _ := g.Get(name)
		childPath := append(path[:len(path):len(path)], formatter.SlugifyConst(name))
		switch n := child.(type) {
		case *token.Group:
			if err := f.walk(n, childPath, r, declarations); err != nil {
				return err
			}
		case *token.Token:
			if err := f.emit(n, childPath, r, declarations); err != nil {
				return fmt.Errorf("%s: %w", strings.Join(childPath, "_"), err)
			}
		}
	}
	return nil
}

func (f *Formatter) emit(t *token.Token, path []string, r *resolver.Resolver, declarations *[]string) error {
	ident := strings.Join(path, "_")

	if t.Value.IsComposite() {
		pairs := make([]string, 0, len(t.Value.Entries))
		for _, entry := range t.Value.Entries {
			v, err := r.Evaluate(entry.Expression)
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Key, err)
			}
			pairs = append(pairs, fmt.Sprintf("{%s, %s}", strconv.Quote(entry.Key), strconv.Quote(constText(v))))
		}
		*declarations = append(*declarations, fmt.Sprintf("var %s = [...][2]string{%s}", ident, strings.Join(pairs, ", ")))
		return nil
	}

	v, err := r.ResolveToken(t)
	if err != nil {
		return err
	}
	if n, ok := v.(value.Number); ok {
		*declarations = append(*declarations, fmt.Sprintf("const %s float64 = %s", ident, numberText(n)))
		return nil
	}
	*declarations = append(*declarations, fmt.Sprintf("const %s = %s", ident, strconv.Quote(v.CSS())))
	return nil
}

// constText renders a resolved value as the text stored in composite
// pairs: numbers use the constant form, everything else the display form.
func constText(v value.Value) string {
	if n, ok := v.(value.Number); ok {
		return numberText(n)
	}
	return v.CSS()
}

// numberText formats a numeric constant. Percentages emit their fractional
// equivalent, and the result always carries a decimal point.
func numberText(n value.Number) string {
	magnitude := n.Magnitude
	if n.Unit == value.UnitPercent {
		magnitude *= 0.01
	}
	s := value.FormatFloat(magnitude)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
