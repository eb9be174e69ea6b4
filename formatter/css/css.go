/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css renders a token document as a stylesheet.
//
// Scalar tokens emit one custom property declaration each; composite
// tokens emit a rule block with one property per sub-entry. References
// stay live as var() lookups and arithmetic renders as calc() over those
// lookups; only tokens carrying a modify extension are pre-folded, since
// the transform has no stylesheet equivalent.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/smalim/expr"
	"bennypowers.dev/smalim/formatter"
	"bennypowers.dev/smalim/resolver"
	"bennypowers.dev/smalim/token"
	"bennypowers.dev/smalim/value"
)

// Selector chooses the rule scope for emitted declarations.
type Selector string

const (
	// SelectorClass scopes declarations to a class named for the document.
	SelectorClass Selector = "class"

	// SelectorRoot scopes declarations to :root.
	SelectorRoot Selector = "root"
)

// Options configures the stylesheet renderer.
type Options struct {
	Selector Selector
}

// Formatter renders stylesheet output.
type Formatter struct {
	opts Options
}

// New creates a stylesheet renderer with default options.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a stylesheet renderer with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Selector == "" {
		opts.Selector = SelectorClass
	}
	return &Formatter{opts: opts}
}

// Extension returns ".css".
func (f *Formatter) Extension() string {
	return ".css"
}

// Format renders the document in traversal order, one rule or declaration
// block per token.
func (f *Formatter) Format(doc *token.Document) ([]byte, error) {
	scope := ":root"
	if f.opts.Selector == SelectorClass {
		scope = "." + formatter.SlugifyCSS(doc.Name)
	}
	r := resolver.New(doc)
	var rules []string
	if err := f.walk(doc.Root, nil, scope, r, &rules); err != nil {
		return nil, err
	}
	return []byte(strings.Join(rules, "\n") + "\n"), nil
}

func (f *Formatter) walk(g *token.Group, path []string, scope string, r *resolver.Resolver, rules *[]string) error {
	for _, name := range g.Names() {
		child, _ := g.Get(name)
		childPath := append(path[:len(path):len(path)], formatter.SlugifyCSS(name))
		switch n := child.(type) {
		case *token.Group:
			if err := f.walk(n, childPath, scope, r, rules); err != nil {
				return err
			}
		case *token.Token:
			if err := f.emit(n, childPath, scope, r, rules); err != nil {
				return fmt.Errorf("%s: %w", strings.Join(childPath, "-"), err)
			}
		}
	}
	return nil
}

func (f *Formatter) emit(t *token.Token, path []string, scope string, r *resolver.Resolver, rules *[]string) error {
	ident := strings.Join(path, "-")

	if t.Value.IsComposite() {
		declarations := make([]string, 0, len(t.Value.Entries))
		for _, entry := range t.Value.Entries {
			prop := PropertyName(t.Category, entry.Key)
			declarations = append(declarations, fmt.Sprintf("%s: %s;", prop, declarationValue(entry.Expression)))
		}
		*rules = append(*rules, fmt.Sprintf("%s .%s {\n%s\n}", scope, ident, strings.Join(declarations, "\n")))
		return nil
	}

	var text string
	if t.Extension != nil {
		v, err := r.ResolveToken(t)
		if err != nil {
			return err
		}
		text = v.CSS()
	} else {
		text = declarationValue(t.Value.Single)
	}
	*rules = append(*rules, fmt.Sprintf("%s { --%s: %s; }", scope, ident, text))
	return nil
}

// declarationValue renders an expression as a declaration value. Bare
// numbers default to pixels in stylesheet output only.
func declarationValue(e expr.Expression) string {
	if lit, ok := e.(expr.Literal); ok {
		if n, ok := lit.Value.(value.Number); ok && n.Unit == value.UnitNone {
			return value.Number{Magnitude: n.Magnitude, Unit: value.UnitPixel}.CSS()
		}
	}
	return expressionText(e)
}

// expressionText renders an expression with live references: a reference
// becomes a var() lookup against the slugified dash-joined path, and
// arithmetic becomes a calc() over its operands rather than a pre-folded
// constant.
func expressionText(e expr.Expression) string {
	switch n := e.(type) {
	case expr.Reference:
		segments := make([]string, len(n.Path))
		for i, s := range n.Path {
			segments[i] = formatter.SlugifyCSS(s)
		}
		return "var(--" + strings.Join(segments, "-") + ")"
	case expr.Multiply:
		return fmt.Sprintf("calc(%s * %s)", expressionText(n.Left), expressionText(n.Right))
	case expr.Divide:
		return fmt.Sprintf("calc(%s / %s)", expressionText(n.Left), expressionText(n.Right))
	case expr.Literal:
		return n.Value.CSS()
	default:
		return ""
	}
}

// PropertyName maps a composite sub-key to its canonical property name.
// The table is category-aware; unmapped keys fall back to kebab-case.
func PropertyName(c token.Category, key string) string {
	switch c {
	case token.CategoryBorder:
		switch key {
		case "color":
			return "border-color"
		case "width":
			return "border-width"
		case "style":
			return "border-style"
		}
	case token.CategoryTypography:
		switch key {
		case "textCase", "text-case":
			return "text-transform"
		case "lineHeight":
			return "line-height"
		}
	}
	return formatter.ToKebabCase(key)
}
