/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package goconst_test

import (
	"strings"
	"testing"

	"bennypowers.dev/smalim/formatter/goconst"
	"bennypowers.dev/smalim/parser"
	"bennypowers.dev/smalim/token"
)

func document(t *testing.T, name, body string) *token.Document {
	t.Helper()
	root, err := parser.Parse([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &token.Document{Name: name, Root: root}
}

func TestFormat_Header(t *testing.T) {
	doc := document(t, "doc", `
gap:
  value: 16px
  type: sizing
`)

	out, err := goconst.New().Format(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)
	if !strings.HasPrefix(text, "// Code generated by smalim. DO NOT EDIT.\n\npackage tokens\n\n") {
		t.Errorf("unexpected header:\n%s", text)
	}
}

func TestFormat_PackageOption(t *testing.T) {
	doc := document(t, "doc", `
gap:
  value: 16px
  type: sizing
`)

	f := goconst.NewWithOptions(goconst.Options{Package: "design"})
	out, err := f.Format(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(out), "package design\n") {
		t.Errorf("expected package clause, got:\n%s", out)
	}
}

func TestFormat_NumbersAreTypedFloat64(t *testing.T) {
	doc := document(t, "doc", `{
		"gap": {"value": 16, "type": "sizing"},
		"scale": {"value": 1.25, "type": "sizing"}
	}`)

	out, err := goconst.New().Format(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)
	// Integral magnitudes carry a forced decimal point.
	if !strings.Contains(text, "const DOC_GAP float64 = 16.0\n") {
		t.Errorf("expected forced decimal point, got:\n%s", text)
	}
	if !strings.Contains(text, "const DOC_SCALE float64 = 1.25\n") {
		t.Errorf("expected 1.25, got:\n%s", text)
	}
}

func TestFormat_PercentagesEmitFractions(t *testing.T) {
	doc := document(t, "doc", `
opacity:
  value: 90%
  type: opacity
`)

	out, err := goconst.New().Format(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(out), "const DOC_OPACITY float64 = 0.9\n") {
		t.Errorf("expected percentage as fraction, got:\n%s", out)
	}
}

func TestFormat_ReferencesFullyResolve(t *testing.T) {
	doc := document(t, "doc", `
color:
  brand:
    value: "#0000ff"
    type: color
accent:
  value: "{color.brand}"
  type: color
`)

	out, err := goconst.New().Format(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, `const DOC_ACCENT = "#0000ff"`) {
		t.Errorf("expected resolved constant, got:\n%s", text)
	}
	if strings.Contains(text, "var(") {
		t.Errorf("constants must not carry live references:\n%s", text)
	}
}

func TestFormat_ArithmeticFolds(t *testing.T) {
	doc := document(t, "doc", `
base:
  value: 4px
  type: sizing
double:
  value: "{base} * 2"
  type: sizing
`)

	out, err := goconst.New().Format(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(out), "const DOC_DOUBLE float64 = 8.0\n") {
		t.Errorf("expected folded arithmetic, got:\n%s", out)
	}
}

func TestFormat_CompositeOrderedPairs(t *testing.T) {
	doc := document(t, "doc", `
border:
  thin:
    value:
      color: "#ff0000"
      width: 1px
      style: solid
    type: border
`)

	out, err := goconst.New().Format(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `var DOC_BORDER_THIN = [...][2]string{{"color", "#ff0000"}, {"width", "1.0"}, {"style", "solid"}}`
	if !strings.Contains(string(out), expected) {
		t.Errorf("expected %s\ngot:\n%s", expected, out)
	}
}

func TestFormat_NamespacePrefix(t *testing.T) {
	doc := document(t, "my theme", `
gap:
  value: 16px
  type: sizing
`)

	out, err := goconst.New().Format(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(out), "const MY_THEME_GAP float64 = 16.0\n") {
		t.Errorf("expected document namespace in identifier, got:\n%s", out)
	}
}

func TestFormat_ResolutionFault(t *testing.T) {
	doc := document(t, "doc", `
bad:
  value: "{missing}"
  type: color
`)

	_, err := goconst.New().Format(doc)
	if err == nil {
		t.Fatal("expected error for dangling reference")
	}
	if !strings.Contains(err.Error(), "DOC_BAD") {
		t.Errorf("expected identifier path in error, got %v", err)
	}
}
