/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expr_test

import (
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"bennypowers.dev/smalim/expr"
	"bennypowers.dev/smalim/value"
)

func TestParse_Reference(t *testing.T) {
	e, err := expr.Parse("{hello.world}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref, ok := e.(expr.Reference)
	if !ok {
		t.Fatalf("expected Reference, got %T", e)
	}
	if len(ref.Path) != 2 || ref.Path[0] != "hello" || ref.Path[1] != "world" {
		t.Errorf("expected path [hello world], got %v", ref.Path)
	}
}

func TestParse_SlashAndDotPathsEquivalent(t *testing.T) {
	dotted, err := expr.Parse("{color.core.blue}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slashed, err := expr.Parse("{color/core.blue}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := dotted.(expr.Reference)
	b := slashed.(expr.Reference)
	if strings.Join(a.Path, ".") != strings.Join(b.Path, ".") {
		t.Errorf("expected equivalent paths, got %v and %v", a.Path, b.Path)
	}
}

func TestParse_Color(t *testing.T) {
	e, err := expr.Parse("#ff00ff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lit, ok := e.(expr.Literal)
	if !ok {
		t.Fatalf("expected Literal, got %T", e)
	}
	c, ok := lit.Value.(value.Color)
	if !ok {
		t.Fatalf("expected Color, got %T", lit.Value)
	}
	if c.CSS() != "#ff00ff" {
		t.Errorf("expected #ff00ff, got %q", c.CSS())
	}
}

func TestParse_InvalidHexFallsThroughToOpaque(t *testing.T) {
	// Matches the leading-hash shape but is not a parseable color, so the
	// catch-all claims it.
	e, err := expr.Parse("#zz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lit, ok := e.(expr.Literal)
	if !ok {
		t.Fatalf("expected Literal, got %T", e)
	}
	if _, ok := lit.Value.(value.Opaque); !ok {
		t.Errorf("expected Opaque, got %T", lit.Value)
	}
}

func TestParse_Numbers(t *testing.T) {
	tests := []struct {
		input     string
		magnitude float64
		unit      value.Unit
	}{
		{"90%", 90, value.UnitPercent},
		{"-90%", -90, value.UnitPercent},
		{"2px", 2, value.UnitPixel},
		{"232.8300018310547", 232.8300018310547, value.UnitNone},
		{"16", 16, value.UnitNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := expr.Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			lit, ok := e.(expr.Literal)
			if !ok {
				t.Fatalf("expected Literal, got %T", e)
			}
			n, ok := lit.Value.(value.Number)
			if !ok {
				t.Fatalf("expected Number, got %T", lit.Value)
			}
			if n.Magnitude != tt.magnitude {
				t.Errorf("expected magnitude %v, got %v", tt.magnitude, n.Magnitude)
			}
			if n.Unit != tt.unit {
				t.Errorf("expected unit %v, got %v", tt.unit, n.Unit)
			}
		})
	}
}

func TestParse_Opaque(t *testing.T) {
	e, err := expr.Parse("ABC Diatype Variable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lit, ok := e.(expr.Literal)
	if !ok {
		t.Fatalf("expected Literal, got %T", e)
	}
	o, ok := lit.Value.(value.Opaque)
	if !ok {
		t.Fatalf("expected Opaque, got %T", lit.Value)
	}
	if string(o) != "ABC Diatype Variable" {
		t.Errorf("expected verbatim text, got %q", o)
	}
}

func TestParse_Multiply(t *testing.T) {
	e, err := expr.Parse("{x} * {y}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mul, ok := e.(expr.Multiply)
	if !ok {
		t.Fatalf("expected Multiply, got %T", e)
	}
	if _, ok := mul.Left.(expr.Reference); !ok {
		t.Errorf("expected Reference on the left, got %T", mul.Left)
	}
	if _, ok := mul.Right.(expr.Reference); !ok {
		t.Errorf("expected Reference on the right, got %T", mul.Right)
	}
}

func TestParse_Divide(t *testing.T) {
	e, err := expr.Parse("{x}/5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	div, ok := e.(expr.Divide)
	if !ok {
		t.Fatalf("expected Divide, got %T", e)
	}
	if _, ok := div.Left.(expr.Reference); !ok {
		t.Errorf("expected Reference on the left, got %T", div.Left)
	}
	lit, ok := div.Right.(expr.Literal)
	if !ok {
		t.Fatalf("expected Literal on the right, got %T", div.Right)
	}
	if n := lit.Value.(value.Number); n.Magnitude != 5 {
		t.Errorf("expected 5, got %v", n.Magnitude)
	}
}

func TestParse_LeftAssociativeChain(t *testing.T) {
	// a * b / c parses as (a * b) / c
	e, err := expr.Parse("{a} * {b} / {c}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	div, ok := e.(expr.Divide)
	if !ok {
		t.Fatalf("expected Divide at the root, got %T", e)
	}
	if _, ok := div.Left.(expr.Multiply); !ok {
		t.Errorf("expected Multiply on the left, got %T", div.Left)
	}
}

func TestParse_SlashInsideBracesIsNotDivision(t *testing.T) {
	e, err := expr.Parse("{color/core/blue}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := e.(expr.Reference); !ok {
		t.Fatalf("expected Reference, got %T", e)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := expr.Parse("not@valid")
	var parseErr *expr.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Input != "not@valid" {
		t.Errorf("expected offending input in error, got %q", parseErr.Input)
	}
}

func TestParse_NumberRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		magnitude := rapid.Float64Range(-1e6, 1e6).Draw(t, "magnitude")
		unit := rapid.SampledFrom([]value.Unit{
			value.UnitNone, value.UnitPixel, value.UnitPercent,
		}).Draw(t, "unit")

		input := value.Number{Magnitude: magnitude, Unit: unit}.CSS()
		e, err := expr.Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}

		lit, ok := e.(expr.Literal)
		if !ok {
			t.Fatalf("parse %q: expected Literal, got %T", input, e)
		}
		n, ok := lit.Value.(value.Number)
		if !ok {
			t.Fatalf("parse %q: expected Number, got %T", input, lit.Value)
		}
		if n.Magnitude != magnitude || n.Unit != unit {
			t.Fatalf("parse %q: got %v %v, want %v %v", input, n.Magnitude, n.Unit, magnitude, unit)
		}
	})
}
