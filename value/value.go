/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package value provides the resolved runtime values of design tokens
// and the arithmetic defined over them.
package value

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mazznoer/csscolorparser"
)

// ErrTypeMismatch indicates arithmetic between incompatible value kinds.
var ErrTypeMismatch = errors.New("type mismatch")

// Unit is the dimensional unit attached to a Number.
type Unit int

const (
	// UnitNone is a bare, dimensionless number.
	UnitNone Unit = iota

	// UnitPixel is a px dimension.
	UnitPixel

	// UnitPercent is a percentage.
	UnitPercent
)

// Suffix returns the CSS suffix for the unit.
func (u Unit) Suffix() string {
	switch u {
	case UnitPixel:
		return "px"
	case UnitPercent:
		return "%"
	default:
		return ""
	}
}

// Value is a resolved token value: a color, a dimensioned number, or
// opaque text. The set is closed; renderers switch exhaustively over it.
type Value interface {
	// CSS returns the stylesheet text for the value.
	CSS() string

	isValue()
}

// Color is an sRGB color with unit-interval channels.
type Color struct {
	Color csscolorparser.Color
}

func (Color) isValue() {}

// CSS returns the lowercase hex form, with an alpha byte when alpha < 1.
func (c Color) CSS() string {
	return c.Color.HexString()
}

// Number is a magnitude with a unit.
type Number struct {
	Magnitude float64
	Unit      Unit
}

func (Number) isValue() {}

// CSS returns the magnitude followed by the unit suffix.
func (n Number) CSS() string {
	return FormatFloat(n.Magnitude) + n.Unit.Suffix()
}

// Opaque is any value not recognized as a color or number: free text,
// keywords, font family names.
type Opaque string

func (Opaque) isValue() {}

// CSS returns the text verbatim.
func (o Opaque) CSS() string {
	return string(o)
}

// FormatFloat renders a magnitude in its shortest exact decimal form.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Multiply multiplies two values of the same kind. Colors multiply
// componentwise across r, g, b and alpha; numbers multiply magnitudes and
// keep the left operand's unit. Any other pairing is a fault.
func Multiply(a, b Value) (Value, error) {
	switch left := a.(type) {
	case Color:
		if right, ok := b.(Color); ok {
			return Color{Color: csscolorparser.Color{
				R: left.Color.R * right.Color.R,
				G: left.Color.G * right.Color.G,
				B: left.Color.B * right.Color.B,
				A: left.Color.A * right.Color.A,
			}}, nil
		}
	case Number:
		if right, ok := b.(Number); ok {
			return Number{Magnitude: left.Magnitude * right.Magnitude, Unit: left.Unit}, nil
		}
	}
	return nil, fmt.Errorf("%w: cannot multiply %s and %s", ErrTypeMismatch, describe(a), describe(b))
}

// Divide divides two values of the same kind, with the same pairing and
// unit rules as Multiply.
func Divide(a, b Value) (Value, error) {
	switch left := a.(type) {
	case Color:
		if right, ok := b.(Color); ok {
			return Color{Color: csscolorparser.Color{
				R: left.Color.R / right.Color.R,
				G: left.Color.G / right.Color.G,
				B: left.Color.B / right.Color.B,
				A: left.Color.A / right.Color.A,
			}}, nil
		}
	case Number:
		if right, ok := b.(Number); ok {
			return Number{Magnitude: left.Magnitude / right.Magnitude, Unit: left.Unit}, nil
		}
	}
	return nil, fmt.Errorf("%w: cannot divide %s and %s", ErrTypeMismatch, describe(a), describe(b))
}

func describe(v Value) string {
	switch v.(type) {
	case Color:
		return "color"
	case Number:
		return "number"
	case Opaque:
		return "opaque text"
	default:
		return "unknown value"
	}
}
