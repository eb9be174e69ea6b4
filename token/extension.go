/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/smalim/value"
)

var (
	// ErrUnsupportedModify indicates a (type, space) combination the
	// engine does not know how to apply.
	ErrUnsupportedModify = errors.New("unsupported modify transform")

	// ErrModifyNonColor indicates an extension applied to a value that is
	// not a color. Extensions are defined only for color tokens.
	ErrModifyNonColor = errors.New("modify extension applied to non-color value")
)

// ModifyType is the colorimetric operation of a modify extension.
type ModifyType string

const (
	ModifyLighten ModifyType = "lighten"
	ModifyDarken  ModifyType = "darken"
	ModifyAlpha   ModifyType = "alpha"
)

// ColorSpace is the space a modify extension operates in.
type ColorSpace string

const (
	SpaceHSL ColorSpace = "hsl"
	SpaceLCH ColorSpace = "lch"
)

// Extension is the studio.tokens modify transform attached to a token.
// It rewrites the token's already-resolved value; the factor is
// multiplicative, so lighten with amount 1.0 doubles lightness.
type Extension struct {
	Type   ModifyType
	Space  ColorSpace
	Amount float64
}

// Apply rewrites a resolved color value in the extension's color space.
// Supported compositions are HSL lighten/darken and LCH alpha; anything
// else is a configuration fault.
func (e *Extension) Apply(v value.Value) (value.Value, error) {
	base, ok := v.(value.Color)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrModifyNonColor, v.CSS())
	}
	col := colorful.Color{R: base.Color.R, G: base.Color.G, B: base.Color.B}
	alpha := base.Color.A

	switch e.Space {
	case SpaceHSL:
		h, s, l := col.Hsl()
		switch e.Type {
		case ModifyLighten:
			l += l * e.Amount
		case ModifyDarken:
			l -= l * e.Amount
		default:
			return nil, fmt.Errorf("%w: %s in %s space", ErrUnsupportedModify, e.Type, e.Space)
		}
		return fromColorful(colorful.Hsl(h, s, clamp01(l)), alpha), nil

	case SpaceLCH:
		if e.Type != ModifyAlpha {
			return nil, fmt.Errorf("%w: %s in %s space", ErrUnsupportedModify, e.Type, e.Space)
		}
		h, c, l := col.Hcl()
		return fromColorful(colorful.Hcl(h, c, l), clamp01(alpha+alpha*e.Amount)), nil

	default:
		return nil, fmt.Errorf("%w: color space %q", ErrUnsupportedModify, e.Space)
	}
}

func fromColorful(c colorful.Color, alpha float64) value.Color {
	c = c.Clamped()
	return value.Color{Color: csscolorparser.Color{R: c.R, G: c.G, B: c.B, A: alpha}}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
