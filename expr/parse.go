/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/smalim/value"
)

// ParseError reports a raw token value that does not match the grammar.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid expression: %q", e.Input)
}

// Terminal alternatives, tried in this order. Ordering is significant:
// the opaque catch-all also matches plain numbers and lone hashes, so it
// must come last.
var (
	referencePattern = regexp.MustCompile(`^\{([^{}]*)\}$`)
	colorPattern     = regexp.MustCompile(`^#[0-9A-Za-z]*$`)
	percentPattern   = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]*)?)%$`)
	pixelPattern     = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]*)?)px$`)
	numberPattern    = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]*)?$`)
	opaquePattern    = regexp.MustCompile(`^[0-9A-Za-z#%. -]*$`)
)

// Parse turns a raw token value string into an expression tree.
//
// The binary operators `*` and `/` bind loosest and associate left, so the
// input splits at the rightmost operator outside reference braces; the
// right operand is always a terminal. A `/` inside braces is a reference
// sub-segment separator, not division.
func Parse(input string) (Expression, error) {
	depth := 0
	for i := len(input) - 1; i >= 0; i-- {
		switch input[i] {
		case '}':
			depth++
		case '{':
			depth--
		case '*', '/':
			if depth != 0 {
				continue
			}
			left, err := Parse(strings.TrimRight(input[:i], " \t\n"))
			if err != nil {
				return nil, err
			}
			right, err := parseTerm(strings.TrimLeft(input[i+1:], " \t\n"))
			if err != nil {
				return nil, err
			}
			if input[i] == '*' {
				return Multiply{Left: left, Right: right}, nil
			}
			return Divide{Left: left, Right: right}, nil
		}
	}
	return parseTerm(input)
}

func parseTerm(s string) (Expression, error) {
	if m := referencePattern.FindStringSubmatch(s); m != nil {
		return Reference{Path: splitReferencePath(m[1])}, nil
	}
	if colorPattern.MatchString(s) {
		if c, err := csscolorparser.Parse(s); err == nil {
			return Literal{Value: value.Color{Color: c}}, nil
		}
		// Not a valid hex color after all; fall through to the catch-all.
	}
	if m := percentPattern.FindStringSubmatch(s); m != nil {
		return numberTerm(m[1], value.UnitPercent)
	}
	if m := pixelPattern.FindStringSubmatch(s); m != nil {
		return numberTerm(m[1], value.UnitPixel)
	}
	if numberPattern.MatchString(s) {
		return numberTerm(s, value.UnitNone)
	}
	if opaquePattern.MatchString(s) {
		return Literal{Value: value.Opaque(s)}, nil
	}
	return nil, &ParseError{Input: s}
}

func numberTerm(digits string, unit value.Unit) (Expression, error) {
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil, &ParseError{Input: digits}
	}
	return Literal{Value: value.Number{Magnitude: f, Unit: unit}}, nil
}

// splitReferencePath flattens a brace-delimited reference body into an
// ordered path. Segments separate on dots, and each dot-segment may itself
// contain slash-separated sub-segments; both spellings flatten to the same
// path, so {a.b} and {a/b} are equivalent.
func splitReferencePath(inner string) []string {
	var path []string
	for _, segment := range strings.Split(inner, ".") {
		path = append(path, strings.Split(segment, "/")...)
	}
	return path
}
