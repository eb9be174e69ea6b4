/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package expr provides the expression tree embedded in raw token values,
// and the parser that produces it.
package expr

import "bennypowers.dev/smalim/value"

// Expression is the parsed form of a token's raw value, before resolution.
// Trees are immutable once parsed.
type Expression interface {
	isExpression()
}

// Reference addresses another token by its path through the token tree.
type Reference struct {
	Path []string
}

func (Reference) isExpression() {}

// Multiply is the binary `*` node.
type Multiply struct {
	Left, Right Expression
}

func (Multiply) isExpression() {}

// Divide is the binary `/` node.
type Divide struct {
	Left, Right Expression
}

func (Divide) isExpression() {}

// Literal is a terminal resolved value.
type Literal struct {
	Value value.Value
}

func (Literal) isExpression() {}

// FromNumber wraps a numeric document value as a bare-number literal,
// bypassing the string grammar.
func FromNumber(f float64) Expression {
	return Literal{Value: value.Number{Magnitude: f, Unit: value.UnitNone}}
}
