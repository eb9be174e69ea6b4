/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token document tree: tokens, ordered
// groups, and the document that roots them.
package token

import "bennypowers.dev/smalim/expr"

// Node is a document tree node: a *Token leaf or a nested *Group.
type Node interface {
	isNode()
}

// Token is a leaf design value. Its category drives stylesheet property
// naming for composite values; the extension, when present, rewrites the
// resolved value after evaluation.
type Token struct {
	Category  Category
	Value     TokenValue
	Extension *Extension
}

func (*Token) isNode() {}

// TokenValue holds either a single expression or an ordered mapping of
// sub-property name to expression, used for composite tokens such as
// borders and typography.
type TokenValue struct {
	Single  expr.Expression
	Entries []DictEntry
}

// DictEntry is one named sub-expression of a composite token value.
type DictEntry struct {
	Key        string
	Expression expr.Expression
}

// IsComposite reports whether the value is the dict shape.
func (v TokenValue) IsComposite() bool {
	return v.Single == nil
}

// Scalar wraps a single expression as a token value.
func Scalar(e expr.Expression) TokenValue {
	return TokenValue{Single: e}
}

// Composite wraps ordered sub-expressions as a token value.
func Composite(entries []DictEntry) TokenValue {
	return TokenValue{Entries: entries}
}
