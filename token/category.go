/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Category is the type tag on a token. It only drives stylesheet property
// naming for composite tokens; unknown categories fall back to generic
// naming.
type Category int

const (
	// CategoryNone is an untyped token.
	CategoryNone Category = iota

	// CategoryBorder maps composite sub-keys to border-* properties.
	CategoryBorder

	// CategoryTypography maps composite sub-keys to typography properties.
	CategoryTypography

	// CategoryOther is any category the naming table does not know.
	CategoryOther
)

// CategoryFromString parses a document-level type tag. The
// "custom-fontStyle" alias is what one common exporter emits for
// typography tokens.
func CategoryFromString(s string) Category {
	switch s {
	case "", "none":
		return CategoryNone
	case "border":
		return CategoryBorder
	case "typography", "custom-fontStyle":
		return CategoryTypography
	default:
		return CategoryOther
	}
}

// String returns the canonical tag text.
func (c Category) String() string {
	switch c {
	case CategoryBorder:
		return "border"
	case CategoryTypography:
		return "typography"
	case CategoryOther:
		return "other"
	default:
		return "none"
	}
}
