/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the renderer interface and the naming helpers
// shared by the output renderers.
package formatter

import (
	"strings"
	"unicode"

	"bennypowers.dev/smalim/token"
)

// Formatter renders a token document into one output artifact.
type Formatter interface {
	// Format renders the document.
	Format(doc *token.Document) ([]byte, error)

	// Extension returns the artifact's file extension, including the dot.
	Extension() string
}

// slugReplacer folds the punctuation design tools embed in layer names to
// identifier-safe characters: "," -> "c", "+" -> "p", "." -> "d",
// parentheses -> "_".
var slugReplacer = strings.NewReplacer(",", "c", "+", "p", ".", "d", "(", "_", ")", "_")

// Slugify normalizes a token or group name for emitted identifiers,
// joining spaces with sep and dropping anything outside ASCII.
func Slugify(name, sep string) string {
	s := strings.ToLower(slugReplacer.Replace(name))
	s = strings.ReplaceAll(s, " ", sep)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SlugifyCSS normalizes a name for stylesheet identifiers.
func SlugifyCSS(name string) string {
	return Slugify(name, "-")
}

// SlugifyConst normalizes a name for constant identifiers.
func SlugifyConst(name string) string {
	return strings.ToUpper(Slugify(name, "_"))
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "-"))
}

// SplitIntoWords splits a string on hyphens, underscores, dots, spaces,
// and camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '-' || r == '_' || r == '.' || r == ' ' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		} else if unicode.IsUpper(r) && i > 0 {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		} else {
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
