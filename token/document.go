/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates a reference path that does not resolve to a token.
var ErrNotFound = errors.New("no such token path")

// Document is a named token tree. The name prefixes every identifier both
// renderers emit. The tree is built once by the loading layer and is
// immutable thereafter.
type Document struct {
	Name string
	Root *Group
}

// Lookup descends the group chain, consuming one path segment per level,
// and returns the token at the end of the path. Reaching a token before
// the path is exhausted, running out of tree, or ending on a group are all
// lookup faults.
func (d *Document) Lookup(path []string) (*Token, error) {
	var node Node = d.Root
	for i, segment := range path {
		group, ok := node.(*Group)
		if !ok {
			return nil, fmt.Errorf("%w: %s is a token, not a group", ErrNotFound, strings.Join(path[:i], "."))
		}
		child, ok := group.Get(segment)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(path, "."))
		}
		node = child
	}
	tok, ok := node.(*Token)
	if !ok {
		return nil, fmt.Errorf("%w: %s names a group, not a token", ErrNotFound, strings.Join(path, "."))
	}
	return tok, nil
}
