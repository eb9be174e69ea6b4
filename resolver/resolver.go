/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver evaluates token expressions against a document,
// following references transitively and guarding against reference cycles.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/smalim/expr"
	"bennypowers.dev/smalim/token"
	"bennypowers.dev/smalim/value"
)

var (
	// ErrCircularReference indicates a reference cycle reachable from the
	// token being resolved.
	ErrCircularReference = errors.New("circular token reference")

	// ErrCompositeValue indicates a composite token evaluated where a
	// scalar value is required. Composite tokens are not referenceable;
	// they are only rendered entry by entry.
	ErrCompositeValue = errors.New("cannot resolve composite token as scalar")
)

// Resolver resolves expressions to concrete values. It keeps a set of
// reference paths currently being evaluated, so a cycle faults instead of
// recursing without bound. A resolver is not safe for concurrent use.
type Resolver struct {
	doc        *token.Document
	inProgress map[string]bool
	chain      []string
}

// New creates a resolver over a document.
func New(doc *token.Document) *Resolver {
	return &Resolver{doc: doc, inProgress: make(map[string]bool)}
}

// Evaluate resolves an expression to a value. References are transitive:
// the referenced token's expression is evaluated in turn, not returned raw.
func (r *Resolver) Evaluate(e expr.Expression) (value.Value, error) {
	switch n := e.(type) {
	case expr.Literal:
		return n.Value, nil
	case expr.Reference:
		return r.reference(n.Path)
	case expr.Multiply:
		left, right, err := r.operands(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return value.Multiply(left, right)
	case expr.Divide:
		left, right, err := r.operands(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return value.Divide(left, right)
	default:
		return nil, fmt.Errorf("unknown expression node %T", e)
	}
}

// ResolveToken fully evaluates a scalar token, applying its extension.
func (r *Resolver) ResolveToken(t *token.Token) (value.Value, error) {
	if t.Value.IsComposite() {
		return nil, ErrCompositeValue
	}
	v, err := r.Evaluate(t.Value.Single)
	if err != nil {
		return nil, err
	}
	if t.Extension != nil {
		return t.Extension.Apply(v)
	}
	return v, nil
}

// ResolvePath looks up a token by path and fully resolves it.
func (r *Resolver) ResolvePath(path []string) (value.Value, error) {
	tok, err := r.doc.Lookup(path)
	if err != nil {
		return nil, err
	}
	return r.ResolveToken(tok)
}

func (r *Resolver) operands(left, right expr.Expression) (value.Value, value.Value, error) {
	a, err := r.Evaluate(left)
	if err != nil {
		return nil, nil, err
	}
	b, err := r.Evaluate(right)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (r *Resolver) reference(path []string) (value.Value, error) {
	key := strings.Join(path, ".")
	if r.inProgress[key] {
		return nil, fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(append(r.chain, key), " -> "))
	}
	tok, err := r.doc.Lookup(path)
	if err != nil {
		return nil, err
	}
	if tok.Value.IsComposite() {
		return nil, fmt.Errorf("%w: %s", ErrCompositeValue, key)
	}

	r.inProgress[key] = true
	r.chain = append(r.chain, key)
	v, err := r.Evaluate(tok.Value.Single)
	r.chain = r.chain[:len(r.chain)-1]
	delete(r.inProgress, key)

	return v, err
}
