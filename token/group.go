/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Group is an insertion-ordered mapping from name to child node. Order is
// preserved because it determines emission order in both renderers.
type Group struct {
	names    []string
	children map[string]Node
}

func (*Group) isNode() {}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{children: make(map[string]Node)}
}

// Set adds or replaces a child. A replaced child keeps its original
// position in the emission order.
func (g *Group) Set(name string, n Node) {
	if _, exists := g.children[name]; !exists {
		g.names = append(g.names, name)
	}
	g.children[name] = n
}

// Get returns the named child.
func (g *Group) Get(name string) (Node, bool) {
	n, ok := g.children[name]
	return n, ok
}

// Names returns child names in insertion order.
func (g *Group) Names() []string {
	return g.names
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.names)
}
