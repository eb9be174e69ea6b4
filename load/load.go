/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads design token documents from the filesystem.
package load

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/smalim/fs"
	"bennypowers.dev/smalim/parser"
	"bennypowers.dev/smalim/token"
)

// DefaultName is the document name used when none can be derived.
const DefaultName = "ambient"

// Load reads and decodes one token document. The document name derives
// from the file name; pass it through Merge or rename it afterwards to
// override.
func Load(filesystem fs.FileSystem, path string) (*token.Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	root, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &token.Document{Name: DocumentName(path), Root: root}, nil
}

// LoadAll loads documents from every path, in order.
func LoadAll(filesystem fs.FileSystem, paths []string) ([]*token.Document, error) {
	documents := make([]*token.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := Load(filesystem, path)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}
	return documents, nil
}

// DocumentName derives a document name from its file name. Exporters name
// files like "design.brand.tokens.json"; the middle segment is the
// document name. Plain names keep their base without extension.
func DocumentName(path string) string {
	base := filepath.Base(path)
	parts := strings.Split(base, ".")
	var name string
	switch {
	case len(parts) >= 3:
		name = parts[1]
	case len(parts) == 2:
		name = parts[0]
	default:
		name = base
	}
	if name == "" {
		return DefaultName
	}
	return name
}

// Merge combines several documents into one named document: an explicit
// step for exporters that split one token set across files. Root groups
// concatenate in document order; on a root-level name collision the later
// document wins, keeping the earlier position.
func Merge(name string, documents []*token.Document) *token.Document {
	root := token.NewGroup()
	for _, doc := range documents {
		for _, childName := range doc.Root.Names() {
			child, _ := doc.Root.Get(childName)
			root.Set(childName, child)
		}
	}
	if name == "" {
		name = DefaultName
	}
	return &token.Document{Name: name, Root: root}
}
