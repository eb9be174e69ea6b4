/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for smalim.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Config represents the smalim project configuration.
type Config struct {
	// Files specifies token files to load (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// OutDir is the directory generated artifacts are written to.
	OutDir string `yaml:"outDir" json:"outDir"`

	// Package is the package clause for generated Go constants.
	Package string `yaml:"package" json:"package"`

	// Selector chooses the stylesheet rule scope ("class" or "root").
	Selector string `yaml:"selector" json:"selector"`

	// Merge combines all input files into a single document.
	Merge bool `yaml:"merge" json:"merge"`

	// MergeName names the merged document.
	MergeName string `yaml:"mergeName" json:"mergeName"`
}

// FileSpec represents a token file specification. It can be specified as a
// simple string path or as an object with a document name override.
type FileSpec struct {
	// Path is the file path (globs supported).
	Path string `yaml:"path" json:"path"`

	// Name overrides the document name derived from the file name.
	Name string `yaml:"name" json:"name"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		OutDir:    "build",
		Package:   "tokens",
		Selector:  "class",
		MergeName: "ambient",
	}
}

// NameForFile returns the document name override configured for a file
// path, or empty when none applies.
func (c *Config) NameForFile(path string) string {
	for _, spec := range c.Files {
		if spec.Path == path && spec.Name != "" {
			return spec.Name
		}
	}
	return ""
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
