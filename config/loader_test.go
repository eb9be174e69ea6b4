/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"bennypowers.dev/smalim/config"
	"bennypowers.dev/smalim/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/smalim.yaml", `
files:
  - ./tokens.json
outDir: dist
package: design
selector: root
`, 0644)

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.OutDir != "dist" {
		t.Errorf("expected outDir 'dist', got %q", cfg.OutDir)
	}
	if cfg.Package != "design" {
		t.Errorf("expected package 'design', got %q", cfg.Package)
	}
	if cfg.Selector != "root" {
		t.Errorf("expected selector 'root', got %q", cfg.Selector)
	}
	if len(cfg.Files) != 1 || cfg.Files[0].Path != "./tokens.json" {
		t.Errorf("expected file './tokens.json', got %+v", cfg.Files)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/smalim.json", `{
		// token sources
		"files": [
			{"path": "./tokens/base.json", "name": "base"},
			"./tokens/theme.json"
		],
		"merge": true,
		"mergeName": "site",
	}`, 0644)

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if !cfg.Merge {
		t.Error("expected merge true")
	}
	if cfg.MergeName != "site" {
		t.Errorf("expected mergeName 'site', got %q", cfg.MergeName)
	}

	// Object and string file spec forms both decode.
	if len(cfg.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(cfg.Files))
	}
	if cfg.Files[0].Path != "./tokens/base.json" || cfg.Files[0].Name != "base" {
		t.Errorf("expected object spec, got %+v", cfg.Files[0])
	}
	if cfg.Files[1].Path != "./tokens/theme.json" || cfg.Files[1].Name != "" {
		t.Errorf("expected string spec, got %+v", cfg.Files[1])
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := mapfs.New()

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config when not found, got %+v", cfg)
	}
}

func TestLoadOrDefault_NotFound(t *testing.T) {
	mfs := mapfs.New()

	cfg := config.LoadOrDefault(mfs, "/project")
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.OutDir != "build" {
		t.Errorf("expected default outDir 'build', got %q", cfg.OutDir)
	}
	if cfg.Package != "tokens" {
		t.Errorf("expected default package 'tokens', got %q", cfg.Package)
	}
	if cfg.Selector != "class" {
		t.Errorf("expected default selector 'class', got %q", cfg.Selector)
	}
}

func TestLoad_DefaultsSurviveSparseConfig(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/smalim.yml", `
files:
  - ./tokens.json
`, 0644)

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutDir != "build" {
		t.Errorf("expected default outDir to survive, got %q", cfg.OutDir)
	}
}

func TestConfig_NameForFile(t *testing.T) {
	cfg := &config.Config{
		Files: []config.FileSpec{
			{Path: "./tokens/base.json", Name: "base"},
			{Path: "./tokens/theme.json"},
		},
	}

	if got := cfg.NameForFile("./tokens/base.json"); got != "base" {
		t.Errorf("expected 'base', got %q", got)
	}
	if got := cfg.NameForFile("./tokens/theme.json"); got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
	if got := cfg.NameForFile("./other.json"); got != "" {
		t.Errorf("expected empty name for unknown file, got %q", got)
	}
}

func TestConfig_ExpandFiles_Glob(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens/a.tokens.json", `{}`, 0644)
	mfs.AddFile("/project/tokens/b.tokens.json", `{}`, 0644)
	mfs.AddFile("/project/tokens/nested/c.tokens.json", `{}`, 0644)
	mfs.AddFile("/project/readme.md", ``, 0644)

	cfg := &config.Config{
		Files: []config.FileSpec{{Path: "tokens/**/*.tokens.json"}},
	}

	paths, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 matches, got %v", paths)
	}
}

func TestConfig_ExpandFiles_PlainPathPassesThrough(t *testing.T) {
	mfs := mapfs.New()

	cfg := &config.Config{
		Files: []config.FileSpec{{Path: "tokens.json"}},
	}

	paths, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 || paths[0] != "/project/tokens.json" {
		t.Errorf("expected pass-through path, got %v", paths)
	}
}

func TestConfig_FilePaths(t *testing.T) {
	cfg := &config.Config{
		Files: []config.FileSpec{
			{Path: "./tokens.json"},
			{Path: "./other/*.yaml"},
		},
	}

	paths := cfg.FilePaths()
	if len(paths) != 2 || paths[0] != "./tokens.json" || paths[1] != "./other/*.yaml" {
		t.Errorf("unexpected paths %v", paths)
	}
}
