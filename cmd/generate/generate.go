/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for smalim.
package generate

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/smalim/config"
	"bennypowers.dev/smalim/formatter"
	"bennypowers.dev/smalim/formatter/css"
	"bennypowers.dev/smalim/formatter/goconst"
	"bennypowers.dev/smalim/fs"
	"bennypowers.dev/smalim/internal/logger"
	"bennypowers.dev/smalim/load"
	"bennypowers.dev/smalim/token"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generate stylesheets and Go constants from token files",
	Long: `Generate resolves token documents and writes one stylesheet and one Go
constants file per document into the output directory. With no arguments,
files come from .config/smalim.{yaml,yml,json}.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("out-dir", "o", "build", "Output directory for generated artifacts")
	Cmd.Flags().String("package", goconst.DefaultPackage, "Package clause for generated Go constants")
	Cmd.Flags().String("selector", string(css.SelectorClass), "Stylesheet rule scope (class, root)")
	Cmd.Flags().Bool("merge", false, "Merge all input files into a single document")
	Cmd.Flags().String("merge-name", load.DefaultName, "Document name for merged output")
	Cmd.Flags().Bool("silent", false, "Suppress progress output")
}

func run(cmd *cobra.Command, args []string) error {
	silent, _ := cmd.Flags().GetBool("silent")
	if silent {
		logger.SetOutput(io.Discard)
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	// Flags beat config, config beats flag defaults. The config file is
	// already decoded (it may carry jsonc comments viper cannot read), so
	// viper layers flags and SMALIM_* environment over those values.
	v := viper.New()
	v.SetEnvPrefix("smalim")
	v.AutomaticEnv()
	v.SetDefault("outDir", cfg.OutDir)
	v.SetDefault("package", cfg.Package)
	v.SetDefault("selector", cfg.Selector)
	v.SetDefault("merge", cfg.Merge)
	v.SetDefault("mergeName", cfg.MergeName)
	for key, flag := range map[string]string{
		"outDir":    "out-dir",
		"package":   "package",
		"selector":  "selector",
		"merge":     "merge",
		"mergeName": "merge-name",
	} {
		if cmd.Flags().Changed(flag) {
			if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
				return err
			}
		}
	}
	cfg.OutDir = v.GetString("outDir")
	cfg.Package = v.GetString("package")
	cfg.Selector = v.GetString("selector")
	cfg.Merge = v.GetBool("merge")
	cfg.MergeName = v.GetString("mergeName")

	_, err := Generate(filesystem, ".", args, cfg)
	return err
}

// artifact is a rendered output file pending write.
type artifact struct {
	path string
	data []byte
}

// Generate runs a full generation pass: load every document, render every
// artifact, then write. Rendering completes for all documents before the
// first write, so a failing document never leaves a partial artifact set
// behind. Returns the paths written.
func Generate(filesystem fs.FileSystem, rootDir string, args []string, cfg *config.Config) ([]string, error) {
	files := args
	names := make(map[string]string)
	if len(files) == 0 {
		expanded, overrides, err := cfg.NamedPaths(filesystem, rootDir)
		if err != nil {
			return nil, fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
		names = overrides
	} else {
		for _, file := range files {
			if name := cfg.NameForFile(file); name != "" {
				names[file] = name
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no token files specified and none found in config")
	}

	documents, err := load.LoadAll(filesystem, files)
	if err != nil {
		return nil, err
	}
	for i, doc := range documents {
		if name := names[files[i]]; name != "" {
			doc.Name = name
		}
	}
	if cfg.Merge {
		documents = []*token.Document{load.Merge(cfg.MergeName, documents)}
	}

	stylesheets := css.NewWithOptions(css.Options{Selector: css.Selector(cfg.Selector)})
	constants := goconst.NewWithOptions(goconst.Options{Package: cfg.Package})

	outDir := cfg.OutDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(rootDir, outDir)
	}

	var artifacts []artifact
	for _, doc := range documents {
		sheet, err := stylesheets.Format(doc)
		if err != nil {
			return nil, fmt.Errorf("rendering stylesheet for %s: %w", doc.Name, err)
		}
		decls, err := constants.Format(doc)
		if err != nil {
			return nil, fmt.Errorf("rendering constants for %s: %w", doc.Name, err)
		}
		artifacts = append(artifacts,
			artifact{filepath.Join(outDir, formatter.SlugifyCSS(doc.Name)+stylesheets.Extension()), sheet},
			artifact{filepath.Join(outDir, formatter.Slugify(doc.Name, "_")+"_tokens"+constants.Extension()), decls},
		)
	}

	if err := filesystem.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := filesystem.WriteFile(a.path, a.data, 0644); err != nil {
			return nil, fmt.Errorf("error writing %s: %w", a.path, err)
		}
		logger.Info("wrote %s", a.path)
		written = append(written, a.path)
	}
	return written, nil
}
