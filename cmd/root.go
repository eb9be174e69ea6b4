/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for smalim.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/smalim/cmd/generate"
	"bennypowers.dev/smalim/cmd/list"
	"bennypowers.dev/smalim/cmd/validate"
	"bennypowers.dev/smalim/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "smalim",
	Short: "Resolve design token expressions and generate code",
	Long:  `smalim reads design token documents, resolves their reference and arithmetic expressions, and generates stylesheets and typed constants from them.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
