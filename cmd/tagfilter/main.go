// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command tagfilter serves content listings whose URL path segments are
// taxonomy term identifiers or term slugs.
//
// # Commands
//
//	tagfilter [serve]          run the HTTP server (default)
//	tagfilter migrate          apply PostgreSQL migrations and exit
//	tagfilter resolve VIEW ... resolve contextual arguments for a view
//	tagfilter version          print the version
//
// Configuration comes from the environment; see internal/platform/config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/tagfilter/internal/platform/constants"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Taxonomy-filtered content listings with slug arguments",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(
		serve,
		newMigrateCommand(),
		newResolveCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.AppName, constants.AppVersion)
			},
		},
	)

	return root
}
