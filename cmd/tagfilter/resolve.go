// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/tagfilter/internal/platform/config"
	"github.com/taibuivan/tagfilter/internal/views"
	"github.com/taibuivan/tagfilter/pkg/pagination"
	"github.com/taibuivan/tagfilter/pkg/slice"
)

func newResolveCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "resolve VIEW [ARG...]",
		Short: "Resolve contextual arguments for a view and print the term filters",
		Example: `  tagfilter resolve tagged bunny-wabbit
  tagfilter resolve by-term carrots news`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd.OutOrStdout(), args[0], args[1:], page)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page of the listing to count")
	return cmd
}

func runResolve(ctx context.Context, out io.Writer, viewName string, args []string, page int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout stays a clean table
	log := newLogger(os.Stderr, cfg.Debug)

	a, err := openApp(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer a.Close()

	catalog, err := a.loadViews()
	if err != nil {
		return err
	}

	definition, err := catalog.Get(viewName)
	if err != nil {
		return fmt.Errorf("view %q: %w", viewName, err)
	}

	result, err := a.newExecutor(nil, nil).Execute(ctx, definition, args, pagination.Params{Page: page, Limit: definition.Limit})
	if err != nil {
		return fmt.Errorf("view %q: %w", viewName, err)
	}

	return printResolution(out, result)
}

func printResolution(out io.Writer, result *views.Result) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(writer, "VIEW\t%s\n", result.View)
	fmt.Fprintf(writer, "TITLE\t%s\n", result.Title)
	fmt.Fprintf(writer, "ITEMS\t%d of %d\n\n", len(result.Items), result.Meta.Total)

	fmt.Fprintln(writer, "POSITION\tARGUMENT\tPLUGIN\tRAW\tTERMS\tTITLE")
	for i, arg := range result.Arguments {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, arg.ID, arg.Plugin, arg.Raw, formatTerms(arg), arg.Title)
	}

	return writer.Flush()
}

func formatTerms(arg views.ArgumentResult) string {
	if arg.Exception {
		return "(all)"
	}
	if arg.TermIDs == nil {
		return "-"
	}

	return strings.Join(slice.Map(arg.TermIDs, strconv.Itoa), ",")
}
