// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/tagfilter/internal/platform/config"
	"github.com/taibuivan/tagfilter/internal/platform/migration"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseDriver != config.DriverPostgres {
				return fmt.Errorf("migrate: DATABASE_DRIVER is %q; sqlite applies its schema on open", cfg.DatabaseDriver)
			}

			log := newLogger(os.Stderr, cfg.Debug)
			return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log)
		},
	}
}
