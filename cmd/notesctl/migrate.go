package main

import (
	"fmt"

	"notes-app/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var target int
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database to a schema version",
		Long: `migrate stamps the database with the target schema version.
Upgrading an existing database drops and recreates the notes table, so every
note is lost. Pass --yes to confirm an upgrade.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(opts.dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			current, err := db.Version()
			if err != nil {
				return err
			}

			if current > 0 && target > current && !confirmed {
				return fmt.Errorf("upgrading from version %d to %d deletes every note; rerun with --yes", current, target)
			}

			if err := db.MigrateTo(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", target)
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "to", database.SchemaVersion, "Target schema version")
	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm a destructive upgrade")
	return cmd
}
