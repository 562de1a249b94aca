package main

import (
	"log/slog"
	"os"

	"notes-app/config"
	"notes-app/database"
	"notes-app/services"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	dbPath  string
	verbose bool
}

// newRootCmd builds the command tree. Every call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "notesctl",
		Short: "Manage the notes store from the command line",
		Long: `notesctl reads and writes the SQLite notes store directly.
It is meant for maintenance; the HTTP service does not need to be running.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
	}

	config.Load()

	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", config.AppConfig.DBPath, "Path to the notes database file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
		newEditCmd(opts),
		newRemoveCmd(opts),
		newMigrateCmd(opts),
	)

	return rootCmd
}

// openService opens the store at the current schema version
func openService(opts *rootOptions) (*services.NoteService, func(), error) {
	db, err := database.New(opts.dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}

	service := services.NewNoteService(database.NewRepository(db), nil, nil)
	return service, func() { db.Close() }, nil
}
