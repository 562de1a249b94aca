package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add [title] [content]",
		Short: "Add a note",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeDB, err := openService(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			content := ""
			if len(args) > 1 {
				content = args[1]
			}

			note, err := service.Create(cmd.Context(), args[0], content)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note created: %d\n", note.ID)
			return nil
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeDB, err := openService(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			notes, err := service.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(notes)
			}

			for _, note := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", note.ID, note.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			service, closeDB, err := openService(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			note, err := service.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if note.IsNew() {
				return fmt.Errorf("note %d not found", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", note.Title, note.Content)
			return nil
		},
	}
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [id] [title] [content]",
		Short: "Replace the title and content of a note",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			service, closeDB, err := openService(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			outcome, err := service.Update(cmd.Context(), id, args[1], args[2])
			if err != nil {
				return err
			}
			if err := outcome.Err(); err != nil {
				return fmt.Errorf("note %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %d\n", id)
			return nil
		},
	}
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete"},
		Short:   "Delete a note permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			service, closeDB, err := openService(opts)
			if err != nil {
				return err
			}
			defer closeDB()

			outcome, err := service.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := outcome.Err(); err != nil {
				return fmt.Errorf("note %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %d\n", id)
			return nil
		},
	}
}
