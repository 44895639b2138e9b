package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/withobsrvr/recordctl/internal/storage"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history [session]",
	Short: "List persisted sessions or the records of one session",
	Example: `  # List sessions
  recordctl history --database-url bolt://records.db

  # Show the records of one session
  recordctl history --database-url bolt://records.db 3f2c...`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutputFormat(output); err != nil {
			return err
		}

		s, err := currentSettings()
		if err != nil {
			return err
		}

		store, err := storage.OpenReadOnly(s)
		if err != nil {
			return fmt.Errorf("failed to open record store: %w", err)
		}
		defer store.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if len(args) == 0 {
			sessions, err := store.Sessions(ctx)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No persisted sessions.")
				return nil
			}
			if output != formatTable {
				return renderStructured(cmd.OutOrStdout(), output, sessions)
			}
			for _, session := range sessions {
				fmt.Fprintln(cmd.OutOrStdout(), session)
			}
			return nil
		}

		records, err := store.List(ctx, args[0])
		if err != nil {
			if storage.IsNotFound(err) {
				return fmt.Errorf("%w\nHint: run 'recordctl history' to list sessions", err)
			}
			return fmt.Errorf("failed to list records: %w", err)
		}
		return renderRecords(cmd.OutOrStdout(), output, records)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
