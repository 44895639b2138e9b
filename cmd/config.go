package cmd

import (
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutputFormat(output); err != nil {
			return err
		}

		s, err := currentSettings()
		if err != nil {
			return err
		}

		return renderKeyValues(cmd.OutOrStdout(), output,
			[]string{"database_url", "debug", "max_connections"},
			map[string]any{
				"database_url":    s.DatabaseURL,
				"debug":           s.Debug,
				"max_connections": s.MaxConnections,
			})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
