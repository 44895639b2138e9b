package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/withobsrvr/recordctl/internal/calc"
)

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:     "sum [numbers...]",
	Short:   "Print the sum of the given numbers",
	Example: `  recordctl sum 1 2 3 4 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutputFormat(output); err != nil {
			return err
		}

		numbers, err := calc.ParseNumbers(args)
		if err != nil {
			return err
		}

		total, err := calc.SumFinite(numbers)
		if err != nil {
			return err
		}
		if output == formatTable {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(total, 'f', -1, 64))
			return nil
		}
		return renderStructured(cmd.OutOrStdout(), output, map[string]any{"sum": total})
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)
}
