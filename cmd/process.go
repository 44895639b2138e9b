package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/withobsrvr/recordctl/internal/config"
	"github.com/withobsrvr/recordctl/internal/processor"
	"github.com/withobsrvr/recordctl/internal/record"
	"github.com/withobsrvr/recordctl/internal/storage"
	"github.com/withobsrvr/recordctl/internal/utils/logger"
	"go.uber.org/zap"
)

var (
	processFile string
	persist     bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process [inputs...]",
	Short: "Process inputs into records",
	Long: `Run every input through a single processor and print the resulting records.
Record IDs start at 0 and increase by one per input.`,
	Example: `  # Process inline inputs
  recordctl process "test content" "more content"

  # Process one input per line from a file, or stdin with -
  recordctl process -f inputs.txt
  cat inputs.txt | recordctl process -f -

  # Keep the records in a BoltDB file
  recordctl process --persist --database-url bolt://records.db "test content"`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processFile, "file", "f", "", "read inputs one per line from a file (- for stdin)")
	processCmd.Flags().BoolVar(&persist, "persist", false, "store records in the configured database under a new session")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(output); err != nil {
		return err
	}

	inputs, err := readInputs(args, processFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs given")
	}

	p := processor.New()
	records := lo.Map(inputs, func(input string, _ int) record.Record {
		return p.Process(input)
	})
	logger.Debug("Processed inputs", zap.Int("count", p.Len()))

	if persist {
		s, err := currentSettings()
		if err != nil {
			return err
		}
		session, err := persistRecords(cmd.Context(), s, records)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "session: %s\n", session)
	}

	return renderRecords(cmd.OutOrStdout(), output, records)
}

// persistRecords writes records to the store selected by s under a fresh session ID
func persistRecords(ctx context.Context, s *config.Settings, records []record.Record) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	scheme, _, err := s.StoragePath()
	if err != nil {
		return "", err
	}
	if scheme == config.SchemeMemory {
		logger.Warn("Persisting to memory storage, records are discarded on exit")
	}

	store, err := storage.Open(s)
	if err != nil {
		return "", fmt.Errorf("failed to open record store: %w", err)
	}
	defer store.Close()

	session := uuid.NewString()
	for _, rec := range records {
		if err := store.Append(ctx, session, rec); err != nil {
			return "", fmt.Errorf("failed to persist record %d: %w", rec.ID, err)
		}
	}

	logger.Info("Persisted records",
		zap.String("session", session),
		zap.Int("count", len(records)),
		zap.String("database_url", s.DatabaseURL))
	return session, nil
}

// readInputs returns args followed by the lines of file. A file of "-"
// reads from stdin. Blank lines are skipped.
func readInputs(args []string, file string, stdin io.Reader) ([]string, error) {
	inputs := append([]string{}, args...)
	if file == "" {
		return inputs, nil
	}

	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inputs: %w", err)
	}
	return inputs, nil
}
