package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/withobsrvr/recordctl/internal/record"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// checkOutputFormat rejects formats the render functions cannot produce
func checkOutputFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}

// renderStructured writes v as JSON or YAML
func renderStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}

// renderRecords writes records in the requested format
func renderRecords(w io.Writer, format string, records []record.Record) error {
	if format != formatTable {
		return renderStructured(w, format, records)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tCONTENT")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%v\n", rec.ID, formatStatus(rec.Status), rec.Content)
	}
	return tw.Flush()
}

// renderKeyValues writes pairs as a two column table or as a structured document
func renderKeyValues(w io.Writer, format string, keys []string, values map[string]any) error {
	if format != formatTable {
		return renderStructured(w, format, values)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", k, values[k])
	}
	return tw.Flush()
}

func formatStatus(status string) string {
	if status == record.StatusProcessed {
		return color.GreenString(status)
	}
	return color.YellowString(status)
}
