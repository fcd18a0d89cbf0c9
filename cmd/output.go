package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// printJSON writes v as indented JSON to the command output
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// wantJSON reports whether --output json was requested
func wantJSON() bool {
	return outputFormat == "json"
}

// printHeader writes a table header framed by rules
func printHeader(w io.Writer, width int, format string, columns ...any) {
	fmt.Fprintln(w, strings.Repeat("━", width))
	fmt.Fprintf(w, format, columns...)
	fmt.Fprintln(w, strings.Repeat("━", width))
}

// truncate shortens s to max runes, marking the cut
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
