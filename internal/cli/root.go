// Package cli implements the resonance CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/coglab/resonance/internal/journal"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "resonance",
	Short: "Drift pipeline over vector state sequences",
	Long:  "Computes lagged similarity scores over state sequences, derives a drift-value series, and projects it onto a 3D curve. Runs and intent records can be journaled to SQLite.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Journal database path (empty: journaling disabled)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
}

// openJournal opens the journal store, or returns nil when journaling is
// disabled.
func openJournal() (*journal.Store, error) {
	if dbPath == "" {
		return nil, nil
	}
	return journal.NewStore(dbPath)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
