package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled runs and intent records",
		Run:   runHistory,
	}

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	j, err := openJournal()
	if err != nil {
		exitErr("open journal", err)
	}
	if j == nil {
		exitErr("history", fmt.Errorf("--db is required"))
	}
	defer j.Close()

	runs, err := j.ListRuns()
	if err != nil {
		exitErr("list runs", err)
	}
	records, err := j.ListIntents()
	if err != nil {
		exitErr("list intent records", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(map[string]any{
			"runs":    runs,
			"intents": records,
		}, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("runs (%d):\n", len(runs))
	for _, r := range runs {
		fmt.Printf("  %s  states=%d scores=%d window=%d  %s\n",
			r.RunID, r.StateCount, r.ScoreCount, r.Config.Window,
			r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("intent records (%d):\n", len(records))
	for _, rec := range records {
		fmt.Printf("  %s  %s  weight=%.2f  %d trace entries\n",
			rec.ID, rec.Timestamp, rec.IntentWeight, len(rec.ReasoningTrace))
	}
}
