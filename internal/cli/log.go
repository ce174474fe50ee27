package cli

import (
	"encoding/json"
	"fmt"

	"github.com/coglab/resonance/internal/intentlog"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log [trace entries...]",
		Short: "Build an intent record from a reasoning trace",
		Run:   runLog,
	}

	cmd.Flags().Float64P("weight", "w", 1.0, "Intent weight")

	RootCmd.AddCommand(cmd)
}

func runLog(cmd *cobra.Command, args []string) {
	weight, _ := cmd.Flags().GetFloat64("weight")

	rec := intentlog.NewSystemLogger().LogIntent(args, weight)

	if j, err := openJournal(); err != nil {
		exitErr("open journal", err)
	} else if j != nil {
		defer j.Close()
		if err := j.LogIntent(rec); err != nil {
			exitErr("journal intent record", err)
		}
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(rec, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("%s  weight=%.2f  tags=%v\n", rec.Timestamp, rec.IntentWeight, rec.Tags)
	for _, entry := range rec.ReasoningTrace {
		fmt.Printf("  - %s\n", entry)
	}
}
