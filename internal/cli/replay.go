package cli

import (
	"fmt"
	"os"

	"github.com/coglab/resonance/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a recorded fixture and verify its drift values",
		Run:   runReplay,
	}

	cmd.Flags().String("fixture", "", "Path to fixture JSON (required)")
	cmd.MarkFlagRequired("fixture")

	RootCmd.AddCommand(cmd)
}

func runReplay(cmd *cobra.Command, args []string) {
	path, _ := cmd.Flags().GetString("fixture")

	f, err := pipeline.LoadFixture(path)
	if err != nil {
		exitErr("load fixture", err)
	}

	outcome, err := pipeline.ReplayFixture(f)
	if err != nil {
		exitErr("replay", err)
	}

	if outcome.Passed {
		fmt.Printf("PASS %q: %d drift values matched within %g\n",
			f.Description, len(f.ExpectedDrift), pipeline.DriftTolerance)
		return
	}

	fmt.Printf("FAIL %q:\n", f.Description)
	for _, failure := range outcome.Failures {
		fmt.Printf("  %s\n", failure)
	}
	os.Exit(1)
}
