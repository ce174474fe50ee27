package cli

import (
	"encoding/json"
	"fmt"

	"github.com/coglab/resonance/internal/pipeline"
	"github.com/coglab/resonance/internal/synth"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline on seeded synthetic states",
		Run:   runRun,
	}

	cmd.Flags().Int64("seed", 42, "Reproducibility seed for synthetic inputs")
	cmd.Flags().Int("states", 100, "Number of synthetic state vectors")
	cmd.Flags().Int("dim", 8, "State vector dimension")
	cmd.Flags().Int("window", pipeline.DefaultConfig().Window, "Lag between compared states")
	cmd.Flags().Float64("baseline", 1.0, "Drift baseline")
	cmd.Flags().Float64("alpha", 0.5, "Weight on similarity scores")
	cmd.Flags().Float64("beta", 0.3, "Weight on the coherence shift")
	cmd.Flags().Float64("gamma", 0.2, "Weight on the intent-vector mean")

	RootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) {
	seed, _ := cmd.Flags().GetInt64("seed")
	nStates, _ := cmd.Flags().GetInt("states")
	dim, _ := cmd.Flags().GetInt("dim")

	config := pipeline.DefaultConfig()
	config.Window, _ = cmd.Flags().GetInt("window")
	config.Baseline, _ = cmd.Flags().GetFloat64("baseline")
	config.Weights.Alpha, _ = cmd.Flags().GetFloat64("alpha")
	config.Weights.Beta, _ = cmd.Flags().GetFloat64("beta")
	config.Weights.Gamma, _ = cmd.Flags().GetFloat64("gamma")

	source := synth.NewSource(seed)
	states := source.States(nStates, dim)
	shift := source.Shift(nStates)
	intent := source.Intent(dim)

	result, err := pipeline.Run(states, shift, intent, config)
	if err != nil {
		exitErr("run pipeline", err)
	}

	if j, err := openJournal(); err != nil {
		exitErr("open journal", err)
	} else if j != nil {
		defer j.Close()
		if err := j.LogRun(result, config, len(states)); err != nil {
			exitErr("journal run", err)
		}
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("run %s\n", result.RunID)
	fmt.Printf("  states: %d (dim %d), seed %d\n", nStates, dim, seed)
	for _, m := range result.Stages {
		fmt.Printf("  %-8s  len=%-5d min=%.6f max=%.6f (%dµs)\n",
			m.Name, m.OutputLen, m.Min, m.Max, m.ElapsedUs)
	}
}
