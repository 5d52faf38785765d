package experiments

import (
	"github.com/spf13/cobra"

	"bandit-rl-test/agent"
	"bandit-rl-test/analysis"
	"bandit-rl-test/bandit"
)

// OptimisticInit compares a realistic agent (zero initialisation with
// exploration) against an optimistically initialised greedy agent. Both use
// the constant-step-size update so the initial bias washes out.
func OptimisticInit(runs, actions, steps int, initialValue, alpha float64, saveFile string, seed uint64) error {
	env, err := bandit.NewTestbed(&bandit.TestbedConfig{
		NumRuns:        runs,
		NumActions:     actions,
		TrueValueMean:  0,
		TrueValueStd:   1,
		RewardNoiseStd: 1,
		Seed:           seed,
	})
	if err != nil {
		return err
	}

	realistic, err := agent.NewEpsilonGreedy(env, &agent.Config{
		Epsilon:            0.1,
		MaxSteps:           steps,
		InitialValue:       0,
		UseWeightedAverage: true,
		Alpha:              alpha,
	})
	if err != nil {
		return err
	}
	optimistic, err := agent.NewEpsilonGreedy(env, &agent.Config{
		Epsilon:            0,
		MaxSteps:           steps,
		InitialValue:       initialValue,
		UseWeightedAverage: true,
		Alpha:              alpha,
	})
	if err != nil {
		return err
	}

	c := analysis.NewComparison()
	c.AddAnalysis("OptimalAction",
		analysis.OptimalActionPercent(),
		analysis.MultiComparator(
			analysis.LinePlotter("Effect of optimistic initial values", "Steps", "Optimal action %", saveFile, "optimistic_init"),
			analysis.JSONRecorder(saveFile, "optimistic_init"),
		),
	)
	c.AddExperiment(analysis.NewExperiment("realistic-eps-0.1", realistic))
	c.AddExperiment(analysis.NewExperiment("optimistic-eps-0", optimistic))
	return c.Run()
}

func OptimisticInitCommand() *cobra.Command {
	var initialValue float64
	var alpha float64

	cmd := &cobra.Command{
		Use: "optimistic",
		RunE: func(cmd *cobra.Command, args []string) error {
			return OptimisticInit(runs, actions, steps, initialValue, alpha, saveFile, seed)
		},
	}
	cmd.PersistentFlags().Float64Var(&initialValue, "init", 5, "Optimistic initial value for the greedy agent")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.1, "Step size for the weighted updates")
	return cmd
}
