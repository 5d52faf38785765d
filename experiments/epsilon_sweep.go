package experiments

import (
	"fmt"

	"github.com/spf13/cobra"

	"bandit-rl-test/agent"
	"bandit-rl-test/analysis"
	"bandit-rl-test/bandit"
)

// EpsilonSweep compares epsilon-greedy agents with different exploration
// rates on a shared testbed, plotting the mean reward and the optimal
// action percentage per step.
func EpsilonSweep(runs, actions, steps int, epsilons []float64, saveFile string, seed uint64) error {
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

	c := analysis.NewComparison()
	c.AddAnalysis("MeanReward",
		analysis.MeanReward(),
		analysis.MultiComparator(
			analysis.LinePlotter("Average reward over time", "Steps", "Average reward", saveFile, "mean_reward"),
			analysis.JSONRecorder(saveFile, "mean_reward"),
		),
	)
	c.AddAnalysis("OptimalAction",
		analysis.OptimalActionPercent(),
		analysis.MultiComparator(
			analysis.LinePlotter("Optimal action % over time", "Steps", "Optimal action %", saveFile, "optimal_action"),
			analysis.JSONRecorder(saveFile, "optimal_action"),
		),
	)

	for _, epsilon := range epsilons {
		a, err := agent.NewEpsilonGreedy(env, &agent.Config{
			Epsilon:  epsilon,
			MaxSteps: steps,
		})
		if err != nil {
			return err
		}
		c.AddExperiment(analysis.NewExperiment(fmt.Sprintf("eps-%g", epsilon), a))
	}
	return c.Run()
}

func EpsilonSweepCommand() *cobra.Command {
	var epsilons []float64

	cmd := &cobra.Command{
		Use: "epsilon-sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EpsilonSweep(runs, actions, steps, epsilons, saveFile, seed)
		},
	}
	cmd.PersistentFlags().Float64SliceVar(&epsilons, "epsilon", []float64{0, 0.01, 0.1}, "Exploration rates to compare")
	return cmd
}
