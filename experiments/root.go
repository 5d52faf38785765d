package experiments

import "github.com/spf13/cobra"

var (
	runs     int
	steps    int
	actions  int
	saveFile string
	seed     uint64
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "bandit-rl-test",
		Short: "k-armed bandit testbed experiments",
	}
	rootCommand.PersistentFlags().IntVarP(&runs, "runs", "r", 2000, "Number of independent bandit runs in the testbed")
	rootCommand.PersistentFlags().IntVar(&steps, "steps", 1000, "Number of steps per run")
	rootCommand.PersistentFlags().IntVarP(&actions, "actions", "k", 10, "Number of arms per bandit")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for the testbed's random stream")
	// adding the subcommands here
	rootCommand.AddCommand(EpsilonSweepCommand())
	rootCommand.AddCommand(OptimisticInitCommand())
	return rootCommand
}
