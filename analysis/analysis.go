package analysis

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"bandit-rl-test/agent"
)

// Generic dataset that contains information after processing the
// trajectory tables
type DataSet interface{}

// Analyzer compresses the trajectory tables of one experiment to a DataSet
type Analyzer func(rewards *agent.RewardTable, optimal *agent.OptimalTable) DataSet

// Comparator differentiates between datasets with associated experiment names
type Comparator func(names []string, datasets []DataSet)

// MeanReward returns an analyzer computing the mean reward per step across
// all runs
func MeanReward() Analyzer {
	return func(rewards *agent.RewardTable, _ *agent.OptimalTable) DataSet {
		steps, _ := rewards.Dims()
		means := make([]float64, steps)
		for step := 0; step < steps; step++ {
			means[step] = stat.Mean(rewards.Row(step), nil)
		}
		return means
	}
}

// OptimalActionPercent returns an analyzer computing, per step, the
// percentage of runs whose action matched the run's best action
func OptimalActionPercent() Analyzer {
	return func(_ *agent.RewardTable, optimal *agent.OptimalTable) DataSet {
		steps, runs := optimal.Dims()
		percents := make([]float64, steps)
		for step := 0; step < steps; step++ {
			count := 0
			for _, opt := range optimal.Row(step) {
				if opt {
					count++
				}
			}
			percents[step] = float64(count) / float64(runs) * 100
		}
		return percents
	}
}

// MultiComparator chains comparators over the same datasets
func MultiComparator(comparators ...Comparator) Comparator {
	return func(names []string, datasets []DataSet) {
		for _, c := range comparators {
			c(names, datasets)
		}
	}
}

// NoopComparator discards the datasets
func NoopComparator() Comparator {
	return func(_ []string, _ []DataSet) {}
}

// Experiment pairs a named agent with the trajectory tables obtained by
// training it
type Experiment struct {
	Name string

	agent   *agent.EpsilonGreedy
	rewards *agent.RewardTable
	optimal *agent.OptimalTable
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, a *agent.EpsilonGreedy) *Experiment {
	return &Experiment{
		Name:  name,
		agent: a,
	}
}

// Run trains the agent over the whole testbed and stores the resulting
// trajectory tables
func (e *Experiment) Run() error {
	fmt.Printf("Running experiment: %s\n", e.Name)
	start := time.Now()
	rewards, optimal, err := e.agent.Train()
	if err != nil {
		return fmt.Errorf("experiment %s: %w", e.Name, err)
	}
	e.rewards = rewards
	e.optimal = optimal
	fmt.Printf("Experiment %s done in %s\n", e.Name, time.Since(start).Round(time.Millisecond))
	return nil
}

// Comparison contains the different experiments to compare. The trajectory
// tables obtained from the experiments are analyzed and the resulting
// datasets compared.
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
}

// NewComparison creates a comparison instance
func NewComparison() *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
	}
}

// AddAnalysis adds an analyzer and comparator to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// AddExperiment adds an experiment to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the experiments in order, analyze each result and hand the datasets
// to the comparators. Experiments sharing a testbed must run sequentially:
// they consume the same random stream.
func (c *Comparison) Run() error {
	datasets := make(map[string][]DataSet)
	for name := range c.analyzers {
		datasets[name] = make([]DataSet, len(c.Experiments))
	}
	names := make([]string, len(c.Experiments))

	for i, e := range c.Experiments {
		if err := e.Run(); err != nil {
			return err
		}
		for name, a := range c.analyzers {
			datasets[name][i] = a(e.rewards, e.optimal)
		}
		names[i] = e.Name
	}
	for name, comp := range c.comparators {
		comp(names, datasets[name])
	}
	return nil
}
