package agent

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"bandit-rl-test/bandit"
)

// Config contains the parameters of an epsilon-greedy agent, fixed for the
// agent's lifetime. All fields are validated eagerly at construction.
type Config struct {
	// Epsilon is the exploration probability, in [0, 1]
	Epsilon float64
	// MaxSteps is the number of steps per run
	MaxSteps int
	// InitialValue seeds every action-value estimate on reset. Only zero
	// or optimistic positive values are defined, negatives are rejected.
	InitialValue float64
	// UseWeightedAverage selects the constant-step-size update rule
	// instead of sample averages
	UseWeightedAverage bool
	// Alpha is the step size for weighted updates, in (0, 1]
	Alpha float64
	// Source overrides the random stream used for exploration and
	// tie-breaking. Nil shares the testbed's stream, which keeps a whole
	// experiment reproducible from a single seed.
	Source rand.Source
}

func (c *Config) validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %f", c.Epsilon)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive, got %d", c.MaxSteps)
	}
	if c.InitialValue < 0 {
		return fmt.Errorf("unrecognised initial value %f: only zero or optimistic positive initialisation is defined", c.InitialValue)
	}
	if c.UseWeightedAverage && (c.Alpha <= 0 || c.Alpha > 1) {
		return fmt.Errorf("alpha must be in (0, 1], got %f", c.Alpha)
	}
	return nil
}

// EpsilonGreedy estimates action values online and picks actions under an
// explore/exploit trade-off. The learning state is per run: Train resets it
// before every run, so nothing leaks across runs.
type EpsilonGreedy struct {
	config       *Config
	env          *bandit.Testbed
	numActions   int
	qValues      []float64
	actionCounts []int
	rand         *rand.Rand
	src          rand.Source
}

// NewEpsilonGreedy instantiates an agent against the given testbed
func NewEpsilonGreedy(env *bandit.Testbed, config *Config) (*EpsilonGreedy, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	src := config.Source
	if src == nil {
		src = env.Source()
	}
	e := &EpsilonGreedy{
		config:       config,
		env:          env,
		numActions:   env.NumActions(),
		qValues:      make([]float64, env.NumActions()),
		actionCounts: make([]int, env.NumActions()),
		rand:         rand.New(src),
		src:          src,
	}
	e.Reset()
	return e, nil
}

// Reset reinitialises the learning state for a new run: every estimate to
// the configured initial value, every selection count to zero
func (e *EpsilonGreedy) Reset() {
	for a := 0; a < e.numActions; a++ {
		e.qValues[a] = e.config.InitialValue
		e.actionCounts[a] = 0
	}
}

// EstimatedValues returns a copy of the current action-value estimates
func (e *EpsilonGreedy) EstimatedValues() []float64 {
	out := make([]float64, len(e.qValues))
	copy(out, e.qValues)
	return out
}

// ActionCounts returns a copy of the per-action selection counts for the
// current run
func (e *EpsilonGreedy) ActionCounts() []int {
	out := make([]int, len(e.actionCounts))
	copy(out, e.actionCounts)
	return out
}

// Act selects the next action: with probability epsilon a uniformly random
// arm, otherwise the arm with the highest estimate
func (e *EpsilonGreedy) Act() int {
	if e.rand.Float64() < e.config.Epsilon {
		return e.rand.Intn(e.numActions)
	}
	return e.greedyAction()
}

// greedyAction picks uniformly among the arms tied for the highest
// estimate. Breaking ties by lowest index would bias early behaviour
// before the estimates differentiate.
func (e *EpsilonGreedy) greedyAction() int {
	maxVal := e.qValues[0]
	for _, v := range e.qValues[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	tied := make([]int, 0, e.numActions)
	for a, v := range e.qValues {
		if v == maxVal {
			tied = append(tied, a)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	weights := make([]float64, len(tied))
	for i := range weights {
		weights[i] = 1
	}
	i, ok := sampleuv.NewWeighted(weights, e.src).Take()
	if !ok {
		return tied[0]
	}
	return tied[i]
}

func (e *EpsilonGreedy) checkAction(action int) error {
	if action < 0 || action >= e.numActions {
		return fmt.Errorf("action %d out of range [0, %d)", action, e.numActions)
	}
	return nil
}

// SimpleUpdate applies the sample-average rule: the estimate converges to
// the empirical mean of the rewards observed for the action, every
// observation weighted equally.
func (e *EpsilonGreedy) SimpleUpdate(action int, reward float64) error {
	if err := e.checkAction(action); err != nil {
		return err
	}
	e.actionCounts[action]++
	stepSize := 1.0 / float64(e.actionCounts[action])
	e.qValues[action] += stepSize * (reward - e.qValues[action])
	return nil
}

// WeightedUpdate applies the constant-step-size rule, an exponential
// recency-weighted average. The step size never shrinks, which lets an
// optimistic initial bias wash out quickly.
func (e *EpsilonGreedy) WeightedUpdate(action int, reward float64) error {
	if err := e.checkAction(action); err != nil {
		return err
	}
	e.actionCounts[action]++
	e.qValues[action] += e.config.Alpha * (reward - e.qValues[action])
	return nil
}

// Train runs the agent against every bandit in the testbed, in testbed
// order: reset the state, then for MaxSteps steps select an action, query
// the bandit for a reward, apply the configured update rule and record the
// reward and whether the action was the run's best. Runs are processed
// strictly sequentially because they share one random stream.
//
// Repeated calls on the same testbed give different results since the
// stream advances with every draw.
func (e *EpsilonGreedy) Train() (*RewardTable, *OptimalTable, error) {
	rewards := NewRewardTable(e.config.MaxSteps, e.env.NumRuns())
	optimal := NewOptimalTable(e.config.MaxSteps, e.env.NumRuns())

	for run, b := range e.env.Bandits {
		e.Reset()
		for step := 0; step < e.config.MaxSteps; step++ {
			action := e.Act()
			reward, err := b.Step(action)
			if err != nil {
				return nil, nil, fmt.Errorf("run %d, step %d: %w", run, step, err)
			}
			if e.config.UseWeightedAverage {
				err = e.WeightedUpdate(action, reward)
			} else {
				err = e.SimpleUpdate(action, reward)
			}
			if err != nil {
				return nil, nil, fmt.Errorf("run %d, step %d: %w", run, step, err)
			}
			rewards.Set(step, run, reward)
			optimal.Set(step, run, action == b.BestAction())
		}
	}
	return rewards, optimal, nil
}
