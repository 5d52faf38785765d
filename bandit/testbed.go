package bandit

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestbedConfig contains the parameters to construct a testbed
type TestbedConfig struct {
	NumRuns        int     // number of independent bandit instances
	NumActions     int     // number of arms per bandit
	TrueValueMean  float64 // mean of the distribution the true action values are drawn from
	TrueValueStd   float64 // std of the distribution the true action values are drawn from
	RewardNoiseStd float64 // std of the reward noise, shared by all arms
	Seed           uint64  // seed for the testbed's random stream
}

func (c *TestbedConfig) validate() error {
	if c.NumRuns <= 0 {
		return fmt.Errorf("num runs must be positive, got %d", c.NumRuns)
	}
	if c.NumActions <= 0 {
		return fmt.Errorf("num actions must be positive, got %d", c.NumActions)
	}
	if c.RewardNoiseStd < 0 {
		return fmt.Errorf("reward noise std must be nonnegative, got %f", c.RewardNoiseStd)
	}
	return nil
}

// Bandit is one run's stationary k-armed environment. The true action
// values are drawn once at construction and never change afterwards.
type Bandit struct {
	k          int
	trueValues []float64
	bestAction int
	noiseStd   float64
	src        rand.Source
}

func newBandit(k int, trueValues distuv.Normal, noiseStd float64, src rand.Source) *Bandit {
	b := &Bandit{
		k:          k,
		trueValues: make([]float64, k),
		noiseStd:   noiseStd,
		src:        src,
	}
	for i := 0; i < k; i++ {
		b.trueValues[i] = trueValues.Rand()
	}
	// first occurrence wins on ties
	for i, v := range b.trueValues {
		if v > b.trueValues[b.bestAction] {
			b.bestAction = i
		}
	}
	return b
}

// K returns the number of arms
func (b *Bandit) K() int {
	return b.k
}

// BestAction returns the index of the arm with the highest true value,
// fixed for the bandit's lifetime
func (b *Bandit) BestAction() int {
	return b.bestAction
}

// TrueValues returns a copy of the hidden true action values
func (b *Bandit) TrueValues() []float64 {
	out := make([]float64, len(b.trueValues))
	copy(out, b.trueValues)
	return out
}

// Step samples one reward for the chosen arm from
// Normal(trueValues[action], noiseStd). It consumes one draw from the
// testbed's random stream, so call order matters for reproducibility.
func (b *Bandit) Step(action int) (float64, error) {
	if action < 0 || action >= b.k {
		return 0, fmt.Errorf("action %d out of range [0, %d)", action, b.k)
	}
	reward := distuv.Normal{Mu: b.trueValues[action], Sigma: b.noiseStd, Src: b.src}.Rand()
	return reward, nil
}

// Testbed is an ordered collection of independent bandit instances sharing
// the arm count and the true-value distribution, each with its own true
// values. All stochastic draws (true-value generation, reward noise and,
// through the agent, exploration and tie-breaks) consume the testbed's
// single random stream in a fixed order: a given seed reproduces a whole
// experiment, but repeating a training call without reseeding does not.
type Testbed struct {
	Bandits []*Bandit

	config *TestbedConfig
	src    rand.Source
}

// NewTestbed constructs the testbed over a fresh stream seeded from
// config.Seed
func NewTestbed(config *TestbedConfig) (*Testbed, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return newTestbed(config, rand.NewSource(config.Seed)), nil
}

// NewTestbedFromSource constructs the testbed over an externally owned
// random source, ignoring config.Seed
func NewTestbedFromSource(config *TestbedConfig, src rand.Source) (*Testbed, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return newTestbed(config, src), nil
}

func newTestbed(config *TestbedConfig, src rand.Source) *Testbed {
	t := &Testbed{
		Bandits: make([]*Bandit, config.NumRuns),
		config:  config,
		src:     src,
	}
	trueValues := distuv.Normal{Mu: config.TrueValueMean, Sigma: config.TrueValueStd, Src: src}
	for i := 0; i < config.NumRuns; i++ {
		t.Bandits[i] = newBandit(config.NumActions, trueValues, config.RewardNoiseStd, src)
	}
	return t
}

// NumRuns returns the number of bandit instances
func (t *Testbed) NumRuns() int {
	return len(t.Bandits)
}

// NumActions returns the number of arms shared by all instances
func (t *Testbed) NumActions() int {
	return t.config.NumActions
}

// Source exposes the testbed's random stream so that consumers share it
func (t *Testbed) Source() rand.Source {
	return t.src
}
