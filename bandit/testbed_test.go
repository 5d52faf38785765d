package bandit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func validConfig() *TestbedConfig {
	return &TestbedConfig{
		NumRuns:        5,
		NumActions:     10,
		TrueValueMean:  0,
		TrueValueStd:   1,
		RewardNoiseStd: 1,
		Seed:           42,
	}
}

func TestTestbedConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*TestbedConfig)
		valid  bool
	}{
		{"valid", func(c *TestbedConfig) {}, true},
		{"zero runs", func(c *TestbedConfig) { c.NumRuns = 0 }, false},
		{"negative runs", func(c *TestbedConfig) { c.NumRuns = -3 }, false},
		{"zero actions", func(c *TestbedConfig) { c.NumActions = 0 }, false},
		{"negative noise", func(c *TestbedConfig) { c.RewardNoiseStd = -0.5 }, false},
		{"zero noise", func(c *TestbedConfig) { c.RewardNoiseStd = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := validConfig()
			tc.modify(config)
			_, err := NewTestbed(config)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestTestbedShape(t *testing.T) {
	env, err := NewTestbed(validConfig())
	require.NoError(t, err)
	assert.Equal(t, 5, env.NumRuns())
	assert.Len(t, env.Bandits, 5)
	for _, b := range env.Bandits {
		assert.Equal(t, 10, b.K())
		assert.Len(t, b.TrueValues(), 10)
	}
}

func TestBestActionIsArgmax(t *testing.T) {
	env, err := NewTestbed(validConfig())
	require.NoError(t, err)
	for _, b := range env.Bandits {
		trueValues := b.TrueValues()
		best := 0
		for i, v := range trueValues {
			if v > trueValues[best] {
				best = i
			}
		}
		assert.Equal(t, best, b.BestAction())
	}
}

func TestStationarity(t *testing.T) {
	env, err := NewTestbed(validConfig())
	require.NoError(t, err)
	b := env.Bandits[0]
	trueValues := b.TrueValues()
	best := b.BestAction()
	for i := 0; i < 100; i++ {
		_, err := b.Step(i % b.K())
		require.NoError(t, err)
	}
	assert.Equal(t, trueValues, b.TrueValues())
	assert.Equal(t, best, b.BestAction())
}

func TestStepOutOfRange(t *testing.T) {
	env, err := NewTestbed(validConfig())
	require.NoError(t, err)
	b := env.Bandits[0]
	for _, action := range []int{-1, b.K(), b.K() + 5} {
		_, err := b.Step(action)
		assert.Error(t, err)
	}
}

func TestStepNoNoise(t *testing.T) {
	config := validConfig()
	config.RewardNoiseStd = 0
	env, err := NewTestbed(config)
	require.NoError(t, err)
	b := env.Bandits[0]
	trueValues := b.TrueValues()
	for a := 0; a < b.K(); a++ {
		reward, err := b.Step(a)
		require.NoError(t, err)
		assert.Equal(t, trueValues[a], reward)
	}
}

func TestStepRewardMean(t *testing.T) {
	env, err := NewTestbed(validConfig())
	require.NoError(t, err)
	b := env.Bandits[0]
	samples := make([]float64, 20000)
	for i := range samples {
		reward, err := b.Step(3)
		require.NoError(t, err)
		samples[i] = reward
	}
	assert.InDelta(t, b.TrueValues()[3], stat.Mean(samples, nil), 0.05)
}

func TestSeedReproducibility(t *testing.T) {
	first, err := NewTestbed(validConfig())
	require.NoError(t, err)
	second, err := NewTestbed(validConfig())
	require.NoError(t, err)
	for i := range first.Bandits {
		assert.Equal(t, first.Bandits[i].TrueValues(), second.Bandits[i].TrueValues())
	}

	different := validConfig()
	different.Seed = 7
	third, err := NewTestbed(different)
	require.NoError(t, err)
	assert.NotEqual(t, first.Bandits[0].TrueValues(), third.Bandits[0].TrueValues())
}
