package agent

// RewardTable holds the per-step rewards of a training pass, one column
// per run in testbed order, one row per step.
type RewardTable struct {
	steps int
	cols  [][]float64
}

// NewRewardTable creates an empty steps x runs reward table
func NewRewardTable(steps, runs int) *RewardTable {
	t := &RewardTable{
		steps: steps,
		cols:  make([][]float64, runs),
	}
	for i := range t.cols {
		t.cols[i] = make([]float64, steps)
	}
	return t
}

// Dims returns the number of steps and runs
func (t *RewardTable) Dims() (steps, runs int) {
	return t.steps, len(t.cols)
}

// At returns the reward recorded at the given step of the given run
func (t *RewardTable) At(step, run int) float64 {
	return t.cols[run][step]
}

// Set records a reward
func (t *RewardTable) Set(step, run int, reward float64) {
	t.cols[run][step] = reward
}

// Column returns a copy of one run's reward trajectory
func (t *RewardTable) Column(run int) []float64 {
	out := make([]float64, t.steps)
	copy(out, t.cols[run])
	return out
}

// Row gathers the rewards of one step across all runs
func (t *RewardTable) Row(step int) []float64 {
	out := make([]float64, len(t.cols))
	for run, col := range t.cols {
		out[run] = col[step]
	}
	return out
}

// OptimalTable holds the per-step optimal-action indicators of a training
// pass, one column per run in testbed order. An entry is true when the
// step's action matched the run's best action.
type OptimalTable struct {
	steps int
	cols  [][]bool
}

// NewOptimalTable creates an empty steps x runs indicator table
func NewOptimalTable(steps, runs int) *OptimalTable {
	t := &OptimalTable{
		steps: steps,
		cols:  make([][]bool, runs),
	}
	for i := range t.cols {
		t.cols[i] = make([]bool, steps)
	}
	return t
}

// Dims returns the number of steps and runs
func (t *OptimalTable) Dims() (steps, runs int) {
	return t.steps, len(t.cols)
}

// At reports whether the action at the given step of the given run was
// the run's best
func (t *OptimalTable) At(step, run int) bool {
	return t.cols[run][step]
}

// Set records an indicator
func (t *OptimalTable) Set(step, run int, optimal bool) {
	t.cols[run][step] = optimal
}

// Column returns a copy of one run's indicator trajectory
func (t *OptimalTable) Column(run int) []bool {
	out := make([]bool, t.steps)
	copy(out, t.cols[run])
	return out
}

// Row gathers the indicators of one step across all runs
func (t *OptimalTable) Row(step int) []bool {
	out := make([]bool, len(t.cols))
	for run, col := range t.cols {
		out[run] = col[step]
	}
	return out
}
