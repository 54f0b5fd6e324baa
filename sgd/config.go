// SPDX-License-Identifier: MIT
//
// config.go — hyperparameters and functional options for package sgd.
//
// Contract (mirrors builder/config.go):
//   - Option constructors that receive a structurally meaningless value
//     (a nil callback) panic immediately; numeric preconditions instead
//     accumulate into Config and are surfaced once, together, as ErrConfig
//     from Validate — so a caller seeing one error message sees every
//     violated precondition, not just the first.
package sgd

// Config holds every tunable hyperparameter of the layout engine.
type Config struct {
	IterMax                 uint64
	IterWithMaxLearningRate uint64
	MinTermUpdates          uint64
	Delta                   float64
	Eps                     float64
	EtaMax                  float64
	Theta                   float64
	Space                   uint64
	NThreads                uint64
	Progress                bool
	Snapshot                bool
	SampleFromPaths         bool
	SampleFromNodes         bool
	Deterministic           bool
	Seed                    []byte

	progressFn ProgressFunc
}

// Option configures a Config via the functional-options pattern.
type Option func(*Config)

// DefaultConfig returns a conservative Config: a single worker thread,
// path-uniform sampling, no snapshotting, silent.
func DefaultConfig() Config {
	return Config{
		IterMax:                 100,
		IterWithMaxLearningRate: 0,
		MinTermUpdates:          1000,
		Delta:                   1e-5,
		Eps:                     0.01,
		EtaMax:                  100,
		Theta:                   0.99,
		Space:                   1000,
		NThreads:                1,
		SampleFromPaths:         true,
		progressFn:              nil,
	}
}

// WithIterMax sets T, the schedule length and outer-loop bound.
func WithIterMax(n uint64) Option { return func(c *Config) { c.IterMax = n } }

// WithIterWithMaxLearningRate sets the schedule's peak index p.
func WithIterWithMaxLearningRate(p uint64) Option {
	return func(c *Config) { c.IterWithMaxLearningRate = p }
}

// WithMinTermUpdates sets the controller tick / deterministic inner-loop size.
func WithMinTermUpdates(n uint64) Option { return func(c *Config) { c.MinTermUpdates = n } }

// WithDelta sets the convergence threshold compared against Delta_max.
func WithDelta(d float64) Option { return func(c *Config) { c.Delta = d } }

// WithEps sets the schedule's floor learning-rate numerator.
func WithEps(e float64) Option { return func(c *Config) { c.Eps = e } }

// WithEtaMax sets the schedule's peak learning rate.
func WithEtaMax(e float64) Option { return func(c *Config) { c.EtaMax = e } }

// WithTheta sets the Zipf exponent.
func WithTheta(t float64) Option { return func(c *Config) { c.Theta = t } }

// WithSpace sets the Zipf domain upper bound.
func WithSpace(s uint64) Option { return func(c *Config) { c.Space = s } }

// WithNThreads sets the worker-goroutine count for RunConcurrent.
func WithNThreads(n uint64) Option { return func(c *Config) { c.NThreads = n } }

// WithProgress enables progress reporting via the configured ProgressFunc
// (DefaultProgressFunc unless WithProgressFunc overrides it).
func WithProgress(on bool) Option { return func(c *Config) { c.Progress = on } }

// WithProgressFunc installs a custom progress hook. Panics on a nil fn: a
// nil callback is a programmer error, not a runtime condition to recover
// from.
func WithProgressFunc(fn ProgressFunc) Option {
	if fn == nil {
		panic("sgd: WithProgressFunc(nil)")
	}
	return func(c *Config) { c.progressFn = fn }
}

// WithSnapshot enables periodic capture of X (and, via FinalizeOrder, the
// order derived from it) during the run.
func WithSnapshot(on bool) Option { return func(c *Config) { c.Snapshot = on } }

// WithSampleFromPaths selects path-uniform sampling.
func WithSampleFromPaths(on bool) Option { return func(c *Config) { c.SampleFromPaths = on } }

// WithSampleFromNodes selects node-uniform sampling, which takes precedence
// over SampleFromPaths when both are set.
func WithSampleFromNodes(on bool) Option { return func(c *Config) { c.SampleFromNodes = on } }

// WithDeterministic routes Layout through RunDeterministic instead of
// RunConcurrent.
func WithDeterministic(on bool) Option { return func(c *Config) { c.Deterministic = on } }

// WithSeed sets the byte sequence seeding RunDeterministic's RNG.
func WithSeed(seed []byte) Option {
	return func(c *Config) { c.Seed = append([]byte(nil), seed...) }
}

// resolve applies opts over DefaultConfig and validates the result.
func resolve(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	if c.progressFn == nil {
		c.progressFn = DefaultProgressFunc
	}

	return c, nil
}

// Validate checks every hyperparameter precondition, collecting all
// violations into a single error.
func (c Config) Validate() error {
	var msgs []string
	if c.IterMax == 0 {
		msgs = append(msgs, "iter_max must be >= 1")
	}
	if c.IterWithMaxLearningRate >= c.IterMax && c.IterMax != 0 {
		msgs = append(msgs, "iter_with_max_learning_rate must be < iter_max")
	}
	if c.Space < 1 {
		msgs = append(msgs, "space must be >= 1")
	}
	if c.Theta <= 0 {
		msgs = append(msgs, "theta must be > 0")
	}
	if c.EtaMax <= 0 {
		msgs = append(msgs, "eta_max must be > 0")
	}
	if c.Eps <= 0 {
		msgs = append(msgs, "eps must be > 0")
	}
	if c.NThreads == 0 {
		msgs = append(msgs, "nthreads must be >= 1")
	}
	if len(msgs) == 0 {
		return nil
	}

	return configErrorf("%v", msgs)
}
