package stress

import (
	"fmt"
	"time"
)

const (
	// DefaultOperations is the number of operations of a run if not configured.
	DefaultOperations = 1000
	// DefaultKeyRange is the upper bound of random keys if not configured.
	DefaultKeyRange = 30
)

// Weights are the relative frequencies of operation kinds. A zero Weights
// value selects every kind with equal probability.
type Weights struct {
	Insert    int
	Delete    int
	Search    int
	Query     int // Keys, Values, Min, Max and Root
	SplitJoin int // split at a present key and join the halves again
}

func (w Weights) total() int {
	return w.Insert + w.Delete + w.Search + w.Query + w.SplitJoin
}

// Config configures a Driver.
type Config struct {
	Operations int   // number of operations of a run
	KeyRange   int   // keys are drawn from [1, KeyRange]
	Seed       int64 // seed of the random source; 0 seeds from the clock
	CheckEvery int   // check tree invariants every n operations; 0 checks after each
	Weights    Weights
}

func (cfg Config) normalized() Config {
	if cfg.Operations == 0 {
		cfg.Operations = DefaultOperations
	}
	if cfg.KeyRange == 0 {
		cfg.KeyRange = DefaultKeyRange
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.CheckEvery == 0 {
		cfg.CheckEvery = 1
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = Weights{Insert: 1, Delete: 1, Search: 1, Query: 1, SplitJoin: 1}
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Operations < 0 {
		return fmt.Errorf("%w: negative number of operations", ErrInvalidConfig)
	}
	if cfg.KeyRange < 1 {
		return fmt.Errorf("%w: key range must be positive", ErrInvalidConfig)
	}
	if cfg.CheckEvery < 0 {
		return fmt.Errorf("%w: negative check interval", ErrInvalidConfig)
	}
	w := cfg.Weights
	if w.Insert < 0 || w.Delete < 0 || w.Search < 0 || w.Query < 0 || w.SplitJoin < 0 {
		return fmt.Errorf("%w: negative operation weight", ErrInvalidConfig)
	}
	return nil
}
