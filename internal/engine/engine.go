package engine

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

type Config struct {
	// InitialCapital is the cash every spawned child starts with. Children
	// do not inherit the parent's balance - re-leveling keeps performance
	// comparable across generations.
	InitialCapital decimal.Decimal

	// MinPopulation is the floor below which evolution refuses to run.
	MinPopulation int

	// SelectionSize is how many agents are culled from the bottom and
	// bred from the top of each ranking.
	SelectionSize int

	// NumWorkers bounds concurrent agent evaluation within one cycle.
	NumWorkers int
}

func DefaultConfig() Config {
	return Config{
		InitialCapital: decimal.NewFromInt(100000),
		MinPopulation:  10,
		SelectionSize:  4,
		NumWorkers:     10,
	}
}

// Engine runs market cycles and evolutionary passes over a roster of
// agents. The random source drives mutation only; inject a seeded one
// to make evolutionary runs reproducible.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

func New(cfg Config, rng *rand.Rand) *Engine {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = DefaultConfig().NumWorkers
	}
	return &Engine{cfg: cfg, rng: rng}
}
