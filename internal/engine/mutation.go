package engine

import (
	"math"

	"agentarena/internal/domain"
)

var rsiLimitSteps = []int{-2, -1, 1, 2}

const (
	rsiLimitMin = 10
	rsiLimitMax = 90
)

// Mutate derives a child DNA from a parent via bounded random
// perturbation: rsi_limit shifts by a small discrete step clamped to
// [10, 90], stop_loss_pct scales by a factor in [0.9, 1.1] rounded to
// three decimals. All other fields copy unchanged.
func (e *Engine) Mutate(parent domain.DNA) domain.DNA {
	child := parent

	step := rsiLimitSteps[e.rng.Intn(len(rsiLimitSteps))]
	child.RSILimit = clampInt(parent.RSILimit+step, rsiLimitMin, rsiLimitMax)

	factor := 0.9 + e.rng.Float64()*0.2
	child.StopLossPct = math.Round(parent.StopLossPct*factor*1000) / 1000

	return child
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
