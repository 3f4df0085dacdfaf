package engine

import (
	"math/rand"
	"testing"

	"agentarena/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_Mutate(t *testing.T) {
	t.Run("rsi limit never escapes its bounds", func(t *testing.T) {
		e := New(DefaultConfig(), rand.New(rand.NewSource(7)))

		atFloor := domain.DefaultDNA()
		atFloor.RSILimit = 10
		atCeiling := domain.DefaultDNA()
		atCeiling.RSILimit = 90

		for i := 0; i < 10000; i++ {
			require.GreaterOrEqual(t, e.Mutate(atFloor).RSILimit, 10)
			require.LessOrEqual(t, e.Mutate(atCeiling).RSILimit, 90)
		}
	})

	t.Run("rsi limit moves by a small discrete step", func(t *testing.T) {
		e := New(DefaultConfig(), rand.New(rand.NewSource(7)))
		parent := domain.DefaultDNA()

		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			child := e.Mutate(parent)
			diff := child.RSILimit - parent.RSILimit
			require.Contains(t, []int{-2, -1, 1, 2}, diff)
			seen[diff] = true
		}
		// with 1000 draws every step should appear
		require.Len(t, seen, 4)
	})

	t.Run("stop loss scales within 10 percent and rounds to 3 decimals", func(t *testing.T) {
		e := New(DefaultConfig(), rand.New(rand.NewSource(7)))
		parent := domain.DefaultDNA()

		for i := 0; i < 1000; i++ {
			child := e.Mutate(parent)
			require.GreaterOrEqual(t, child.StopLossPct, parent.StopLossPct*0.9-0.0005)
			require.LessOrEqual(t, child.StopLossPct, parent.StopLossPct*1.1+0.0005)
			require.Positive(t, child.StopLossPct)

			rounded := float64(int64(child.StopLossPct*1000+0.5)) / 1000
			require.InDelta(t, rounded, child.StopLossPct, 1e-9)
		}
	})

	t.Run("all other fields copy unchanged", func(t *testing.T) {
		e := New(DefaultConfig(), rand.New(rand.NewSource(7)))
		parent := domain.DNA{
			Strategy:        domain.Strategy_Momentum,
			RSIPeriod:       17,
			RSILimit:        25,
			StopLossPct:     0.04,
			TakeProfitPct:   0.12,
			MaxPositionSize: 0.15,
		}

		child := e.Mutate(parent)

		// normalize the two mutated fields, everything else must match
		child.RSILimit = parent.RSILimit
		child.StopLossPct = parent.StopLossPct
		require.Empty(t, cmp.Diff(parent, child))
	})

	t.Run("same seed produces the same lineage", func(t *testing.T) {
		a := New(DefaultConfig(), rand.New(rand.NewSource(99)))
		b := New(DefaultConfig(), rand.New(rand.NewSource(99)))
		parent := domain.DefaultDNA()

		for i := 0; i < 100; i++ {
			require.Equal(t, a.Mutate(parent), b.Mutate(parent))
		}
	})
}
