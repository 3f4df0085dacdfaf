package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"agentarena/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func rosterWithCash(cash ...int64) []domain.Agent {
	roster := []domain.Agent{}
	for i, c := range cash {
		roster = append(roster, domain.Agent{
			ID:         uuid.New(),
			Name:       fmt.Sprintf("agent-%d", i),
			DNA:        domain.DefaultDNA(),
			Status:     domain.AgentStatus_Active,
			Generation: 1,
			Portfolio:  domain.NewPortfolio(decimal.NewFromInt(c)),
		})
	}
	return roster
}

func Test_RunEvolution(t *testing.T) {
	t.Run("below minimum population returns empty result", func(t *testing.T) {
		e := newTestEngine()
		roster := rosterWithCash(1, 2, 3, 4, 5, 6, 7, 8, 9)

		result := e.RunEvolution(roster)

		require.True(t, result.IsEmpty())
	})

	t.Run("terminated agents do not count toward the minimum", func(t *testing.T) {
		e := newTestEngine()
		roster := rosterWithCash(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
		roster[0].Status = domain.AgentStatus_Terminated

		result := e.RunEvolution(roster)

		require.True(t, result.IsEmpty())
	})

	t.Run("culls bottom four and breeds top four", func(t *testing.T) {
		e := newTestEngine()
		roster := rosterWithCash(
			110000, 108000, 106000, 104000, // top four
			102000, 101000, // untouched middle
			99000, 98000, 97000, 96000, // bottom four
		)

		result := e.RunEvolution(roster)

		require.Len(t, result.TerminatedIDs, 4)
		require.Len(t, result.Spawned, 4)

		terminated := map[uuid.UUID]bool{}
		for _, id := range result.TerminatedIDs {
			terminated[id] = true
		}
		for _, agent := range roster[6:] {
			require.True(t, terminated[agent.ID], "expected %s to be culled", agent.Name)
		}

		parents := map[uuid.UUID]bool{}
		for _, child := range result.Spawned {
			parents[child.ParentID] = true
		}
		for _, agent := range roster[:4] {
			require.True(t, parents[agent.ID], "expected %s to breed", agent.Name)
		}
		for _, agent := range roster[4:6] {
			require.NotContains(t, terminated, agent.ID)
			require.NotContains(t, parents, agent.ID)
		}
	})

	t.Run("child generation is max parent generation plus one", func(t *testing.T) {
		e := newTestEngine()
		roster := rosterWithCash(110000, 108000, 106000, 104000, 102000, 101000, 99000, 98000, 97000, 96000)
		roster[1].Generation = 5

		result := e.RunEvolution(roster)

		for _, child := range result.Spawned {
			require.Equal(t, int32(6), child.Generation)
		}
	})

	t.Run("equal-cash rosters rank deterministically by id", func(t *testing.T) {
		roster := rosterWithCash(100000, 100000, 100000, 100000, 100000,
			100000, 100000, 100000, 100000, 100000)

		a := New(DefaultConfig(), rand.New(rand.NewSource(1)))
		b := New(DefaultConfig(), rand.New(rand.NewSource(1)))

		first := a.RunEvolution(roster)
		second := b.RunEvolution(roster)

		require.Equal(t, first.TerminatedIDs, second.TerminatedIDs)
		require.Equal(t, len(first.Spawned), len(second.Spawned))
		for i := range first.Spawned {
			require.Equal(t, first.Spawned[i].ParentID, second.Spawned[i].ParentID)
		}
	})
}
