package engine

import (
	"sort"

	"agentarena/internal/domain"
)

// RunEvolution ranks the active roster by cash and returns the agents to
// terminate and the children to spawn. Below the minimum population it
// returns an empty result - culling a sub-viable population would only
// shrink it further.
//
// Ranking is by cash alone; the market value of open positions is ignored.
// Ties break on agent id so repeated passes over the same roster agree.
func (e *Engine) RunEvolution(roster []domain.Agent) domain.EvolutionResult {
	active := []domain.Agent{}
	for _, agent := range roster {
		if agent.Status == domain.AgentStatus_Active {
			active = append(active, agent)
		}
	}

	if len(active) < e.cfg.MinPopulation {
		return domain.EvolutionResult{}
	}

	sort.Slice(active, func(i, j int) bool {
		cmp := active[i].Portfolio.Cash.Cmp(active[j].Portfolio.Cash)
		if cmp != 0 {
			return cmp > 0
		}
		return active[i].ID.String() < active[j].ID.String()
	})

	k := e.cfg.SelectionSize
	topPerformers := active[:k]
	bottomPerformers := active[len(active)-k:]

	result := domain.EvolutionResult{}
	for _, agent := range bottomPerformers {
		result.TerminatedIDs = append(result.TerminatedIDs, agent.ID)
	}

	childGeneration := int32(0)
	for _, parent := range topPerformers {
		if parent.Generation > childGeneration {
			childGeneration = parent.Generation
		}
	}
	childGeneration++

	for _, parent := range topPerformers {
		result.Spawned = append(result.Spawned, domain.ChildSpec{
			ParentID:   parent.ID,
			DNA:        e.Mutate(parent.DNA),
			Generation: childGeneration,
		})
	}

	return result
}
