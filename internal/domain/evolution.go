package domain

import "github.com/google/uuid"

// ChildSpec describes one agent to be spawned by an evolutionary pass.
type ChildSpec struct {
	ParentID   uuid.UUID
	DNA        DNA
	Generation int32
}

// EvolutionResult is produced once per evolutionary pass and consumed
// exactly once by the persistence layer. An empty result means the
// population was below the viable minimum.
type EvolutionResult struct {
	TerminatedIDs []uuid.UUID
	Spawned       []ChildSpec
}

func (r EvolutionResult) IsEmpty() bool {
	return len(r.TerminatedIDs) == 0 && len(r.Spawned) == 0
}
