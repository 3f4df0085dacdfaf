package domain

import (
	"time"

	"github.com/google/uuid"
)

type Strategy string

const (
	Strategy_MeanReversion Strategy = "mean_reversion"
	Strategy_Momentum      Strategy = "momentum"
)

type AgentStatus string

const (
	AgentStatus_Active     AgentStatus = "active"
	AgentStatus_Terminated AgentStatus = "terminated"
)

// DNA is the heritable parameter bundle controlling one agent's strategy
// and risk thresholds. It is immutable for the duration of a cycle; the
// only producer of new DNA values is the mutation operator.
type DNA struct {
	Strategy        Strategy `json:"strategy"`
	RSIPeriod       int      `json:"rsi_period"`
	RSILimit        int      `json:"rsi_limit"`
	StopLossPct     float64  `json:"stop_loss_pct"`
	TakeProfitPct   float64  `json:"take_profit_pct"`
	MaxPositionSize float64  `json:"max_position_size"`
}

func DefaultDNA() DNA {
	return DNA{
		Strategy:        Strategy_MeanReversion,
		RSIPeriod:       14,
		RSILimit:        30,
		StopLossPct:     0.05,
		TakeProfitPct:   0.10,
		MaxPositionSize: 0.1,
	}
}

// WithDefaults fills any zero-valued field with the default, so DNA read
// back from storage (or supplied by an API caller) is always complete.
func (d DNA) WithDefaults() DNA {
	defaults := DefaultDNA()
	if d.Strategy == "" {
		d.Strategy = defaults.Strategy
	}
	if d.RSIPeriod == 0 {
		d.RSIPeriod = defaults.RSIPeriod
	}
	if d.RSILimit == 0 {
		d.RSILimit = defaults.RSILimit
	}
	if d.StopLossPct == 0 {
		d.StopLossPct = defaults.StopLossPct
	}
	if d.TakeProfitPct == 0 {
		d.TakeProfitPct = defaults.TakeProfitPct
	}
	if d.MaxPositionSize == 0 {
		d.MaxPositionSize = defaults.MaxPositionSize
	}
	return d
}

type Agent struct {
	ID         uuid.UUID
	Name       string
	DNA        DNA
	Status     AgentStatus
	Generation int32
	Portfolio  *Portfolio
	ParentID   *uuid.UUID
	CreatedAt  time.Time
}
