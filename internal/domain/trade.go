package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeSide string

const (
	TradeSide_Buy  TradeSide = "BUY"
	TradeSide_Sell TradeSide = "SELL"
)

// OrderIntent is the decision engine's output: at most one per
// (agent, symbol) per cycle. TargetFraction is the proportion of cash
// to deploy on a buy, or of held quantity to liquidate on a sell.
type OrderIntent struct {
	Side           TradeSide
	Symbol         string
	TargetFraction float64
}

// TradeRecord is the append-only record of one fill. Never mutated
// after creation.
type TradeRecord struct {
	AgentID   uuid.UUID
	Symbol    string
	Side      TradeSide
	Quantity  int64
	Price     decimal.Decimal
	Timestamp time.Time
}
