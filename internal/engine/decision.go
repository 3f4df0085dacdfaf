package engine

import (
	"agentarena/internal/domain"

	"github.com/shopspring/decimal"
)

// Decide evaluates one agent's DNA against one symbol's snapshot entry and
// returns at most one order intent, or nil for no action. It never mutates
// its inputs.
//
// Risk exits are checked before strategy signals and fully pre-empt them:
// a stop-loss or take-profit fires even when the strategy would
// independently signal an entry on the same tick. That ordering is a
// contract, not an optimization.
func Decide(dna domain.DNA, portfolio *domain.Portfolio, snap domain.SymbolSnapshot) *domain.OrderIntent {
	if snap.Symbol == "" || !snap.Price.IsPositive() {
		return nil
	}

	heldQty := portfolio.Quantity(snap.Symbol)

	if heldQty > 0 {
		if intent := checkRiskExit(dna, portfolio.Positions[snap.Symbol], snap.Price); intent != nil {
			return intent
		}
	}

	switch dna.Strategy {
	case domain.Strategy_MeanReversion:
		return decideMeanReversion(dna, heldQty, snap)
	case domain.Strategy_Momentum:
		return decideMomentum(dna, heldQty, snap)
	}

	return nil
}

func checkRiskExit(dna domain.DNA, position *domain.Position, price decimal.Decimal) *domain.OrderIntent {
	if position == nil || !position.AvgEntryPrice.IsPositive() {
		return nil
	}

	pnlPct := price.Sub(position.AvgEntryPrice).Div(position.AvgEntryPrice)

	stopLoss := decimal.NewFromFloat(dna.StopLossPct).Neg()
	takeProfit := decimal.NewFromFloat(dna.TakeProfitPct)

	if pnlPct.LessThanOrEqual(stopLoss) || pnlPct.GreaterThanOrEqual(takeProfit) {
		return &domain.OrderIntent{
			Side:           domain.TradeSide_Sell,
			Symbol:         position.Symbol,
			TargetFraction: 1.0,
		}
	}

	return nil
}

func decideMeanReversion(dna domain.DNA, heldQty int64, snap domain.SymbolSnapshot) *domain.OrderIntent {
	if snap.RSI == nil {
		return nil
	}

	low := float64(dna.RSILimit)
	high := 100 - low

	if *snap.RSI < low && heldQty == 0 {
		return &domain.OrderIntent{
			Side:           domain.TradeSide_Buy,
			Symbol:         snap.Symbol,
			TargetFraction: dna.MaxPositionSize,
		}
	}
	if *snap.RSI > high && heldQty > 0 {
		return &domain.OrderIntent{
			Side:           domain.TradeSide_Sell,
			Symbol:         snap.Symbol,
			TargetFraction: 1.0,
		}
	}

	return nil
}

func decideMomentum(dna domain.DNA, heldQty int64, snap domain.SymbolSnapshot) *domain.OrderIntent {
	if snap.SMAShort == nil || snap.SMALong == nil {
		return nil
	}

	if *snap.SMAShort > *snap.SMALong && heldQty == 0 {
		return &domain.OrderIntent{
			Side:           domain.TradeSide_Buy,
			Symbol:         snap.Symbol,
			TargetFraction: dna.MaxPositionSize,
		}
	}
	if *snap.SMAShort < *snap.SMALong && heldQty > 0 {
		return &domain.OrderIntent{
			Side:           domain.TradeSide_Sell,
			Symbol:         snap.Symbol,
			TargetFraction: 1.0,
		}
	}

	return nil
}
