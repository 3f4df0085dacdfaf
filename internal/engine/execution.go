package engine

import (
	"errors"
	"fmt"
	"time"

	"agentarena/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrSolvencyBreach indicates the execution model computed a negative cash
// balance or position quantity. That is a defect in this package, never an
// expected runtime condition, so callers must discard the batch and fail
// loudly rather than persist the state.
var ErrSolvencyBreach = errors.New("solvency invariant breached")

// Apply executes one order intent against the portfolio in place. It
// returns the resulting trade record, or (nil, nil) when the intent
// cannot fill - insufficient capital on a buy, nothing held on a sell.
// An order either fully applies or not at all.
//
// Quantities are whole shares, floored from the targeted value. On a buy
// into an existing position the average entry price is overwritten with
// the fill price rather than volume-weighted.
func Apply(portfolio *domain.Portfolio, agentID uuid.UUID, intent domain.OrderIntent, price decimal.Decimal, ts time.Time) (*domain.TradeRecord, error) {
	if !price.IsPositive() {
		return nil, nil
	}

	switch intent.Side {
	case domain.TradeSide_Buy:
		return applyBuy(portfolio, agentID, intent, price, ts)
	case domain.TradeSide_Sell:
		return applySell(portfolio, agentID, intent, price, ts)
	}

	return nil, fmt.Errorf("unknown order side %q", intent.Side)
}

func applyBuy(portfolio *domain.Portfolio, agentID uuid.UUID, intent domain.OrderIntent, price decimal.Decimal, ts time.Time) (*domain.TradeRecord, error) {
	targetValue := portfolio.Cash.Mul(decimal.NewFromFloat(intent.TargetFraction))
	quantity := targetValue.Div(price).IntPart()
	if quantity <= 0 {
		return nil, nil
	}

	cost := price.Mul(decimal.NewFromInt(quantity))
	if portfolio.Cash.LessThan(cost) {
		// should not happen given the floor above; guard anyway
		return nil, nil
	}

	portfolio.Cash = portfolio.Cash.Sub(cost)
	if portfolio.Cash.IsNegative() {
		return nil, fmt.Errorf("%w: cash %s after buying %d %s", ErrSolvencyBreach, portfolio.Cash, quantity, intent.Symbol)
	}

	position, ok := portfolio.Positions[intent.Symbol]
	if !ok {
		position = &domain.Position{Symbol: intent.Symbol}
		portfolio.Positions[intent.Symbol] = position
	}
	position.Quantity += quantity
	position.AvgEntryPrice = price

	return &domain.TradeRecord{
		AgentID:   agentID,
		Symbol:    intent.Symbol,
		Side:      domain.TradeSide_Buy,
		Quantity:  quantity,
		Price:     price,
		Timestamp: ts,
	}, nil
}

func applySell(portfolio *domain.Portfolio, agentID uuid.UUID, intent domain.OrderIntent, price decimal.Decimal, ts time.Time) (*domain.TradeRecord, error) {
	heldQty := portfolio.Quantity(intent.Symbol)
	qtyToSell := decimal.NewFromInt(heldQty).Mul(decimal.NewFromFloat(intent.TargetFraction)).IntPart()
	if qtyToSell <= 0 {
		return nil, nil
	}
	if qtyToSell > heldQty {
		return nil, fmt.Errorf("%w: selling %d of %d held %s", ErrSolvencyBreach, qtyToSell, heldQty, intent.Symbol)
	}

	portfolio.Cash = portfolio.Cash.Add(price.Mul(decimal.NewFromInt(qtyToSell)))

	position := portfolio.Positions[intent.Symbol]
	position.Quantity -= qtyToSell
	if position.Quantity == 0 {
		// a symbol with zero quantity must not linger in the position set
		delete(portfolio.Positions, intent.Symbol)
	}

	return &domain.TradeRecord{
		AgentID:   agentID,
		Symbol:    intent.Symbol,
		Side:      domain.TradeSide_Sell,
		Quantity:  qtyToSell,
		Price:     price,
		Timestamp: ts,
	}, nil
}
