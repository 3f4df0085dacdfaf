package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

type Portfolio struct {
	Cash      decimal.Decimal
	Positions map[string]*Position
}

func NewPortfolio(cash decimal.Decimal) *Portfolio {
	return &Portfolio{
		Cash:      cash,
		Positions: map[string]*Position{},
	}
}

// Quantity returns held shares of symbol, 0 when the symbol is not held.
func (p Portfolio) Quantity(symbol string) int64 {
	if pos, ok := p.Positions[symbol]; ok {
		return pos.Quantity
	}
	return 0
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (p Portfolio) DeepCopy() *Portfolio {
	out := &Portfolio{
		Cash:      p.Cash,
		Positions: map[string]*Position{},
	}
	for symbol, position := range p.Positions {
		out.Positions[symbol] = position.DeepCopy()
	}
	return out
}

// TotalValue marks open positions to the given prices and adds cash.
func (p Portfolio) TotalValue(priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	totalValue := p.Cash
	for symbol, position := range p.Positions {
		price, ok := priceMap[symbol]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot compute portfolio total value: price map missing %s", symbol)
		}
		totalValue = totalValue.Add(price.Mul(decimal.NewFromInt(position.Quantity)))
	}
	return totalValue, nil
}

type Position struct {
	Symbol        string
	Quantity      int64
	AvgEntryPrice decimal.Decimal
}

func (p Position) DeepCopy() *Position {
	return &Position{
		Symbol:        p.Symbol,
		Quantity:      p.Quantity,
		AvgEntryPrice: p.AvgEntryPrice,
	}
}
