// Package indicators computes the technical indicators the decision
// engine consumes, from plain daily close series. Providers fetch the
// closes; nothing here does I/O.
package indicators

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// SMA returns the simple moving average of the last window closes.
func SMA(closes []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("sma window must be positive, got %d", window)
	}
	if len(closes) < window {
		return 0, fmt.Errorf("sma window %d exceeds series length %d", window, len(closes))
	}
	return stats.Mean(stats.Float64Data(closes[len(closes)-window:]))
}

// RSI returns the Wilder relative strength index of the series at its
// final close. Requires at least period+1 closes.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("rsi period must be positive, got %d", period)
	}
	if len(closes) < period+1 {
		return 0, fmt.Errorf("rsi period %d needs %d closes, got %d", period, period+1, len(closes))
	}

	gains := make([]float64, 0, len(closes)-1)
	losses := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}

	avgGain, err := stats.Mean(stats.Float64Data(gains[:period]))
	if err != nil {
		return 0, err
	}
	avgLoss, err := stats.Mean(stats.Float64Data(losses[:period]))
	if err != nil {
		return 0, err
	}

	// wilder smoothing over the remainder of the series
	for i := period; i < len(gains); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
	}

	if avgLoss == 0 {
		if avgGain == 0 {
			return 50, nil
		}
		return 100, nil
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}
