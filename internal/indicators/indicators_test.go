package indicators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SMA(t *testing.T) {
	t.Run("averages the trailing window", func(t *testing.T) {
		sma, err := SMA([]float64{1, 2, 3, 4, 5, 6}, 3)
		require.NoError(t, err)
		require.InDelta(t, 5.0, sma, 1e-9)
	})

	t.Run("window equal to series length uses everything", func(t *testing.T) {
		sma, err := SMA([]float64{2, 4, 6}, 3)
		require.NoError(t, err)
		require.InDelta(t, 4.0, sma, 1e-9)
	})

	t.Run("short series errors", func(t *testing.T) {
		_, err := SMA([]float64{1, 2}, 3)
		require.Error(t, err)
	})
}

func Test_RSI(t *testing.T) {
	t.Run("known small series", func(t *testing.T) {
		// changes +1, -1, +2 over period 3:
		// avgGain = 1, avgLoss = 1/3, RS = 3, RSI = 75
		rsi, err := RSI([]float64{10, 11, 10, 12}, 3)
		require.NoError(t, err)
		require.InDelta(t, 75.0, rsi, 1e-9)
	})

	t.Run("monotonic rally pins at 100", func(t *testing.T) {
		closes := []float64{}
		for i := 0; i < 20; i++ {
			closes = append(closes, 100+float64(i))
		}
		rsi, err := RSI(closes, 14)
		require.NoError(t, err)
		require.InDelta(t, 100.0, rsi, 1e-9)
	})

	t.Run("monotonic selloff pins at 0", func(t *testing.T) {
		closes := []float64{}
		for i := 0; i < 20; i++ {
			closes = append(closes, 100-float64(i))
		}
		rsi, err := RSI(closes, 14)
		require.NoError(t, err)
		require.InDelta(t, 0.0, rsi, 1e-9)
	})

	t.Run("flat series reads neutral", func(t *testing.T) {
		closes := make([]float64, 20)
		for i := range closes {
			closes[i] = 100
		}
		rsi, err := RSI(closes, 14)
		require.NoError(t, err)
		require.InDelta(t, 50.0, rsi, 1e-9)
	})

	t.Run("insufficient data errors", func(t *testing.T) {
		_, err := RSI([]float64{1, 2, 3}, 14)
		require.Error(t, err)
	})

	t.Run("result stays within bounds", func(t *testing.T) {
		closes := []float64{50, 53, 49, 55, 54, 52, 58, 57, 60, 59, 61, 58, 62, 64, 63, 65}
		rsi, err := RSI(closes, 14)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rsi, 0.0)
		require.LessOrEqual(t, rsi, 100.0)
	})
}
