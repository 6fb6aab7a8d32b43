package calculator

import (
	"errors"

	"MacdRadar/internal/model"
)

// ErrNotEnoughData is returned when a close-price series is too short to
// evaluate.
var ErrNotEnoughData = errors.New("not enough data for MACD calculation")

// MACDParams bundles the EMA periods and the minimum series length.
type MACDParams struct {
	Fast        int
	Slow        int
	Signal      int
	MinimumBars int
}

// DefaultMACDParams returns the standard 12/26/9 setup with a 30-bar floor.
func DefaultMACDParams() MACDParams {
	return MACDParams{Fast: 12, Slow: 26, Signal: 9, MinimumBars: 30}
}

// CalculateMACD computes the MACD line, signal line and histogram for the
// given close prices. The MACD line keeps full index alignment with the
// input: early indices sit on a slow EMA that has not converged yet, and no
// truncation is applied.
func CalculateMACD(closes []float64, p MACDParams) (*model.MACDSnapshot, error) {
	if len(closes) == 0 || len(closes) < p.MinimumBars {
		return nil, ErrNotEnoughData
	}

	fast := CalculateEMA(closes, p.Fast)
	slow := CalculateEMA(closes, p.Slow)

	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = fast[i] - slow[i]
	}
	signalLine := CalculateEMA(macdLine, p.Signal)

	return &model.MACDSnapshot{
		MACDLine:   macdLine,
		SignalLine: signalLine,
		Histogram:  macdLine[len(macdLine)-1] - signalLine[len(signalLine)-1],
	}, nil
}
