package model

import "time"

// Timeframe identifies the bar resolution a series was evaluated on.
type Timeframe string

const (
	Timeframe4H Timeframe = "4h"
	Timeframe1D Timeframe = "1d"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the bars for one instrument on one timeframe,
// chronological, no duplicate timestamps.
type PriceSeries struct {
	Symbol    string
	Timeframe Timeframe
	Bars      []OHLCV
	FetchedAt time.Time
}

// Closes extracts the close-price sequence.
func (p *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(p.Bars))
	for i, b := range p.Bars {
		closes[i] = b.Close
	}
	return closes
}
