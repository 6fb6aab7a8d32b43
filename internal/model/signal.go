package model

import (
	"fmt"
	"time"
)

// SignalLabel is the discrete momentum label assigned to one bar index.
type SignalLabel string

const (
	SignalStrongBuy  SignalLabel = "STRONG BUY"
	SignalWeakBuy    SignalLabel = "WEAK BUY"
	SignalBuy        SignalLabel = "BUY"
	SignalStrongSell SignalLabel = "STRONG SELL"
	SignalWeakSell   SignalLabel = "WEAK SELL"
	SignalSell       SignalLabel = "SELL"
	SignalNone       SignalLabel = "NO SIGNAL"
)

// Bullish reports whether the label belongs to the bullish set.
func (s SignalLabel) Bullish() bool {
	return s == SignalBuy || s == SignalWeakBuy || s == SignalStrongBuy
}

// Bearish reports whether the label belongs to the bearish set.
func (s SignalLabel) Bearish() bool {
	return s == SignalSell || s == SignalWeakSell || s == SignalStrongSell
}

// CrossoverEvent records one bearish-to-bullish transition. Immutable once
// created; it lives for a single scan generation.
type CrossoverEvent struct {
	Symbol        string      `json:"symbol"`
	Timeframe     Timeframe   `json:"timeframe"`
	PreviousLabel SignalLabel `json:"previous_label"`
	CurrentLabel  SignalLabel `json:"current_label"`
	MACD          float64     `json:"macd"`
	Signal        float64     `json:"signal"`
	Price         float64     `json:"price"`
	Timestamp     time.Time   `json:"timestamp"`
}

// AlertKey is the dedup identity of a CrossoverEvent.
type AlertKey string

// Key derives the dedup key. The timestamp is the closing bar's time, so
// the same signal seen by consecutive scans maps to the same key.
func (e CrossoverEvent) Key() AlertKey {
	return AlertKey(fmt.Sprintf("%s_%s_%d", e.Symbol, e.Timeframe, e.Timestamp.Unix()))
}

// Button is a navigation button attached to an outbound notification.
type Button struct {
	Label string
	URL   string
}
