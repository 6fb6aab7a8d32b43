package model

// MACDSnapshot holds the full MACD computation for one price series.
// MACDLine and SignalLine are index-aligned with the close prices they
// were computed from; Histogram is the last-index difference.
type MACDSnapshot struct {
	MACDLine   []float64
	SignalLine []float64
	Histogram  float64
}

// Last returns the most recent (macd, signal) pair.
func (m *MACDSnapshot) Last() (macd, signal float64) {
	n := len(m.MACDLine)
	if n == 0 {
		return 0, 0
	}
	return m.MACDLine[n-1], m.SignalLine[n-1]
}
