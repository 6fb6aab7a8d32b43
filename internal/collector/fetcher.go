package collector

import "MacdRadar/internal/model"

// Fetcher defines the interface for fetching market data. Interval and
// window use the chart API vocabulary ("1h", "1d" / "60d", "3mo"). A
// Fetcher owns its own timeout and retry policy.
type Fetcher interface {
	FetchBars(symbol, interval, window string) ([]model.OHLCV, error)
	Name() string
}
