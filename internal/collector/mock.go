package collector

import (
	"time"

	"MacdRadar/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Explicit per-symbol bars or errors take precedence; otherwise a gentle
// ramp around BasePrice is generated.
type MockFetcher struct {
	BasePrice    float64
	BarsBySymbol map[string][]model.OHLCV
	ErrBySymbol  map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(symbol, interval, window string) ([]model.OHLCV, error) {
	if err, ok := m.ErrBySymbol[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.BarsBySymbol[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.BasePrice, windowBarCount(interval, window), intervalStep(interval)), nil
}

func intervalStep(interval string) time.Duration {
	if interval == "1d" {
		return 24 * time.Hour
	}
	return time.Hour
}

func windowBarCount(interval, window string) int {
	days := 90
	switch window {
	case "1mo":
		days = 30
	case "60d":
		days = 60
	}
	if interval == "1h" {
		return days * 6 // one NSE session is about six hourly bars
	}
	return days
}

func generateMockBars(basePrice float64, count int, step time.Duration) []model.OHLCV {
	start := time.Now().Add(-time.Duration(count) * step)
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
