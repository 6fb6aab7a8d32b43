package scanner

import (
	"context"
	"errors"
	"testing"
	"time"

	"MacdRadar/internal/calculator"
	"MacdRadar/internal/collector"
	"MacdRadar/internal/model"
)

// crossoverSeries declines steadily long enough for the classifier to sit
// in STRONG SELL, then spikes so the final bar flips it to STRONG BUY.
func crossoverSeries(start time.Time) []model.OHLCV {
	var bars []model.OHLCV
	price := 100.0
	for i := 0; i < 34; i++ {
		bars = append(bars, model.OHLCV{
			Time: start.Add(time.Duration(i) * 24 * time.Hour),
			Open: price, High: price + 1, Low: price - 1, Close: price, Volume: 1000,
		})
		price--
	}
	bars = append(bars, model.OHLCV{
		Time: start.Add(34 * 24 * time.Hour),
		Open: 9000, High: 10100, Low: 8900, Close: 10000, Volume: 5000,
	})
	return bars
}

func flatSeries(start time.Time, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time: start.Add(time.Duration(i) * 24 * time.Hour),
			Open: 250, High: 251, Low: 249, Close: 250, Volume: 1000,
		}
	}
	return bars
}

func testOptions(universe ...string) Options {
	return Options{
		Universe:       universe,
		IntradayBucket: 4 * time.Hour,
		PacingDelay:    0,
		MACD:           calculator.DefaultMACDParams(),
	}
}

func TestScanner_DetectsCrossoverOnBothTimeframes(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	mock := &collector.MockFetcher{
		BarsBySymbol: map[string][]model.OHLCV{
			"CROSS.NS": crossoverSeries(start),
			"FLAT.NS":  flatSeries(start, 40),
		},
	}
	s := New(mock, testOptions("CROSS.NS", "FLAT.NS"))

	report, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(report.Intraday) != 1 || len(report.Daily) != 1 {
		t.Fatalf("crossovers = %d intraday / %d daily, want 1/1", len(report.Intraday), len(report.Daily))
	}

	ev := report.Intraday[0]
	if ev.Symbol != "CROSS" {
		t.Errorf("event symbol = %q, want CROSS without suffix", ev.Symbol)
	}
	if !ev.PreviousLabel.Bearish() || !ev.CurrentLabel.Bullish() {
		t.Errorf("labels %s -> %s are not a bearish-to-bullish reversal", ev.PreviousLabel, ev.CurrentLabel)
	}
	if ev.PreviousLabel != model.SignalStrongSell || ev.CurrentLabel != model.SignalStrongBuy {
		t.Errorf("labels = %s -> %s, want STRONG SELL -> STRONG BUY", ev.PreviousLabel, ev.CurrentLabel)
	}
	if ev.Price != 10000 {
		t.Errorf("event price = %v, want the last close", ev.Price)
	}
	wantTS := start.Add(34 * 24 * time.Hour)
	if !ev.Timestamp.Equal(wantTS) {
		t.Errorf("event timestamp = %v, want closing bar time %v", ev.Timestamp, wantTS)
	}

	if got := len(report.Outcomes); got != 4 {
		t.Errorf("outcomes = %d, want 2 symbols x 2 timeframes", got)
	}
	if report.SkippedCount() != 0 {
		t.Errorf("skipped = %d, want 0", report.SkippedCount())
	}

	events := report.Events()
	if len(events) != 2 || events[0].Timeframe != model.Timeframe4H {
		t.Errorf("Events() should list intraday first, got %v", events)
	}
}

func TestScanner_KeysDifferAcrossTimeframes(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	mock := &collector.MockFetcher{
		BarsBySymbol: map[string][]model.OHLCV{"CROSS.NS": crossoverSeries(start)},
	}
	s := New(mock, testOptions("CROSS.NS"))

	report, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(report.Intraday) != 1 || len(report.Daily) != 1 {
		t.Fatal("expected a crossover on both timeframes")
	}
	if report.Intraday[0].Key() == report.Daily[0].Key() {
		t.Errorf("4h and 1d events share key %s; one would suppress the other", report.Intraday[0].Key())
	}
}

func TestScanner_IsolatesFetchFailures(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	mock := &collector.MockFetcher{
		BarsBySymbol: map[string][]model.OHLCV{"CROSS.NS": crossoverSeries(start)},
		ErrBySymbol:  map[string]error{"BAD.NS": errors.New("connection reset")},
	}
	s := New(mock, testOptions("BAD.NS", "CROSS.NS"))

	report, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("one bad symbol must not fail the scan: %v", err)
	}
	if len(report.Intraday) != 1 {
		t.Errorf("healthy symbol should still produce its crossover")
	}

	var badSeen int
	for _, o := range report.Outcomes {
		if o.Symbol == "BAD" {
			badSeen++
			if o.Status != model.OutcomeSkippedFetch {
				t.Errorf("BAD status = %s, want %s", o.Status, model.OutcomeSkippedFetch)
			}
			if o.Err == nil {
				t.Error("skipped-fetch outcome should carry the error")
			}
		}
	}
	if badSeen != 2 {
		t.Errorf("BAD outcomes = %d, want one per timeframe", badSeen)
	}
	if report.SkippedCount() != 2 {
		t.Errorf("skipped = %d, want 2", report.SkippedCount())
	}
}

func TestScanner_SkipsShortAndEmptySeries(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	mock := &collector.MockFetcher{
		BarsBySymbol: map[string][]model.OHLCV{
			"SHORT.NS": flatSeries(start, 10),
			"EMPTY.NS": {},
		},
	}
	s := New(mock, testOptions("SHORT.NS", "EMPTY.NS"))

	report, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(report.Events()) != 0 {
		t.Errorf("no events expected, got %v", report.Events())
	}

	statuses := map[string]model.OutcomeStatus{}
	for _, o := range report.Outcomes {
		statuses[o.Symbol] = o.Status
	}
	if statuses["SHORT"] != model.OutcomeSkippedShort {
		t.Errorf("SHORT status = %s, want %s", statuses["SHORT"], model.OutcomeSkippedShort)
	}
	if statuses["EMPTY"] != model.OutcomeSkippedEmpty {
		t.Errorf("EMPTY status = %s, want %s", statuses["EMPTY"], model.OutcomeSkippedEmpty)
	}
}

func TestScanner_CancelledContextAborts(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	mock := &collector.MockFetcher{
		BarsBySymbol: map[string][]model.OHLCV{"CROSS.NS": crossoverSeries(start)},
	}
	s := New(mock, testOptions("CROSS.NS"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := s.Scan(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(report.Outcomes) != 0 {
		t.Errorf("cancelled scan should not have swept instruments, got %d outcomes", len(report.Outcomes))
	}
}

func TestDisplaySymbol(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"RELIANCE.NS", "RELIANCE"},
		{"  tcs.ns ", "TCS"},
		{"M&M.NS", "M&M"},
		{"^GSPC", "^GSPC"},
	}
	for _, tt := range tests {
		if got := DisplaySymbol(tt.in); got != tt.want {
			t.Errorf("DisplaySymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
