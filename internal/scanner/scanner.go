package scanner

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"MacdRadar/internal/calculator"
	"MacdRadar/internal/collector"
	"MacdRadar/internal/model"
	"MacdRadar/internal/strategy"
)

var log = logrus.WithField("component", "scanner")

// Chart API vocabulary for the two scanned timeframes. The intraday
// sweep fetches hourly bars and aggregates them locally because the
// providers do not serve 4h candles directly.
const (
	intradayInterval = "1h"
	intradayWindow   = "60d"
	dailyInterval    = "1d"
	dailyWindow      = "3mo"
)

// Options control one scanner instance.
type Options struct {
	Universe       []string
	IntradayBucket time.Duration
	PacingDelay    time.Duration
	MACD           calculator.MACDParams
}

// Scanner sweeps the configured universe for bearish-to-bullish MACD
// reversals on the 4h and daily timeframes.
type Scanner struct {
	fetcher collector.Fetcher
	opts    Options
}

func New(fetcher collector.Fetcher, opts Options) *Scanner {
	if opts.MACD.Fast == 0 {
		opts.MACD = calculator.DefaultMACDParams()
	}
	if opts.IntradayBucket == 0 {
		opts.IntradayBucket = 4 * time.Hour
	}
	return &Scanner{fetcher: fetcher, opts: opts}
}

// Scan runs a full cycle over both timeframes. Individual instrument
// failures are recorded in the report, never fatal; only context
// cancellation aborts the sweep.
func (s *Scanner) Scan(ctx context.Context) (*model.ScanReport, error) {
	report := &model.ScanReport{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
	log.Infof("scan %s started: %d symbols via %s", report.ID, len(s.opts.Universe), s.fetcher.Name())

	intraday, outcomes := s.scanTimeframe(ctx, model.Timeframe4H)
	report.Intraday = intraday
	report.Outcomes = append(report.Outcomes, outcomes...)

	if ctx.Err() == nil {
		daily, outcomes := s.scanTimeframe(ctx, model.Timeframe1D)
		report.Daily = daily
		report.Outcomes = append(report.Outcomes, outcomes...)
	}

	report.FinishedAt = time.Now()
	if err := ctx.Err(); err != nil {
		log.Warnf("scan %s aborted: %v", report.ID, err)
		return report, err
	}
	log.Infof("scan %s finished in %s: %d intraday + %d daily crossovers, %d skipped",
		report.ID, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond),
		len(report.Intraday), len(report.Daily), report.SkippedCount())
	return report, nil
}

func (s *Scanner) scanTimeframe(ctx context.Context, tf model.Timeframe) ([]model.CrossoverEvent, []model.InstrumentOutcome) {
	var events []model.CrossoverEvent
	outcomes := make([]model.InstrumentOutcome, 0, len(s.opts.Universe))

	for _, symbol := range s.opts.Universe {
		if ctx.Err() != nil {
			return events, outcomes
		}

		event, outcome := s.scanInstrument(symbol, tf)
		outcomes = append(outcomes, outcome)
		if event != nil {
			events = append(events, *event)
		}

		// Advisory pacing so the provider is not hammered.
		if s.opts.PacingDelay > 0 {
			select {
			case <-ctx.Done():
				return events, outcomes
			case <-time.After(s.opts.PacingDelay):
			}
		}
	}
	return events, outcomes
}

func (s *Scanner) scanInstrument(symbol string, tf model.Timeframe) (*model.CrossoverEvent, model.InstrumentOutcome) {
	display := DisplaySymbol(symbol)
	outcome := model.InstrumentOutcome{Symbol: display, Timeframe: tf, Status: model.OutcomeOK}

	series, err := s.fetchSeries(symbol, tf)
	if err != nil {
		log.Debugf("%s %s: fetch failed: %v", display, tf, err)
		outcome.Status = model.OutcomeSkippedFetch
		outcome.Err = err
		return nil, outcome
	}
	if len(series.Bars) == 0 {
		outcome.Status = model.OutcomeSkippedEmpty
		return nil, outcome
	}
	if len(series.Bars) < s.opts.MACD.MinimumBars {
		outcome.Status = model.OutcomeSkippedShort
		return nil, outcome
	}

	closes := series.Closes()
	snapshot, err := calculator.CalculateMACD(closes, s.opts.MACD)
	if err != nil {
		outcome.Status = model.OutcomeSkippedShort
		outcome.Err = err
		return nil, outcome
	}

	labels := strategy.ClassifySeries(snapshot.MACDLine, snapshot.SignalLine)
	prev, curr, crossed := strategy.DetectReversal(labels)
	if !crossed {
		return nil, outcome
	}

	macdVal, signalVal := snapshot.Last()
	outcome.Status = model.OutcomeCrossover
	return &model.CrossoverEvent{
		Symbol:        display,
		Timeframe:     tf,
		PreviousLabel: prev,
		CurrentLabel:  curr,
		MACD:          macdVal,
		Signal:        signalVal,
		Price:         closes[len(closes)-1],
		Timestamp:     series.Bars[len(series.Bars)-1].Time,
	}, outcome
}

func (s *Scanner) fetchSeries(symbol string, tf model.Timeframe) (model.PriceSeries, error) {
	series := model.PriceSeries{Symbol: symbol, Timeframe: tf}

	if tf == model.Timeframe4H {
		raw, err := s.fetcher.FetchBars(symbol, intradayInterval, intradayWindow)
		if err != nil {
			return series, err
		}
		series.Bars = collector.AggregateBars(raw, s.opts.IntradayBucket)
	} else {
		raw, err := s.fetcher.FetchBars(symbol, dailyInterval, dailyWindow)
		if err != nil {
			return series, err
		}
		series.Bars = raw
	}

	series.FetchedAt = time.Now()
	return series, nil
}

// DisplaySymbol converts a wire ticker into its display form, dropping
// the NSE suffix.
func DisplaySymbol(symbol string) string {
	return strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(symbol)), ".NS")
}
