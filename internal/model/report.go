package model

import (
	"time"

	"github.com/google/uuid"
)

// OutcomeStatus classifies how one instrument fared within a scan.
type OutcomeStatus string

const (
	OutcomeOK           OutcomeStatus = "OK"
	OutcomeCrossover    OutcomeStatus = "CROSSOVER"
	OutcomeSkippedFetch OutcomeStatus = "SKIPPED_FETCH"
	OutcomeSkippedEmpty OutcomeStatus = "SKIPPED_EMPTY"
	OutcomeSkippedShort OutcomeStatus = "SKIPPED_SHORT"
)

// Skipped reports whether the instrument was skipped rather than evaluated.
func (s OutcomeStatus) Skipped() bool {
	return s == OutcomeSkippedFetch || s == OutcomeSkippedEmpty || s == OutcomeSkippedShort
}

// InstrumentOutcome is the per-instrument result collected by the scan,
// keeping the failure reason instead of swallowing it.
type InstrumentOutcome struct {
	Symbol    string        `json:"symbol"`
	Timeframe Timeframe     `json:"timeframe"`
	Status    OutcomeStatus `json:"status"`
	Err       error         `json:"-"`
}

// ScanReport is the result of one complete pass over the universe on both
// timeframes.
type ScanReport struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Intraday   []CrossoverEvent
	Daily      []CrossoverEvent
	Outcomes   []InstrumentOutcome
}

// Events returns all crossover events, intraday first.
func (r *ScanReport) Events() []CrossoverEvent {
	all := make([]CrossoverEvent, 0, len(r.Intraday)+len(r.Daily))
	all = append(all, r.Intraday...)
	all = append(all, r.Daily...)
	return all
}

// SkippedCount counts instruments that were skipped in either timeframe.
func (r *ScanReport) SkippedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status.Skipped() {
			n++
		}
	}
	return n
}

// ScannedCount counts instrument evaluations that ran to completion.
func (r *ScanReport) ScannedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Status.Skipped() {
			n++
		}
	}
	return n
}

// DispatchStatus is the terminal state of the notification step for one
// scan cycle.
type DispatchStatus string

const (
	DispatchSent        DispatchStatus = "SENT"
	DispatchSuppressed  DispatchStatus = "SUPPRESSED"
	DispatchDisabled    DispatchStatus = "DISABLED"
	DispatchNoNewEvents DispatchStatus = "NO_NEW_EVENTS"
	DispatchFailed      DispatchStatus = "FAILED"
)

// DispatchResult describes what the alert manager did with a scan report.
type DispatchResult struct {
	Status            DispatchStatus
	NewEvents         []CrossoverEvent
	CooldownRemaining time.Duration
	Err               error
}
