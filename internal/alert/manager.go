package alert

import (
	"time"

	"github.com/sirupsen/logrus"

	"MacdRadar/internal/model"
)

var log = logrus.WithField("component", "alert")

// Notifier delivers a rendered alert with its chart buttons.
type Notifier interface {
	SendAlert(text string, buttons []model.Button) error
}

// Manager owns the dedup ledger and the notification throttle and decides,
// once per scan cycle, whether anything goes out.
type Manager struct {
	ledger   *Ledger
	throttle *Throttle
	notifier Notifier
	location *time.Location
}

// NewManager wires the dispatch pipeline. A nil notifier means
// notifications stay off while scanning continues.
func NewManager(notifier Notifier, cooldown time.Duration, loc *time.Location) *Manager {
	if loc == nil {
		loc = time.UTC
	}
	return &Manager{
		ledger:   NewLedger(),
		throttle: NewThrottle(cooldown),
		notifier: notifier,
		location: loc,
	}
}

// Throttle exposes the notification gate for status reporting.
func (m *Manager) Throttle() *Throttle { return m.throttle }

// Ledger exposes the dedup ledger for status reporting.
func (m *Manager) Ledger() *Ledger { return m.ledger }

// Dispatch advances the ledger with the cycle's events and, when new ones
// surfaced, sends a single summary subject to the cooldown. The ledger
// advances even when notifications are disabled or suppressed, so toggling
// them back on does not replay events that were already on screen.
func (m *Manager) Dispatch(report *model.ScanReport, enabled bool, now time.Time) model.DispatchResult {
	fresh := m.ledger.Advance(report.Events())

	if len(fresh) == 0 {
		return model.DispatchResult{Status: model.DispatchNoNewEvents}
	}
	if !enabled || m.notifier == nil {
		log.Infof("%d new crossover(s), notifications disabled", len(fresh))
		return model.DispatchResult{Status: model.DispatchDisabled, NewEvents: fresh}
	}

	ready, remaining := m.throttle.Ready(now)
	if !ready {
		log.Infof("telegram cooldown: %s remaining", remaining.Round(time.Second))
		return model.DispatchResult{Status: model.DispatchSuppressed, NewEvents: fresh, CooldownRemaining: remaining}
	}

	intraday, daily := splitByTimeframe(fresh)
	text := BuildMessage(intraday, daily, now.In(m.location))
	buttons := BuildButtons(intraday, daily)

	if err := m.notifier.SendAlert(text, buttons); err != nil {
		log.Warnf("telegram alert failed: %v", err)
		return model.DispatchResult{Status: model.DispatchFailed, NewEvents: fresh, Err: err}
	}
	m.throttle.MarkSent(now)
	log.Infof("telegram alert sent for %d new signal(s)", len(fresh))
	return model.DispatchResult{Status: model.DispatchSent, NewEvents: fresh}
}

func splitByTimeframe(events []model.CrossoverEvent) (intraday, daily []model.CrossoverEvent) {
	for _, ev := range events {
		if ev.Timeframe == model.Timeframe4H {
			intraday = append(intraday, ev)
		} else {
			daily = append(daily, ev)
		}
	}
	return intraday, daily
}
