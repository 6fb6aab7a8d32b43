package alert

import (
	"errors"
	"strings"
	"testing"
	"time"

	"MacdRadar/internal/model"
)

type fakeNotifier struct {
	err     error
	calls   int
	text    string
	buttons []model.Button
}

func (f *fakeNotifier) SendAlert(text string, buttons []model.Button) error {
	f.calls++
	f.text = text
	f.buttons = buttons
	return f.err
}

func report(events ...model.CrossoverEvent) *model.ScanReport {
	r := &model.ScanReport{}
	for _, ev := range events {
		if ev.Timeframe == model.Timeframe4H {
			r.Intraday = append(r.Intraday, ev)
		} else {
			r.Daily = append(r.Daily, ev)
		}
	}
	return r
}

func TestManager_SendsOnceAndDedupsNextCycle(t *testing.T) {
	fn := &fakeNotifier{}
	m := NewManager(fn, 45*time.Minute, time.UTC)
	t0 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	barTime := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	rep := report(ev("RELIANCE", model.Timeframe4H, barTime))

	res := m.Dispatch(rep, true, t0)
	if res.Status != model.DispatchSent {
		t.Fatalf("status = %s, want %s", res.Status, model.DispatchSent)
	}
	if fn.calls != 1 {
		t.Fatalf("notifier calls = %d, want 1", fn.calls)
	}
	if !strings.Contains(fn.text, "• RELIANCE") {
		t.Errorf("alert text missing symbol bullet:\n%s", fn.text)
	}
	if len(fn.buttons) != 1 {
		t.Errorf("buttons = %d, want 1", len(fn.buttons))
	}

	// Same events next cycle: nothing new, nothing sent.
	res = m.Dispatch(rep, true, t0.Add(time.Hour))
	if res.Status != model.DispatchNoNewEvents {
		t.Errorf("status = %s, want %s", res.Status, model.DispatchNoNewEvents)
	}
	if fn.calls != 1 {
		t.Errorf("notifier called again for seen events")
	}
}

func TestManager_CooldownSuppressesThenReleases(t *testing.T) {
	fn := &fakeNotifier{}
	m := NewManager(fn, 45*time.Minute, time.UTC)
	t0 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	barA := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	if res := m.Dispatch(report(ev("RELIANCE", model.Timeframe4H, barA)), true, t0); res.Status != model.DispatchSent {
		t.Fatalf("first dispatch status = %s", res.Status)
	}

	// A different event 10 minutes later is throttled but remembered.
	res := m.Dispatch(report(ev("INFY", model.Timeframe4H, barA)), true, t0.Add(10*time.Minute))
	if res.Status != model.DispatchSuppressed {
		t.Fatalf("status = %s, want %s", res.Status, model.DispatchSuppressed)
	}
	if res.CooldownRemaining != 35*time.Minute {
		t.Errorf("remaining = %v, want 35m", res.CooldownRemaining)
	}
	if fn.calls != 1 {
		t.Errorf("suppressed dispatch must not send")
	}

	// After the cooldown a new event goes out.
	res = m.Dispatch(report(ev("TCS", model.Timeframe1D, barA)), true, t0.Add(46*time.Minute))
	if res.Status != model.DispatchSent {
		t.Errorf("status = %s, want %s after cooldown", res.Status, model.DispatchSent)
	}
	if fn.calls != 2 {
		t.Errorf("notifier calls = %d, want 2", fn.calls)
	}
}

func TestManager_FailureLeavesThrottleOpen(t *testing.T) {
	fn := &fakeNotifier{err: errors.New("telegram: status 502")}
	m := NewManager(fn, 45*time.Minute, time.UTC)
	t0 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	barA := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	res := m.Dispatch(report(ev("RELIANCE", model.Timeframe4H, barA)), true, t0)
	if res.Status != model.DispatchFailed {
		t.Fatalf("status = %s, want %s", res.Status, model.DispatchFailed)
	}
	if res.Err == nil {
		t.Error("failed dispatch should carry the error")
	}

	// The failed send did not consume the cooldown: a new event a minute
	// later still goes straight out.
	fn.err = nil
	res = m.Dispatch(report(ev("INFY", model.Timeframe4H, barA)), true, t0.Add(time.Minute))
	if res.Status != model.DispatchSent {
		t.Errorf("status = %s, want %s right after a failure", res.Status, model.DispatchSent)
	}
}

func TestManager_DisabledStillAdvancesLedger(t *testing.T) {
	fn := &fakeNotifier{}
	m := NewManager(fn, 45*time.Minute, time.UTC)
	t0 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	barA := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	rep := report(ev("RELIANCE", model.Timeframe4H, barA))

	res := m.Dispatch(rep, false, t0)
	if res.Status != model.DispatchDisabled {
		t.Fatalf("status = %s, want %s", res.Status, model.DispatchDisabled)
	}
	if len(res.NewEvents) != 1 {
		t.Errorf("disabled dispatch should still report new events")
	}
	if fn.calls != 0 {
		t.Errorf("disabled dispatch must not send")
	}

	// Re-enabling does not replay what the dashboard already showed.
	res = m.Dispatch(rep, true, t0.Add(time.Minute))
	if res.Status != model.DispatchNoNewEvents {
		t.Errorf("status = %s, want %s after re-enable", res.Status, model.DispatchNoNewEvents)
	}
	if fn.calls != 0 {
		t.Errorf("re-enabled dispatch resent seen events")
	}
}

func TestManager_NilNotifierBehavesDisabled(t *testing.T) {
	m := NewManager(nil, 45*time.Minute, nil)
	t0 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	barA := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	res := m.Dispatch(report(ev("RELIANCE", model.Timeframe4H, barA)), true, t0)
	if res.Status != model.DispatchDisabled {
		t.Errorf("status = %s, want %s with nil notifier", res.Status, model.DispatchDisabled)
	}
}
