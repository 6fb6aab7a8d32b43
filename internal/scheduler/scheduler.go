package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"MacdRadar/internal/alert"
	"MacdRadar/internal/model"
	"MacdRadar/internal/recorder"
	"MacdRadar/internal/session"
)

var log = logrus.WithField("component", "scheduler")

// ErrScanInFlight is returned when a trigger arrives while a sweep runs.
var ErrScanInFlight = errors.New("scan already running")

// Sweeper runs one full scan cycle.
type Sweeper interface {
	Scan(ctx context.Context) (*model.ScanReport, error)
}

// Scheduler drives the periodic sweep and serves manual triggers. One
// cycle at a time: an in-flight sweep is never preempted, and a manual
// trigger re-arms the auto-refresh timer so the next automatic cycle is
// a full interval away.
type Scheduler struct {
	Cron     *cron.Cron
	Scanner  Sweeper
	Alerts   *alert.Manager
	Session  *session.State
	Recorder recorder.Recorder
	Ctx      context.Context

	interval time.Duration
	location *time.Location

	mu       sync.Mutex
	entryID  cron.EntryID
	hasEntry bool
	scanning bool
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sw Sweeper, am *alert.Manager, st *session.State, rec recorder.Recorder, interval time.Duration, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		Cron:     cron.New(),
		Scanner:  sw,
		Alerts:   am,
		Session:  st,
		Recorder: rec,
		Ctx:      ctx,
		interval: interval,
		location: loc,
	}
}

// Start launches the cron loop and arms the refresh entry when the
// session has auto refresh enabled.
func (s *Scheduler) Start() {
	if s.Session.AutoRefresh() {
		s.mu.Lock()
		s.armLocked()
		s.mu.Unlock()
	}
	s.Cron.Start()
	log.Infof("scheduler started, refresh interval %s", s.interval)
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info("scheduler stopped")
}

// armLocked (re)schedules the periodic entry; the next fire is one full
// interval from now. Callers hold s.mu.
func (s *Scheduler) armLocked() {
	if s.hasEntry {
		s.Cron.Remove(s.entryID)
	}
	s.entryID = s.Cron.Schedule(cron.Every(s.interval), cron.FuncJob(s.autoCycle))
	s.hasEntry = true
}

func (s *Scheduler) disarmLocked() {
	if s.hasEntry {
		s.Cron.Remove(s.entryID)
		s.hasEntry = false
	}
}

func (s *Scheduler) tryBegin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning {
		return false
	}
	s.scanning = true
	return true
}

func (s *Scheduler) finish() {
	s.mu.Lock()
	s.scanning = false
	s.mu.Unlock()
}

func (s *Scheduler) autoCycle() {
	if !s.tryBegin() {
		log.Warn("auto refresh skipped: scan already running")
		return
	}
	defer s.finish()
	s.cycle()
}

// TriggerScan starts a cycle immediately and returns once it is underway.
// ErrScanInFlight is returned when a sweep is already running.
func (s *Scheduler) TriggerScan() error {
	if !s.tryBegin() {
		return ErrScanInFlight
	}

	s.mu.Lock()
	if s.Session.AutoRefresh() {
		s.armLocked()
	}
	s.mu.Unlock()

	go func() {
		defer s.finish()
		s.cycle()
	}()
	return nil
}

func (s *Scheduler) cycle() {
	s.Session.BeginScan()

	report, err := s.Scanner.Scan(s.Ctx)
	if err != nil {
		s.Session.AbortScan()
		log.Warnf("scan aborted: %v", err)
		return
	}

	dispatch := s.Alerts.Dispatch(report, s.Session.Notifications(), time.Now())
	s.Session.FinishScan(report, dispatch)

	if err := s.Recorder.RecordScan(report, dispatch); err != nil {
		log.Errorf("record scan: %v", err)
	}
}

// SetAutoRefresh toggles the periodic sweep. Turning it on arms a fresh
// interval from now; turning it off cancels the pending fire.
func (s *Scheduler) SetAutoRefresh(on bool) {
	s.Session.SetAutoRefresh(on)

	s.mu.Lock()
	if on {
		s.armLocked()
	} else {
		s.disarmLocked()
	}
	s.mu.Unlock()

	if on {
		log.Info("auto refresh enabled")
	} else {
		log.Info("auto refresh disabled")
	}
}

// SetNotifications toggles outbound Telegram alerts. Scanning continues
// either way.
func (s *Scheduler) SetNotifications(on bool) {
	s.Session.SetNotifications(on)
	if on {
		log.Info("notifications enabled")
	} else {
		log.Info("notifications disabled")
	}
}

// NextRun returns the next scheduled automatic sweep, zero when disarmed.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasEntry {
		return time.Time{}
	}
	return s.Cron.Entry(s.entryID).Next
}

const helpText = "Available commands:\n" +
	"• /scan - run a scan now\n" +
	"• /status - scanner status\n" +
	"• /auto on|off - toggle auto refresh\n" +
	"• /notify on|off - toggle telegram alerts\n" +
	"• /help - this message"

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "/scan":
		if err := s.TriggerScan(); err != nil {
			return fmt.Sprintf("⚠️ %v", err)
		}
		return "🔍 Scan started"
	case "/status":
		return s.StatusText()
	case "/auto on":
		s.SetAutoRefresh(true)
		return "🔄 Auto refresh enabled"
	case "/auto off":
		s.SetAutoRefresh(false)
		return "⏸️ Auto refresh disabled"
	case "/notify on":
		s.SetNotifications(true)
		return "🔔 Notifications enabled"
	case "/notify off":
		s.SetNotifications(false)
		return "🔕 Notifications disabled"
	default:
		return helpText
	}
}

// StatusText renders a session summary for chat replies.
func (s *Scheduler) StatusText() string {
	snap := s.Session.Snapshot()
	var b strings.Builder

	b.WriteString("📊 <b>MACD Scanner Status</b>\n\n")
	b.WriteString(fmt.Sprintf("Phase: %s\n", snap.Phase))
	if snap.LastScanAt.IsZero() {
		b.WriteString("Last scan: never\n")
	} else {
		b.WriteString(fmt.Sprintf("Last scan: %s\n", snap.LastScanAt.In(s.location).Format("02 Jan 2006, 03:04 PM")))
	}
	b.WriteString(fmt.Sprintf("Universe: %d symbols\n", snap.UniverseSize))
	b.WriteString(fmt.Sprintf("Crossovers: %d (4h) / %d (1d)\n", len(snap.Intraday), len(snap.Daily)))
	b.WriteString(fmt.Sprintf("Skipped: %d\n", snap.SkippedCount))
	b.WriteString(fmt.Sprintf("Auto refresh: %v | Notifications: %v\n", snap.AutoRefresh, snap.Notifications))
	if ready, remaining := s.Alerts.Throttle().Ready(time.Now()); !ready {
		b.WriteString(fmt.Sprintf("Telegram cooldown: %s remaining\n", remaining.Round(time.Minute)))
	}
	if !snap.TelegramConfigured {
		b.WriteString("⚠️ Telegram credentials not configured\n")
	}
	return b.String()
}
