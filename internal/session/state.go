package session

import (
	"sync"
	"time"

	"MacdRadar/internal/model"
)

// Phase describes what the service is currently doing.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseScanning Phase = "scanning"
)

// State holds the live session the presentation layer reads: latest scan
// results, dispatch outcome and the user-facing toggles. It starts fresh
// on every boot; nothing is restored from disk.
type State struct {
	mu sync.Mutex

	phase         Phase
	lastScanAt    time.Time
	lastScanID    string
	intraday      []model.CrossoverEvent
	daily         []model.CrossoverEvent
	scanned       int
	skipped       int
	lastDispatch  model.DispatchStatus
	newEventCount int

	autoRefresh   bool
	notifications bool

	telegramConfigured bool
	universeSize       int
}

// Snapshot is a point-in-time copy of the session for rendering.
type Snapshot struct {
	Phase              Phase                  `json:"phase"`
	LastScanAt         time.Time              `json:"last_scan_at"`
	LastScanID         string                 `json:"last_scan_id,omitempty"`
	Intraday           []model.CrossoverEvent `json:"intraday"`
	Daily              []model.CrossoverEvent `json:"daily"`
	ScannedCount       int                    `json:"scanned_count"`
	SkippedCount       int                    `json:"skipped_count"`
	LastDispatch       model.DispatchStatus   `json:"last_dispatch,omitempty"`
	NewEventCount      int                    `json:"new_event_count"`
	AutoRefresh        bool                   `json:"auto_refresh"`
	Notifications      bool                   `json:"notifications_enabled"`
	TelegramConfigured bool                   `json:"telegram_configured"`
	UniverseSize       int                    `json:"universe_size"`
}

func New(autoRefresh, notifications, telegramConfigured bool, universeSize int) *State {
	return &State{
		phase:              PhaseIdle,
		autoRefresh:        autoRefresh,
		notifications:      notifications,
		telegramConfigured: telegramConfigured,
		universeSize:       universeSize,
	}
}

// BeginScan flips the phase so status readers see the sweep in progress.
func (s *State) BeginScan() {
	s.mu.Lock()
	s.phase = PhaseScanning
	s.mu.Unlock()
}

// FinishScan records the report and dispatch outcome of a completed cycle.
func (s *State) FinishScan(report *model.ScanReport, dispatch model.DispatchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseIdle
	s.lastScanAt = report.FinishedAt
	s.lastScanID = report.ID.String()
	s.intraday = append([]model.CrossoverEvent(nil), report.Intraday...)
	s.daily = append([]model.CrossoverEvent(nil), report.Daily...)
	s.scanned = report.ScannedCount()
	s.skipped = report.SkippedCount()
	s.lastDispatch = dispatch.Status
	s.newEventCount = len(dispatch.NewEvents)
}

// AbortScan returns the phase to idle without touching the last results.
func (s *State) AbortScan() {
	s.mu.Lock()
	s.phase = PhaseIdle
	s.mu.Unlock()
}

func (s *State) SetAutoRefresh(on bool) {
	s.mu.Lock()
	s.autoRefresh = on
	s.mu.Unlock()
}

func (s *State) AutoRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoRefresh
}

func (s *State) SetNotifications(on bool) {
	s.mu.Lock()
	s.notifications = on
	s.mu.Unlock()
}

func (s *State) Notifications() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}

func (s *State) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseScanning
}

// Snapshot returns a copy of the current session. The slices are copied
// so callers can hold the result across further scans.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Phase:              s.phase,
		LastScanAt:         s.lastScanAt,
		LastScanID:         s.lastScanID,
		Intraday:           append([]model.CrossoverEvent(nil), s.intraday...),
		Daily:              append([]model.CrossoverEvent(nil), s.daily...),
		ScannedCount:       s.scanned,
		SkippedCount:       s.skipped,
		LastDispatch:       s.lastDispatch,
		NewEventCount:      s.newEventCount,
		AutoRefresh:        s.autoRefresh,
		Notifications:      s.notifications,
		TelegramConfigured: s.telegramConfigured,
		UniverseSize:       s.universeSize,
	}
}
