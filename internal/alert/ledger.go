package alert

import (
	"sync"

	"MacdRadar/internal/model"
)

// Ledger tracks which crossover events were already seen so repeated scans
// do not re-announce them. Each scan replaces the previous generation
// wholesale: keys absent from the latest scan fall out, so an event that
// disappears and later reappears alerts again.
type Ledger struct {
	mu   sync.Mutex
	seen map[model.AlertKey]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{seen: make(map[model.AlertKey]struct{})}
}

// Advance compares the current generation of events against the previous
// one and returns the not-yet-seen ones in input order. The ledger is then
// replaced with the current generation.
func (l *Ledger) Advance(events []model.CrossoverEvent) []model.CrossoverEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make(map[model.AlertKey]struct{}, len(events))
	var fresh []model.CrossoverEvent
	for _, ev := range events {
		key := ev.Key()
		if _, old := l.seen[key]; !old {
			if _, dup := next[key]; !dup {
				fresh = append(fresh, ev)
			}
		}
		next[key] = struct{}{}
	}
	l.seen = next
	return fresh
}

// Size returns the number of keys in the current generation.
func (l *Ledger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}
