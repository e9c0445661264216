package repository

import (
	"sync"
	"time"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// DefaultLogCapacity bounds the system log ring.
const DefaultLogCapacity = 100

// SystemLogRepo is the bounded append-only audit trail.  Once the ring
// is full the oldest entry is overwritten; entries themselves are never
// mutated.
type SystemLogRepo struct {
	mu   sync.Mutex
	ring []model.SystemLogEntry
	next int // ring index of the next write
	full bool
	seq  uint64
}

// NewSystemLogRepo returns a log store keeping the most recent
// capacity entries.  A capacity of zero or less falls back to
// DefaultLogCapacity.
func NewSystemLogRepo(capacity int) *SystemLogRepo {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &SystemLogRepo{ring: make([]model.SystemLogEntry, capacity)}
}

// Append writes one entry, assigning it a monotonically increasing
// sequence number, and returns the stored entry.
func (r *SystemLogRepo) Append(at time.Time, level model.LogLevel, event, flightID, details string) model.SystemLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	e := model.SystemLogEntry{
		Seq:      r.seq,
		At:       at,
		Level:    level,
		Event:    event,
		FlightID: flightID,
		Details:  details,
	}
	r.ring[r.next] = e
	r.next++
	if r.next == len(r.ring) {
		r.next = 0
		r.full = true
	}
	return e
}

// List returns the retained entries oldest first.
func (r *SystemLogRepo) List() []model.SystemLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		out := make([]model.SystemLogEntry, r.next)
		copy(out, r.ring[:r.next])
		return out
	}
	out := make([]model.SystemLogEntry, 0, len(r.ring))
	out = append(out, r.ring[r.next:]...)
	out = append(out, r.ring[:r.next]...)
	return out
}
