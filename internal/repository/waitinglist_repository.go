package repository

import (
	"sync"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// WaitingListRepo is the in-memory waiting-list store.  The backing
// slice per flight is unordered; priority order is computed by the
// engine on every promotion (cheap for bounded per-flight queues, and
// keeps the store a dumb container).
type WaitingListRepo struct {
	mu       sync.RWMutex
	byFlight map[string][]model.WaitingListEntry
	index    map[string]string // entry id -> flight id
}

// NewWaitingListRepo returns an empty in-memory waiting-list store.
func NewWaitingListRepo() *WaitingListRepo {
	return &WaitingListRepo{
		byFlight: make(map[string][]model.WaitingListEntry),
		index:    make(map[string]string),
	}
}

// Append adds an entry to its flight's queue.
func (r *WaitingListRepo) Append(e model.WaitingListEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byFlight[e.FlightID] = append(r.byFlight[e.FlightID], e)
	r.index[e.ID] = e.FlightID
}

// Get returns an entry by id or ErrEntryNotFound.
func (r *WaitingListRepo) Get(entryID string) (model.WaitingListEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	flightID, ok := r.index[entryID]
	if !ok {
		return model.WaitingListEntry{}, ErrEntryNotFound
	}
	for _, e := range r.byFlight[flightID] {
		if e.ID == entryID {
			return e, nil
		}
	}
	return model.WaitingListEntry{}, ErrEntryNotFound
}

// Update replaces an existing entry in place.  Unknown entries are
// ignored; the engine always reads before it writes.
func (r *WaitingListRepo) Update(e model.WaitingListEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.byFlight[e.FlightID]
	for i := range list {
		if list[i].ID == e.ID {
			list[i] = e
			return
		}
	}
}

// Remove deletes an entry from its flight's queue.
func (r *WaitingListRepo) Remove(entryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	flightID, ok := r.index[entryID]
	if !ok {
		return
	}
	delete(r.index, entryID)
	list := r.byFlight[flightID]
	for i := range list {
		if list[i].ID == entryID {
			r.byFlight[flightID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// ListByFlight returns a snapshot of a flight's queue in insertion
// order.
func (r *WaitingListRepo) ListByFlight(flightID string) []model.WaitingListEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.WaitingListEntry, len(r.byFlight[flightID]))
	copy(out, r.byFlight[flightID])
	return out
}

// Flights returns the ids of flights with a non-empty queue.
func (r *WaitingListRepo) Flights() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byFlight))
	for id, list := range r.byFlight {
		if len(list) > 0 {
			out = append(out, id)
		}
	}
	return out
}

// CountByFlight returns the queue length for a flight.
func (r *WaitingListRepo) CountByFlight(flightID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byFlight[flightID])
}
