package repository

import (
	"sort"
	"sync"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// SeatRepo is the in-memory seat store.  Seats are keyed by flight and
// seat id; they are created once at catalog seeding and never removed.
type SeatRepo struct {
	mu    sync.RWMutex
	seats map[string]map[string]model.Seat // flight id -> seat id -> seat
}

// NewSeatRepo returns an empty in-memory seat store.
func NewSeatRepo() *SeatRepo {
	return &SeatRepo{seats: make(map[string]map[string]model.Seat)}
}

// Get returns one seat or ErrSeatNotFound.
func (r *SeatRepo) Get(flightID, seatID string) (model.Seat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.seats[flightID][seatID]
	if !ok {
		return model.Seat{}, ErrSeatNotFound
	}
	return s, nil
}

// Save inserts or replaces a seat record.
func (r *SeatRepo) Save(s model.Seat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byID, ok := r.seats[s.FlightID]
	if !ok {
		byID = make(map[string]model.Seat)
		r.seats[s.FlightID] = byID
	}
	byID[s.ID] = s
}

// ListByFlight returns a snapshot of a flight's seats ordered by row
// and letter.
func (r *SeatRepo) ListByFlight(flightID string) []model.Seat {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Seat, 0, len(r.seats[flightID]))
	for _, s := range r.seats[flightID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Letter < out[j].Letter
	})
	return out
}
