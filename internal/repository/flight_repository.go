package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// FlightRepo is the in-memory flight store.  Values are stored and
// returned by copy so that readers outside the engine's critical
// sections never observe a half-applied counter update.
type FlightRepo struct {
	mu      sync.RWMutex
	flights map[string]model.Flight
}

// NewFlightRepo returns an empty in-memory flight store.
func NewFlightRepo() *FlightRepo {
	return &FlightRepo{flights: make(map[string]model.Flight)}
}

// GetByID returns the flight with the given id or ErrFlightNotFound.
func (r *FlightRepo) GetByID(id string) (model.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.flights[id]
	if !ok {
		return model.Flight{}, ErrFlightNotFound
	}
	return f, nil
}

// Save inserts or replaces a flight record.
func (r *FlightRepo) Save(f model.Flight) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flights[f.ID] = f
}

// List returns all flights ordered by id.
func (r *FlightRepo) List() []model.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Search filters flights by origin, destination and departure date.
// Empty criteria match everything; origin/destination matching is a
// case-insensitive substring match so "JFK" finds "New York (JFK)".
// A non-zero date matches flights departing on that calendar day (UTC).
func (r *FlightRepo) Search(from, to string, date time.Time) []model.Flight {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))

	out := make([]model.Flight, 0)
	for _, f := range r.List() {
		if from != "" && !strings.Contains(strings.ToLower(f.Origin), from) {
			continue
		}
		if to != "" && !strings.Contains(strings.ToLower(f.Destination), to) {
			continue
		}
		if !date.IsZero() {
			y1, m1, d1 := f.DepartureAt.UTC().Date()
			y2, m2, d2 := date.UTC().Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		out = append(out, f)
	}
	return out
}
