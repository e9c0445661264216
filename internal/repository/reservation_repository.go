package repository

import (
	"sync"
	"time"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// ReservationRepo is the in-memory reservation store.  Reservations are
// kept after they reach a terminal state: the engine needs to tell a
// late payment confirmation on an EXPIRED hold apart from a retry on an
// already-confirmed one, and that distinction requires the tombstone.
type ReservationRepo struct {
	mu           sync.RWMutex
	reservations map[string]model.Reservation
}

// NewReservationRepo returns an empty in-memory reservation store.
func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{reservations: make(map[string]model.Reservation)}
}

// Get returns the reservation with the given id or ErrReservationNotFound.
func (r *ReservationRepo) Get(id string) (model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.reservations[id]
	if !ok {
		return model.Reservation{}, ErrReservationNotFound
	}
	return res, nil
}

// Save inserts or replaces a reservation record.
func (r *ReservationRepo) Save(res model.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations[res.ID] = res
}

// ActiveDue returns all RESERVED reservations whose deadline is at or
// before now.  The result is unordered.
func (r *ReservationRepo) ActiveDue(now time.Time) []model.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var due []model.Reservation
	for _, res := range r.reservations {
		if res.Status == model.ReservationReserved && !res.ExpiresAt.After(now) {
			due = append(due, res)
		}
	}
	return due
}
