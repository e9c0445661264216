package repository

import (
	"strings"
	"sync"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// BookingRepo is the in-memory booking ledger.  The ledger is strictly
// append-only: records are never updated or removed once written.
type BookingRepo struct {
	mu      sync.RWMutex
	byID    map[string]model.Booking
	byRef   map[string]string // upper-cased reference -> booking id
	ordered []string          // ids in append order
}

// NewBookingRepo returns an empty in-memory booking ledger.
func NewBookingRepo() *BookingRepo {
	return &BookingRepo{
		byID:  make(map[string]model.Booking),
		byRef: make(map[string]string),
	}
}

// Append writes a finalized booking to the ledger.
func (r *BookingRepo) Append(b model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[b.ID] = b
	r.byRef[strings.ToUpper(b.Reference)] = b.ID
	r.ordered = append(r.ordered, b.ID)
	return nil
}

// GetByID returns a booking by id or ErrBookingNotFound.
func (r *BookingRepo) GetByID(id string) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// FindByReference looks a booking up by its reference code.  The match
// is exact but case-insensitive.
func (r *BookingRepo) FindByReference(ref string) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byRef[strings.ToUpper(strings.TrimSpace(ref))]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return r.byID[id], nil
}
