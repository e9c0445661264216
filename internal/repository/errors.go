// Package repository provides the per-entity stores backing the booking
// engine.  The default implementations are in-memory maps guarded by
// their own mutexes; the mutexes only protect map integrity — the
// cross-entity atomicity the engine needs (seat + counters +
// reservation + waiting list together) is provided by the engine's
// per-flight critical sections, not here.
//
// Sentinel errors below let higher layers distinguish failure
// scenarios with errors.Is and map them to HTTP statuses.
package repository

import "errors"

// ErrFlightNotFound is returned when a flight id is unknown.
var ErrFlightNotFound = errors.New("flight not found")

// ErrSeatNotFound is returned when a seat id is unknown for a flight.
var ErrSeatNotFound = errors.New("seat not found")

// ErrReservationNotFound is returned when a reservation id is unknown.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrBookingNotFound is returned when neither a booking id nor a
// booking reference matches a ledger record.
var ErrBookingNotFound = errors.New("booking not found")

// ErrEntryNotFound is returned when a waiting-list entry id is unknown.
var ErrEntryNotFound = errors.New("waiting list entry not found")
