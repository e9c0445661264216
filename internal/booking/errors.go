// Package booking implements the seat allocation engine: timed seat
// holds with automatic expiry, the per-flight waiting list with
// priority-ordered promotion, and the booking ledger glue.  All state
// lives in injected stores; every mutation that touches more than one
// entity for a flight runs inside that flight's critical section.
package booking

import "errors"

// ErrSeatUnavailable is returned when a hold targets a seat that is not
// currently AVAILABLE.  Losing a race for a seat is an expected
// outcome; callers recover by offering another seat.
var ErrSeatUnavailable = errors.New("seat unavailable")

// ErrOfferExpired is returned when a waiting-list offer is accepted
// after its response deadline, or when the entry has no active offer.
// The entry has already been dropped (or never promoted); the passenger
// must rejoin the queue.
var ErrOfferExpired = errors.New("offer no longer valid")

// ErrLateConfirmation is returned when a successful payment
// confirmation arrives after the sweeper already expired the hold.
// Money may have been captured for a seat that is no longer held, so
// this is never folded into a generic failure: it is logged at CRITICAL
// and surfaced distinctly for manual reconciliation.
var ErrLateConfirmation = errors.New("payment confirmed after hold expired")
