package model

import "time"

// ReservationStatus tracks the state machine of a timed seat hold:
// RESERVED → {CONFIRMED | EXPIRED | PAYMENT_FAILED}.  All three
// right-hand states are terminal; only RESERVED reservations count as
// active.  Terminal reservations are kept so that a confirmation
// arriving after the sweeper already expired the hold can be detected
// and escalated instead of silently re-booking the seat.
type ReservationStatus string

const (
	ReservationReserved      ReservationStatus = "RESERVED"
	ReservationConfirmed     ReservationStatus = "CONFIRMED"
	ReservationExpired       ReservationStatus = "EXPIRED"
	ReservationPaymentFailed ReservationStatus = "PAYMENT_FAILED"
)

// Terminal reports whether no further transition can occur.
func (s ReservationStatus) Terminal() bool {
	return s != ReservationReserved
}

// Reservation is a timed hold binding one passenger to one seat on one
// flight while payment is in flight.  ExpiresAt is ReservedAt plus the
// configured hold duration (10 minutes by default); holds past that
// deadline are released by the expiry sweeper.
type Reservation struct {
	ID         string
	FlightID   string
	SeatID     string
	Passenger  Passenger
	ReservedAt time.Time
	ExpiresAt  time.Time
	Status     ReservationStatus
}
