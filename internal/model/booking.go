package model

import "time"

// Booking is the terminal, immutable record of a paid seat.  It is
// created only by a successful payment confirmation and never mutated
// afterwards.  Reference is the human-readable code quoted by the
// passenger (looked up case-insensitively); PriceCents is resolved from
// the flight's price table by the class of the seat actually held.
type Booking struct {
	ID          string
	Reference   string
	FlightID    string
	SeatID      string
	Passenger   Passenger
	SeatClass   SeatClass
	PriceCents  uint32
	ReservedAt  time.Time
	ConfirmedAt time.Time
}
