package model

import "time"

// SeatClass is the cabin tier of a seat.  Classes are assigned once at
// catalog seeding by row range (rows 1–2 FIRST, rows 3–8 BUSINESS, the
// remainder ECONOMY) and never change afterwards.
type SeatClass string

const (
	SeatClassEconomy  SeatClass = "ECONOMY"
	SeatClassBusiness SeatClass = "BUSINESS"
	SeatClassFirst    SeatClass = "FIRST"
)

// SeatStatus is the lifecycle state of a seat for its flight.
// AVAILABLE → RESERVED → {AVAILABLE | BOOKED}; BOOKED is terminal.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatReserved  SeatStatus = "RESERVED"
	SeatBooked    SeatStatus = "BOOKED"
)

// Seat describes a single seat on a flight.  Seat status must stay
// consistent with the owning Flight's counters; both are updated
// together by the booking engine.  While RESERVED, ReservedBy and
// ReservedUntil record who holds the seat and until when.
//
// Fields:
//  ID            – seat label within the flight (e.g. "12C").
//  FlightID      – owning flight.
//  Row           – row number, 1-based.
//  Letter        – seat letter within the row (A–F).
//  Class         – cabin tier, fixed at seeding.
//  Status        – AVAILABLE, RESERVED or BOOKED.
//  ReservedBy    – passenger holding the seat (empty unless RESERVED).
//  ReservedUntil – hold deadline (zero unless RESERVED).
type Seat struct {
	ID            string
	FlightID      string
	Row           int
	Letter        string
	Class         SeatClass
	Status        SeatStatus
	ReservedBy    string
	ReservedUntil time.Time
	CreatedAt     time.Time
}
