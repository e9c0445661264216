package model

import "time"

// FlightStatus describes the seat availability of a flight as shown to
// customers.  It is never stored: Flight.Status() derives it from the
// available-seat counter so the two can never disagree.
type FlightStatus string

const (
	FlightSeatsAvailable FlightStatus = "SEATS_AVAILABLE" // more than 10 seats free
	FlightLimitedSeats   FlightStatus = "LIMITED_SEATS"   // between 1 and 10 seats free
	FlightFullyBooked    FlightStatus = "FULLY_BOOKED"    // no seats free
)

// PriceTable holds the per-class fares of a flight in cents.
type PriceTable struct {
	EconomyCents    uint32 // fare for ECONOMY seats
	BusinessCents   uint32 // fare for BUSINESS seats
	FirstClassCents uint32 // fare for FIRST seats
}

// ByClass returns the fare for the given seat class.
func (p PriceTable) ByClass(class SeatClass) uint32 {
	switch class {
	case SeatClassFirst:
		return p.FirstClassCents
	case SeatClassBusiness:
		return p.BusinessCents
	default:
		return p.EconomyCents
	}
}

// Flight represents a scheduled flight together with its aggregate seat
// counters.  The three derived counters must always satisfy
// Available + Reserved + Booked == TotalSeats; they are mutated only by
// the booking engine inside the flight's critical section, never by
// handlers or repositories directly.
//
// Fields:
//  ID             – catalog identifier (e.g. "FL001").
//  Number         – public flight number (e.g. "AP123").
//  Origin         – departure airport / city.
//  Destination    – arrival airport / city.
//  DepartureAt    – scheduled departure time (UTC).
//  ArrivalAt      – scheduled arrival time (UTC).
//  TotalSeats     – fixed seat count set at catalog seeding.
//  AvailableSeats – seats currently AVAILABLE.
//  ReservedSeats  – seats currently under an active hold.
//  BookedSeats    – seats with a confirmed booking (sticky).
//  Price          – per-class fares.
type Flight struct {
	ID             string
	Number         string
	Origin         string
	Destination    string
	DepartureAt    time.Time
	ArrivalAt      time.Time
	TotalSeats     int
	AvailableSeats int
	ReservedSeats  int
	BookedSeats    int
	Price          PriceTable
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Status derives the customer-facing availability band from the
// available-seat counter.
func (f *Flight) Status() FlightStatus {
	switch {
	case f.AvailableSeats > 10:
		return FlightSeatsAvailable
	case f.AvailableSeats > 0:
		return FlightLimitedSeats
	default:
		return FlightFullyBooked
	}
}
