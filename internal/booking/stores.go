package booking

import (
	"time"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// Store interfaces consumed by the engine.  The in-memory
// implementations live in internal/repository; bookings additionally
// have a MySQL-backed implementation.  Stores are plain containers:
// they guarantee their own map integrity but no cross-entity
// atomicity — that is the engine's job via per-flight locks.

// FlightStore persists flights and their aggregate counters.
type FlightStore interface {
	GetByID(id string) (model.Flight, error)
	Save(f model.Flight)
	List() []model.Flight
	Search(from, to string, date time.Time) []model.Flight
}

// SeatStore persists per-seat state.
type SeatStore interface {
	Get(flightID, seatID string) (model.Seat, error)
	Save(s model.Seat)
	ListByFlight(flightID string) []model.Seat
}

// ReservationStore persists holds, including terminal ones.
type ReservationStore interface {
	Get(id string) (model.Reservation, error)
	Save(r model.Reservation)
	ActiveDue(now time.Time) []model.Reservation
}

// BookingStore is the append-only ledger of paid bookings.
type BookingStore interface {
	Append(b model.Booking) error
	GetByID(id string) (model.Booking, error)
	FindByReference(ref string) (model.Booking, error)
}

// WaitingListStore persists per-flight waiting queues.
type WaitingListStore interface {
	Append(e model.WaitingListEntry)
	Get(entryID string) (model.WaitingListEntry, error)
	Update(e model.WaitingListEntry)
	Remove(entryID string)
	ListByFlight(flightID string) []model.WaitingListEntry
	CountByFlight(flightID string) int
	Flights() []string
}

// SystemLog is the bounded audit trail of engine state transitions.
type SystemLog interface {
	Append(at time.Time, level model.LogLevel, event, flightID, details string) model.SystemLogEntry
	List() []model.SystemLogEntry
}

// Stores groups everything the engine needs injected.
type Stores struct {
	Flights      FlightStore
	Seats        SeatStore
	Reservations ReservationStore
	Bookings     BookingStore
	WaitingList  WaitingListStore
	Log          SystemLog
}
