package booking

import (
	"fmt"
	"time"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// Seat inventory transitions.  Every function here mutates a seat and
// the owning flight's counters together and must be called with the
// flight's lock held; the exported snapshot read is lock-free because
// stores return copies.

// reserveSeatLocked transitions a seat AVAILABLE → RESERVED and moves
// one unit from the flight's available to its reserved counter.
// Exactly one of any set of concurrent callers for the same seat wins,
// by construction of the flight critical section; the rest get
// ErrSeatUnavailable.
func (e *Engine) reserveSeatLocked(flightID, seatID, passengerID string, until time.Time) error {
	seat, err := e.stores.Seats.Get(flightID, seatID)
	if err != nil {
		return err
	}
	if seat.Status != model.SeatAvailable {
		return ErrSeatUnavailable
	}
	seat.Status = model.SeatReserved
	seat.ReservedBy = passengerID
	seat.ReservedUntil = until
	e.stores.Seats.Save(seat)
	return e.adjustCountersLocked(flightID, -1, +1, 0)
}

// releaseSeatLocked transitions a seat RESERVED → AVAILABLE.  Calling
// it on a seat that is not RESERVED is a defensive no-op error; the
// counters are left untouched.
func (e *Engine) releaseSeatLocked(flightID, seatID string) error {
	seat, err := e.stores.Seats.Get(flightID, seatID)
	if err != nil {
		return err
	}
	if seat.Status != model.SeatReserved {
		return fmt.Errorf("release: seat %s/%s is %s, not reserved", flightID, seatID, seat.Status)
	}
	seat.Status = model.SeatAvailable
	seat.ReservedBy = ""
	seat.ReservedUntil = time.Time{}
	e.stores.Seats.Save(seat)
	return e.adjustCountersLocked(flightID, +1, -1, 0)
}

// bookSeatLocked transitions a seat RESERVED → BOOKED.  BOOKED is
// sticky: no transition leads out of it.
func (e *Engine) bookSeatLocked(flightID, seatID string) error {
	seat, err := e.stores.Seats.Get(flightID, seatID)
	if err != nil {
		return err
	}
	if seat.Status != model.SeatReserved {
		return fmt.Errorf("book: seat %s/%s is %s, not reserved", flightID, seatID, seat.Status)
	}
	seat.Status = model.SeatBooked
	seat.ReservedBy = ""
	seat.ReservedUntil = time.Time{}
	e.stores.Seats.Save(seat)
	return e.adjustCountersLocked(flightID, 0, -1, +1)
}

// adjustCountersLocked applies a counter delta to the flight.  The
// deltas always sum to zero, preserving
// available + reserved + booked == total.
func (e *Engine) adjustCountersLocked(flightID string, dAvail, dReserved, dBooked int) error {
	f, err := e.stores.Flights.GetByID(flightID)
	if err != nil {
		return err
	}
	f.AvailableSeats += dAvail
	f.ReservedSeats += dReserved
	f.BookedSeats += dBooked
	f.UpdatedAt = e.now()
	e.stores.Flights.Save(f)
	return nil
}

// ListSeats returns a read-only snapshot of a flight's seats.
func (e *Engine) ListSeats(flightID string) ([]model.Seat, error) {
	if _, err := e.stores.Flights.GetByID(flightID); err != nil {
		return nil, err
	}
	return e.stores.Seats.ListByFlight(flightID), nil
}
