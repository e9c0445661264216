package booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// Hold places a timed hold on a seat for a passenger.  The seat must be
// AVAILABLE; on success the seat is RESERVED, the flight counters are
// updated and a reservation with ExpiresAt = now + hold TTL is
// returned.  A seat that is not available yields ErrSeatUnavailable —
// the expected outcome of losing a race for a popular seat.
func (e *Engine) Hold(flightID, seatID string, p model.Passenger) (model.Reservation, error) {
	lock := e.locks.get(flightID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := e.stores.Flights.GetByID(flightID); err != nil {
		return model.Reservation{}, err
	}
	return e.holdLocked(flightID, seatID, p)
}

// holdLocked creates the hold assuming the flight lock is held.  Shared
// by Hold and by waiting-list Accept.
func (e *Engine) holdLocked(flightID, seatID string, p model.Passenger) (model.Reservation, error) {
	now := e.now()
	expires := now.Add(e.holdTTL)
	if err := e.reserveSeatLocked(flightID, seatID, p.ID, expires); err != nil {
		return model.Reservation{}, err
	}
	res := model.Reservation{
		ID:         uuid.NewString(),
		FlightID:   flightID,
		SeatID:     seatID,
		Passenger:  p,
		ReservedAt: now,
		ExpiresAt:  expires,
		Status:     model.ReservationReserved,
	}
	e.stores.Reservations.Save(res)
	e.logInfo("Seat reserved", flightID,
		fmt.Sprintf("seat %s held for passenger %s until %s", seatID, p.ID, expires.Format("15:04:05")))
	return res, nil
}

// Confirm settles a reservation after the external payment attempt.
//
// Unknown ids and already-terminal reservations return (nil, nil): a
// payment retry must never double-book, so repeats are idempotent
// no-ops.  The one exception is a successful payment landing on a hold
// the sweeper already expired — the passenger paid for a seat no longer
// held.  That returns ErrLateConfirmation and a CRITICAL log entry so
// support can reconcile manually.
//
// With paid=true the seat is booked, a ledger record is written and the
// booking returned.  With paid=false the seat is released and the next
// waiting-list passenger is promoted; a failed payment is an expected
// outcome, not a system error.
func (e *Engine) Confirm(reservationID string, paid bool) (*model.Booking, error) {
	res, err := e.stores.Reservations.Get(reservationID)
	if err != nil {
		return nil, nil // unknown id: idempotent no-op
	}

	lock := e.locks.get(res.FlightID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; the sweeper may have expired it meanwhile.
	res, err = e.stores.Reservations.Get(reservationID)
	if err != nil {
		return nil, nil
	}
	if res.Status.Terminal() {
		if res.Status == model.ReservationExpired && paid {
			e.logCritical("Late payment confirmation", res.FlightID,
				fmt.Sprintf("reservation %s paid after expiry; manual refund required for passenger %s",
					res.ID, res.Passenger.ID))
			return nil, ErrLateConfirmation
		}
		return nil, nil
	}

	if !paid {
		if err := e.releaseSeatLocked(res.FlightID, res.SeatID); err != nil {
			return nil, err
		}
		res.Status = model.ReservationPaymentFailed
		e.stores.Reservations.Save(res)
		e.logInfo("Payment failed", res.FlightID,
			fmt.Sprintf("reservation %s released, seat %s back in inventory", res.ID, res.SeatID))
		e.promoteLocked(res.FlightID)
		return nil, nil
	}

	flight, err := e.stores.Flights.GetByID(res.FlightID)
	if err != nil {
		return nil, err
	}
	seat, err := e.stores.Seats.Get(res.FlightID, res.SeatID)
	if err != nil {
		return nil, err
	}

	booking := model.Booking{
		ID:          uuid.NewString(),
		Reference:   newReference(),
		FlightID:    res.FlightID,
		SeatID:      res.SeatID,
		Passenger:   res.Passenger,
		SeatClass:   seat.Class,
		PriceCents:  flight.Price.ByClass(seat.Class),
		ReservedAt:  res.ReservedAt,
		ConfirmedAt: e.now(),
	}
	// Write the ledger first: if it fails the reservation stays live and
	// the caller can retry the confirmation.
	if err := e.stores.Bookings.Append(booking); err != nil {
		return nil, err
	}
	if err := e.bookSeatLocked(res.FlightID, res.SeatID); err != nil {
		return nil, err
	}
	res.Status = model.ReservationConfirmed
	e.stores.Reservations.Save(res)
	e.logInfo("Booking confirmed", res.FlightID,
		fmt.Sprintf("booking %s seat %s passenger %s", booking.Reference, res.SeatID, res.Passenger.ID))
	return &booking, nil
}

// ExpireDue releases every hold whose deadline has passed and returns
// the distinct flight ids affected, so the sweeper can promote from
// each flight's waiting list exactly once per sweep.  Re-running it
// immediately is a no-op: expired reservations are terminal.
func (e *Engine) ExpireDue() []string {
	due := e.stores.Reservations.ActiveDue(e.now())
	byFlight := make(map[string][]model.Reservation)
	for _, res := range due {
		byFlight[res.FlightID] = append(byFlight[res.FlightID], res)
	}

	var affected []string
	for flightID, list := range byFlight {
		lock := e.locks.get(flightID)
		lock.Lock()
		expired := 0
		for _, res := range list {
			// Re-check under the lock; Confirm may have won the race.
			cur, err := e.stores.Reservations.Get(res.ID)
			if err != nil || cur.Status != model.ReservationReserved || cur.ExpiresAt.After(e.now()) {
				continue
			}
			if err := e.releaseSeatLocked(cur.FlightID, cur.SeatID); err != nil {
				e.logCritical("Expiry release failed", flightID,
					fmt.Sprintf("reservation %s seat %s: %v", cur.ID, cur.SeatID, err))
				continue
			}
			cur.Status = model.ReservationExpired
			e.stores.Reservations.Save(cur)
			e.logInfo("Payment timeout", flightID,
				fmt.Sprintf("reservation %s expired, seat %s released", cur.ID, cur.SeatID))
			expired++
		}
		lock.Unlock()
		if expired > 0 {
			affected = append(affected, flightID)
		}
	}
	return affected
}

// GetReservationByID returns a reservation, including terminal ones.
func (e *Engine) GetReservationByID(id string) (model.Reservation, error) {
	return e.stores.Reservations.Get(id)
}
