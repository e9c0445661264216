package booking

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// Join appends a passenger to a flight's waiting list.  Position is the
// queue length at join time — an informational snapshot that is never
// recomputed as the queue reorders by priority.
func (e *Engine) Join(flightID string, p model.Passenger, class model.SeatClass) (model.WaitingListEntry, error) {
	lock := e.locks.get(flightID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := e.stores.Flights.GetByID(flightID); err != nil {
		return model.WaitingListEntry{}, err
	}
	entry := model.WaitingListEntry{
		ID:        uuid.NewString(),
		FlightID:  flightID,
		Passenger: p,
		Class:     class,
		JoinedAt:  e.now(),
		Position:  e.stores.WaitingList.CountByFlight(flightID) + 1,
	}
	e.stores.WaitingList.Append(entry)
	e.logInfo("Joined waiting list", flightID,
		fmt.Sprintf("passenger %s class %s position %d", p.ID, class, entry.Position))
	return entry, nil
}

// Promote offers a freed seat to the highest-priority waiting
// passenger.  It is a no-op when the flight has no available seats or
// no un-notified entries.  The seat is NOT reserved yet: it stays
// available until the passenger accepts, so a walk-up customer can
// still take it in the meantime (Accept re-checks, defensively).
func (e *Engine) Promote(flightID string) {
	lock := e.locks.get(flightID)
	lock.Lock()
	defer lock.Unlock()
	e.promoteLocked(flightID)
}

// promoteLocked assumes the flight lock is held.  Called directly where
// a seat was freed inside an already-held critical section, so the
// freed seat is guaranteed visible to the promotion.
func (e *Engine) promoteLocked(flightID string) {
	f, err := e.stores.Flights.GetByID(flightID)
	if err != nil || f.AvailableSeats == 0 {
		return
	}
	candidates := make([]model.WaitingListEntry, 0)
	for _, entry := range e.stores.WaitingList.ListByFlight(flightID) {
		if !entry.Notified {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		return
	}
	// Recompute the order on every promotion: priority descending,
	// join time ascending within equal priority.  Stable sort keeps
	// insertion order for identical (priority, joinedAt) pairs.
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := candidates[i].Priority(), candidates[j].Priority()
		if pi != pj {
			return pi > pj
		}
		return candidates[i].JoinedAt.Before(candidates[j].JoinedAt)
	})

	top := candidates[0]
	now := e.now()
	top.Notified = true
	top.NotifiedAt = now
	top.NotificationExpiresAt = now.Add(e.offerTTL)
	e.stores.WaitingList.Update(top)
	e.logInfo("Passenger notified", flightID,
		fmt.Sprintf("passenger %s offered a seat, response due %s",
			top.Passenger.ID, top.NotificationExpiresAt.Format("15:04:05")))
}

// Accept converts an active offer into a seat hold.  The entry must
// exist, belong to the flight, be notified, and its response deadline
// must not have passed; otherwise ErrOfferExpired (the sweeper may have
// dropped it already).  The engine prefers an available seat of the
// requested class and falls back to any available seat — the booking
// price always follows the seat actually held.  With no seat left
// (lost to a walk-up customer) it returns ErrSeatUnavailable and the
// entry stays queued.
func (e *Engine) Accept(entryID, flightID string) (model.Reservation, error) {
	lock := e.locks.get(flightID)
	lock.Lock()
	defer lock.Unlock()

	entry, err := e.stores.WaitingList.Get(entryID)
	if err != nil || entry.FlightID != flightID {
		return model.Reservation{}, ErrOfferExpired
	}
	if !entry.Notified || !entry.NotificationExpiresAt.After(e.now()) {
		return model.Reservation{}, ErrOfferExpired
	}

	seatID := e.pickSeatLocked(flightID, entry.Class)
	if seatID == "" {
		return model.Reservation{}, ErrSeatUnavailable
	}
	res, err := e.holdLocked(flightID, seatID, entry.Passenger)
	if err != nil {
		return model.Reservation{}, err
	}
	e.stores.WaitingList.Remove(entry.ID)
	e.logInfo("Waiting list offer accepted", flightID,
		fmt.Sprintf("passenger %s holds seat %s", entry.Passenger.ID, seatID))
	return res, nil
}

// pickSeatLocked selects an available seat, class match first.
func (e *Engine) pickSeatLocked(flightID string, class model.SeatClass) string {
	fallback := ""
	for _, s := range e.stores.Seats.ListByFlight(flightID) {
		if s.Status != model.SeatAvailable {
			continue
		}
		if s.Class == class {
			return s.ID
		}
		if fallback == "" {
			fallback = s.ID
		}
	}
	return fallback
}

// ExpireOffers drops every notified entry whose response deadline has
// passed and returns the distinct flight ids affected so the sweeper
// can promote the next-highest waiter on each.  Dropped passengers must
// rejoin explicitly; they are not re-queued.
func (e *Engine) ExpireOffers() []string {
	var affected []string
	for _, flightID := range e.stores.WaitingList.Flights() {
		lock := e.locks.get(flightID)
		lock.Lock()
		dropped := 0
		for _, entry := range e.stores.WaitingList.ListByFlight(flightID) {
			if !entry.Notified || entry.NotificationExpiresAt.After(e.now()) {
				continue
			}
			e.stores.WaitingList.Remove(entry.ID)
			e.logInfo("Waiting list offer expired", flightID,
				fmt.Sprintf("passenger %s did not respond in time, dropped from queue", entry.Passenger.ID))
			dropped++
		}
		lock.Unlock()
		if dropped > 0 {
			affected = append(affected, flightID)
		}
	}
	return affected
}
