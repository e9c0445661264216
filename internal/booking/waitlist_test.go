package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasirisan/AirlinePro-sub000/internal/booking"
	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// fillFlight reserves every seat on FL100 and returns the reservations
// in seat order.
func fillFlight(t *testing.T, fx *fixture, seatIDs []string) []model.Reservation {
	t.Helper()
	held := make([]model.Reservation, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		res, err := fx.engine.Hold("FL100", seatID, pax("holder-"+seatID, model.TierNormal))
		require.NoError(t, err)
		held = append(held, res)
	}
	f, err := fx.engine.GetFlightByID("FL100")
	require.NoError(t, err)
	require.Equal(t, 0, f.AvailableSeats)
	return held
}

var firstRowSeats = []string{"1A", "1B", "1C", "1D", "1E", "1F"}

func TestJoinAssignsHistoricalPosition(t *testing.T) {
	fx := newFixture(t, 6)
	fillFlight(t, fx, firstRowSeats)

	e1, err := fx.engine.Join("FL100", pax("w1", model.TierNormal), model.SeatClassEconomy)
	require.NoError(t, err)
	e2, err := fx.engine.Join("FL100", pax("w2", model.TierVIP), model.SeatClassEconomy)
	require.NoError(t, err)

	assert.Equal(t, 1, e1.Position)
	assert.Equal(t, 2, e2.Position)

	_, err = fx.engine.Join("no-such-flight", pax("w3", model.TierNormal), model.SeatClassEconomy)
	assert.Error(t, err)
}

func TestPromotionFollowsPriorityNotArrival(t *testing.T) {
	fx := newFixture(t, 6)
	held := fillFlight(t, fx, firstRowSeats)

	// Arrival order is deliberately the reverse of priority order:
	//   economy/normal (1)  <  business/normal (2)  <  economy/VIP (11)
	_, err := fx.engine.Join("FL100", pax("econ-normal", model.TierNormal), model.SeatClassEconomy)
	require.NoError(t, err)
	fx.clk.Add(time.Minute)
	_, err = fx.engine.Join("FL100", pax("biz-normal", model.TierNormal), model.SeatClassBusiness)
	require.NoError(t, err)
	fx.clk.Add(time.Minute)
	_, err = fx.engine.Join("FL100", pax("econ-vip", model.TierVIP), model.SeatClassEconomy)
	require.NoError(t, err)

	// Free one seat; the failed payment promotes in the same step.
	_, err = fx.engine.Confirm(held[0].ID, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"econ-vip", "biz-normal", "econ-normal"}, notifiedCascade(t, fx))
}

func TestPromotionBreaksTiesFIFO(t *testing.T) {
	fx := newFixture(t, 6)
	fillFlight(t, fx, firstRowSeats)

	_, err := fx.engine.Join("FL100", pax("early", model.TierNormal), model.SeatClassEconomy)
	require.NoError(t, err)
	fx.clk.Add(time.Second)
	_, err = fx.engine.Join("FL100", pax("late", model.TierNormal), model.SeatClassEconomy)
	require.NoError(t, err)

	// Expire a hold so a seat frees up, then promote.
	fx.clk.Add(11 * time.Minute)
	require.NotEmpty(t, fx.engine.ExpireDue())
	fx.engine.Promote("FL100")

	entries := fx.waiting.ListByFlight("FL100")
	require.Len(t, entries, 2)
	for _, entry := range entries {
		if entry.Passenger.ID == "early" {
			assert.True(t, entry.Notified, "earlier joiner wins the tie")
		} else {
			assert.False(t, entry.Notified)
		}
	}
}

// notifiedCascade repeatedly expires the current offer and promotes the
// next waiter, returning passenger ids in notification order.
func notifiedCascade(t *testing.T, fx *fixture) []string {
	t.Helper()
	var order []string
	for i := 0; i < 3; i++ {
		var current string
		for _, entry := range fx.waiting.ListByFlight("FL100") {
			if entry.Notified {
				require.Empty(t, current, "at most one live offer per flight")
				current = entry.Passenger.ID
			}
		}
		require.NotEmpty(t, current)
		order = append(order, current)

		fx.clk.Add(5 * time.Minute)
		affected := fx.engine.ExpireOffers()
		require.Equal(t, []string{"FL100"}, affected)
		fx.engine.Promote("FL100")
	}
	return order
}

func TestOfferTimeoutDropsEntryAndCascades(t *testing.T) {
	fx := newFixture(t, 6)
	held := fillFlight(t, fx, firstRowSeats)

	silent, err := fx.engine.Join("FL100", pax("silent", model.TierVIP), model.SeatClassFirst)
	require.NoError(t, err)
	_, err = fx.engine.Join("FL100", pax("next", model.TierNormal), model.SeatClassFirst)
	require.NoError(t, err)

	_, err = fx.engine.Confirm(held[0].ID, false)
	require.NoError(t, err)

	// One minute before the deadline nothing expires.
	fx.clk.Add(4 * time.Minute)
	assert.Empty(t, fx.engine.ExpireOffers())

	fx.clk.Add(time.Minute)
	assert.Equal(t, []string{"FL100"}, fx.engine.ExpireOffers())

	// The silent passenger is gone for good, not re-queued.
	_, err = fx.waiting.Get(silent.ID)
	assert.Error(t, err)
	_, err = fx.engine.Accept(silent.ID, "FL100")
	assert.ErrorIs(t, err, booking.ErrOfferExpired)

	fx.engine.Promote("FL100")
	entries := fx.waiting.ListByFlight("FL100")
	require.Len(t, entries, 1)
	assert.Equal(t, "next", entries[0].Passenger.ID)
	assert.True(t, entries[0].Notified)
}

func TestAcceptValidatesOffer(t *testing.T) {
	fx := newFixture(t, 6)
	held := fillFlight(t, fx, firstRowSeats)

	entry, err := fx.engine.Join("FL100", pax("w1", model.TierNormal), model.SeatClassFirst)
	require.NoError(t, err)

	// Not notified yet: there is no offer to accept.
	_, err = fx.engine.Accept(entry.ID, "FL100")
	assert.ErrorIs(t, err, booking.ErrOfferExpired)

	_, err = fx.engine.Confirm(held[0].ID, false)
	require.NoError(t, err)

	// Wrong flight id does not match the entry.
	_, err = fx.engine.Accept(entry.ID, "FL999")
	assert.ErrorIs(t, err, booking.ErrOfferExpired)

	// Exactly at the deadline the offer is no longer acceptable.
	fx.clk.Add(5 * time.Minute)
	_, err = fx.engine.Accept(entry.ID, "FL100")
	assert.ErrorIs(t, err, booking.ErrOfferExpired)
}

func TestAcceptLosesRaceToWalkUpCustomer(t *testing.T) {
	fx := newFixture(t, 6)
	held := fillFlight(t, fx, firstRowSeats)

	entry, err := fx.engine.Join("FL100", pax("waiter", model.TierNormal), model.SeatClassFirst)
	require.NoError(t, err)
	_, err = fx.engine.Confirm(held[0].ID, false)
	require.NoError(t, err)

	// A walk-up customer grabs the freed seat before the waiter responds.
	_, err = fx.engine.Hold("FL100", held[0].SeatID, pax("walk-up", model.TierNormal))
	require.NoError(t, err)

	_, err = fx.engine.Accept(entry.ID, "FL100")
	assert.ErrorIs(t, err, booking.ErrSeatUnavailable)

	// The entry stays queued; once another seat frees up the same offer
	// still works within its deadline.
	_, err = fx.waiting.Get(entry.ID)
	require.NoError(t, err)
	_, err = fx.engine.Confirm(held[1].ID, false)
	require.NoError(t, err)
	res, err := fx.engine.Accept(entry.ID, "FL100")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationReserved, res.Status)
	assertInvariant(t, fx.engine, "FL100")
}

func TestAcceptPrefersRequestedClass(t *testing.T) {
	fx := newFixture(t, 60) // rows 1-2 first, 3-8 business, 9-10 economy

	// Leave exactly one business and one economy seat free.
	seats, err := fx.engine.ListSeats("FL100")
	require.NoError(t, err)
	for _, s := range seats {
		if s.ID == "3A" || s.ID == "9A" {
			continue
		}
		_, err := fx.engine.Hold("FL100", s.ID, pax("holder-"+s.ID, model.TierNormal))
		require.NoError(t, err)
	}

	entry, err := fx.engine.Join("FL100", pax("waiter", model.TierNormal), model.SeatClassEconomy)
	require.NoError(t, err)
	fx.engine.Promote("FL100")

	res, err := fx.engine.Accept(entry.ID, "FL100")
	require.NoError(t, err)
	assert.Equal(t, "9A", res.SeatID, "requested class wins over lower seat numbers")

	b, err := fx.engine.Confirm(res.ID, true)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, uint32(10000), b.PriceCents)
}

func TestAcceptFallsBackAcrossClasses(t *testing.T) {
	fx := newFixture(t, 60)

	// Only a business seat is left; the waiter asked for economy.
	seats, err := fx.engine.ListSeats("FL100")
	require.NoError(t, err)
	for _, s := range seats {
		if s.ID == "5C" {
			continue
		}
		_, err := fx.engine.Hold("FL100", s.ID, pax("holder-"+s.ID, model.TierNormal))
		require.NoError(t, err)
	}

	entry, err := fx.engine.Join("FL100", pax("waiter", model.TierNormal), model.SeatClassEconomy)
	require.NoError(t, err)
	fx.engine.Promote("FL100")

	res, err := fx.engine.Accept(entry.ID, "FL100")
	require.NoError(t, err)
	assert.Equal(t, "5C", res.SeatID)

	// Price follows the seat actually held, not the requested class.
	b, err := fx.engine.Confirm(res.ID, true)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, model.SeatClassBusiness, b.SeatClass)
	assert.Equal(t, uint32(25000), b.PriceCents)
}

// TestFullFlightLifecycle walks the whole journey: a full flight, a
// waiting passenger, a lapsed hold freeing a seat, the offer, and the
// acceptance turning into a fresh ten-minute hold.
func TestFullFlightLifecycle(t *testing.T) {
	fx := newFixture(t, 6)
	held := fillFlight(t, fx, firstRowSeats)

	entry, err := fx.engine.Join("FL100", pax("hopeful", model.TierFrequentFlyer), model.SeatClassFirst)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Position)

	// Everyone pays except the last holder, whose hold lapses.
	for _, res := range held[:5] {
		b, err := fx.engine.Confirm(res.ID, true)
		require.NoError(t, err)
		require.NotNil(t, b)
	}
	fx.clk.Add(10*time.Minute + time.Second)
	affected := fx.engine.ExpireDue()
	require.Equal(t, []string{"FL100"}, affected)
	for _, flightID := range affected {
		fx.engine.Promote(flightID)
	}

	got, err := fx.waiting.Get(entry.ID)
	require.NoError(t, err)
	require.True(t, got.Notified)
	assert.Equal(t, fx.clk.Now().UTC().Add(5*time.Minute), got.NotificationExpiresAt)

	// Three minutes later the passenger accepts, inside the window.
	fx.clk.Add(3 * time.Minute)
	res, err := fx.engine.Accept(entry.ID, "FL100")
	require.NoError(t, err)
	assert.Equal(t, held[5].SeatID, res.SeatID)
	assert.Equal(t, fx.clk.Now().UTC().Add(10*time.Minute), res.ExpiresAt)
	assertInvariant(t, fx.engine, "FL100")

	b, err := fx.engine.Confirm(res.ID, true)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, model.SeatClassFirst, b.SeatClass)

	f, err := fx.engine.GetFlightByID("FL100")
	require.NoError(t, err)
	assert.Equal(t, 6, f.BookedSeats)
	assert.Equal(t, model.FlightFullyBooked, f.Status())
	assert.Zero(t, fx.waiting.CountByFlight("FL100"))
}
