package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
	"github.com/nasirisan/AirlinePro-sub000/internal/repository"
)

func TestClassForRow(t *testing.T) {
	assert.Equal(t, model.SeatClassFirst, ClassForRow(1))
	assert.Equal(t, model.SeatClassFirst, ClassForRow(2))
	assert.Equal(t, model.SeatClassBusiness, ClassForRow(3))
	assert.Equal(t, model.SeatClassBusiness, ClassForRow(8))
	assert.Equal(t, model.SeatClassEconomy, ClassForRow(9))
	assert.Equal(t, model.SeatClassEconomy, ClassForRow(30))
}

func TestSeatsGrid(t *testing.T) {
	now := time.Now().UTC()
	seats := Seats(model.Flight{ID: "FL1", TotalSeats: 180}, now)
	require.Len(t, seats, 180)

	assert.Equal(t, "1A", seats[0].ID)
	assert.Equal(t, "1F", seats[5].ID)
	assert.Equal(t, "2A", seats[6].ID)
	assert.Equal(t, "30F", seats[179].ID)

	var first, business, economy int
	for _, s := range seats {
		require.Equal(t, model.SeatAvailable, s.Status)
		require.Equal(t, "FL1", s.FlightID)
		switch s.Class {
		case model.SeatClassFirst:
			first++
		case model.SeatClassBusiness:
			business++
		case model.SeatClassEconomy:
			economy++
		}
	}
	assert.Equal(t, 12, first)    // rows 1-2
	assert.Equal(t, 36, business) // rows 3-8
	assert.Equal(t, 132, economy) // rows 9-30
}

func TestSeatsPartialLastRow(t *testing.T) {
	seats := Seats(model.Flight{ID: "FL1", TotalSeats: 8}, time.Now().UTC())
	require.Len(t, seats, 8)
	assert.Equal(t, "2B", seats[7].ID)
}

func TestSeedPopulatesStores(t *testing.T) {
	flights := repository.NewFlightRepo()
	seats := repository.NewSeatRepo()
	now := time.Now().UTC()

	Seed(flights, seats, SampleFlights(now), now)

	all := flights.List()
	require.Len(t, all, 3)
	for _, f := range all {
		assert.Equal(t, f.TotalSeats, f.AvailableSeats, "flight %s starts fully available", f.ID)
		assert.Zero(t, f.ReservedSeats)
		assert.Zero(t, f.BookedSeats)
		assert.Len(t, seats.ListByFlight(f.ID), f.TotalSeats)
	}
}
