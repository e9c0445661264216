package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

func seedFlights(r *FlightRepo) {
	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	r.Save(model.Flight{ID: "FL1", Origin: "New York (JFK)", Destination: "Los Angeles (LAX)", DepartureAt: day})
	r.Save(model.Flight{ID: "FL2", Origin: "New York (JFK)", Destination: "Miami (MIA)", DepartureAt: day.Add(26 * time.Hour)})
	r.Save(model.Flight{ID: "FL3", Origin: "Chicago (ORD)", Destination: "Los Angeles (LAX)", DepartureAt: day})
}

func TestFlightSearchByAirportCode(t *testing.T) {
	r := NewFlightRepo()
	seedFlights(r)

	got := r.Search("jfk", "", time.Time{})
	require.Len(t, got, 2)
	assert.Equal(t, "FL1", got[0].ID)
	assert.Equal(t, "FL2", got[1].ID)

	got = r.Search("JFK", "lax", time.Time{})
	require.Len(t, got, 1)
	assert.Equal(t, "FL1", got[0].ID)
}

func TestFlightSearchByDepartureDay(t *testing.T) {
	r := NewFlightRepo()
	seedFlights(r)

	// Any moment on the day matches, time of day is ignored.
	got := r.Search("", "", time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC))
	require.Len(t, got, 2)
	assert.Equal(t, "FL1", got[0].ID)
	assert.Equal(t, "FL3", got[1].ID)

	assert.Empty(t, r.Search("", "", time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestFlightSearchEmptyCriteriaMatchesAll(t *testing.T) {
	r := NewFlightRepo()
	seedFlights(r)
	assert.Len(t, r.Search("", "", time.Time{}), 3)
}

func TestFlightGetByIDMissing(t *testing.T) {
	r := NewFlightRepo()
	_, err := r.GetByID("FL404")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}
