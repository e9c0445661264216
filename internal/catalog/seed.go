// Package catalog seeds the flight and seat stores.  In production the
// data would come from an external schedule feed; the engine only
// assumes the stores are populated before it starts.
package catalog

import (
	"strconv"
	"time"

	"github.com/nasirisan/AirlinePro-sub000/internal/booking"
	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

var seatLetters = []string{"A", "B", "C", "D", "E", "F"}

// ClassForRow applies the cabin layout policy: rows 1–2 are FIRST,
// rows 3–8 BUSINESS, everything behind row 8 ECONOMY.
func ClassForRow(row int) model.SeatClass {
	switch {
	case row <= 2:
		return model.SeatClassFirst
	case row <= 8:
		return model.SeatClassBusiness
	default:
		return model.SeatClassEconomy
	}
}

// Seats generates the seat grid for a flight: six seats per row
// lettered A–F, classes assigned by row.  A total that is not a
// multiple of six leaves the last row partially filled.
func Seats(f model.Flight, now time.Time) []model.Seat {
	seats := make([]model.Seat, 0, f.TotalSeats)
	for i := 0; i < f.TotalSeats; i++ {
		row := i/len(seatLetters) + 1
		letter := seatLetters[i%len(seatLetters)]
		seats = append(seats, model.Seat{
			ID:        seatID(row, letter),
			FlightID:  f.ID,
			Row:       row,
			Letter:    letter,
			Class:     ClassForRow(row),
			Status:    model.SeatAvailable,
			CreatedAt: now,
		})
	}
	return seats
}

func seatID(row int, letter string) string {
	// "1A" .. "30F"
	return strconv.Itoa(row) + letter
}

// SampleFlights returns the demo schedule used when no external feed is
// configured.
func SampleFlights(now time.Time) []model.Flight {
	flights := []model.Flight{
		{
			ID:          "FL001",
			Number:      "AP123",
			Origin:      "New York (JFK)",
			Destination: "Los Angeles (LAX)",
			DepartureAt: now.Add(24 * time.Hour),
			ArrivalAt:   now.Add(30 * time.Hour),
			TotalSeats:  180,
			Price:       model.PriceTable{EconomyCents: 15000, BusinessCents: 38000, FirstClassCents: 72000},
		},
		{
			ID:          "FL002",
			Number:      "AP456",
			Origin:      "Chicago (ORD)",
			Destination: "Miami (MIA)",
			DepartureAt: now.Add(48 * time.Hour),
			ArrivalAt:   now.Add(52 * time.Hour),
			TotalSeats:  150,
			Price:       model.PriceTable{EconomyCents: 20000, BusinessCents: 45000, FirstClassCents: 88000},
		},
		{
			ID:          "FL003",
			Number:      "AP789",
			Origin:      "San Francisco (SFO)",
			Destination: "Seattle (SEA)",
			DepartureAt: now.Add(12 * time.Hour),
			ArrivalAt:   now.Add(14 * time.Hour),
			TotalSeats:  210,
			Price:       model.PriceTable{EconomyCents: 12000, BusinessCents: 30000, FirstClassCents: 60000},
		},
	}
	for i := range flights {
		flights[i].AvailableSeats = flights[i].TotalSeats
		flights[i].CreatedAt = now
		flights[i].UpdatedAt = now
	}
	return flights
}

// Seed writes flights and their generated seat grids into the stores.
func Seed(flightStore booking.FlightStore, seatStore booking.SeatStore, flights []model.Flight, now time.Time) {
	for _, f := range flights {
		flightStore.Save(f)
		for _, s := range Seats(f, now) {
			seatStore.Save(s)
		}
	}
}
