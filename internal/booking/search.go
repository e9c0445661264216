package booking

import (
	"time"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// Read-side facade.  Everything here is lock-free: stores return
// copies, and single-entity reads do not need the flight critical
// section.

// SearchFlights filters the catalog by origin, destination and
// departure date.  Empty criteria match everything.
func (e *Engine) SearchFlights(from, to string, date time.Time) []model.Flight {
	return e.stores.Flights.Search(from, to, date)
}

// GetFlightByID returns one flight with its current counters.
func (e *Engine) GetFlightByID(id string) (model.Flight, error) {
	return e.stores.Flights.GetByID(id)
}

// GetBookingByID returns a ledger record by id.
func (e *Engine) GetBookingByID(id string) (model.Booking, error) {
	return e.stores.Bookings.GetByID(id)
}

// FindBookingByReference returns a ledger record by its reference code,
// matched case-insensitively.
func (e *Engine) FindBookingByReference(ref string) (model.Booking, error) {
	return e.stores.Bookings.FindByReference(ref)
}

// SystemLogs returns the retained audit trail, oldest first.
func (e *Engine) SystemLogs() []model.SystemLogEntry {
	return e.stores.Log.List()
}

// FlightStats is the read-only aggregate view exposed to the admin
// surface.
type FlightStats struct {
	FlightID        string
	Status          model.FlightStatus
	TotalSeats      int
	AvailableSeats  int
	ReservedSeats   int
	BookedSeats     int
	WaitingListSize int
}

// Stats returns a flight's aggregate counters and queue length.
func (e *Engine) Stats(flightID string) (FlightStats, error) {
	f, err := e.stores.Flights.GetByID(flightID)
	if err != nil {
		return FlightStats{}, err
	}
	return FlightStats{
		FlightID:        f.ID,
		Status:          f.Status(),
		TotalSeats:      f.TotalSeats,
		AvailableSeats:  f.AvailableSeats,
		ReservedSeats:   f.ReservedSeats,
		BookedSeats:     f.BookedSeats,
		WaitingListSize: e.stores.WaitingList.CountByFlight(flightID),
	}, nil
}
