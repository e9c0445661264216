package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nasirisan/AirlinePro-sub000/internal/booking"
	"github.com/nasirisan/AirlinePro-sub000/internal/model"
	"github.com/nasirisan/AirlinePro-sub000/internal/repository"
)

// FlightHandler exposes the public browse surface: flight search, seat
// maps and booking lookup by reference.  All endpoints are read-only
// and sit behind the cache and rate-limit middleware.
type FlightHandler struct {
	Engine *booking.Engine
}

// NewFlightHandler constructs a FlightHandler.
func NewFlightHandler(engine *booking.Engine) *FlightHandler {
	if engine == nil {
		panic("nil engine passed to NewFlightHandler")
	}
	return &FlightHandler{Engine: engine}
}

// Search handles GET /v1/flights?from=&to=&date=.  All filters are
// optional; date is expected as YYYY-MM-DD.
func (h *FlightHandler) Search(c echo.Context) error {
	var date time.Time
	if s := c.QueryParam("date"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		}
		date = d
	}
	flights := h.Engine.SearchFlights(c.QueryParam("from"), c.QueryParam("to"), date)
	out := make([]echo.Map, 0, len(flights))
	for i := range flights {
		out = append(out, flightView(&flights[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"flights": out})
}

// GetByID handles GET /v1/flights/:id.
func (h *FlightHandler) GetByID(c echo.Context) error {
	f, err := h.Engine.GetFlightByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
	}
	return c.JSON(http.StatusOK, flightView(&f))
}

// ListSeats handles GET /v1/flights/:id/seats and returns the seat map
// snapshot.
func (h *FlightHandler) ListSeats(c echo.Context) error {
	seats, err := h.Engine.ListSeats(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
	}
	out := make([]echo.Map, 0, len(seats))
	for _, s := range seats {
		out = append(out, echo.Map{
			"seat_id": s.ID,
			"row":     s.Row,
			"letter":  s.Letter,
			"class":   s.Class,
			"status":  s.Status,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"flight_id": c.Param("id"), "seats": out})
}

// FindBooking handles GET /v1/bookings/:ref — lookup by the
// human-readable reference code, case-insensitive.
func (h *FlightHandler) FindBooking(c echo.Context) error {
	b, err := h.Engine.FindBookingByReference(c.Param("ref"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, bookingView(&b))
}

func flightView(f *model.Flight) echo.Map {
	return echo.Map{
		"id":              f.ID,
		"number":          f.Number,
		"origin":          f.Origin,
		"destination":     f.Destination,
		"departure_at":    f.DepartureAt,
		"arrival_at":      f.ArrivalAt,
		"status":          f.Status(),
		"total_seats":     f.TotalSeats,
		"available_seats": f.AvailableSeats,
		"price": echo.Map{
			"economy":     f.Price.EconomyCents,
			"business":    f.Price.BusinessCents,
			"first_class": f.Price.FirstClassCents,
		},
	}
}

func bookingView(b *model.Booking) echo.Map {
	return echo.Map{
		"id":           b.ID,
		"reference":    b.Reference,
		"flight_id":    b.FlightID,
		"seat_id":      b.SeatID,
		"seat_class":   b.SeatClass,
		"price_cents":  b.PriceCents,
		"passenger":    b.Passenger.Name,
		"confirmed_at": b.ConfirmedAt,
	}
}
