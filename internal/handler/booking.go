package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nasirisan/AirlinePro-sub000/internal/booking"
	"github.com/nasirisan/AirlinePro-sub000/internal/model"
	"github.com/nasirisan/AirlinePro-sub000/internal/queue"
	"github.com/nasirisan/AirlinePro-sub000/internal/repository"
	queue_publisher "github.com/nasirisan/AirlinePro-sub000/internal/service"
)

// BookingHandler exposes the hold/confirm flow.  Payment itself happens
// out of process: the client calls hold, pays through the external
// gateway, then reports the outcome via confirm.  No lock is held
// across that gap — the hold TTL is the only thing keeping the seat.
type BookingHandler struct {
	Engine *booking.Engine
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine *booking.Engine) *BookingHandler {
	if engine == nil {
		panic("nil engine passed to NewBookingHandler")
	}
	return &BookingHandler{Engine: engine}
}

type passengerBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Tier  string `json:"tier"` // NORMAL, FREQUENT_FLYER or VIP
}

func (p passengerBody) toModel() model.Passenger {
	tier := model.LoyaltyTier(p.Tier)
	switch tier {
	case model.TierVIP, model.TierFrequentFlyer:
	default:
		tier = model.TierNormal
	}
	return model.Passenger{ID: p.ID, Name: p.Name, Email: p.Email, Tier: tier}
}

// Hold handles POST /v1/flights/:id/hold.  The body names a seat and a
// passenger; on success the seat is held for the configured TTL and the
// reservation (with its payment deadline) is returned with 201.
// A seat already taken answers 409 — the caller should offer another
// seat.
func (h *BookingHandler) Hold(c echo.Context) error {
	flightID := c.Param("id")
	var body struct {
		SeatID    string        `json:"seat_id"`
		Passenger passengerBody `json:"passenger"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.SeatID == "" || body.Passenger.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id and passenger.id are required"})
	}

	res, err := h.Engine.Hold(flightID, body.SeatID, body.Passenger.toModel())
	switch {
	case errors.Is(err, repository.ErrFlightNotFound), errors.Is(err, repository.ErrSeatNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrSeatUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "seat already taken, please pick another seat"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hold failed"})
	}
	return c.JSON(http.StatusCreated, reservationView(&res))
}

// Confirm handles POST /v1/reservations/:id/confirm.  The body carries
// the payment outcome.  Responses:
//   - paid and booked: 200 with the booking.
//   - payment failed: 200 with booking null (seat released, waiting
//     list promoted).
//   - unknown/already settled: 200 with booking null (idempotent).
//   - paid but the hold already expired: 409 telling the passenger to
//     contact support — the engine has logged this at CRITICAL.
func (h *BookingHandler) Confirm(c echo.Context) error {
	var body struct {
		Paid bool `json:"paid"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	b, err := h.Engine.Confirm(c.Param("id"), body.Paid)
	if errors.Is(err, booking.ErrLateConfirmation) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "payment received after the hold expired; contact support with your payment reference",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "confirmation failed"})
	}
	if b == nil {
		return c.JSON(http.StatusOK, echo.Map{"booking": nil})
	}

	h.publishConfirmed(b)
	return c.JSON(http.StatusOK, echo.Map{"booking": bookingView(b)})
}

// GetReservation handles GET /v1/reservations/:id.
func (h *BookingHandler) GetReservation(c echo.Context) error {
	res, err := h.Engine.GetReservationByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, reservationView(&res))
}

// publishConfirmed emits the booking.confirmed event without blocking
// the response; failures are logged inside the publisher and ignored.
func (h *BookingHandler) publishConfirmed(b *model.Booking) {
	flight, err := h.Engine.GetFlightByID(b.FlightID)
	if err != nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:     b.ID,
		Reference:     b.Reference,
		FlightID:      b.FlightID,
		FlightNumber:  flight.Number,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		SeatID:        b.SeatID,
		SeatClass:     string(b.SeatClass),
		PassengerID:   b.Passenger.ID,
		PassengerName: b.Passenger.Name,
		PriceCents:    b.PriceCents,
		ConfirmedAt:   b.ConfirmedAt.UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingConfirmed(ctx, ev)
	}()
}

func reservationView(r *model.Reservation) echo.Map {
	return echo.Map{
		"id":          r.ID,
		"flight_id":   r.FlightID,
		"seat_id":     r.SeatID,
		"passenger":   r.Passenger.Name,
		"status":      r.Status,
		"reserved_at": r.ReservedAt,
		"expires_at":  r.ExpiresAt,
	}
}
