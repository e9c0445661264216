package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nasirisan/AirlinePro-sub000/internal/booking"
	"github.com/nasirisan/AirlinePro-sub000/internal/model"
	"github.com/nasirisan/AirlinePro-sub000/internal/repository"
)

// WaitlistHandler exposes the waiting-list surface: joining a full
// flight's queue and accepting a seat offer before it lapses.
type WaitlistHandler struct {
	Engine *booking.Engine
}

// NewWaitlistHandler constructs a WaitlistHandler.
func NewWaitlistHandler(engine *booking.Engine) *WaitlistHandler {
	if engine == nil {
		panic("nil engine passed to NewWaitlistHandler")
	}
	return &WaitlistHandler{Engine: engine}
}

// Join handles POST /v1/flights/:id/waitlist.  The body names the
// passenger and the requested cabin class.  The returned position is a
// snapshot of the queue length at join time.
func (h *WaitlistHandler) Join(c echo.Context) error {
	var body struct {
		Passenger passengerBody `json:"passenger"`
		Class     string        `json:"class"` // ECONOMY, BUSINESS or FIRST
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Passenger.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passenger.id is required"})
	}
	class := model.SeatClass(body.Class)
	switch class {
	case model.SeatClassEconomy, model.SeatClassBusiness, model.SeatClassFirst:
	default:
		class = model.SeatClassEconomy
	}

	entry, err := h.Engine.Join(c.Param("id"), body.Passenger.toModel(), class)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "join failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"entry_id":  entry.ID,
		"flight_id": entry.FlightID,
		"class":     entry.Class,
		"position":  entry.Position,
		"joined_at": entry.JoinedAt,
	})
}

// Accept handles POST /v1/flights/:id/waitlist/:entryId/accept.  Valid
// only while the offer window is open; a lapsed or unknown offer
// answers 410 and the passenger must rejoin the queue.
func (h *WaitlistHandler) Accept(c echo.Context) error {
	res, err := h.Engine.Accept(c.Param("entryId"), c.Param("id"))
	switch {
	case errors.Is(err, booking.ErrOfferExpired):
		return c.JSON(http.StatusGone, echo.Map{
			"error": "offer no longer valid; you have been removed from the queue, rejoin if still interested",
		})
	case errors.Is(err, booking.ErrSeatUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "no seat available right now, you remain queued"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "accept failed"})
	}
	return c.JSON(http.StatusCreated, reservationView(&res))
}
