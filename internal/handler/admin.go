package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nasirisan/AirlinePro-sub000/internal/booking"
)

// AdminHandler exposes the read-only operational surface behind JWT:
// the system log ring and per-flight aggregate counters.  Nothing here
// can mutate engine state.
type AdminHandler struct {
	Engine *booking.Engine
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(engine *booking.Engine) *AdminHandler {
	if engine == nil {
		panic("nil engine passed to NewAdminHandler")
	}
	return &AdminHandler{Engine: engine}
}

// Logs handles GET /v1/admin/logs and returns the retained audit
// trail, oldest first.
func (h *AdminHandler) Logs(c echo.Context) error {
	entries := h.Engine.SystemLogs()
	out := make([]echo.Map, 0, len(entries))
	for _, e := range entries {
		out = append(out, echo.Map{
			"seq":       e.Seq,
			"at":        e.At,
			"level":     e.Level,
			"event":     e.Event,
			"flight_id": e.FlightID,
			"details":   e.Details,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"logs": out})
}

// FlightStats handles GET /v1/admin/flights/:id/stats.
func (h *AdminHandler) FlightStats(c echo.Context) error {
	stats, err := h.Engine.Stats(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"flight_id":         stats.FlightID,
		"status":            stats.Status,
		"total_seats":       stats.TotalSeats,
		"available_seats":   stats.AvailableSeats,
		"reserved_seats":    stats.ReservedSeats,
		"booked_seats":      stats.BookedSeats,
		"waiting_list_size": stats.WaitingListSize,
	})
}
