package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing
	"github.com/redis/go-redis/v9"

	"github.com/nasirisan/AirlinePro-sub000/internal/config"
	"github.com/nasirisan/AirlinePro-sub000/internal/handler"
	"github.com/nasirisan/AirlinePro-sub000/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse endpoints.  They
// are read-only, so they sit behind the Redis response cache and the
// token-bucket rate limiter; both degrade to pass-through when Redis is
// unavailable.
func RegisterPublic(e *echo.Echo, f *handler.FlightHandler, rdb *redis.Client) {
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	g := e.Group("/v1",
		middleware.NewTokenBucket(rateCfg, rdb),
		middleware.NewRedisCache(cacheCfg, rdb),
	)
	// Search the catalog by origin/destination/date.
	g.GET("/flights", f.Search)
	// Flight details with live availability counters.
	g.GET("/flights/:id", f.GetByID)
	// Seat map snapshot for seat selection.
	g.GET("/flights/:id/seats", f.ListSeats)
	// Booking lookup by human-readable reference (case-insensitive).
	g.GET("/bookings/:ref", f.FindBooking)
}

// RegisterBooking registers the hold/confirm and waiting-list flows.
// These mutate engine state and are deliberately not cached or
// rate-limited beyond what the engine's own concurrency control gives:
// a losing hold must see its 409 immediately, not a cached 201.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, w *handler.WaitlistHandler) {
	g := e.Group("/v1")
	// Place a timed hold on a seat.
	g.POST("/flights/:id/hold", b.Hold)
	// Report the payment outcome for a hold.
	g.POST("/reservations/:id/confirm", b.Confirm)
	// Inspect a reservation (including terminal ones).
	g.GET("/reservations/:id", b.GetReservation)
	// Join a full flight's waiting list.
	g.POST("/flights/:id/waitlist", w.Join)
	// Accept an open seat offer.
	g.POST("/flights/:id/waitlist/:entryId/accept", w.Accept)
}

// RegisterAdmin registers the login endpoint and the JWT-protected
// read-only admin surface.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, ad *handler.AdminHandler, jwtSecret string) {
	e.POST("/v1/auth/login", a.Login)

	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	// Append-only audit trail of engine transitions.
	g.GET("/logs", ad.Logs)
	// Aggregate seat counters and queue length for one flight.
	g.GET("/flights/:id/stats", ad.FlightStats)
}
