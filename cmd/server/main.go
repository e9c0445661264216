package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/nasirisan/AirlinePro-sub000/internal/booking"
	"github.com/nasirisan/AirlinePro-sub000/internal/catalog"
	"github.com/nasirisan/AirlinePro-sub000/internal/config"
	"github.com/nasirisan/AirlinePro-sub000/internal/database"
	"github.com/nasirisan/AirlinePro-sub000/internal/handler"
	"github.com/nasirisan/AirlinePro-sub000/internal/queue"
	"github.com/nasirisan/AirlinePro-sub000/internal/repository"
	"github.com/nasirisan/AirlinePro-sub000/internal/router"
	"github.com/nasirisan/AirlinePro-sub000/internal/scheduler"
	"github.com/nasirisan/AirlinePro-sub000/internal/utils"
)

func main() {
	cfg := config.Load() // load environment config

	// Resolve the admin password hash: either pre-hashed in the env or
	// hashed once here from the plaintext variable.
	adminHash := cfg.AdminPasswordHash
	if adminHash == "" {
		h, err := utils.HashPassword(config.AdminPlainPassword(), cfg.BcryptCost)
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
		adminHash = h
	}

	// Stores. Everything is in-memory except, optionally, the booking
	// ledger, which can be backed by MySQL since bookings are immutable.
	flightRepo := repository.NewFlightRepo()
	seatRepo := repository.NewSeatRepo()
	reservationRepo := repository.NewReservationRepo()
	waitlistRepo := repository.NewWaitingListRepo()
	logRepo := repository.NewSystemLogRepo(cfg.LogCapacity)

	var bookingStore booking.BookingStore = repository.NewBookingRepo()
	if cfg.LedgerEnabled() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open booking ledger db: %v", err)
		}
		defer db.Close()
		bookingStore = repository.NewMySQLBookingRepo(db)
		log.Printf("booking ledger: MySQL at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	}

	engine := booking.New(booking.Stores{
		Flights:      flightRepo,
		Seats:        seatRepo,
		Reservations: reservationRepo,
		Bookings:     bookingStore,
		WaitingList:  waitlistRepo,
		Log:          logRepo,
	}, nil, cfg.HoldTTL, cfg.OfferTTL)

	// Seed the demo catalog; a real deployment would load a schedule feed.
	now := time.Now().UTC()
	catalog.Seed(flightRepo, seatRepo, catalog.SampleFlights(now), now)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Expiry sweeper: releases overdue holds, drops lapsed offers and
	// promotes waiting passengers.
	go scheduler.New(engine, cfg.SweepInterval).Start(ctx)

	// Best-effort consumer writing confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewFlightHandler(engine), config.NewRedisClient())
	router.RegisterBooking(e, handler.NewBookingHandler(engine), handler.NewWaitlistHandler(engine))
	router.RegisterAdmin(e, handler.NewAuthHandler(cfg.AdminEmail, adminHash, cfg.JWTSecret, cfg.AccessTTLMin),
		handler.NewAdminHandler(engine), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
