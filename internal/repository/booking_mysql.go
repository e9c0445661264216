package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

// MySQLBookingRepo is the durable booking ledger.  It satisfies the
// same interface as BookingRepo so the engine is indifferent to which
// one it is wired with.  Bookings are the only entity persisted: they
// are immutable and append-only, so there is no cross-entity
// transaction to coordinate with the in-memory state.
//
// Expected schema:
//
//	CREATE TABLE bookings (
//	    id            VARCHAR(36)  PRIMARY KEY,
//	    reference     VARCHAR(16)  NOT NULL UNIQUE,
//	    flight_id     VARCHAR(16)  NOT NULL,
//	    seat_id       VARCHAR(8)   NOT NULL,
//	    passenger_id  VARCHAR(64)  NOT NULL,
//	    passenger     VARCHAR(255) NOT NULL,
//	    seat_class    VARCHAR(16)  NOT NULL,
//	    price_cents   INT UNSIGNED NOT NULL,
//	    reserved_at   DATETIME     NOT NULL,
//	    confirmed_at  DATETIME     NOT NULL
//	);
type MySQLBookingRepo struct {
	db *sql.DB
}

// NewMySQLBookingRepo returns a ledger bound to the provided database.
func NewMySQLBookingRepo(db *sql.DB) *MySQLBookingRepo {
	return &MySQLBookingRepo{db: db}
}

const mysqlOpTimeout = 5 * time.Second

// Append inserts a finalized booking row.
func (r *MySQLBookingRepo) Append(b model.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), mysqlOpTimeout)
	defer cancel()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings
		 (id, reference, flight_id, seat_id, passenger_id, passenger, seat_class, price_cents, reserved_at, confirmed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, strings.ToUpper(b.Reference), b.FlightID, b.SeatID,
		b.Passenger.ID, b.Passenger.Name, string(b.SeatClass), b.PriceCents,
		b.ReservedAt.UTC(), b.ConfirmedAt.UTC(),
	)
	return err
}

// GetByID returns a booking row by primary key.
func (r *MySQLBookingRepo) GetByID(id string) (model.Booking, error) {
	return r.queryOne(`SELECT id, reference, flight_id, seat_id, passenger_id, passenger, seat_class, price_cents, reserved_at, confirmed_at
		FROM bookings WHERE id = ?`, id)
}

// FindByReference returns a booking row by reference code.  References
// are stored upper-cased, which makes the lookup case-insensitive.
func (r *MySQLBookingRepo) FindByReference(ref string) (model.Booking, error) {
	return r.queryOne(`SELECT id, reference, flight_id, seat_id, passenger_id, passenger, seat_class, price_cents, reserved_at, confirmed_at
		FROM bookings WHERE reference = ?`, strings.ToUpper(strings.TrimSpace(ref)))
}

func (r *MySQLBookingRepo) queryOne(query string, arg string) (model.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mysqlOpTimeout)
	defer cancel()

	var b model.Booking
	var class string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&b.ID, &b.Reference, &b.FlightID, &b.SeatID,
		&b.Passenger.ID, &b.Passenger.Name, &class, &b.PriceCents,
		&b.ReservedAt, &b.ConfirmedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	b.SeatClass = model.SeatClass(class)
	return b, nil
}
