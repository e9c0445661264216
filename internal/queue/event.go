// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a seat hold is successfully
// paid and turned into a booking.  It carries enough for downstream
// consumers (audit log, notifications, analytics) without querying the
// engine.
type BookingConfirmedEvent struct {
	BookingID     string `json:"booking_id"`
	Reference     string `json:"reference"`
	FlightID      string `json:"flight_id"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	SeatID        string `json:"seat_id"`
	SeatClass     string `json:"seat_class"`
	PassengerID   string `json:"passenger_id"`
	PassengerName string `json:"passenger_name"`
	PriceCents    uint32 `json:"price_cents"`
	ConfirmedAt   string `json:"confirmed_at"`
}
