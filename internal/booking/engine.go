package booking

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/facebookgo/clock"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

const (
	// DefaultHoldTTL is how long a seat hold survives without payment.
	DefaultHoldTTL = 10 * time.Minute
	// DefaultOfferTTL is how long a promoted waiting-list passenger has
	// to accept their seat offer.
	DefaultOfferTTL = 5 * time.Minute
)

// Engine is the seat allocation core.  All exported methods are safe
// for concurrent use; methods touching a flight's state serialize on
// that flight's lock.  Time comes exclusively from the injected clock
// so tests can drive expiry without sleeping.
type Engine struct {
	stores   Stores
	clk      clock.Clock
	holdTTL  time.Duration
	offerTTL time.Duration
	locks    *flightLocks
}

// New constructs an Engine.  All stores must be non-nil.  A nil clock
// falls back to the wall clock; non-positive TTLs fall back to the
// defaults.
func New(stores Stores, clk clock.Clock, holdTTL, offerTTL time.Duration) *Engine {
	if stores.Flights == nil || stores.Seats == nil || stores.Reservations == nil ||
		stores.Bookings == nil || stores.WaitingList == nil || stores.Log == nil {
		panic("nil store passed to booking.New")
	}
	if clk == nil {
		clk = clock.New()
	}
	if holdTTL <= 0 {
		holdTTL = DefaultHoldTTL
	}
	if offerTTL <= 0 {
		offerTTL = DefaultOfferTTL
	}
	return &Engine{
		stores:   stores,
		clk:      clk,
		holdTTL:  holdTTL,
		offerTTL: offerTTL,
		locks:    newFlightLocks(),
	}
}

func (e *Engine) now() time.Time { return e.clk.Now().UTC() }

func (e *Engine) logInfo(event, flightID, details string) {
	e.stores.Log.Append(e.now(), model.LogInfo, event, flightID, details)
}

func (e *Engine) logCritical(event, flightID, details string) {
	e.stores.Log.Append(e.now(), model.LogCritical, event, flightID, details)
}

// newReference returns a short human-readable booking reference such
// as "AP-3F0A1C".  References are compared case-insensitively on
// lookup, so they are generated upper-case.
func newReference() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is a broken platform; give up loudly.
		panic(err)
	}
	return "AP-" + strings.ToUpper(hex.EncodeToString(b))
}
