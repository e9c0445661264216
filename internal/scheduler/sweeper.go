// Package scheduler runs the periodic expiry sweep: release overdue
// seat holds, drop lapsed waiting-list offers, then promote the next
// waiter on every flight that freed capacity.
package scheduler

import (
	"context"
	"log"
	"time"
)

// allocator is the slice of the booking engine the sweeper drives.
type allocator interface {
	ExpireDue() []string
	ExpireOffers() []string
	Promote(flightID string)
}

// Sweeper ticks at a fixed interval and runs one sweep per tick.  The
// ordering inside a sweep matters: holds expire first, then offers,
// then a single promotion pass over the union of affected flights —
// so a seat freed by expiry is offered to the next waiter within the
// same sweep.
type Sweeper struct {
	engine   allocator
	interval time.Duration
}

// New returns a sweeper.  A non-positive interval falls back to 5s.
func New(engine allocator, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Sweeper{engine: engine, interval: interval}
}

// Start blocks, sweeping every interval until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("sweeper: started (interval=%s)", s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("sweeper: stopped")
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep runs one expiry-and-promotion pass.  Promotion is attempted
// once per affected flight; a problem on one flight never aborts the
// others.
func (s *Sweeper) Sweep() {
	affected := make(map[string]struct{})
	for _, id := range s.engine.ExpireDue() {
		affected[id] = struct{}{}
	}
	for _, id := range s.engine.ExpireOffers() {
		affected[id] = struct{}{}
	}
	for id := range affected {
		s.promote(id)
	}
}

func (s *Sweeper) promote(flightID string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sweeper: promote %s panicked: %v", flightID, r)
		}
	}()
	s.engine.Promote(flightID)
}
