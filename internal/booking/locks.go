package booking

import "sync"

// flightLocks hands out one mutex per flight id.  Holding a flight's
// mutex is the critical section covering seat transitions, counter
// updates, reservation create/remove and waiting-list mutation for
// that flight.  Flights never coordinate with each other, so there is
// no global lock beyond the registry map itself.
type flightLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newFlightLocks() *flightLocks {
	return &flightLocks{m: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a flight, creating it on first use.
func (l *flightLocks) get(flightID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	fl, ok := l.m[flightID]
	if !ok {
		fl = &sync.Mutex{}
		l.m[flightID] = fl
	}
	return fl
}
