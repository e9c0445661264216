package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAllocator records the sweeper's calls.
type stubAllocator struct {
	mu            sync.Mutex
	due           []string
	offers        []string
	calls         []string
	promoted      []string
	promotePanics map[string]bool
}

func (s *stubAllocator) ExpireDue() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "due")
	return s.due
}

func (s *stubAllocator) ExpireOffers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "offers")
	return s.offers
}

func (s *stubAllocator) Promote(flightID string) {
	s.mu.Lock()
	s.promoted = append(s.promoted, flightID)
	panics := s.promotePanics[flightID]
	s.mu.Unlock()
	if panics {
		panic("boom")
	}
}

func (s *stubAllocator) snapshot() (calls, promoted []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...), append([]string(nil), s.promoted...)
}

func TestSweepExpiresHoldsBeforeOffers(t *testing.T) {
	stub := &stubAllocator{}
	New(stub, time.Second).Sweep()

	calls, promoted := stub.snapshot()
	assert.Equal(t, []string{"due", "offers"}, calls)
	assert.Empty(t, promoted)
}

func TestSweepPromotesAffectedFlightsOnce(t *testing.T) {
	// FL2 appears in both expiry sets; it must still be promoted once.
	stub := &stubAllocator{
		due:    []string{"FL1", "FL2"},
		offers: []string{"FL2", "FL3"},
	}
	New(stub, time.Second).Sweep()

	_, promoted := stub.snapshot()
	assert.ElementsMatch(t, []string{"FL1", "FL2", "FL3"}, promoted)
}

func TestSweepSurvivesPromotePanic(t *testing.T) {
	stub := &stubAllocator{
		due:           []string{"FL1", "FL2", "FL3"},
		promotePanics: map[string]bool{"FL2": true},
	}
	require.NotPanics(t, func() {
		New(stub, time.Second).Sweep()
	})

	_, promoted := stub.snapshot()
	assert.ElementsMatch(t, []string{"FL1", "FL2", "FL3"}, promoted)
}

func TestStartSweepsUntilCancelled(t *testing.T) {
	stub := &stubAllocator{due: []string{"FL1"}}
	s := New(stub, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_, promoted := stub.snapshot()
		return len(promoted) >= 2
	}, time.Second, time.Millisecond, "sweeper should tick repeatedly")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
}

func TestNewClampsInterval(t *testing.T) {
	assert.Equal(t, 5*time.Second, New(&stubAllocator{}, 0).interval)
	assert.Equal(t, time.Minute, New(&stubAllocator{}, time.Minute).interval)
}
