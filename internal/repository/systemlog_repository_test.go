package repository

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasirisan/AirlinePro-sub000/internal/model"
)

func TestSystemLogKeepsMostRecentEntries(t *testing.T) {
	r := NewSystemLogRepo(3)
	now := time.Now().UTC()

	for i := 1; i <= 5; i++ {
		r.Append(now, model.LogInfo, "event-"+strconv.Itoa(i), "FL1", "")
	}

	entries := r.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "event-3", entries[0].Event)
	assert.Equal(t, "event-4", entries[1].Event)
	assert.Equal(t, "event-5", entries[2].Event)

	// Sequence numbers keep counting across overwrites.
	assert.Equal(t, uint64(3), entries[0].Seq)
	assert.Equal(t, uint64(5), entries[2].Seq)
}

func TestSystemLogPartialRing(t *testing.T) {
	r := NewSystemLogRepo(100)
	now := time.Now().UTC()

	r.Append(now, model.LogInfo, "first", "FL1", "")
	r.Append(now, model.LogCritical, "second", "FL1", "")

	entries := r.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Event)
	assert.Equal(t, model.LogCritical, entries[1].Level)
}

func TestSystemLogDefaultCapacity(t *testing.T) {
	r := NewSystemLogRepo(0)
	now := time.Now().UTC()
	for i := 0; i < DefaultLogCapacity+10; i++ {
		r.Append(now, model.LogInfo, "e", "FL1", "")
	}
	assert.Len(t, r.List(), DefaultLogCapacity)
}
