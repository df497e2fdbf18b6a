package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-tracker-backend/internal/model"
)

func record(id string) model.BookingRecord {
	return model.BookingRecord{
		ID:            id,
		SpotNumber:    1,
		OccupiedBy:    "Alice",
		DurationHours: 2,
		BookingDate:   "2026-08-29",
	}
}

func TestLedgerIsMostRecentFirst(t *testing.T) {
	l := NewLedger(10)
	l.Append(record("first"))
	l.Append(record("second"))
	l.Append(record("third"))

	entries := l.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].ID)
	assert.Equal(t, "second", entries[1].ID)
	assert.Equal(t, "first", entries[2].ID)
}

func TestLedgerEvictsOldestAtCapacity(t *testing.T) {
	l := NewLedger(10)
	for i := 1; i <= 11; i++ {
		l.Append(record(fmt.Sprintf("entry-%d", i)))
	}

	entries := l.List()
	require.Len(t, entries, 10, "the 11th append evicts the oldest entry")
	assert.Equal(t, "entry-11", entries[0].ID)
	assert.Equal(t, "entry-2", entries[9].ID)
}

func TestLedgerRemove(t *testing.T) {
	l := NewLedger(10)
	l.Append(record("keep"))
	l.Append(record("drop"))

	require.NoError(t, l.Remove("drop"))
	entries := l.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].ID)

	// A repeat cancellation of the same id is NotFound.
	assert.ErrorIs(t, l.Remove("drop"), ErrBookingNotFound)
}

func TestLedgerClear(t *testing.T) {
	l := NewLedger(10)
	l.Append(record("one"))
	l.Append(record("two"))

	l.Clear()
	assert.Zero(t, l.Len())
	assert.Empty(t, l.List())
}
