package store

import (
	"errors"
	"sync"

	"parking-tracker-backend/internal/model"
)

// ErrBookingNotFound is returned when a ledger entry id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// Ledger is a bounded most-recent-first sequence of booking records. Entries
// are immutable once appended; they only leave by capacity eviction from the
// back, explicit removal by id, or a full wipe.
type Ledger struct {
	mu       sync.RWMutex
	capacity int
	entries  []model.BookingRecord
}

// NewLedger creates an empty ledger holding at most capacity entries.
func NewLedger(capacity int) *Ledger {
	return &Ledger{capacity: capacity}
}

// Append inserts a record at the front, evicting the oldest entry when the
// ledger is over capacity.
func (l *Ledger) Append(rec model.BookingRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]model.BookingRecord{rec}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Remove deletes the entry with the given id.
func (l *Ledger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, rec := range l.entries {
		if rec.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}

// List returns the entries front-to-back, most recent first. Consumers render
// in exactly this order.
func (l *Ledger) List() []model.BookingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.BookingRecord, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear wipes every entry. Used by the full reset.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Len reports the number of stored entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
