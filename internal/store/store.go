package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"parking-tracker-backend/internal/civil"
	"parking-tracker-backend/internal/model"
)

// ErrSpotNotFound is returned when a spot id does not exist in the lot.
var ErrSpotNotFound = errors.New("parking spot not found")

// SpotStore is the authoritative in-memory table of spot occupancy. It is the
// only place occupancy state may be mutated; every mutation happens under the
// store lock so read-modify-write cycles are indivisible with respect to both
// concurrent requests and the expiration sweeper.
type SpotStore struct {
	mu    sync.RWMutex
	civ   *civil.Time
	spots []model.Spot
}

// NewSpotStore creates the lot with the given number of spots, all available.
func NewSpotStore(count int, civ *civil.Time) *SpotStore {
	s := &SpotStore{civ: civ}
	s.spots = s.freshSpots(count)
	return s
}

func (s *SpotStore) freshSpots(count int) []model.Spot {
	now := s.civ.FormatDateTime(s.civ.Now())
	spots := make([]model.Spot, count)
	for i := range spots {
		spots[i] = model.Spot{
			ID:          fmt.Sprintf("spot-%d", i+1),
			Number:      i + 1,
			LastUpdated: now,
		}
	}
	return spots
}

// List returns a snapshot of every spot.
func (s *SpotStore) List() []model.Spot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Spot, len(s.spots))
	copy(out, s.spots)
	return out
}

// Get returns a copy of one spot.
func (s *SpotStore) Get(id string) (model.Spot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, spot := range s.spots {
		if spot.ID == id {
			return spot, nil
		}
	}
	return model.Spot{}, ErrSpotNotFound
}

// Update atomically replaces one spot record with the result of fn. The
// callback receives a copy; the replacement is validated before it lands, so
// a record violating the occupancy invariant can never be observed.
func (s *SpotStore) Update(id string, fn func(model.Spot) model.Spot) (model.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.spots {
		if s.spots[i].ID != id {
			continue
		}
		next := fn(s.spots[i])
		if err := validate(&next); err != nil {
			return model.Spot{}, err
		}
		s.spots[i] = next
		return next, nil
	}
	return model.Spot{}, ErrSpotNotFound
}

// ResetAll reinitializes every spot to available with a fresh timestamp. It
// is a full barrier: whatever occupancy was in flight is discarded.
func (s *SpotStore) ResetAll() []model.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spots = s.freshSpots(len(s.spots))
	out := make([]model.Spot, len(s.spots))
	copy(out, s.spots)
	return out
}

// ExpireDue clears every occupied spot whose end time has passed and returns
// the cleared copies. Running it again with no time elapsed releases nothing.
func (s *SpotStore) ExpireDue(now time.Time) []model.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var released []model.Spot
	for i := range s.spots {
		spot := &s.spots[i]
		if !spot.IsOccupied || spot.EndTime == nil {
			continue
		}
		end, err := s.civ.ParseDateTime(*spot.EndTime)
		if err != nil {
			// An unparseable end time cannot enter the store through Update;
			// treat it as already expired rather than pinning the spot forever.
			end = now
		}
		if end.After(now) {
			continue
		}
		*spot = model.Spot{
			ID:          spot.ID,
			Number:      spot.Number,
			LastUpdated: s.civ.FormatDateTime(now),
		}
		released = append(released, *spot)
	}
	return released
}

// validate enforces the occupancy invariant: a vacant spot carries no booking
// fields, an occupied spot always names its occupant.
func validate(spot *model.Spot) error {
	if !spot.IsOccupied {
		if !spot.Vacant() {
			return fmt.Errorf("spot %s: vacant spot carries booking state", spot.ID)
		}
		return nil
	}
	if spot.OccupiedBy == nil {
		return fmt.Errorf("spot %s: occupied spot without occupant", spot.ID)
	}
	return nil
}
