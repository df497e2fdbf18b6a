// Package booking classifies booking requests and applies them to the lot.
package booking

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"parking-tracker-backend/internal/civil"
	"parking-tracker-backend/internal/model"
	"parking-tracker-backend/internal/notify"
	"parking-tracker-backend/internal/store"
)

// ErrInvalidRequest flags malformed caller input: a non-positive duration or
// an unparseable start time or booking date.
var ErrInvalidRequest = errors.New("invalid booking request")

// DefaultOccupant is used when an occupy request names nobody.
const DefaultOccupant = "Anonymous"

// Request is the caller's desired spot state.
type Request struct {
	IsOccupied    bool   `json:"isOccupied"`
	OccupiedBy    string `json:"occupiedBy"`
	DurationHours int    `json:"durationHours"`
	StartTime     string `json:"startTime"`
	BookingDate   string `json:"bookingDate"`
}

// OutcomeKind tells the caller which of the three paths a request took.
type OutcomeKind int

const (
	// OutcomeReleased means the spot was cleared.
	OutcomeReleased OutcomeKind = iota
	// OutcomeActive means the spot was occupied immediately.
	OutcomeActive
	// OutcomeFuture means the booking was queued; the spot was not touched.
	OutcomeFuture
)

// Outcome is the result of one classified request. Spot is set for released
// and active outcomes, Booking for active and future ones.
type Outcome struct {
	Kind    OutcomeKind
	Spot    model.Spot
	Booking model.BookingRecord
}

// Service owns the booking state machine. One mutex serializes every
// mutation across requests and the sweeper, which keeps each spot's
// read-modify-write indivisible; the lot is small enough that a global lock
// costs nothing.
type Service struct {
	mu          sync.Mutex
	civ         *civil.Time
	spots       *store.SpotStore
	history     *store.Ledger
	upcoming    *store.Ledger
	broadcaster *notify.Broadcaster
}

// NewService wires the classifier to its collaborators.
func NewService(civ *civil.Time, spots *store.SpotStore, history, upcoming *store.Ledger, broadcaster *notify.Broadcaster) *Service {
	return &Service{
		civ:         civ,
		spots:       spots,
		history:     history,
		upcoming:    upcoming,
		broadcaster: broadcaster,
	}
}

// Spots returns a snapshot of the lot.
func (s *Service) Spots() []model.Spot { return s.spots.List() }

// History returns recent bookings, most recent first.
func (s *Service) History() []model.BookingRecord { return s.history.List() }

// Upcoming returns pending future bookings, most recent first.
func (s *Service) Upcoming() []model.BookingRecord { return s.upcoming.List() }

// Apply classifies one request against the named spot and commits it.
//
// A release clears the spot unconditionally and emits one spotUpdated event.
// An occupy request dated today or earlier occupies the spot now, records a
// history entry and emits spotUpdated. An occupy request dated after today
// only queues an upcoming record; the spot is untouched and no event is sent.
func (s *Service) Apply(spotID string, req Request) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !req.IsOccupied {
		return s.release(spotID)
	}

	spot, err := s.spots.Get(spotID)
	if err != nil {
		return Outcome{}, err
	}

	if req.DurationHours < 1 {
		return Outcome{}, fmt.Errorf("%w: durationHours must be a positive number of hours", ErrInvalidRequest)
	}

	now := s.civ.Now()
	today := s.civ.Today()

	bookingDate := req.BookingDate
	if bookingDate == "" {
		bookingDate = today
	} else if _, err := s.civ.ParseDate(bookingDate); err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	start := now
	if req.StartTime != "" {
		start, err = s.civ.ParseDateTime(req.StartTime)
		if err != nil {
			return Outcome{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	}
	end := start.Add(time.Duration(req.DurationHours) * time.Hour)

	occupant := req.OccupiedBy
	if occupant == "" {
		occupant = DefaultOccupant
	}

	rec := model.BookingRecord{
		ID:            uuid.NewString(),
		SpotNumber:    spot.Number,
		OccupiedBy:    occupant,
		StartTime:     s.civ.FormatDateTime(start),
		EndTime:       s.civ.FormatDateTime(end),
		DurationHours: req.DurationHours,
		BookingDate:   bookingDate,
		CreatedAt:     s.civ.FormatDateTime(now),
	}

	// Fixed-width YYYY-MM-DD dates order correctly as plain strings.
	if bookingDate > today {
		s.upcoming.Append(rec)
		return Outcome{Kind: OutcomeFuture, Booking: rec}, nil
	}

	updated, err := s.spots.Update(spotID, func(sp model.Spot) model.Spot {
		sp.IsOccupied = true
		sp.OccupiedBy = &rec.OccupiedBy
		sp.LastUpdated = rec.CreatedAt
		sp.EndTime = &rec.EndTime
		sp.DurationHours = &rec.DurationHours
		sp.StartTime = &rec.StartTime
		sp.BookingDate = &rec.BookingDate
		return sp
	})
	if err != nil {
		return Outcome{}, err
	}

	s.history.Append(rec)
	s.broadcaster.Publish(notify.Event{Name: notify.EventSpotUpdated, Payload: updated})
	return Outcome{Kind: OutcomeActive, Spot: updated, Booking: rec}, nil
}

func (s *Service) release(spotID string) (Outcome, error) {
	now := s.civ.FormatDateTime(s.civ.Now())
	updated, err := s.spots.Update(spotID, func(sp model.Spot) model.Spot {
		return model.Spot{
			ID:          sp.ID,
			Number:      sp.Number,
			LastUpdated: now,
		}
	})
	if err != nil {
		return Outcome{}, err
	}
	s.broadcaster.Publish(notify.Event{Name: notify.EventSpotUpdated, Payload: updated})
	return Outcome{Kind: OutcomeReleased, Spot: updated}, nil
}

// CancelUpcoming removes one queued future booking by id.
func (s *Service) CancelUpcoming(id string) error {
	return s.upcoming.Remove(id)
}

// Reset discards all occupancy state and both ledgers, then broadcasts the
// fresh table. It is the only mutation that bypasses classification.
func (s *Service) Reset() []model.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()

	spots := s.spots.ResetAll()
	s.history.Clear()
	s.upcoming.Clear()
	s.broadcaster.Publish(notify.Event{Name: notify.EventSpotsReset, Payload: spots})
	return spots
}

// ExpireDue releases every spot whose booking window has elapsed, emitting
// one spotUpdated event per released spot. The sweeper calls this on its
// period; running it twice back to back releases nothing the second time.
func (s *Service) ExpireDue(now time.Time) []model.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()

	released := s.spots.ExpireDue(now)
	for _, spot := range released {
		s.broadcaster.Publish(notify.Event{Name: notify.EventSpotUpdated, Payload: spot})
	}
	return released
}
