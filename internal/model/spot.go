package model

// Spot represents one physical parking space. All timestamps are civil-time
// strings in the configured reference timezone; date fields use YYYY-MM-DD.
//
// Invariant: when IsOccupied is false, every pointer field is nil. When a
// booking carries a duration, EndTime equals StartTime plus that duration.
type Spot struct {
	ID            string  `json:"id"`
	Number        int     `json:"number"`
	IsOccupied    bool    `json:"isOccupied"`
	OccupiedBy    *string `json:"occupiedBy"`
	LastUpdated   string  `json:"lastUpdated"`
	EndTime       *string `json:"endTime"`
	DurationHours *int    `json:"durationHours"`
	StartTime     *string `json:"startTime"`
	BookingDate   *string `json:"bookingDate"`
}

// Vacant reports whether the spot carries no occupancy state at all.
func (s *Spot) Vacant() bool {
	return !s.IsOccupied &&
		s.OccupiedBy == nil &&
		s.EndTime == nil &&
		s.DurationHours == nil &&
		s.StartTime == nil &&
		s.BookingDate == nil
}
