package model

// BookingRecord is an immutable ledger entry describing one accepted booking.
// History records describe bookings that occupied a spot; upcoming records
// describe future-dated bookings waiting for their day. The spot is referenced
// by number only, so later spot mutations never rewrite ledger history.
type BookingRecord struct {
	ID            string `json:"id"`
	SpotNumber    int    `json:"spotNumber"`
	OccupiedBy    string `json:"occupiedBy"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	DurationHours int    `json:"durationHours"`
	BookingDate   string `json:"bookingDate"`
	CreatedAt     string `json:"createdAt"`
}
