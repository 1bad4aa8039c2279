package request

import "strings"

type CheckInRequest struct {
	GuestName string `json:"guestName" binding:"required"`
	// ReservationIndex is the 1-based choice from a previous
	// selection_required response.
	ReservationIndex *int `json:"reservationIndex,omitempty"`
}

// TrimmedGuestName strips surrounding whitespace only. Matching against the
// reservation stays exact and case sensitive.
func (r CheckInRequest) TrimmedGuestName() string {
	return strings.TrimSpace(r.GuestName)
}
