package queries

import "time"

// Read models (DTO for read side)
type RoomView struct {
	Number     string   `json:"number"`
	Floor      int      `json:"floor"`
	Type       string   `json:"type"`
	Status     string   `json:"status"`
	PriceCents int64    `json:"price_cents"`
	Features   []string `json:"features"`
}

type TypeAvailability struct {
	Type      string `json:"type"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
}

type ReservationView struct {
	ID              string    `json:"id"`
	GuestID         string    `json:"guest_id"`
	GuestName       string    `json:"guest_name"`
	RoomType        string    `json:"room_type"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	Status          string    `json:"status"`
	PriceCents      int64     `json:"price_cents"`
	Source          string    `json:"source"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
