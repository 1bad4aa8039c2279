package shared

import (
	"context"
	"time"
)

// FrontDeskSession is the typed scratchpad one conversation hands forward to
// downstream flows (room service, etc.). It is ephemeral state, not a system
// of record: everything here is a plain serializable snapshot, written by
// check-in, cleared by check-out.
type FrontDeskSession struct {
	Guest       *SessionGuest       `json:"guest,omitempty"`
	Room        *SessionRoom        `json:"room,omitempty"`
	Reservation *SessionReservation `json:"reservation,omitempty"`
	Card        *SessionCard        `json:"card,omitempty"`
	Pending     *PendingSettlement  `json:"pending,omitempty"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type SessionGuest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	VIPLevel string `json:"vip_level"`
}

type SessionRoom struct {
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	Type       string `json:"type"`
	PriceCents int64  `json:"price_cents"`
}

type SessionReservation struct {
	ID           string    `json:"id"`
	GuestName    string    `json:"guest_name"`
	RoomType     string    `json:"room_type"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	PriceCents   int64     `json:"price_cents"`
}

type SessionCard struct {
	CardID     string    `json:"card_id"`
	RoomNumber string    `json:"room_number"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// PendingSettlement parks a presented bill between the preview and the
// confirmation call. It captures everything the confirmation step needs so a
// stale read cannot change the amounts the guest already saw.
type PendingSettlement struct {
	RoomNumber      string       `json:"room_number"`
	ReservationID   string       `json:"reservation_id"`
	GuestID         string       `json:"guest_id"`
	GuestName       string       `json:"guest_name"`
	CardID          string       `json:"card_id"`
	RoomChargeCents int64        `json:"room_charge_cents"`
	Charges         []ChargeLine `json:"charges"`
	TotalCents      int64        `json:"total_cents"`
	BalanceCents    int64        `json:"balance_cents"`
	PresentedAt     time.Time    `json:"presented_at"`
}

type ChargeLine struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
}

// SessionStore persists FrontDeskSession per conversation with a TTL; an
// expired entry simply loads as an empty session. A timed-out guest decision
// therefore behaves like a negative reply: nothing has been mutated and the
// flow has to start over.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*FrontDeskSession, error)
	Save(ctx context.Context, sessionID string, session *FrontDeskSession) error
	Clear(ctx context.Context, sessionID string) error
}
