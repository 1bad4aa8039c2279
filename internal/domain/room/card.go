package room

import "time"

// Card is the electronic access credential bound to one room and one guest
// for the stay. Cards are never deleted: revocation flips isActive and keeps
// the row for audit. Exactly one active card exists per occupied room.
type Card struct {
	cardID     string
	roomNumber string
	guestID    string
	issuedAt   time.Time
	expiresAt  time.Time
	isActive   bool
}

func NewCard(cardID, roomNumber, guestID string, issuedAt, expiresAt time.Time) *Card {
	return &Card{
		cardID:     cardID,
		roomNumber: roomNumber,
		guestID:    guestID,
		issuedAt:   issuedAt,
		expiresAt:  expiresAt,
		isActive:   true,
	}
}

func ReconstructCard(cardID, roomNumber, guestID string, issuedAt, expiresAt time.Time, isActive bool) *Card {
	return &Card{
		cardID:     cardID,
		roomNumber: roomNumber,
		guestID:    guestID,
		issuedAt:   issuedAt,
		expiresAt:  expiresAt,
		isActive:   isActive,
	}
}

// Revoke deactivates the card. Revoking an already-inactive card is a no-op,
// not an error: check-out must be safe to re-run from the revocation step.
func (c *Card) Revoke() {
	c.isActive = false
}

func (c *Card) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

func (c *Card) CardID() string       { return c.cardID }
func (c *Card) RoomNumber() string   { return c.roomNumber }
func (c *Card) GuestID() string      { return c.guestID }
func (c *Card) IssuedAt() time.Time  { return c.issuedAt }
func (c *Card) ExpiresAt() time.Time { return c.expiresAt }
func (c *Card) IsActive() bool       { return c.isActive }
