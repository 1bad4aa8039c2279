package room

import (
	"errors"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
)

var (
	ErrInvalidType       = errors.New("invalid room type")
	ErrInvalidStatus     = errors.New("invalid room status")
	ErrInvalidTransition = errors.New("invalid room status transition")
)

// Room is a physical unit keyed by room number. Within the check-in/check-out
// core a room only ever moves available→occupied (check-in) and
// occupied→cleaning (check-out); the remaining statuses are set by
// housekeeping and maintenance flows outside this core. StatusReserved marks
// a room claimed by an in-flight allocation that has not been confirmed yet.
type Room struct {
	number   string
	floor    int
	roomType Type
	status   Status
	price    billing.Money
	features []string
}

func Reconstruct(number string, floor int, roomType Type, status Status, price billing.Money, features []string) (*Room, error) {
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Room{
		number:   number,
		floor:    floor,
		roomType: roomType,
		status:   status,
		price:    price,
		features: features,
	}, nil
}

// Occupy is the check-in transition. The room must have been claimed by the
// allocator (reserved) or still be available.
func (r *Room) Occupy() error {
	if r.status != StatusAvailable && r.status != StatusReserved {
		return ErrInvalidTransition
	}
	r.status = StatusOccupied
	return nil
}

// Release is the check-out transition into housekeeping.
func (r *Room) Release() error {
	if r.status != StatusOccupied {
		return ErrInvalidTransition
	}
	r.status = StatusCleaning
	return nil
}

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Room) Number() string       { return r.number }
func (r *Room) Floor() int           { return r.floor }
func (r *Room) RoomType() Type       { return r.roomType }
func (r *Room) Status() Status       { return r.status }
func (r *Room) Price() billing.Money { return r.price }
func (r *Room) Features() []string   { return r.features }
