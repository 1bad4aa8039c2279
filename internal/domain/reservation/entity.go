package reservation

import (
	"errors"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidSource     = errors.New("invalid reservation source")
	ErrInvalidRoomType   = errors.New("invalid room type")
	ErrInvalidDateRange  = errors.New("check-out date must be after check-in date")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
)

// Reservation is the anchor entity of a stay. A room and a card are attached
// to it for the duration between check-in and check-out; the agreed total
// price is treated as the pre-paid room charge at settlement.
type Reservation struct {
	id              string
	guestID         string
	guestName       string
	roomType        room.Type
	checkInDate     time.Time
	checkOutDate    time.Time
	status          Status
	totalPrice      billing.Money
	source          Source
	specialRequests string
	createdAt       time.Time
}

func Reconstruct(
	id, guestID, guestName string,
	roomType room.Type,
	checkInDate, checkOutDate time.Time,
	status Status,
	totalPrice billing.Money,
	source Source,
	specialRequests string,
	createdAt time.Time,
) (*Reservation, error) {
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}
	if !checkOutDate.After(checkInDate) {
		return nil, ErrInvalidDateRange
	}
	return &Reservation{
		id:              id,
		guestID:         guestID,
		guestName:       guestName,
		roomType:        roomType,
		checkInDate:     checkInDate,
		checkOutDate:    checkOutDate,
		status:          status,
		totalPrice:      totalPrice,
		source:          source,
		specialRequests: specialRequests,
		createdAt:       createdAt,
	}, nil
}

// TransitionTo moves the reservation through its lifecycle, rejecting any
// step the state machine does not define.
func (r *Reservation) TransitionTo(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCheckedIn() bool {
	return r.status == StatusCheckedIn
}

func (r *Reservation) Nights() int {
	return int(r.checkOutDate.Sub(r.checkInDate).Hours() / 24)
}

func (r *Reservation) ID() string                 { return r.id }
func (r *Reservation) GuestID() string            { return r.guestID }
func (r *Reservation) GuestName() string          { return r.guestName }
func (r *Reservation) RoomType() room.Type        { return r.roomType }
func (r *Reservation) CheckInDate() time.Time     { return r.checkInDate }
func (r *Reservation) CheckOutDate() time.Time    { return r.checkOutDate }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) TotalPrice() billing.Money  { return r.totalPrice }
func (r *Reservation) Source() Source             { return r.source }
func (r *Reservation) SpecialRequests() string    { return r.specialRequests }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
