//go:build unit || e2e

package builder

import (
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
)

type ReservationBuilder struct {
	id              string
	guestID         string
	guestName       string
	roomType        room.Type
	checkInDate     time.Time
	checkOutDate    time.Time
	status          reservation.Status
	totalPrice      billing.Money
	source          reservation.Source
	specialRequests string
	createdAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	checkIn := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		id:           "RSV-20260225-001",
		guestID:      "G001",
		guestName:    "张伟",
		roomType:     room.TypeDeluxe,
		checkInDate:  checkIn,
		checkOutDate: checkIn.AddDate(0, 0, 3),
		status:       reservation.StatusConfirmed,
		totalPrice:   billing.NewMoneyFromYuan(1680),
		source:       reservation.SourceOnline,
		createdAt:    checkIn.AddDate(0, 0, -5),
	}
}

func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.id = id
	return b
}

func (b *ReservationBuilder) WithGuest(guestID, guestName string) *ReservationBuilder {
	b.guestID = guestID
	b.guestName = guestName
	return b
}

func (b *ReservationBuilder) WithRoomType(t room.Type) *ReservationBuilder {
	b.roomType = t
	return b
}

func (b *ReservationBuilder) WithDates(checkIn, checkOut time.Time) *ReservationBuilder {
	b.checkInDate = checkIn
	b.checkOutDate = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.status = status
	return b
}

func (b *ReservationBuilder) WithTotalPrice(price billing.Money) *ReservationBuilder {
	b.totalPrice = price
	return b
}

func (b *ReservationBuilder) WithSource(source reservation.Source) *ReservationBuilder {
	b.source = source
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.Reconstruct(
		b.id, b.guestID, b.guestName, b.roomType,
		b.checkInDate, b.checkOutDate, b.status,
		b.totalPrice, b.source, b.specialRequests, b.createdAt,
	)
}
