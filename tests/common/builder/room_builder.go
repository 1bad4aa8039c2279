//go:build unit || e2e

package builder

import (
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
)

type RoomBuilder struct {
	number   string
	floor    int
	roomType room.Type
	status   room.Status
	price    billing.Money
	features []string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		number:   "1205",
		floor:    12,
		roomType: room.TypeDeluxe,
		status:   room.StatusAvailable,
		price:    billing.NewMoneyFromYuan(560),
		features: []string{"city-view", "balcony"},
	}
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.number = number
	return b
}

func (b *RoomBuilder) WithFloor(floor int) *RoomBuilder {
	b.floor = floor
	return b
}

func (b *RoomBuilder) WithType(t room.Type) *RoomBuilder {
	b.roomType = t
	return b
}

func (b *RoomBuilder) WithStatus(status room.Status) *RoomBuilder {
	b.status = status
	return b
}

func (b *RoomBuilder) WithPrice(price billing.Money) *RoomBuilder {
	b.price = price
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.Reconstruct(b.number, b.floor, b.roomType, b.status, b.price, b.features)
}
