package billing

import "time"

type ChargeCategory string

const (
	CategoryRoom       ChargeCategory = "room"
	CategoryMinibar    ChargeCategory = "minibar"
	CategoryRestaurant ChargeCategory = "restaurant"
	CategoryLaundry    ChargeCategory = "laundry"
	CategorySpa        ChargeCategory = "spa"
	CategoryDamage     ChargeCategory = "damage"
	CategoryOther      ChargeCategory = "other"
)

func (c ChargeCategory) IsValid() bool {
	switch c {
	case CategoryRoom, CategoryMinibar, CategoryRestaurant, CategoryLaundry, CategorySpa, CategoryDamage, CategoryOther:
		return true
	default:
		return false
	}
}

// ChargeItem is an incidental charge posted against a room during a stay.
// Items are append-only: they are never mutated, only aggregated at check-out.
type ChargeItem struct {
	ID          string
	RoomNumber  string
	Category    ChargeCategory
	Description string
	Amount      Money
	ChargedAt   time.Time
}
