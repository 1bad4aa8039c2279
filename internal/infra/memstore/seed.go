package memstore

import (
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/guest"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
)

// NewSeededStore returns a store pre-loaded with the demo dataset so the
// service is usable out of the box in memory mode.
func NewSeededStore() *Store {
	s := NewStore()

	for _, g := range seedGuests() {
		s.PutGuest(g)
	}
	for _, r := range seedReservations() {
		s.PutReservation(r)
	}
	for _, r := range seedRooms() {
		s.PutRoom(r)
	}
	return s
}

func seedGuests() []*guest.Guest {
	g1, _ := guest.Reconstruct("G001", "张伟", "13800138001", "110***1234", guest.VIPGold, mustTime("2025-06-15T10:00:00Z"))
	g2, _ := guest.Reconstruct("G002", "李娟", "13900139002", "310***5678", guest.VIPNormal, mustTime("2025-11-20T14:00:00Z"))
	g3, _ := guest.Reconstruct("G003", "王磊", "13700137003", "440***9012", guest.VIPSilver, mustTime("2026-01-10T08:00:00Z"))
	return []*guest.Guest{g1, g2, g3}
}

func seedReservations() []*reservation.Reservation {
	r1, _ := reservation.Reconstruct(
		"RSV-20260225-001", "G001", "张伟", room.TypeDeluxe,
		mustDate("2026-02-25"), mustDate("2026-02-28"),
		reservation.StatusConfirmed, billing.NewMoneyFromYuan(1680),
		reservation.SourceOnline, "高层，远离电梯", mustTime("2026-02-20T12:00:00Z"),
	)
	r2, _ := reservation.Reconstruct(
		"RSV-20260225-002", "G002", "李娟", room.TypeStandard,
		mustDate("2026-02-25"), mustDate("2026-02-26"),
		reservation.StatusConfirmed, billing.NewMoneyFromYuan(388),
		reservation.SourceOTA, "", mustTime("2026-02-24T18:00:00Z"),
	)
	r3, _ := reservation.Reconstruct(
		"RSV-20260226-001", "G003", "王磊", room.TypeSuite,
		mustDate("2026-02-26"), mustDate("2026-03-01"),
		reservation.StatusConfirmed, billing.NewMoneyFromYuan(4760),
		reservation.SourcePhone, "需要婴儿床", mustTime("2026-02-22T09:00:00Z"),
	)
	return []*reservation.Reservation{r1, r2, r3}
}

func seedRooms() []*room.Room {
	specs := []struct {
		number   string
		floor    int
		roomType room.Type
		status   room.Status
		price    int64
		features []string
	}{
		{"1201", 12, room.TypeStandard, room.StatusAvailable, 388, []string{"city-view"}},
		{"1202", 12, room.TypeStandard, room.StatusAvailable, 388, []string{"garden-view"}},
		{"1203", 12, room.TypeStandard, room.StatusOccupied, 388, []string{"city-view"}},
		{"1205", 12, room.TypeDeluxe, room.StatusAvailable, 560, []string{"city-view", "balcony"}},
		{"1208", 12, room.TypeDeluxe, room.StatusAvailable, 560, []string{"lake-view", "bathtub"}},
		{"1210", 12, room.TypeDeluxe, room.StatusCleaning, 560, []string{"city-view", "balcony"}},
		{"1501", 15, room.TypeSuite, room.StatusAvailable, 1280, []string{"lake-view", "living-room", "bathtub"}},
		{"1502", 15, room.TypeSuite, room.StatusOccupied, 1280, []string{"city-view", "living-room"}},
		{"1801", 18, room.TypePresidential, room.StatusAvailable, 3880, []string{"panorama", "living-room", "study", "jacuzzi"}},
	}

	rooms := make([]*room.Room, 0, len(specs))
	for _, spec := range specs {
		r, _ := room.Reconstruct(spec.number, spec.floor, spec.roomType, spec.status, billing.NewMoneyFromYuan(spec.price), spec.features)
		rooms = append(rooms, r)
	}
	return rooms
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}
