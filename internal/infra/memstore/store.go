package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/guest"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"
)

// Store is the in-memory fixture backend: a single mutex-guarded struct
// implementing both property-management ports. It is selected once at
// process start for local development and tests; the claim step in
// AssignRoom is atomic under the mutex, matching the transactional contract
// the live backend provides.
type Store struct {
	mu sync.Mutex

	guests       map[string]*guest.Guest
	reservations map[string]*reservation.Reservation
	rooms        map[string]*room.Room
	cards        map[string]*room.Card
	charges      []billing.ChargeItem

	checkInRecords  []commands.CheckInRecord
	checkOutRecords []commands.CheckOutRecord

	cardCounter int
}

func NewStore() *Store {
	return &Store{
		guests:       make(map[string]*guest.Guest),
		reservations: make(map[string]*reservation.Reservation),
		rooms:        make(map[string]*room.Room),
		cards:        make(map[string]*room.Card),
		cardCounter:  1000,
	}
}

// ---- fixture setup ----

func (s *Store) PutGuest(g *guest.Guest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests[g.ID()] = g
}

func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID()] = r
}

func (s *Store) PutRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.Number()] = r
}

func (s *Store) AddCharge(item billing.ChargeItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charges = append(s.charges, item)
}

// ---- GuestRegistry ----

func (s *Store) FindByGuestName(_ context.Context, name string) (*guest.Guest, []*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *guest.Guest
	for _, g := range s.guests {
		if g.Name() == name {
			found = g
			break
		}
	}
	if found == nil {
		return nil, nil, nil
	}

	var confirmed []*reservation.Reservation
	for _, r := range s.reservations {
		if r.GuestID() == found.ID() && r.IsConfirmed() {
			confirmed = append(confirmed, cloneReservation(r))
		}
	}
	// Stable order: the guest's ordinal selection must mean the same
	// reservation on every call.
	sort.Slice(confirmed, func(i, j int) bool {
		if !confirmed[i].CheckInDate().Equal(confirmed[j].CheckInDate()) {
			return confirmed[i].CheckInDate().Before(confirmed[j].CheckInDate())
		}
		return confirmed[i].ID() < confirmed[j].ID()
	})
	return found, confirmed, nil
}

func (s *Store) FindByRoom(_ context.Context, roomNumber string) (*commands.Occupancy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var card *room.Card
	for _, c := range s.cards {
		if c.RoomNumber() == roomNumber && c.IsActive() {
			card = c
			break
		}
	}

	for _, r := range s.reservations {
		if !r.IsCheckedIn() {
			continue
		}
		if card == nil || card.GuestID() != r.GuestID() {
			continue
		}
		g, ok := s.guests[r.GuestID()]
		if !ok {
			continue
		}
		return &commands.Occupancy{
			Guest:       g,
			Reservation: cloneReservation(r),
			Card:        cloneCard(card),
		}, nil
	}

	return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("no active occupancy for room %s", roomNumber))
}

func (s *Store) SetReservationStatus(_ context.Context, reservationID string, status reservation.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	if r.Status() == status {
		return nil
	}
	if err := r.TransitionTo(status); err != nil {
		return infra.WrapRepoErr("illegal reservation status transition", err, infra.KindConflict)
	}
	return nil
}

func (s *Store) AppendCheckInRecord(_ context.Context, record commands.CheckInRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkInRecords = append(s.checkInRecords, record)
	return nil
}

func (s *Store) AppendCheckOutRecord(_ context.Context, record commands.CheckOutRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkOutRecords = append(s.checkOutRecords, record)
	return nil
}

func (s *Store) ListCharges(_ context.Context, roomNumber string) ([]billing.ChargeItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []billing.ChargeItem
	for _, c := range s.charges {
		if c.RoomNumber == roomNumber {
			result = append(result, c)
		}
	}
	return result, nil
}

// ---- RoomManager ----

func (s *Store) AssignRoom(_ context.Context, roomType room.Type) (*room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.RoomType() == roomType && r.IsAvailable() {
			// Claim under the lock so concurrent sessions can never be
			// handed the same room.
			if err := s.setRoomStatusLocked(r.Number(), room.StatusReserved); err != nil {
				return nil, err
			}
			return cloneRoom(s.rooms[r.Number()]), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindCapacity, fmt.Sprintf("no available %s room", roomType))
}

func (s *Store) SetRoomStatus(_ context.Context, roomNumber string, status room.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setRoomStatusLocked(roomNumber, status)
}

func (s *Store) setRoomStatusLocked(roomNumber string, status room.Status) error {
	r, ok := s.rooms[roomNumber]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	replaced, err := room.Reconstruct(r.Number(), r.Floor(), r.RoomType(), status, r.Price(), r.Features())
	if err != nil {
		return infra.WrapRepoErr("invalid room status", err, infra.KindConflict)
	}
	s.rooms[roomNumber] = replaced
	return nil
}

func (s *Store) IssueCard(_ context.Context, roomNumber, guestID string, expiresAt time.Time) (*room.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cardCounter++
	card := room.NewCard(fmt.Sprintf("CARD-%d", s.cardCounter), roomNumber, guestID, time.Now(), expiresAt)
	s.cards[card.CardID()] = card
	return cloneCard(card), nil
}

func (s *Store) RevokeCard(_ context.Context, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[cardID]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "card not found")
	}
	// Idempotent: revoking an inactive card is a no-op.
	card.Revoke()
	return nil
}

// ---- read side ----

func (s *Store) ListRooms(_ context.Context) ([]*room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*room.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		result = append(result, cloneRoom(r))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number() < result[j].Number() })
	return result, nil
}

func (s *Store) FindReservationByID(_ context.Context, id string) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return cloneReservation(r), nil
}

// ---- inspection helpers for fixtures and tests ----

func (s *Store) RoomByNumber(number string) *room.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRoom(s.rooms[number])
}

func (s *Store) CardByID(cardID string) *room.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCard(s.cards[cardID])
}

func (s *Store) ReservationByID(id string) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneReservation(s.reservations[id])
}

func (s *Store) CheckInRecords() []commands.CheckInRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]commands.CheckInRecord(nil), s.checkInRecords...)
}

func (s *Store) CheckOutRecords() []commands.CheckOutRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]commands.CheckOutRecord(nil), s.checkOutRecords...)
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	if r == nil {
		return nil
	}
	clone, _ := reservation.Reconstruct(
		r.ID(), r.GuestID(), r.GuestName(), r.RoomType(),
		r.CheckInDate(), r.CheckOutDate(), r.Status(), r.TotalPrice(),
		r.Source(), r.SpecialRequests(), r.CreatedAt(),
	)
	return clone
}

func cloneRoom(r *room.Room) *room.Room {
	if r == nil {
		return nil
	}
	clone, _ := room.Reconstruct(r.Number(), r.Floor(), r.RoomType(), r.Status(), r.Price(), r.Features())
	return clone
}

func cloneCard(c *room.Card) *room.Card {
	if c == nil {
		return nil
	}
	return room.ReconstructCard(c.CardID(), c.RoomNumber(), c.GuestID(), c.IssuedAt(), c.ExpiresAt(), c.IsActive())
}
