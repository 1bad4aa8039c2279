package repository

import (
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/guest"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
)

func scanGuest(row pgx.Row) (*guest.Guest, error) {
	var (
		id, name, phone, idNumber, vipLevel string
		registeredAt                        time.Time
	)
	if err := row.Scan(&id, &name, &phone, &idNumber, &vipLevel, &registeredAt); err != nil {
		return nil, err
	}
	return guest.Reconstruct(id, name, phone, idNumber, guest.VIPLevel(vipLevel), registeredAt)
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, guestID, guestName, roomType, status, source string
		specialRequests                                  *string
		checkInDate, checkOutDate, createdAt             time.Time
		priceCents                                       int64
	)
	if err := row.Scan(&id, &guestID, &guestName, &roomType, &checkInDate, &checkOutDate,
		&status, &priceCents, &source, &specialRequests, &createdAt); err != nil {
		return nil, err
	}
	requests := ""
	if specialRequests != nil {
		requests = *specialRequests
	}
	return reservation.Reconstruct(
		id, guestID, guestName, room.Type(roomType),
		checkInDate, checkOutDate, reservation.Status(status),
		billing.NewMoney(priceCents), reservation.Source(source), requests, createdAt,
	)
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		number, roomType, status string
		floor                    int
		priceCents               int64
		features                 []string
	)
	if err := row.Scan(&number, &floor, &roomType, &status, &priceCents, &features); err != nil {
		return nil, err
	}
	return room.Reconstruct(number, floor, room.Type(roomType), room.Status(status), billing.NewMoney(priceCents), features)
}

func scanCard(row pgx.Row) (*room.Card, error) {
	var (
		cardID, roomNumber, guestID string
		issuedAt, expiresAt         time.Time
		isActive                    bool
	)
	if err := row.Scan(&cardID, &roomNumber, &guestID, &issuedAt, &expiresAt, &isActive); err != nil {
		return nil, err
	}
	return room.ReconstructCard(cardID, roomNumber, guestID, issuedAt, expiresAt, isActive), nil
}

func scanOccupancy(row pgx.Row) (*commands.Occupancy, error) {
	var (
		gID, gName, gPhone, gIDNumber, gVIP              string
		gRegisteredAt                                    time.Time
		rvID, rvGuestID, rvGuestName, rvRoomType         string
		rvStatus, rvSource                               string
		rvSpecialRequests                                *string
		rvCheckIn, rvCheckOut, rvCreatedAt               time.Time
		rvPriceCents                                     int64
		cCardID, cRoomNumber, cGuestID                   string
		cIssuedAt, cExpiresAt                            time.Time
		cIsActive                                        bool
	)
	if err := row.Scan(
		&gID, &gName, &gPhone, &gIDNumber, &gVIP, &gRegisteredAt,
		&rvID, &rvGuestID, &rvGuestName, &rvRoomType, &rvCheckIn, &rvCheckOut,
		&rvStatus, &rvPriceCents, &rvSource, &rvSpecialRequests, &rvCreatedAt,
		&cCardID, &cRoomNumber, &cGuestID, &cIssuedAt, &cExpiresAt, &cIsActive,
	); err != nil {
		return nil, err
	}

	g, err := guest.Reconstruct(gID, gName, gPhone, gIDNumber, guest.VIPLevel(gVIP), gRegisteredAt)
	if err != nil {
		return nil, err
	}

	requests := ""
	if rvSpecialRequests != nil {
		requests = *rvSpecialRequests
	}
	resv, err := reservation.Reconstruct(
		rvID, rvGuestID, rvGuestName, room.Type(rvRoomType),
		rvCheckIn, rvCheckOut, reservation.Status(rvStatus),
		billing.NewMoney(rvPriceCents), reservation.Source(rvSource), requests, rvCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	card := room.ReconstructCard(cCardID, cRoomNumber, cGuestID, cIssuedAt, cExpiresAt, cIsActive)

	return &commands.Occupancy{Guest: g, Reservation: resv, Card: card}, nil
}
