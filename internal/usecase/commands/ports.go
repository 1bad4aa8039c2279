package commands

import (
	"context"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/guest"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/identity"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
)

// Occupancy is the active stay resolved by room number: the guest, their
// checked-in reservation and the room's active card.
type Occupancy struct {
	Guest       *guest.Guest
	Reservation *reservation.Reservation
	Card        *room.Card
}

// CheckInRecord is the write-once audit fact that a check-in happened.
type CheckInRecord struct {
	ReservationID string
	GuestID       string
	RoomNumber    string
	CardID        string
	IDVerified    bool
	FaceVerified  bool
	CheckInTime   time.Time
	OperatedBy    string
}

// CheckOutRecord is the write-once audit fact that a check-out settled.
type CheckOutRecord struct {
	ReservationID string
	GuestID       string
	RoomNumber    string
	CardID        string
	CheckOutTime  time.Time
	TotalCharges  billing.Money
	PaidAmount    billing.Money
	RefundAmount  billing.Money
	PaymentMethod string
	OperatedBy    string
}

// GuestRegistry is the reservation/charge side of the property-management
// backend. A transport failure is reported via infra.KindUnavailable and is
// distinct from a plain not-found result.
type GuestRegistry interface {
	// FindByGuestName returns the guest and their confirmed reservations.
	// A missing guest returns (nil, nil, nil); an empty reservation list is
	// a normal negative result, not an error.
	FindByGuestName(ctx context.Context, name string) (*guest.Guest, []*reservation.Reservation, error)
	// FindByRoom resolves the active occupancy of a room, with
	// infra.KindNotFound when the room has no checked-in guest.
	FindByRoom(ctx context.Context, roomNumber string) (*Occupancy, error)
	SetReservationStatus(ctx context.Context, reservationID string, status reservation.Status) error
	AppendCheckInRecord(ctx context.Context, record CheckInRecord) error
	AppendCheckOutRecord(ctx context.Context, record CheckOutRecord) error
	ListCharges(ctx context.Context, roomNumber string) ([]billing.ChargeItem, error)
}

// RoomManager is the room/card side of the property-management backend.
type RoomManager interface {
	// AssignRoom atomically claims one available room of the requested type
	// (the claimed room comes back as StatusReserved) and fails with
	// infra.KindCapacity when none is free. Availability must never be
	// re-derived from a stale local cache.
	AssignRoom(ctx context.Context, roomType room.Type) (*room.Room, error)
	SetRoomStatus(ctx context.Context, roomNumber string, status room.Status) error
	IssueCard(ctx context.Context, roomNumber, guestID string, expiresAt time.Time) (*room.Card, error)
	// RevokeCard is idempotent: revoking an already-inactive card succeeds.
	RevokeCard(ctx context.Context, cardID string) error
}

// IdentityService runs the two external verification calls at the kiosk.
type IdentityService interface {
	ScanDocument(ctx context.Context) (identity.ScanResult, error)
	MatchFace(ctx context.Context, referencePhotoB64 string) (identity.FaceMatchResult, error)
}

// StaffNotifier alerts hotel staff. Delivery is fire-and-forget: failures are
// logged by the caller and never block a guest-facing flow.
type StaffNotifier interface {
	Notify(ctx context.Context, recipient, message string) error
}

// Staff notification recipients.
const (
	RecipientDutyManager = "duty-manager"
	RecipientSupervisor  = "supervisor"
	RecipientTechSupport = "tech-support"
)
