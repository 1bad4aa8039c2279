package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/guest"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/identity"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/clock"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/errs"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/shared"
)

var (
	ErrReservationNotFound    = errs.New("no confirmed reservation found")
	ErrInvalidSelection       = errs.New("reservation selection out of range")
	ErrRegistryUnavailable    = errs.New("guest registry unavailable")
	ErrScanFailed             = errs.New("document scan failed")
	ErrNameMismatch           = errs.New("document name mismatch")
	ErrIdentityUnavailable    = errs.New("identity service unavailable")
	ErrFaceVerificationFailed = errs.New("face verification failed")
	ErrNoRoomAvailable        = errs.New("no room of requested type available")
	ErrRoomSystemUnavailable  = errs.New("room system unavailable")
	ErrCardIssueFailed        = errs.New("room card issuance failed")
)

type CheckInParams struct {
	GuestName string
	// Selection is the 1-based ordinal chosen by the guest when more than
	// one confirmed reservation matches the name; nil until asked.
	Selection *int
	SessionID string
	Operator  string
}

type ReservationCandidate struct {
	Index         int
	ReservationID string
	RoomType      room.Type
	CheckInDate   time.Time
	CheckOutDate  time.Time
}

type CheckInResult struct {
	// SelectionRequired reports that the flow stopped to ask the guest
	// which reservation to use; Candidates carries the 1-based choices.
	SelectionRequired bool
	Candidates        []ReservationCandidate

	Guest       *guest.Guest
	Reservation *reservation.Reservation
	Room        *room.Room
	Card        *room.Card
	FaceScore   float64

	// ReconciliationNeeded is set when bookkeeping failed after the card
	// was already handed over. The check-in is still reported as completed;
	// back-office consistency is repaired out of band.
	ReconciliationNeeded bool
}

type CheckInCommands interface {
	CheckIn(ctx context.Context, params CheckInParams) (*CheckInResult, error)
}

type checkInUseCaseImpl struct {
	registry GuestRegistry
	rooms    RoomManager
	idsvc    IdentityService
	notifier StaffNotifier
	sessions shared.SessionStore
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckInCommands(
	registry GuestRegistry,
	rooms RoomManager,
	idsvc IdentityService,
	notifier StaffNotifier,
	sessions shared.SessionStore,
	clock clock.Clock,
	logger *slog.Logger,
) CheckInCommands {
	return &checkInUseCaseImpl{
		registry: registry,
		rooms:    rooms,
		idsvc:    idsvc,
		notifier: notifier,
		sessions: sessions,
		clock:    clock,
		logger:   logger,
	}
}

func (u *checkInUseCaseImpl) CheckIn(ctx context.Context, params CheckInParams) (*CheckInResult, error) {
	g, selected, candidates, err := u.resolveReservation(ctx, params)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return &CheckInResult{SelectionRequired: true, Candidates: candidates}, nil
	}

	verification, err := u.runVerificationGate(ctx, selected)
	if err != nil {
		return nil, err
	}

	assigned, card, err := u.allocateRoomAndCard(ctx, g, selected)
	if err != nil {
		return nil, err
	}

	// The physical card is handed over at this point. Everything below is
	// bookkeeping: failures are logged and escalated, never rolled back.
	reconciliation := u.persistCheckIn(ctx, g, selected, assigned, card, params.Operator)

	u.storeSessionState(ctx, params.SessionID, g, selected, assigned, card)

	return &CheckInResult{
		Guest:                g,
		Reservation:          selected,
		Room:                 assigned,
		Card:                 card,
		FaceScore:            verification.FaceScore(),
		ReconciliationNeeded: reconciliation,
	}, nil
}

// resolveReservation looks up the guest's confirmed reservations and applies
// the guest's ordinal selection. A nil reservation with candidates means the
// caller has to ask the guest to choose.
func (u *checkInUseCaseImpl) resolveReservation(ctx context.Context, params CheckInParams) (*guest.Guest, *reservation.Reservation, []ReservationCandidate, error) {
	g, reservations, err := u.registry.FindByGuestName(ctx, params.GuestName)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, ErrRegistryUnavailable)
	}
	if g == nil || len(reservations) == 0 {
		return nil, nil, nil, ErrReservationNotFound
	}

	if len(reservations) == 1 {
		return g, reservations[0], nil, nil
	}

	if params.Selection == nil {
		candidates := make([]ReservationCandidate, len(reservations))
		for i, r := range reservations {
			candidates[i] = ReservationCandidate{
				Index:         i + 1,
				ReservationID: r.ID(),
				RoomType:      r.RoomType(),
				CheckInDate:   r.CheckInDate(),
				CheckOutDate:  r.CheckOutDate(),
			}
		}
		return g, nil, candidates, nil
	}

	idx := *params.Selection
	if idx < 1 || idx > len(reservations) {
		return nil, nil, nil, ErrInvalidSelection
	}
	return g, reservations[idx-1], nil, nil
}

// runVerificationGate drives the two-factor gate: document scan with one
// bounded retry, then face match with no retry.
func (u *checkInUseCaseImpl) runVerificationGate(ctx context.Context, resv *reservation.Reservation) (*identity.Verification, error) {
	verification := identity.NewVerification(resv.GuestName(), identity.DefaultRetryPolicy())

	var scan identity.ScanResult
	for {
		if err := verification.BeginScan(); err != nil {
			return nil, errs.Mark(err, ErrScanFailed)
		}

		result, err := u.idsvc.ScanDocument(ctx)
		if err != nil {
			retryAllowed, stateErr := verification.RecordScanFailure()
			if stateErr != nil {
				return nil, errs.Mark(stateErr, ErrScanFailed)
			}
			if retryAllowed {
				u.logger.Warn("document scan failed, retrying once", "error", err)
				continue
			}
			u.notifyStaff(ctx, RecipientDutyManager,
				fmt.Sprintf("document scan failed twice for reservation %s, manual assistance needed", resv.ID()))
			return nil, errs.Mark(err, ErrScanFailed)
		}

		scan = result
		if err := verification.RecordScanResult(result); err != nil {
			if errors.Is(err, identity.ErrNameMismatch) {
				u.notifyStaff(ctx, RecipientDutyManager,
					fmt.Sprintf("document name %q does not match reservation %s guest %q, possible fraud",
						result.Name, resv.ID(), resv.GuestName()))
				return nil, errs.Mark(err, ErrNameMismatch)
			}
			return nil, errs.Mark(err, ErrScanFailed)
		}
		break
	}

	face, err := u.idsvc.MatchFace(ctx, scan.PhotoB64)
	if err != nil {
		return nil, errs.Mark(err, ErrIdentityUnavailable)
	}
	if err := verification.RecordFaceResult(face); err != nil {
		u.logger.Info("face verification rejected",
			"reservation_id", resv.ID(), "score", face.Score, "liveness", face.Liveness)
		return nil, errs.Mark(err, ErrFaceVerificationFailed)
	}

	return verification, nil
}

func (u *checkInUseCaseImpl) allocateRoomAndCard(ctx context.Context, g *guest.Guest, resv *reservation.Reservation) (*room.Room, *room.Card, error) {
	assigned, err := u.rooms.AssignRoom(ctx, resv.RoomType())
	if err != nil {
		if infra.IsKind(err, infra.KindCapacity) {
			return nil, nil, errs.Mark(err, ErrNoRoomAvailable)
		}
		return nil, nil, errs.Mark(err, ErrRoomSystemUnavailable)
	}

	card, err := u.rooms.IssueCard(ctx, assigned.Number(), g.ID(), resv.CheckOutDate())
	if err != nil {
		// The room is claimed but no card left the desk: surface the held
		// room for staff reconciliation instead of guessing at a rollback.
		u.notifyStaff(ctx, RecipientDutyManager,
			fmt.Sprintf("room %s held for reservation %s but card issuance failed", assigned.Number(), resv.ID()))
		return nil, nil, errs.Mark(err, ErrCardIssueFailed)
	}

	return assigned, card, nil
}

// persistCheckIn runs the bookkeeping after the irreversible hand-over: room
// to occupied, audit record, reservation to checked_in. It reports whether
// any step needs out-of-band reconciliation.
func (u *checkInUseCaseImpl) persistCheckIn(ctx context.Context, g *guest.Guest, resv *reservation.Reservation, assigned *room.Room, card *room.Card, operator string) bool {
	reconciliation := false

	if err := assigned.Occupy(); err != nil {
		u.logger.Error("room entity rejected occupy transition", "room", assigned.Number(), "error", err)
		reconciliation = true
	} else if err := u.rooms.SetRoomStatus(ctx, assigned.Number(), room.StatusOccupied); err != nil {
		u.logger.Error("failed to mark room occupied", "room", assigned.Number(), "error", err, "reconciliation_needed", true)
		reconciliation = true
	}

	record := CheckInRecord{
		ReservationID: resv.ID(),
		GuestID:       g.ID(),
		RoomNumber:    assigned.Number(),
		CardID:        card.CardID(),
		IDVerified:    true,
		FaceVerified:  true,
		CheckInTime:   u.clock.Now(),
		OperatedBy:    operator,
	}
	if err := u.registry.AppendCheckInRecord(ctx, record); err != nil {
		u.logger.Error("failed to persist check-in record", "reservation_id", resv.ID(), "error", err, "reconciliation_needed", true)
		reconciliation = true
	}

	if err := resv.TransitionTo(reservation.StatusCheckedIn); err != nil {
		u.logger.Error("reservation rejected checked_in transition", "reservation_id", resv.ID(), "error", err)
		reconciliation = true
	} else if err := u.registry.SetReservationStatus(ctx, resv.ID(), reservation.StatusCheckedIn); err != nil {
		u.logger.Error("failed to update reservation status", "reservation_id", resv.ID(), "error", err, "reconciliation_needed", true)
		reconciliation = true
	}

	if reconciliation {
		u.notifyStaff(ctx, RecipientTechSupport,
			fmt.Sprintf("check-in bookkeeping incomplete for reservation %s room %s, reconcile manually", resv.ID(), assigned.Number()))
	}

	return reconciliation
}

func (u *checkInUseCaseImpl) storeSessionState(ctx context.Context, sessionID string, g *guest.Guest, resv *reservation.Reservation, assigned *room.Room, card *room.Card) {
	if sessionID == "" {
		return
	}
	session := &shared.FrontDeskSession{
		Guest: &shared.SessionGuest{
			ID:       g.ID(),
			Name:     g.Name(),
			Phone:    g.Phone(),
			VIPLevel: string(g.VIPLevel()),
		},
		Room: &shared.SessionRoom{
			Number:     assigned.Number(),
			Floor:      assigned.Floor(),
			Type:       assigned.RoomType().String(),
			PriceCents: assigned.Price().Cents(),
		},
		Reservation: &shared.SessionReservation{
			ID:           resv.ID(),
			GuestName:    resv.GuestName(),
			RoomType:     resv.RoomType().String(),
			CheckInDate:  resv.CheckInDate(),
			CheckOutDate: resv.CheckOutDate(),
			PriceCents:   resv.TotalPrice().Cents(),
		},
		Card: &shared.SessionCard{
			CardID:     card.CardID(),
			RoomNumber: card.RoomNumber(),
			ExpiresAt:  card.ExpiresAt(),
		},
		UpdatedAt: u.clock.Now(),
	}
	if err := u.sessions.Save(ctx, sessionID, session); err != nil {
		u.logger.Warn("failed to store session state", "session_id", sessionID, "error", err)
	}
}

func (u *checkInUseCaseImpl) notifyStaff(ctx context.Context, recipient, message string) {
	if err := u.notifier.Notify(ctx, recipient, message); err != nil {
		u.logger.Warn("staff notification failed", "recipient", recipient, "error", err)
	}
}
