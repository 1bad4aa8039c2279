package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/clock"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/errs"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/shared"
)

var (
	ErrNoOccupancy           = errs.New("no active occupancy for room")
	ErrChargesUnavailable    = errs.New("charge lookup unavailable")
	ErrNoPendingBill         = errs.New("no pending bill for room")
	ErrPaymentMethodRequired = errs.New("payment method required")
)

type PreviewBillParams struct {
	RoomNumber string
	SessionID  string
}

// BillPreview is the itemized bill presented to the guest for confirmation.
type BillPreview struct {
	RoomNumber   string
	GuestName    string
	RoomCharge   billing.Money
	Charges      []billing.ChargeItem
	TotalAmount  billing.Money
	Balance      billing.Money
	AmountDue    billing.Money
	RefundAmount billing.Money
}

type CheckOutParams struct {
	RoomNumber    string
	Confirmed     bool
	PaymentMethod string
	SessionID     string
	Operator      string
}

type CheckOutResult struct {
	// Escalated means the guest disputed the bill: a supervisor was
	// notified and no entity was mutated.
	Escalated bool

	RoomNumber      string
	GuestName       string
	TotalCharges    billing.Money
	PaidAmount      billing.Money
	RefundAmount    billing.Money
	AmountCollected billing.Money
	PaymentMethod   string

	// ReconciliationNeeded is set when bookkeeping failed after settlement
	// was confirmed. The guest-facing transaction is still complete.
	ReconciliationNeeded bool
}

type CheckOutCommands interface {
	PreviewBill(ctx context.Context, params PreviewBillParams) (*BillPreview, error)
	CheckOut(ctx context.Context, params CheckOutParams) (*CheckOutResult, error)
}

type checkOutUseCaseImpl struct {
	registry GuestRegistry
	rooms    RoomManager
	notifier StaffNotifier
	sessions shared.SessionStore
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckOutCommands(
	registry GuestRegistry,
	rooms RoomManager,
	notifier StaffNotifier,
	sessions shared.SessionStore,
	clock clock.Clock,
	logger *slog.Logger,
) CheckOutCommands {
	return &checkOutUseCaseImpl{
		registry: registry,
		rooms:    rooms,
		notifier: notifier,
		sessions: sessions,
		clock:    clock,
		logger:   logger,
	}
}

// PreviewBill resolves the active occupancy, aggregates the room's incidental
// charges into a statement and parks it for the confirmation call.
func (u *checkOutUseCaseImpl) PreviewBill(ctx context.Context, params PreviewBillParams) (*BillPreview, error) {
	occ, err := u.registry.FindByRoom(ctx, params.RoomNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoOccupancy)
		}
		return nil, errs.Mark(err, ErrRegistryUnavailable)
	}

	charges, err := u.registry.ListCharges(ctx, params.RoomNumber)
	if err != nil {
		// An unknown bill is never guessed at: escalate and stop.
		u.notifyStaff(ctx, RecipientTechSupport,
			fmt.Sprintf("charge lookup failed for room %s during check-out", params.RoomNumber))
		return nil, errs.Mark(err, ErrChargesUnavailable)
	}

	statement := billing.NewStatement(occ.Reservation.TotalPrice(), charges)

	if err := u.parkPendingSettlement(ctx, params.SessionID, params.RoomNumber, occ, statement); err != nil {
		u.logger.Warn("failed to park pending settlement", "room", params.RoomNumber, "error", err)
	}

	return &BillPreview{
		RoomNumber:   params.RoomNumber,
		GuestName:    occ.Guest.Name(),
		RoomCharge:   statement.RoomCharge(),
		Charges:      statement.Charges(),
		TotalAmount:  statement.TotalAmount(),
		Balance:      statement.Balance(),
		AmountDue:    statement.AmountDue(),
		RefundAmount: statement.RefundAmount(),
	}, nil
}

// CheckOut settles the bill the guest was shown by PreviewBill. A dispute
// escalates to a supervisor and mutates nothing; an expired or missing
// pending bill means the guest has to be shown the bill again.
func (u *checkOutUseCaseImpl) CheckOut(ctx context.Context, params CheckOutParams) (*CheckOutResult, error) {
	session, err := u.sessions.Load(ctx, params.SessionID)
	if err != nil {
		u.logger.Warn("failed to load session", "session_id", params.SessionID, "error", err)
	}
	if session == nil || session.Pending == nil || session.Pending.RoomNumber != params.RoomNumber {
		return nil, ErrNoPendingBill
	}
	pending := session.Pending

	total := billing.NewMoney(pending.TotalCents)
	balance := billing.NewMoney(pending.BalanceCents)

	if !params.Confirmed {
		u.notifyStaff(ctx, RecipientSupervisor,
			fmt.Sprintf("guest %s disputes the bill for room %s (total %s), manual review needed",
				pending.GuestName, pending.RoomNumber, total))
		session.Pending = nil
		if err := u.sessions.Save(ctx, params.SessionID, session); err != nil {
			u.logger.Warn("failed to clear pending settlement", "session_id", params.SessionID, "error", err)
		}
		return &CheckOutResult{
			Escalated:    true,
			RoomNumber:   pending.RoomNumber,
			GuestName:    pending.GuestName,
			TotalCharges: total,
		}, nil
	}

	collected := billing.NewMoney(0)
	refund := billing.NewMoney(0)
	switch {
	case balance.IsPositive():
		if params.PaymentMethod == "" {
			return nil, ErrPaymentMethodRequired
		}
		// Settlement is recorded, not processed: payment execution belongs
		// to the payment collaborator.
		collected = balance
	case balance.IsNegative():
		refund = balance.Neg()
	}

	reconciliation := u.persistCheckOut(ctx, pending, total, refund, params)

	u.clearSessionState(ctx, params.SessionID)

	return &CheckOutResult{
		RoomNumber:           pending.RoomNumber,
		GuestName:            pending.GuestName,
		TotalCharges:         total,
		PaidAmount:           total,
		RefundAmount:         refund,
		AmountCollected:      collected,
		PaymentMethod:        params.PaymentMethod,
		ReconciliationNeeded: reconciliation,
	}, nil
}

// persistCheckOut runs the pure bookkeeping after settlement is confirmed:
// card revocation, room to cleaning, audit record, reservation to
// checked_out. The guest has already been told settlement is complete, so
// failures are logged and escalated instead of surfaced.
func (u *checkOutUseCaseImpl) persistCheckOut(ctx context.Context, pending *shared.PendingSettlement, total, refund billing.Money, params CheckOutParams) bool {
	reconciliation := false

	if err := u.rooms.RevokeCard(ctx, pending.CardID); err != nil {
		u.logger.Error("failed to revoke room card", "card_id", pending.CardID, "error", err, "reconciliation_needed", true)
		reconciliation = true
	}

	if err := u.rooms.SetRoomStatus(ctx, pending.RoomNumber, room.StatusCleaning); err != nil {
		u.logger.Error("failed to mark room cleaning", "room", pending.RoomNumber, "error", err, "reconciliation_needed", true)
		reconciliation = true
	}

	record := CheckOutRecord{
		ReservationID: pending.ReservationID,
		GuestID:       pending.GuestID,
		RoomNumber:    pending.RoomNumber,
		CardID:        pending.CardID,
		CheckOutTime:  u.clock.Now(),
		TotalCharges:  total,
		PaidAmount:    total,
		RefundAmount:  refund,
		PaymentMethod: params.PaymentMethod,
		OperatedBy:    params.Operator,
	}
	if err := u.registry.AppendCheckOutRecord(ctx, record); err != nil {
		u.logger.Error("failed to persist check-out record", "reservation_id", pending.ReservationID, "error", err, "reconciliation_needed", true)
		reconciliation = true
	}

	if err := u.registry.SetReservationStatus(ctx, pending.ReservationID, reservation.StatusCheckedOut); err != nil {
		u.logger.Error("failed to update reservation status", "reservation_id", pending.ReservationID, "error", err, "reconciliation_needed", true)
		reconciliation = true
	}

	if reconciliation {
		u.notifyStaff(ctx, RecipientTechSupport,
			fmt.Sprintf("check-out bookkeeping incomplete for room %s reservation %s, reconcile manually",
				pending.RoomNumber, pending.ReservationID))
	}

	return reconciliation
}

func (u *checkOutUseCaseImpl) parkPendingSettlement(ctx context.Context, sessionID, roomNumber string, occ *Occupancy, statement billing.Statement) error {
	if sessionID == "" {
		return nil
	}
	session, err := u.sessions.Load(ctx, sessionID)
	if err != nil || session == nil {
		session = &shared.FrontDeskSession{}
	}

	lines := make([]shared.ChargeLine, len(statement.Charges()))
	for i, c := range statement.Charges() {
		lines[i] = shared.ChargeLine{
			Category:    string(c.Category),
			Description: c.Description,
			AmountCents: c.Amount.Cents(),
		}
	}

	cardID := ""
	if occ.Card != nil {
		cardID = occ.Card.CardID()
	}

	session.Pending = &shared.PendingSettlement{
		RoomNumber:      roomNumber,
		ReservationID:   occ.Reservation.ID(),
		GuestID:         occ.Guest.ID(),
		GuestName:       occ.Guest.Name(),
		CardID:          cardID,
		RoomChargeCents: statement.RoomCharge().Cents(),
		Charges:         lines,
		TotalCents:      statement.TotalAmount().Cents(),
		BalanceCents:    statement.Balance().Cents(),
		PresentedAt:     u.clock.Now(),
	}
	session.UpdatedAt = u.clock.Now()
	return u.sessions.Save(ctx, sessionID, session)
}

func (u *checkOutUseCaseImpl) clearSessionState(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := u.sessions.Clear(ctx, sessionID); err != nil {
		u.logger.Warn("failed to clear session state", "session_id", sessionID, "error", err)
	}
}

func (u *checkOutUseCaseImpl) notifyStaff(ctx context.Context, recipient, message string) {
	if err := u.notifier.Notify(ctx, recipient, message); err != nil {
		u.logger.Warn("staff notification failed", "recipient", recipient, "error", err)
	}
}
