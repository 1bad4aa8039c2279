package repository

import (
	"context"
	"errors"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/guest"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GuestRegistryRepository is the live property-management backend for
// reservations, charges and audit records.
type GuestRegistryRepository struct {
	db *pgxpool.Pool
}

func NewGuestRegistryRepository(db *pgxpool.Pool) *GuestRegistryRepository {
	return &GuestRegistryRepository{db: db}
}

func (r *GuestRegistryRepository) FindByGuestName(ctx context.Context, name string) (*guest.Guest, []*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, phone, id_number, vip_level, registered_at
		 FROM guests WHERE name = $1`, name)

	g, err := scanGuest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, infra.WrapRepoErr("failed to find guest by name", err, infra.KindUnavailable)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, guest_id, guest_name, room_type, check_in_date, check_out_date,
		        status, total_price_cents, source, special_requests, created_at
		 FROM reservations WHERE guest_id = $1 AND status = $2
		 ORDER BY check_in_date`, g.ID(), reservation.StatusConfirmed)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list confirmed reservations", err, infra.KindUnavailable)
	}
	defer rows.Close()

	var reservations []*reservation.Reservation
	for rows.Next() {
		resv, err := scanReservation(rows)
		if err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		reservations = append(reservations, resv)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to iterate reservations", err, infra.KindUnavailable)
	}

	return g, reservations, nil
}

func (r *GuestRegistryRepository) FindByRoom(ctx context.Context, roomNumber string) (*commands.Occupancy, error) {
	row := r.db.QueryRow(ctx,
		`SELECT g.id, g.name, g.phone, g.id_number, g.vip_level, g.registered_at,
		        rv.id, rv.guest_id, rv.guest_name, rv.room_type, rv.check_in_date, rv.check_out_date,
		        rv.status, rv.total_price_cents, rv.source, rv.special_requests, rv.created_at,
		        c.card_id, c.room_number, c.guest_id, c.issued_at, c.expires_at, c.is_active
		 FROM room_cards c
		 JOIN guests g ON g.id = c.guest_id
		 JOIN reservations rv ON rv.guest_id = c.guest_id AND rv.status = $2
		 WHERE c.room_number = $1 AND c.is_active`, roomNumber, reservation.StatusCheckedIn)

	occ, err := scanOccupancy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active occupancy for room", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve occupancy", err, infra.KindUnavailable)
	}
	return occ, nil
}

func (r *GuestRegistryRepository) SetReservationStatus(ctx context.Context, reservationID string, status reservation.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET status = $2 WHERE id = $1`, reservationID, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err, infra.KindUnavailable)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *GuestRegistryRepository) AppendCheckInRecord(ctx context.Context, record commands.CheckInRecord) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO check_in_records
		   (id, reservation_id, guest_id, room_number, card_id, id_verified, face_verified, check_in_time, operated_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.New(), record.ReservationID, record.GuestID, record.RoomNumber, record.CardID,
		record.IDVerified, record.FaceVerified, record.CheckInTime, record.OperatedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to append check-in record", err, infra.KindUnavailable)
	}
	return nil
}

func (r *GuestRegistryRepository) AppendCheckOutRecord(ctx context.Context, record commands.CheckOutRecord) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO check_out_records
		   (id, reservation_id, guest_id, room_number, card_id, check_out_time,
		    total_charges_cents, paid_amount_cents, refund_amount_cents, payment_method, operated_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		uuid.New(), record.ReservationID, record.GuestID, record.RoomNumber, record.CardID,
		record.CheckOutTime, record.TotalCharges.Cents(), record.PaidAmount.Cents(),
		record.RefundAmount.Cents(), record.PaymentMethod, record.OperatedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to append check-out record", err, infra.KindUnavailable)
	}
	return nil
}

func (r *GuestRegistryRepository) ListCharges(ctx context.Context, roomNumber string) ([]billing.ChargeItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, room_number, category, description, amount_cents, charged_at
		 FROM charge_items WHERE room_number = $1
		 ORDER BY charged_at`, roomNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list charges", err, infra.KindUnavailable)
	}
	defer rows.Close()

	var charges []billing.ChargeItem
	for rows.Next() {
		var (
			item        billing.ChargeItem
			amountCents int64
		)
		if err := rows.Scan(&item.ID, &item.RoomNumber, &item.Category, &item.Description, &amountCents, &item.ChargedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan charge item", err)
		}
		item.Amount = billing.NewMoney(amountCents)
		charges = append(charges, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate charges", err, infra.KindUnavailable)
	}
	return charges, nil
}

func (r *GuestRegistryRepository) FindReservationByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, guest_id, guest_name, room_type, check_in_date, check_out_date,
		        status, total_price_cents, source, special_requests, created_at
		 FROM reservations WHERE id = $1`, id)

	resv, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err, infra.KindUnavailable)
	}
	return resv, nil
}
