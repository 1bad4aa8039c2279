package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoomManagerRepository is the live property-management backend for rooms
// and cards.
type RoomManagerRepository struct {
	db *pgxpool.Pool
}

func NewRoomManagerRepository(db *pgxpool.Pool) *RoomManagerRepository {
	return &RoomManagerRepository{db: db}
}

// AssignRoom claims one available room of the requested type inside a single
// transaction. FOR UPDATE SKIP LOCKED keeps concurrent allocations of the
// same type from being handed the same room; the claimed room comes back as
// reserved until check-in confirms it occupied.
func (r *RoomManagerRepository) AssignRoom(ctx context.Context, roomType room.Type) (*room.Room, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin allocation transaction", err, infra.KindUnavailable)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback allocation transaction", "error", rollbackErr)
		}
	}()

	row := tx.QueryRow(ctx,
		`UPDATE rooms SET status = $1
		 WHERE number = (
		   SELECT number FROM rooms
		   WHERE type = $2 AND status = $3
		   LIMIT 1
		   FOR UPDATE SKIP LOCKED
		 )
		 RETURNING number, floor, type, status, price_cents, features`,
		room.StatusReserved, roomType, room.StatusAvailable)

	claimed, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindCapacity, fmt.Sprintf("no available %s room", roomType))
		}
		return nil, infra.WrapRepoErr("failed to claim room", err, infra.KindUnavailable)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit allocation", err, infra.KindUnavailable)
	}
	return claimed, nil
}

func (r *RoomManagerRepository) SetRoomStatus(ctx context.Context, roomNumber string, status room.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET status = $2 WHERE number = $1`, roomNumber, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err, infra.KindUnavailable)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	return nil
}

func (r *RoomManagerRepository) IssueCard(ctx context.Context, roomNumber, guestID string, expiresAt time.Time) (*room.Card, error) {
	cardID := fmt.Sprintf("CARD-%s", uuid.New().String()[:8])
	issuedAt := time.Now()

	_, err := r.db.Exec(ctx,
		`INSERT INTO room_cards (card_id, room_number, guest_id, issued_at, expires_at, is_active)
		 VALUES ($1, $2, $3, $4, $5, TRUE)`,
		cardID, roomNumber, guestID, issuedAt, expiresAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to issue room card", err, infra.KindUnavailable)
	}

	return room.NewCard(cardID, roomNumber, guestID, issuedAt, expiresAt), nil
}

// RevokeCard flips is_active off. Revoking an already-inactive card matches
// zero rows and is still a success.
func (r *RoomManagerRepository) RevokeCard(ctx context.Context, cardID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE room_cards SET is_active = FALSE WHERE card_id = $1`, cardID)
	if err != nil {
		return infra.WrapRepoErr("failed to revoke room card", err, infra.KindUnavailable)
	}
	return nil
}

func (r *RoomManagerRepository) ListRooms(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.db.Query(ctx,
		`SELECT number, floor, type, status, price_cents, features
		 FROM rooms ORDER BY number`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err, infra.KindUnavailable)
	}
	defer rows.Close()

	var rooms []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err, infra.KindUnavailable)
	}
	return rooms, nil
}
