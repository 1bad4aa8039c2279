//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStore_FindByGuestName(t *testing.T) {
	store := memstore.NewSeededStore()
	ctx := context.Background()

	t.Run("known guest with one reservation", func(t *testing.T) {
		g, reservations, err := store.FindByGuestName(ctx, "李娟")
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.Equal(t, "G002", g.ID())
		require.Len(t, reservations, 1)
		assert.Equal(t, "RSV-20260225-002", reservations[0].ID())
	})

	t.Run("unknown guest is a plain negative result", func(t *testing.T) {
		g, reservations, err := store.FindByGuestName(ctx, "不存在")
		require.NoError(t, err)
		assert.Nil(t, g)
		assert.Nil(t, reservations)
	})

	t.Run("matching is exact and case sensitive", func(t *testing.T) {
		g, _, err := store.FindByGuestName(ctx, "张 伟")
		require.NoError(t, err)
		assert.Nil(t, g)
	})
}

func TestStore_AssignRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("claims an available room as reserved", func(t *testing.T) {
		store := memstore.NewSeededStore()

		claimed, err := store.AssignRoom(ctx, room.TypeDeluxe)
		require.NoError(t, err)
		assert.Equal(t, room.TypeDeluxe, claimed.RoomType())
		assert.Equal(t, room.StatusReserved, claimed.Status())

		// The claim is visible in the store, not only on the returned copy.
		assert.Equal(t, room.StatusReserved, store.RoomByNumber(claimed.Number()).Status())
	})

	t.Run("capacity error when the type is exhausted", func(t *testing.T) {
		store := memstore.NewSeededStore()

		first, err := store.AssignRoom(ctx, room.TypePresidential)
		require.NoError(t, err)
		require.Equal(t, "1801", first.Number())

		_, err = store.AssignRoom(ctx, room.TypePresidential)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCapacity))
	})

	t.Run("cleaning and maintenance rooms are never claimed", func(t *testing.T) {
		store := memstore.NewSeededStore()

		seen := map[string]bool{}
		for {
			claimed, err := store.AssignRoom(ctx, room.TypeDeluxe)
			if err != nil {
				assert.True(t, infra.IsKind(err, infra.KindCapacity))
				break
			}
			seen[claimed.Number()] = true
		}
		assert.False(t, seen["1210"], "cleaning room must not be allocated")
	})
}

func TestStore_SetReservationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid transition persists", func(t *testing.T) {
		store := memstore.NewSeededStore()

		require.NoError(t, store.SetReservationStatus(ctx, "RSV-20260225-001", reservation.StatusCheckedIn))
		assert.Equal(t, reservation.StatusCheckedIn, store.ReservationByID("RSV-20260225-001").Status())
	})

	t.Run("equal status is a no-op", func(t *testing.T) {
		store := memstore.NewSeededStore()
		assert.NoError(t, store.SetReservationStatus(ctx, "RSV-20260225-001", reservation.StatusConfirmed))
	})

	t.Run("illegal transition conflicts", func(t *testing.T) {
		store := memstore.NewSeededStore()
		err := store.SetReservationStatus(ctx, "RSV-20260225-001", reservation.StatusCheckedOut)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("unknown reservation", func(t *testing.T) {
		store := memstore.NewSeededStore()
		err := store.SetReservationStatus(ctx, "RSV-MISSING", reservation.StatusCheckedIn)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestStore_Cards(t *testing.T) {
	ctx := context.Background()
	expires := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

	t.Run("issued card ids are sequential", func(t *testing.T) {
		store := memstore.NewSeededStore()

		c1, err := store.IssueCard(ctx, "1205", "G001", expires)
		require.NoError(t, err)
		c2, err := store.IssueCard(ctx, "1208", "G001", expires)
		require.NoError(t, err)

		assert.Equal(t, "CARD-1000", c1.CardID())
		assert.Equal(t, "CARD-1001", c2.CardID())
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		store := memstore.NewSeededStore()

		card, err := store.IssueCard(ctx, "1205", "G001", expires)
		require.NoError(t, err)

		require.NoError(t, store.RevokeCard(ctx, card.CardID()))
		require.NoError(t, store.RevokeCard(ctx, card.CardID()))
		assert.False(t, store.CardByID(card.CardID()).IsActive())
	})
}

func TestStore_FindByRoom(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSeededStore()

	// Stage an occupancy by hand: checked-in reservation plus active card.
	require.NoError(t, store.SetReservationStatus(ctx, "RSV-20260225-001", reservation.StatusCheckedIn))
	card, err := store.IssueCard(ctx, "1205", "G001", time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	store.AddCharge(billing.ChargeItem{
		ID:         "CHG-1",
		RoomNumber: "1205",
		Category:   billing.CategoryMinibar,
		Amount:     billing.NewMoneyFromYuan(128),
	})

	t.Run("resolves guest, reservation and card", func(t *testing.T) {
		occ, err := store.FindByRoom(ctx, "1205")
		require.NoError(t, err)
		assert.Equal(t, "G001", occ.Guest.ID())
		assert.Equal(t, "RSV-20260225-001", occ.Reservation.ID())
		require.NotNil(t, occ.Card)
		assert.Equal(t, card.CardID(), occ.Card.CardID())
	})

	t.Run("room without occupancy", func(t *testing.T) {
		_, err := store.FindByRoom(ctx, "1201")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("charges are listed for the room", func(t *testing.T) {
		charges, err := store.ListCharges(ctx, "1205")
		require.NoError(t, err)
		require.Len(t, charges, 1)
		assert.Equal(t, int64(12800), charges[0].Amount.Cents())
	})
}
