package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/shared"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	saved := &shared.FrontDeskSession{
		Guest: &shared.SessionGuest{ID: "G001", Name: "张伟", VIPLevel: "gold"},
		Room:  &shared.SessionRoom{Number: "1502", Floor: 15, Type: "deluxe", PriceCents: 168000},
		Pending: &shared.PendingSettlement{
			RoomNumber:   "1502",
			TotalCents:   516800,
			BalanceCents: 12800,
			Charges: []shared.ChargeLine{
				{Category: "minibar", Description: "可乐 x2", AmountCents: 3000},
			},
		},
		UpdatedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, "sess-1", saved))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, saved.Guest, loaded.Guest)
	assert.Equal(t, saved.Room, loaded.Room)
	require.NotNil(t, loaded.Pending)
	assert.Equal(t, int64(12800), loaded.Pending.BalanceCents)
	assert.Len(t, loaded.Pending.Charges, 1)
}

func TestRedisStore_LoadMissingReturnsEmptySession(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Minute)

	loaded, err := store.Load(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, loaded.Guest)
	assert.Nil(t, loaded.Pending)
}

func TestRedisStore_ExpiredSessionLoadsEmpty(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-exp", &shared.FrontDeskSession{
		Pending: &shared.PendingSettlement{RoomNumber: "1201"},
	}))

	mr.FastForward(2 * time.Minute)

	loaded, err := store.Load(ctx, "sess-exp")
	require.NoError(t, err)
	assert.Nil(t, loaded.Pending)
}

func TestRedisStore_Clear(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-2", &shared.FrontDeskSession{
		Card: &shared.SessionCard{CardID: "CARD-1000", RoomNumber: "1201"},
	}))
	require.NoError(t, store.Clear(ctx, "sess-2"))

	loaded, err := store.Load(ctx, "sess-2")
	require.NoError(t, err)
	assert.Nil(t, loaded.Card)
}
