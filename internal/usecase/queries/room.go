package queries

import (
	"context"
	"sort"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/room"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/errs"
)

var ErrRoomQueryFailed = errs.New("room query failed")

// RoomReader is the read-side port into the room store.
type RoomReader interface {
	ListRooms(ctx context.Context) ([]*room.Room, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	Availability(ctx context.Context) ([]TypeAvailability, error)
}

type roomQueriesImpl struct {
	reader RoomReader
}

func NewRoomQueries(reader RoomReader) RoomQueries {
	return &roomQueriesImpl{reader: reader}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]RoomView, error) {
	rooms, err := q.reader.ListRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}

	views := make([]RoomView, len(rooms))
	for i, r := range rooms {
		views[i] = RoomView{
			Number:     r.Number(),
			Floor:      r.Floor(),
			Type:       r.RoomType().String(),
			Status:     r.Status().String(),
			PriceCents: r.Price().Cents(),
			Features:   r.Features(),
		}
	}
	return views, nil
}

func (q *roomQueriesImpl) Availability(ctx context.Context) ([]TypeAvailability, error) {
	rooms, err := q.reader.ListRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQueryFailed)
	}

	byType := make(map[string]*TypeAvailability)
	for _, r := range rooms {
		t := r.RoomType().String()
		entry, ok := byType[t]
		if !ok {
			entry = &TypeAvailability{Type: t}
			byType[t] = entry
		}
		entry.Total++
		if r.IsAvailable() {
			entry.Available++
		}
	}

	result := make([]TypeAvailability, 0, len(byType))
	for _, entry := range byType {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result, nil
}
