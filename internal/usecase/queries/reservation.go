package queries

import (
	"context"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/reservation"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/errs"
)

var (
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrReservationQueryFailed = errs.New("reservation query failed")
)

// ReservationReader is the read-side port into the reservation store.
type ReservationReader interface {
	FindReservationByID(ctx context.Context, id string) (*reservation.Reservation, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id string) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	reader ReservationReader
}

func NewReservationQueries(reader ReservationReader) ReservationQueries {
	return &reservationQueriesImpl{reader: reader}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id string) (*ReservationView, error) {
	r, err := q.reader.FindReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Mark(err, ErrReservationQueryFailed)
	}

	return &ReservationView{
		ID:              r.ID(),
		GuestID:         r.GuestID(),
		GuestName:       r.GuestName(),
		RoomType:        r.RoomType().String(),
		CheckInDate:     r.CheckInDate(),
		CheckOutDate:    r.CheckOutDate(),
		Status:          r.Status().String(),
		PriceCents:      r.TotalPrice().Cents(),
		Source:          string(r.Source()),
		SpecialRequests: r.SpecialRequests(),
		CreatedAt:       r.CreatedAt(),
	}, nil
}
