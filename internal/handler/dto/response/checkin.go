package response

import (
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"
)

type CheckInResponse struct {
	Status               string                 `json:"status"`
	Guest                *CheckInGuest          `json:"guest,omitempty"`
	Reservation          *CheckInReservation    `json:"reservation,omitempty"`
	Room                 *CheckInRoom           `json:"room,omitempty"`
	Card                 *CheckInCard           `json:"card,omitempty"`
	FaceScore            float64                `json:"faceScore,omitempty"`
	Candidates           []ReservationCandidate `json:"candidates,omitempty"`
	ReconciliationNeeded bool                   `json:"reconciliationNeeded,omitempty"`
}

type CheckInGuest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	VIPLevel string `json:"vipLevel"`
}

type CheckInReservation struct {
	ID           string    `json:"id"`
	RoomType     string    `json:"roomType"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	PriceCents   int64     `json:"priceCents"`
}

type CheckInRoom struct {
	Number     string   `json:"number"`
	Floor      int      `json:"floor"`
	Type       string   `json:"type"`
	PriceCents int64    `json:"priceCents"`
	Features   []string `json:"features"`
}

type CheckInCard struct {
	CardID    string    `json:"cardId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ReservationCandidate struct {
	Index         int       `json:"index"`
	ReservationID string    `json:"reservationId"`
	RoomType      string    `json:"roomType"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
}

func FromCheckInResult(res *commands.CheckInResult) *CheckInResponse {
	if res.SelectionRequired {
		candidates := make([]ReservationCandidate, len(res.Candidates))
		for i, c := range res.Candidates {
			candidates[i] = ReservationCandidate{
				Index:         c.Index,
				ReservationID: c.ReservationID,
				RoomType:      c.RoomType.String(),
				CheckInDate:   c.CheckInDate,
				CheckOutDate:  c.CheckOutDate,
			}
		}
		return &CheckInResponse{
			Status:     "selection_required",
			Candidates: candidates,
		}
	}

	return &CheckInResponse{
		Status: "checked_in",
		Guest: &CheckInGuest{
			ID:       res.Guest.ID(),
			Name:     res.Guest.Name(),
			VIPLevel: string(res.Guest.VIPLevel()),
		},
		Reservation: &CheckInReservation{
			ID:           res.Reservation.ID(),
			RoomType:     res.Reservation.RoomType().String(),
			CheckInDate:  res.Reservation.CheckInDate(),
			CheckOutDate: res.Reservation.CheckOutDate(),
			PriceCents:   res.Reservation.TotalPrice().Cents(),
		},
		Room: &CheckInRoom{
			Number:     res.Room.Number(),
			Floor:      res.Room.Floor(),
			Type:       res.Room.RoomType().String(),
			PriceCents: res.Room.Price().Cents(),
			Features:   res.Room.Features(),
		},
		Card: &CheckInCard{
			CardID:    res.Card.CardID(),
			ExpiresAt: res.Card.ExpiresAt(),
		},
		FaceScore:            res.FaceScore,
		ReconciliationNeeded: res.ReconciliationNeeded,
	}
}
