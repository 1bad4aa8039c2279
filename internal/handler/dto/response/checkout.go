package response

import (
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"
)

type BillPreviewResponse struct {
	RoomNumber      string       `json:"roomNumber"`
	GuestName       string       `json:"guestName"`
	RoomChargeCents int64        `json:"roomChargeCents"`
	Charges         []ChargeLine `json:"charges"`
	TotalCents      int64        `json:"totalCents"`
	BalanceCents    int64        `json:"balanceCents"`
	AmountDueCents  int64        `json:"amountDueCents"`
	RefundCents     int64        `json:"refundCents"`
}

type ChargeLine struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	AmountCents int64  `json:"amountCents"`
}

type CheckOutResponse struct {
	Status               string `json:"status"`
	RoomNumber           string `json:"roomNumber"`
	GuestName            string `json:"guestName"`
	TotalCents           int64  `json:"totalCents"`
	PaidCents            int64  `json:"paidCents"`
	RefundCents          int64  `json:"refundCents"`
	CollectedCents       int64  `json:"collectedCents"`
	PaymentMethod        string `json:"paymentMethod,omitempty"`
	ReconciliationNeeded bool   `json:"reconciliationNeeded,omitempty"`
}

func FromBillPreview(bill *commands.BillPreview) *BillPreviewResponse {
	charges := make([]ChargeLine, len(bill.Charges))
	for i, c := range bill.Charges {
		charges[i] = ChargeLine{
			Category:    string(c.Category),
			Description: c.Description,
			AmountCents: c.Amount.Cents(),
		}
	}
	return &BillPreviewResponse{
		RoomNumber:      bill.RoomNumber,
		GuestName:       bill.GuestName,
		RoomChargeCents: bill.RoomCharge.Cents(),
		Charges:         charges,
		TotalCents:      bill.TotalAmount.Cents(),
		BalanceCents:    bill.Balance.Cents(),
		AmountDueCents:  bill.AmountDue.Cents(),
		RefundCents:     bill.RefundAmount.Cents(),
	}
}

func FromCheckOutResult(res *commands.CheckOutResult) *CheckOutResponse {
	status := "checked_out"
	if res.Escalated {
		status = "escalated"
	}
	return &CheckOutResponse{
		Status:               status,
		RoomNumber:           res.RoomNumber,
		GuestName:            res.GuestName,
		TotalCents:           res.TotalCharges.Cents(),
		PaidCents:            res.PaidAmount.Cents(),
		RefundCents:          res.RefundAmount.Cents(),
		CollectedCents:       res.AmountCollected.Cents(),
		PaymentMethod:        res.PaymentMethod,
		ReconciliationNeeded: res.ReconciliationNeeded,
	}
}
