package request

type PreviewBillRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
}

type CheckOutRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	// Confirmed is the guest's answer to the previewed bill. False
	// escalates to a supervisor and settles nothing.
	Confirmed     bool   `json:"confirmed"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}
