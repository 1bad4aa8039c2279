package billing

// Statement is the settlement computed at departure: the pre-paid room charge
// plus every incidental charge posted to the room. Balance is what the guest
// still owes (positive), is owed back (negative), or nothing (zero).
type Statement struct {
	roomCharge Money
	charges    []ChargeItem
	total      Money
	paid       Money
	balance    Money
}

// NewStatement aggregates a reservation's agreed price with the room's charge
// list. The agreed price doubles as the paid amount: room charges are treated
// as pre-paid at booking time.
func NewStatement(roomCharge Money, charges []ChargeItem) Statement {
	total := roomCharge
	for _, c := range charges {
		total = total.Add(c.Amount)
	}
	return Statement{
		roomCharge: roomCharge,
		charges:    charges,
		total:      total,
		paid:       roomCharge,
		balance:    total.Sub(roomCharge),
	}
}

func (s Statement) RoomCharge() Money { return s.roomCharge }
func (s Statement) Charges() []ChargeItem { return s.charges }
func (s Statement) TotalAmount() Money { return s.total }
func (s Statement) PaidAmount() Money { return s.paid }
func (s Statement) Balance() Money { return s.balance }

// AmountDue is the positive balance to collect at departure, zero otherwise.
func (s Statement) AmountDue() Money {
	if s.balance.IsPositive() {
		return s.balance
	}
	return NewMoney(0)
}

// RefundAmount is the absolute value of a negative balance, zero otherwise.
func (s Statement) RefundAmount() Money {
	if s.balance.IsNegative() {
		return s.balance.Neg()
	}
	return NewMoney(0)
}

func (s Statement) RequiresPayment() bool { return s.balance.IsPositive() }
func (s Statement) RequiresRefund() bool  { return s.balance.IsNegative() }
