package billing

import "fmt"

// Money is an exact amount in cents. Charge aggregation and balance math must
// never go through floating point.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromYuan(yuan int64) Money {
	return Money{cents: yuan * 100}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Yuan() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

func (m Money) IsPositive() bool { return m.cents > 0 }
func (m Money) IsNegative() bool { return m.cents < 0 }
func (m Money) IsZero() bool     { return m.cents == 0 }

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Yuan())
}
