//go:build unit

package billing_test

import (
	"testing"
	"time"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/billing"

	"github.com/stretchr/testify/assert"
)

func charge(category billing.ChargeCategory, desc string, yuan int64) billing.ChargeItem {
	return billing.ChargeItem{
		ID:          "CHG-" + desc,
		RoomNumber:  "1205",
		Category:    category,
		Description: desc,
		Amount:      billing.NewMoneyFromYuan(yuan),
		ChargedAt:   time.Date(2026, 2, 26, 21, 0, 0, 0, time.UTC),
	}
}

func TestNewStatement(t *testing.T) {
	t.Run("incidentals add to a positive balance", func(t *testing.T) {
		s := billing.NewStatement(billing.NewMoneyFromYuan(1680), []billing.ChargeItem{
			charge(billing.CategoryMinibar, "minibar", 128),
			charge(billing.CategoryRestaurant, "dinner", 345),
		})

		assert.Equal(t, int64(215300), s.TotalAmount().Cents())
		assert.Equal(t, int64(168000), s.PaidAmount().Cents())
		assert.Equal(t, int64(47300), s.Balance().Cents())
		assert.True(t, s.RequiresPayment())
		assert.False(t, s.RequiresRefund())
		assert.Equal(t, int64(47300), s.AmountDue().Cents())
		assert.True(t, s.RefundAmount().IsZero())
	})

	t.Run("no incidentals settles to zero", func(t *testing.T) {
		s := billing.NewStatement(billing.NewMoneyFromYuan(388), nil)

		assert.Equal(t, int64(38800), s.TotalAmount().Cents())
		assert.True(t, s.Balance().IsZero())
		assert.False(t, s.RequiresPayment())
		assert.False(t, s.RequiresRefund())
		assert.True(t, s.AmountDue().IsZero())
		assert.True(t, s.RefundAmount().IsZero())
	})

	t.Run("negative adjustment produces a refund", func(t *testing.T) {
		s := billing.NewStatement(billing.NewMoneyFromYuan(1680), []billing.ChargeItem{
			charge(billing.CategoryOther, "compensation", -200),
		})

		assert.Equal(t, int64(148000), s.TotalAmount().Cents())
		assert.Equal(t, int64(-20000), s.Balance().Cents())
		assert.False(t, s.RequiresPayment())
		assert.True(t, s.RequiresRefund())
		assert.True(t, s.AmountDue().IsZero())
		assert.Equal(t, int64(20000), s.RefundAmount().Cents())
	})
}

func TestMoney(t *testing.T) {
	t.Run("arithmetic stays in cents", func(t *testing.T) {
		a := billing.NewMoney(150)
		b := billing.NewMoney(70)

		assert.Equal(t, int64(220), a.Add(b).Cents())
		assert.Equal(t, int64(80), a.Sub(b).Cents())
		assert.Equal(t, int64(-150), a.Neg().Cents())
		assert.InDelta(t, 1.5, a.Yuan(), 1e-9)
	})

	t.Run("sign predicates", func(t *testing.T) {
		assert.True(t, billing.NewMoney(1).IsPositive())
		assert.True(t, billing.NewMoney(-1).IsNegative())
		assert.True(t, billing.NewMoney(0).IsZero())
	})
}
