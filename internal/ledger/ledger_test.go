package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrambhakamela/mela-api/internal/domain"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func item(name string, price int64, qty int, margin int64) domain.BillItem {
	return domain.BillItem{
		Name:        name,
		Price:       d(price),
		Quantity:    qty,
		EventMargin: d(margin),
	}
}

func TestSummarize(t *testing.T) {
	bills := []domain.Bill{
		{Total: d(5400), Status: domain.BillPaid},
		{Total: d(7200), Status: domain.BillPaid},
		{Total: d(1000), Status: domain.BillPending}, // pending bills don't count
	}
	payments := []domain.Payment{
		{Type: domain.PaymentParticipant, AmountPaid: d(4320)},
		{Type: domain.PaymentOther, AmountPaid: d(5000)},
	}
	regs := []domain.Registration{
		{Type: domain.RegistrationEmploymentBooking, Amount: d(1500)},
		{Type: domain.RegistrationEmploymentRegistration, Amount: d(2500)},
		{Type: domain.RegistrationStallCounter, Amount: d(500)},
	}
	returns := []domain.SalesReturn{
		{ReturnAmount: d(200)},
	}

	s := Summarize(bills, payments, regs, returns)

	// 5400 + 7200 bills, 4320 participant, 500 + 1500 + 2500 registrations
	assert.True(t, s.TotalCollected.Equal(d(21420)), "total collected = %s", s.TotalCollected)
	assert.True(t, s.NetCollected.Equal(d(21220)), "net collected = %s", s.NetCollected)
	assert.True(t, s.TotalPaid.Equal(d(9320)), "total paid = %s", s.TotalPaid)
	assert.True(t, s.CashBalance.Equal(d(12100)), "cash balance = %s", s.CashBalance)

	assert.True(t, s.StallBillingTotal.Equal(d(12600)))
	assert.True(t, s.StallCounterRegTotal.Equal(d(500)))
	assert.True(t, s.EmploymentBookingTotal.Equal(d(1500)))
	assert.True(t, s.EmploymentRegTotal.Equal(d(2500)))
	assert.True(t, s.ParticipantPaidTotal.Equal(d(4320)))
	assert.True(t, s.OtherPaidTotal.Equal(d(5000)))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, nil, nil)

	assert.True(t, s.TotalCollected.IsZero())
	assert.True(t, s.NetCollected.IsZero())
	assert.True(t, s.CashBalance.IsZero())
}

func TestItemCommissionBalance(t *testing.T) {
	// price=100, quantity=3, margin=20 -> 100×3×0.80 = 240
	got := ItemCommissionBalance(item("Gulab Jamun", 100, 3, 20))
	assert.True(t, got.Equal(d(240)), "got %s", got)

	// margin 0 keeps the full amount
	got = ItemCommissionBalance(item("Rasgulla", 60, 2, 0))
	assert.True(t, got.Equal(d(120)), "got %s", got)
}

func TestStallBillBalance(t *testing.T) {
	bills := []domain.Bill{
		{Items: []domain.BillItem{item("Masala Dosa", 100, 3, 20)}}, // 240
		{Items: []domain.BillItem{item("Plain Dosa", 50, 2, 20)}},   // 80
	}

	t.Run("no payments", func(t *testing.T) {
		got := StallBillBalance(bills, nil)
		assert.True(t, got.Equal(d(320)), "got %s", got)
	})

	t.Run("partial payment", func(t *testing.T) {
		payments := []domain.Payment{
			{Type: domain.PaymentParticipant, AmountPaid: d(100)},
		}
		got := StallBillBalance(bills, payments)
		assert.True(t, got.Equal(d(220)), "got %s", got)
	})

	t.Run("overpaid floors at zero", func(t *testing.T) {
		payments := []domain.Payment{
			{Type: domain.PaymentParticipant, AmountPaid: d(500)},
		}
		got := StallBillBalance(bills, payments)
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("other payments are ignored", func(t *testing.T) {
		payments := []domain.Payment{
			{Type: domain.PaymentOther, AmountPaid: d(500)},
		}
		got := StallBillBalance(bills, payments)
		assert.True(t, got.Equal(d(320)), "got %s", got)
	})
}

func TestMarginDeduction(t *testing.T) {
	deduction, payable := MarginDeduction(d(1000))

	assert.True(t, deduction.Equal(d(200)), "deduction = %s", deduction)
	assert.True(t, payable.Equal(d(800)), "payable = %s", payable)
}

func TestSummarizeStall(t *testing.T) {
	bills := []domain.Bill{
		{
			Total:  d(360),
			Status: domain.BillPaid,
			Items: []domain.BillItem{
				item("Masala Chai", 20, 3, 20),  // 60 revenue
				item("Masala Dosa", 100, 3, 20), // 300 revenue
			},
		},
		{
			Total:  d(40),
			Status: domain.BillPending,
			Items: []domain.BillItem{
				item("Masala Chai", 20, 2, 20), // 40 revenue
			},
		},
	}

	s := SummarizeStall(bills, nil)

	assert.True(t, s.TotalSales.Equal(d(400)))
	assert.True(t, s.PaidTotal.Equal(d(360)))
	assert.True(t, s.PendingTotal.Equal(d(40)))
	// commission: 20% of 400 in items
	assert.True(t, s.Commission.Equal(d(80)), "commission = %s", s.Commission)
	assert.True(t, s.BillBalance.Equal(d(320)), "bill balance = %s", s.BillBalance)

	require.Len(t, s.ItemsSold, 2)
	assert.Equal(t, "Masala Dosa", s.ItemsSold[0].Name)
	assert.Equal(t, 3, s.ItemsSold[0].Quantity)
	assert.True(t, s.ItemsSold[0].Revenue.Equal(d(300)))
	assert.Equal(t, "Masala Chai", s.ItemsSold[1].Name)
	assert.Equal(t, 5, s.ItemsSold[1].Quantity)
	assert.True(t, s.ItemsSold[1].Revenue.Equal(d(100)))
}
