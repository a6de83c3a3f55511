// Package ledger folds raw billing, payment, registration and
// sales-return rows into the aggregate figures shown on the accounts,
// billing and stall dashboards. Everything here is pure and recomputed
// from scratch on every call; this package never touches the database.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/samrambhakamela/mela-api/internal/domain"
)

// EventMargin is the fixed percentage the event retains on manual
// participant-payment entries. The per-item path uses each bill item's
// captured event_margin instead; the two calculations are deliberately
// kept apart (a product's stored rate may have been edited away from
// this default).
var EventMargin = decimal.NewFromInt(20)

var hundred = decimal.NewFromInt(100)

// Summary is the accounts overview: what came in, what went out, and
// where it came from.
type Summary struct {
	TotalCollected decimal.Decimal `json:"total_collected"`
	TotalReturned  decimal.Decimal `json:"total_returned"`
	NetCollected   decimal.Decimal `json:"net_collected"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	CashBalance    decimal.Decimal `json:"cash_balance"`

	StallBillingTotal      decimal.Decimal `json:"stall_billing_total"`
	StallCounterRegTotal   decimal.Decimal `json:"stall_counter_reg_total"`
	EmploymentBookingTotal decimal.Decimal `json:"employment_booking_total"`
	EmploymentRegTotal     decimal.Decimal `json:"employment_reg_total"`
	ParticipantPaidTotal   decimal.Decimal `json:"participant_paid_total"`
	OtherPaidTotal         decimal.Decimal `json:"other_paid_total"`
}

// Summarize computes the full accounts summary from raw rows.
//
// Total collected = paid bill totals + participant payment amounts +
// registration amounts. Net collected subtracts sales returns. Cash
// balance is total collected minus everything paid out.
func Summarize(bills []domain.Bill, payments []domain.Payment, regs []domain.Registration, returns []domain.SalesReturn) Summary {
	var s Summary

	for _, b := range bills {
		if b.Status == domain.BillPaid {
			s.StallBillingTotal = s.StallBillingTotal.Add(b.Total)
		}
	}

	for _, p := range payments {
		s.TotalPaid = s.TotalPaid.Add(p.AmountPaid)
		switch p.Type {
		case domain.PaymentParticipant:
			s.ParticipantPaidTotal = s.ParticipantPaidTotal.Add(p.AmountPaid)
		case domain.PaymentOther:
			s.OtherPaidTotal = s.OtherPaidTotal.Add(p.AmountPaid)
		}
	}

	for _, r := range regs {
		switch r.Type {
		case domain.RegistrationStallCounter:
			s.StallCounterRegTotal = s.StallCounterRegTotal.Add(r.Amount)
		case domain.RegistrationEmploymentBooking:
			s.EmploymentBookingTotal = s.EmploymentBookingTotal.Add(r.Amount)
		case domain.RegistrationEmploymentRegistration:
			s.EmploymentRegTotal = s.EmploymentRegTotal.Add(r.Amount)
		}
	}

	for _, r := range returns {
		s.TotalReturned = s.TotalReturned.Add(r.ReturnAmount)
	}

	s.TotalCollected = s.StallBillingTotal.
		Add(s.ParticipantPaidTotal).
		Add(s.StallCounterRegTotal).
		Add(s.EmploymentBookingTotal).
		Add(s.EmploymentRegTotal)
	s.NetCollected = s.TotalCollected.Sub(s.TotalReturned)
	s.CashBalance = s.TotalCollected.Sub(s.TotalPaid)

	return s
}

// ItemCommissionBalance is the amount owed to the stall for one bill
// line item after the event takes its cut:
// price × quantity × (1 − event_margin/100).
func ItemCommissionBalance(item domain.BillItem) decimal.Decimal {
	rate := decimal.NewFromInt(1).Sub(item.EventMargin.Div(hundred))
	return item.Total().Mul(rate)
}

// BillBalance sums the commission-adjusted balances of a bill's items.
func BillBalance(b domain.Bill) decimal.Decimal {
	var sum decimal.Decimal
	for _, item := range b.Items {
		sum = sum.Add(ItemCommissionBalance(item))
	}
	return sum
}

// StallBillBalance is what the event still owes a stall: the
// commission-adjusted total of all its bills minus participant payments
// already made, floored at zero. A stall never shows a negative balance.
func StallBillBalance(bills []domain.Bill, payments []domain.Payment) decimal.Decimal {
	var owed decimal.Decimal
	for _, b := range bills {
		owed = owed.Add(BillBalance(b))
	}

	for _, p := range payments {
		if p.Type == domain.PaymentParticipant {
			owed = owed.Sub(p.AmountPaid)
		}
	}

	if owed.IsNegative() {
		return decimal.Zero
	}
	return owed
}

// MarginDeduction applies the fixed event margin to a manually entered
// billed amount: deduction = billed × margin/100, payable = billed −
// deduction. This is the accounts/billing manual-payment path, distinct
// from the per-item commission path above.
func MarginDeduction(billed decimal.Decimal) (deduction, payable decimal.Decimal) {
	deduction = billed.Mul(EventMargin).Div(hundred)
	payable = billed.Sub(deduction)
	return deduction, payable
}

// ItemSales is one row of the items-sold table in a stall drill-down.
type ItemSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SalesSummary is the per-stall drill-down shown on the admin accounts
// screen.
type SalesSummary struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	PaidTotal    decimal.Decimal `json:"paid_total"`
	PendingTotal decimal.Decimal `json:"pending_total"`
	Commission   decimal.Decimal `json:"commission"`
	BillBalance  decimal.Decimal `json:"bill_balance"`
	ItemsSold    []ItemSales     `json:"items_sold"`
}

// SummarizeStall folds one stall's bills and payments into its sales
// summary. ItemsSold groups items by name and sorts by revenue,
// descending.
func SummarizeStall(bills []domain.Bill, payments []domain.Payment) SalesSummary {
	var s SalesSummary

	grouped := make(map[string]*ItemSales)
	for _, b := range bills {
		s.TotalSales = s.TotalSales.Add(b.Total)
		if b.Status == domain.BillPaid {
			s.PaidTotal = s.PaidTotal.Add(b.Total)
		} else {
			s.PendingTotal = s.PendingTotal.Add(b.Total)
		}

		for _, item := range b.Items {
			s.Commission = s.Commission.Add(item.Total().Sub(ItemCommissionBalance(item)))

			g, ok := grouped[item.Name]
			if !ok {
				g = &ItemSales{Name: item.Name}
				grouped[item.Name] = g
			}
			g.Quantity += item.Quantity
			g.Revenue = g.Revenue.Add(item.Total())
		}
	}

	s.ItemsSold = make([]ItemSales, 0, len(grouped))
	for _, g := range grouped {
		s.ItemsSold = append(s.ItemsSold, *g)
	}
	sort.Slice(s.ItemsSold, func(i, j int) bool {
		if !s.ItemsSold[i].Revenue.Equal(s.ItemsSold[j].Revenue) {
			return s.ItemsSold[i].Revenue.GreaterThan(s.ItemsSold[j].Revenue)
		}
		return s.ItemsSold[i].Name < s.ItemsSold[j].Name
	})

	s.BillBalance = StallBillBalance(bills, payments)

	return s
}
