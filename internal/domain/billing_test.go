package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillItemTotal(t *testing.T) {
	item := BillItem{Quantity: 3, Price: decimal.NewFromInt(40)}

	assert.True(t, item.Total().Equal(decimal.NewFromInt(120)))
}

func TestMarkPaid(t *testing.T) {
	bill := Bill{Status: BillPending, DeliveryStatus: DeliveryPending}

	bill.MarkPaid()

	assert.Equal(t, BillPaid, bill.Status)
	assert.Equal(t, DeliveryPending, bill.DeliveryStatus)

	bill.MarkPaid()
	assert.Equal(t, BillPaid, bill.Status)
}

func TestMarkDelivered(t *testing.T) {
	bill := Bill{Status: BillPending, DeliveryStatus: DeliveryPending}

	bill.MarkDelivered()

	assert.Equal(t, DeliveryDelivered, bill.DeliveryStatus)
	// Delivery does not imply payment.
	assert.Equal(t, BillPending, bill.Status)
}
