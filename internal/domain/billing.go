package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryDelivered DeliveryStatus = "delivered"
)

// BillItem is a snapshot of a product at billing time. Later product
// edits never change historical bills.
type BillItem struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Discount      decimal.Decimal `json:"discount"`
	EventMargin   decimal.Decimal `json:"event_margin"` // percent captured at billing time
}

func (i BillItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Bill struct {
	ID             uint            `json:"id"`
	StallID        uint            `json:"stall_id"`
	Items          []BillItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Total          decimal.Decimal `json:"total"`
	Status         BillStatus      `json:"status"`
	DeliveryStatus DeliveryStatus  `json:"delivery_status"`
	CustomerName   string          `json:"customer_name"`
	CustomerMobile string          `json:"customer_mobile"`
	ReceiptNumber  string          `json:"receipt_number"`
	SerialNumber   int             `json:"serial_number"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MarkPaid is one-way. A paid bill stays paid.
func (b *Bill) MarkPaid() {
	if b.Status == BillPending {
		b.Status = BillPaid
	}
}

// MarkDelivered tracks fulfillment independently of payment status.
func (b *Bill) MarkDelivered() {
	if b.DeliveryStatus == DeliveryPending {
		b.DeliveryStatus = DeliveryDelivered
	}
}

type SalesReturnItem struct {
	Name        string          `json:"name"`
	ReturnedQty int             `json:"returned_qty"`
	Price       decimal.Decimal `json:"price"`
}

type SalesReturn struct {
	ID           uint              `json:"id"`
	BillID       uint              `json:"bill_id"`
	StallID      uint              `json:"stall_id"`
	Items        []SalesReturnItem `json:"items"`
	ReturnAmount decimal.Decimal   `json:"return_amount"`
	Reason       string            `json:"reason"`
	ReturnNumber string            `json:"return_number"`
	CreatedAt    time.Time         `json:"created_at"`
}
