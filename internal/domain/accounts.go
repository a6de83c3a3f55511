package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegistrationType string

const (
	RegistrationStallCounter           RegistrationType = "stall_counter"
	RegistrationEmploymentBooking      RegistrationType = "employment_booking"
	RegistrationEmploymentRegistration RegistrationType = "employment_registration"
)

// Registration is a paid sign-up independent of stall billing.
type Registration struct {
	ID            uint             `json:"id"`
	Type          RegistrationType `json:"type"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Mobile        string           `json:"mobile"`
	Amount        decimal.Decimal  `json:"amount"`
	ReceiptNumber string           `json:"receipt_number"`
	CreatedAt     time.Time        `json:"created_at"`
}

type PaymentType string

const (
	PaymentParticipant PaymentType = "participant"
	PaymentOther       PaymentType = "other"
)

type Payment struct {
	ID             uint            `json:"id"`
	Type           PaymentType     `json:"payment_type"`
	StallID        *uint           `json:"stall_id,omitempty"`
	TotalBilled    decimal.Decimal `json:"total_billed"`
	MarginDeducted decimal.Decimal `json:"margin_deducted"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Narration      string          `json:"narration"`
	CreatedAt      time.Time       `json:"created_at"`
}
