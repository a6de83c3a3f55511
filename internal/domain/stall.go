package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Stall struct {
	ID              uint            `json:"id"`
	CounterName     string          `json:"counter_name"`
	ParticipantName string          `json:"participant_name"`
	Mobile          string          `json:"mobile"`
	RegistrationFee decimal.Decimal `json:"registration_fee"`
	Verified        bool            `json:"verified"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Product struct {
	ID             uint            `json:"id"`
	StallID        uint            `json:"stall_id"`
	Name           string          `json:"name"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	CommissionRate decimal.Decimal `json:"commission_rate"` // percent, default 20
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
