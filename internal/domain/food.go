package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FoodOption struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	IsActive     bool            `json:"is_active"`
	DisplayOrder int             `json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
}

type FoodCouponBooking struct {
	ID           uint            `json:"id"`
	PanchayathID uint            `json:"panchayath_id"`
	Name         string          `json:"name"`
	Mobile       string          `json:"mobile"`
	FoodOptionID uint            `json:"food_option_id"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}
