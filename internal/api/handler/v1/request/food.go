package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var errNoSelections = errors.New("at least one food option must be selected")

type FoodOptionRequest struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	IsActive     bool            `json:"is_active"`
	DisplayOrder int             `json:"display_order"`
}

func (req *FoodOptionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.By(positiveAmount)),
		validation.Field(&req.DisplayOrder, validation.Min(0)),
	)
}

type BookingSelectionRequest struct {
	FoodOptionID uint `json:"food_option_id"`
	Quantity     int  `json:"quantity"`
}

type CreateBookingRequest struct {
	PanchayathID uint                      `json:"panchayath_id"`
	Name         string                    `json:"name"`
	Mobile       string                    `json:"mobile"`
	Selections   []BookingSelectionRequest `json:"selections"`
}

func (req *CreateBookingRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.PanchayathID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Mobile, validation.Required, validation.By(validMobile)),
	); err != nil {
		return err
	}

	if len(req.Selections) == 0 {
		return errNoSelections
	}
	for _, sel := range req.Selections {
		if sel.FoodOptionID == 0 {
			return errors.New("food option id is required")
		}
		if sel.Quantity < 1 {
			return errInvalidQuantity
		}
	}

	return nil
}
