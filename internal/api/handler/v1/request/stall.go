package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type RegisterStallRequest struct {
	CounterName     string          `json:"counter_name"`
	ParticipantName string          `json:"participant_name"`
	Mobile          string          `json:"mobile"`
	RegistrationFee decimal.Decimal `json:"registration_fee"`
}

func (req *RegisterStallRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CounterName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.ParticipantName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Mobile, validation.Required, validation.By(validMobile)),
		validation.Field(&req.RegistrationFee, validation.By(nonNegativeAmount)),
	)
}

type UpdateStallRequest struct {
	CounterName     string          `json:"counter_name"`
	ParticipantName string          `json:"participant_name"`
	Mobile          string          `json:"mobile"`
	RegistrationFee decimal.Decimal `json:"registration_fee"`
}

func (req *UpdateStallRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CounterName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.ParticipantName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Mobile, validation.Required, validation.By(validMobile)),
		validation.Field(&req.RegistrationFee, validation.By(nonNegativeAmount)),
	)
}

type CreateProductRequest struct {
	Name           string          `json:"name"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

func (req *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CostPrice, validation.By(positiveAmount)),
		validation.Field(&req.SellingPrice, validation.By(nonNegativeAmount)),
		validation.Field(&req.CommissionRate, validation.By(nonNegativeAmount)),
	)
}

type UpdateProductRequest struct {
	Name           string          `json:"name"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

func (req *UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CostPrice, validation.By(positiveAmount)),
		validation.Field(&req.SellingPrice, validation.By(positiveAmount)),
		validation.Field(&req.CommissionRate, validation.By(nonNegativeAmount)),
	)
}
