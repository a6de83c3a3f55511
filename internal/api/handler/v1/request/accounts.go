package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type ParticipantPaymentRequest struct {
	StallID     uint            `json:"stall_id"`
	TotalBilled decimal.Decimal `json:"total_billed"`
}

func (req *ParticipantPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StallID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.TotalBilled, validation.By(positiveAmount)),
	)
}

type OtherPaymentRequest struct {
	Narration  string          `json:"narration"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

func (req *OtherPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Narration, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.AmountPaid, validation.By(positiveAmount)),
	)
}

type CreateRegistrationRequest struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Mobile   string          `json:"mobile"`
	Amount   decimal.Decimal `json:"amount"`
}

func (req *CreateRegistrationRequest) Validate() error {
	if req.Mobile != "" {
		if err := validMobile(req.Mobile); err != nil {
			return err
		}
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required,
			validation.In("stall_counter", "employment_booking", "employment_registration")),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Amount, validation.By(positiveAmount)),
	)
}
