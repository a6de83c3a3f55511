package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type StallLoginRequest struct {
	CounterName string `json:"counter_name"`
	Mobile      string `json:"mobile"`
}

func (req *StallLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CounterName, validation.Required),
		validation.Field(&req.Mobile, validation.Required, validation.By(validMobile)),
	)
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *AdminLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
