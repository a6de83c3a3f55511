package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreatePanchayathRequest struct {
	Name      string `json:"name"`
	WardCount int    `json:"ward_count"`
}

func (req *CreatePanchayathRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.WardCount, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

type UpdateWardRequest struct {
	WardName string `json:"ward_name"`
}

func (req *UpdateWardRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.WardName, validation.Required, validation.Length(1, 100)),
	)
}
