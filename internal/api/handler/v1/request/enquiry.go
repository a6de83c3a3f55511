package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EnquiryFieldRequest struct {
	FieldLabel        string   `json:"field_label"`
	FieldType         string   `json:"field_type"`
	Options           []string `json:"options"`
	IsRequired        bool     `json:"is_required"`
	IsActive          bool     `json:"is_active"`
	DisplayOrder      int      `json:"display_order"`
	ShowConditionalOn *uint    `json:"show_conditional_on"`
	ConditionalValue  string   `json:"conditional_value"`
}

func (req *EnquiryFieldRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FieldLabel, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.FieldType, validation.Required,
			validation.In("text", "number", "select", "radio", "textarea")),
		validation.Field(&req.DisplayOrder, validation.Min(0)),
	)
}

type EnquiryProductRequest struct {
	ProductName  string `json:"product_name"`
	CostPrice    string `json:"cost_price"`
	SellingPrice string `json:"selling_price"`
	SellingUnit  string `json:"selling_unit"`
	HasBrand     string `json:"has_brand"`
	BrandName    string `json:"brand_name"`
}

type SubmitEnquiryRequest struct {
	Name         string                  `json:"name"`
	Mobile       string                  `json:"mobile"`
	PanchayathID *uint                   `json:"panchayath_id"`
	WardID       *uint                   `json:"ward_id"`
	Responses    map[uint]string         `json:"responses"`
	Products     []EnquiryProductRequest `json:"products"`
}

func (req *SubmitEnquiryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Mobile, validation.Required, validation.By(validMobile)),
	)
}
