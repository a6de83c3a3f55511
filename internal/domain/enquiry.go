package domain

import "time"

type EnquiryStatus string

const (
	EnquiryPending  EnquiryStatus = "pending"
	EnquiryVerified EnquiryStatus = "verified"
)

// StallEnquiryField is an admin-defined form field. A field may be shown
// conditionally based on the response to another field.
type StallEnquiryField struct {
	ID                uint      `json:"id"`
	FieldLabel        string    `json:"field_label"`
	FieldType         string    `json:"field_type"` // "text", "number", "select", "radio", "textarea"
	Options           []string  `json:"options"`
	IsRequired        bool      `json:"is_required"`
	IsActive          bool      `json:"is_active"`
	DisplayOrder      int       `json:"display_order"`
	ShowConditionalOn *uint     `json:"show_conditional_on,omitempty"`
	ConditionalValue  string    `json:"conditional_value"`
	CreatedAt         time.Time `json:"created_at"`
}

// ShouldShow reports whether the field is visible given the responses
// collected so far, keyed by field ID.
func (f StallEnquiryField) ShouldShow(responses map[uint]string) bool {
	if f.ShowConditionalOn == nil {
		return true
	}
	return responses[*f.ShowConditionalOn] == f.ConditionalValue
}

// EnquiryProduct is one row of the repeatable product section of the
// enquiry form.
type EnquiryProduct struct {
	ProductName  string `json:"product_name"`
	CostPrice    string `json:"cost_price"`
	SellingPrice string `json:"selling_price"`
	SellingUnit  string `json:"selling_unit"`
	HasBrand     string `json:"has_brand"`
	BrandName    string `json:"brand_name"`
}

type StallEnquiry struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Mobile       string           `json:"mobile"`
	PanchayathID *uint            `json:"panchayath_id,omitempty"`
	WardID       *uint            `json:"ward_id,omitempty"`
	Responses    map[uint]string  `json:"responses"`
	Products     []EnquiryProduct `json:"products"`
	Status       EnquiryStatus    `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
}
