package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var (
	errNoItems          = errors.New("at least one item is required")
	errInvalidQuantity  = errors.New("item quantity must be at least 1")
	errInvalidReturnQty = errors.New("returned quantity must be at least 1")
)

type BillItemRequest struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Discount      decimal.Decimal `json:"discount"`
}

func (i *BillItemRequest) validate() error {
	if err := validation.ValidateStruct(
		i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Price, validation.By(positiveAmount)),
		validation.Field(&i.Discount, validation.By(nonNegativeAmount)),
	); err != nil {
		return err
	}

	if i.Quantity < 1 {
		return errInvalidQuantity
	}

	return nil
}

type CreateBillRequest struct {
	Items          []BillItemRequest `json:"items"`
	CustomerName   string            `json:"customer_name"`
	CustomerMobile string            `json:"customer_mobile"`
}

func (req *CreateBillRequest) Validate() error {
	if len(req.Items) == 0 {
		return errNoItems
	}

	for i := range req.Items {
		if err := req.Items[i].validate(); err != nil {
			return err
		}
	}

	if req.CustomerMobile != "" {
		if err := validMobile(req.CustomerMobile); err != nil {
			return err
		}
	}

	return nil
}

type UpdateBillRequest struct {
	CustomerName   string          `json:"customer_name"`
	CustomerMobile string          `json:"customer_mobile"`
	Total          decimal.Decimal `json:"total"`
}

func (req *UpdateBillRequest) Validate() error {
	if req.CustomerMobile != "" {
		if err := validMobile(req.CustomerMobile); err != nil {
			return err
		}
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Total, validation.By(positiveAmount)),
	)
}

type SalesReturnItemRequest struct {
	Name        string          `json:"name"`
	ReturnedQty int             `json:"returned_qty"`
	Price       decimal.Decimal `json:"price"`
}

type CreateSalesReturnRequest struct {
	Items  []SalesReturnItemRequest `json:"items"`
	Reason string                   `json:"reason"`
}

func (req *CreateSalesReturnRequest) Validate() error {
	if len(req.Items) == 0 {
		return errNoItems
	}

	for _, item := range req.Items {
		if item.Name == "" {
			return errors.New("item name is required")
		}
		if item.ReturnedQty < 1 {
			return errInvalidReturnQty
		}
	}

	return nil
}
