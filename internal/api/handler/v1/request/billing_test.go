package request

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateBillRequestValidate(t *testing.T) {
	req := CreateBillRequest{
		Items: []BillItemRequest{
			{Name: "Masala Dosa", Quantity: 2, Price: decimal.NewFromInt(100)},
		},
		CustomerName:   "Anitha",
		CustomerMobile: "9876543210",
	}
	assert.NoError(t, req.Validate())

	t.Run("no items", func(t *testing.T) {
		empty := CreateBillRequest{}
		assert.ErrorIs(t, empty.Validate(), errNoItems)
	})

	t.Run("zero quantity", func(t *testing.T) {
		bad := req
		bad.Items = []BillItemRequest{{Name: "Chai", Quantity: 0, Price: decimal.NewFromInt(20)}}
		assert.ErrorIs(t, bad.Validate(), errInvalidQuantity)
	})

	t.Run("zero price", func(t *testing.T) {
		bad := req
		bad.Items = []BillItemRequest{{Name: "Chai", Quantity: 1}}
		assert.Error(t, bad.Validate())
	})

	t.Run("bad customer mobile", func(t *testing.T) {
		bad := req
		bad.CustomerMobile = "12345"
		assert.ErrorIs(t, bad.Validate(), errInvalidMobile)
	})

	t.Run("mobile is optional", func(t *testing.T) {
		ok := req
		ok.CustomerMobile = ""
		assert.NoError(t, ok.Validate())
	})
}

func TestCreateSalesReturnRequestValidate(t *testing.T) {
	req := CreateSalesReturnRequest{
		Items:  []SalesReturnItemRequest{{Name: "Masala Dosa", ReturnedQty: 1}},
		Reason: "damaged",
	}
	assert.NoError(t, req.Validate())

	t.Run("no items", func(t *testing.T) {
		empty := CreateSalesReturnRequest{}
		assert.ErrorIs(t, empty.Validate(), errNoItems)
	})

	t.Run("zero returned quantity", func(t *testing.T) {
		bad := CreateSalesReturnRequest{
			Items: []SalesReturnItemRequest{{Name: "Chai", ReturnedQty: 0}},
		}
		assert.ErrorIs(t, bad.Validate(), errInvalidReturnQty)
	})
}
