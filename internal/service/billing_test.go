package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

type fakeBillingRepo struct {
	bills   map[uint]domain.Bill
	returns []domain.SalesReturn
	nextID  uint
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{
		bills: make(map[uint]domain.Bill),
	}
}

func (f *fakeBillingRepo) Create(_ context.Context, bill domain.Bill) (domain.Bill, error) {
	f.nextID++
	bill.ID = f.nextID
	bill.SerialNumber = len(f.bills) + 1
	f.bills[bill.ID] = bill

	return bill, nil
}

func (f *fakeBillingRepo) FindByID(_ context.Context, id uint) (domain.Bill, error) {
	bill, ok := f.bills[id]
	if !ok {
		return domain.Bill{}, repository.ErrBillNotFound
	}

	return bill, nil
}

func (f *fakeBillingRepo) FindAll(_ context.Context) ([]domain.Bill, error) {
	var bills []domain.Bill
	for _, b := range f.bills {
		bills = append(bills, b)
	}

	return bills, nil
}

func (f *fakeBillingRepo) FindByStallID(_ context.Context, stallID uint) ([]domain.Bill, error) {
	var bills []domain.Bill
	for _, b := range f.bills {
		if b.StallID == stallID {
			bills = append(bills, b)
		}
	}

	return bills, nil
}

func (f *fakeBillingRepo) Update(_ context.Context, bill domain.Bill) (domain.Bill, error) {
	if _, ok := f.bills[bill.ID]; !ok {
		return domain.Bill{}, repository.ErrBillNotFound
	}
	f.bills[bill.ID] = bill

	return bill, nil
}

func (f *fakeBillingRepo) Delete(_ context.Context, id uint) error {
	delete(f.bills, id)

	return nil
}

func (f *fakeBillingRepo) CreateSalesReturn(_ context.Context, ret domain.SalesReturn) (domain.SalesReturn, error) {
	ret.ID = uint(len(f.returns) + 1)
	f.returns = append(f.returns, ret)

	return ret, nil
}

func (f *fakeBillingRepo) FindSalesReturns(_ context.Context) ([]domain.SalesReturn, error) {
	return f.returns, nil
}

func (f *fakeBillingRepo) FindSalesReturnsByBillID(_ context.Context, billID uint) ([]domain.SalesReturn, error) {
	var returns []domain.SalesReturn
	for _, r := range f.returns {
		if r.BillID == billID {
			returns = append(returns, r)
		}
	}

	return returns, nil
}

func (f *fakeBillingRepo) DeleteSalesReturnsByBillID(_ context.Context, billID uint) error {
	kept := f.returns[:0]
	for _, r := range f.returns {
		if r.BillID != billID {
			kept = append(kept, r)
		}
	}
	f.returns = kept

	return nil
}

type fakeStallRepo struct {
	stalls   map[uint]domain.Stall
	products map[uint][]domain.Product
}

func (f *fakeStallRepo) FindByID(_ context.Context, id uint) (domain.Stall, error) {
	stall, ok := f.stalls[id]
	if !ok {
		return domain.Stall{}, repository.ErrStallNotFound
	}

	return stall, nil
}

func (f *fakeStallRepo) FindAll(_ context.Context) ([]domain.Stall, error) {
	stalls := make([]domain.Stall, 0, len(f.stalls))
	for _, s := range f.stalls {
		stalls = append(stalls, s)
	}

	return stalls, nil
}

func (f *fakeStallRepo) FindProductsByStallID(_ context.Context, stallID uint) ([]domain.Product, error) {
	return f.products[stallID], nil
}

type fakePaymentsRepo struct {
	payments []domain.Payment
}

func (f *fakePaymentsRepo) FindPaymentsByStallID(_ context.Context, stallID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	for _, p := range f.payments {
		if p.StallID != nil && *p.StallID == stallID {
			payments = append(payments, p)
		}
	}

	return payments, nil
}

func newBillingService(verified bool) (*BillingService, *fakeBillingRepo) {
	repo := newFakeBillingRepo()
	stalls := &fakeStallRepo{stalls: map[uint]domain.Stall{
		1: {ID: 1, CounterName: "Dosa Corner", Verified: verified},
	}}
	svc := NewBillingService(repo, stalls, &fakePaymentsRepo{})

	return svc, repo
}

func TestCreateBill(t *testing.T) {
	svc, _ := newBillingService(true)

	bill, err := svc.CreateBill(context.Background(), domain.Bill{
		StallID: 1,
		Items: []domain.BillItem{
			{Name: "Masala Dosa", Quantity: 2, Price: d(100)},
			{Name: "Chai", Quantity: 3, Price: d(20), EventMargin: d(10)},
		},
		CustomerName: "Anitha",
	})
	require.NoError(t, err)

	assert.True(t, bill.Subtotal.Equal(d(260)), "subtotal = %s", bill.Subtotal)
	assert.True(t, bill.Total.Equal(d(260)))
	assert.Equal(t, domain.BillPending, bill.Status)
	assert.Equal(t, domain.DeliveryPending, bill.DeliveryStatus)
	assert.Equal(t, 1, bill.SerialNumber)
	assert.True(t, strings.HasPrefix(bill.ReceiptNumber, "RCT-"), "receipt = %s", bill.ReceiptNumber)

	// The unset margin defaults to the event margin, explicit ones are kept.
	assert.True(t, bill.Items[0].EventMargin.Equal(d(20)))
	assert.True(t, bill.Items[1].EventMargin.Equal(d(10)))
}

func TestCreateBillCapturesProductCommissionRate(t *testing.T) {
	repo := newFakeBillingRepo()
	stalls := &fakeStallRepo{
		stalls: map[uint]domain.Stall{
			1: {ID: 1, CounterName: "Dosa Corner", Verified: true},
		},
		products: map[uint][]domain.Product{
			1: {
				{StallID: 1, Name: "Masala Dosa", CostPrice: d(50), SellingPrice: d(100), CommissionRate: d(35)},
			},
		},
	}
	svc := NewBillingService(repo, stalls, &fakePaymentsRepo{})

	bill, err := svc.CreateBill(context.Background(), domain.Bill{
		StallID: 1,
		Items: []domain.BillItem{
			{Name: "Masala Dosa", Quantity: 2, Price: d(100)},
			{Name: "Chai", Quantity: 1, Price: d(20)}, // not in the catalog
		},
	})
	require.NoError(t, err)

	// The catalog rate lands in the snapshot; off-catalog items get the
	// event default.
	assert.True(t, bill.Items[0].EventMargin.Equal(d(35)), "margin = %s", bill.Items[0].EventMargin)
	assert.True(t, bill.Items[1].EventMargin.Equal(d(20)), "margin = %s", bill.Items[1].EventMargin)

	// A later rate edit never rewrites the captured snapshot.
	stalls.products[1][0].CommissionRate = d(10)
	stored, err := svc.FindBill(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].EventMargin.Equal(d(35)))
}

func TestCreateBillUnverifiedStall(t *testing.T) {
	svc, _ := newBillingService(false)

	_, err := svc.CreateBill(context.Background(), domain.Bill{
		StallID: 1,
		Items:   []domain.BillItem{{Name: "Chai", Quantity: 1, Price: d(20)}},
	})

	assert.ErrorIs(t, err, ErrStallNotVerified)
}

func TestCreateBillNoItems(t *testing.T) {
	svc, _ := newBillingService(true)

	_, err := svc.CreateBill(context.Background(), domain.Bill{StallID: 1})

	assert.ErrorIs(t, err, ErrEmptyBill)
}

func TestMarkBillPaidIsOneWay(t *testing.T) {
	svc, _ := newBillingService(true)

	bill, err := svc.CreateBill(context.Background(), domain.Bill{
		StallID: 1,
		Items:   []domain.BillItem{{Name: "Chai", Quantity: 1, Price: d(20)}},
	})
	require.NoError(t, err)

	paid, err := svc.MarkBillPaid(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BillPaid, paid.Status)
	// Payment does not imply delivery.
	assert.Equal(t, domain.DeliveryPending, paid.DeliveryStatus)

	again, err := svc.MarkBillPaid(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BillPaid, again.Status)
}

func TestUpdateBillKeepsItemSnapshot(t *testing.T) {
	svc, _ := newBillingService(true)

	bill, err := svc.CreateBill(context.Background(), domain.Bill{
		StallID: 1,
		Items:   []domain.BillItem{{Name: "Chai", Quantity: 2, Price: d(20)}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateBill(context.Background(), bill.ID, "Ravi", "9876543210", d(35))
	require.NoError(t, err)

	assert.Equal(t, "Ravi", updated.CustomerName)
	assert.True(t, updated.Total.Equal(d(35)))
	assert.True(t, updated.Subtotal.Equal(d(35)))
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 2, updated.Items[0].Quantity)
}

func TestCreateSalesReturn(t *testing.T) {
	svc, _ := newBillingService(true)

	bill, err := svc.CreateBill(context.Background(), domain.Bill{
		StallID: 1,
		Items: []domain.BillItem{
			{Name: "Masala Dosa", Quantity: 3, Price: d(100)},
		},
	})
	require.NoError(t, err)

	ret, err := svc.CreateSalesReturn(context.Background(), domain.SalesReturn{
		BillID: bill.ID,
		Items:  []domain.SalesReturnItem{{Name: "Masala Dosa", ReturnedQty: 2}},
		Reason: "damaged",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), ret.StallID)
	assert.True(t, ret.ReturnAmount.Equal(d(200)), "amount = %s", ret.ReturnAmount)
	// Price was filled in from the bill snapshot.
	assert.True(t, ret.Items[0].Price.Equal(d(100)))
	assert.True(t, strings.HasPrefix(ret.ReturnNumber, "SR-"), "number = %s", ret.ReturnNumber)
}

func TestCreateSalesReturnCaps(t *testing.T) {
	svc, _ := newBillingService(true)

	bill, err := svc.CreateBill(context.Background(), domain.Bill{
		StallID: 1,
		Items: []domain.BillItem{
			{Name: "Masala Dosa", Quantity: 3, Price: d(100)},
		},
	})
	require.NoError(t, err)

	t.Run("item not on the bill", func(t *testing.T) {
		_, err := svc.CreateSalesReturn(context.Background(), domain.SalesReturn{
			BillID: bill.ID,
			Items:  []domain.SalesReturnItem{{Name: "Idli", ReturnedQty: 1}},
		})
		assert.ErrorIs(t, err, ErrItemNotOnBill)
	})

	t.Run("over the billed quantity", func(t *testing.T) {
		_, err := svc.CreateSalesReturn(context.Background(), domain.SalesReturn{
			BillID: bill.ID,
			Items:  []domain.SalesReturnItem{{Name: "Masala Dosa", ReturnedQty: 4}},
		})
		assert.ErrorIs(t, err, ErrReturnExceedsBilled)
	})

	t.Run("earlier returns count against the cap", func(t *testing.T) {
		_, err := svc.CreateSalesReturn(context.Background(), domain.SalesReturn{
			BillID: bill.ID,
			Items:  []domain.SalesReturnItem{{Name: "Masala Dosa", ReturnedQty: 2}},
		})
		require.NoError(t, err)

		_, err = svc.CreateSalesReturn(context.Background(), domain.SalesReturn{
			BillID: bill.ID,
			Items:  []domain.SalesReturnItem{{Name: "Masala Dosa", ReturnedQty: 2}},
		})
		assert.ErrorIs(t, err, ErrReturnExceedsBilled)

		_, err = svc.CreateSalesReturn(context.Background(), domain.SalesReturn{
			BillID: bill.ID,
			Items:  []domain.SalesReturnItem{{Name: "Masala Dosa", ReturnedQty: 1}},
		})
		assert.NoError(t, err)
	})
}

func TestDeleteBillRemovesReturns(t *testing.T) {
	svc, repo := newBillingService(true)

	bill, err := svc.CreateBill(context.Background(), domain.Bill{
		StallID: 1,
		Items:   []domain.BillItem{{Name: "Chai", Quantity: 2, Price: d(20)}},
	})
	require.NoError(t, err)

	_, err = svc.CreateSalesReturn(context.Background(), domain.SalesReturn{
		BillID: bill.ID,
		Items:  []domain.SalesReturnItem{{Name: "Chai", ReturnedQty: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBill(context.Background(), bill.ID))

	assert.Empty(t, repo.bills)
	assert.Empty(t, repo.returns)
}
