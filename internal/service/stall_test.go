package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

type fakeStallStore struct {
	stalls   map[uint]domain.Stall
	products map[uint]domain.Product
	nextID   uint
}

func newFakeStallStore() *fakeStallStore {
	return &fakeStallStore{
		stalls:   make(map[uint]domain.Stall),
		products: make(map[uint]domain.Product),
	}
}

func (f *fakeStallStore) Create(_ context.Context, stall domain.Stall) (domain.Stall, error) {
	f.nextID++
	stall.ID = f.nextID
	f.stalls[stall.ID] = stall

	return stall, nil
}

func (f *fakeStallStore) FindByID(_ context.Context, id uint) (domain.Stall, error) {
	stall, ok := f.stalls[id]
	if !ok {
		return domain.Stall{}, repository.ErrStallNotFound
	}

	return stall, nil
}

func (f *fakeStallStore) FindAll(_ context.Context) ([]domain.Stall, error) {
	var stalls []domain.Stall
	for _, s := range f.stalls {
		stalls = append(stalls, s)
	}

	return stalls, nil
}

func (f *fakeStallStore) Update(_ context.Context, stall domain.Stall) (domain.Stall, error) {
	f.stalls[stall.ID] = stall

	return stall, nil
}

func (f *fakeStallStore) Delete(_ context.Context, id uint) error {
	delete(f.stalls, id)

	return nil
}

func (f *fakeStallStore) CreateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	f.nextID++
	product.ID = f.nextID
	f.products[product.ID] = product

	return product, nil
}

func (f *fakeStallStore) FindProductByID(_ context.Context, id uint) (domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return domain.Product{}, repository.ErrProductNotFound
	}

	return product, nil
}

func (f *fakeStallStore) FindProductsByStallID(_ context.Context, stallID uint) ([]domain.Product, error) {
	var products []domain.Product
	for _, p := range f.products {
		if p.StallID == stallID {
			products = append(products, p)
		}
	}

	return products, nil
}

func (f *fakeStallStore) UpdateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	f.products[product.ID] = product

	return product, nil
}

func (f *fakeStallStore) DeleteProduct(_ context.Context, id uint) error {
	delete(f.products, id)

	return nil
}

func (f *fakeStallStore) DeleteProductsByStallID(_ context.Context, stallID uint) error {
	for id, p := range f.products {
		if p.StallID == stallID {
			delete(f.products, id)
		}
	}

	return nil
}

type fakeStallBillingRepo struct {
	deletedBills   []uint
	deletedReturns []uint
}

func (f *fakeStallBillingRepo) DeleteByStallID(_ context.Context, stallID uint) error {
	f.deletedBills = append(f.deletedBills, stallID)

	return nil
}

func (f *fakeStallBillingRepo) DeleteSalesReturnsByStallID(_ context.Context, stallID uint) error {
	f.deletedReturns = append(f.deletedReturns, stallID)

	return nil
}

type fakeStallAccountsRepo struct {
	deletedPayments []uint
}

func (f *fakeStallAccountsRepo) DeletePaymentsByStallID(_ context.Context, stallID uint) error {
	f.deletedPayments = append(f.deletedPayments, stallID)

	return nil
}

func newStallService() (*StallService, *fakeStallStore, *fakeStallBillingRepo, *fakeStallAccountsRepo) {
	store := newFakeStallStore()
	billing := &fakeStallBillingRepo{}
	accounts := &fakeStallAccountsRepo{}
	svc := NewStallService(store, billing, accounts)

	return svc, store, billing, accounts
}

func TestRegisterStartsUnverified(t *testing.T) {
	svc, _, _, _ := newStallService()

	stall, err := svc.Register(context.Background(), domain.Stall{
		CounterName: "Dosa Corner",
		Verified:    true, // client input must not grant verification
	})
	require.NoError(t, err)

	assert.False(t, stall.Verified)
}

func TestVerifyIsOneWay(t *testing.T) {
	svc, store, _, _ := newStallService()

	stall, err := svc.Register(context.Background(), domain.Stall{CounterName: "Dosa Corner"})
	require.NoError(t, err)

	verified, err := svc.Verify(context.Background(), stall.ID)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	again, err := svc.Verify(context.Background(), stall.ID)
	require.NoError(t, err)
	assert.True(t, again.Verified)
	assert.True(t, store.stalls[stall.ID].Verified)
}

func TestSuggestedSellingPrice(t *testing.T) {
	// 20% markup, rounded up to the next rupee
	assert.True(t, SuggestedSellingPrice(d(100)).Equal(d(120)))
	assert.True(t, SuggestedSellingPrice(d(99)).Equal(d(119))) // 118.8 rounds up
	assert.True(t, SuggestedSellingPrice(d(0)).IsZero())
}

func TestAddProductDefaults(t *testing.T) {
	svc, _, _, _ := newStallService()

	stall, err := svc.Register(context.Background(), domain.Stall{CounterName: "Dosa Corner"})
	require.NoError(t, err)

	product, err := svc.AddProduct(context.Background(), domain.Product{
		StallID:   stall.ID,
		Name:      "Masala Dosa",
		CostPrice: d(50),
	})
	require.NoError(t, err)

	assert.True(t, product.SellingPrice.Equal(d(60)), "selling = %s", product.SellingPrice)
	assert.True(t, product.CommissionRate.Equal(d(20)))

	explicit, err := svc.AddProduct(context.Background(), domain.Product{
		StallID:        stall.ID,
		Name:           "Special Dosa",
		CostPrice:      d(50),
		SellingPrice:   d(80),
		CommissionRate: d(10),
	})
	require.NoError(t, err)

	assert.True(t, explicit.SellingPrice.Equal(d(80)))
	assert.True(t, explicit.CommissionRate.Equal(d(10)))
}

func TestDeleteStallCascades(t *testing.T) {
	svc, store, billing, accounts := newStallService()

	stall, err := svc.Register(context.Background(), domain.Stall{CounterName: "Dosa Corner"})
	require.NoError(t, err)

	_, err = svc.AddProduct(context.Background(), domain.Product{
		StallID:   stall.ID,
		Name:      "Masala Dosa",
		CostPrice: d(50),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), stall.ID))

	assert.Empty(t, store.stalls)
	assert.Empty(t, store.products)
	assert.Equal(t, []uint{stall.ID}, billing.deletedBills)
	assert.Equal(t, []uint{stall.ID}, billing.deletedReturns)
	assert.Equal(t, []uint{stall.ID}, accounts.deletedPayments)
}

func TestDeleteUnknownStall(t *testing.T) {
	svc, _, _, _ := newStallService()

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrStallNotFound)
}
