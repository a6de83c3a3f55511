package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

type fakeFoodRepo struct {
	options  map[uint]domain.FoodOption
	bookings []domain.FoodCouponBooking
}

func newFakeFoodRepo(options ...domain.FoodOption) *fakeFoodRepo {
	repo := &fakeFoodRepo{options: make(map[uint]domain.FoodOption)}
	for _, o := range options {
		repo.options[o.ID] = o
	}

	return repo
}

func (f *fakeFoodRepo) CreateOption(_ context.Context, option domain.FoodOption) (domain.FoodOption, error) {
	option.ID = uint(len(f.options) + 1)
	f.options[option.ID] = option

	return option, nil
}

func (f *fakeFoodRepo) FindOptionByID(_ context.Context, id uint) (domain.FoodOption, error) {
	option, ok := f.options[id]
	if !ok {
		return domain.FoodOption{}, repository.ErrFoodOptionNotFound
	}

	return option, nil
}

func (f *fakeFoodRepo) FindOptions(_ context.Context, activeOnly bool) ([]domain.FoodOption, error) {
	var options []domain.FoodOption
	for _, o := range f.options {
		if activeOnly && !o.IsActive {
			continue
		}
		options = append(options, o)
	}

	return options, nil
}

func (f *fakeFoodRepo) UpdateOption(_ context.Context, option domain.FoodOption) (domain.FoodOption, error) {
	f.options[option.ID] = option

	return option, nil
}

func (f *fakeFoodRepo) DeleteOption(_ context.Context, id uint) error {
	delete(f.options, id)

	return nil
}

func (f *fakeFoodRepo) CreateBookings(_ context.Context, bookings []domain.FoodCouponBooking) ([]domain.FoodCouponBooking, error) {
	for i := range bookings {
		bookings[i].ID = uint(len(f.bookings) + 1)
		f.bookings = append(f.bookings, bookings[i])
	}

	return bookings, nil
}

func (f *fakeFoodRepo) FindBookings(_ context.Context) ([]domain.FoodCouponBooking, error) {
	return f.bookings, nil
}

func (f *fakeFoodRepo) FindBookingsByPanchayathID(_ context.Context, panchayathID uint) ([]domain.FoodCouponBooking, error) {
	var bookings []domain.FoodCouponBooking
	for _, b := range f.bookings {
		if b.PanchayathID == panchayathID {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

type fakeFoodSurveyRepo struct {
	panchayaths map[uint]domain.Panchayath
}

func (f *fakeFoodSurveyRepo) FindPanchayathByID(_ context.Context, id uint) (domain.Panchayath, error) {
	p, ok := f.panchayaths[id]
	if !ok {
		return domain.Panchayath{}, repository.ErrPanchayathNotFound
	}

	return p, nil
}

func newFoodService(options ...domain.FoodOption) (*FoodService, *fakeFoodRepo) {
	repo := newFakeFoodRepo(options...)
	survey := &fakeFoodSurveyRepo{panchayaths: map[uint]domain.Panchayath{
		1: {ID: 1, Name: "Kakkodi"},
	}}

	return NewFoodService(repo, survey), repo
}

func TestBook(t *testing.T) {
	svc, repo := newFoodService(
		domain.FoodOption{ID: 1, Name: "Veg meal", Price: d(80), IsActive: true},
		domain.FoodOption{ID: 2, Name: "Chicken biriyani", Price: d(150), IsActive: true},
	)

	bookings, err := svc.Book(context.Background(), 1, "Anitha", "9876543210", []BookingSelection{
		{FoodOptionID: 1, Quantity: 3},
		{FoodOptionID: 2, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// One row per selection, each totalled at the current option price.
	assert.True(t, bookings[0].TotalAmount.Equal(d(240)), "total = %s", bookings[0].TotalAmount)
	assert.True(t, bookings[1].TotalAmount.Equal(d(300)), "total = %s", bookings[1].TotalAmount)
	assert.Equal(t, uint(1), bookings[0].PanchayathID)
	assert.Len(t, repo.bookings, 2)
}

func TestBookInactiveOption(t *testing.T) {
	svc, _ := newFoodService(
		domain.FoodOption{ID: 1, Name: "Veg meal", Price: d(80), IsActive: false},
	)

	_, err := svc.Book(context.Background(), 1, "Anitha", "9876543210", []BookingSelection{
		{FoodOptionID: 1, Quantity: 1},
	})

	assert.ErrorIs(t, err, ErrFoodOptionInactive)
}

func TestBookNoSelections(t *testing.T) {
	svc, _ := newFoodService()

	_, err := svc.Book(context.Background(), 1, "Anitha", "9876543210", nil)

	assert.ErrorIs(t, err, ErrEmptyBooking)
}

func TestBookUnknownPanchayath(t *testing.T) {
	svc, _ := newFoodService(
		domain.FoodOption{ID: 1, Name: "Veg meal", Price: d(80), IsActive: true},
	)

	_, err := svc.Book(context.Background(), 9, "Anitha", "9876543210", []BookingSelection{
		{FoodOptionID: 1, Quantity: 1},
	})

	assert.ErrorIs(t, err, ErrPanchayathNotFound)
}

func TestFindOptionsActiveOnly(t *testing.T) {
	svc, _ := newFoodService(
		domain.FoodOption{ID: 1, Name: "Veg meal", Price: d(80), IsActive: true},
		domain.FoodOption{ID: 2, Name: "Retired dish", Price: d(60), IsActive: false},
	)

	options, err := svc.FindOptions(context.Background(), true)
	require.NoError(t, err)

	require.Len(t, options, 1)
	assert.Equal(t, "Veg meal", options[0].Name)
}
