package repository

import (
	"context"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
)

var ErrFoodOptionNotFound = dao.ErrFoodOptionNotFound

type FoodDAO interface {
	InsertOption(ctx context.Context, option dao.FoodOption) (dao.FoodOption, error)
	FindOptionByID(ctx context.Context, id uint) (dao.FoodOption, error)
	FindOptions(ctx context.Context, activeOnly bool) ([]dao.FoodOption, error)
	UpdateOption(ctx context.Context, option dao.FoodOption) (dao.FoodOption, error)
	DeleteOption(ctx context.Context, id uint) error
	InsertBookings(ctx context.Context, bookings []dao.FoodCouponBooking) ([]dao.FoodCouponBooking, error)
	FindBookings(ctx context.Context) ([]dao.FoodCouponBooking, error)
	FindBookingsByPanchayathID(ctx context.Context, panchayathID uint) ([]dao.FoodCouponBooking, error)
}

type FoodRepository struct {
	dao FoodDAO
}

func NewFoodRepository(dao FoodDAO) *FoodRepository {
	return &FoodRepository{
		dao: dao,
	}
}

func (r *FoodRepository) optionDomainToDao(o domain.FoodOption) dao.FoodOption {
	return dao.FoodOption{
		ID:           o.ID,
		Name:         o.Name,
		Price:        o.Price,
		IsActive:     o.IsActive,
		DisplayOrder: o.DisplayOrder,
		CreatedAt:    o.CreatedAt,
	}
}

func (r *FoodRepository) optionDaoToDomain(o dao.FoodOption) domain.FoodOption {
	return domain.FoodOption{
		ID:           o.ID,
		Name:         o.Name,
		Price:        o.Price,
		IsActive:     o.IsActive,
		DisplayOrder: o.DisplayOrder,
		CreatedAt:    o.CreatedAt,
	}
}

func (r *FoodRepository) bookingDaoToDomain(b dao.FoodCouponBooking) domain.FoodCouponBooking {
	return domain.FoodCouponBooking{
		ID:           b.ID,
		PanchayathID: b.PanchayathID,
		Name:         b.Name,
		Mobile:       b.Mobile,
		FoodOptionID: b.FoodOptionID,
		Quantity:     b.Quantity,
		TotalAmount:  b.TotalAmount,
		CreatedAt:    b.CreatedAt,
	}
}

func (r *FoodRepository) bookingsDaoToDomain(found []dao.FoodCouponBooking) []domain.FoodCouponBooking {
	bookings := make([]domain.FoodCouponBooking, len(found))
	for i, b := range found {
		bookings[i] = r.bookingDaoToDomain(b)
	}

	return bookings
}

func (r *FoodRepository) CreateOption(ctx context.Context, option domain.FoodOption) (domain.FoodOption, error) {
	created, err := r.dao.InsertOption(ctx, r.optionDomainToDao(option))
	if err != nil {
		return domain.FoodOption{}, fmt.Errorf("r.dao.InsertOption -> %w", err)
	}

	return r.optionDaoToDomain(created), nil
}

func (r *FoodRepository) FindOptionByID(ctx context.Context, id uint) (domain.FoodOption, error) {
	found, err := r.dao.FindOptionByID(ctx, id)
	if err != nil {
		return domain.FoodOption{}, fmt.Errorf("r.dao.FindOptionByID -> %w", err)
	}

	return r.optionDaoToDomain(found), nil
}

func (r *FoodRepository) FindOptions(ctx context.Context, activeOnly bool) ([]domain.FoodOption, error) {
	found, err := r.dao.FindOptions(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOptions -> %w", err)
	}

	options := make([]domain.FoodOption, len(found))
	for i, o := range found {
		options[i] = r.optionDaoToDomain(o)
	}

	return options, nil
}

func (r *FoodRepository) UpdateOption(ctx context.Context, option domain.FoodOption) (domain.FoodOption, error) {
	updated, err := r.dao.UpdateOption(ctx, r.optionDomainToDao(option))
	if err != nil {
		return domain.FoodOption{}, fmt.Errorf("r.dao.UpdateOption -> %w", err)
	}

	return r.optionDaoToDomain(updated), nil
}

func (r *FoodRepository) DeleteOption(ctx context.Context, id uint) error {
	if err := r.dao.DeleteOption(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteOption -> %w", err)
	}

	return nil
}

func (r *FoodRepository) CreateBookings(ctx context.Context, bookings []domain.FoodCouponBooking) ([]domain.FoodCouponBooking, error) {
	bookingDAOs := make([]dao.FoodCouponBooking, len(bookings))
	for i, b := range bookings {
		bookingDAOs[i] = dao.FoodCouponBooking{
			PanchayathID: b.PanchayathID,
			Name:         b.Name,
			Mobile:       b.Mobile,
			FoodOptionID: b.FoodOptionID,
			Quantity:     b.Quantity,
			TotalAmount:  b.TotalAmount,
		}
	}

	created, err := r.dao.InsertBookings(ctx, bookingDAOs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertBookings -> %w", err)
	}

	return r.bookingsDaoToDomain(created), nil
}

func (r *FoodRepository) FindBookings(ctx context.Context) ([]domain.FoodCouponBooking, error) {
	found, err := r.dao.FindBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBookings -> %w", err)
	}

	return r.bookingsDaoToDomain(found), nil
}

func (r *FoodRepository) FindBookingsByPanchayathID(ctx context.Context, panchayathID uint) ([]domain.FoodCouponBooking, error) {
	found, err := r.dao.FindBookingsByPanchayathID(ctx, panchayathID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBookingsByPanchayathID -> %w", err)
	}

	return r.bookingsDaoToDomain(found), nil
}
