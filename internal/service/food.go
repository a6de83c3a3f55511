package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var (
	ErrFoodOptionNotFound = repository.ErrFoodOptionNotFound
	ErrFoodOptionInactive = errors.New("food option is not active")
	ErrEmptyBooking       = errors.New("booking must select at least one option")
)

type FoodRepository interface {
	CreateOption(ctx context.Context, option domain.FoodOption) (domain.FoodOption, error)
	FindOptionByID(ctx context.Context, id uint) (domain.FoodOption, error)
	FindOptions(ctx context.Context, activeOnly bool) ([]domain.FoodOption, error)
	UpdateOption(ctx context.Context, option domain.FoodOption) (domain.FoodOption, error)
	DeleteOption(ctx context.Context, id uint) error
	CreateBookings(ctx context.Context, bookings []domain.FoodCouponBooking) ([]domain.FoodCouponBooking, error)
	FindBookings(ctx context.Context) ([]domain.FoodCouponBooking, error)
	FindBookingsByPanchayathID(ctx context.Context, panchayathID uint) ([]domain.FoodCouponBooking, error)
}

type FoodSurveyRepository interface {
	FindPanchayathByID(ctx context.Context, id uint) (domain.Panchayath, error)
}

type FoodService struct {
	repo       FoodRepository
	surveyRepo FoodSurveyRepository
}

func NewFoodService(repo FoodRepository, surveyRepo FoodSurveyRepository) *FoodService {
	return &FoodService{
		repo:       repo,
		surveyRepo: surveyRepo,
	}
}

func (s *FoodService) CreateOption(ctx context.Context, option domain.FoodOption) (domain.FoodOption, error) {
	created, err := s.repo.CreateOption(ctx, option)
	if err != nil {
		return domain.FoodOption{}, fmt.Errorf("s.repo.CreateOption -> %w", err)
	}

	return created, nil
}

func (s *FoodService) FindOptions(ctx context.Context, activeOnly bool) ([]domain.FoodOption, error) {
	options, err := s.repo.FindOptions(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindOptions -> %w", err)
	}

	return options, nil
}

func (s *FoodService) UpdateOption(ctx context.Context, option domain.FoodOption) (domain.FoodOption, error) {
	existing, err := s.repo.FindOptionByID(ctx, option.ID)
	if err != nil {
		return domain.FoodOption{}, fmt.Errorf("s.repo.FindOptionByID -> %w", err)
	}

	existing.Name = option.Name
	existing.Price = option.Price
	existing.IsActive = option.IsActive
	existing.DisplayOrder = option.DisplayOrder

	updated, err := s.repo.UpdateOption(ctx, existing)
	if err != nil {
		return domain.FoodOption{}, fmt.Errorf("s.repo.UpdateOption -> %w", err)
	}

	return updated, nil
}

func (s *FoodService) DeleteOption(ctx context.Context, id uint) error {
	if _, err := s.repo.FindOptionByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindOptionByID -> %w", err)
	}

	if err := s.repo.DeleteOption(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteOption -> %w", err)
	}

	return nil
}

// BookingSelection is one chosen option with its quantity.
type BookingSelection struct {
	FoodOptionID uint
	Quantity     int
}

// Book writes one booking row per selected option. Totals come from the
// current option prices; inactive options are rejected.
func (s *FoodService) Book(ctx context.Context, panchayathID uint, name, mobile string, selections []BookingSelection) ([]domain.FoodCouponBooking, error) {
	if len(selections) == 0 {
		return nil, ErrEmptyBooking
	}

	if _, err := s.surveyRepo.FindPanchayathByID(ctx, panchayathID); err != nil {
		return nil, fmt.Errorf("s.surveyRepo.FindPanchayathByID -> %w", err)
	}

	bookings := make([]domain.FoodCouponBooking, 0, len(selections))
	for _, sel := range selections {
		option, err := s.repo.FindOptionByID(ctx, sel.FoodOptionID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindOptionByID -> %w", err)
		}
		if !option.IsActive {
			return nil, ErrFoodOptionInactive
		}

		bookings = append(bookings, domain.FoodCouponBooking{
			PanchayathID: panchayathID,
			Name:         name,
			Mobile:       mobile,
			FoodOptionID: option.ID,
			Quantity:     sel.Quantity,
			TotalAmount:  option.Price.Mul(decimal.NewFromInt(int64(sel.Quantity))),
		})
	}

	created, err := s.repo.CreateBookings(ctx, bookings)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CreateBookings -> %w", err)
	}

	return created, nil
}

func (s *FoodService) FindBookings(ctx context.Context) ([]domain.FoodCouponBooking, error) {
	bookings, err := s.repo.FindBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBookings -> %w", err)
	}

	return bookings, nil
}

func (s *FoodService) FindBookingsByPanchayath(ctx context.Context, panchayathID uint) ([]domain.FoodCouponBooking, error) {
	bookings, err := s.repo.FindBookingsByPanchayathID(ctx, panchayathID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBookingsByPanchayathID -> %w", err)
	}

	return bookings, nil
}
