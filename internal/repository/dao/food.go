package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrFoodOptionNotFound = errors.New("food option not found")

type FoodOption struct {
	ID uint `gorm:"primaryKey"`

	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:numeric;not null"`
	IsActive     bool            `gorm:"not null;default:true"`
	DisplayOrder int             `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
}

type FoodCouponBooking struct {
	ID uint `gorm:"primaryKey"`

	PanchayathID uint            `gorm:"not null;index"`
	Name         string          `gorm:"not null"`
	Mobile       string          `gorm:"not null"`
	FoodOptionID uint            `gorm:"not null;index"`
	Quantity     int             `gorm:"not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type FoodDAO struct {
	db *gorm.DB
}

func NewFoodDAO(db *gorm.DB) *FoodDAO {
	return &FoodDAO{
		db: db,
	}
}

func (d *FoodDAO) InsertOption(ctx context.Context, option FoodOption) (FoodOption, error) {
	result := d.db.WithContext(ctx).Create(&option)
	if result.Error != nil {
		return FoodOption{}, result.Error
	}

	return option, nil
}

func (d *FoodDAO) FindOptionByID(ctx context.Context, id uint) (FoodOption, error) {
	var option FoodOption

	result := d.db.WithContext(ctx).First(&option, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return FoodOption{}, ErrFoodOptionNotFound
		}

		return FoodOption{}, result.Error
	}

	return option, nil
}

// FindOptions lists options in display order. When activeOnly is set,
// inactive menu items are filtered out (the public booking form).
func (d *FoodDAO) FindOptions(ctx context.Context, activeOnly bool) ([]FoodOption, error) {
	var options []FoodOption

	query := d.db.WithContext(ctx).Order("display_order")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Find(&options)
	if result.Error != nil {
		return nil, result.Error
	}

	return options, nil
}

func (d *FoodDAO) UpdateOption(ctx context.Context, option FoodOption) (FoodOption, error) {
	result := d.db.WithContext(ctx).Save(&option)
	if result.Error != nil {
		return FoodOption{}, result.Error
	}

	return option, nil
}

func (d *FoodDAO) DeleteOption(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&FoodOption{}, id).Error
}

func (d *FoodDAO) InsertBookings(ctx context.Context, bookings []FoodCouponBooking) ([]FoodCouponBooking, error) {
	result := d.db.WithContext(ctx).Create(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

func (d *FoodDAO) FindBookings(ctx context.Context) ([]FoodCouponBooking, error) {
	var bookings []FoodCouponBooking

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

func (d *FoodDAO) FindBookingsByPanchayathID(ctx context.Context, panchayathID uint) ([]FoodCouponBooking, error) {
	var bookings []FoodCouponBooking

	result := d.db.WithContext(ctx).
		Where("panchayath_id = ?", panchayathID).
		Order("created_at DESC").
		Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}
