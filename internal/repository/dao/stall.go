package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrStallNotFound   = errors.New("stall not found")
	ErrProductNotFound = errors.New("product not found")
)

type Stall struct {
	ID uint `gorm:"primaryKey"`

	CounterName     string          `gorm:"not null"`
	ParticipantName string          `gorm:"not null"`
	Mobile          string          `gorm:"not null"`
	RegistrationFee decimal.Decimal `gorm:"type:numeric;not null"`
	Verified        bool            `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Product struct {
	ID uint `gorm:"primaryKey"`

	StallID        uint            `gorm:"not null;index"`
	Name           string          `gorm:"not null"`
	CostPrice      decimal.Decimal `gorm:"type:numeric;not null"`
	SellingPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	CommissionRate decimal.Decimal `gorm:"type:numeric;not null;default:20"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StallDAO struct {
	db *gorm.DB
}

func NewStallDAO(db *gorm.DB) *StallDAO {
	return &StallDAO{
		db: db,
	}
}

func (d *StallDAO) Insert(ctx context.Context, stall Stall) (Stall, error) {
	result := d.db.WithContext(ctx).Create(&stall)
	if result.Error != nil {
		return Stall{}, result.Error
	}

	return stall, nil
}

func (d *StallDAO) FindByID(ctx context.Context, id uint) (Stall, error) {
	var stall Stall

	result := d.db.WithContext(ctx).First(&stall, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stall{}, ErrStallNotFound
		}

		return Stall{}, result.Error
	}

	return stall, nil
}

func (d *StallDAO) FindByCredentials(ctx context.Context, counterName, mobile string) (Stall, error) {
	var stall Stall

	result := d.db.WithContext(ctx).
		Where("counter_name = ? AND mobile = ?", counterName, mobile).
		First(&stall)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stall{}, ErrStallNotFound
		}

		return Stall{}, result.Error
	}

	return stall, nil
}

func (d *StallDAO) FindAll(ctx context.Context) ([]Stall, error) {
	var stalls []Stall

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&stalls)
	if result.Error != nil {
		return nil, result.Error
	}

	return stalls, nil
}

func (d *StallDAO) Update(ctx context.Context, stall Stall) (Stall, error) {
	result := d.db.WithContext(ctx).Save(&stall)
	if result.Error != nil {
		return Stall{}, result.Error
	}

	return stall, nil
}

func (d *StallDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&Stall{}, id).Error
}

func (d *StallDAO) InsertProduct(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

func (d *StallDAO) FindProductByID(ctx context.Context, id uint) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *StallDAO) FindProductsByStallID(ctx context.Context, stallID uint) ([]Product, error) {
	var products []Product

	result := d.db.WithContext(ctx).
		Where("stall_id = ?", stallID).
		Order("name").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *StallDAO) UpdateProduct(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Save(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

func (d *StallDAO) DeleteProduct(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&Product{}, id).Error
}

func (d *StallDAO) DeleteProductsByStallID(ctx context.Context, stallID uint) error {
	return d.db.WithContext(ctx).Where("stall_id = ?", stallID).Delete(&Product{}).Error
}
