package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBillNotFound        = errors.New("bill not found")
	ErrSalesReturnNotFound = errors.New("sales return not found")
)

type Bill struct {
	ID uint `gorm:"primaryKey"`

	StallID        uint            `gorm:"not null;index"`
	Items          string          `gorm:"type:jsonb;not null"` // immutable snapshot
	Subtotal       decimal.Decimal `gorm:"type:numeric;not null"`
	Total          decimal.Decimal `gorm:"type:numeric;not null"`
	Status         string          `gorm:"not null;default:pending"`
	DeliveryStatus string          `gorm:"not null;default:pending"`
	CustomerName   string
	CustomerMobile string
	ReceiptNumber  string `gorm:"not null;uniqueIndex"`
	SerialNumber   int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SalesReturn struct {
	ID uint `gorm:"primaryKey"`

	BillID       uint            `gorm:"not null;index"`
	StallID      uint            `gorm:"not null;index"`
	Items        string          `gorm:"type:jsonb;not null"`
	ReturnAmount decimal.Decimal `gorm:"type:numeric;not null"`
	Reason       string
	ReturnNumber string `gorm:"not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null"`
}

type BillingDAO struct {
	db *gorm.DB
}

func NewBillingDAO(db *gorm.DB) *BillingDAO {
	return &BillingDAO{
		db: db,
	}
}

func (d *BillingDAO) Insert(ctx context.Context, bill Bill) (Bill, error) {
	// Serial numbers run 1..N per stall. Assigned at insert from the
	// current max; concurrent billing desks may race, matching the
	// original last-write-wins behavior.
	var maxSerial int
	err := d.db.WithContext(ctx).
		Model(&Bill{}).
		Where("stall_id = ?", bill.StallID).
		Select("COALESCE(MAX(serial_number), 0)").
		Scan(&maxSerial).Error
	if err != nil {
		return Bill{}, err
	}
	bill.SerialNumber = maxSerial + 1

	result := d.db.WithContext(ctx).Create(&bill)
	if result.Error != nil {
		return Bill{}, result.Error
	}

	return bill, nil
}

func (d *BillingDAO) FindByID(ctx context.Context, id uint) (Bill, error) {
	var bill Bill

	result := d.db.WithContext(ctx).First(&bill, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Bill{}, ErrBillNotFound
		}

		return Bill{}, result.Error
	}

	return bill, nil
}

func (d *BillingDAO) FindAll(ctx context.Context) ([]Bill, error) {
	var bills []Bill

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&bills)
	if result.Error != nil {
		return nil, result.Error
	}

	return bills, nil
}

func (d *BillingDAO) FindByStallID(ctx context.Context, stallID uint) ([]Bill, error) {
	var bills []Bill

	result := d.db.WithContext(ctx).
		Where("stall_id = ?", stallID).
		Order("created_at DESC").
		Find(&bills)
	if result.Error != nil {
		return nil, result.Error
	}

	return bills, nil
}

func (d *BillingDAO) Update(ctx context.Context, bill Bill) (Bill, error) {
	result := d.db.WithContext(ctx).Save(&bill)
	if result.Error != nil {
		return Bill{}, result.Error
	}

	return bill, nil
}

func (d *BillingDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&Bill{}, id).Error
}

func (d *BillingDAO) DeleteByStallID(ctx context.Context, stallID uint) error {
	return d.db.WithContext(ctx).Where("stall_id = ?", stallID).Delete(&Bill{}).Error
}

func (d *BillingDAO) InsertSalesReturn(ctx context.Context, ret SalesReturn) (SalesReturn, error) {
	result := d.db.WithContext(ctx).Create(&ret)
	if result.Error != nil {
		return SalesReturn{}, result.Error
	}

	return ret, nil
}

func (d *BillingDAO) FindSalesReturns(ctx context.Context) ([]SalesReturn, error) {
	var returns []SalesReturn

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&returns)
	if result.Error != nil {
		return nil, result.Error
	}

	return returns, nil
}

func (d *BillingDAO) FindSalesReturnsByBillID(ctx context.Context, billID uint) ([]SalesReturn, error) {
	var returns []SalesReturn

	result := d.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("created_at DESC").
		Find(&returns)
	if result.Error != nil {
		return nil, result.Error
	}

	return returns, nil
}

func (d *BillingDAO) DeleteSalesReturnsByBillID(ctx context.Context, billID uint) error {
	return d.db.WithContext(ctx).Where("bill_id = ?", billID).Delete(&SalesReturn{}).Error
}

func (d *BillingDAO) DeleteSalesReturnsByStallID(ctx context.Context, stallID uint) error {
	return d.db.WithContext(ctx).Where("stall_id = ?", stallID).Delete(&SalesReturn{}).Error
}
