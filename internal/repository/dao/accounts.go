package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type Payment struct {
	ID uint `gorm:"primaryKey"`

	PaymentType    string          `gorm:"not null"` // "participant" or "other"
	StallID        *uint           `gorm:"index"`
	TotalBilled    decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	MarginDeducted decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	AmountPaid     decimal.Decimal `gorm:"type:numeric;not null"`
	Narration      string

	CreatedAt time.Time `gorm:"not null"`
}

type Registration struct {
	ID uint `gorm:"primaryKey"`

	Type          string `gorm:"not null"`
	Name          string `gorm:"not null"`
	Category      string
	Mobile        string
	Amount        decimal.Decimal `gorm:"type:numeric;not null"`
	ReceiptNumber string          `gorm:"not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null"`
}

type AccountsDAO struct {
	db *gorm.DB
}

func NewAccountsDAO(db *gorm.DB) *AccountsDAO {
	return &AccountsDAO{
		db: db,
	}
}

func (d *AccountsDAO) InsertPayment(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *AccountsDAO) FindPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *AccountsDAO) FindPaymentsByStallID(ctx context.Context, stallID uint) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).
		Where("stall_id = ?", stallID).
		Order("created_at DESC").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *AccountsDAO) DeletePaymentsByStallID(ctx context.Context, stallID uint) error {
	return d.db.WithContext(ctx).Where("stall_id = ?", stallID).Delete(&Payment{}).Error
}

func (d *AccountsDAO) InsertRegistration(ctx context.Context, reg Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&reg)
	if result.Error != nil {
		return Registration{}, result.Error
	}

	return reg, nil
}

func (d *AccountsDAO) FindRegistrations(ctx context.Context) ([]Registration, error) {
	var regs []Registration

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&regs)
	if result.Error != nil {
		return nil, result.Error
	}

	return regs, nil
}
