package repository

import (
	"context"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type AccountsDAO interface {
	InsertPayment(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindPayments(ctx context.Context) ([]dao.Payment, error)
	FindPaymentsByStallID(ctx context.Context, stallID uint) ([]dao.Payment, error)
	DeletePaymentsByStallID(ctx context.Context, stallID uint) error
	InsertRegistration(ctx context.Context, reg dao.Registration) (dao.Registration, error)
	FindRegistrations(ctx context.Context) ([]dao.Registration, error)
}

type AccountsRepository struct {
	dao AccountsDAO
}

func NewAccountsRepository(dao AccountsDAO) *AccountsRepository {
	return &AccountsRepository{
		dao: dao,
	}
}

func (r *AccountsRepository) paymentDomainToDao(p domain.Payment) dao.Payment {
	return dao.Payment{
		ID:             p.ID,
		PaymentType:    string(p.Type),
		StallID:        p.StallID,
		TotalBilled:    p.TotalBilled,
		MarginDeducted: p.MarginDeducted,
		AmountPaid:     p.AmountPaid,
		Narration:      p.Narration,
		CreatedAt:      p.CreatedAt,
	}
}

func (r *AccountsRepository) paymentDaoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:             p.ID,
		Type:           domain.PaymentType(p.PaymentType),
		StallID:        p.StallID,
		TotalBilled:    p.TotalBilled,
		MarginDeducted: p.MarginDeducted,
		AmountPaid:     p.AmountPaid,
		Narration:      p.Narration,
		CreatedAt:      p.CreatedAt,
	}
}

func (r *AccountsRepository) paymentsDaoToDomain(found []dao.Payment) []domain.Payment {
	payments := make([]domain.Payment, len(found))
	for i, p := range found {
		payments[i] = r.paymentDaoToDomain(p)
	}

	return payments
}

func (r *AccountsRepository) registrationDaoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:            reg.ID,
		Type:          domain.RegistrationType(reg.Type),
		Name:          reg.Name,
		Category:      reg.Category,
		Mobile:        reg.Mobile,
		Amount:        reg.Amount,
		ReceiptNumber: reg.ReceiptNumber,
		CreatedAt:     reg.CreatedAt,
	}
}

func (r *AccountsRepository) CreatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.InsertPayment(ctx, r.paymentDomainToDao(payment))
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.InsertPayment -> %w", err)
	}

	return r.paymentDaoToDomain(created), nil
}

func (r *AccountsRepository) FindPayments(ctx context.Context) ([]domain.Payment, error) {
	found, err := r.dao.FindPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPayments -> %w", err)
	}

	return r.paymentsDaoToDomain(found), nil
}

func (r *AccountsRepository) FindPaymentsByStallID(ctx context.Context, stallID uint) ([]domain.Payment, error) {
	found, err := r.dao.FindPaymentsByStallID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPaymentsByStallID -> %w", err)
	}

	return r.paymentsDaoToDomain(found), nil
}

func (r *AccountsRepository) DeletePaymentsByStallID(ctx context.Context, stallID uint) error {
	if err := r.dao.DeletePaymentsByStallID(ctx, stallID); err != nil {
		return fmt.Errorf("r.dao.DeletePaymentsByStallID -> %w", err)
	}

	return nil
}

func (r *AccountsRepository) CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	created, err := r.dao.InsertRegistration(ctx, dao.Registration{
		Type:          string(reg.Type),
		Name:          reg.Name,
		Category:      reg.Category,
		Mobile:        reg.Mobile,
		Amount:        reg.Amount,
		ReceiptNumber: reg.ReceiptNumber,
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.InsertRegistration -> %w", err)
	}

	return r.registrationDaoToDomain(created), nil
}

func (r *AccountsRepository) FindRegistrations(ctx context.Context) ([]domain.Registration, error) {
	found, err := r.dao.FindRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRegistrations -> %w", err)
	}

	regs := make([]domain.Registration, len(found))
	for i, reg := range found {
		regs[i] = r.registrationDaoToDomain(reg)
	}

	return regs, nil
}
