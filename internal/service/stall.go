package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/ledger"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var ErrProductNotFound = repository.ErrProductNotFound

type StallRepository interface {
	Create(ctx context.Context, stall domain.Stall) (domain.Stall, error)
	FindByID(ctx context.Context, id uint) (domain.Stall, error)
	FindAll(ctx context.Context) ([]domain.Stall, error)
	Update(ctx context.Context, stall domain.Stall) (domain.Stall, error)
	Delete(ctx context.Context, id uint) error
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	FindProductByID(ctx context.Context, id uint) (domain.Product, error)
	FindProductsByStallID(ctx context.Context, stallID uint) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	DeleteProductsByStallID(ctx context.Context, stallID uint) error
}

type StallBillingRepository interface {
	DeleteByStallID(ctx context.Context, stallID uint) error
	DeleteSalesReturnsByStallID(ctx context.Context, stallID uint) error
}

type StallAccountsRepository interface {
	DeletePaymentsByStallID(ctx context.Context, stallID uint) error
}

type StallService struct {
	repo         StallRepository
	billingRepo  StallBillingRepository
	accountsRepo StallAccountsRepository
}

func NewStallService(repo StallRepository, billingRepo StallBillingRepository, accountsRepo StallAccountsRepository) *StallService {
	return &StallService{
		repo:         repo,
		billingRepo:  billingRepo,
		accountsRepo: accountsRepo,
	}
}

// Register creates an unverified stall. Billing stays locked until an
// admin verifies it.
func (s *StallService) Register(ctx context.Context, stall domain.Stall) (domain.Stall, error) {
	stall.Verified = false

	created, err := s.repo.Create(ctx, stall)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StallService) FindByID(ctx context.Context, id uint) (domain.Stall, error) {
	stall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return stall, nil
}

func (s *StallService) FindAll(ctx context.Context) ([]domain.Stall, error) {
	stalls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stalls, nil
}

// Verify is one-way. A verified stall never goes back to unverified.
func (s *StallService) Verify(ctx context.Context, id uint) (domain.Stall, error) {
	stall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if stall.Verified {
		return stall, nil
	}

	stall.Verified = true
	updated, err := s.repo.Update(ctx, stall)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *StallService) Update(ctx context.Context, stall domain.Stall) (domain.Stall, error) {
	existing, err := s.repo.FindByID(ctx, stall.ID)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	existing.CounterName = stall.CounterName
	existing.ParticipantName = stall.ParticipantName
	existing.Mobile = stall.Mobile
	existing.RegistrationFee = stall.RegistrationFee

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Delete removes the stall and everything hanging off it: products,
// payments, sales returns, then bills. The deletes run sequentially
// without a wrapping transaction, so a failure part-way leaves the
// earlier deletes in place.
func (s *StallService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.DeleteProductsByStallID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteProductsByStallID -> %w", err)
	}

	if err := s.accountsRepo.DeletePaymentsByStallID(ctx, id); err != nil {
		return fmt.Errorf("s.accountsRepo.DeletePaymentsByStallID -> %w", err)
	}

	if err := s.billingRepo.DeleteSalesReturnsByStallID(ctx, id); err != nil {
		return fmt.Errorf("s.billingRepo.DeleteSalesReturnsByStallID -> %w", err)
	}

	if err := s.billingRepo.DeleteByStallID(ctx, id); err != nil {
		return fmt.Errorf("s.billingRepo.DeleteByStallID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// SuggestedSellingPrice marks cost up by the event margin and rounds up
// to the next rupee.
func SuggestedSellingPrice(costPrice decimal.Decimal) decimal.Decimal {
	markup := decimal.NewFromInt(100).Add(ledger.EventMargin).Div(decimal.NewFromInt(100))
	return costPrice.Mul(markup).Ceil()
}

func (s *StallService) AddProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if _, err := s.repo.FindByID(ctx, product.StallID); err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if product.SellingPrice.IsZero() {
		product.SellingPrice = SuggestedSellingPrice(product.CostPrice)
	}
	if product.CommissionRate.IsZero() {
		product.CommissionRate = ledger.EventMargin
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.CreateProduct -> %w", err)
	}

	return created, nil
}

func (s *StallService) FindProducts(ctx context.Context, stallID uint) ([]domain.Product, error) {
	products, err := s.repo.FindProductsByStallID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindProductsByStallID -> %w", err)
	}

	return products, nil
}

func (s *StallService) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	existing, err := s.repo.FindProductByID(ctx, product.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindProductByID -> %w", err)
	}

	existing.Name = product.Name
	existing.CostPrice = product.CostPrice
	existing.SellingPrice = product.SellingPrice
	if !product.CommissionRate.IsZero() {
		existing.CommissionRate = product.CommissionRate
	}

	updated, err := s.repo.UpdateProduct(ctx, existing)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.UpdateProduct -> %w", err)
	}

	return updated, nil
}

func (s *StallService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.repo.FindProductByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindProductByID -> %w", err)
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteProduct -> %w", err)
	}

	return nil
}
