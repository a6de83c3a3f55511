package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/ledger"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var (
	ErrBillNotFound        = repository.ErrBillNotFound
	ErrSalesReturnNotFound = repository.ErrSalesReturnNotFound
	ErrStallNotVerified    = errors.New("stall is not verified")
	ErrEmptyBill           = errors.New("bill must have at least one item")
	ErrEmptyReturn         = errors.New("sales return must return at least one item")
	ErrReturnExceedsBilled = errors.New("returned quantity exceeds billed quantity")
	ErrItemNotOnBill       = errors.New("returned item is not on the bill")
)

type BillingRepository interface {
	Create(ctx context.Context, bill domain.Bill) (domain.Bill, error)
	FindByID(ctx context.Context, id uint) (domain.Bill, error)
	FindAll(ctx context.Context) ([]domain.Bill, error)
	FindByStallID(ctx context.Context, stallID uint) ([]domain.Bill, error)
	Update(ctx context.Context, bill domain.Bill) (domain.Bill, error)
	Delete(ctx context.Context, id uint) error
	CreateSalesReturn(ctx context.Context, ret domain.SalesReturn) (domain.SalesReturn, error)
	FindSalesReturns(ctx context.Context) ([]domain.SalesReturn, error)
	FindSalesReturnsByBillID(ctx context.Context, billID uint) ([]domain.SalesReturn, error)
	DeleteSalesReturnsByBillID(ctx context.Context, billID uint) error
}

type BillingStallRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Stall, error)
	FindProductsByStallID(ctx context.Context, stallID uint) ([]domain.Product, error)
}

type BillingPaymentsRepository interface {
	FindPaymentsByStallID(ctx context.Context, stallID uint) ([]domain.Payment, error)
}

type BillingService struct {
	repo         BillingRepository
	stallRepo    BillingStallRepository
	paymentsRepo BillingPaymentsRepository
}

func NewBillingService(repo BillingRepository, stallRepo BillingStallRepository, paymentsRepo BillingPaymentsRepository) *BillingService {
	return &BillingService{
		repo:         repo,
		stallRepo:    stallRepo,
		paymentsRepo: paymentsRepo,
	}
}

func newReceiptNumber() string {
	return "RCT-" + strings.ToUpper(uuid.NewString()[:8])
}

func newReturnNumber() string {
	return "SR-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateBill snapshots the items and opens the bill as pending and
// undelivered. Receipt and serial numbers are assigned here; items are
// immutable afterwards.
func (s *BillingService) CreateBill(ctx context.Context, bill domain.Bill) (domain.Bill, error) {
	stall, err := s.stallRepo.FindByID(ctx, bill.StallID)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.stallRepo.FindByID -> %w", err)
	}
	if !stall.Verified {
		return domain.Bill{}, ErrStallNotVerified
	}

	if len(bill.Items) == 0 {
		return domain.Bill{}, ErrEmptyBill
	}

	// The snapshot captures each product's commission rate as it stands
	// right now. Items not in the catalog get the event default.
	products, err := s.stallRepo.FindProductsByStallID(ctx, bill.StallID)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.stallRepo.FindProductsByStallID -> %w", err)
	}
	rates := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		rates[p.Name] = p.CommissionRate
	}

	var subtotal decimal.Decimal
	for i, item := range bill.Items {
		if item.EventMargin.IsZero() {
			if rate, ok := rates[item.Name]; ok && !rate.IsZero() {
				bill.Items[i].EventMargin = rate
			} else {
				bill.Items[i].EventMargin = ledger.EventMargin
			}
		}
		subtotal = subtotal.Add(item.Total())
	}

	bill.Subtotal = subtotal
	bill.Total = subtotal
	bill.Status = domain.BillPending
	bill.DeliveryStatus = domain.DeliveryPending
	bill.ReceiptNumber = newReceiptNumber()

	created, err := s.repo.Create(ctx, bill)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *BillingService) FindBill(ctx context.Context, id uint) (domain.Bill, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return bill, nil
}

func (s *BillingService) FindBills(ctx context.Context) ([]domain.Bill, error) {
	bills, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return bills, nil
}

func (s *BillingService) FindBillsByStall(ctx context.Context, stallID uint) ([]domain.Bill, error) {
	bills, err := s.repo.FindByStallID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStallID -> %w", err)
	}

	return bills, nil
}

func (s *BillingService) MarkBillPaid(ctx context.Context, id uint) (domain.Bill, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	bill.MarkPaid()
	updated, err := s.repo.Update(ctx, bill)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *BillingService) MarkBillDelivered(ctx context.Context, id uint) (domain.Bill, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	bill.MarkDelivered()
	updated, err := s.repo.Update(ctx, bill)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// UpdateBill edits customer details and the total only. The subtotal is
// set equal to the new total; the item snapshot never changes. Only
// verified stalls may edit.
func (s *BillingService) UpdateBill(ctx context.Context, id uint, customerName, customerMobile string, total decimal.Decimal) (domain.Bill, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	stall, err := s.stallRepo.FindByID(ctx, bill.StallID)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.stallRepo.FindByID -> %w", err)
	}
	if !stall.Verified {
		return domain.Bill{}, ErrStallNotVerified
	}

	bill.CustomerName = customerName
	bill.CustomerMobile = customerMobile
	bill.Total = total
	bill.Subtotal = total

	updated, err := s.repo.Update(ctx, bill)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteBill removes the bill and any sales returns filed against it.
func (s *BillingService) DeleteBill(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.DeleteSalesReturnsByBillID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteSalesReturnsByBillID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// CreateSalesReturn validates each returned quantity against what the
// bill actually carried, counting earlier returns against the cap.
func (s *BillingService) CreateSalesReturn(ctx context.Context, ret domain.SalesReturn) (domain.SalesReturn, error) {
	bill, err := s.repo.FindByID(ctx, ret.BillID)
	if err != nil {
		return domain.SalesReturn{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	billed := make(map[string]int)
	prices := make(map[string]decimal.Decimal)
	for _, item := range bill.Items {
		billed[item.Name] += item.Quantity
		prices[item.Name] = item.Price
	}

	previous, err := s.repo.FindSalesReturnsByBillID(ctx, ret.BillID)
	if err != nil {
		return domain.SalesReturn{}, fmt.Errorf("s.repo.FindSalesReturnsByBillID -> %w", err)
	}
	for _, p := range previous {
		for _, item := range p.Items {
			billed[item.Name] -= item.ReturnedQty
		}
	}

	totalQty := 0
	var amount decimal.Decimal
	for i, item := range ret.Items {
		remaining, ok := billed[item.Name]
		if !ok {
			return domain.SalesReturn{}, ErrItemNotOnBill
		}
		if item.ReturnedQty > remaining {
			return domain.SalesReturn{}, ErrReturnExceedsBilled
		}

		if item.Price.IsZero() {
			ret.Items[i].Price = prices[item.Name]
		}
		totalQty += item.ReturnedQty
		amount = amount.Add(ret.Items[i].Price.Mul(decimal.NewFromInt(int64(item.ReturnedQty))))
	}
	if totalQty <= 0 {
		return domain.SalesReturn{}, ErrEmptyReturn
	}

	ret.StallID = bill.StallID
	ret.ReturnAmount = amount
	ret.ReturnNumber = newReturnNumber()

	created, err := s.repo.CreateSalesReturn(ctx, ret)
	if err != nil {
		return domain.SalesReturn{}, fmt.Errorf("s.repo.CreateSalesReturn -> %w", err)
	}

	return created, nil
}

func (s *BillingService) FindSalesReturns(ctx context.Context) ([]domain.SalesReturn, error) {
	returns, err := s.repo.FindSalesReturns(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindSalesReturns -> %w", err)
	}

	return returns, nil
}

// StallSalesSummary is the per-stall drill-down: totals, paid/pending
// split, commission and the outstanding balance.
func (s *BillingService) StallSalesSummary(ctx context.Context, stallID uint) (ledger.SalesSummary, error) {
	if _, err := s.stallRepo.FindByID(ctx, stallID); err != nil {
		return ledger.SalesSummary{}, fmt.Errorf("s.stallRepo.FindByID -> %w", err)
	}

	bills, err := s.repo.FindByStallID(ctx, stallID)
	if err != nil {
		return ledger.SalesSummary{}, fmt.Errorf("s.repo.FindByStallID -> %w", err)
	}

	payments, err := s.paymentsRepo.FindPaymentsByStallID(ctx, stallID)
	if err != nil {
		return ledger.SalesSummary{}, fmt.Errorf("s.paymentsRepo.FindPaymentsByStallID -> %w", err)
	}

	return ledger.SummarizeStall(bills, payments), nil
}
