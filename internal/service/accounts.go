package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/ledger"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var (
	ErrPaymentNotFound            = repository.ErrPaymentNotFound
	ErrRegistrationFeeAlreadyPaid = errors.New("registration fee already recorded for this stall")
)

// registrationFeeNarration marks the one participant payment per stall
// that records its registration fee as received.
const registrationFeeNarration = "Registration fee"

type AccountsRepository interface {
	CreatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindPayments(ctx context.Context) ([]domain.Payment, error)
	FindPaymentsByStallID(ctx context.Context, stallID uint) ([]domain.Payment, error)
	CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	FindRegistrations(ctx context.Context) ([]domain.Registration, error)
}

type AccountsBillingRepository interface {
	FindAll(ctx context.Context) ([]domain.Bill, error)
	FindSalesReturns(ctx context.Context) ([]domain.SalesReturn, error)
}

type AccountsStallRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Stall, error)
	FindAll(ctx context.Context) ([]domain.Stall, error)
}

type AccountsService struct {
	repo        AccountsRepository
	billingRepo AccountsBillingRepository
	stallRepo   AccountsStallRepository
}

func NewAccountsService(repo AccountsRepository, billingRepo AccountsBillingRepository, stallRepo AccountsStallRepository) *AccountsService {
	return &AccountsService{
		repo:        repo,
		billingRepo: billingRepo,
		stallRepo:   stallRepo,
	}
}

// Summary folds every bill, payment, registration and sales return into
// the accounts overview.
func (s *AccountsService) Summary(ctx context.Context) (ledger.Summary, error) {
	bills, err := s.billingRepo.FindAll(ctx)
	if err != nil {
		return ledger.Summary{}, fmt.Errorf("s.billingRepo.FindAll -> %w", err)
	}

	payments, err := s.repo.FindPayments(ctx)
	if err != nil {
		return ledger.Summary{}, fmt.Errorf("s.repo.FindPayments -> %w", err)
	}

	regs, err := s.repo.FindRegistrations(ctx)
	if err != nil {
		return ledger.Summary{}, fmt.Errorf("s.repo.FindRegistrations -> %w", err)
	}

	returns, err := s.billingRepo.FindSalesReturns(ctx)
	if err != nil {
		return ledger.Summary{}, fmt.Errorf("s.billingRepo.FindSalesReturns -> %w", err)
	}

	return ledger.Summarize(bills, payments, regs, returns), nil
}

// CreateParticipantPayment records a manual payout to a stall. The fixed
// event margin is deducted from the billed amount; the stall receives
// the remainder.
func (s *AccountsService) CreateParticipantPayment(ctx context.Context, stallID uint, totalBilled decimal.Decimal) (domain.Payment, error) {
	if _, err := s.stallRepo.FindByID(ctx, stallID); err != nil {
		return domain.Payment{}, fmt.Errorf("s.stallRepo.FindByID -> %w", err)
	}

	deduction, payable := ledger.MarginDeduction(totalBilled)

	created, err := s.repo.CreatePayment(ctx, domain.Payment{
		Type:           domain.PaymentParticipant,
		StallID:        &stallID,
		TotalBilled:    totalBilled,
		MarginDeducted: deduction,
		AmountPaid:     payable,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.CreatePayment -> %w", err)
	}

	return created, nil
}

// RecordRegistrationFeeReceived marks a stall's registration fee as
// collected: one participant payment with amount_paid = total_billed =
// fee and no margin. At most one such payment per stall.
func (s *AccountsService) RecordRegistrationFeeReceived(ctx context.Context, stallID uint) (domain.Payment, error) {
	stall, err := s.stallRepo.FindByID(ctx, stallID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.stallRepo.FindByID -> %w", err)
	}

	paid, err := s.RegistrationFeePaid(ctx, stallID)
	if err != nil {
		return domain.Payment{}, err
	}
	if paid {
		return domain.Payment{}, ErrRegistrationFeeAlreadyPaid
	}

	created, err := s.repo.CreatePayment(ctx, domain.Payment{
		Type:        domain.PaymentParticipant,
		StallID:     &stallID,
		TotalBilled: stall.RegistrationFee,
		AmountPaid:  stall.RegistrationFee,
		Narration:   registrationFeeNarration,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.CreatePayment -> %w", err)
	}

	return created, nil
}

// RegistrationFeePaid reports whether the stall's fee payment exists.
func (s *AccountsService) RegistrationFeePaid(ctx context.Context, stallID uint) (bool, error) {
	payments, err := s.repo.FindPaymentsByStallID(ctx, stallID)
	if err != nil {
		return false, fmt.Errorf("s.repo.FindPaymentsByStallID -> %w", err)
	}

	for _, p := range payments {
		if p.Type == domain.PaymentParticipant && p.Narration == registrationFeeNarration {
			return true, nil
		}
	}

	return false, nil
}

// RegistrationFeeStatus is one row of the paid-registrations view: the
// stall plus whether its fee payment has been recorded.
type RegistrationFeeStatus struct {
	StallID         uint            `json:"stall_id"`
	CounterName     string          `json:"counter_name"`
	ParticipantName string          `json:"participant_name"`
	RegistrationFee decimal.Decimal `json:"registration_fee"`
	FeePaid         bool            `json:"fee_paid"`
}

// RegistrationFeeStatuses lists every stall with its fee-paid flag,
// derived from the marker payments.
func (s *AccountsService) RegistrationFeeStatuses(ctx context.Context) ([]RegistrationFeeStatus, error) {
	stalls, err := s.stallRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.stallRepo.FindAll -> %w", err)
	}

	payments, err := s.repo.FindPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPayments -> %w", err)
	}

	paid := make(map[uint]bool)
	for _, p := range payments {
		if p.Type == domain.PaymentParticipant && p.Narration == registrationFeeNarration && p.StallID != nil {
			paid[*p.StallID] = true
		}
	}

	statuses := make([]RegistrationFeeStatus, 0, len(stalls))
	for _, stall := range stalls {
		statuses = append(statuses, RegistrationFeeStatus{
			StallID:         stall.ID,
			CounterName:     stall.CounterName,
			ParticipantName: stall.ParticipantName,
			RegistrationFee: stall.RegistrationFee,
			FeePaid:         paid[stall.ID],
		})
	}

	return statuses, nil
}

func (s *AccountsService) CreateOtherPayment(ctx context.Context, narration string, amountPaid decimal.Decimal) (domain.Payment, error) {
	created, err := s.repo.CreatePayment(ctx, domain.Payment{
		Type:       domain.PaymentOther,
		AmountPaid: amountPaid,
		Narration:  narration,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.CreatePayment -> %w", err)
	}

	return created, nil
}

func (s *AccountsService) FindPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.FindPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPayments -> %w", err)
	}

	return payments, nil
}

func (s *AccountsService) CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	reg.ReceiptNumber = newReceiptNumber()

	created, err := s.repo.CreateRegistration(ctx, reg)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.CreateRegistration -> %w", err)
	}

	return created, nil
}

func (s *AccountsService) FindRegistrations(ctx context.Context) ([]domain.Registration, error) {
	regs, err := s.repo.FindRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRegistrations -> %w", err)
	}

	return regs, nil
}
