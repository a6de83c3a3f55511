package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrambhakamela/mela-api/internal/domain"
)

type fakeAccountsRepo struct {
	payments []domain.Payment
	regs     []domain.Registration
}

func (f *fakeAccountsRepo) CreatePayment(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	payment.ID = uint(len(f.payments) + 1)
	f.payments = append(f.payments, payment)

	return payment, nil
}

func (f *fakeAccountsRepo) FindPayments(_ context.Context) ([]domain.Payment, error) {
	return f.payments, nil
}

func (f *fakeAccountsRepo) FindPaymentsByStallID(_ context.Context, stallID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	for _, p := range f.payments {
		if p.StallID != nil && *p.StallID == stallID {
			payments = append(payments, p)
		}
	}

	return payments, nil
}

func (f *fakeAccountsRepo) CreateRegistration(_ context.Context, reg domain.Registration) (domain.Registration, error) {
	reg.ID = uint(len(f.regs) + 1)
	f.regs = append(f.regs, reg)

	return reg, nil
}

func (f *fakeAccountsRepo) FindRegistrations(_ context.Context) ([]domain.Registration, error) {
	return f.regs, nil
}

type fakeAccountsBillingRepo struct {
	bills   []domain.Bill
	returns []domain.SalesReturn
}

func (f *fakeAccountsBillingRepo) FindAll(_ context.Context) ([]domain.Bill, error) {
	return f.bills, nil
}

func (f *fakeAccountsBillingRepo) FindSalesReturns(_ context.Context) ([]domain.SalesReturn, error) {
	return f.returns, nil
}

func newAccountsService() (*AccountsService, *fakeAccountsRepo) {
	repo := &fakeAccountsRepo{}
	stalls := &fakeStallRepo{stalls: map[uint]domain.Stall{
		1: {ID: 1, CounterName: "Dosa Corner", RegistrationFee: d(500), Verified: true},
	}}
	svc := NewAccountsService(repo, &fakeAccountsBillingRepo{}, stalls)

	return svc, repo
}

func TestCreateParticipantPayment(t *testing.T) {
	svc, _ := newAccountsService()

	payment, err := svc.CreateParticipantPayment(context.Background(), 1, d(1000))
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentParticipant, payment.Type)
	require.NotNil(t, payment.StallID)
	assert.Equal(t, uint(1), *payment.StallID)
	assert.True(t, payment.TotalBilled.Equal(d(1000)))
	assert.True(t, payment.MarginDeducted.Equal(d(200)), "deducted = %s", payment.MarginDeducted)
	assert.True(t, payment.AmountPaid.Equal(d(800)), "paid = %s", payment.AmountPaid)
}

func TestCreateParticipantPaymentUnknownStall(t *testing.T) {
	svc, _ := newAccountsService()

	_, err := svc.CreateParticipantPayment(context.Background(), 99, d(1000))

	assert.ErrorIs(t, err, ErrStallNotFound)
}

func TestRecordRegistrationFeeReceived(t *testing.T) {
	svc, repo := newAccountsService()

	payment, err := svc.RecordRegistrationFeeReceived(context.Background(), 1)
	require.NoError(t, err)

	// The fee payment carries no margin deduction.
	assert.True(t, payment.TotalBilled.Equal(d(500)))
	assert.True(t, payment.AmountPaid.Equal(d(500)))
	assert.True(t, payment.MarginDeducted.IsZero())
	assert.Equal(t, "Registration fee", payment.Narration)

	paid, err := svc.RegistrationFeePaid(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, paid)

	_, err = svc.RecordRegistrationFeeReceived(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRegistrationFeeAlreadyPaid)

	assert.Len(t, repo.payments, 1)
}

func TestRegistrationFeePaidIgnoresOtherPayments(t *testing.T) {
	svc, _ := newAccountsService()

	_, err := svc.CreateParticipantPayment(context.Background(), 1, d(1000))
	require.NoError(t, err)

	paid, err := svc.RegistrationFeePaid(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, paid)
}

func TestRegistrationFeeStatuses(t *testing.T) {
	svc, _ := newAccountsService()

	statuses, err := svc.RegistrationFeeStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, uint(1), statuses[0].StallID)
	assert.Equal(t, "Dosa Corner", statuses[0].CounterName)
	assert.True(t, statuses[0].RegistrationFee.Equal(d(500)))
	assert.False(t, statuses[0].FeePaid)

	// An ordinary payout does not flip the flag.
	_, err = svc.CreateParticipantPayment(context.Background(), 1, d(1000))
	require.NoError(t, err)

	statuses, err = svc.RegistrationFeeStatuses(context.Background())
	require.NoError(t, err)
	assert.False(t, statuses[0].FeePaid)

	_, err = svc.RecordRegistrationFeeReceived(context.Background(), 1)
	require.NoError(t, err)

	statuses, err = svc.RegistrationFeeStatuses(context.Background())
	require.NoError(t, err)
	assert.True(t, statuses[0].FeePaid)
}

func TestCreateOtherPayment(t *testing.T) {
	svc, _ := newAccountsService()

	payment, err := svc.CreateOtherPayment(context.Background(), "Sound system rental", d(2500))
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentOther, payment.Type)
	assert.Nil(t, payment.StallID)
	assert.True(t, payment.AmountPaid.Equal(d(2500)))
	assert.Equal(t, "Sound system rental", payment.Narration)
}

func TestCreateRegistrationAssignsReceipt(t *testing.T) {
	svc, _ := newAccountsService()

	reg, err := svc.CreateRegistration(context.Background(), domain.Registration{
		Type:   domain.RegistrationEmploymentBooking,
		Name:   "Suresh",
		Mobile: "9876543210",
		Amount: d(1500),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(reg.ReceiptNumber, "RCT-"), "receipt = %s", reg.ReceiptNumber)
}

func TestSummary(t *testing.T) {
	repo := &fakeAccountsRepo{}
	billing := &fakeAccountsBillingRepo{
		bills: []domain.Bill{
			{Total: d(1000), Status: domain.BillPaid},
			{Total: d(300), Status: domain.BillPending},
		},
		returns: []domain.SalesReturn{{ReturnAmount: d(100)}},
	}
	stalls := &fakeStallRepo{stalls: map[uint]domain.Stall{}}
	svc := NewAccountsService(repo, billing, stalls)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TotalCollected.Equal(d(1000)))
	assert.True(t, summary.NetCollected.Equal(d(900)), "net = %s", summary.NetCollected)
}
