package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/ledger"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

type stubBillingService struct {
	bills map[uint]domain.Bill
}

func (s *stubBillingService) CreateBill(_ context.Context, bill domain.Bill) (domain.Bill, error) {
	return bill, nil
}

func (s *stubBillingService) FindBill(_ context.Context, id uint) (domain.Bill, error) {
	bill, ok := s.bills[id]
	if !ok {
		return domain.Bill{}, repository.ErrBillNotFound
	}

	return bill, nil
}

func (s *stubBillingService) FindBills(_ context.Context) ([]domain.Bill, error) {
	return nil, nil
}

func (s *stubBillingService) FindBillsByStall(_ context.Context, _ uint) ([]domain.Bill, error) {
	return nil, nil
}

func (s *stubBillingService) MarkBillPaid(_ context.Context, id uint) (domain.Bill, error) {
	bill, ok := s.bills[id]
	if !ok {
		return domain.Bill{}, repository.ErrBillNotFound
	}

	bill.MarkPaid()
	s.bills[id] = bill

	return bill, nil
}

func (s *stubBillingService) MarkBillDelivered(_ context.Context, id uint) (domain.Bill, error) {
	return s.bills[id], nil
}

func (s *stubBillingService) UpdateBill(_ context.Context, id uint, _, _ string, _ decimal.Decimal) (domain.Bill, error) {
	return s.bills[id], nil
}

func (s *stubBillingService) DeleteBill(_ context.Context, _ uint) error {
	return nil
}

func (s *stubBillingService) CreateSalesReturn(_ context.Context, ret domain.SalesReturn) (domain.SalesReturn, error) {
	return ret, nil
}

func (s *stubBillingService) FindSalesReturns(_ context.Context) ([]domain.SalesReturn, error) {
	return nil, nil
}

func (s *stubBillingService) StallSalesSummary(_ context.Context, _ uint) (ledger.SalesSummary, error) {
	return ledger.SalesSummary{}, nil
}

func TestHandleAdminMarkBillPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubBillingService{bills: map[uint]domain.Bill{
		7: {ID: 7, StallID: 3, Status: domain.BillPending, DeliveryStatus: domain.DeliveryPending},
	}}
	handler := NewBillingHandler(svc)

	router := gin.New()
	router.POST("/bills/:billID/pay", handler.HandleAdminMarkBillPaid)

	t.Run("marks any stall's bill without a stall session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bills/7/pay", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.BillPaid, svc.bills[7].Status)
	})

	t.Run("unknown bill", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bills/99/pay", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad bill ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bills/abc/pay", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
