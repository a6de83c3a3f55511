package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/samrambhakamela/mela-api/internal/api/handler/v1/request"
	"github.com/samrambhakamela/mela-api/internal/api/handler/v1/response"
	"github.com/samrambhakamela/mela-api/internal/api/middleware"
	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/ledger"
	"github.com/samrambhakamela/mela-api/internal/service"
)

type BillingService interface {
	CreateBill(ctx context.Context, bill domain.Bill) (domain.Bill, error)
	FindBill(ctx context.Context, id uint) (domain.Bill, error)
	FindBills(ctx context.Context) ([]domain.Bill, error)
	FindBillsByStall(ctx context.Context, stallID uint) ([]domain.Bill, error)
	MarkBillPaid(ctx context.Context, id uint) (domain.Bill, error)
	MarkBillDelivered(ctx context.Context, id uint) (domain.Bill, error)
	UpdateBill(ctx context.Context, id uint, customerName, customerMobile string, total decimal.Decimal) (domain.Bill, error)
	DeleteBill(ctx context.Context, id uint) error
	CreateSalesReturn(ctx context.Context, ret domain.SalesReturn) (domain.SalesReturn, error)
	FindSalesReturns(ctx context.Context) ([]domain.SalesReturn, error)
	StallSalesSummary(ctx context.Context, stallID uint) (ledger.SalesSummary, error)
}

type BillingHandler struct {
	svc BillingService
}

func NewBillingHandler(svc BillingService) *BillingHandler {
	return &BillingHandler{
		svc: svc,
	}
}

// sessionStallID pulls the authenticated stall out of the request
// context set by the stall JWT middleware.
func sessionStallID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.CtxKeyStallID)
	if !exists {
		return 0, false
	}

	stallID, ok := value.(uint)

	return stallID, ok
}

// ownBill loads the bill and rejects it when it belongs to a different
// stall. Stalls can only touch their own bills.
func (h *BillingHandler) ownBill(ctx *gin.Context) (domain.Bill, bool) {
	stallID, ok := sessionStallID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)

		return domain.Bill{}, false
	}

	billID, err := strconv.ParseUint(ctx.Param("billID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return domain.Bill{}, false
	}

	bill, err := h.svc.FindBill(ctx.Request.Context(), uint(billID))
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBillNotFound))

			return domain.Bill{}, false
		}

		err = fmt.Errorf("v1.ownBill -> h.svc.FindBill -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return domain.Bill{}, false
	}

	if bill.StallID != stallID {
		response.RenderErr(ctx, response.ErrNotFound(service.ErrBillNotFound))

		return domain.Bill{}, false
	}

	return bill, true
}

// HandleCreateBill godoc
// @Summary      Create a bill for the logged-in stall
// @Tags         billing
// @Produce      json
// @Param        request   body      request.CreateBillRequest true "request body"
// @Success      201      {object}   domain.Bill
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stall/bills [post]
func (h *BillingHandler) HandleCreateBill(ctx *gin.Context) {
	stallID, ok := sessionStallID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)

		return
	}

	req := request.CreateBillRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	items := make([]domain.BillItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.BillItem{
			Name:          item.Name,
			Quantity:      item.Quantity,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Discount:      item.Discount,
		})
	}

	bill, err := h.svc.CreateBill(ctx.Request.Context(), domain.Bill{
		StallID:        stallID,
		Items:          items,
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
	})
	if err != nil {
		if errors.Is(err, service.ErrStallNotVerified) || errors.Is(err, service.ErrEmptyBill) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleCreateBill -> h.svc.CreateBill -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, bill)
}

// HandleGetOwnBills godoc
// @Summary      List the logged-in stall's bills
// @Tags         billing
// @Produce      json
// @Success      200      {object}   []domain.Bill
// @Failure      500      {object}   response.Err
// @Router       /stall/bills [get]
func (h *BillingHandler) HandleGetOwnBills(ctx *gin.Context) {
	stallID, ok := sessionStallID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)

		return
	}

	bills, err := h.svc.FindBillsByStall(ctx.Request.Context(), stallID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetOwnBills -> h.svc.FindBillsByStall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, bills)
}

// HandleMarkBillPaid godoc
// @Summary      Mark a bill as paid
// @Tags         billing
// @Produce      json
// @Param        billID  path      int  true  "Bill ID"
// @Success      200      {object}   domain.Bill
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stall/bills/{billID}/pay [post]
func (h *BillingHandler) HandleMarkBillPaid(ctx *gin.Context) {
	bill, ok := h.ownBill(ctx)
	if !ok {
		return
	}

	updated, err := h.svc.MarkBillPaid(ctx.Request.Context(), bill.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleMarkBillPaid -> h.svc.MarkBillPaid -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleMarkBillDelivered godoc
// @Summary      Mark a bill as delivered
// @Tags         billing
// @Produce      json
// @Param        billID  path      int  true  "Bill ID"
// @Success      200      {object}   domain.Bill
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stall/bills/{billID}/deliver [post]
func (h *BillingHandler) HandleMarkBillDelivered(ctx *gin.Context) {
	bill, ok := h.ownBill(ctx)
	if !ok {
		return
	}

	updated, err := h.svc.MarkBillDelivered(ctx.Request.Context(), bill.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleMarkBillDelivered -> h.svc.MarkBillDelivered -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleUpdateBill godoc
// @Summary      Update a bill's customer details and total
// @Tags         billing
// @Produce      json
// @Param        billID  path      int  true  "Bill ID"
// @Param        request   body      request.UpdateBillRequest true "request body"
// @Success      200      {object}   domain.Bill
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stall/bills/{billID} [put]
func (h *BillingHandler) HandleUpdateBill(ctx *gin.Context) {
	bill, ok := h.ownBill(ctx)
	if !ok {
		return
	}

	req := request.UpdateBillRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateBill(ctx.Request.Context(), bill.ID, req.CustomerName, req.CustomerMobile, req.Total)
	if err != nil {
		if errors.Is(err, service.ErrStallNotVerified) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateBill -> h.svc.UpdateBill -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteBill godoc
// @Summary      Delete a bill and its sales returns
// @Tags         billing
// @Produce      json
// @Param        billID  path      int  true  "Bill ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stall/bills/{billID} [delete]
func (h *BillingHandler) HandleDeleteBill(ctx *gin.Context) {
	bill, ok := h.ownBill(ctx)
	if !ok {
		return
	}

	if err := h.svc.DeleteBill(ctx.Request.Context(), bill.ID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteBill -> h.svc.DeleteBill -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateSalesReturn godoc
// @Summary      File a sales return against a bill
// @Tags         billing
// @Produce      json
// @Param        billID  path      int  true  "Bill ID"
// @Param        request   body      request.CreateSalesReturnRequest true "request body"
// @Success      201      {object}   domain.SalesReturn
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stall/bills/{billID}/returns [post]
func (h *BillingHandler) HandleCreateSalesReturn(ctx *gin.Context) {
	bill, ok := h.ownBill(ctx)
	if !ok {
		return
	}

	req := request.CreateSalesReturnRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	items := make([]domain.SalesReturnItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.SalesReturnItem{
			Name:        item.Name,
			ReturnedQty: item.ReturnedQty,
			Price:       item.Price,
		})
	}

	ret, err := h.svc.CreateSalesReturn(ctx.Request.Context(), domain.SalesReturn{
		BillID: bill.ID,
		Items:  items,
		Reason: req.Reason,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotOnBill) ||
			errors.Is(err, service.ErrReturnExceedsBilled) ||
			errors.Is(err, service.ErrEmptyReturn) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateSalesReturn -> h.svc.CreateSalesReturn -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, ret)
}

// HandleGetOwnSummary godoc
// @Summary      Sales summary for the logged-in stall
// @Tags         billing
// @Produce      json
// @Success      200      {object}   ledger.SalesSummary
// @Failure      500      {object}   response.Err
// @Router       /stall/summary [get]
func (h *BillingHandler) HandleGetOwnSummary(ctx *gin.Context) {
	stallID, ok := sessionStallID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)

		return
	}

	summary, err := h.svc.StallSalesSummary(ctx.Request.Context(), stallID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetOwnSummary -> h.svc.StallSalesSummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleGetBills godoc
// @Summary      List all bills
// @Tags         billing
// @Produce      json
// @Success      200      {object}   []domain.Bill
// @Failure      500      {object}   response.Err
// @Router       /bills [get]
func (h *BillingHandler) HandleGetBills(ctx *gin.Context) {
	bills, err := h.svc.FindBills(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetBills -> h.svc.FindBills -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, bills)
}

// HandleAdminMarkBillPaid godoc
// @Summary      Mark any stall's bill as paid
// @Tags         billing
// @Produce      json
// @Param        billID  path      int  true  "Bill ID"
// @Success      200      {object}   domain.Bill
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /bills/{billID}/pay [post]
func (h *BillingHandler) HandleAdminMarkBillPaid(ctx *gin.Context) {
	billID, err := strconv.ParseUint(ctx.Param("billID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.MarkBillPaid(ctx.Request.Context(), uint(billID))
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBillNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleAdminMarkBillPaid -> h.svc.MarkBillPaid -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetStallBills godoc
// @Summary      List one stall's bills
// @Tags         billing
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Success      200      {object}   []domain.Bill
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls/{stallID}/bills [get]
func (h *BillingHandler) HandleGetStallBills(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	bills, err := h.svc.FindBillsByStall(ctx.Request.Context(), uint(stallID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStallBills -> h.svc.FindBillsByStall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, bills)
}

// HandleGetSalesReturns godoc
// @Summary      List all sales returns
// @Tags         billing
// @Produce      json
// @Success      200      {object}   []domain.SalesReturn
// @Failure      500      {object}   response.Err
// @Router       /sales-returns [get]
func (h *BillingHandler) HandleGetSalesReturns(ctx *gin.Context) {
	returns, err := h.svc.FindSalesReturns(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSalesReturns -> h.svc.FindSalesReturns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, returns)
}

// HandleGetStallSummary godoc
// @Summary      Sales summary for one stall
// @Tags         billing
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Success      200      {object}   ledger.SalesSummary
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls/{stallID}/summary [get]
func (h *BillingHandler) HandleGetStallSummary(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	summary, err := h.svc.StallSalesSummary(ctx.Request.Context(), uint(stallID))
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetStallSummary -> h.svc.StallSalesSummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, summary)
}
