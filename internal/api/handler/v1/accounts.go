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
	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/ledger"
	"github.com/samrambhakamela/mela-api/internal/service"
)

type AccountsService interface {
	Summary(ctx context.Context) (ledger.Summary, error)
	CreateParticipantPayment(ctx context.Context, stallID uint, totalBilled decimal.Decimal) (domain.Payment, error)
	RecordRegistrationFeeReceived(ctx context.Context, stallID uint) (domain.Payment, error)
	RegistrationFeeStatuses(ctx context.Context) ([]service.RegistrationFeeStatus, error)
	CreateOtherPayment(ctx context.Context, narration string, amountPaid decimal.Decimal) (domain.Payment, error)
	FindPayments(ctx context.Context) ([]domain.Payment, error)
	CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	FindRegistrations(ctx context.Context) ([]domain.Registration, error)
}

type AccountsHandler struct {
	svc AccountsService
}

func NewAccountsHandler(svc AccountsService) *AccountsHandler {
	return &AccountsHandler{
		svc: svc,
	}
}

// HandleGetSummary godoc
// @Summary      Event-wide accounts summary
// @Tags         accounts
// @Produce      json
// @Success      200      {object}   ledger.Summary
// @Failure      500      {object}   response.Err
// @Router       /accounts/summary [get]
func (h *AccountsHandler) HandleGetSummary(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSummary -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleCreateParticipantPayment godoc
// @Summary      Record a payout to a stall
// @Tags         accounts
// @Produce      json
// @Param        request   body      request.ParticipantPaymentRequest true "request body"
// @Success      201      {object}   domain.Payment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accounts/payments/participant [post]
func (h *AccountsHandler) HandleCreateParticipantPayment(ctx *gin.Context) {
	req := request.ParticipantPaymentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	payment, err := h.svc.CreateParticipantPayment(ctx.Request.Context(), req.StallID, req.TotalBilled)
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleCreateParticipantPayment -> h.svc.CreateParticipantPayment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleRecordRegistrationFee godoc
// @Summary      Record a stall's registration fee as received
// @Tags         accounts
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Success      201      {object}   domain.Payment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accounts/stalls/{stallID}/registration-fee [post]
func (h *AccountsHandler) HandleRecordRegistrationFee(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	payment, err := h.svc.RecordRegistrationFeeReceived(ctx.Request.Context(), uint(stallID))
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}
		if errors.Is(err, service.ErrRegistrationFeeAlreadyPaid) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrRegistrationFeeAlreadyPaid))

			return
		}

		err = fmt.Errorf("v1.HandleRecordRegistrationFee -> h.svc.RecordRegistrationFeeReceived -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleGetRegistrationFees godoc
// @Summary      List stalls with their registration-fee status
// @Tags         accounts
// @Produce      json
// @Success      200      {object}   []service.RegistrationFeeStatus
// @Failure      500      {object}   response.Err
// @Router       /accounts/registration-fees [get]
func (h *AccountsHandler) HandleGetRegistrationFees(ctx *gin.Context) {
	statuses, err := h.svc.RegistrationFeeStatuses(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegistrationFees -> h.svc.RegistrationFeeStatuses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, statuses)
}

// HandleCreateOtherPayment godoc
// @Summary      Record an expense or other outgoing payment
// @Tags         accounts
// @Produce      json
// @Param        request   body      request.OtherPaymentRequest true "request body"
// @Success      201      {object}   domain.Payment
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accounts/payments/other [post]
func (h *AccountsHandler) HandleCreateOtherPayment(ctx *gin.Context) {
	req := request.OtherPaymentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	payment, err := h.svc.CreateOtherPayment(ctx.Request.Context(), req.Narration, req.AmountPaid)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateOtherPayment -> h.svc.CreateOtherPayment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleGetPayments godoc
// @Summary      List all payments
// @Tags         accounts
// @Produce      json
// @Success      200      {object}   []domain.Payment
// @Failure      500      {object}   response.Err
// @Router       /accounts/payments [get]
func (h *AccountsHandler) HandleGetPayments(ctx *gin.Context) {
	payments, err := h.svc.FindPayments(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPayments -> h.svc.FindPayments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// HandleCreateRegistration godoc
// @Summary      Record a paid registration
// @Tags         registrations
// @Produce      json
// @Param        request   body      request.CreateRegistrationRequest true "request body"
// @Success      201      {object}   domain.Registration
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /registrations [post]
func (h *AccountsHandler) HandleCreateRegistration(ctx *gin.Context) {
	req := request.CreateRegistrationRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reg, err := h.svc.CreateRegistration(ctx.Request.Context(), domain.Registration{
		Type:     domain.RegistrationType(req.Type),
		Name:     req.Name,
		Category: req.Category,
		Mobile:   req.Mobile,
		Amount:   req.Amount,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateRegistration -> h.svc.CreateRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

// HandleGetRegistrations godoc
// @Summary      List all registrations
// @Tags         registrations
// @Produce      json
// @Success      200      {object}   []domain.Registration
// @Failure      500      {object}   response.Err
// @Router       /registrations [get]
func (h *AccountsHandler) HandleGetRegistrations(ctx *gin.Context) {
	regs, err := h.svc.FindRegistrations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegistrations -> h.svc.FindRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, regs)
}
