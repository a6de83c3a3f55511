package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samrambhakamela/mela-api/internal/api/handler/v1/request"
	"github.com/samrambhakamela/mela-api/internal/api/handler/v1/response"
	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/service"
)

type FoodService interface {
	CreateOption(ctx context.Context, option domain.FoodOption) (domain.FoodOption, error)
	FindOptions(ctx context.Context, activeOnly bool) ([]domain.FoodOption, error)
	UpdateOption(ctx context.Context, option domain.FoodOption) (domain.FoodOption, error)
	DeleteOption(ctx context.Context, id uint) error
	Book(ctx context.Context, panchayathID uint, name, mobile string, selections []service.BookingSelection) ([]domain.FoodCouponBooking, error)
	FindBookings(ctx context.Context) ([]domain.FoodCouponBooking, error)
	FindBookingsByPanchayath(ctx context.Context, panchayathID uint) ([]domain.FoodCouponBooking, error)
}

type FoodHandler struct {
	svc FoodService
}

func NewFoodHandler(svc FoodService) *FoodHandler {
	return &FoodHandler{
		svc: svc,
	}
}

// HandleCreateFoodOption godoc
// @Summary      Create a food option
// @Tags         food
// @Produce      json
// @Param        request   body      request.FoodOptionRequest true "request body"
// @Success      201      {object}   domain.FoodOption
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /food/options [post]
func (h *FoodHandler) HandleCreateFoodOption(ctx *gin.Context) {
	req := request.FoodOptionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	option, err := h.svc.CreateOption(ctx.Request.Context(), domain.FoodOption{
		Name:         req.Name,
		Price:        req.Price,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateFoodOption -> h.svc.CreateOption -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, option)
}

// HandleGetFoodOptions godoc
// @Summary      List food options
// @Tags         food
// @Produce      json
// @Param        active  query     bool  false  "only active options"
// @Success      200      {object}   []domain.FoodOption
// @Failure      500      {object}   response.Err
// @Router       /food/options [get]
func (h *FoodHandler) HandleGetFoodOptions(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"

	options, err := h.svc.FindOptions(ctx.Request.Context(), activeOnly)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetFoodOptions -> h.svc.FindOptions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, options)
}

// HandleGetActiveFoodOptions godoc
// @Summary      List active food options for the public booking form
// @Tags         food
// @Produce      json
// @Success      200      {object}   []domain.FoodOption
// @Failure      500      {object}   response.Err
// @Router       /food/options/active [get]
func (h *FoodHandler) HandleGetActiveFoodOptions(ctx *gin.Context) {
	options, err := h.svc.FindOptions(ctx.Request.Context(), true)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetActiveFoodOptions -> h.svc.FindOptions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, options)
}

// HandleUpdateFoodOption godoc
// @Summary      Update a food option
// @Tags         food
// @Produce      json
// @Param        optionID  path      int  true  "Food option ID"
// @Param        request   body      request.FoodOptionRequest true "request body"
// @Success      200      {object}   domain.FoodOption
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /food/options/{optionID} [put]
func (h *FoodHandler) HandleUpdateFoodOption(ctx *gin.Context) {
	optionID, err := strconv.ParseUint(ctx.Param("optionID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.FoodOptionRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	option, err := h.svc.UpdateOption(ctx.Request.Context(), domain.FoodOption{
		ID:           uint(optionID),
		Name:         req.Name,
		Price:        req.Price,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrFoodOptionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrFoodOptionNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateFoodOption -> h.svc.UpdateOption -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, option)
}

// HandleDeleteFoodOption godoc
// @Summary      Delete a food option
// @Tags         food
// @Produce      json
// @Param        optionID  path      int  true  "Food option ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /food/options/{optionID} [delete]
func (h *FoodHandler) HandleDeleteFoodOption(ctx *gin.Context) {
	optionID, err := strconv.ParseUint(ctx.Param("optionID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteOption(ctx.Request.Context(), uint(optionID)); err != nil {
		if errors.Is(err, service.ErrFoodOptionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrFoodOptionNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteFoodOption -> h.svc.DeleteOption -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateBooking godoc
// @Summary      Book food coupons
// @Tags         food
// @Produce      json
// @Param        request   body      request.CreateBookingRequest true "request body"
// @Success      201      {object}   []domain.FoodCouponBooking
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /food/bookings [post]
func (h *FoodHandler) HandleCreateBooking(ctx *gin.Context) {
	req := request.CreateBookingRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	selections := make([]service.BookingSelection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		selections = append(selections, service.BookingSelection{
			FoodOptionID: sel.FoodOptionID,
			Quantity:     sel.Quantity,
		})
	}

	bookings, err := h.svc.Book(ctx.Request.Context(), req.PanchayathID, req.Name, req.Mobile, selections)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBooking) || errors.Is(err, service.ErrFoodOptionInactive) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrPanchayathNotFound) || errors.Is(err, service.ErrFoodOptionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateBooking -> h.svc.Book -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, bookings)
}

// HandleGetBookings godoc
// @Summary      List food coupon bookings
// @Tags         food
// @Produce      json
// @Param        panchayathID  query  int  false  "filter by panchayath"
// @Success      200      {object}   []domain.FoodCouponBooking
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /food/bookings [get]
func (h *FoodHandler) HandleGetBookings(ctx *gin.Context) {
	var (
		bookings []domain.FoodCouponBooking
		err      error
	)

	if raw := ctx.Query("panchayathID"); raw != "" {
		panchayathID, parseErr := strconv.ParseUint(raw, 10, 64)
		if parseErr != nil {
			response.RenderErr(ctx, response.ErrBadRequest(parseErr))

			return
		}

		bookings, err = h.svc.FindBookingsByPanchayath(ctx.Request.Context(), uint(panchayathID))
	} else {
		bookings, err = h.svc.FindBookings(ctx.Request.Context())
	}

	if err != nil {
		err = fmt.Errorf("v1.HandleGetBookings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, bookings)
}
