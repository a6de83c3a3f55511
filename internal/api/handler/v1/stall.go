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

type StallService interface {
	Register(ctx context.Context, stall domain.Stall) (domain.Stall, error)
	FindByID(ctx context.Context, id uint) (domain.Stall, error)
	FindAll(ctx context.Context) ([]domain.Stall, error)
	Verify(ctx context.Context, id uint) (domain.Stall, error)
	Update(ctx context.Context, stall domain.Stall) (domain.Stall, error)
	Delete(ctx context.Context, id uint) error
	AddProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	FindProducts(ctx context.Context, stallID uint) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type StallHandler struct {
	svc StallService
}

func NewStallHandler(svc StallService) *StallHandler {
	return &StallHandler{
		svc: svc,
	}
}

// HandleRegisterStall godoc
// @Summary      Register a new stall
// @Tags         stalls
// @Produce      json
// @Param        request   body      request.RegisterStallRequest true "request body"
// @Success      201      {object}   domain.Stall
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls [post]
func (h *StallHandler) HandleRegisterStall(ctx *gin.Context) {
	req := request.RegisterStallRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stall, err := h.svc.Register(ctx.Request.Context(), domain.Stall{
		CounterName:     req.CounterName,
		ParticipantName: req.ParticipantName,
		Mobile:          req.Mobile,
		RegistrationFee: req.RegistrationFee,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleRegisterStall -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, stall)
}

// HandleGetStalls godoc
// @Summary      List all stalls
// @Tags         stalls
// @Produce      json
// @Success      200      {object}   []domain.Stall
// @Failure      500      {object}   response.Err
// @Router       /stalls [get]
func (h *StallHandler) HandleGetStalls(ctx *gin.Context) {
	stalls, err := h.svc.FindAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStalls -> h.svc.FindAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stalls)
}

// HandleGetStall godoc
// @Summary      Get a stall by ID
// @Tags         stalls
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Success      200      {object}   domain.Stall
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls/{stallID} [get]
func (h *StallHandler) HandleGetStall(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stall, err := h.svc.FindByID(ctx.Request.Context(), uint(stallID))
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetStall -> h.svc.FindByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stall)
}

// HandleVerifyStall godoc
// @Summary      Verify a stall
// @Tags         stalls
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Success      200      {object}   domain.Stall
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls/{stallID}/verify [post]
func (h *StallHandler) HandleVerifyStall(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stall, err := h.svc.Verify(ctx.Request.Context(), uint(stallID))
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleVerifyStall -> h.svc.Verify -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stall)
}

// HandleUpdateStall godoc
// @Summary      Update a stall
// @Tags         stalls
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Param        request   body      request.UpdateStallRequest true "request body"
// @Success      200      {object}   domain.Stall
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls/{stallID} [put]
func (h *StallHandler) HandleUpdateStall(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateStallRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stall, err := h.svc.Update(ctx.Request.Context(), domain.Stall{
		ID:              uint(stallID),
		CounterName:     req.CounterName,
		ParticipantName: req.ParticipantName,
		Mobile:          req.Mobile,
		RegistrationFee: req.RegistrationFee,
	})
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateStall -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stall)
}

// HandleDeleteStall godoc
// @Summary      Delete a stall and all its billing data
// @Tags         stalls
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls/{stallID} [delete]
func (h *StallHandler) HandleDeleteStall(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), uint(stallID)); err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteStall -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAddProduct godoc
// @Summary      Add a product to a stall
// @Tags         stalls
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Param        request   body      request.CreateProductRequest true "request body"
// @Success      201      {object}   domain.Product
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls/{stallID}/products [post]
func (h *StallHandler) HandleAddProduct(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.CreateProductRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	product, err := h.svc.AddProduct(ctx.Request.Context(), domain.Product{
		StallID:        uint(stallID),
		Name:           req.Name,
		CostPrice:      req.CostPrice,
		SellingPrice:   req.SellingPrice,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStallNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleAddProduct -> h.svc.AddProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// HandleGetProducts godoc
// @Summary      List a stall's products
// @Tags         stalls
// @Produce      json
// @Param        stallID  path      int  true  "Stall ID"
// @Success      200      {object}   []domain.Product
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stalls/{stallID}/products [get]
func (h *StallHandler) HandleGetProducts(ctx *gin.Context) {
	stallID, err := strconv.ParseUint(ctx.Param("stallID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	products, err := h.svc.FindProducts(ctx.Request.Context(), uint(stallID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetProducts -> h.svc.FindProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleUpdateProduct godoc
// @Summary      Update a product
// @Tags         stalls
// @Produce      json
// @Param        productID  path      int  true  "Product ID"
// @Param        request   body      request.UpdateProductRequest true "request body"
// @Success      200      {object}   domain.Product
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products/{productID} [put]
func (h *StallHandler) HandleUpdateProduct(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("productID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateProductRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	product, err := h.svc.UpdateProduct(ctx.Request.Context(), domain.Product{
		ID:             uint(productID),
		Name:           req.Name,
		CostPrice:      req.CostPrice,
		SellingPrice:   req.SellingPrice,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrProductNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Tags         stalls
// @Produce      json
// @Param        productID  path      int  true  "Product ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products/{productID} [delete]
func (h *StallHandler) HandleDeleteProduct(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("productID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteProduct(ctx.Request.Context(), uint(productID)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrProductNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteProduct -> h.svc.DeleteProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
