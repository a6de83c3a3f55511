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

type EnquiryService interface {
	CreateField(ctx context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error)
	FindFields(ctx context.Context, activeOnly bool) ([]domain.StallEnquiryField, error)
	UpdateField(ctx context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error)
	DeleteField(ctx context.Context, id uint) error
	Submit(ctx context.Context, enquiry domain.StallEnquiry) (domain.StallEnquiry, error)
	FindAll(ctx context.Context) ([]domain.StallEnquiry, error)
	Verify(ctx context.Context, id uint) (domain.StallEnquiry, error)
}

type EnquiryHandler struct {
	svc EnquiryService
}

func NewEnquiryHandler(svc EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		svc: svc,
	}
}

// HandleCreateEnquiryField godoc
// @Summary      Create a stall enquiry form field
// @Tags         enquiries
// @Produce      json
// @Param        request   body      request.EnquiryFieldRequest true "request body"
// @Success      201      {object}   domain.StallEnquiryField
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /enquiry-fields [post]
func (h *EnquiryHandler) HandleCreateEnquiryField(ctx *gin.Context) {
	req := request.EnquiryFieldRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	field, err := h.svc.CreateField(ctx.Request.Context(), domain.StallEnquiryField{
		FieldLabel:        req.FieldLabel,
		FieldType:         req.FieldType,
		Options:           req.Options,
		IsRequired:        req.IsRequired,
		IsActive:          req.IsActive,
		DisplayOrder:      req.DisplayOrder,
		ShowConditionalOn: req.ShowConditionalOn,
		ConditionalValue:  req.ConditionalValue,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEnquiryField -> h.svc.CreateField -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, field)
}

// HandleGetEnquiryFields godoc
// @Summary      List enquiry form fields
// @Tags         enquiries
// @Produce      json
// @Param        active  query     bool  false  "only active fields"
// @Success      200      {object}   []domain.StallEnquiryField
// @Failure      500      {object}   response.Err
// @Router       /enquiry-fields [get]
func (h *EnquiryHandler) HandleGetEnquiryFields(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"

	fields, err := h.svc.FindFields(ctx.Request.Context(), activeOnly)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEnquiryFields -> h.svc.FindFields -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, fields)
}

// HandleUpdateEnquiryField godoc
// @Summary      Update an enquiry form field
// @Tags         enquiries
// @Produce      json
// @Param        fieldID  path      int  true  "Field ID"
// @Param        request   body      request.EnquiryFieldRequest true "request body"
// @Success      200      {object}   domain.StallEnquiryField
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /enquiry-fields/{fieldID} [put]
func (h *EnquiryHandler) HandleUpdateEnquiryField(ctx *gin.Context) {
	fieldID, err := strconv.ParseUint(ctx.Param("fieldID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.EnquiryFieldRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	field, err := h.svc.UpdateField(ctx.Request.Context(), domain.StallEnquiryField{
		ID:                uint(fieldID),
		FieldLabel:        req.FieldLabel,
		FieldType:         req.FieldType,
		Options:           req.Options,
		IsRequired:        req.IsRequired,
		IsActive:          req.IsActive,
		DisplayOrder:      req.DisplayOrder,
		ShowConditionalOn: req.ShowConditionalOn,
		ConditionalValue:  req.ConditionalValue,
	})
	if err != nil {
		if errors.Is(err, service.ErrEnquiryFieldNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEnquiryFieldNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEnquiryField -> h.svc.UpdateField -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, field)
}

// HandleDeleteEnquiryField godoc
// @Summary      Delete an enquiry form field
// @Tags         enquiries
// @Produce      json
// @Param        fieldID  path      int  true  "Field ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /enquiry-fields/{fieldID} [delete]
func (h *EnquiryHandler) HandleDeleteEnquiryField(ctx *gin.Context) {
	fieldID, err := strconv.ParseUint(ctx.Param("fieldID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteField(ctx.Request.Context(), uint(fieldID)); err != nil {
		if errors.Is(err, service.ErrEnquiryFieldNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEnquiryFieldNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEnquiryField -> h.svc.DeleteField -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSubmitEnquiry godoc
// @Summary      Submit a stall enquiry
// @Tags         enquiries
// @Produce      json
// @Param        request   body      request.SubmitEnquiryRequest true "request body"
// @Success      201      {object}   domain.StallEnquiry
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /enquiries [post]
func (h *EnquiryHandler) HandleSubmitEnquiry(ctx *gin.Context) {
	req := request.SubmitEnquiryRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	products := make([]domain.EnquiryProduct, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, domain.EnquiryProduct{
			ProductName:  p.ProductName,
			CostPrice:    p.CostPrice,
			SellingPrice: p.SellingPrice,
			SellingUnit:  p.SellingUnit,
			HasBrand:     p.HasBrand,
			BrandName:    p.BrandName,
		})
	}

	enquiry, err := h.svc.Submit(ctx.Request.Context(), domain.StallEnquiry{
		Name:         req.Name,
		Mobile:       req.Mobile,
		PanchayathID: req.PanchayathID,
		WardID:       req.WardID,
		Responses:    req.Responses,
		Products:     products,
	})
	if err != nil {
		if errors.Is(err, service.ErrEnquiryMobileExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrEnquiryMobileExists))

			return
		}
		if errors.Is(err, service.ErrMissingRequiredField) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMissingRequiredField))

			return
		}

		err = fmt.Errorf("v1.HandleSubmitEnquiry -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, enquiry)
}

// HandleGetEnquiries godoc
// @Summary      List all stall enquiries
// @Tags         enquiries
// @Produce      json
// @Success      200      {object}   []domain.StallEnquiry
// @Failure      500      {object}   response.Err
// @Router       /enquiries [get]
func (h *EnquiryHandler) HandleGetEnquiries(ctx *gin.Context) {
	enquiries, err := h.svc.FindAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEnquiries -> h.svc.FindAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, enquiries)
}

// HandleVerifyEnquiry godoc
// @Summary      Verify a stall enquiry
// @Tags         enquiries
// @Produce      json
// @Param        enquiryID  path      int  true  "Enquiry ID"
// @Success      200      {object}   domain.StallEnquiry
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /enquiries/{enquiryID}/verify [post]
func (h *EnquiryHandler) HandleVerifyEnquiry(ctx *gin.Context) {
	enquiryID, err := strconv.ParseUint(ctx.Param("enquiryID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	enquiry, err := h.svc.Verify(ctx.Request.Context(), uint(enquiryID))
	if err != nil {
		if errors.Is(err, service.ErrEnquiryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEnquiryNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleVerifyEnquiry -> h.svc.Verify -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, enquiry)
}
