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

type SurveyService interface {
	CreatePanchayath(ctx context.Context, name string, wardCount int) (domain.Panchayath, error)
	FindPanchayaths(ctx context.Context) ([]domain.Panchayath, error)
	DeletePanchayath(ctx context.Context, id uint) error
	FindWards(ctx context.Context, panchayathID uint) ([]domain.Ward, error)
	RenameWard(ctx context.Context, id uint, name string) (domain.Ward, error)
}

type SurveyHandler struct {
	svc SurveyService
}

func NewSurveyHandler(svc SurveyService) *SurveyHandler {
	return &SurveyHandler{
		svc: svc,
	}
}

// HandleCreatePanchayath godoc
// @Summary      Create a panchayath with its ward batch
// @Tags         survey
// @Produce      json
// @Param        request   body      request.CreatePanchayathRequest true "request body"
// @Success      201      {object}   domain.Panchayath
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /panchayaths [post]
func (h *SurveyHandler) HandleCreatePanchayath(ctx *gin.Context) {
	req := request.CreatePanchayathRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	panchayath, err := h.svc.CreatePanchayath(ctx.Request.Context(), req.Name, req.WardCount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWardCount) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreatePanchayath -> h.svc.CreatePanchayath -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, panchayath)
}

// HandleGetPanchayaths godoc
// @Summary      List all panchayaths
// @Tags         survey
// @Produce      json
// @Success      200      {object}   []domain.Panchayath
// @Failure      500      {object}   response.Err
// @Router       /panchayaths [get]
func (h *SurveyHandler) HandleGetPanchayaths(ctx *gin.Context) {
	panchayaths, err := h.svc.FindPanchayaths(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPanchayaths -> h.svc.FindPanchayaths -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, panchayaths)
}

// HandleDeletePanchayath godoc
// @Summary      Delete a panchayath and its wards
// @Tags         survey
// @Produce      json
// @Param        panchayathID  path      int  true  "Panchayath ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /panchayaths/{panchayathID} [delete]
func (h *SurveyHandler) HandleDeletePanchayath(ctx *gin.Context) {
	panchayathID, err := strconv.ParseUint(ctx.Param("panchayathID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeletePanchayath(ctx.Request.Context(), uint(panchayathID)); err != nil {
		if errors.Is(err, service.ErrPanchayathNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPanchayathNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePanchayath -> h.svc.DeletePanchayath -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetWards godoc
// @Summary      List a panchayath's wards
// @Tags         survey
// @Produce      json
// @Param        panchayathID  path      int  true  "Panchayath ID"
// @Success      200      {object}   []domain.Ward
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /panchayaths/{panchayathID}/wards [get]
func (h *SurveyHandler) HandleGetWards(ctx *gin.Context) {
	panchayathID, err := strconv.ParseUint(ctx.Param("panchayathID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	wards, err := h.svc.FindWards(ctx.Request.Context(), uint(panchayathID))
	if err != nil {
		if errors.Is(err, service.ErrPanchayathNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPanchayathNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetWards -> h.svc.FindWards -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, wards)
}

// HandleRenameWard godoc
// @Summary      Rename a ward
// @Tags         survey
// @Produce      json
// @Param        wardID  path      int  true  "Ward ID"
// @Param        request   body      request.UpdateWardRequest true "request body"
// @Success      200      {object}   domain.Ward
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /wards/{wardID} [put]
func (h *SurveyHandler) HandleRenameWard(ctx *gin.Context) {
	wardID, err := strconv.ParseUint(ctx.Param("wardID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateWardRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ward, err := h.svc.RenameWard(ctx.Request.Context(), uint(wardID), req.WardName)
	if err != nil {
		if errors.Is(err, service.ErrWardNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrWardNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleRenameWard -> h.svc.RenameWard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, ward)
}
