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

type AdminService interface {
	Create(ctx context.Context, username, password string, role domain.AdminRole) (domain.Admin, error)
	FindAll(ctx context.Context) ([]domain.Admin, error)
	SetActive(ctx context.Context, id uint, active bool) (domain.Admin, error)
	ChangePassword(ctx context.Context, id uint, password string) (domain.Admin, error)
	FindPermissions(ctx context.Context, adminID uint) ([]domain.AdminPermission, error)
	SetPermission(ctx context.Context, permission domain.AdminPermission) (domain.AdminPermission, error)
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleCreateAdmin godoc
// @Summary      Create an admin account
// @Tags         admins
// @Produce      json
// @Param        request   body      request.CreateAdminRequest true "request body"
// @Success      201      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admins [post]
func (h *AdminHandler) HandleCreateAdmin(ctx *gin.Context) {
	req := request.CreateAdminRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Create(ctx.Request.Context(), req.Username, req.Password, domain.AdminRole(req.Role))
	if err != nil {
		if errors.Is(err, service.ErrAdminUsernameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAdminUsernameExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateAdmin -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, admin)
}

// HandleGetAdmins godoc
// @Summary      List admin accounts
// @Tags         admins
// @Produce      json
// @Success      200      {object}   []domain.Admin
// @Failure      500      {object}   response.Err
// @Router       /admins [get]
func (h *AdminHandler) HandleGetAdmins(ctx *gin.Context) {
	admins, err := h.svc.FindAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAdmins -> h.svc.FindAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, admins)
}

// HandleSetAdminActive godoc
// @Summary      Activate or deactivate an admin
// @Tags         admins
// @Produce      json
// @Param        adminID  path      int  true  "Admin ID"
// @Param        request   body      request.SetActiveRequest true "request body"
// @Success      200      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admins/{adminID}/active [put]
func (h *AdminHandler) HandleSetAdminActive(ctx *gin.Context) {
	adminID, err := strconv.ParseUint(ctx.Param("adminID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.SetActiveRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.SetActive(ctx.Request.Context(), uint(adminID), req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAdminNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleSetAdminActive -> h.svc.SetActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// HandleChangeAdminPassword godoc
// @Summary      Change an admin's password
// @Tags         admins
// @Produce      json
// @Param        adminID  path      int  true  "Admin ID"
// @Param        request   body      request.ChangePasswordRequest true "request body"
// @Success      200      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admins/{adminID}/password [put]
func (h *AdminHandler) HandleChangeAdminPassword(ctx *gin.Context) {
	adminID, err := strconv.ParseUint(ctx.Param("adminID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.ChangePasswordRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.ChangePassword(ctx.Request.Context(), uint(adminID), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAdminNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleChangeAdminPassword -> h.svc.ChangePassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// HandleGetAdminPermissions godoc
// @Summary      List an admin's module permissions
// @Tags         admins
// @Produce      json
// @Param        adminID  path      int  true  "Admin ID"
// @Success      200      {object}   []domain.AdminPermission
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admins/{adminID}/permissions [get]
func (h *AdminHandler) HandleGetAdminPermissions(ctx *gin.Context) {
	adminID, err := strconv.ParseUint(ctx.Param("adminID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	permissions, err := h.svc.FindPermissions(ctx.Request.Context(), uint(adminID))
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAdminNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetAdminPermissions -> h.svc.FindPermissions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, permissions)
}

// HandleSetAdminPermission godoc
// @Summary      Set an admin's permission for one module
// @Tags         admins
// @Produce      json
// @Param        adminID  path      int  true  "Admin ID"
// @Param        request   body      request.SetPermissionRequest true "request body"
// @Success      200      {object}   domain.AdminPermission
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admins/{adminID}/permissions [put]
func (h *AdminHandler) HandleSetAdminPermission(ctx *gin.Context) {
	adminID, err := strconv.ParseUint(ctx.Param("adminID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.SetPermissionRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	permission, err := h.svc.SetPermission(ctx.Request.Context(), domain.AdminPermission{
		AdminID:   uint(adminID),
		Module:    domain.AppModule(req.Module),
		CanRead:   req.CanRead,
		CanCreate: req.CanCreate,
		CanUpdate: req.CanUpdate,
		CanDelete: req.CanDelete,
	})
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAdminNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleSetAdminPermission -> h.svc.SetPermission -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, permission)
}
