package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samrambhakamela/mela-api/internal/api/handler/v1/request"
	"github.com/samrambhakamela/mela-api/internal/api/handler/v1/response"
	"github.com/samrambhakamela/mela-api/internal/config"
	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/pkg/jwthelper"
	"github.com/samrambhakamela/mela-api/internal/service"
)

type AuthService interface {
	StallLogin(ctx context.Context, counterName, mobile string) (domain.Stall, error)
	AdminLogin(ctx context.Context, username, password string) (domain.AdminSession, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleStallLogin godoc
// @Summary      Login a billing counter
// @Tags         auth
// @Produce      json
// @Param        request   body      request.StallLoginRequest true "request body"
// @Success      200      {object}   response.StallLoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/stall/login [post]
func (h *AuthHandler) HandleStallLogin(ctx *gin.Context) {
	req := request.StallLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stall, err := h.svc.StallLogin(ctx.Request.Context(), req.CounterName, req.Mobile)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials())

			return
		}

		err = fmt.Errorf("v1.HandleStallLogin -> h.svc.StallLogin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateStallToken([]byte(h.conf.JWTSigningKey), stall.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleStallLogin -> jwthelper.GenerateStallToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.StallLoginResponse{
		Token: token,
		Stall: stall,
	})
}

// HandleAdminLogin godoc
// @Summary      Login an admin
// @Tags         auth
// @Produce      json
// @Param        request   body      request.AdminLoginRequest true "request body"
// @Success      200      {object}   response.AdminLoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/admin/login [post]
func (h *AuthHandler) HandleAdminLogin(ctx *gin.Context) {
	req := request.AdminLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	session, err := h.svc.AdminLogin(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials())

			return
		}

		err = fmt.Errorf("v1.HandleAdminLogin -> h.svc.AdminLogin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateAdminToken([]byte(h.conf.JWTSigningKey), session, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminLogin -> jwthelper.GenerateAdminToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.AdminLoginResponse{
		Token:       token,
		Admin:       session.Admin,
		Permissions: session.Permissions,
	})
}
