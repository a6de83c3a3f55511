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

type EventService interface {
	AddTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	FindTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint) error
	AddProgram(ctx context.Context, program domain.Program) (domain.Program, error)
	FindPrograms(ctx context.Context) ([]domain.Program, error)
	UpdateProgram(ctx context.Context, program domain.Program) (domain.Program, error)
	DeleteProgram(ctx context.Context, id uint) error
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleAddTeamMember godoc
// @Summary      Add a team member
// @Tags         team
// @Produce      json
// @Param        request   body      request.AddTeamMemberRequest true "request body"
// @Success      201      {object}   domain.TeamMember
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /team [post]
func (h *EventHandler) HandleAddTeamMember(ctx *gin.Context) {
	req := request.AddTeamMemberRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	member, err := h.svc.AddTeamMember(ctx.Request.Context(), domain.TeamMember{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Type:   domain.MemberType(req.Type),
		Shift:  req.Shift,
		Duties: req.Duties,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleAddTeamMember -> h.svc.AddTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, member)
}

// HandleGetTeamMembers godoc
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Success      200      {object}   []domain.TeamMember
// @Failure      500      {object}   response.Err
// @Router       /team [get]
func (h *EventHandler) HandleGetTeamMembers(ctx *gin.Context) {
	members, err := h.svc.FindTeamMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTeamMembers -> h.svc.FindTeamMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleDeleteTeamMember godoc
// @Summary      Remove a team member
// @Tags         team
// @Produce      json
// @Param        memberID  path      int  true  "Team member ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /team/{memberID} [delete]
func (h *EventHandler) HandleDeleteTeamMember(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("memberID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteTeamMember(ctx.Request.Context(), uint(memberID)); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrTeamMemberNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteTeamMember -> h.svc.DeleteTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAddProgram godoc
// @Summary      Add a program to the schedule
// @Tags         programs
// @Produce      json
// @Param        request   body      request.ProgramRequest true "request body"
// @Success      201      {object}   domain.Program
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /programs [post]
func (h *EventHandler) HandleAddProgram(ctx *gin.Context) {
	req := request.ProgramRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	program, err := h.svc.AddProgram(ctx.Request.Context(), domain.Program{
		Name:        req.Name,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleAddProgram -> h.svc.AddProgram -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, program)
}

// HandleGetPrograms godoc
// @Summary      List the program schedule
// @Tags         programs
// @Produce      json
// @Success      200      {object}   []domain.Program
// @Failure      500      {object}   response.Err
// @Router       /programs [get]
func (h *EventHandler) HandleGetPrograms(ctx *gin.Context) {
	programs, err := h.svc.FindPrograms(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPrograms -> h.svc.FindPrograms -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, programs)
}

// HandleUpdateProgram godoc
// @Summary      Update a program
// @Tags         programs
// @Produce      json
// @Param        programID  path      int  true  "Program ID"
// @Param        request   body      request.ProgramRequest true "request body"
// @Success      200      {object}   domain.Program
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /programs/{programID} [put]
func (h *EventHandler) HandleUpdateProgram(ctx *gin.Context) {
	programID, err := strconv.ParseUint(ctx.Param("programID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.ProgramRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	program, err := h.svc.UpdateProgram(ctx.Request.Context(), domain.Program{
		ID:          uint(programID),
		Name:        req.Name,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrProgramNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateProgram -> h.svc.UpdateProgram -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, program)
}

// HandleDeleteProgram godoc
// @Summary      Delete a program
// @Tags         programs
// @Produce      json
// @Param        programID  path      int  true  "Program ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /programs/{programID} [delete]
func (h *EventHandler) HandleDeleteProgram(ctx *gin.Context) {
	programID, err := strconv.ParseUint(ctx.Param("programID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteProgram(ctx.Request.Context(), uint(programID)); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrProgramNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteProgram -> h.svc.DeleteProgram -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
