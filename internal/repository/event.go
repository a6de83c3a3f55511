package repository

import (
	"context"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
)

var (
	ErrTeamMemberNotFound = dao.ErrTeamMemberNotFound
	ErrProgramNotFound    = dao.ErrProgramNotFound
)

type EventDAO interface {
	InsertTeamMember(ctx context.Context, member dao.TeamMember) (dao.TeamMember, error)
	FindTeamMembers(ctx context.Context) ([]dao.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint) error
	InsertProgram(ctx context.Context, program dao.Program) (dao.Program, error)
	FindPrograms(ctx context.Context) ([]dao.Program, error)
	FindProgramByID(ctx context.Context, id uint) (dao.Program, error)
	UpdateProgram(ctx context.Context, program dao.Program) (dao.Program, error)
	DeleteProgram(ctx context.Context, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) memberDomainToDao(m domain.TeamMember) dao.TeamMember {
	return dao.TeamMember{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		Type:      string(m.Type),
		Shift:     m.Shift,
		Duties:    m.Duties,
		CreatedAt: m.CreatedAt,
	}
}

func (r *EventRepository) memberDaoToDomain(m dao.TeamMember) domain.TeamMember {
	return domain.TeamMember{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		Type:      domain.MemberType(m.Type),
		Shift:     m.Shift,
		Duties:    m.Duties,
		CreatedAt: m.CreatedAt,
	}
}

func (r *EventRepository) programDomainToDao(p domain.Program) dao.Program {
	return dao.Program{
		ID:          p.ID,
		Name:        p.Name,
		Date:        p.Date,
		Time:        p.Time,
		Venue:       p.Venue,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func (r *EventRepository) programDaoToDomain(p dao.Program) domain.Program {
	return domain.Program{
		ID:          p.ID,
		Name:        p.Name,
		Date:        p.Date,
		Time:        p.Time,
		Venue:       p.Venue,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func (r *EventRepository) CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	created, err := r.dao.InsertTeamMember(ctx, r.memberDomainToDao(member))
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.InsertTeamMember -> %w", err)
	}

	return r.memberDaoToDomain(created), nil
}

func (r *EventRepository) FindTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	found, err := r.dao.FindTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTeamMembers -> %w", err)
	}

	members := make([]domain.TeamMember, len(found))
	for i, m := range found {
		members[i] = r.memberDaoToDomain(m)
	}

	return members, nil
}

func (r *EventRepository) DeleteTeamMember(ctx context.Context, id uint) error {
	if err := r.dao.DeleteTeamMember(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteTeamMember -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateProgram(ctx context.Context, program domain.Program) (domain.Program, error) {
	created, err := r.dao.InsertProgram(ctx, r.programDomainToDao(program))
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.InsertProgram -> %w", err)
	}

	return r.programDaoToDomain(created), nil
}

func (r *EventRepository) FindPrograms(ctx context.Context) ([]domain.Program, error) {
	found, err := r.dao.FindPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPrograms -> %w", err)
	}

	programs := make([]domain.Program, len(found))
	for i, p := range found {
		programs[i] = r.programDaoToDomain(p)
	}

	return programs, nil
}

func (r *EventRepository) FindProgramByID(ctx context.Context, id uint) (domain.Program, error) {
	found, err := r.dao.FindProgramByID(ctx, id)
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.FindProgramByID -> %w", err)
	}

	return r.programDaoToDomain(found), nil
}

func (r *EventRepository) UpdateProgram(ctx context.Context, program domain.Program) (domain.Program, error) {
	updated, err := r.dao.UpdateProgram(ctx, r.programDomainToDao(program))
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.UpdateProgram -> %w", err)
	}

	return r.programDaoToDomain(updated), nil
}

func (r *EventRepository) DeleteProgram(ctx context.Context, id uint) error {
	if err := r.dao.DeleteProgram(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteProgram -> %w", err)
	}

	return nil
}
