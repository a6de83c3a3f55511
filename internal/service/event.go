package service

import (
	"context"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var (
	ErrProgramNotFound    = repository.ErrProgramNotFound
	ErrTeamMemberNotFound = repository.ErrTeamMemberNotFound
)

type EventRepository interface {
	CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	FindTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint) error
	CreateProgram(ctx context.Context, program domain.Program) (domain.Program, error)
	FindPrograms(ctx context.Context) ([]domain.Program, error)
	FindProgramByID(ctx context.Context, id uint) (domain.Program, error)
	UpdateProgram(ctx context.Context, program domain.Program) (domain.Program, error)
	DeleteProgram(ctx context.Context, id uint) error
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) AddTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	// Shift and duties only apply to volunteers.
	if member.Type == domain.MemberOfficial {
		member.Shift = ""
		member.Duties = ""
	}

	created, err := s.repo.CreateTeamMember(ctx, member)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.CreateTeamMember -> %w", err)
	}

	return created, nil
}

func (s *EventService) FindTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	members, err := s.repo.FindTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTeamMembers -> %w", err)
	}

	return members, nil
}

func (s *EventService) DeleteTeamMember(ctx context.Context, id uint) error {
	if err := s.repo.DeleteTeamMember(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteTeamMember -> %w", err)
	}

	return nil
}

func (s *EventService) AddProgram(ctx context.Context, program domain.Program) (domain.Program, error) {
	created, err := s.repo.CreateProgram(ctx, program)
	if err != nil {
		return domain.Program{}, fmt.Errorf("s.repo.CreateProgram -> %w", err)
	}

	return created, nil
}

func (s *EventService) FindPrograms(ctx context.Context) ([]domain.Program, error) {
	programs, err := s.repo.FindPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPrograms -> %w", err)
	}

	return programs, nil
}

func (s *EventService) UpdateProgram(ctx context.Context, program domain.Program) (domain.Program, error) {
	existing, err := s.repo.FindProgramByID(ctx, program.ID)
	if err != nil {
		return domain.Program{}, fmt.Errorf("s.repo.FindProgramByID -> %w", err)
	}

	existing.Name = program.Name
	existing.Date = program.Date
	existing.Time = program.Time
	existing.Venue = program.Venue
	existing.Description = program.Description

	updated, err := s.repo.UpdateProgram(ctx, existing)
	if err != nil {
		return domain.Program{}, fmt.Errorf("s.repo.UpdateProgram -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteProgram(ctx context.Context, id uint) error {
	if _, err := s.repo.FindProgramByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindProgramByID -> %w", err)
	}

	if err := s.repo.DeleteProgram(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteProgram -> %w", err)
	}

	return nil
}
