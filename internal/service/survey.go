package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var (
	ErrPanchayathNotFound = repository.ErrPanchayathNotFound
	ErrWardNotFound       = repository.ErrWardNotFound
	ErrInvalidWardCount   = errors.New("ward count must be at least 1")
)

type SurveyRepository interface {
	CreatePanchayath(ctx context.Context, panchayath domain.Panchayath, wardCount int) (domain.Panchayath, error)
	FindPanchayaths(ctx context.Context) ([]domain.Panchayath, error)
	FindPanchayathByID(ctx context.Context, id uint) (domain.Panchayath, error)
	DeletePanchayath(ctx context.Context, id uint) error
	FindWardsByPanchayathID(ctx context.Context, panchayathID uint) ([]domain.Ward, error)
	FindWardByID(ctx context.Context, id uint) (domain.Ward, error)
	UpdateWard(ctx context.Context, ward domain.Ward) (domain.Ward, error)
}

type SurveyService struct {
	repo SurveyRepository
}

func NewSurveyService(repo SurveyRepository) *SurveyService {
	return &SurveyService{
		repo: repo,
	}
}

// CreatePanchayath creates the panchayath with its full ward batch,
// numbered 1..wardCount.
func (s *SurveyService) CreatePanchayath(ctx context.Context, name string, wardCount int) (domain.Panchayath, error) {
	if wardCount < 1 {
		return domain.Panchayath{}, ErrInvalidWardCount
	}

	created, err := s.repo.CreatePanchayath(ctx, domain.Panchayath{Name: name}, wardCount)
	if err != nil {
		return domain.Panchayath{}, fmt.Errorf("s.repo.CreatePanchayath -> %w", err)
	}

	return created, nil
}

func (s *SurveyService) FindPanchayaths(ctx context.Context) ([]domain.Panchayath, error) {
	panchayaths, err := s.repo.FindPanchayaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPanchayaths -> %w", err)
	}

	return panchayaths, nil
}

func (s *SurveyService) DeletePanchayath(ctx context.Context, id uint) error {
	if _, err := s.repo.FindPanchayathByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindPanchayathByID -> %w", err)
	}

	if err := s.repo.DeletePanchayath(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeletePanchayath -> %w", err)
	}

	return nil
}

func (s *SurveyService) FindWards(ctx context.Context, panchayathID uint) ([]domain.Ward, error) {
	if _, err := s.repo.FindPanchayathByID(ctx, panchayathID); err != nil {
		return nil, fmt.Errorf("s.repo.FindPanchayathByID -> %w", err)
	}

	wards, err := s.repo.FindWardsByPanchayathID(ctx, panchayathID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindWardsByPanchayathID -> %w", err)
	}

	return wards, nil
}

// RenameWard updates the ward's display name. Numbers are fixed at
// creation and never change.
func (s *SurveyService) RenameWard(ctx context.Context, id uint, name string) (domain.Ward, error) {
	ward, err := s.repo.FindWardByID(ctx, id)
	if err != nil {
		return domain.Ward{}, fmt.Errorf("s.repo.FindWardByID -> %w", err)
	}

	ward.WardName = name
	updated, err := s.repo.UpdateWard(ctx, ward)
	if err != nil {
		return domain.Ward{}, fmt.Errorf("s.repo.UpdateWard -> %w", err)
	}

	return updated, nil
}
