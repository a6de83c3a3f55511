package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var (
	ErrEnquiryNotFound      = repository.ErrEnquiryNotFound
	ErrEnquiryFieldNotFound = repository.ErrEnquiryFieldNotFound
	ErrEnquiryMobileExists  = repository.ErrEnquiryMobileExists
	ErrMissingRequiredField = errors.New("a required field has no response")
)

type EnquiryRepository interface {
	CreateField(ctx context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error)
	FindFields(ctx context.Context, activeOnly bool) ([]domain.StallEnquiryField, error)
	UpdateField(ctx context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error)
	DeleteField(ctx context.Context, id uint) error
	Create(ctx context.Context, enquiry domain.StallEnquiry) (domain.StallEnquiry, error)
	FindByID(ctx context.Context, id uint) (domain.StallEnquiry, error)
	FindByMobile(ctx context.Context, mobile string) (domain.StallEnquiry, error)
	FindAll(ctx context.Context) ([]domain.StallEnquiry, error)
	Update(ctx context.Context, enquiry domain.StallEnquiry) (domain.StallEnquiry, error)
}

type EnquiryService struct {
	repo EnquiryRepository
}

func NewEnquiryService(repo EnquiryRepository) *EnquiryService {
	return &EnquiryService{
		repo: repo,
	}
}

func (s *EnquiryService) CreateField(ctx context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error) {
	created, err := s.repo.CreateField(ctx, field)
	if err != nil {
		return domain.StallEnquiryField{}, fmt.Errorf("s.repo.CreateField -> %w", err)
	}

	return created, nil
}

func (s *EnquiryService) FindFields(ctx context.Context, activeOnly bool) ([]domain.StallEnquiryField, error) {
	fields, err := s.repo.FindFields(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFields -> %w", err)
	}

	return fields, nil
}

func (s *EnquiryService) UpdateField(ctx context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error) {
	updated, err := s.repo.UpdateField(ctx, field)
	if err != nil {
		return domain.StallEnquiryField{}, fmt.Errorf("s.repo.UpdateField -> %w", err)
	}

	return updated, nil
}

func (s *EnquiryService) DeleteField(ctx context.Context, id uint) error {
	if err := s.repo.DeleteField(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteField -> %w", err)
	}

	return nil
}

// Submit validates the responses against the active field definitions
// and rejects duplicate mobiles before touching the unique index.
// Required fields only bind when they are actually shown; a field hidden
// by its display condition is never required.
func (s *EnquiryService) Submit(ctx context.Context, enquiry domain.StallEnquiry) (domain.StallEnquiry, error) {
	if _, err := s.repo.FindByMobile(ctx, enquiry.Mobile); err == nil {
		return domain.StallEnquiry{}, ErrEnquiryMobileExists
	} else if !errors.Is(err, repository.ErrEnquiryNotFound) {
		return domain.StallEnquiry{}, fmt.Errorf("s.repo.FindByMobile -> %w", err)
	}

	fields, err := s.repo.FindFields(ctx, true)
	if err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("s.repo.FindFields -> %w", err)
	}

	for _, f := range fields {
		if !f.IsRequired || !f.ShouldShow(enquiry.Responses) {
			continue
		}
		if enquiry.Responses[f.ID] == "" {
			return domain.StallEnquiry{}, ErrMissingRequiredField
		}
	}

	enquiry.Status = domain.EnquiryPending
	created, err := s.repo.Create(ctx, enquiry)
	if err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EnquiryService) FindAll(ctx context.Context) ([]domain.StallEnquiry, error) {
	enquiries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return enquiries, nil
}

// Verify moves a pending enquiry to verified.
func (s *EnquiryService) Verify(ctx context.Context, id uint) (domain.StallEnquiry, error) {
	enquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if enquiry.Status == domain.EnquiryVerified {
		return enquiry, nil
	}

	enquiry.Status = domain.EnquiryVerified
	updated, err := s.repo.Update(ctx, enquiry)
	if err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
