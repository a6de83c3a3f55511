package repository

import (
	"context"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
)

var (
	ErrPanchayathNotFound = dao.ErrPanchayathNotFound
	ErrWardNotFound       = dao.ErrWardNotFound
)

type SurveyDAO interface {
	InsertPanchayath(ctx context.Context, panchayath dao.Panchayath, wardCount int) (dao.Panchayath, error)
	FindPanchayaths(ctx context.Context) ([]dao.Panchayath, error)
	FindPanchayathByID(ctx context.Context, id uint) (dao.Panchayath, error)
	DeletePanchayath(ctx context.Context, id uint) error
	FindWardsByPanchayathID(ctx context.Context, panchayathID uint) ([]dao.Ward, error)
	UpdateWard(ctx context.Context, ward dao.Ward) (dao.Ward, error)
	FindWardByID(ctx context.Context, id uint) (dao.Ward, error)
}

type SurveyRepository struct {
	dao SurveyDAO
}

func NewSurveyRepository(dao SurveyDAO) *SurveyRepository {
	return &SurveyRepository{
		dao: dao,
	}
}

func (r *SurveyRepository) panchayathDaoToDomain(p dao.Panchayath) domain.Panchayath {
	return domain.Panchayath{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func (r *SurveyRepository) wardDaoToDomain(w dao.Ward) domain.Ward {
	return domain.Ward{
		ID:           w.ID,
		PanchayathID: w.PanchayathID,
		WardNumber:   w.WardNumber,
		WardName:     w.WardName,
		CreatedAt:    w.CreatedAt,
	}
}

func (r *SurveyRepository) CreatePanchayath(ctx context.Context, panchayath domain.Panchayath, wardCount int) (domain.Panchayath, error) {
	created, err := r.dao.InsertPanchayath(ctx, dao.Panchayath{Name: panchayath.Name}, wardCount)
	if err != nil {
		return domain.Panchayath{}, fmt.Errorf("r.dao.InsertPanchayath -> %w", err)
	}

	return r.panchayathDaoToDomain(created), nil
}

func (r *SurveyRepository) FindPanchayaths(ctx context.Context) ([]domain.Panchayath, error) {
	found, err := r.dao.FindPanchayaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPanchayaths -> %w", err)
	}

	panchayaths := make([]domain.Panchayath, len(found))
	for i, p := range found {
		panchayaths[i] = r.panchayathDaoToDomain(p)
	}

	return panchayaths, nil
}

func (r *SurveyRepository) FindPanchayathByID(ctx context.Context, id uint) (domain.Panchayath, error) {
	found, err := r.dao.FindPanchayathByID(ctx, id)
	if err != nil {
		return domain.Panchayath{}, fmt.Errorf("r.dao.FindPanchayathByID -> %w", err)
	}

	return r.panchayathDaoToDomain(found), nil
}

func (r *SurveyRepository) DeletePanchayath(ctx context.Context, id uint) error {
	if err := r.dao.DeletePanchayath(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeletePanchayath -> %w", err)
	}

	return nil
}

func (r *SurveyRepository) FindWardsByPanchayathID(ctx context.Context, panchayathID uint) ([]domain.Ward, error) {
	found, err := r.dao.FindWardsByPanchayathID(ctx, panchayathID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindWardsByPanchayathID -> %w", err)
	}

	wards := make([]domain.Ward, len(found))
	for i, w := range found {
		wards[i] = r.wardDaoToDomain(w)
	}

	return wards, nil
}

func (r *SurveyRepository) FindWardByID(ctx context.Context, id uint) (domain.Ward, error) {
	found, err := r.dao.FindWardByID(ctx, id)
	if err != nil {
		return domain.Ward{}, fmt.Errorf("r.dao.FindWardByID -> %w", err)
	}

	return r.wardDaoToDomain(found), nil
}

func (r *SurveyRepository) UpdateWard(ctx context.Context, ward domain.Ward) (domain.Ward, error) {
	updated, err := r.dao.UpdateWard(ctx, dao.Ward{
		ID:           ward.ID,
		PanchayathID: ward.PanchayathID,
		WardNumber:   ward.WardNumber,
		WardName:     ward.WardName,
		CreatedAt:    ward.CreatedAt,
	})
	if err != nil {
		return domain.Ward{}, fmt.Errorf("r.dao.UpdateWard -> %w", err)
	}

	return r.wardDaoToDomain(updated), nil
}
