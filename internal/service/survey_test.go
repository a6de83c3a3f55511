package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

type fakeSurveyRepo struct {
	panchayaths map[uint]domain.Panchayath
	wards       map[uint]domain.Ward
	nextID      uint
}

func newFakeSurveyRepo() *fakeSurveyRepo {
	return &fakeSurveyRepo{
		panchayaths: make(map[uint]domain.Panchayath),
		wards:       make(map[uint]domain.Ward),
	}
}

func (f *fakeSurveyRepo) CreatePanchayath(_ context.Context, panchayath domain.Panchayath, wardCount int) (domain.Panchayath, error) {
	f.nextID++
	panchayath.ID = f.nextID
	f.panchayaths[panchayath.ID] = panchayath

	for n := 1; n <= wardCount; n++ {
		f.nextID++
		f.wards[f.nextID] = domain.Ward{
			ID:           f.nextID,
			PanchayathID: panchayath.ID,
			WardNumber:   n,
		}
	}

	return panchayath, nil
}

func (f *fakeSurveyRepo) FindPanchayaths(_ context.Context) ([]domain.Panchayath, error) {
	var panchayaths []domain.Panchayath
	for _, p := range f.panchayaths {
		panchayaths = append(panchayaths, p)
	}

	return panchayaths, nil
}

func (f *fakeSurveyRepo) FindPanchayathByID(_ context.Context, id uint) (domain.Panchayath, error) {
	p, ok := f.panchayaths[id]
	if !ok {
		return domain.Panchayath{}, repository.ErrPanchayathNotFound
	}

	return p, nil
}

func (f *fakeSurveyRepo) DeletePanchayath(_ context.Context, id uint) error {
	delete(f.panchayaths, id)
	for wid, w := range f.wards {
		if w.PanchayathID == id {
			delete(f.wards, wid)
		}
	}

	return nil
}

func (f *fakeSurveyRepo) FindWardsByPanchayathID(_ context.Context, panchayathID uint) ([]domain.Ward, error) {
	var wards []domain.Ward
	for _, w := range f.wards {
		if w.PanchayathID == panchayathID {
			wards = append(wards, w)
		}
	}

	return wards, nil
}

func (f *fakeSurveyRepo) FindWardByID(_ context.Context, id uint) (domain.Ward, error) {
	w, ok := f.wards[id]
	if !ok {
		return domain.Ward{}, repository.ErrWardNotFound
	}

	return w, nil
}

func (f *fakeSurveyRepo) UpdateWard(_ context.Context, ward domain.Ward) (domain.Ward, error) {
	f.wards[ward.ID] = ward

	return ward, nil
}

func TestCreatePanchayath(t *testing.T) {
	repo := newFakeSurveyRepo()
	svc := NewSurveyService(repo)

	p, err := svc.CreatePanchayath(context.Background(), "Kakkodi", 23)
	require.NoError(t, err)

	wards, err := svc.FindWards(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, wards, 23)
}

func TestCreatePanchayathInvalidWardCount(t *testing.T) {
	svc := NewSurveyService(newFakeSurveyRepo())

	_, err := svc.CreatePanchayath(context.Background(), "Kakkodi", 0)

	assert.ErrorIs(t, err, ErrInvalidWardCount)
}

func TestRenameWard(t *testing.T) {
	repo := newFakeSurveyRepo()
	svc := NewSurveyService(repo)

	p, err := svc.CreatePanchayath(context.Background(), "Kakkodi", 2)
	require.NoError(t, err)

	wards, err := svc.FindWards(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotEmpty(t, wards)

	renamed, err := svc.RenameWard(context.Background(), wards[0].ID, "Market ward")
	require.NoError(t, err)

	assert.Equal(t, "Market ward", renamed.WardName)
	// The number assigned at creation stays put.
	assert.Equal(t, wards[0].WardNumber, renamed.WardNumber)
}

func TestDeletePanchayathUnknown(t *testing.T) {
	svc := NewSurveyService(newFakeSurveyRepo())

	err := svc.DeletePanchayath(context.Background(), 42)

	assert.ErrorIs(t, err, ErrPanchayathNotFound)
}
