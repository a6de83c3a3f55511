package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

type fakeEnquiryRepo struct {
	fields    []domain.StallEnquiryField
	enquiries map[uint]domain.StallEnquiry
	nextID    uint
}

func newFakeEnquiryRepo(fields ...domain.StallEnquiryField) *fakeEnquiryRepo {
	return &fakeEnquiryRepo{
		fields:    fields,
		enquiries: make(map[uint]domain.StallEnquiry),
	}
}

func (f *fakeEnquiryRepo) CreateField(_ context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error) {
	f.nextID++
	field.ID = f.nextID
	f.fields = append(f.fields, field)

	return field, nil
}

func (f *fakeEnquiryRepo) FindFields(_ context.Context, activeOnly bool) ([]domain.StallEnquiryField, error) {
	if !activeOnly {
		return f.fields, nil
	}

	var active []domain.StallEnquiryField
	for _, field := range f.fields {
		if field.IsActive {
			active = append(active, field)
		}
	}

	return active, nil
}

func (f *fakeEnquiryRepo) UpdateField(_ context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error) {
	for i := range f.fields {
		if f.fields[i].ID == field.ID {
			f.fields[i] = field
			return field, nil
		}
	}

	return domain.StallEnquiryField{}, repository.ErrEnquiryFieldNotFound
}

func (f *fakeEnquiryRepo) DeleteField(_ context.Context, id uint) error {
	for i := range f.fields {
		if f.fields[i].ID == id {
			f.fields = append(f.fields[:i], f.fields[i+1:]...)
			return nil
		}
	}

	return repository.ErrEnquiryFieldNotFound
}

func (f *fakeEnquiryRepo) Create(_ context.Context, enquiry domain.StallEnquiry) (domain.StallEnquiry, error) {
	f.nextID++
	enquiry.ID = f.nextID
	f.enquiries[enquiry.ID] = enquiry

	return enquiry, nil
}

func (f *fakeEnquiryRepo) FindByID(_ context.Context, id uint) (domain.StallEnquiry, error) {
	enquiry, ok := f.enquiries[id]
	if !ok {
		return domain.StallEnquiry{}, repository.ErrEnquiryNotFound
	}

	return enquiry, nil
}

func (f *fakeEnquiryRepo) FindByMobile(_ context.Context, mobile string) (domain.StallEnquiry, error) {
	for _, e := range f.enquiries {
		if e.Mobile == mobile {
			return e, nil
		}
	}

	return domain.StallEnquiry{}, repository.ErrEnquiryNotFound
}

func (f *fakeEnquiryRepo) FindAll(_ context.Context) ([]domain.StallEnquiry, error) {
	var enquiries []domain.StallEnquiry
	for _, e := range f.enquiries {
		enquiries = append(enquiries, e)
	}

	return enquiries, nil
}

func (f *fakeEnquiryRepo) Update(_ context.Context, enquiry domain.StallEnquiry) (domain.StallEnquiry, error) {
	if _, ok := f.enquiries[enquiry.ID]; !ok {
		return domain.StallEnquiry{}, repository.ErrEnquiryNotFound
	}
	f.enquiries[enquiry.ID] = enquiry

	return enquiry, nil
}

func TestSubmitEnquiry(t *testing.T) {
	repo := newFakeEnquiryRepo(
		domain.StallEnquiryField{ID: 1, FieldLabel: "Experience", IsRequired: true, IsActive: true},
	)
	svc := NewEnquiryService(repo)

	enquiry, err := svc.Submit(context.Background(), domain.StallEnquiry{
		Name:      "Anitha",
		Mobile:    "9876543210",
		Responses: map[uint]string{1: "5 years"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.EnquiryPending, enquiry.Status)
	assert.NotZero(t, enquiry.ID)
}

func TestSubmitEnquiryDuplicateMobile(t *testing.T) {
	repo := newFakeEnquiryRepo()
	svc := NewEnquiryService(repo)

	_, err := svc.Submit(context.Background(), domain.StallEnquiry{Name: "Anitha", Mobile: "9876543210"})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), domain.StallEnquiry{Name: "Ravi", Mobile: "9876543210"})
	assert.ErrorIs(t, err, ErrEnquiryMobileExists)
}

func TestSubmitEnquiryMissingRequiredField(t *testing.T) {
	repo := newFakeEnquiryRepo(
		domain.StallEnquiryField{ID: 1, FieldLabel: "Experience", IsRequired: true, IsActive: true},
	)
	svc := NewEnquiryService(repo)

	_, err := svc.Submit(context.Background(), domain.StallEnquiry{
		Name:   "Anitha",
		Mobile: "9876543210",
	})

	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestSubmitEnquiryHiddenFieldNotRequired(t *testing.T) {
	parent := uint(1)
	repo := newFakeEnquiryRepo(
		domain.StallEnquiryField{ID: 1, FieldLabel: "Has brand", IsActive: true},
		domain.StallEnquiryField{
			ID:                2,
			FieldLabel:        "Brand name",
			IsRequired:        true,
			IsActive:          true,
			ShowConditionalOn: &parent,
			ConditionalValue:  "yes",
		},
	)
	svc := NewEnquiryService(repo)

	// The brand field is hidden because field 1 is "no", so leaving it
	// empty must not block the submission.
	_, err := svc.Submit(context.Background(), domain.StallEnquiry{
		Name:      "Anitha",
		Mobile:    "9876543210",
		Responses: map[uint]string{1: "no"},
	})
	assert.NoError(t, err)

	_, err = svc.Submit(context.Background(), domain.StallEnquiry{
		Name:      "Ravi",
		Mobile:    "9876500000",
		Responses: map[uint]string{1: "yes"},
	})
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestSubmitEnquiryIgnoresInactiveFields(t *testing.T) {
	repo := newFakeEnquiryRepo(
		domain.StallEnquiryField{ID: 1, FieldLabel: "Old question", IsRequired: true, IsActive: false},
	)
	svc := NewEnquiryService(repo)

	_, err := svc.Submit(context.Background(), domain.StallEnquiry{Name: "Anitha", Mobile: "9876543210"})

	assert.NoError(t, err)
}

func TestVerifyEnquiry(t *testing.T) {
	repo := newFakeEnquiryRepo()
	svc := NewEnquiryService(repo)

	enquiry, err := svc.Submit(context.Background(), domain.StallEnquiry{Name: "Anitha", Mobile: "9876543210"})
	require.NoError(t, err)

	verified, err := svc.Verify(context.Background(), enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EnquiryVerified, verified.Status)

	again, err := svc.Verify(context.Background(), enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EnquiryVerified, again.Status)
}

func TestVerifyUnknownEnquiry(t *testing.T) {
	svc := NewEnquiryService(newFakeEnquiryRepo())

	_, err := svc.Verify(context.Background(), 42)

	assert.ErrorIs(t, err, ErrEnquiryNotFound)
}
