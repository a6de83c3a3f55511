package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
)

var (
	ErrEnquiryNotFound      = dao.ErrEnquiryNotFound
	ErrEnquiryFieldNotFound = dao.ErrEnquiryFieldNotFound
	ErrEnquiryMobileExists  = dao.ErrEnquiryMobileExists
)

type EnquiryDAO interface {
	InsertField(ctx context.Context, field dao.StallEnquiryField) (dao.StallEnquiryField, error)
	FindFields(ctx context.Context, activeOnly bool) ([]dao.StallEnquiryField, error)
	UpdateField(ctx context.Context, field dao.StallEnquiryField) (dao.StallEnquiryField, error)
	DeleteField(ctx context.Context, id uint) error
	Insert(ctx context.Context, enquiry dao.StallEnquiry) (dao.StallEnquiry, error)
	FindByID(ctx context.Context, id uint) (dao.StallEnquiry, error)
	FindByMobile(ctx context.Context, mobile string) (dao.StallEnquiry, error)
	FindAll(ctx context.Context) ([]dao.StallEnquiry, error)
	Update(ctx context.Context, enquiry dao.StallEnquiry) (dao.StallEnquiry, error)
}

type EnquiryRepository struct {
	dao EnquiryDAO
}

func NewEnquiryRepository(dao EnquiryDAO) *EnquiryRepository {
	return &EnquiryRepository{
		dao: dao,
	}
}

func (r *EnquiryRepository) fieldDomainToDao(f domain.StallEnquiryField) (dao.StallEnquiryField, error) {
	options, err := json.Marshal(f.Options)
	if err != nil {
		return dao.StallEnquiryField{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	return dao.StallEnquiryField{
		ID:                f.ID,
		FieldLabel:        f.FieldLabel,
		FieldType:         f.FieldType,
		Options:           string(options),
		IsRequired:        f.IsRequired,
		IsActive:          f.IsActive,
		DisplayOrder:      f.DisplayOrder,
		ShowConditionalOn: f.ShowConditionalOn,
		ConditionalValue:  f.ConditionalValue,
		CreatedAt:         f.CreatedAt,
	}, nil
}

func (r *EnquiryRepository) fieldDaoToDomain(f dao.StallEnquiryField) (domain.StallEnquiryField, error) {
	var options []string
	if f.Options != "" {
		if err := json.Unmarshal([]byte(f.Options), &options); err != nil {
			return domain.StallEnquiryField{}, fmt.Errorf("json.Unmarshal -> %w", err)
		}
	}

	return domain.StallEnquiryField{
		ID:                f.ID,
		FieldLabel:        f.FieldLabel,
		FieldType:         f.FieldType,
		Options:           options,
		IsRequired:        f.IsRequired,
		IsActive:          f.IsActive,
		DisplayOrder:      f.DisplayOrder,
		ShowConditionalOn: f.ShowConditionalOn,
		ConditionalValue:  f.ConditionalValue,
		CreatedAt:         f.CreatedAt,
	}, nil
}

func (r *EnquiryRepository) enquiryDomainToDao(e domain.StallEnquiry) (dao.StallEnquiry, error) {
	responses, err := json.Marshal(e.Responses)
	if err != nil {
		return dao.StallEnquiry{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	products, err := json.Marshal(e.Products)
	if err != nil {
		return dao.StallEnquiry{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	return dao.StallEnquiry{
		ID:           e.ID,
		Name:         e.Name,
		Mobile:       e.Mobile,
		PanchayathID: e.PanchayathID,
		WardID:       e.WardID,
		Responses:    string(responses),
		Products:     string(products),
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
	}, nil
}

func (r *EnquiryRepository) enquiryDaoToDomain(e dao.StallEnquiry) (domain.StallEnquiry, error) {
	var responses map[uint]string
	if err := json.Unmarshal([]byte(e.Responses), &responses); err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	var products []domain.EnquiryProduct
	if e.Products != "" {
		if err := json.Unmarshal([]byte(e.Products), &products); err != nil {
			return domain.StallEnquiry{}, fmt.Errorf("json.Unmarshal -> %w", err)
		}
	}

	return domain.StallEnquiry{
		ID:           e.ID,
		Name:         e.Name,
		Mobile:       e.Mobile,
		PanchayathID: e.PanchayathID,
		WardID:       e.WardID,
		Responses:    responses,
		Products:     products,
		Status:       domain.EnquiryStatus(e.Status),
		CreatedAt:    e.CreatedAt,
	}, nil
}

func (r *EnquiryRepository) CreateField(ctx context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error) {
	fieldDAO, err := r.fieldDomainToDao(field)
	if err != nil {
		return domain.StallEnquiryField{}, err
	}

	created, err := r.dao.InsertField(ctx, fieldDAO)
	if err != nil {
		return domain.StallEnquiryField{}, fmt.Errorf("r.dao.InsertField -> %w", err)
	}

	return r.fieldDaoToDomain(created)
}

func (r *EnquiryRepository) FindFields(ctx context.Context, activeOnly bool) ([]domain.StallEnquiryField, error) {
	found, err := r.dao.FindFields(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFields -> %w", err)
	}

	fields := make([]domain.StallEnquiryField, len(found))
	for i, f := range found {
		field, err := r.fieldDaoToDomain(f)
		if err != nil {
			return nil, err
		}
		fields[i] = field
	}

	return fields, nil
}

func (r *EnquiryRepository) UpdateField(ctx context.Context, field domain.StallEnquiryField) (domain.StallEnquiryField, error) {
	fieldDAO, err := r.fieldDomainToDao(field)
	if err != nil {
		return domain.StallEnquiryField{}, err
	}

	updated, err := r.dao.UpdateField(ctx, fieldDAO)
	if err != nil {
		return domain.StallEnquiryField{}, fmt.Errorf("r.dao.UpdateField -> %w", err)
	}

	return r.fieldDaoToDomain(updated)
}

func (r *EnquiryRepository) DeleteField(ctx context.Context, id uint) error {
	if err := r.dao.DeleteField(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteField -> %w", err)
	}

	return nil
}

func (r *EnquiryRepository) Create(ctx context.Context, enquiry domain.StallEnquiry) (domain.StallEnquiry, error) {
	enquiryDAO, err := r.enquiryDomainToDao(enquiry)
	if err != nil {
		return domain.StallEnquiry{}, err
	}

	created, err := r.dao.Insert(ctx, enquiryDAO)
	if err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.enquiryDaoToDomain(created)
}

func (r *EnquiryRepository) FindByID(ctx context.Context, id uint) (domain.StallEnquiry, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.enquiryDaoToDomain(found)
}

func (r *EnquiryRepository) FindByMobile(ctx context.Context, mobile string) (domain.StallEnquiry, error) {
	found, err := r.dao.FindByMobile(ctx, mobile)
	if err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("r.dao.FindByMobile -> %w", err)
	}

	return r.enquiryDaoToDomain(found)
}

func (r *EnquiryRepository) FindAll(ctx context.Context) ([]domain.StallEnquiry, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	enquiries := make([]domain.StallEnquiry, len(found))
	for i, e := range found {
		enquiry, err := r.enquiryDaoToDomain(e)
		if err != nil {
			return nil, err
		}
		enquiries[i] = enquiry
	}

	return enquiries, nil
}

func (r *EnquiryRepository) Update(ctx context.Context, enquiry domain.StallEnquiry) (domain.StallEnquiry, error) {
	enquiryDAO, err := r.enquiryDomainToDao(enquiry)
	if err != nil {
		return domain.StallEnquiry{}, err
	}

	updated, err := r.dao.Update(ctx, enquiryDAO)
	if err != nil {
		return domain.StallEnquiry{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.enquiryDaoToDomain(updated)
}
