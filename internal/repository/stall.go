package repository

import (
	"context"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
)

var (
	ErrStallNotFound   = dao.ErrStallNotFound
	ErrProductNotFound = dao.ErrProductNotFound
)

type StallDAO interface {
	Insert(ctx context.Context, stall dao.Stall) (dao.Stall, error)
	FindByID(ctx context.Context, id uint) (dao.Stall, error)
	FindByCredentials(ctx context.Context, counterName, mobile string) (dao.Stall, error)
	FindAll(ctx context.Context) ([]dao.Stall, error)
	Update(ctx context.Context, stall dao.Stall) (dao.Stall, error)
	Delete(ctx context.Context, id uint) error
	InsertProduct(ctx context.Context, product dao.Product) (dao.Product, error)
	FindProductByID(ctx context.Context, id uint) (dao.Product, error)
	FindProductsByStallID(ctx context.Context, stallID uint) ([]dao.Product, error)
	UpdateProduct(ctx context.Context, product dao.Product) (dao.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	DeleteProductsByStallID(ctx context.Context, stallID uint) error
}

type StallRepository struct {
	dao StallDAO
}

func NewStallRepository(dao StallDAO) *StallRepository {
	return &StallRepository{
		dao: dao,
	}
}

func (r *StallRepository) stallDomainToDao(s domain.Stall) dao.Stall {
	return dao.Stall{
		ID:              s.ID,
		CounterName:     s.CounterName,
		ParticipantName: s.ParticipantName,
		Mobile:          s.Mobile,
		RegistrationFee: s.RegistrationFee,
		Verified:        s.Verified,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *StallRepository) stallDaoToDomain(s dao.Stall) domain.Stall {
	return domain.Stall{
		ID:              s.ID,
		CounterName:     s.CounterName,
		ParticipantName: s.ParticipantName,
		Mobile:          s.Mobile,
		RegistrationFee: s.RegistrationFee,
		Verified:        s.Verified,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *StallRepository) productDomainToDao(p domain.Product) dao.Product {
	return dao.Product{
		ID:             p.ID,
		StallID:        p.StallID,
		Name:           p.Name,
		CostPrice:      p.CostPrice,
		SellingPrice:   p.SellingPrice,
		CommissionRate: p.CommissionRate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *StallRepository) productDaoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:             p.ID,
		StallID:        p.StallID,
		Name:           p.Name,
		CostPrice:      p.CostPrice,
		SellingPrice:   p.SellingPrice,
		CommissionRate: p.CommissionRate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *StallRepository) Create(ctx context.Context, stall domain.Stall) (domain.Stall, error) {
	created, err := r.dao.Insert(ctx, r.stallDomainToDao(stall))
	if err != nil {
		return domain.Stall{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.stallDaoToDomain(created), nil
}

func (r *StallRepository) FindByID(ctx context.Context, id uint) (domain.Stall, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.stallDaoToDomain(found), nil
}

func (r *StallRepository) FindByCredentials(ctx context.Context, counterName, mobile string) (domain.Stall, error) {
	found, err := r.dao.FindByCredentials(ctx, counterName, mobile)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("r.dao.FindByCredentials -> %w", err)
	}

	return r.stallDaoToDomain(found), nil
}

func (r *StallRepository) FindAll(ctx context.Context) ([]domain.Stall, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	stalls := make([]domain.Stall, len(found))
	for i, s := range found {
		stalls[i] = r.stallDaoToDomain(s)
	}

	return stalls, nil
}

func (r *StallRepository) Update(ctx context.Context, stall domain.Stall) (domain.Stall, error) {
	updated, err := r.dao.Update(ctx, r.stallDomainToDao(stall))
	if err != nil {
		return domain.Stall{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.stallDaoToDomain(updated), nil
}

func (r *StallRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *StallRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.InsertProduct(ctx, r.productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.InsertProduct -> %w", err)
	}

	return r.productDaoToDomain(created), nil
}

func (r *StallRepository) FindProductByID(ctx context.Context, id uint) (domain.Product, error) {
	found, err := r.dao.FindProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindProductByID -> %w", err)
	}

	return r.productDaoToDomain(found), nil
}

func (r *StallRepository) FindProductsByStallID(ctx context.Context, stallID uint) ([]domain.Product, error) {
	found, err := r.dao.FindProductsByStallID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindProductsByStallID -> %w", err)
	}

	products := make([]domain.Product, len(found))
	for i, p := range found {
		products[i] = r.productDaoToDomain(p)
	}

	return products, nil
}

func (r *StallRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.dao.UpdateProduct(ctx, r.productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.UpdateProduct -> %w", err)
	}

	return r.productDaoToDomain(updated), nil
}

func (r *StallRepository) DeleteProduct(ctx context.Context, id uint) error {
	if err := r.dao.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteProduct -> %w", err)
	}

	return nil
}

func (r *StallRepository) DeleteProductsByStallID(ctx context.Context, stallID uint) error {
	if err := r.dao.DeleteProductsByStallID(ctx, stallID); err != nil {
		return fmt.Errorf("r.dao.DeleteProductsByStallID -> %w", err)
	}

	return nil
}
