package repository

import (
	"context"
	"fmt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
)

var (
	ErrAdminNotFound       = dao.ErrAdminNotFound
	ErrAdminUsernameExists = dao.ErrAdminUsernameExists
)

type AdminDAO interface {
	Insert(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	FindByID(ctx context.Context, id uint) (dao.Admin, error)
	FindActiveByUsername(ctx context.Context, username string) (dao.Admin, error)
	FindAll(ctx context.Context) ([]dao.Admin, error)
	Update(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	FindPermissionsByAdminID(ctx context.Context, adminID uint) ([]dao.AdminPermission, error)
	UpsertPermission(ctx context.Context, permission dao.AdminPermission) (dao.AdminPermission, error)
}

type AdminRepository struct {
	dao AdminDAO
}

func NewAdminRepository(dao AdminDAO) *AdminRepository {
	return &AdminRepository{
		dao: dao,
	}
}

func (r *AdminRepository) adminDomainToDao(a domain.Admin) dao.Admin {
	return dao.Admin{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *AdminRepository) adminDaoToDomain(a dao.Admin) domain.Admin {
	return domain.Admin{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         domain.AdminRole(a.Role),
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *AdminRepository) permissionDomainToDao(p domain.AdminPermission) dao.AdminPermission {
	return dao.AdminPermission{
		ID:        p.ID,
		AdminID:   p.AdminID,
		Module:    string(p.Module),
		CanRead:   p.CanRead,
		CanCreate: p.CanCreate,
		CanUpdate: p.CanUpdate,
		CanDelete: p.CanDelete,
	}
}

func (r *AdminRepository) permissionDaoToDomain(p dao.AdminPermission) domain.AdminPermission {
	return domain.AdminPermission{
		ID:        p.ID,
		AdminID:   p.AdminID,
		Module:    domain.AppModule(p.Module),
		CanRead:   p.CanRead,
		CanCreate: p.CanCreate,
		CanUpdate: p.CanUpdate,
		CanDelete: p.CanDelete,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	created, err := r.dao.Insert(ctx, r.adminDomainToDao(admin))
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.adminDaoToDomain(created), nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (domain.Admin, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.adminDaoToDomain(found), nil
}

func (r *AdminRepository) FindActiveByUsername(ctx context.Context, username string) (domain.Admin, error) {
	found, err := r.dao.FindActiveByUsername(ctx, username)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindActiveByUsername -> %w", err)
	}

	return r.adminDaoToDomain(found), nil
}

func (r *AdminRepository) FindAll(ctx context.Context) ([]domain.Admin, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	admins := make([]domain.Admin, len(found))
	for i, a := range found {
		admins[i] = r.adminDaoToDomain(a)
	}

	return admins, nil
}

func (r *AdminRepository) Update(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	updated, err := r.dao.Update(ctx, r.adminDomainToDao(admin))
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.adminDaoToDomain(updated), nil
}

func (r *AdminRepository) FindPermissionsByAdminID(ctx context.Context, adminID uint) ([]domain.AdminPermission, error) {
	found, err := r.dao.FindPermissionsByAdminID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPermissionsByAdminID -> %w", err)
	}

	permissions := make([]domain.AdminPermission, len(found))
	for i, p := range found {
		permissions[i] = r.permissionDaoToDomain(p)
	}

	return permissions, nil
}

func (r *AdminRepository) UpsertPermission(ctx context.Context, permission domain.AdminPermission) (domain.AdminPermission, error) {
	saved, err := r.dao.UpsertPermission(ctx, r.permissionDomainToDao(permission))
	if err != nil {
		return domain.AdminPermission{}, fmt.Errorf("r.dao.UpsertPermission -> %w", err)
	}

	return r.permissionDaoToDomain(saved), nil
}
