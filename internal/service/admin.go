package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var ErrAdminUsernameExists = repository.ErrAdminUsernameExists

type AdminRepository interface {
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	FindByID(ctx context.Context, id uint) (domain.Admin, error)
	FindAll(ctx context.Context) ([]domain.Admin, error)
	Update(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	FindPermissionsByAdminID(ctx context.Context, adminID uint) ([]domain.AdminPermission, error)
	UpsertPermission(ctx context.Context, permission domain.AdminPermission) (domain.AdminPermission, error)
}

type AdminService struct {
	repo AdminRepository
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{
		repo: repo,
	}
}

func (s *AdminService) Create(ctx context.Context, username, password string, role domain.AdminRole) (domain.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AdminService) FindAll(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return admins, nil
}

// SetActive toggles whether the admin can log in. Existing sessions keep
// their tokens until expiry.
func (s *AdminService) SetActive(ctx context.Context, id uint, active bool) (domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	admin.IsActive = active
	updated, err := s.repo.Update(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AdminService) ChangePassword(ctx context.Context, id uint, password string) (domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	admin.PasswordHash = string(hash)
	updated, err := s.repo.Update(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AdminService) FindPermissions(ctx context.Context, adminID uint) ([]domain.AdminPermission, error) {
	if _, err := s.repo.FindByID(ctx, adminID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	permissions, err := s.repo.FindPermissionsByAdminID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPermissionsByAdminID -> %w", err)
	}

	return permissions, nil
}

// SetPermission replaces the permission row for one module. Takes effect
// for the admin on their next login.
func (s *AdminService) SetPermission(ctx context.Context, permission domain.AdminPermission) (domain.AdminPermission, error) {
	if _, err := s.repo.FindByID(ctx, permission.AdminID); err != nil {
		return domain.AdminPermission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	saved, err := s.repo.UpsertPermission(ctx, permission)
	if err != nil {
		return domain.AdminPermission{}, fmt.Errorf("s.repo.UpsertPermission -> %w", err)
	}

	return saved, nil
}
