package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrStallNotFound    = repository.ErrStallNotFound
	ErrAdminNotFound    = repository.ErrAdminNotFound
)

type AuthStallRepository interface {
	FindByCredentials(ctx context.Context, counterName, mobile string) (domain.Stall, error)
}

type AuthAdminRepository interface {
	FindActiveByUsername(ctx context.Context, username string) (domain.Admin, error)
	FindPermissionsByAdminID(ctx context.Context, adminID uint) ([]domain.AdminPermission, error)
}

type AuthService struct {
	stallRepo AuthStallRepository
	adminRepo AuthAdminRepository
}

func NewAuthService(stallRepo AuthStallRepository, adminRepo AuthAdminRepository) *AuthService {
	return &AuthService{
		stallRepo: stallRepo,
		adminRepo: adminRepo,
	}
}

// StallLogin authenticates a billing counter. Counter name and mobile
// together are the credential; there is no password.
func (s *AuthService) StallLogin(ctx context.Context, counterName, mobile string) (domain.Stall, error) {
	stall, err := s.stallRepo.FindByCredentials(ctx, counterName, mobile)
	if err != nil {
		if errors.Is(err, repository.ErrStallNotFound) {
			return domain.Stall{}, ErrWrongCredentials
		}

		return domain.Stall{}, fmt.Errorf("s.stallRepo.FindByCredentials -> %w", err)
	}

	return stall, nil
}

// AdminLogin verifies the password and captures the permission matrix.
// Permission edits made later apply from the next login.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (domain.AdminSession, error) {
	admin, err := s.adminRepo.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.AdminSession{}, ErrWrongCredentials
		}

		return domain.AdminSession{}, fmt.Errorf("s.adminRepo.FindActiveByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return domain.AdminSession{}, ErrWrongCredentials
	}

	permissions, err := s.adminRepo.FindPermissionsByAdminID(ctx, admin.ID)
	if err != nil {
		return domain.AdminSession{}, fmt.Errorf("s.adminRepo.FindPermissionsByAdminID -> %w", err)
	}

	return domain.AdminSession{
		Admin:       admin,
		Permissions: permissions,
	}, nil
}
