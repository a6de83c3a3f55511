package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
)

type fakeAuthStallRepo struct {
	stall domain.Stall
}

func (f *fakeAuthStallRepo) FindByCredentials(_ context.Context, counterName, mobile string) (domain.Stall, error) {
	if f.stall.CounterName == counterName && f.stall.Mobile == mobile {
		return f.stall, nil
	}

	return domain.Stall{}, repository.ErrStallNotFound
}

type fakeAuthAdminRepo struct {
	admin       domain.Admin
	permissions []domain.AdminPermission
}

func (f *fakeAuthAdminRepo) FindActiveByUsername(_ context.Context, username string) (domain.Admin, error) {
	if f.admin.Username == username && f.admin.IsActive {
		return f.admin, nil
	}

	return domain.Admin{}, repository.ErrAdminNotFound
}

func (f *fakeAuthAdminRepo) FindPermissionsByAdminID(_ context.Context, _ uint) ([]domain.AdminPermission, error) {
	return f.permissions, nil
}

func TestStallLogin(t *testing.T) {
	svc := NewAuthService(&fakeAuthStallRepo{
		stall: domain.Stall{ID: 7, CounterName: "Dosa Corner", Mobile: "9876543210"},
	}, &fakeAuthAdminRepo{})

	t.Run("matching credentials", func(t *testing.T) {
		stall, err := svc.StallLogin(context.Background(), "Dosa Corner", "9876543210")
		require.NoError(t, err)
		assert.Equal(t, uint(7), stall.ID)
	})

	t.Run("wrong mobile", func(t *testing.T) {
		_, err := svc.StallLogin(context.Background(), "Dosa Corner", "0000000000")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("wrong counter name", func(t *testing.T) {
		_, err := svc.StallLogin(context.Background(), "Chai Point", "9876543210")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})
}

func TestAdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	permissions := []domain.AdminPermission{
		{AdminID: 3, Module: domain.ModuleBilling, CanRead: true},
	}
	svc := NewAuthService(&fakeAuthStallRepo{}, &fakeAuthAdminRepo{
		admin: domain.Admin{
			ID:           3,
			Username:     "accounts_desk",
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			IsActive:     true,
		},
		permissions: permissions,
	})

	t.Run("correct password returns the snapshot", func(t *testing.T) {
		session, err := svc.AdminLogin(context.Background(), "accounts_desk", "secret123")
		require.NoError(t, err)

		assert.Equal(t, uint(3), session.Admin.ID)
		assert.Equal(t, permissions, session.Permissions)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.AdminLogin(context.Background(), "accounts_desk", "wrong")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.AdminLogin(context.Background(), "nobody", "secret123")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})
}

func TestAdminLoginInactive(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(&fakeAuthStallRepo{}, &fakeAuthAdminRepo{
		admin: domain.Admin{
			Username:     "accounts_desk",
			PasswordHash: string(hash),
			IsActive:     false,
		},
	})

	_, err = svc.AdminLogin(context.Background(), "accounts_desk", "secret123")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}
