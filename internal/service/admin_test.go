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

type fakeAdminRepo struct {
	admins      map[uint]domain.Admin
	permissions map[uint][]domain.AdminPermission
	nextID      uint
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		admins:      make(map[uint]domain.Admin),
		permissions: make(map[uint][]domain.AdminPermission),
	}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	for _, a := range f.admins {
		if a.Username == admin.Username {
			return domain.Admin{}, repository.ErrAdminUsernameExists
		}
	}

	f.nextID++
	admin.ID = f.nextID
	f.admins[admin.ID] = admin

	return admin, nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uint) (domain.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return domain.Admin{}, repository.ErrAdminNotFound
	}

	return admin, nil
}

func (f *fakeAdminRepo) FindAll(_ context.Context) ([]domain.Admin, error) {
	var admins []domain.Admin
	for _, a := range f.admins {
		admins = append(admins, a)
	}

	return admins, nil
}

func (f *fakeAdminRepo) Update(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	f.admins[admin.ID] = admin

	return admin, nil
}

func (f *fakeAdminRepo) FindPermissionsByAdminID(_ context.Context, adminID uint) ([]domain.AdminPermission, error) {
	return f.permissions[adminID], nil
}

func (f *fakeAdminRepo) UpsertPermission(_ context.Context, permission domain.AdminPermission) (domain.AdminPermission, error) {
	rows := f.permissions[permission.AdminID]
	for i := range rows {
		if rows[i].Module == permission.Module {
			rows[i] = permission
			return permission, nil
		}
	}
	f.permissions[permission.AdminID] = append(rows, permission)

	return permission, nil
}

func TestCreateAdmin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAdminService(repo)

	admin, err := svc.Create(context.Background(), "accounts_desk", "abc12345", domain.RoleAdmin)
	require.NoError(t, err)

	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "abc12345", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("abc12345")))

	_, err = svc.Create(context.Background(), "accounts_desk", "other1234", domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrAdminUsernameExists)
}

func TestSetAdminActive(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAdminService(repo)

	admin, err := svc.Create(context.Background(), "accounts_desk", "abc12345", domain.RoleAdmin)
	require.NoError(t, err)

	disabled, err := svc.SetActive(context.Background(), admin.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.IsActive)

	enabled, err := svc.SetActive(context.Background(), admin.ID, true)
	require.NoError(t, err)
	assert.True(t, enabled.IsActive)
}

func TestSetPermissionUpserts(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAdminService(repo)

	admin, err := svc.Create(context.Background(), "accounts_desk", "abc12345", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.SetPermission(context.Background(), domain.AdminPermission{
		AdminID: admin.ID,
		Module:  domain.ModuleBilling,
		CanRead: true,
	})
	require.NoError(t, err)

	// A second write for the same module replaces the row.
	_, err = svc.SetPermission(context.Background(), domain.AdminPermission{
		AdminID:   admin.ID,
		Module:    domain.ModuleBilling,
		CanRead:   true,
		CanCreate: true,
	})
	require.NoError(t, err)

	permissions, err := svc.FindPermissions(context.Background(), admin.ID)
	require.NoError(t, err)
	require.Len(t, permissions, 1)
	assert.True(t, permissions[0].CanCreate)
}

func TestSetPermissionUnknownAdmin(t *testing.T) {
	svc := NewAdminService(newFakeAdminRepo())

	_, err := svc.SetPermission(context.Background(), domain.AdminPermission{
		AdminID: 42,
		Module:  domain.ModuleBilling,
	})

	assert.Error(t, err)
}
