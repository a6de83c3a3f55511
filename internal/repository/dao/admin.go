package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAdminNotFound       = errors.New("admin not found")
	ErrAdminUsernameExists = errors.New("admin username already exists")
)

type Admin struct {
	ID uint `gorm:"primaryKey"`

	Username     string `gorm:"not null;uniqueIndex:uni_admins_username"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:admin"` // "super_admin" or "admin"
	IsActive     bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AdminPermission struct {
	ID uint `gorm:"primaryKey"`

	AdminID   uint   `gorm:"not null;index;uniqueIndex:uni_admin_module"`
	Module    string `gorm:"not null;uniqueIndex:uni_admin_module"`
	CanRead   bool   `gorm:"not null;default:false"`
	CanCreate bool   `gorm:"not null;default:false"`
	CanUpdate bool   `gorm:"not null;default:false"`
	CanDelete bool   `gorm:"not null;default:false"`
}

type AdminDAO struct {
	db *gorm.DB
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{
		db: db,
	}
}

func (d *AdminDAO) Insert(ctx context.Context, admin Admin) (Admin, error) {
	result := d.db.WithContext(ctx).Create(&admin)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "uni_admins_username") {
			return Admin{}, ErrAdminUsernameExists
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindByID(ctx context.Context, id uint) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).First(&admin, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

// FindActiveByUsername looks up an active admin only; deactivated
// accounts cannot log in.
func (d *AdminDAO) FindActiveByUsername(ctx context.Context, username string) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindAll(ctx context.Context) ([]Admin, error) {
	var admins []Admin

	result := d.db.WithContext(ctx).Order("username").Find(&admins)
	if result.Error != nil {
		return nil, result.Error
	}

	return admins, nil
}

func (d *AdminDAO) Update(ctx context.Context, admin Admin) (Admin, error) {
	result := d.db.WithContext(ctx).Save(&admin)
	if result.Error != nil {
		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindPermissionsByAdminID(ctx context.Context, adminID uint) ([]AdminPermission, error) {
	var permissions []AdminPermission

	result := d.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Find(&permissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return permissions, nil
}

// UpsertPermission replaces the permission row for (admin, module).
func (d *AdminDAO) UpsertPermission(ctx context.Context, permission AdminPermission) (AdminPermission, error) {
	var existing AdminPermission

	err := d.db.WithContext(ctx).
		Where("admin_id = ? AND module = ?", permission.AdminID, permission.Module).
		First(&existing).Error
	if err == nil {
		permission.ID = existing.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AdminPermission{}, err
	}

	result := d.db.WithContext(ctx).Save(&permission)
	if result.Error != nil {
		return AdminPermission{}, result.Error
	}

	return permission, nil
}
