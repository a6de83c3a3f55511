package domain

import "time"

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
)

// AppModule names the per-module permission buckets.
type AppModule string

const (
	ModuleBilling       AppModule = "billing"
	ModuleTeam          AppModule = "team"
	ModulePrograms      AppModule = "programs"
	ModuleAccounts      AppModule = "accounts"
	ModuleFoodCourt     AppModule = "food_court"
	ModulePhotos        AppModule = "photos"
	ModuleRegistrations AppModule = "registrations"
	ModuleSurvey        AppModule = "survey"
	ModuleStallEnquiry  AppModule = "stall_enquiry"
	ModuleFoodCoupon    AppModule = "food_coupon"
)

type PermissionAction string

const (
	ActionRead   PermissionAction = "read"
	ActionCreate PermissionAction = "create"
	ActionUpdate PermissionAction = "update"
	ActionDelete PermissionAction = "delete"
)

type Admin struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         AdminRole `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AdminPermission struct {
	ID        uint      `json:"id"`
	AdminID   uint      `json:"admin_id"`
	Module    AppModule `json:"module"`
	CanRead   bool      `json:"can_read"`
	CanCreate bool      `json:"can_create"`
	CanUpdate bool      `json:"can_update"`
	CanDelete bool      `json:"can_delete"`
}

// AdminSession is the signed-in principal plus the permission matrix
// captured at login time. Permission changes made afterwards take effect
// on the next login only.
type AdminSession struct {
	Admin       Admin             `json:"admin"`
	Permissions []AdminPermission `json:"permissions"`
}

// HasPermission returns true unconditionally for super admins, otherwise
// the stored flag for the module. Missing rows deny.
func (s AdminSession) HasPermission(module AppModule, action PermissionAction) bool {
	if s.Admin.Role == RoleSuperAdmin {
		return true
	}

	for _, p := range s.Permissions {
		if p.Module != module {
			continue
		}
		switch action {
		case ActionRead:
			return p.CanRead
		case ActionCreate:
			return p.CanCreate
		case ActionUpdate:
			return p.CanUpdate
		case ActionDelete:
			return p.CanDelete
		}
	}

	return false
}
