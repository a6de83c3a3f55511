package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionSuperAdmin(t *testing.T) {
	session := AdminSession{Admin: Admin{Role: RoleSuperAdmin}}

	// No permission rows at all, still allowed everywhere.
	assert.True(t, session.HasPermission(ModuleBilling, ActionDelete))
	assert.True(t, session.HasPermission(ModuleSurvey, ActionCreate))
}

func TestHasPermissionPerAction(t *testing.T) {
	session := AdminSession{
		Admin: Admin{Role: RoleAdmin},
		Permissions: []AdminPermission{
			{Module: ModuleBilling, CanRead: true, CanCreate: true},
		},
	}

	assert.True(t, session.HasPermission(ModuleBilling, ActionRead))
	assert.True(t, session.HasPermission(ModuleBilling, ActionCreate))
	assert.False(t, session.HasPermission(ModuleBilling, ActionUpdate))
	assert.False(t, session.HasPermission(ModuleBilling, ActionDelete))
}

func TestHasPermissionMissingModuleDenies(t *testing.T) {
	session := AdminSession{
		Admin: Admin{Role: RoleAdmin},
		Permissions: []AdminPermission{
			{Module: ModuleBilling, CanRead: true},
		},
	}

	assert.False(t, session.HasPermission(ModuleAccounts, ActionRead))
}

func TestHasPermissionNoRows(t *testing.T) {
	session := AdminSession{Admin: Admin{Role: RoleAdmin}}

	assert.False(t, session.HasPermission(ModuleBilling, ActionRead))
}
