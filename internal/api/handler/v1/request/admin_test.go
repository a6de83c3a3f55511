package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	assert.NoError(t, validPassword("abc12345"))
	assert.NoError(t, validPassword("S0mel0ngerpassword"))

	assert.Error(t, validPassword("abc1234"), "too short")
	assert.Error(t, validPassword("abcdefgh"), "letters only")
	assert.Error(t, validPassword("12345678"), "digits only")
	assert.Error(t, validPassword(""))
}

func TestCreateAdminRequestValidate(t *testing.T) {
	req := CreateAdminRequest{Username: "accounts_desk", Password: "abc12345", Role: "admin"}
	assert.NoError(t, req.Validate())

	t.Run("bad role", func(t *testing.T) {
		bad := req
		bad.Role = "owner"
		assert.Error(t, bad.Validate())
	})

	t.Run("weak password", func(t *testing.T) {
		bad := req
		bad.Password = "short1"
		assert.Error(t, bad.Validate())
	})

	t.Run("username too short", func(t *testing.T) {
		bad := req
		bad.Username = "ab"
		assert.Error(t, bad.Validate())
	})
}

func TestSetPermissionRequestValidate(t *testing.T) {
	req := SetPermissionRequest{Module: "billing", CanRead: true}
	assert.NoError(t, req.Validate())

	req.Module = "payroll"
	assert.Error(t, req.Validate())

	req.Module = ""
	assert.Error(t, req.Validate())
}
