package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// The lookahead groups need regexp2; the stdlib engine rejects them.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

func validPassword(password string) error {
	ok, err := passwordExp.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}
	return nil
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (req *CreateAdminRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In("super_admin", "admin")),
	); err != nil {
		return err
	}

	return validPassword(req.Password)
}

type ChangePasswordRequest struct {
	Password string `json:"password"`
}

func (req *ChangePasswordRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required),
	); err != nil {
		return err
	}

	return validPassword(req.Password)
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type SetPermissionRequest struct {
	Module    string `json:"module"`
	CanRead   bool   `json:"can_read"`
	CanCreate bool   `json:"can_create"`
	CanUpdate bool   `json:"can_update"`
	CanDelete bool   `json:"can_delete"`
}

func (req *SetPermissionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Module, validation.Required, validation.In(
			"billing", "team", "programs", "accounts", "food_court",
			"photos", "registrations", "survey", "stall_enquiry", "food_coupon")),
	)
}
