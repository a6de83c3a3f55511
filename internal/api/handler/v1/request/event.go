package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	dateRegexPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegexPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type AddTeamMemberRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	Shift  string `json:"shift"`
	Duties string `json:"duties"`
}

func (req *AddTeamMemberRequest) Validate() error {
	if req.Phone != "" {
		if err := validMobile(req.Phone); err != nil {
			return err
		}
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Role, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Type, validation.Required, validation.In("official", "volunteer")),
	)
}

type ProgramRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
}

func (req *ProgramRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Date, validation.Required, validation.Match(dateRegexPattern)),
		validation.Field(&req.Time, validation.Required, validation.Match(timeRegexPattern)),
		validation.Field(&req.Venue, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
	)
}
