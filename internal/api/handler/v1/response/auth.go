package response

import "github.com/samrambhakamela/mela-api/internal/domain"

type StallLoginResponse struct {
	Token string       `json:"token"`
	Stall domain.Stall `json:"stall"`
}

type AdminLoginResponse struct {
	Token       string                   `json:"token"`
	Admin       domain.Admin             `json:"admin"`
	Permissions []domain.AdminPermission `json:"permissions"`
}
