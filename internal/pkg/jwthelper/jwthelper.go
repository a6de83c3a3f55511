// Package jwthelper signs and parses the two session token flavors:
// stall tokens for billing counters and admin tokens carrying the
// permission snapshot captured at login.
package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/samrambhakamela/mela-api/internal/domain"
)

const (
	AudienceStall = "stall"
	AudienceAdmin = "admin"

	tokenLifetime = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID      uint                     `json:"user_id"`
	UserAgent   string                   `json:"user_agent"`
	Role        string                   `json:"role,omitempty"`
	Permissions []domain.AdminPermission `json:"permissions,omitempty"`
}

func generate(signingKey []byte, claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

func GenerateStallToken(signingKey []byte, stallID uint, userAgent string) (string, error) {
	return generate(signingKey, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{AudienceStall},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
		UserID:    stallID,
		UserAgent: userAgent,
	})
}

// GenerateAdminToken embeds the permission snapshot in the token, so
// permission edits made after login only apply to tokens issued later.
func GenerateAdminToken(signingKey []byte, session domain.AdminSession, userAgent string) (string, error) {
	return generate(signingKey, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{AudienceAdmin},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
		UserID:      session.Admin.ID,
		UserAgent:   userAgent,
		Role:        string(session.Admin.Role),
		Permissions: session.Permissions,
	})
}

func ParseToken(signingKey []byte, tokenString string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwt.ParseWithClaims -> %w", err)
	}

	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
