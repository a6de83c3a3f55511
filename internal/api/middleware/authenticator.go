package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/pkg/jwthelper"
)

// Context keys set by the authenticator for downstream handlers.
const (
	CtxKeyStallID      = "sessionStallID"
	CtxKeyAdminSession = "sessionAdmin"
)

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

func (a *Authenticator) parse(ctx *gin.Context) (jwthelper.Claims, bool) {
	header := ctx.GetHeader("Authorization")
	segments := strings.SplitN(header, " ", 2)
	if len(segments) != 2 || segments[0] != "Bearer" {
		return jwthelper.Claims{}, false
	}

	claims, err := jwthelper.ParseToken([]byte(a.signingKey), segments[1])
	if err != nil {
		return jwthelper.Claims{}, false
	}

	// Token is bound to the browser it was issued to.
	if claims.UserAgent != ctx.Request.UserAgent() {
		return jwthelper.Claims{}, false
	}

	return claims, true
}

func hasAudience(claims jwthelper.Claims, want string) bool {
	for _, aud := range claims.Audience {
		if aud == want {
			return true
		}
	}
	return false
}

// VerifyStallJWT guards stall-only routes and stores the stall ID in
// the request context.
func (a *Authenticator) VerifyStallJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := a.parse(ctx)
		if !ok || !hasAudience(claims, jwthelper.AudienceStall) {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set(CtxKeyStallID, claims.UserID)
		ctx.Next()
	}
}

// VerifyAdminJWT guards admin routes and rebuilds the session from the
// token's permission snapshot.
func (a *Authenticator) VerifyAdminJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := a.parse(ctx)
		if !ok || !hasAudience(claims, jwthelper.AudienceAdmin) {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set(CtxKeyAdminSession, domain.AdminSession{
			Admin: domain.Admin{
				ID:   claims.UserID,
				Role: domain.AdminRole(claims.Role),
			},
			Permissions: claims.Permissions,
		})
		ctx.Next()
	}
}

// RequireSuperAdmin guards the admin-account management routes.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(CtxKeyAdminSession)
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		session, ok := value.(domain.AdminSession)
		if !ok || session.Admin.Role != domain.RoleSuperAdmin {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}

// RequirePermission checks the module/action flag from the session
// snapshot. Super admins pass unconditionally.
func RequirePermission(module domain.AppModule, action domain.PermissionAction) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(CtxKeyAdminSession)
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		session, ok := value.(domain.AdminSession)
		if !ok || !session.HasPermission(module, action) {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}
