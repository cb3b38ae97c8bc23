package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/pkg/apiErrors"
)

// RoleMiddleware restricts a route to the listed portal roles.
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if claims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Access denied for user ID=%s, role=%s", claims.UserID, claims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly allows only administrators.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin})
}

// AdminOrTeam allows administrators and team members.
func AdminOrTeam() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleTeam})
}

// AllRoles allows every authenticated portal role.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleTeam, domain.RoleClient})
}
