package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "authClaims"

// RoleSource reports the roles currently persisted for an identity. Token
// claims freeze the roles at issue time; a source lets role checks observe a
// promotion that happened after the token was issued.
type RoleSource interface {
	RolesFor(ctx context.Context, userID string) ([]string, error)
}

// RequireSession validates the bearer token and stores the claims on the
// request context. When a role source is given, the stored roles replace the
// ones frozen into the token.
func RequireSession(validator TokenValidator, roles RoleSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request(), "token")
			claims, err := validator.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			if roles != nil {
				if current, err := roles.RolesFor(c.Request().Context(), claims.RegisteredClaims.Subject); err == nil && len(current) > 0 {
					claims.Roles = current
				}
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole rejects requests whose session lacks the role. Must run after
// RequireSession.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromEcho(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			if !claims.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// ClaimsFromEcho returns the claims stored by RequireSession, or nil.
func ClaimsFromEcho(c echo.Context) *Claims {
	claims, _ := c.Get(claimsContextKey).(*Claims)
	return claims
}
