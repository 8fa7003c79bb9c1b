package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"notes-service/internal/core/auth"
	"notes-service/internal/domain"
	resp "notes-service/internal/transport/http/response"
)

const ctxUserKey = "currentUser"

// AuthJWT authenticates the request: bearer token → signature/expiry check →
// subject lookup in the user directory. Anything short of a valid token for an
// existing user is a 401. Role enforcement is a separate gate (RequireRole).
func AuthJWT(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, http.StatusUnauthorized, resp.MsgCouldNotValidate)
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, resp.MsgCouldNotValidate)
			return
		}
		u, err := users.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				// Token outlived its user.
				resp.Abort(c, http.StatusUnauthorized, resp.MsgCouldNotValidate)
				return
			}
			resp.Abort(c, http.StatusInternalServerError, resp.MsgInternal)
			return
		}
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// RequireRole layers on top of AuthJWT: authenticated with the wrong role is
// 403, never 401.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp.Abort(c, http.StatusUnauthorized, resp.MsgCouldNotValidate)
			return
		}
		if u.Role != role {
			resp.Abort(c, http.StatusForbidden, "Access denied. Required role: "+role)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthJWT, or nil outside an
// authenticated group.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
