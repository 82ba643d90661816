package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yogastudio/yoga-backend/internal/model"
	"github.com/yogastudio/yoga-backend/internal/response"
	"github.com/yogastudio/yoga-backend/internal/service"
)

const (
	// ContextKeyPrincipal is the Gin context key for the authenticated identity.
	ContextKeyPrincipal = "principal"

	// bearerPrefix must match exactly, case-sensitively, one literal space.
	// "Bearer" without the space, "bearer ", "BEARER " are not recognized.
	bearerPrefix = "Bearer "
)

// Authenticate resolves the bearer token on every request and, when it is
// valid and maps to a known account, attaches a Principal to the context.
// It never rejects: requests without a usable credential pass through
// unauthenticated, and route guards decide later.
func Authenticate(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, bearerPrefix) {
			token := header[len(bearerPrefix):]
			if authService.ValidateToken(token) {
				if subject, err := authService.TokenSubject(token); err == nil {
					if user, err := authService.GetUserByEmail(c.Request.Context(), subject); err == nil {
						c.Set(ContextKeyPrincipal, &model.Principal{
							ID:        user.ID,
							Email:     user.Email,
							FirstName: user.FirstName,
							LastName:  user.LastName,
							Admin:     user.Admin,
						})
					}
				}
			}
		}
		c.Next()
	}
}

// RequireAuth guards protected routes: without a principal the request is
// aborted with the structured 401 entry-point response.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetPrincipal(c) == nil {
			response.Unauthorized(c, "Full authentication is required to access this resource")
			return
		}
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated identity from the Gin context.
// Returns nil for unauthenticated requests.
func GetPrincipal(c *gin.Context) *model.Principal {
	val, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return nil
	}
	principal, ok := val.(*model.Principal)
	if !ok {
		return nil
	}
	return principal
}
