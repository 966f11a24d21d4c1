package middleware

import (
	"log/slog"
	"strings"

	"pix-funnel/internal/handler/httperr"
	"pix-funnel/internal/pkg/errs"
	"pix-funnel/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxSubjectKey = "admin_subject"

var errMissingToken = errs.New("missing bearer token")

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin guards the query API with a bearer token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Unauthorized(c, errMissingToken, "Access token required")
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Unauthorized(c, err, "Invalid or expired token")
			return
		}

		c.Set(ctxSubjectKey, claims.Subject)
		c.Set("jwt_claims", map[string]any{
			"subject": claims.Subject,
			"role":    claims.Role,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
