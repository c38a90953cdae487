package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/handler/httperr"
	"booking-registry/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxAccountKey = "account"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		holder, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetAccount(c, holder)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetAccount stores the authenticated principal. Handler tests use it to stub authentication.
func SetAccount(c *gin.Context, holder account.Account) {
	c.Set(ctxAccountKey, holder)
}

func GetAccount(c *gin.Context) (account.Account, bool) {
	v, exists := c.Get(ctxAccountKey)
	if !exists {
		return account.Account{}, false
	}
	holder, ok := v.(account.Account)
	return holder, ok && !holder.IsZero()
}
