package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arogyahub/docbook/internal/auth"
	"github.com/arogyahub/docbook/internal/config"
)

const (
	ContextAccountID = "accountID"
	ContextUsername  = "username"
	ContextRole      = "role"
	ContextTokenID   = "tokenID"
	ContextTokenTTL  = "tokenTTL"
)

// TokenRevoker answers whether a token id has been denylisted by logout.
type TokenRevoker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware resolves the bearer token into the request-scoped identity
// (account id, username, role) every handler reads from the gin context.
// Tokens revoked by logout are rejected.
func AuthMiddleware(cfg *config.Config, revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := auth.ParseToken(parts[1], cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if claims.TokenID != "" && revoker != nil {
			revoked, err := revoker.IsTokenRevoked(c.Request.Context(), claims.TokenID)
			// On a cache error we let the request through; the token still
			// carries a valid signature and expiry.
			if err == nil && revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
				return
			}
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextTokenID, claims.TokenID)
		c.Set(ContextTokenTTL, time.Until(claims.ExpiresAt))

		c.Next()
	}
}

// RequireRole gates a route group on the authenticated account's role.
// It must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := c.Get(ContextRole)
		if !ok || current.(string) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access_denied"})
			return
		}
		c.Next()
	}
}
