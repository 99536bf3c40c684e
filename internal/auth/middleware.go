package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/logger"
	"nexodus-admin-backend/internal/models"
	"nexodus-admin-backend/internal/upstream"

	"github.com/gin-gonic/gin"
)

// IdentityStatusKey is the gin context key holding the request's models.IdentityStatus
const IdentityStatusKey = "identity_status"

// Middleware loads the signed-in identity for each request
type Middleware struct {
	resolver *Resolver
}

// NewMiddleware creates a new identity middleware
func NewMiddleware(resolver *Resolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// LoadIdentity resolves the bearer token, if any, and records the outcome as the
// request's identity status. It never aborts: screens render without an identity and
// only gate the operations that need one.
func (m *Middleware) LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		status := models.IdentityStatus{}
		if token == "" {
			status.Err = apperrors.ErrIdentityRequired
		} else {
			status.Identity, status.Err = m.resolver.Resolve(c.Request.Context(), token)
			if status.Err != nil {
				status.Identity = nil
			}

			ctx := upstream.ContextWithToken(c.Request.Context(), token)
			if status.Identity != nil {
				ctx = context.WithValue(ctx, logger.UserKey, status.Identity.Username)
			}
			c.Request = c.Request.WithContext(ctx)
		}

		c.Set(IdentityStatusKey, status)
		c.Next()
	}
}

// RequireIdentity aborts with 401 unless the identity is ready
func (m *Middleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := GetIdentityStatus(c)
		if !status.Ready() {
			details := apperrors.ErrIdentityRequired.Error()
			if status.Err != nil {
				details = status.Err.Error()
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "details": details})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentityStatus returns the identity status set by LoadIdentity. Before LoadIdentity
// has run the status is the zero value: not loaded, no error.
func GetIdentityStatus(c *gin.Context) models.IdentityStatus {
	value, exists := c.Get(IdentityStatusKey)
	if !exists {
		return models.IdentityStatus{}
	}
	status, _ := value.(models.IdentityStatus)
	return status
}

// GetIdentity is a helper function to extract the ready identity from context
func GetIdentity(c *gin.Context) (*models.Identity, bool) {
	status := GetIdentityStatus(c)
	if !status.Ready() {
		return nil, false
	}
	return status.Identity, true
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
