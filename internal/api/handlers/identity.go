package handlers

import (
	"net/http"

	"nexodus-admin-backend/internal/auth"
	apperrors "nexodus-admin-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// IdentityHandler serves the signed-in identity
type IdentityHandler struct{}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler() *IdentityHandler {
	return &IdentityHandler{}
}

// GetIdentity handles GET /api/v1/identity
// @Summary Signed-in identity
// @Tags identity
// @Produce json
// @Success 200 {object} models.Identity "Signed-in identity"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /identity [get]
func (h *IdentityHandler) GetIdentity(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrIdentityRequired, "Authentication required")
		return
	}

	c.JSON(http.StatusOK, identity)
}
