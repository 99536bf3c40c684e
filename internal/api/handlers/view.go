package handlers

import (
	"net/http"

	"nexodus-admin-backend/internal/views"

	"github.com/gin-gonic/gin"
)

// ViewHandler serves the resource view declarations
type ViewHandler struct {
	registry *views.Registry
}

// NewViewHandler creates a new view handler
func NewViewHandler(registry *views.Registry) *ViewHandler {
	return &ViewHandler{registry: registry}
}

// ListViews handles GET /api/v1/views
// @Summary List declared views
// @Description Resources and the view kinds declared for each
// @Tags views
// @Produce json
// @Success 200 {object} map[string][]string "View kinds by resource"
// @Security BearerAuth
// @Router /views [get]
func (h *ViewHandler) ListViews(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Resources())
}

// GetView handles GET /api/v1/views/:resource/:kind
// @Summary Get a view declaration
// @Tags views
// @Produce json
// @Param resource path string true "Resource name" Enums(invitations, organizations)
// @Param kind path string true "View kind" Enums(list, show, create)
// @Success 200 {object} views.View "View declaration"
// @Failure 404 {object} ErrorResponse "Unknown resource or view"
// @Security BearerAuth
// @Router /views/{resource}/{kind} [get]
func (h *ViewHandler) GetView(c *gin.Context) {
	view, err := h.registry.View(c.Param("resource"), views.Kind(c.Param("kind")))
	if err != nil {
		respondError(c, err, "Failed to get view")
		return
	}

	c.JSON(http.StatusOK, view)
}
