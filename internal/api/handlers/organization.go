package handlers

import (
	"net/http"

	"nexodus-admin-backend/internal/auth"
	"nexodus-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List organizations
// @Description Render the organization list view
// @Tags organizations
// @Produce json
// @Success 200 {object} service.ListResponse "Rendered organization list"
// @Failure 502 {object} ErrorResponse "Nexodus API failure"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	identity, _ := auth.GetIdentity(c)

	resp, err := h.service.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Render the organization show view
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.ShowResponse "Rendered organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseID(c, "organization")
	if !ok {
		return
	}
	identity, _ := auth.GetIdentity(c)

	resp, err := h.service.Get(c.Request.Context(), identity, id)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCreateForm handles GET /api/v1/organizations/create
// @Summary Organization create form
// @Tags organizations
// @Produce json
// @Success 200 {object} service.FormResponse "Create form"
// @Security BearerAuth
// @Router /organizations/create [get]
func (h *OrganizationHandler) GetCreateForm(c *gin.Context) {
	form, err := h.service.CreateForm(c.Request.Context(), auth.GetIdentityStatus(c))
	if err != nil {
		respondError(c, err, "Failed to render organization form")
		return
	}

	c.JSON(http.StatusOK, form)
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create an organization owned by the signed-in user
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} models.Organization "Successfully created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Organization already exists"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	identity, _ := auth.GetIdentity(c)

	org, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete an organization
// @Tags organizations
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Organization deleted"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := parseID(c, "organization")
	if !ok {
		return
	}
	identity, _ := auth.GetIdentity(c)

	if err := h.service.Delete(c.Request.Context(), identity, id); err != nil {
		respondError(c, err, "Failed to delete organization")
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkDeleteOrganizations handles POST /api/v1/organizations/bulk-delete
// @Summary Delete selected organizations
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body service.BulkDeleteRequest true "Selected organization IDs"
// @Success 200 {object} service.BulkDeleteResponse "Deleted and failed organizations"
// @Failure 400 {object} ErrorResponse "No organizations selected"
// @Security BearerAuth
// @Router /organizations/bulk-delete [post]
func (h *OrganizationHandler) BulkDeleteOrganizations(c *gin.Context) {
	var req service.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	identity, _ := auth.GetIdentity(c)

	resp, err := h.service.BulkDelete(c.Request.Context(), identity, req.IDs)
	if err != nil {
		respondError(c, err, "Failed to delete organizations")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportOrganizations handles GET /api/v1/organizations/export
// @Summary Export organizations as CSV
// @Tags organizations
// @Produce text/csv
// @Param ids query string false "Comma separated organization IDs to export; all when empty"
// @Success 200 {string} string "CSV export"
// @Failure 400 {object} ErrorResponse "Invalid ids parameter"
// @Security BearerAuth
// @Router /organizations/export [get]
func (h *OrganizationHandler) ExportOrganizations(c *gin.Context) {
	ids, ok := parseIDList(c)
	if !ok {
		return
	}
	identity, _ := auth.GetIdentity(c)

	body, err := h.service.Export(c.Request.Context(), identity, ids)
	if err != nil {
		respondError(c, err, "Failed to export organizations")
		return
	}

	sendCSV(c, "organizations.csv", body)
}

// GetChoices handles GET /api/v1/organizations/choices
// @Summary Organizations owned by the signed-in user
// @Description Choices offered by organization reference inputs
// @Tags organizations
// @Produce json
// @Success 200 {array} service.Choice "Owned organizations"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /organizations/choices [get]
func (h *OrganizationHandler) GetChoices(c *gin.Context) {
	identity, _ := auth.GetIdentity(c)

	choices, err := h.service.Choices(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to list organization choices")
		return
	}

	c.JSON(http.StatusOK, choices)
}
