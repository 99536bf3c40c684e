package handlers

import (
	"errors"
	"io"
	"net/http"

	"nexodus-admin-backend/internal/auth"
	"nexodus-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for invitations
type InvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// ListInvitations handles GET /api/v1/invitations
// @Summary List invitations
// @Description Render the invitation list view. Rows addressed to the signed-in user carry the accept action.
// @Tags invitations
// @Produce json
// @Success 200 {object} service.ListResponse "Rendered invitation list"
// @Failure 502 {object} ErrorResponse "Nexodus API failure"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	identity, _ := auth.GetIdentity(c)

	resp, err := h.service.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to list invitations")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInvitation handles GET /api/v1/invitations/:id
// @Summary Get invitation by ID
// @Description Render the invitation show view
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.ShowResponse "Rendered invitation"
// @Failure 400 {object} ErrorResponse "Invalid invitation ID"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Security BearerAuth
// @Router /invitations/{id} [get]
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	id, ok := parseID(c, "invitation")
	if !ok {
		return
	}
	identity, _ := auth.GetIdentity(c)

	resp, err := h.service.Get(c.Request.Context(), identity, id)
	if err != nil {
		respondError(c, err, "Failed to get invitation")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCreateForm handles GET /api/v1/invitations/create
// @Summary Invitation create form
// @Description Render the invitation create form. Until the identity has loaded without error the form is an empty placeholder.
// @Tags invitations
// @Produce json
// @Success 200 {object} service.FormResponse "Create form"
// @Security BearerAuth
// @Router /invitations/create [get]
func (h *InvitationHandler) GetCreateForm(c *gin.Context) {
	form, err := h.service.CreateForm(c.Request.Context(), auth.GetIdentityStatus(c))
	if err != nil {
		respondError(c, err, "Failed to render invitation form")
		return
	}

	c.JSON(http.StatusOK, form)
}

// CreateInvitation handles POST /api/v1/invitations
// @Summary Create an invitation
// @Description Invite a user by email to an organization owned by the signed-in user
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.CreateInvitationRequest true "Invitation data"
// @Success 201 {object} models.Invitation "Created invitation"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Organization not owned"
// @Security BearerAuth
// @Router /invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	identity, _ := auth.GetIdentity(c)

	invitation, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err, "Failed to create invitation")
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// DeleteInvitation handles DELETE /api/v1/invitations/:id
// @Summary Delete an invitation
// @Tags invitations
// @Param id path string true "Invitation ID (UUID)"
// @Success 204 "Invitation deleted"
// @Failure 400 {object} ErrorResponse "Invalid invitation ID"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Security BearerAuth
// @Router /invitations/{id} [delete]
func (h *InvitationHandler) DeleteInvitation(c *gin.Context) {
	id, ok := parseID(c, "invitation")
	if !ok {
		return
	}
	identity, _ := auth.GetIdentity(c)

	if err := h.service.Delete(c.Request.Context(), identity, id); err != nil {
		respondError(c, err, "Failed to delete invitation")
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkDeleteInvitations handles POST /api/v1/invitations/bulk-delete
// @Summary Delete selected invitations
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body service.BulkDeleteRequest true "Selected invitation IDs"
// @Success 200 {object} service.BulkDeleteResponse "Deleted and failed invitations"
// @Failure 400 {object} ErrorResponse "No invitations selected"
// @Security BearerAuth
// @Router /invitations/bulk-delete [post]
func (h *InvitationHandler) BulkDeleteInvitations(c *gin.Context) {
	var req service.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	identity, _ := auth.GetIdentity(c)

	resp, err := h.service.BulkDelete(c.Request.Context(), identity, req.IDs)
	if err != nil {
		respondError(c, err, "Failed to delete invitations")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportInvitations handles GET /api/v1/invitations/export
// @Summary Export invitations as CSV
// @Tags invitations
// @Produce text/csv
// @Param ids query string false "Comma separated invitation IDs to export; all when empty"
// @Success 200 {string} string "CSV export"
// @Failure 400 {object} ErrorResponse "Invalid ids parameter"
// @Security BearerAuth
// @Router /invitations/export [get]
func (h *InvitationHandler) ExportInvitations(c *gin.Context) {
	ids, ok := parseIDList(c)
	if !ok {
		return
	}
	identity, _ := auth.GetIdentity(c)

	body, err := h.service.Export(c.Request.Context(), identity, ids)
	if err != nil {
		respondError(c, err, "Failed to export invitations")
		return
	}

	sendCSV(c, "invitations.csv", body)
}

// AcceptInvitation handles POST /api/v1/invitations/accept
// @Summary Accept an invitation
// @Description Accept the invitation the action was triggered on. The outcome is reported as notifications and a refresh directive; failures of the nexodus API are warnings, not HTTP errors.
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body service.AcceptInvitationRequest false "Record the action was triggered on"
// @Success 200 {object} service.ActionResult "Action outcome"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /invitations/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	// an empty body is an action triggered without a record
	var req service.AcceptInvitationRequest
	if c.Request.Body != nil {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
			return
		}
	}
	identity, _ := auth.GetIdentity(c)

	c.JSON(http.StatusOK, h.service.Accept(c.Request.Context(), identity, req.Record))
}
