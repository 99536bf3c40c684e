package service

import (
	"encoding/json"
	"time"

	dbmodels "nexodus-admin-backend/internal/database/models"
	"nexodus-admin-backend/internal/views"

	"github.com/google/uuid"
)

const (
	ResourceInvitations   = "invitations"
	ResourceOrganizations = "organizations"
)

// Notice is a message raised for the signed-in user
type Notice struct {
	Type    dbmodels.NotificationType `json:"type" example:"info"`
	Message string                    `json:"message" example:"Invitation accepted"`
}

// ActionResult is the outcome of a record action
type ActionResult struct {
	Notifications []Notice        `json:"notifications"`
	Refresh       bool            `json:"refresh"`            // the console should re-fetch the current view
	Response      json.RawMessage `json:"response,omitempty" swaggertype:"object"`
}

// ListResponse is a rendered list view
type ListResponse struct {
	View  *views.View `json:"view"`
	Rows  []views.Row `json:"rows"`
	Total int         `json:"total"`
}

// ShowResponse is a rendered show view
type ShowResponse struct {
	View *views.View `json:"view"`
	Row  *views.Row  `json:"row"`
}

// Choice is an option of a reference input
type Choice struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FormResponse is a create form. A form that is not ready carries no view and must be
// rendered as an empty placeholder.
type FormResponse struct {
	Resource string              `json:"resource"`
	Ready    bool                `json:"ready"`
	View     *views.View         `json:"view,omitempty"`
	Choices  map[string][]Choice `json:"choices,omitempty"` // by input name
}

// BulkDeleteRequest is the payload of a bulk delete
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// BulkDeleteResponse reports which records a bulk delete removed
type BulkDeleteResponse struct {
	Deleted []uuid.UUID       `json:"deleted"`
	Failed  map[string]string `json:"failed,omitempty"` // error by record id
}

// NotificationResponse is a delivered notification
type NotificationResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Type      dbmodels.NotificationType `json:"type"`
	Message   string                    `json:"message"`
	CreatedAt time.Time                 `json:"created_at"`
}
