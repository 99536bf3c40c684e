package handlers

import (
	"net/http"

	"nexodus-admin-backend/internal/auth"
	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification feed
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// DrainNotifications handles GET /api/v1/notifications
// @Summary Pending notifications
// @Description Return the signed-in user's pending notifications, oldest first. Each notification is returned once.
// @Tags notifications
// @Produce json
// @Success 200 {array} service.NotificationResponse "Pending notifications"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) DrainNotifications(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrIdentityRequired, "Authentication required")
		return
	}

	notifications, err := h.service.Drain(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err, "Failed to load notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}
