package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/logger"
	"nexodus-admin-backend/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty" example:"invitation not found"`
}

// errorStatus maps an error onto the HTTP status reported to the console
func errorStatus(err error) int {
	switch {
	case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrNoRecordsSelected), errors.Is(err, upstream.ErrBadRequest):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err), errors.Is(err, upstream.ErrUnauthorized):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err), errors.Is(err, upstream.ErrForbidden):
		return http.StatusForbidden
	case apperrors.IsNotFound(err), errors.Is(err, upstream.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, upstream.ErrConflict):
		return http.StatusConflict
	}

	var apiErr *upstream.APIError
	var urlErr *url.Error
	if errors.As(err, &apiErr) || errors.As(err, &urlErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError writes err as an ErrorResponse. message is the error for statuses that
// do not speak for themselves.
func respondError(c *gin.Context, err error, message string) {
	status := errorStatus(err)
	_ = c.Error(err)

	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		logger.WithContext(c.Request.Context()).WithError(err).Error(message)
		c.JSON(status, ErrorResponse{Error: message, Details: err.Error()})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// parseIDList parses a comma separated list of ids from the "ids" query parameter
func parseIDList(c *gin.Context) ([]uuid.UUID, bool) {
	raw := c.Query("ids")
	if raw == "" {
		return nil, true
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ids parameter", Details: err.Error()})
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func sendCSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
