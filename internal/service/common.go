package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/models"
	"nexodus-admin-backend/internal/upstream"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validationError converts validator failures into an apperrors.ValidationError naming
// the first offending field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("validation failed: %w",
			apperrors.NewValidationError(strings.ToLower(fe.Field()), describeTag(fe)))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must have at least " + fe.Param() + " entries"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// notFoundAs replaces an upstream 404 with notFound
func notFoundAs(err error, notFound error) error {
	if errors.Is(err, upstream.ErrNotFound) {
		return notFound
	}
	return err
}

func ownerKey(identity *models.Identity) (string, bool) {
	if identity == nil {
		return "", false
	}
	return identity.ID.String(), true
}

// ownedOrganizationChoices lists the organizations owned by ownerID. Organizations the
// API returns despite the filter are dropped.
func ownedOrganizationChoices(ctx context.Context, api OrganizationAPI, ownerID uuid.UUID) ([]Choice, error) {
	filter := models.OrganizationFilter{OwnerID: &ownerID}
	orgs, err := api.ListOrganizations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	choices := make([]Choice, 0, len(orgs))
	for _, org := range orgs {
		if !filter.Matches(org) {
			continue
		}
		choices = append(choices, Choice{ID: org.ID, Name: org.Name})
	}
	return choices, nil
}

// bulkDelete deletes every id with del, recording per-record failures
func bulkDelete(ids []uuid.UUID, del func(uuid.UUID) error) (*BulkDeleteResponse, error) {
	if len(ids) == 0 {
		return nil, apperrors.ErrNoRecordsSelected
	}

	resp := &BulkDeleteResponse{Deleted: make([]uuid.UUID, 0, len(ids))}
	for _, id := range ids {
		if err := del(id); err != nil {
			if resp.Failed == nil {
				resp.Failed = make(map[string]string)
			}
			resp.Failed[id.String()] = err.Error()
			continue
		}
		resp.Deleted = append(resp.Deleted, id)
	}
	return resp, nil
}

func selectRecords[T any](records []T, ids []uuid.UUID, idOf func(T) uuid.UUID) []interface{} {
	selected := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	out := make([]interface{}, 0, len(records))
	for _, r := range records {
		if len(ids) > 0 && !selected[idOf(r)] {
			continue
		}
		out = append(out, r)
	}
	return out
}
