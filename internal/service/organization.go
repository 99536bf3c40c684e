package service

import (
	"context"
	"fmt"

	dbmodels "nexodus-admin-backend/internal/database/models"
	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/models"
	"nexodus-admin-backend/internal/views"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const msgOrganizationCreated = "Organization created"

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	api       OrganizationAPI
	registry  *views.Registry
	renderer  *views.Renderer
	notifier  Notifier
	cache     ListCache
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	api OrganizationAPI,
	registry *views.Registry,
	renderer *views.Renderer,
	notifier Notifier,
	cache ListCache,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		api:       api,
		registry:  registry,
		renderer:  renderer,
		notifier:  notifier,
		cache:     cache,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"acme"`
	Description string `json:"description,omitempty" validate:"max=500" example:"Acme Corp"`
}

func (s *OrganizationService) organizations(ctx context.Context, identity *models.Identity) ([]models.Organization, error) {
	owner, cacheable := ownerKey(identity)
	if cacheable {
		if cached, ok := s.cache.Get(owner, ResourceOrganizations); ok {
			if orgs, ok := cached.([]models.Organization); ok {
				return orgs, nil
			}
		}
	}

	orgs, err := s.api.ListOrganizations(ctx, models.OrganizationFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	if cacheable {
		s.cache.Put(owner, ResourceOrganizations, orgs)
	}
	return orgs, nil
}

// List renders the organization list
func (s *OrganizationService) List(ctx context.Context, identity *models.Identity) (*ListResponse, error) {
	orgs, err := s.organizations(ctx, identity)
	if err != nil {
		return nil, err
	}

	view := s.registry.MustView(ResourceOrganizations, views.KindList)
	rows, err := s.renderer.Rows(view, selectRecords(orgs, nil, organizationID), identity)
	if err != nil {
		return nil, err
	}
	return &ListResponse{View: view, Rows: rows, Total: len(rows)}, nil
}

// Get renders one organization
func (s *OrganizationService) Get(ctx context.Context, identity *models.Identity, id uuid.UUID) (*ShowResponse, error) {
	org, err := s.api.GetOrganization(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrOrganizationNotFound)
	}

	view := s.registry.MustView(ResourceOrganizations, views.KindShow)
	row, err := s.renderer.Row(view, *org, identity)
	if err != nil {
		return nil, err
	}
	return &ShowResponse{View: view, Row: row}, nil
}

// CreateForm returns the organization create form. It has no identity dependent inputs.
func (s *OrganizationService) CreateForm(ctx context.Context, status models.IdentityStatus) (*FormResponse, error) {
	return &FormResponse{
		Resource: ResourceOrganizations,
		Ready:    true,
		View:     s.registry.MustView(ResourceOrganizations, views.KindCreate),
	}, nil
}

// Create creates an organization owned by identity
func (s *OrganizationService) Create(ctx context.Context, identity *models.Identity, req *CreateOrganizationRequest) (*models.Organization, error) {
	if identity == nil {
		return nil, apperrors.ErrIdentityRequired
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	created, err := s.api.CreateOrganization(ctx, models.AddOrganization{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.cache.Refresh(ResourceOrganizations)
	s.notifier.Notify(ctx, identity, Notice{Type: dbmodels.NotificationInfo, Message: msgOrganizationCreated})
	return created, nil
}

// Delete deletes an organization
func (s *OrganizationService) Delete(ctx context.Context, identity *models.Identity, id uuid.UUID) error {
	if err := s.api.DeleteOrganization(ctx, id); err != nil {
		return notFoundAs(err, apperrors.ErrOrganizationNotFound)
	}
	s.refreshAfterDelete()
	return nil
}

// BulkDelete deletes the selected organizations
func (s *OrganizationService) BulkDelete(ctx context.Context, identity *models.Identity, ids []uuid.UUID) (*BulkDeleteResponse, error) {
	resp, err := bulkDelete(ids, func(id uuid.UUID) error {
		return notFoundAs(s.api.DeleteOrganization(ctx, id), apperrors.ErrOrganizationNotFound)
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Deleted) > 0 {
		s.refreshAfterDelete()
	}
	return resp, nil
}

// refreshAfterDelete drops cached invitations too, since those of a deleted organization are gone
func (s *OrganizationService) refreshAfterDelete() {
	s.cache.Refresh(ResourceOrganizations)
	s.cache.Refresh(ResourceInvitations)
}

// Export returns the listed organizations, or the selected ones when ids is not empty, as CSV
func (s *OrganizationService) Export(ctx context.Context, identity *models.Identity, ids []uuid.UUID) ([]byte, error) {
	orgs, err := s.organizations(ctx, identity)
	if err != nil {
		return nil, err
	}
	view := s.registry.MustView(ResourceOrganizations, views.KindList)
	return s.renderer.ExportCSV(view, selectRecords(orgs, ids, organizationID))
}

// Choices lists the organizations identity owns, as offered by reference inputs
func (s *OrganizationService) Choices(ctx context.Context, identity *models.Identity) ([]Choice, error) {
	if identity == nil {
		return nil, apperrors.ErrIdentityRequired
	}
	return ownedOrganizationChoices(ctx, s.api, identity.ID)
}

func organizationID(o models.Organization) uuid.UUID { return o.ID }

var _ OrganizationServiceInterface = (*OrganizationService)(nil)
