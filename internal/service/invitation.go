package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	dbmodels "nexodus-admin-backend/internal/database/models"
	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/logger"
	"nexodus-admin-backend/internal/models"
	"nexodus-admin-backend/internal/upstream"
	"nexodus-admin-backend/internal/views"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AcceptInvitationAction is the record action accepting an invitation
const AcceptInvitationAction = "accept_invitation"

const (
	msgNoRecordSelected  = "No record selected for accepting the invitation"
	msgInvitationAccept  = "Invitation accepted"
	msgAcceptFailed      = "Error accepting invitation"
	msgInvitationCreated = "Invitation created"
)

// InvitationService handles business logic for invitations
type InvitationService struct {
	api       InvitationAPI
	orgs      OrganizationAPI
	registry  *views.Registry
	renderer  *views.Renderer
	notifier  Notifier
	cache     ListCache
	validator *validator.Validate
}

// NewInvitationService creates a new invitation service and registers the accept
// action's visibility on renderer
func NewInvitationService(
	api InvitationAPI,
	orgs OrganizationAPI,
	registry *views.Registry,
	renderer *views.Renderer,
	notifier Notifier,
	cache ListCache,
	validator *validator.Validate,
) *InvitationService {
	renderer.RegisterAction(AcceptInvitationAction, CanAcceptRecord)
	return &InvitationService{
		api:       api,
		orgs:      orgs,
		registry:  registry,
		renderer:  renderer,
		notifier:  notifier,
		cache:     cache,
		validator: validator,
	}
}

// CreateInvitationRequest represents the request to create an invitation
type CreateInvitationRequest struct {
	Email          string     `json:"email" validate:"required,email" example:"bob@example.com"`
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// AcceptInvitationRequest carries the record the accept action was triggered on
type AcceptInvitationRequest struct {
	Record *models.Invitation `json:"record"`
}

// CanAcceptRecord is the visibility predicate of the accept action. It accepts
// invitation values and pointers.
func CanAcceptRecord(record interface{}, identity *models.Identity) bool {
	switch r := record.(type) {
	case models.Invitation:
		return models.CanAcceptInvitation(&r, identity)
	case *models.Invitation:
		return models.CanAcceptInvitation(r, identity)
	default:
		return false
	}
}

func (s *InvitationService) invitations(ctx context.Context, identity *models.Identity) ([]models.Invitation, error) {
	owner, cacheable := ownerKey(identity)
	if cacheable {
		if cached, ok := s.cache.Get(owner, ResourceInvitations); ok {
			if invitations, ok := cached.([]models.Invitation); ok {
				return invitations, nil
			}
		}
	}

	invitations, err := s.api.ListInvitations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	if cacheable {
		s.cache.Put(owner, ResourceInvitations, invitations)
	}
	return invitations, nil
}

// List renders the invitation list. Rows carry the accept action only for invitations
// addressed to identity.
func (s *InvitationService) List(ctx context.Context, identity *models.Identity) (*ListResponse, error) {
	invitations, err := s.invitations(ctx, identity)
	if err != nil {
		return nil, err
	}

	view := s.registry.MustView(ResourceInvitations, views.KindList)
	rows, err := s.renderer.Rows(view, selectRecords(invitations, nil, invitationID), identity)
	if err != nil {
		return nil, err
	}

	return &ListResponse{View: view, Rows: rows, Total: len(rows)}, nil
}

// Get renders one invitation
func (s *InvitationService) Get(ctx context.Context, identity *models.Identity, id uuid.UUID) (*ShowResponse, error) {
	invitation, err := s.api.GetInvitation(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrInvitationNotFound)
	}

	view := s.registry.MustView(ResourceInvitations, views.KindShow)
	row, err := s.renderer.Row(view, *invitation, identity)
	if err != nil {
		return nil, err
	}
	return &ShowResponse{View: view, Row: row}, nil
}

// CreateForm returns the invitation create form. Until the identity is ready the form is
// a placeholder without fields; once ready its organization input only offers the
// organizations the identity owns.
func (s *InvitationService) CreateForm(ctx context.Context, status models.IdentityStatus) (*FormResponse, error) {
	if !status.Ready() {
		return &FormResponse{Resource: ResourceInvitations, Ready: false}, nil
	}

	view := s.registry.MustView(ResourceInvitations, views.KindCreate).BindIdentity(status.Identity)
	form := &FormResponse{
		Resource: ResourceInvitations,
		Ready:    true,
		View:     view,
		Choices:  make(map[string][]Choice),
	}

	for _, in := range view.Inputs {
		if in.Type != views.InputReference || in.Reference != ResourceOrganizations {
			continue
		}
		ownerID := status.Identity.ID
		if raw, ok := in.Filter["owner_id"]; ok {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("input %s has invalid owner filter %q: %w", in.Name, raw, err)
			}
			ownerID = parsed
		}
		choices, err := ownedOrganizationChoices(ctx, s.orgs, ownerID)
		if err != nil {
			return nil, err
		}
		form.Choices[in.Name] = choices
	}

	return form, nil
}

// Create invites a user to an organization owned by identity
func (s *InvitationService) Create(ctx context.Context, identity *models.Identity, req *CreateInvitationRequest) (*models.Invitation, error) {
	if identity == nil {
		return nil, apperrors.ErrIdentityRequired
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	org, err := s.orgs.GetOrganization(ctx, req.OrganizationID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, apperrors.NewValidationError("organization_id", "organization does not exist")
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if org.OwnerID != identity.ID {
		return nil, apperrors.ErrOrganizationNotOwned
	}

	created, err := s.api.CreateInvitation(ctx, models.AddInvitation{
		Email:          req.Email,
		OrganizationID: req.OrganizationID,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.cache.Refresh(ResourceInvitations)
	s.notifier.Notify(ctx, identity, Notice{Type: dbmodels.NotificationInfo, Message: msgInvitationCreated})
	return created, nil
}

// Delete deletes an invitation
func (s *InvitationService) Delete(ctx context.Context, identity *models.Identity, id uuid.UUID) error {
	if err := s.api.DeleteInvitation(ctx, id); err != nil {
		return notFoundAs(err, apperrors.ErrInvitationNotFound)
	}
	s.cache.Refresh(ResourceInvitations)
	return nil
}

// BulkDelete deletes the selected invitations
func (s *InvitationService) BulkDelete(ctx context.Context, identity *models.Identity, ids []uuid.UUID) (*BulkDeleteResponse, error) {
	resp, err := bulkDelete(ids, func(id uuid.UUID) error {
		return notFoundAs(s.api.DeleteInvitation(ctx, id), apperrors.ErrInvitationNotFound)
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Deleted) > 0 {
		s.cache.Refresh(ResourceInvitations)
	}
	return resp, nil
}

// Export returns the listed invitations, or the selected ones when ids is not empty, as CSV
func (s *InvitationService) Export(ctx context.Context, identity *models.Identity, ids []uuid.UUID) ([]byte, error) {
	invitations, err := s.invitations(ctx, identity)
	if err != nil {
		return nil, err
	}
	view := s.registry.MustView(ResourceInvitations, views.KindList)
	return s.renderer.ExportCSV(view, selectRecords(invitations, ids, invitationID))
}

// Accept accepts record on behalf of identity. The outcome is reported as notices, also
// sent through the notifier, and a refresh directive on success. The API is called at
// most once.
func (s *InvitationService) Accept(ctx context.Context, identity *models.Identity, record *models.Invitation) *ActionResult {
	log := logger.WithContext(ctx)

	if record == nil || record.ID == uuid.Nil {
		log.Warn("Record or record ID is undefined")
		return s.result(ctx, identity, Notice{Type: dbmodels.NotificationWarning, Message: msgNoRecordSelected}, false)
	}

	log = log.WithField("invitation_id", record.ID)
	log.Info("Attempting to accept invitation")

	response, err := s.api.AcceptInvitation(ctx, record.ID)
	if err != nil {
		log.WithError(err).Warn("Error accepting invitation")
		return s.result(ctx, identity, Notice{Type: dbmodels.NotificationWarning, Message: acceptErrorMessage(err)}, false)
	}

	log.WithField("response", string(response)).Debug("Invitation accept response")
	// accepting joins an organization, so both lists change
	s.cache.Refresh(ResourceInvitations)
	s.cache.Refresh(ResourceOrganizations)

	result := s.result(ctx, identity, Notice{Type: dbmodels.NotificationInfo, Message: msgInvitationAccept}, true)
	if json.Valid(response) {
		result.Response = response
	}
	return result
}

func (s *InvitationService) result(ctx context.Context, identity *models.Identity, notice Notice, refresh bool) *ActionResult {
	s.notifier.Notify(ctx, identity, notice)
	return &ActionResult{Notifications: []Notice{notice}, Refresh: refresh}
}

// acceptErrorMessage appends the failure's message when it has one.
// Transport errors are reduced to their cause so the backend URL stays out of the notice.
func acceptErrorMessage(err error) string {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message == "" {
			return msgAcceptFailed
		}
		return msgAcceptFailed + ": " + apiErr.Message
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	if err.Error() == "" {
		return msgAcceptFailed
	}
	return msgAcceptFailed + ": " + err.Error()
}

func invitationID(i models.Invitation) uuid.UUID { return i.ID }

var _ InvitationServiceInterface = (*InvitationService)(nil)
