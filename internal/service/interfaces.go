package service

import (
	"context"
	"encoding/json"

	"nexodus-admin-backend/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// InvitationAPI is the part of the nexodus API behind the invitation screens
type InvitationAPI interface {
	ListInvitations(ctx context.Context) ([]models.Invitation, error)
	GetInvitation(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	CreateInvitation(ctx context.Context, invitation models.AddInvitation) (*models.Invitation, error)
	DeleteInvitation(ctx context.Context, id uuid.UUID) error
	AcceptInvitation(ctx context.Context, id uuid.UUID) (json.RawMessage, error)
}

// OrganizationAPI is the part of the nexodus API behind the organization screens
type OrganizationAPI interface {
	ListOrganizations(ctx context.Context, filter models.OrganizationFilter) ([]models.Organization, error)
	GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	CreateOrganization(ctx context.Context, org models.AddOrganization) (*models.Organization, error)
	DeleteOrganization(ctx context.Context, id uuid.UUID) error
}

// Notifier delivers user-facing notices. Delivery is best effort and never fails the
// operation that raised the notice.
type Notifier interface {
	Notify(ctx context.Context, recipient *models.Identity, notice Notice)
}

// Refresher invalidates what the console currently shows for a resource
type Refresher interface {
	Refresh(resource string)
}

// ListCache holds list results per owner and resource
type ListCache interface {
	Refresher
	Get(owner, resource string) (interface{}, bool)
	Put(owner, resource string, records interface{})
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	List(ctx context.Context, identity *models.Identity) (*ListResponse, error)
	Get(ctx context.Context, identity *models.Identity, id uuid.UUID) (*ShowResponse, error)
	CreateForm(ctx context.Context, status models.IdentityStatus) (*FormResponse, error)
	Create(ctx context.Context, identity *models.Identity, req *CreateInvitationRequest) (*models.Invitation, error)
	Delete(ctx context.Context, identity *models.Identity, id uuid.UUID) error
	BulkDelete(ctx context.Context, identity *models.Identity, ids []uuid.UUID) (*BulkDeleteResponse, error)
	Export(ctx context.Context, identity *models.Identity, ids []uuid.UUID) ([]byte, error)
	Accept(ctx context.Context, identity *models.Identity, record *models.Invitation) *ActionResult
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	List(ctx context.Context, identity *models.Identity) (*ListResponse, error)
	Get(ctx context.Context, identity *models.Identity, id uuid.UUID) (*ShowResponse, error)
	CreateForm(ctx context.Context, status models.IdentityStatus) (*FormResponse, error)
	Create(ctx context.Context, identity *models.Identity, req *CreateOrganizationRequest) (*models.Organization, error)
	Delete(ctx context.Context, identity *models.Identity, id uuid.UUID) error
	BulkDelete(ctx context.Context, identity *models.Identity, ids []uuid.UUID) (*BulkDeleteResponse, error)
	Export(ctx context.Context, identity *models.Identity, ids []uuid.UUID) ([]byte, error)
	Choices(ctx context.Context, identity *models.Identity) ([]Choice, error)
}

// NotificationServiceInterface defines the interface for the notification feed
type NotificationServiceInterface interface {
	Notifier
	Drain(ctx context.Context, userID uuid.UUID) ([]NotificationResponse, error)
}
