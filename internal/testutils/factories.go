package testutils

import (
	"time"

	dbmodels "nexodus-admin-backend/internal/database/models"
	"nexodus-admin-backend/internal/models"

	"github.com/google/uuid"
)

// IdentityFactory provides methods to create test Identity data
type IdentityFactory struct{}

// NewIdentityFactory creates a new IdentityFactory
func NewIdentityFactory() *IdentityFactory {
	return &IdentityFactory{}
}

// Create creates a test Identity with default values
func (f *IdentityFactory) Create() *models.Identity {
	return &models.Identity{
		ID:       uuid.New(),
		Username: "alice",
		FullName: "Alice Doe",
	}
}

// Ready wraps a fresh identity in a ready status
func (f *IdentityFactory) Ready() models.IdentityStatus {
	return models.IdentityStatus{Identity: f.Create()}
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a test Invitation addressed to nobody in particular
func (f *InvitationFactory) Create() *models.Invitation {
	orgID := uuid.New()
	return &models.Invitation{
		ID:             uuid.New(),
		Email:          "bob@example.com",
		OrganizationID: orgID,
		Organization:   &models.OrganizationRef{ID: orgID, Name: "acme"},
		From:           &models.UserRef{ID: uuid.New(), Username: "carol", FullName: "Carol Doe"},
		ExpiresAt:      time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second),
	}
}

// For creates a test Invitation addressed to identity
func (f *InvitationFactory) For(identity *models.Identity) *models.Invitation {
	inv := f.Create()
	id := identity.ID
	inv.UserID = &id
	return inv
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		ID:          uuid.New(),
		Name:        "acme",
		Description: "A test organization for testing purposes",
		OwnerID:     uuid.New(),
	}
}

// OwnedBy creates a test Organization owned by identity
func (f *OrganizationFactory) OwnedBy(identity *models.Identity) *models.Organization {
	org := f.Create()
	org.OwnerID = identity.ID
	return org
}

// NotificationFactory provides methods to create test Notification rows
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates an undelivered info notification for userID
func (f *NotificationFactory) Create(userID uuid.UUID) *dbmodels.Notification {
	return &dbmodels.Notification{
		UserID:  userID,
		Type:    dbmodels.NotificationInfo,
		Message: "Invitation accepted",
	}
}

// Warning creates an undelivered warning notification for userID
func (f *NotificationFactory) Warning(userID uuid.UUID, message string) *dbmodels.Notification {
	n := f.Create(userID)
	n.Type = dbmodels.NotificationWarning
	n.Message = message
	return n
}

// FactorySet groups every factory a test may need
type FactorySet struct {
	Identity     *IdentityFactory
	Invitation   *InvitationFactory
	Organization *OrganizationFactory
	Notification *NotificationFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Identity:     NewIdentityFactory(),
		Invitation:   NewInvitationFactory(),
		Organization: NewOrganizationFactory(),
		Notification: NewNotificationFactory(),
	}
}
