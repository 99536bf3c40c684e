package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	dbmodels "nexodus-admin-backend/internal/database/models"
	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/mocks"
	"nexodus-admin-backend/internal/models"
	"nexodus-admin-backend/internal/service"
	"nexodus-admin-backend/internal/upstream"
	"nexodus-admin-backend/internal/views"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockAPI             *mocks.MockOrganizationAPI
	mockNotifier        *mocks.MockNotifier
	mockCache           *mocks.MockListCache
	organizationService *service.OrganizationService
	identity            *models.Identity
	ctx                 context.Context
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAPI = mocks.NewMockOrganizationAPI(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.mockCache = mocks.NewMockListCache(suite.ctrl)

	registry, err := views.NewRegistry()
	suite.Require().NoError(err)

	suite.organizationService = service.NewOrganizationService(
		suite.mockAPI,
		registry,
		views.NewRenderer(),
		suite.mockNotifier,
		suite.mockCache,
		validator.New(),
	)
	suite.identity = &models.Identity{ID: userSeven, Username: "alice"}
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestList renders owner references
func (suite *OrganizationServiceTestSuite) TestList() {
	orgs := []models.Organization{
		{ID: uuid.New(), Name: "acme", Description: "Acme Corp", OwnerID: userSeven},
	}
	suite.mockCache.EXPECT().Get(userSeven.String(), "organizations").Return(nil, false)
	suite.mockAPI.EXPECT().ListOrganizations(gomock.Any(), models.OrganizationFilter{}).Return(orgs, nil)
	suite.mockCache.EXPECT().Put(userSeven.String(), "organizations", orgs)

	resp, err := suite.organizationService.List(suite.ctx, suite.identity)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Rows, 1)
	assert.Equal(suite.T(), "acme", resp.Rows[0].Cells[0].Value)
	require.NotNil(suite.T(), resp.Rows[0].Cells[2].Reference)
	assert.Equal(suite.T(), "users", resp.Rows[0].Cells[2].Reference.Resource)
	assert.Equal(suite.T(), userSeven.String(), resp.Rows[0].Cells[2].Reference.ID)
}

// TestGetNotFound maps upstream 404 onto ErrOrganizationNotFound
func (suite *OrganizationServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.mockAPI.EXPECT().
		GetOrganization(gomock.Any(), id).
		Return(nil, &upstream.APIError{StatusCode: http.StatusNotFound})

	_, err := suite.organizationService.Get(suite.ctx, suite.identity, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestGet renders the show view
func (suite *OrganizationServiceTestSuite) TestGet() {
	id := uuid.New()
	suite.mockAPI.EXPECT().
		GetOrganization(gomock.Any(), id).
		Return(&models.Organization{ID: id, Name: "acme", Description: "Acme Corp"}, nil)

	resp, err := suite.organizationService.Get(suite.ctx, suite.identity, id)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), id.String(), resp.Row.ID)
	assert.Len(suite.T(), resp.Row.Cells, 3)
}

// TestCreateForm is always ready
func (suite *OrganizationServiceTestSuite) TestCreateForm() {
	form, err := suite.organizationService.CreateForm(suite.ctx, models.IdentityStatus{})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), form.Ready)
	assert.Len(suite.T(), form.View.Inputs, 2)
}

// TestCreate creates and refreshes
func (suite *OrganizationServiceTestSuite) TestCreate() {
	created := &models.Organization{ID: uuid.New(), Name: "acme", OwnerID: userSeven}
	suite.mockAPI.EXPECT().
		CreateOrganization(gomock.Any(), models.AddOrganization{Name: "acme", Description: "Acme Corp"}).
		Return(created, nil)
	suite.mockCache.EXPECT().Refresh("organizations").Times(1)
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), suite.identity, service.Notice{Type: dbmodels.NotificationInfo, Message: "Organization created"})

	resp, err := suite.organizationService.Create(suite.ctx, suite.identity, &service.CreateOrganizationRequest{
		Name:        "acme",
		Description: "Acme Corp",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), created, resp)
}

// TestCreateValidationError tests creating an organization without a name
func (suite *OrganizationServiceTestSuite) TestCreateValidationError() {
	resp, err := suite.organizationService.Create(suite.ctx, suite.identity, &service.CreateOrganizationRequest{})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateAPIError wraps the upstream failure
func (suite *OrganizationServiceTestSuite) TestCreateAPIError() {
	suite.mockAPI.EXPECT().
		CreateOrganization(gomock.Any(), gomock.Any()).
		Return(nil, &upstream.APIError{StatusCode: http.StatusConflict, Message: "organization already exists"})

	_, err := suite.organizationService.Create(suite.ctx, suite.identity, &service.CreateOrganizationRequest{Name: "acme"})

	assert.ErrorIs(suite.T(), err, upstream.ErrConflict)
	assert.Contains(suite.T(), err.Error(), "organization already exists")
}

// TestDelete refreshes organizations and invitations after deleting
func (suite *OrganizationServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockAPI.EXPECT().DeleteOrganization(gomock.Any(), id).Return(nil)
	suite.mockCache.EXPECT().Refresh("organizations").Times(1)
	suite.mockCache.EXPECT().Refresh("invitations").Times(1)

	assert.NoError(suite.T(), suite.organizationService.Delete(suite.ctx, suite.identity, id))
}

// TestBulkDeletePartial refreshes both lists once when something was deleted
func (suite *OrganizationServiceTestSuite) TestBulkDeletePartial() {
	deleted := uuid.New()
	denied := uuid.New()
	suite.mockAPI.EXPECT().DeleteOrganization(gomock.Any(), deleted).Return(nil)
	suite.mockAPI.EXPECT().
		DeleteOrganization(gomock.Any(), denied).
		Return(&upstream.APIError{StatusCode: http.StatusForbidden, Message: "not the owner"})
	suite.mockCache.EXPECT().Refresh("organizations").Times(1)
	suite.mockCache.EXPECT().Refresh("invitations").Times(1)

	resp, err := suite.organizationService.BulkDelete(suite.ctx, suite.identity, []uuid.UUID{deleted, denied})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{deleted}, resp.Deleted)
	assert.Contains(suite.T(), resp.Failed, denied.String())
}

// TestBulkDeleteAllFailed does not refresh
func (suite *OrganizationServiceTestSuite) TestBulkDeleteAllFailed() {
	id := uuid.New()
	suite.mockAPI.EXPECT().
		DeleteOrganization(gomock.Any(), id).
		Return(&upstream.APIError{StatusCode: http.StatusForbidden, Message: "not the owner"})

	resp, err := suite.organizationService.BulkDelete(suite.ctx, suite.identity, []uuid.UUID{id})

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.Deleted)
	assert.Contains(suite.T(), resp.Failed[id.String()], "not the owner")
}

// TestExport writes every listed organization
func (suite *OrganizationServiceTestSuite) TestExport() {
	orgs := []models.Organization{
		{ID: uuid.New(), Name: "acme", Description: "Acme Corp", OwnerID: userSeven},
		{ID: uuid.New(), Name: "globex", OwnerID: userNine},
	}
	suite.mockCache.EXPECT().Get(userSeven.String(), "organizations").Return(orgs, true)

	out, err := suite.organizationService.Export(suite.ctx, suite.identity, nil)

	require.NoError(suite.T(), err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(suite.T(), lines, 3)
	assert.Equal(suite.T(), "Name,Description,Owner", lines[0])
	assert.Equal(suite.T(), "acme,Acme Corp,"+userSeven.String(), lines[1])
}

// TestChoices lists only owned organizations
func (suite *OrganizationServiceTestSuite) TestChoices() {
	owned := models.Organization{ID: uuid.New(), Name: "mine", OwnerID: userSeven}
	suite.mockAPI.EXPECT().
		ListOrganizations(gomock.Any(), models.OrganizationFilter{OwnerID: &userSeven}).
		Return([]models.Organization{owned, {ID: uuid.New(), Name: "theirs", OwnerID: userNine}}, nil)

	choices, err := suite.organizationService.Choices(suite.ctx, suite.identity)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.Choice{{ID: owned.ID, Name: "mine"}}, choices)
}

// TestChoicesWithoutIdentity requires an identity
func (suite *OrganizationServiceTestSuite) TestChoicesWithoutIdentity() {
	_, err := suite.organizationService.Choices(suite.ctx, nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrIdentityRequired)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
