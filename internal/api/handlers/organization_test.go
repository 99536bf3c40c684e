package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/mocks"
	"nexodus-admin-backend/internal/models"
	"nexodus-admin-backend/internal/service"
	"nexodus-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
	factories               *testutils.FactorySet
	identity                *models.Identity
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)
	suite.factories = testutils.NewFactorySet()

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.identity = suite.factories.Identity.Create()
	suite.httpSuite.SignIn(suite.identity)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("/create", suite.handler.GetCreateForm)
		orgs.GET("/choices", suite.handler.GetChoices)
		orgs.GET("/export", suite.handler.ExportOrganizations)
		orgs.POST("/bulk-delete", suite.handler.BulkDeleteOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	suite.mockOrganizationService.EXPECT().
		List(gomock.Any(), suite.identity).
		Return(&service.ListResponse{Total: 2}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations", nil)

	var response service.ListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Total)
}

func (suite *OrganizationHandlerTestSuite) TestListOrganizationsUnexpectedError() {
	suite.mockOrganizationService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to list organizations")
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	id := uuid.New()
	suite.mockOrganizationService.EXPECT().
		Get(gomock.Any(), suite.identity, id).
		Return(&service.ShowResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/invalid-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	id := uuid.New()
	suite.mockOrganizationService.EXPECT().
		Get(gomock.Any(), gomock.Any(), id).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

func (suite *OrganizationHandlerTestSuite) TestGetCreateForm() {
	suite.mockOrganizationService.EXPECT().
		CreateForm(gomock.Any(), gomock.Any()).
		Return(&service.FormResponse{Resource: service.ResourceOrganizations, Ready: true}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/create", nil)

	var response service.FormResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), service.ResourceOrganizations, response.Resource)
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	created := suite.factories.Organization.OwnedBy(suite.identity)

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), suite.identity, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Identity, req *service.CreateOrganizationRequest) (*models.Organization, error) {
			assert.Equal(suite.T(), "acme", req.Name)
			assert.Equal(suite.T(), "Acme Corp", req.Description)
			return created, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", map[string]interface{}{
		"name":        "acme",
		"description": "Acme Corp",
	})

	var response models.Organization
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), created.ID, response.ID)
	assert.Equal(suite.T(), suite.identity.ID, response.OwnerID)
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationValidation() {
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "is required")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", map[string]interface{}{"name": ""})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "name - is required")
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidJSON() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", "not json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	id := uuid.New()
	suite.mockOrganizationService.EXPECT().
		Delete(gomock.Any(), suite.identity, id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/organizations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestDeleteOrganizationForbidden() {
	id := uuid.New()
	suite.mockOrganizationService.EXPECT().
		Delete(gomock.Any(), gomock.Any(), id).
		Return(apperrors.NewAuthorizationError("only the owner may delete an organization")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/organizations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "only the owner")
}

func (suite *OrganizationHandlerTestSuite) TestBulkDeleteOrganizations() {
	ok, failed := uuid.New(), uuid.New()
	suite.mockOrganizationService.EXPECT().
		BulkDelete(gomock.Any(), suite.identity, []uuid.UUID{ok, failed}).
		Return(&service.BulkDeleteResponse{
			Deleted: []uuid.UUID{ok},
			Failed:  map[string]string{failed.String(): "organization not found"},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations/bulk-delete", service.BulkDeleteRequest{IDs: []uuid.UUID{ok, failed}})

	var response service.BulkDeleteResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), []uuid.UUID{ok}, response.Deleted)
	assert.Contains(suite.T(), response.Failed, failed.String())
}

func (suite *OrganizationHandlerTestSuite) TestExportOrganizations() {
	suite.mockOrganizationService.EXPECT().
		Export(gomock.Any(), suite.identity, gomock.Nil()).
		Return([]byte("Name,Description,Owner\n"), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/export", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "organizations.csv")
	assert.Equal(suite.T(), "Name,Description,Owner\n", recorder.Body.String())
}

func (suite *OrganizationHandlerTestSuite) TestGetChoices() {
	choice := service.Choice{ID: uuid.New(), Name: "acme"}
	suite.mockOrganizationService.EXPECT().
		Choices(gomock.Any(), suite.identity).
		Return([]service.Choice{choice}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/choices", nil)

	var response []service.Choice
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), []service.Choice{choice}, response)
}

func (suite *OrganizationHandlerTestSuite) TestGetChoicesRequiresIdentity() {
	suite.httpSuite.Status = models.IdentityStatus{Err: apperrors.ErrIdentityRequired}
	suite.mockOrganizationService.EXPECT().
		Choices(gomock.Any(), gomock.Nil()).
		Return(nil, apperrors.ErrIdentityRequired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/choices", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "signed-in identity is required")
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
