package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"duty-portal-backend/internal/api/handlers"
	"duty-portal-backend/internal/database/models"
	apperrors "duty-portal-backend/internal/errors"
	"duty-portal-backend/internal/mocks"
	"duty-portal-backend/internal/service"
	"duty-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotificationServiceInterface
	handler     *handlers.NotificationHandler
}

// SetupTest sets up the test suite
func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewNotificationHandler(suite.mockService)
}

// TearDownTest cleans up after each test
func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// router builds a router whose requests carry the given caller identity
func (suite *NotificationHandlerTestSuite) router(serviceNumber string) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	notifications := httpSuite.Router.Group("/api/v1/notifications", testutils.WithIdentity(serviceNumber, ""))
	{
		notifications.GET("", suite.handler.ListNotifications)
		notifications.POST("", suite.handler.CreateNotification)
		notifications.PATCH("/:id/read", suite.handler.MarkAsRead)
		notifications.PATCH("/:id/unread", suite.handler.MarkAsUnread)
		notifications.DELETE("/:id", suite.handler.DeleteNotification)
	}
	return httpSuite
}

func (suite *NotificationHandlerTestSuite) TestListNotifications() {
	suite.mockService.EXPECT().ListForRecipient("SN-1001").Return([]models.Notification{
		{ID: 2, RecipientServiceNumber: "SN-1001", Message: "newer"},
		{ID: 1, RecipientServiceNumber: "SN-1001", Message: "older", Read: true},
	}, nil)

	recorder := suite.router("SN-1001").MakeRequest(http.MethodGet, "/api/v1/notifications", nil)

	var body []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	require.Len(suite.T(), body, 2)
	assert.Equal(suite.T(), float64(2), body[0]["id"])
	assert.Equal(suite.T(), "SN-1001", body[0]["recipientServiceNumber"])
	assert.Equal(suite.T(), false, body[0]["read"])
	assert.Equal(suite.T(), true, body[1]["read"])
}

func (suite *NotificationHandlerTestSuite) TestListNotifications_UnsetFieldsRendering() {
	suite.mockService.EXPECT().ListForRecipient("SN-1001").Return([]models.Notification{
		{ID: 1, RecipientServiceNumber: "SN-1001", Message: "hi"},
	}, nil)

	recorder := suite.router("SN-1001").MakeRequest(http.MethodGet, "/api/v1/notifications", nil)

	var body []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	require.Len(suite.T(), body, 1)
	_, hasIncident := body[0]["incidentNumber"]
	assert.False(suite.T(), hasIncident)
	actorName, hasActorName := body[0]["actorName"]
	assert.True(suite.T(), hasActorName)
	assert.Nil(suite.T(), actorName)
	actorSN, hasActorSN := body[0]["actorServiceNumber"]
	assert.True(suite.T(), hasActorSN)
	assert.Nil(suite.T(), actorSN)
}

func (suite *NotificationHandlerTestSuite) TestListNotifications_MissingClaimUsesEmptyRecipient() {
	suite.mockService.EXPECT().ListForRecipient("").Return([]models.Notification{}, nil)

	recorder := suite.router("").MakeRequest(http.MethodGet, "/api/v1/notifications", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `[]`, recorder.Body.String())
}

func (suite *NotificationHandlerTestSuite) TestListNotifications_ServiceError() {
	suite.mockService.EXPECT().ListForRecipient("SN-1001").Return(nil, errors.New("db down"))

	recorder := suite.router("SN-1001").MakeRequest(http.MethodGet, "/api/v1/notifications", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

func (suite *NotificationHandlerTestSuite) TestCreateNotification() {
	suite.mockService.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *service.CreateNotificationRequest) (*models.Notification, error) {
		assert.Equal(suite.T(), "SN-2002", req.RecipientServiceNumber)
		assert.Equal(suite.T(), "INC-7", *req.IncidentNumber)
		assert.Nil(suite.T(), req.ActorName)
		return &models.Notification{
			ID:                     10,
			RecipientServiceNumber: req.RecipientServiceNumber,
			Message:                req.Message,
			IncidentNumber:         req.IncidentNumber,
		}, nil
	})

	recorder := suite.router("SN-1001").MakeRequest(http.MethodPost, "/api/v1/notifications", map[string]interface{}{
		"recipientServiceNumber": "SN-2002",
		"message":                "Incident assigned",
		"incidentNumber":         "INC-7",
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &body)
	assert.Equal(suite.T(), float64(10), body["id"])
	assert.Equal(suite.T(), "INC-7", body["incidentNumber"])
}

func (suite *NotificationHandlerTestSuite) TestCreateNotification_InvalidBody() {
	httpSuite := suite.router("SN-1001")

	recorder := httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/notifications", "invalid json")
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	recorder = httpSuite.MakeRequest(http.MethodPost, "/api/v1/notifications", map[string]interface{}{"message": "no recipient"})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *NotificationHandlerTestSuite) TestCreateNotification_StoreFailure() {
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrNotificationCreateFailed)

	recorder := suite.router("SN-1001").MakeRequest(http.MethodPost, "/api/v1/notifications", map[string]interface{}{
		"recipientServiceNumber": "SN-2002",
		"message":                "hello",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create notification")
}

func (suite *NotificationHandlerTestSuite) TestMarkAsRead() {
	suite.mockService.EXPECT().MarkRead(uint(5)).Return(nil)

	recorder := suite.router("SN-1001").MakeRequest(http.MethodPatch, "/api/v1/notifications/5/read", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"success":true}`, recorder.Body.String())
}

func (suite *NotificationHandlerTestSuite) TestMarkAsUnread() {
	suite.mockService.EXPECT().MarkUnread(uint(5)).Return(nil)

	recorder := suite.router("SN-1001").MakeRequest(http.MethodPatch, "/api/v1/notifications/5/unread", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"success":true}`, recorder.Body.String())
}

func (suite *NotificationHandlerTestSuite) TestMarkAsRead_NonNumericIDIsNoOp() {
	suite.mockService.EXPECT().MarkRead(uint(0)).Return(nil)
	suite.mockService.EXPECT().MarkUnread(uint(0)).Return(nil)
	httpSuite := suite.router("SN-1001")

	recorder := httpSuite.MakeRequest(http.MethodPatch, "/api/v1/notifications/abc/read", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = httpSuite.MakeRequest(http.MethodPatch, "/api/v1/notifications/abc/unread", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *NotificationHandlerTestSuite) TestDeleteNotification_Owner() {
	gomock.InOrder(
		suite.mockService.EXPECT().GetByID(uint(3)).Return(&models.Notification{ID: 3, RecipientServiceNumber: "SN-1001"}, nil),
		suite.mockService.EXPECT().Delete(uint(3)).Return(nil),
	)

	recorder := suite.router("SN-1001").MakeRequest(http.MethodDelete, "/api/v1/notifications/3", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"success":true}`, recorder.Body.String())
}

func (suite *NotificationHandlerTestSuite) TestDeleteNotification_NotOwner() {
	suite.mockService.EXPECT().GetByID(uint(3)).Return(&models.Notification{ID: 3, RecipientServiceNumber: "SN-1001"}, nil)
	suite.mockService.EXPECT().Delete(gomock.Any()).Times(0)

	recorder := suite.router("SN-9999").MakeRequest(http.MethodDelete, "/api/v1/notifications/3", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "You are not allowed to delete this notification")
}

func (suite *NotificationHandlerTestSuite) TestDeleteNotification_MissingClaimIsNotOwner() {
	suite.mockService.EXPECT().GetByID(uint(3)).Return(&models.Notification{ID: 3, RecipientServiceNumber: "SN-1001"}, nil)

	recorder := suite.router("").MakeRequest(http.MethodDelete, "/api/v1/notifications/3", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *NotificationHandlerTestSuite) TestDeleteNotification_UnknownIDSucceeds() {
	suite.mockService.EXPECT().GetByID(uint(404)).Return(nil, nil)
	suite.mockService.EXPECT().Delete(gomock.Any()).Times(0)

	recorder := suite.router("SN-1001").MakeRequest(http.MethodDelete, "/api/v1/notifications/404", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"success":true}`, recorder.Body.String())
}

func (suite *NotificationHandlerTestSuite) TestDeleteNotification_VanishedBeforeDelete() {
	suite.mockService.EXPECT().GetByID(uint(3)).Return(&models.Notification{ID: 3, RecipientServiceNumber: "SN-1001"}, nil)
	suite.mockService.EXPECT().Delete(uint(3)).Return(apperrors.NewNotificationNotFoundError(3))

	recorder := suite.router("SN-1001").MakeRequest(http.MethodDelete, "/api/v1/notifications/3", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Notification with ID 3 not found")
}

func (suite *NotificationHandlerTestSuite) TestDeleteNotification_LookupError() {
	suite.mockService.EXPECT().GetByID(uint(3)).Return(nil, errors.New("db down"))

	recorder := suite.router("SN-1001").MakeRequest(http.MethodDelete, "/api/v1/notifications/3", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

// TestNotificationHandlerTestSuite runs the test suite
func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
