package service_test

import (
	"errors"
	"testing"
	"time"

	"duty-portal-backend/internal/database/models"
	apperrors "duty-portal-backend/internal/errors"
	"duty-portal-backend/internal/mocks"
	"duty-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockNotificationRepositoryInterface
	service  *service.NotificationService
}

// SetupTest sets up the test suite
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.service = service.NewNotificationService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationServiceTestSuite) TestCreate_WithoutActorFields() {
	req := &service.CreateNotificationRequest{
		RecipientServiceNumber: "SN-1001",
		Message:                "Shift starts at 06:00",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Nil(suite.T(), n.ActorName)
		assert.Nil(suite.T(), n.ActorServiceNumber)
		assert.Nil(suite.T(), n.IncidentNumber)
		assert.False(suite.T(), n.Read)
		n.ID = 1
		n.CreatedOn = time.Now()
		return nil
	})

	notification, err := suite.service.Create(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(1), notification.ID)
	assert.Equal(suite.T(), "SN-1001", notification.RecipientServiceNumber)
	assert.Equal(suite.T(), "Shift starts at 06:00", notification.Message)
	assert.False(suite.T(), notification.Read)
}

func (suite *NotificationServiceTestSuite) TestCreate_WithAllFields() {
	incident, actor, actorSN := "INC-42", "Jane Roe", "SN-2002"
	req := &service.CreateNotificationRequest{
		RecipientServiceNumber: "SN-1001",
		Message:                "You were assigned to an incident",
		IncidentNumber:         &incident,
		ActorName:              &actor,
		ActorServiceNumber:     &actorSN,
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	notification, err := suite.service.Create(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "INC-42", *notification.IncidentNumber)
	assert.Equal(suite.T(), "Jane Roe", *notification.ActorName)
	assert.Equal(suite.T(), "SN-2002", *notification.ActorServiceNumber)
}

func (suite *NotificationServiceTestSuite) TestCreate_StorageFailureIsMasked() {
	req := &service.CreateNotificationRequest{RecipientServiceNumber: "SN-1001", Message: "hello"}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("pq: connection refused"))

	notification, err := suite.service.Create(req)

	assert.Nil(suite.T(), notification)
	assert.True(suite.T(), apperrors.IsInternal(err))
	assert.Equal(suite.T(), "Failed to create notification", err.Error())
	assert.NotContains(suite.T(), err.Error(), "connection refused")
}

func (suite *NotificationServiceTestSuite) TestListForRecipient() {
	now := time.Now()
	stored := []models.Notification{
		{ID: 2, RecipientServiceNumber: "SN-1001", Message: "newer", CreatedOn: now},
		{ID: 1, RecipientServiceNumber: "SN-1001", Message: "older", CreatedOn: now.Add(-time.Hour)},
	}
	suite.mockRepo.EXPECT().GetByRecipient("SN-1001").Return(stored, nil)

	notifications, err := suite.service.ListForRecipient("SN-1001")

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), notifications, 2)
	assert.Equal(suite.T(), uint(2), notifications[0].ID)
}

func (suite *NotificationServiceTestSuite) TestListForRecipient_EmptyIsNotAnError() {
	suite.mockRepo.EXPECT().GetByRecipient("").Return(nil, nil)

	notifications, err := suite.service.ListForRecipient("")

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), notifications)
	assert.Empty(suite.T(), notifications)
}

func (suite *NotificationServiceTestSuite) TestListForRecipient_StorageError() {
	dbErr := errors.New("db down")
	suite.mockRepo.EXPECT().GetByRecipient("SN-1").Return(nil, dbErr)

	_, err := suite.service.ListForRecipient("SN-1")

	assert.ErrorIs(suite.T(), err, dbErr)
}

func (suite *NotificationServiceTestSuite) TestMarkReadAndUnread() {
	gomock.InOrder(
		suite.mockRepo.EXPECT().SetRead(uint(5), true).Return(int64(1), nil),
		suite.mockRepo.EXPECT().SetRead(uint(5), false).Return(int64(1), nil),
	)

	assert.NoError(suite.T(), suite.service.MarkRead(5))
	assert.NoError(suite.T(), suite.service.MarkUnread(5))
}

func (suite *NotificationServiceTestSuite) TestMarkRead_UnknownIDIsNoOp() {
	suite.mockRepo.EXPECT().SetRead(uint(999), true).Return(int64(0), nil)
	suite.mockRepo.EXPECT().SetRead(uint(999), false).Return(int64(0), nil)

	assert.NoError(suite.T(), suite.service.MarkRead(999))
	assert.NoError(suite.T(), suite.service.MarkUnread(999))
}

func (suite *NotificationServiceTestSuite) TestMarkRead_StorageError() {
	suite.mockRepo.EXPECT().SetRead(uint(1), true).Return(int64(0), errors.New("db down"))

	err := suite.service.MarkRead(1)

	assert.Error(suite.T(), err)
}

func (suite *NotificationServiceTestSuite) TestDelete() {
	suite.mockRepo.EXPECT().Delete(uint(3)).Return(int64(1), nil)

	assert.NoError(suite.T(), suite.service.Delete(3))
}

func (suite *NotificationServiceTestSuite) TestDelete_NotFound() {
	suite.mockRepo.EXPECT().Delete(uint(404)).Return(int64(0), nil)

	err := suite.service.Delete(404)

	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.Equal(suite.T(), "Notification with ID 404 not found", err.Error())
}

func (suite *NotificationServiceTestSuite) TestGetByID() {
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(&models.Notification{ID: 7}, nil)

	notification, err := suite.service.GetByID(7)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(7), notification.ID)
}

func (suite *NotificationServiceTestSuite) TestGetByID_MissingReturnsNil() {
	suite.mockRepo.EXPECT().GetByID(uint(8)).Return(nil, gorm.ErrRecordNotFound)

	notification, err := suite.service.GetByID(8)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), notification)
}

func (suite *NotificationServiceTestSuite) TestGetByID_StorageError() {
	suite.mockRepo.EXPECT().GetByID(uint(9)).Return(nil, errors.New("db down"))

	notification, err := suite.service.GetByID(9)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), notification)
}

// TestNotificationServiceTestSuite runs the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
