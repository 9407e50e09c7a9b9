package repository_test

import (
	"testing"
	"time"

	"duty-portal-backend/internal/database/models"
	"duty-portal-backend/internal/repository"
	"duty-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	setup     func(t *testing.T) *testutils.BaseTestSuite
	baseSuite *testutils.BaseTestSuite
	repo      *repository.NotificationRepository
	factories *testutils.FactorySet
}

// SetupSuite runs once before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseSuite = suite.setup(suite.T())
	suite.repo = repository.NewNotificationRepository(suite.baseSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs once after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) TestCreate() {
	notification := suite.factories.Notification.Create()

	err := suite.repo.Create(notification)

	suite.NoError(err)
	suite.NotZero(notification.ID)
	suite.False(notification.CreatedOn.IsZero())
	suite.False(notification.Read)
}

func (suite *NotificationRepositoryTestSuite) TestCreate_NullableFieldsStayNull() {
	notification := &models.Notification{RecipientServiceNumber: "SN-1001", Message: "bare"}
	suite.Require().NoError(suite.repo.Create(notification))

	found, err := suite.repo.GetByID(notification.ID)

	suite.NoError(err)
	suite.Nil(found.IncidentNumber)
	suite.Nil(found.ActorName)
	suite.Nil(found.ActorServiceNumber)
}

func (suite *NotificationRepositoryTestSuite) TestGetByID() {
	notification := suite.factories.Notification.Create()
	suite.Require().NoError(suite.repo.Create(notification))

	found, err := suite.repo.GetByID(notification.ID)

	suite.NoError(err)
	suite.Equal(notification.Message, found.Message)
	suite.Equal("INC-0001", *found.IncidentNumber)
}

func (suite *NotificationRepositoryTestSuite) TestGetByID_NotFound() {
	found, err := suite.repo.GetByID(9999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

func (suite *NotificationRepositoryTestSuite) TestGetByRecipient_NewestFirst() {
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	older := suite.factories.Notification.CreatedAt("SN-1001", base)
	newer := suite.factories.Notification.CreatedAt("SN-1001", base.Add(time.Hour))
	other := suite.factories.Notification.CreatedAt("SN-2002", base.Add(2*time.Hour))
	suite.Require().NoError(suite.repo.Create(older))
	suite.Require().NoError(suite.repo.Create(newer))
	suite.Require().NoError(suite.repo.Create(other))

	notifications, err := suite.repo.GetByRecipient("SN-1001")

	suite.NoError(err)
	suite.Require().Len(notifications, 2)
	suite.Equal(newer.ID, notifications[0].ID)
	suite.Equal(older.ID, notifications[1].ID)
}

func (suite *NotificationRepositoryTestSuite) TestGetByRecipient_None() {
	notifications, err := suite.repo.GetByRecipient("SN-nobody")

	suite.NoError(err)
	suite.NotNil(notifications)
	suite.Empty(notifications)
}

func (suite *NotificationRepositoryTestSuite) TestSetRead() {
	notification := suite.factories.Notification.Create()
	suite.Require().NoError(suite.repo.Create(notification))

	affected, err := suite.repo.SetRead(notification.ID, true)
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	found, err := suite.repo.GetByID(notification.ID)
	suite.Require().NoError(err)
	suite.True(found.Read)

	_, err = suite.repo.SetRead(notification.ID, false)
	suite.NoError(err)

	found, err = suite.repo.GetByID(notification.ID)
	suite.Require().NoError(err)
	suite.False(found.Read)
}

func (suite *NotificationRepositoryTestSuite) TestSetRead_UnknownID() {
	affected, err := suite.repo.SetRead(9999, true)

	suite.NoError(err)
	suite.Equal(int64(0), affected)
}

func (suite *NotificationRepositoryTestSuite) TestDelete() {
	notification := suite.factories.Notification.Create()
	suite.Require().NoError(suite.repo.Create(notification))

	affected, err := suite.repo.Delete(notification.ID)
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	affected, err = suite.repo.Delete(notification.ID)
	suite.NoError(err)
	suite.Equal(int64(0), affected)
}

// TestNotificationRepositoryTestSuite runs the suite against in-memory SQLite
func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &NotificationRepositoryTestSuite{setup: testutils.SetupSQLiteTestSuite})
}
