//go:build integration

package repository_test

import (
	"os"
	"testing"

	"duty-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// TestNotificationRepositoryPostgres runs the notification suite against a Postgres container
func TestNotificationRepositoryPostgres(t *testing.T) {
	suite.Run(t, &NotificationRepositoryTestSuite{setup: testutils.SetupTestSuite})
}

// TestTeamRepositoryPostgres runs the team suite against a Postgres container
func TestTeamRepositoryPostgres(t *testing.T) {
	suite.Run(t, &TeamRepositoryTestSuite{setup: testutils.SetupTestSuite})
}
