package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"duty-portal-backend/internal/database/models"
)

var factorySeq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&factorySeq, 1)
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates a test Notification with default values and no ID
func (f *NotificationFactory) Create() *models.Notification {
	return &models.Notification{
		RecipientServiceNumber: "SN-1001",
		Message:                fmt.Sprintf("Test notification %d", nextSeq()),
		IncidentNumber:         StringPtr("INC-0001"),
		ActorName:              StringPtr("Jane Roe"),
		ActorServiceNumber:     StringPtr("SN-2002"),
		Read:                   false,
	}
}

// ForRecipient sets a custom recipient
func (f *NotificationFactory) ForRecipient(serviceNumber string) *models.Notification {
	n := f.Create()
	n.RecipientServiceNumber = serviceNumber
	return n
}

// CreatedAt sets an explicit creation time, which keeps ordering assertions deterministic
func (f *NotificationFactory) CreatedAt(serviceNumber string, createdOn time.Time) *models.Notification {
	n := f.ForRecipient(serviceNumber)
	n.CreatedOn = createdOn
	return n
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name:        fmt.Sprintf("team-%d", nextSeq()),
		Description: StringPtr("A test team for testing purposes"),
		IsActive:    true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// FactorySet provides access to all factories
type FactorySet struct {
	Notification *NotificationFactory
	Team         *TeamFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Notification: NewNotificationFactory(),
		Team:         NewTeamFactory(),
	}
}
