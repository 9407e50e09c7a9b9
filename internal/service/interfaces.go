package service

import (
	"duty-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	Create(req *CreateNotificationRequest) (*models.Notification, error)
	ListForRecipient(serviceNumber string) ([]models.Notification, error)
	MarkRead(id uint) error
	MarkUnread(id uint) error
	Delete(id uint) error
	GetByID(id uint) (*models.Notification, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*models.Team, error)
	FindAll() ([]models.Team, error)
	FindOne(id int64) (*models.Team, error)
	Update(id int64, req *UpdateTeamRequest) (*models.Team, error)
	Remove(id int64) error
}
