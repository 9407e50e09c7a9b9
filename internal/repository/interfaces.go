package repository

import (
	"duty-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	GetByRecipient(serviceNumber string) ([]models.Notification, error)
	SetRead(id uint, read bool) (int64, error)
	Delete(id uint) (int64, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uint) (int64, error)
}
