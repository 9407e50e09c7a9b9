package service

import (
	"errors"
	"fmt"

	"duty-portal-backend/internal/database/models"
	apperrors "duty-portal-backend/internal/errors"
	"duty-portal-backend/internal/logger"
	"duty-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// NotificationService handles business logic for notifications
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// Ensure NotificationService implements NotificationServiceInterface
var _ NotificationServiceInterface = (*NotificationService)(nil)

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// CreateNotificationRequest represents the request to create a notification
type CreateNotificationRequest struct {
	RecipientServiceNumber string  `json:"recipientServiceNumber" binding:"required,max=50"`
	Message                string  `json:"message" binding:"required"`
	IncidentNumber         *string `json:"incidentNumber,omitempty" binding:"omitempty,max=50"`
	ActorName              *string `json:"actorName,omitempty" binding:"omitempty,max=100"`
	ActorServiceNumber     *string `json:"actorServiceNumber,omitempty" binding:"omitempty,max=50"`
}

// SuccessResponse is the acknowledgment returned by mutation endpoints
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// Create persists a new unread notification. Unset actor fields are stored as NULL.
// Any storage failure is replaced by a fixed internal error.
func (s *NotificationService) Create(req *CreateNotificationRequest) (*models.Notification, error) {
	notification := &models.Notification{
		RecipientServiceNumber: req.RecipientServiceNumber,
		Message:                req.Message,
		IncidentNumber:         req.IncidentNumber,
		ActorName:              req.ActorName,
		ActorServiceNumber:     req.ActorServiceNumber,
		Read:                   false,
	}

	if err := s.repo.Create(notification); err != nil {
		logger.New().WithError(err).WithField("recipient", req.RecipientServiceNumber).Error("failed to create notification")
		return nil, apperrors.ErrNotificationCreateFailed
	}

	return notification, nil
}

// ListForRecipient returns the recipient's notifications, newest first
func (s *NotificationService) ListForRecipient(serviceNumber string) ([]models.Notification, error) {
	notifications, err := s.repo.GetByRecipient(serviceNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

// MarkRead flags a notification as read. Unknown ids are ignored.
func (s *NotificationService) MarkRead(id uint) error {
	return s.setRead(id, true)
}

// MarkUnread flags a notification as unread. Unknown ids are ignored.
func (s *NotificationService) MarkUnread(id uint) error {
	return s.setRead(id, false)
}

func (s *NotificationService) setRead(id uint, read bool) error {
	affected, err := s.repo.SetRead(id, read)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if affected == 0 {
		logger.New().WithFields(map[string]interface{}{"notification_id": id, "read": read}).Debug("read flag update matched no rows")
	}
	return nil
}

// Delete removes a notification by id
func (s *NotificationService) Delete(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if affected == 0 {
		return apperrors.NewNotificationNotFoundError(id)
	}
	return nil
}

// GetByID returns the notification or nil when it does not exist
func (s *NotificationService) GetByID(id uint) (*models.Notification, error) {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return notification, nil
}
