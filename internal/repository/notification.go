package repository

import (
	"duty-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// Ensure NotificationRepository implements NotificationRepositoryInterface
var _ NotificationRepositoryInterface = (*NotificationRepository)(nil)

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a new notification; ID and CreatedOn are filled in by the store
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetByRecipient retrieves all notifications for a recipient, newest first
func (r *NotificationRepository) GetByRecipient(serviceNumber string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := r.db.
		Where("recipient_service_number = ?", serviceNumber).
		Order("created_on DESC").
		Find(&notifications).Error
	return notifications, err
}

// SetRead sets the read flag and returns the number of affected rows
func (r *NotificationRepository) SetRead(id uint, read bool) (int64, error) {
	result := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", read)
	return result.RowsAffected, result.Error
}

// Delete deletes a notification and returns the number of affected rows
func (r *NotificationRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Notification{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
