package handlers

import (
	"net/http"
	"strconv"

	"duty-portal-backend/internal/auth"
	apperrors "duty-portal-backend/internal/errors"
	"duty-portal-backend/internal/logger"
	"duty-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the caller's notifications
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications handles GET /notifications
// @Summary List the caller's notifications
// @Description Get all notifications addressed to the authenticated caller, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification "Successfully retrieved notifications"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	serviceNumber, _ := auth.GetServiceNumber(c)

	notifications, err := h.notificationService.ListForRecipient(serviceNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// CreateNotification handles POST /notifications
// @Summary Create a notification
// @Description Create an unread notification for a recipient
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body service.CreateNotificationRequest true "Notification data"
// @Success 201 {object} models.Notification "Successfully created notification"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Failed to create notification"
// @Security BearerAuth
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req service.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	notification, err := h.notificationService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// MarkAsRead handles PATCH /notifications/:id/read
// @Summary Mark a notification as read
// @Description Set the read flag. Unknown ids are acknowledged without change.
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} service.SuccessResponse "Acknowledged"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(notificationID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.SuccessResponse{Success: true})
}

// MarkAsUnread handles PATCH /notifications/:id/unread
// @Summary Mark a notification as unread
// @Description Clear the read flag. Unknown ids are acknowledged without change.
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} service.SuccessResponse "Acknowledged"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/unread [patch]
func (h *NotificationHandler) MarkAsUnread(c *gin.Context) {
	if err := h.notificationService.MarkUnread(notificationID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.SuccessResponse{Success: true})
}

// DeleteNotification handles DELETE /notifications/:id
// @Summary Delete a notification
// @Description Delete one of the caller's notifications. Deleting an unknown id succeeds.
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} service.SuccessResponse "Deleted"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Notification belongs to someone else"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id := notificationID(c)

	notification, err := h.notificationService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if notification == nil {
		c.JSON(http.StatusOK, service.SuccessResponse{Success: true})
		return
	}

	serviceNumber, _ := auth.GetServiceNumber(c)
	if notification.RecipientServiceNumber != serviceNumber {
		logger.WithContext(c).WithField("notification_id", id).Warn("delete of foreign notification refused")
		respondError(c, apperrors.ErrNotificationDeleteDenied)
		return
	}

	if err := h.notificationService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.SuccessResponse{Success: true})
}

// notificationID parses the :id path segment; anything unparsable becomes 0, which matches no row
func notificationID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
