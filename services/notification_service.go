package services

import (
	"fmt"
	"log"

	"grandstay-backend/models"

	"gorm.io/gorm"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) Create(n *models.Notification) error {
	if n.Type == "" {
		n.Type = models.NotifyInfo
	}
	if err := s.DB.Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// Broadcast is best-effort: booking flows must not fail because the bell
// icon missed an update.
func (s *NotificationService) Broadcast(title, message string, typ models.NotificationType, entityType string, entityID uint) {
	n := models.Notification{
		Title:      title,
		Message:    message,
		Type:       typ,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if err := s.Create(&n); err != nil {
		log.Printf("warning: broadcast notification failed: %v", err)
	}
}

func (s *NotificationService) List(userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := s.DB.Where("user_id IS NULL OR user_id = ?", userID).Order("created_at DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var out []models.Notification
	if err := q.Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return out, nil
}

func (s *NotificationService) MarkRead(id uint) (models.Notification, error) {
	var n models.Notification
	if err := s.DB.First(&n, id).Error; err != nil {
		return n, err
	}
	if err := s.DB.Model(&n).Update("is_read", true).Error; err != nil {
		return n, fmt.Errorf("failed to mark notification read: %w", err)
	}
	n.IsRead = true
	return n, nil
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	err := s.DB.Model(&models.Notification{}).
		Where("(user_id IS NULL OR user_id = ?) AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
