package models

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
	NotifySuccess NotificationType = "success"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID nil means broadcast to all staff.
	UserID  *uint            `gorm:"index;column:user_id" json:"user_id,omitempty"`
	Title   string           `gorm:"size:255" json:"title"`
	Message string           `gorm:"type:text" json:"message"`
	Type    NotificationType `gorm:"size:32;default:info" json:"type"`
	IsRead  bool             `gorm:"column:is_read;default:false" json:"is_read"`

	// Optional entity reference for deep links from the notification bell.
	EntityType string `gorm:"column:entity_type;size:50" json:"entity_type,omitempty"`
	EntityID   uint   `gorm:"column:entity_id" json:"entity_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
