package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is append-only. No UpdatedAt/DeletedAt: records are never
// modified after being written.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID     uint           `gorm:"index;column:user_id" json:"user_id"`
	Action     string         `gorm:"size:100;index" json:"action"`
	EntityType string         `gorm:"column:entity_type;size:50;index" json:"entity_type"`
	EntityID   uint           `gorm:"column:entity_id;index" json:"entity_id"`
	Details    datatypes.JSON `gorm:"column:details" json:"details,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
