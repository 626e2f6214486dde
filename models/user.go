package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleManager      UserRole = "manager"
	RoleReceptionist UserRole = "receptionist"
	RoleHousekeeping UserRole = "housekeeping"
	RoleKitchen      UserRole = "kitchen"
	RoleAuditor      UserRole = "auditor"
)

type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Username string   `gorm:"uniqueIndex;size:150" json:"username"`
	FullName string   `gorm:"size:255" json:"full_name"`
	Role     UserRole `gorm:"size:32;default:receptionist" json:"role"`
	Password string   `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	IsActive bool     `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
