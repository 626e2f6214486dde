package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

type HousekeepingTask struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID     uint       `gorm:"index;column:room_id" json:"room_id"`
	AssignedTo *uint      `gorm:"column:assigned_to" json:"assigned_to,omitempty"`
	Status     TaskStatus `gorm:"size:32;index;default:pending" json:"status"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`

	Room         Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	AssignedUser *User `gorm:"foreignKey:AssignedTo" json:"assigned_user,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
