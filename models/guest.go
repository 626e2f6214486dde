package models

import (
	"time"

	"gorm.io/gorm"
)

// Guest identity fields (IDType/IDNumber) are optional at creation and only
// become mandatory at check-in, where the front desk completes them.
type Guest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:255" json:"full_name"`
	Email    string `gorm:"size:150" json:"email,omitempty"`
	Phone    string `gorm:"size:50" json:"phone,omitempty"`
	IDType   string `gorm:"column:id_type;size:50" json:"id_type,omitempty"`
	IDNumber string `gorm:"column:id_number;size:100;index" json:"id_number,omitempty"`
	Address  string `gorm:"type:text" json:"address,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
