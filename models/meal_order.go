package models

import (
	"time"

	"gorm.io/gorm"
)

type MealOrderStatus string

const (
	MealOrdered   MealOrderStatus = "ordered"
	MealPreparing MealOrderStatus = "preparing"
	MealReady     MealOrderStatus = "ready"
	MealDelivered MealOrderStatus = "delivered"
)

type MealOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint            `gorm:"index;column:booking_id" json:"booking_id"`
	MealType  string          `gorm:"column:meal_type;size:100" json:"meal_type"`
	Status    MealOrderStatus `gorm:"size:32;index;default:ordered" json:"status"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
