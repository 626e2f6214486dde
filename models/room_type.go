package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string  `gorm:"size:150;uniqueIndex" json:"name"`
	BasePrice    float64 `gorm:"column:base_price" json:"base_price"`
	MaxOccupancy int     `gorm:"column:max_occupancy" json:"max_occupancy"`

	// JSON arrays of strings (amenity names / image URIs).
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Images    datatypes.JSON `gorm:"column:images" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
