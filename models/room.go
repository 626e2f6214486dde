package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room.Status is the operational "is this physical unit free right now"
// signal. It is distinct from booking-level reservation state: a room with a
// future reservation still reads available until check-in flips it occupied.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber string     `gorm:"column:room_number;uniqueIndex;size:50" json:"room_number"`
	RoomTypeID uint       `gorm:"column:room_type_id;index" json:"room_type_id"`
	Status     RoomStatus `gorm:"size:32;default:available" json:"status"`
	Floor      string     `gorm:"size:10" json:"floor,omitempty"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
