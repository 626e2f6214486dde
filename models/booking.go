package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingReserved   BookingStatus = "reserved"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingExpired    BookingStatus = "expired"
)

// Booking commits a guest to a room *type* for a date range. RoomID stays
// nil under soft allocation and is bound to a concrete room at check-in.
// Dates are stored at midnight UTC; [CheckInDate, CheckOutDate) is half-open,
// so a checkout day may equal the next stay's check-in day.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:16" json:"reference_code"`

	GuestID    uint  `gorm:"index;column:guest_id" json:"guest_id"`
	RoomTypeID uint  `gorm:"index;column:room_type_id" json:"room_type_id"`
	RoomID     *uint `gorm:"index;column:room_id" json:"room_id,omitempty"`

	CheckInDate  time.Time `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`

	TotalAmount float64       `gorm:"column:total_amount" json:"total_amount"`
	Status      BookingStatus `gorm:"size:32;index;default:reserved" json:"status"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`
	KeyCardID   string        `gorm:"column:key_card_id;size:64" json:"key_card_id,omitempty"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`

	CreatedBy uint `gorm:"column:created_by" json:"created_by"`

	Guest    Guest    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	Room     *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
