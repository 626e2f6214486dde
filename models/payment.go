package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCard     PaymentMethod = "card"
	PayTransfer PaymentMethod = "transfer"
	PayMobile   PaymentMethod = "mobile"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID     uint          `gorm:"index;column:booking_id" json:"booking_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `gorm:"column:payment_method;size:32" json:"payment_method"`
	Status        PaymentStatus `gorm:"size:32;index" json:"status"`

	// ProcessedBy is nil for automated payments (e.g. gateway webhooks).
	ProcessedBy   *uint     `gorm:"column:processed_by" json:"processed_by,omitempty"`
	ProcessedAt   time.Time `gorm:"column:processed_at" json:"processed_at"`
	ReceiptNumber string    `gorm:"column:receipt_number;uniqueIndex;size:64" json:"receipt_number,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
