package models

import "time"

// Session is an opaque bearer token handed out at login. A request with a
// missing or expired token gets a 401 and the dashboard forces re-login.
type Session struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Token     string     `gorm:"uniqueIndex;size:128" json:"-"`
	UserID    uint       `gorm:"index" json:"user_id"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
