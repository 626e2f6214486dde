package services

import (
	"path/filepath"
	"testing"
	"time"

	"grandstay-backend/config"
	"grandstay-backend/models"
	"grandstay-backend/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newBookingService(db *gorm.DB) *BookingService {
	audit := NewAuditService(db)
	notify := NewNotificationService(db)
	avail := NewAvailabilityService(db)
	return NewBookingService(db, avail, audit, notify)
}

func createRoomType(t *testing.T, db *gorm.DB, name string) models.RoomType {
	t.Helper()
	rt := models.RoomType{Name: name, BasePrice: 100, MaxOccupancy: 2}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("failed to create room type %s: %v", name, err)
	}
	return rt
}

func createRoom(t *testing.T, db *gorm.DB, number string, roomTypeID uint, status models.RoomStatus) models.Room {
	t.Helper()
	room := models.Room{RoomNumber: number, RoomTypeID: roomTypeID, Status: status}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room %s: %v", number, err)
	}
	return room
}

func createGuest(t *testing.T, db *gorm.DB, name, idType, idNumber string) models.Guest {
	t.Helper()
	guest := models.Guest{FullName: name, IDType: idType, IDNumber: idNumber}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("failed to create guest %s: %v", name, err)
	}
	return guest
}

// seedBooking writes a booking directly, bypassing CreateBooking's
// validation, so fixtures can use fixed historical dates.
func seedBooking(t *testing.T, db *gorm.DB, guestID, roomTypeID uint, roomID *uint, checkIn, checkOut string, status models.BookingStatus) models.Booking {
	t.Helper()
	ref, err := utils.GenerateReferenceCode("T", 8)
	if err != nil {
		t.Fatalf("failed to generate reference code: %v", err)
	}
	b := models.Booking{
		ReferenceCode: ref,
		GuestID:       guestID,
		RoomTypeID:    roomTypeID,
		RoomID:        roomID,
		CheckInDate:   date(t, checkIn),
		CheckOutDate:  date(t, checkOut),
		Status:        status,
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return b
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return utils.DateOnly(d)
}

// daysFromNow returns today+n at midnight UTC, for tests that must clear
// the past-check-in rule.
func daysFromNow(n int) time.Time {
	return utils.DateOnly(time.Now().UTC().AddDate(0, 0, n))
}
