package services

import (
	"fmt"
	"strings"

	"grandstay-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewRoomService(db *gorm.DB, audit *AuditService) *RoomService {
	return &RoomService{DB: db, Audit: audit}
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" || room.RoomTypeID == 0 {
		return ErrMissingRoomType
	}

	var roomType models.RoomType
	if err := s.DB.First(&roomType, room.RoomTypeID).Error; err != nil {
		return err
	}

	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, err
	}

	delete(updates, "id")
	delete(updates, "created_at")

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return s.GetByID(id)
}

// SetStatus is the staff-driven status mutation (maintenance, cleaning
// done, etc). Check-in and check-out perform their own flips inside their
// transactions; this path is for manual corrections.
func (s *RoomService) SetStatus(id uint, status models.RoomStatus, actorID uint) (*models.Room, error) {
	switch status {
	case models.RoomAvailable, models.RoomOccupied, models.RoomCleaning, models.RoomMaintenance:
	default:
		return nil, fmt.Errorf("unknown room status %q", status)
	}

	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, err
	}
	prev := room.Status
	if err := s.DB.Model(&room).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}

	if err := s.Audit.Record(nil, actorID, "room.set_status", "room", id, map[string]interface{}{
		"from": prev,
		"to":   status,
	}); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	var n int64
	err := s.DB.Model(&models.Booking{}).
		Where("room_id = ?", id).
		Where("status NOT IN ?", excludedFromOverlap).
		Count(&n).Error
	if err != nil {
		return fmt.Errorf("failed to check room bookings: %w", err)
	}
	if n > 0 {
		return ErrRoomInUse
	}
	return s.DB.Delete(&models.Room{}, id).Error
}
