package services

import (
	"fmt"
	"strings"

	"grandstay-backend/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	rt.Name = strings.TrimSpace(rt.Name)
	if rt.Name == "" || rt.MaxOccupancy <= 0 {
		return ErrMissingRoomType
	}
	if err := s.DB.Create(rt).Error; err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}
	return nil
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Order("name ASC").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// Update may change price and amenities at any time; identity is immutable.
func (s *RoomTypeService) Update(id uint, updates map[string]interface{}) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		return nil, err
	}

	delete(updates, "id")
	delete(updates, "created_at")

	if err := s.DB.Model(&rt).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room type: %w", err)
	}
	return s.GetByID(id)
}

// Delete refuses while any room or booking still references the type.
func (s *RoomTypeService) Delete(id uint) error {
	var rooms int64
	if err := s.DB.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&rooms).Error; err != nil {
		return fmt.Errorf("failed to check rooms for type: %w", err)
	}
	var bookings int64
	if err := s.DB.Model(&models.Booking{}).Where("room_type_id = ?", id).Count(&bookings).Error; err != nil {
		return fmt.Errorf("failed to check bookings for type: %w", err)
	}
	if rooms > 0 || bookings > 0 {
		return ErrRoomTypeInUse
	}
	return s.DB.Delete(&models.RoomType{}, id).Error
}
