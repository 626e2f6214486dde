package services

import (
	"errors"
	"fmt"
	"strings"

	"grandstay-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Create rejects a second guest carrying an id_number already on file; the
// front desk should pick up the existing record instead.
func (s *GuestService) Create(guest *models.Guest) error {
	guest.FullName = strings.TrimSpace(guest.FullName)
	if guest.FullName == "" {
		return ErrMissingGuest
	}

	guest.IDNumber = strings.TrimSpace(guest.IDNumber)
	if guest.IDNumber != "" {
		var existing models.Guest
		err := s.DB.Where("id_number = ?", guest.IDNumber).First(&existing).Error
		if err == nil {
			return ErrDuplicateGuest
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check duplicate guest: %w", err)
		}
	}

	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *GuestService) FindByIDNumber(idNumber string) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.Where("id_number = ?", strings.TrimSpace(idNumber)).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// List returns guests, optionally filtered by a free-text search over name,
// email, phone and id number.
func (s *GuestService) List(search string) ([]models.Guest, error) {
	q := s.DB.Order("id DESC")

	search = strings.TrimSpace(search)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ? OR id_number LIKE ?",
			like, like, "%"+search+"%", "%"+search+"%",
		)
	}

	var guests []models.Guest
	if err := q.Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) Update(id uint, updates map[string]interface{}) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		return nil, err
	}

	delete(updates, "id")
	delete(updates, "created_at")

	if len(updates) > 0 {
		if err := s.DB.Model(&guest).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update guest: %w", err)
		}
	}
	return s.GetByID(id)
}

func (s *GuestService) Delete(id uint) error {
	// Guests referenced by any booking stay on record for the audit trail.
	var n int64
	if err := s.DB.Model(&models.Booking{}).Where("guest_id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check guest bookings: %w", err)
	}
	if n > 0 {
		return ErrGuestInUse
	}
	return s.DB.Delete(&models.Guest{}, id).Error
}
