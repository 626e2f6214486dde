package services

import (
	"fmt"
	"time"

	"grandstay-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers "can this room (or any room of this type) hold
// a stay for [checkIn, checkOut)". It is advisory when called ahead of a
// write; the authoritative check re-runs inside the booking transaction.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// Overlaps reports half-open interval intersection. Touching at a boundary
// (checkout day == next check-in day) is not an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict reports whether roomID already has an active booking
// overlapping [checkIn, checkOut). excludeBookingID skips a booking being
// edited against itself; pass 0 to exclude nothing. Runs on tx so callers
// inside a transaction get a serialized check.
func (s *AvailabilityService) HasConflict(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	if tx == nil {
		tx = s.DB
	}

	q := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", excludedFromOverlap).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check conflicts for room %d: %w", roomID, err)
	}
	return n > 0, nil
}

// ListAvailableRooms returns rooms with no overlapping active booking for
// the window, optionally limited to one room type. requireOperational
// additionally demands Room.Status == available — the check-in path needs
// that, since a double-booked-but-dirty room cannot be handed over.
//
// Zero dates return the unfiltered room list. That is a permissive default
// for half-filled forms, not a validation pass.
func (s *AvailabilityService) ListAvailableRooms(checkIn, checkOut time.Time, roomTypeID uint, excludeBookingID uint, requireOperational bool) ([]models.Room, error) {
	q := s.DB.Preload("RoomType")
	if roomTypeID != 0 {
		q = q.Where("room_type_id = ?", roomTypeID)
	}
	if requireOperational {
		q = q.Where("status = ?", models.RoomAvailable)
	}

	var rooms []models.Room
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	if checkIn.IsZero() || checkOut.IsZero() {
		return rooms, nil
	}

	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		conflict, err := s.HasConflict(nil, room.ID, checkIn, checkOut, excludeBookingID)
		if err != nil {
			return nil, err
		}
		if !conflict {
			out = append(out, room)
		}
	}
	return out, nil
}
