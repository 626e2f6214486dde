package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"grandstay-backend/models"
	"grandstay-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: creation, editing, check-in,
// check-out, cancellation and expiry. All multi-row mutations run inside a
// single gorm transaction; the availability check that matters is the one
// re-run inside that transaction, not whatever the dashboard computed.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
	Audit        *AuditService
	Notify       *NotificationService
}

func NewBookingService(db *gorm.DB, avail *AvailabilityService, audit *AuditService, notify *NotificationService) *BookingService {
	return &BookingService{DB: db, Availability: avail, Audit: audit, Notify: notify}
}

// forUpdate adds a row lock on MySQL. The sqlite driver used by tests has
// no row locks; its write transactions are serialized by the engine.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// GuestDetails creates a guest inline with a booking when the caller has no
// existing guest id. FullName and IDNumber are mandatory for inline creation.
type GuestDetails struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDType   string `json:"id_type"`
	IDNumber string `json:"id_number"`
	Address  string `json:"address"`
}

type CreateBookingInput struct {
	GuestID      uint
	GuestDetails *GuestDetails
	RoomTypeID   uint
	RoomID       *uint
	CheckInDate  time.Time
	CheckOutDate time.Time
	TotalAmount  float64
	Notes        string
}

// CreateBooking validates in a fixed order (first failure wins), then
// persists guest + booking as one transaction so a failed booking never
// strands a freshly created guest.
func (s *BookingService) CreateBooking(input CreateBookingInput, actorID uint) (*models.Booking, error) {
	hasInline := input.GuestDetails != nil &&
		strings.TrimSpace(input.GuestDetails.FullName) != "" &&
		strings.TrimSpace(input.GuestDetails.IDNumber) != ""
	if input.GuestID == 0 && !hasInline {
		return nil, ErrMissingGuest
	}
	if input.RoomTypeID == 0 {
		return nil, ErrMissingRoomType
	}
	if input.CheckInDate.IsZero() || input.CheckOutDate.IsZero() {
		return nil, ErrMissingDates
	}

	checkIn := utils.DateOnly(input.CheckInDate)
	checkOut := utils.DateOnly(input.CheckOutDate)
	today := utils.DateOnly(time.Now().UTC())

	if checkIn.Before(today) {
		return nil, ErrPastCheckIn
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrInvertedDateRange
	}

	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		guestID := input.GuestID
		if guestID != 0 {
			var guest models.Guest
			if err := tx.First(&guest, guestID).Error; err != nil {
				return err
			}
		} else {
			id, err := s.resolveInlineGuest(tx, input.GuestDetails)
			if err != nil {
				return err
			}
			guestID = id
		}

		var roomType models.RoomType
		if err := tx.First(&roomType, input.RoomTypeID).Error; err != nil {
			return err
		}

		// Hard allocation: staff picked a specific room. Soft-allocated
		// bookings skip the conflict check and prove availability at
		// check-in instead.
		if input.RoomID != nil {
			var room models.Room
			if err := forUpdate(tx).First(&room, *input.RoomID).Error; err != nil {
				return err
			}
			if room.RoomTypeID != input.RoomTypeID {
				return ErrRoomTypeMismatch
			}
			conflict, err := s.Availability.HasConflict(tx, room.ID, checkIn, checkOut, 0)
			if err != nil {
				return err
			}
			if conflict {
				return ErrRoomConflict
			}
		}

		ref, err := utils.GenerateReferenceCode("BK", 8)
		if err != nil {
			return fmt.Errorf("failed to generate reference code: %w", err)
		}

		booking = models.Booking{
			ReferenceCode: ref,
			GuestID:       guestID,
			RoomTypeID:    input.RoomTypeID,
			RoomID:        input.RoomID,
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			TotalAmount:   input.TotalAmount,
			Status:        models.BookingReserved,
			Notes:         input.Notes,
			CreatedBy:     actorID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return s.Audit.Record(tx, actorID, "booking.create", "booking", booking.ID, map[string]interface{}{
			"reference_code": booking.ReferenceCode,
			"room_type_id":   booking.RoomTypeID,
			"check_in_date":  checkIn.Format("2006-01-02"),
			"check_out_date": checkOut.Format("2006-01-02"),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Notify.Broadcast("New booking", fmt.Sprintf("Booking %s created", booking.ReferenceCode),
		models.NotifyInfo, "booking", booking.ID)

	return s.GetByID(booking.ID)
}

// resolveInlineGuest reuses an existing guest when the supplied id_number is
// already on file, otherwise creates the guest inside the booking transaction.
func (s *BookingService) resolveInlineGuest(tx *gorm.DB, details *GuestDetails) (uint, error) {
	idNumber := strings.TrimSpace(details.IDNumber)

	var existing models.Guest
	err := tx.Where("id_number = ?", idNumber).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to look up guest by id number: %w", err)
	}

	guest := models.Guest{
		FullName: strings.TrimSpace(details.FullName),
		Email:    strings.TrimSpace(details.Email),
		Phone:    strings.TrimSpace(details.Phone),
		IDType:   strings.TrimSpace(details.IDType),
		IDNumber: idNumber,
		Address:  strings.TrimSpace(details.Address),
	}
	if err := tx.Create(&guest).Error; err != nil {
		return 0, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest.ID, nil
}

type UpdateBookingInput struct {
	GuestID      *uint
	RoomTypeID   *uint
	RoomID       *uint
	ClearRoom    bool
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	TotalAmount  *float64
	Status       *models.BookingStatus
	Notes        *string
}

// UpdateBooking edits a pre-arrival booking. Dates/room changes re-run the
// availability check against the new combination, excluding the booking's
// own id. Status changes must follow the state machine, and check-in /
// check-out are only reachable through their dedicated flows.
func (s *BookingService) UpdateBooking(id uint, input UpdateBookingInput, actorID uint) (*models.Booking, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := forUpdate(tx).First(&booking, id).Error; err != nil {
			return err
		}

		wantsEdit := input.GuestID != nil || input.RoomTypeID != nil || input.RoomID != nil ||
			input.ClearRoom || input.CheckInDate != nil || input.CheckOutDate != nil ||
			input.TotalAmount != nil || input.Notes != nil

		if wantsEdit && !IsEditableStatus(booking.Status) {
			if IsTerminalStatus(booking.Status) {
				return ErrInvalidTransition
			}
			return ErrBookingNotEditable
		}

		if input.Status != nil && *input.Status != booking.Status {
			if *input.Status == models.BookingCheckedIn || *input.Status == models.BookingCheckedOut {
				return ErrInvalidTransition
			}
			if !CanTransition(booking.Status, *input.Status) {
				return ErrInvalidTransition
			}
		}

		updates := map[string]interface{}{}

		if input.GuestID != nil {
			var guest models.Guest
			if err := tx.First(&guest, *input.GuestID).Error; err != nil {
				return err
			}
			updates["guest_id"] = *input.GuestID
		}

		roomTypeID := booking.RoomTypeID
		if input.RoomTypeID != nil {
			var roomType models.RoomType
			if err := tx.First(&roomType, *input.RoomTypeID).Error; err != nil {
				return err
			}
			roomTypeID = *input.RoomTypeID
			updates["room_type_id"] = roomTypeID
		}

		checkIn := booking.CheckInDate
		checkOut := booking.CheckOutDate
		if input.CheckInDate != nil {
			checkIn = utils.DateOnly(*input.CheckInDate)
			updates["check_in_date"] = checkIn
		}
		if input.CheckOutDate != nil {
			checkOut = utils.DateOnly(*input.CheckOutDate)
			updates["check_out_date"] = checkOut
		}
		if !checkIn.Before(checkOut) {
			return ErrInvertedDateRange
		}

		roomID := booking.RoomID
		if input.ClearRoom {
			roomID = nil
			updates["room_id"] = nil
		} else if input.RoomID != nil {
			roomID = input.RoomID
			updates["room_id"] = *input.RoomID
		}

		if roomID != nil {
			var room models.Room
			if err := forUpdate(tx).First(&room, *roomID).Error; err != nil {
				return err
			}
			if room.RoomTypeID != roomTypeID {
				return ErrRoomTypeMismatch
			}
			conflict, err := s.Availability.HasConflict(tx, *roomID, checkIn, checkOut, booking.ID)
			if err != nil {
				return err
			}
			if conflict {
				return ErrRoomConflict
			}
		}

		if input.TotalAmount != nil {
			updates["total_amount"] = *input.TotalAmount
		}
		if input.Notes != nil {
			updates["notes"] = *input.Notes
		}
		if input.Status != nil && *input.Status != booking.Status {
			updates["status"] = *input.Status
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return s.Audit.Record(tx, actorID, "booking.update", "booking", booking.ID, map[string]interface{}{
			"fields": updateKeys(updates),
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(id)
}

func updateKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// CheckIn resolves a soft allocation into a concrete room and transitions
// the booking to checked_in, all-or-nothing: room binding, status change,
// guest identity patch, key card record and the room's available -> occupied
// flip commit together or not at all.
func (s *BookingService) CheckIn(bookingID, roomID uint, guestIDType, guestIDNumber, keyCardID string, actorID uint) (*models.Booking, error) {
	now := time.Now().UTC()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := forUpdate(tx).First(&booking, bookingID).Error; err != nil {
			return err
		}

		if !CanTransition(booking.Status, models.BookingCheckedIn) {
			return ErrInvalidTransition
		}

		var room models.Room
		if err := forUpdate(tx).First(&room, roomID).Error; err != nil {
			return err
		}

		expectedType, err := s.resolveRoomType(tx, &booking)
		if err != nil {
			return err
		}
		if room.RoomTypeID != expectedType {
			return ErrRoomTypeMismatch
		}

		// The room may have been taken or dirtied between the operator
		// picking it and confirming. Re-verify under the transaction.
		if room.Status != models.RoomAvailable {
			return ErrRoomNotAvailable
		}
		conflict, err := s.Availability.HasConflict(tx, room.ID, booking.CheckInDate, booking.CheckOutDate, booking.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrRoomNotAvailable
		}

		var guest models.Guest
		if err := tx.First(&guest, booking.GuestID).Error; err != nil {
			return err
		}

		idType := strings.TrimSpace(guestIDType)
		idNumber := strings.TrimSpace(guestIDNumber)
		if idType == "" {
			idType = guest.IDType
		}
		if idNumber == "" {
			idNumber = guest.IDNumber
		}
		// Identity must be complete before a stay is legally valid. This is
		// the one place it is enforced, not at booking time.
		if idType == "" || idNumber == "" {
			return ErrGuestIDRequired
		}
		if idType != guest.IDType || idNumber != guest.IDNumber {
			if err := tx.Model(&guest).Updates(map[string]interface{}{
				"id_type":   idType,
				"id_number": idNumber,
			}).Error; err != nil {
				return fmt.Errorf("failed to update guest identity: %w", err)
			}
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"room_id":       room.ID,
			"status":        models.BookingCheckedIn,
			"checked_in_at": now,
			"key_card_id":   strings.TrimSpace(keyCardID),
		}).Error; err != nil {
			return fmt.Errorf("failed to check in booking: %w", err)
		}

		if err := tx.Model(&room).Update("status", models.RoomOccupied).Error; err != nil {
			return fmt.Errorf("failed to mark room occupied: %w", err)
		}

		return s.Audit.Record(tx, actorID, "booking.check_in", "booking", booking.ID, map[string]interface{}{
			"room_id":     room.ID,
			"room_number": room.RoomNumber,
			"key_card_id": strings.TrimSpace(keyCardID),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	s.Notify.Broadcast("Guest checked in",
		fmt.Sprintf("Booking %s checked in to room %d", booking.ReferenceCode, roomID),
		models.NotifySuccess, "booking", booking.ID)
	return booking, nil
}

// CheckOut ends a stay: status -> checked_out, the room goes straight to
// cleaning and housekeeping gets a task for it in the same transaction.
func (s *BookingService) CheckOut(bookingID uint, actorID uint) (*models.Booking, error) {
	now := time.Now().UTC()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := forUpdate(tx).First(&booking, bookingID).Error; err != nil {
			return err
		}
		if !CanTransition(booking.Status, models.BookingCheckedOut) {
			return ErrInvalidTransition
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingCheckedOut,
			"checked_out_at": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to check out booking: %w", err)
		}

		if booking.RoomID != nil {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", *booking.RoomID).
				Update("status", models.RoomCleaning).Error; err != nil {
				return fmt.Errorf("failed to mark room for cleaning: %w", err)
			}

			task := models.HousekeepingTask{
				RoomID: *booking.RoomID,
				Status: models.TaskPending,
				Notes:  fmt.Sprintf("Turnover after booking %s", booking.ReferenceCode),
			}
			if err := tx.Create(&task).Error; err != nil {
				return fmt.Errorf("failed to create housekeeping task: %w", err)
			}
		}

		return s.Audit.Record(tx, actorID, "booking.check_out", "booking", booking.ID, nil)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(bookingID)
}

// Cancel is permitted only from pre-arrival states.
func (s *BookingService) Cancel(bookingID uint, actorID uint) (*models.Booking, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := forUpdate(tx).First(&booking, bookingID).Error; err != nil {
			return err
		}
		if !CanTransition(booking.Status, models.BookingCancelled) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		return s.Audit.Record(tx, actorID, "booking.cancel", "booking", booking.ID, nil)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(bookingID)
}

// Confirm moves reserved -> confirmed, normally driven by a completed
// payment. Confirming an already confirmed booking is a no-op.
func (s *BookingService) Confirm(bookingID uint, actorID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := forUpdate(tx).First(&booking, bookingID).Error; err != nil {
			return err
		}
		if booking.Status == models.BookingConfirmed {
			return nil
		}
		if !CanTransition(booking.Status, models.BookingConfirmed) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&booking).Update("status", models.BookingConfirmed).Error; err != nil {
			return fmt.Errorf("failed to confirm booking: %w", err)
		}
		return s.Audit.Record(tx, actorID, "booking.confirm", "booking", booking.ID, nil)
	})
}

// ExpireOverdue marks pre-arrival bookings whose check-in day has passed
// without a check-in. Driven by the sweeper in main, compared at day
// granularity.
func (s *BookingService) ExpireOverdue(now time.Time) (int64, error) {
	today := utils.DateOnly(now.UTC())

	res := s.DB.Model(&models.Booking{}).
		Where("status IN ?", []models.BookingStatus{models.BookingReserved, models.BookingConfirmed}).
		Where("check_in_date < ?", today).
		Update("status", models.BookingExpired)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to expire overdue bookings: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		log.Printf("expired %d overdue bookings", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// resolveRoomType finds the booking's category commitment. Fallback order:
// the booking's own room_type_id, then the preloaded room's type, then a
// lookup through room_id. First non-zero wins.
func (s *BookingService) resolveRoomType(tx *gorm.DB, booking *models.Booking) (uint, error) {
	if booking.RoomTypeID != 0 {
		return booking.RoomTypeID, nil
	}
	if booking.Room != nil && booking.Room.RoomTypeID != 0 {
		return booking.Room.RoomTypeID, nil
	}
	if booking.RoomID != nil {
		var room models.Room
		if err := tx.First(&room, *booking.RoomID).Error; err != nil {
			return 0, err
		}
		return room.RoomTypeID, nil
	}
	return 0, ErrMissingRoomType
}

// AvailableRoomsForBooking lists rooms the check-in flow may offer: same
// room type, operationally available, no overlapping active booking for the
// stay's window. An empty result means the stage blocks progression.
func (s *BookingService) AvailableRoomsForBooking(bookingID uint) ([]models.Room, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}

	roomTypeID, err := s.resolveRoomType(s.DB, &booking)
	if err != nil {
		return nil, err
	}

	return s.Availability.ListAvailableRooms(
		booking.CheckInDate, booking.CheckOutDate, roomTypeID, booking.ID, true)
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Guest").
		Preload("RoomType").
		Preload("Room").
		Preload("Room.RoomType").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

type BookingFilter struct {
	GuestID uint
	RoomID  uint
	Status  models.BookingStatus
	Page    int
	PerPage int
}

func (s *BookingService) List(filter BookingFilter) ([]models.Booking, int64, error) {
	q := s.DB.Model(&models.Booking{})
	if filter.GuestID != 0 {
		q = q.Where("guest_id = ?", filter.GuestID)
	}
	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 || perPage > 200 {
		perPage = 50
	}

	var bookings []models.Booking
	err := q.
		Preload("Guest").
		Preload("RoomType").
		Preload("Room").
		Preload("Room.RoomType").
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, total, nil
}
