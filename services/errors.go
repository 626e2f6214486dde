package services

import "errors"

// Validation failures — detectable before any write.
var (
	ErrMissingGuest      = errors.New("missing_guest")
	ErrMissingRoomType   = errors.New("missing_room_type")
	ErrMissingDates      = errors.New("missing_dates")
	ErrPastCheckIn       = errors.New("past_check_in")
	ErrInvertedDateRange = errors.New("inverted_date_range")
	ErrGuestIDRequired   = errors.New("guest_id_required")
	ErrDuplicateGuest    = errors.New("duplicate_guest")
)

// Conflicts — recoverable by choosing different input.
var (
	ErrRoomConflict     = errors.New("room_conflict")
	ErrRoomNotAvailable = errors.New("room_not_available")
	ErrRoomTypeMismatch = errors.New("room_type_mismatch")
	ErrRoomTypeInUse    = errors.New("room_type_in_use")
	ErrGuestInUse       = errors.New("guest_in_use")
	ErrRoomInUse        = errors.New("room_in_use")
)

// Lifecycle violations.
var (
	ErrInvalidTransition  = errors.New("invalid_transition")
	ErrBookingNotEditable = errors.New("booking_not_editable")
)
