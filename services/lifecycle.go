package services

import "grandstay-backend/models"

// Booking lifecycle:
//
//	reserved ──────────────┬────────────┐
//	   │                   │            │
//	   ▼                   ▼            ▼
//	confirmed ──────► checked_in    cancelled / expired
//	   │                   │
//	   └── cancelled       ▼
//	       expired     checked_out
//
// checked_out, cancelled and expired are terminal. A booking never comes
// back from a terminal status.
var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingReserved: {
		models.BookingConfirmed,
		models.BookingCheckedIn,
		models.BookingCancelled,
		models.BookingExpired,
	},
	models.BookingConfirmed: {
		models.BookingCheckedIn,
		models.BookingCancelled,
		models.BookingExpired,
	},
	models.BookingCheckedIn: {
		models.BookingCheckedOut,
	},
}

// CanTransition reports whether from -> to is a legal lifecycle step.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further transition is permitted.
func IsTerminalStatus(s models.BookingStatus) bool {
	switch s {
	case models.BookingCheckedOut, models.BookingCancelled, models.BookingExpired:
		return true
	}
	return false
}

// IsActiveStatus reports whether a booking still holds (or may hold) a room.
// Only active bookings count for overlap checks.
func IsActiveStatus(s models.BookingStatus) bool {
	return !IsTerminalStatus(s)
}

// IsEditableStatus reports whether dates/room/amount/notes may still change.
// Once a stay begins the record is history, not a plan.
func IsEditableStatus(s models.BookingStatus) bool {
	return s == models.BookingReserved || s == models.BookingConfirmed
}

// excludedFromOverlap is the NOT IN set used by SQL overlap queries.
var excludedFromOverlap = []models.BookingStatus{
	models.BookingCancelled,
	models.BookingCheckedOut,
	models.BookingExpired,
}
