package services

import (
	"testing"

	"grandstay-backend/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		want     bool
	}{
		{models.BookingReserved, models.BookingConfirmed, true},
		{models.BookingReserved, models.BookingCheckedIn, true},
		{models.BookingReserved, models.BookingCancelled, true},
		{models.BookingReserved, models.BookingExpired, true},
		{models.BookingReserved, models.BookingCheckedOut, false},

		{models.BookingConfirmed, models.BookingCheckedIn, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingExpired, true},
		{models.BookingConfirmed, models.BookingReserved, false},

		{models.BookingCheckedIn, models.BookingCheckedOut, true},
		{models.BookingCheckedIn, models.BookingCancelled, false},
		{models.BookingCheckedIn, models.BookingExpired, false},

		// Terminal statuses permit nothing, including resurrection.
		{models.BookingCheckedOut, models.BookingCheckedIn, false},
		{models.BookingCancelled, models.BookingReserved, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
		{models.BookingExpired, models.BookingCheckedIn, false},
		{models.BookingExpired, models.BookingConfirmed, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	terminal := []models.BookingStatus{models.BookingCheckedOut, models.BookingCancelled, models.BookingExpired}
	for _, s := range terminal {
		if !IsTerminalStatus(s) {
			t.Errorf("expected %s to be terminal", s)
		}
		if IsActiveStatus(s) {
			t.Errorf("expected %s not to be active", s)
		}
	}

	live := []models.BookingStatus{models.BookingReserved, models.BookingConfirmed, models.BookingCheckedIn}
	for _, s := range live {
		if IsTerminalStatus(s) {
			t.Errorf("expected %s not to be terminal", s)
		}
		if !IsActiveStatus(s) {
			t.Errorf("expected %s to be active", s)
		}
	}
}

func TestIsEditableStatus(t *testing.T) {
	if !IsEditableStatus(models.BookingReserved) || !IsEditableStatus(models.BookingConfirmed) {
		t.Error("reserved and confirmed bookings must be editable")
	}
	for _, s := range []models.BookingStatus{
		models.BookingCheckedIn, models.BookingCheckedOut, models.BookingCancelled, models.BookingExpired,
	} {
		if IsEditableStatus(s) {
			t.Errorf("expected %s not to be editable", s)
		}
	}
}
