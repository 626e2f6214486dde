package services

import (
	"testing"
	"time"

	"grandstay-backend/models"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"full containment", "2024-06-01", "2024-06-10", "2024-06-03", "2024-06-05", true},
		{"partial overlap", "2024-06-01", "2024-06-05", "2024-06-04", "2024-06-08", true},
		{"identical ranges", "2024-06-01", "2024-06-05", "2024-06-01", "2024-06-05", true},
		{"disjoint", "2024-06-01", "2024-06-03", "2024-06-10", "2024-06-12", false},
		{"touching at boundary", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-08", false},
		{"touching other side", "2024-06-05", "2024-06-08", "2024-06-01", "2024-06-05", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(date(t, tc.aStart), date(t, tc.aEnd), date(t, tc.bStart), date(t, tc.bEnd))
			if got != tc.want {
				t.Errorf("Overlaps(%s..%s, %s..%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	db := newTestDB(t)
	avail := NewAvailabilityService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	room := createRoom(t, db, "101", deluxe.ID, models.RoomAvailable)
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")

	// Active booking occupying 101 for [Jun 1, Jun 5).
	seedBooking(t, db, guest.ID, deluxe.ID, &room.ID, "2024-06-01", "2024-06-05", models.BookingConfirmed)

	conflict, err := avail.HasConflict(nil, room.ID, date(t, "2024-06-04"), date(t, "2024-06-08"), 0)
	if err != nil {
		t.Fatalf("HasConflict: %v", err)
	}
	if !conflict {
		t.Error("expected conflict for a stay starting inside an existing one")
	}

	// Checkout day and next check-in day may coincide.
	conflict, err = avail.HasConflict(nil, room.ID, date(t, "2024-06-05"), date(t, "2024-06-08"), 0)
	if err != nil {
		t.Fatalf("HasConflict: %v", err)
	}
	if conflict {
		t.Error("back-to-back stay must not conflict")
	}

	conflict, err = avail.HasConflict(nil, room.ID, date(t, "2024-05-28"), date(t, "2024-06-01"), 0)
	if err != nil {
		t.Fatalf("HasConflict: %v", err)
	}
	if conflict {
		t.Error("stay ending on the existing check-in day must not conflict")
	}
}

func TestHasConflictIgnoresInactiveStatuses(t *testing.T) {
	db := newTestDB(t)
	avail := NewAvailabilityService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	room := createRoom(t, db, "101", deluxe.ID, models.RoomAvailable)
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")

	for _, status := range []models.BookingStatus{
		models.BookingCancelled, models.BookingCheckedOut, models.BookingExpired,
	} {
		seedBooking(t, db, guest.ID, deluxe.ID, &room.ID, "2024-06-01", "2024-06-05", status)
	}

	conflict, err := avail.HasConflict(nil, room.ID, date(t, "2024-06-01"), date(t, "2024-06-05"), 0)
	if err != nil {
		t.Fatalf("HasConflict: %v", err)
	}
	if conflict {
		t.Error("cancelled, checked-out and expired bookings must not block the room")
	}
}

func TestHasConflictExcludesOwnBooking(t *testing.T) {
	db := newTestDB(t)
	avail := NewAvailabilityService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	room := createRoom(t, db, "101", deluxe.ID, models.RoomAvailable)
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")

	booking := seedBooking(t, db, guest.ID, deluxe.ID, &room.ID, "2024-06-01", "2024-06-05", models.BookingConfirmed)

	// Editing the booking's own dates must not collide with itself.
	conflict, err := avail.HasConflict(nil, room.ID, date(t, "2024-06-02"), date(t, "2024-06-06"), booking.ID)
	if err != nil {
		t.Fatalf("HasConflict: %v", err)
	}
	if conflict {
		t.Error("a booking must not conflict with itself when excluded")
	}

	conflict, err = avail.HasConflict(nil, room.ID, date(t, "2024-06-02"), date(t, "2024-06-06"), 0)
	if err != nil {
		t.Fatalf("HasConflict: %v", err)
	}
	if !conflict {
		t.Error("without the exclusion the same window must conflict")
	}
}

func TestListAvailableRooms(t *testing.T) {
	db := newTestDB(t)
	avail := NewAvailabilityService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	standard := createRoomType(t, db, "Standard")
	d1 := createRoom(t, db, "201", deluxe.ID, models.RoomAvailable)
	d2 := createRoom(t, db, "202", deluxe.ID, models.RoomOccupied)
	createRoom(t, db, "101", standard.ID, models.RoomAvailable)
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")

	seedBooking(t, db, guest.ID, deluxe.ID, &d1.ID, "2024-06-01", "2024-06-05", models.BookingConfirmed)

	// Whole hotel, no operational filter: booked D1 drops out for the window.
	rooms, err := avail.ListAvailableRooms(date(t, "2024-06-03"), date(t, "2024-06-06"), 0, 0, false)
	if err != nil {
		t.Fatalf("ListAvailableRooms: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms free for the window, got %d", len(rooms))
	}
	for _, room := range rooms {
		if room.ID == d1.ID {
			t.Error("room with an overlapping booking must not be listed")
		}
	}

	// Check-in variant: deluxe only, and occupied D2 drops out too.
	rooms, err = avail.ListAvailableRooms(date(t, "2024-06-03"), date(t, "2024-06-06"), deluxe.ID, 0, true)
	if err != nil {
		t.Fatalf("ListAvailableRooms: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("expected no deluxe rooms handable over, got %d", len(rooms))
	}

	// D2 back in service: it is the only deluxe candidate.
	if err := db.Model(&d2).Update("status", models.RoomAvailable).Error; err != nil {
		t.Fatalf("failed to update room: %v", err)
	}
	rooms, err = avail.ListAvailableRooms(date(t, "2024-06-03"), date(t, "2024-06-06"), deluxe.ID, 0, true)
	if err != nil {
		t.Fatalf("ListAvailableRooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != d2.ID {
		t.Fatalf("expected only room 202, got %d rooms", len(rooms))
	}
}

func TestListAvailableRoomsZeroDates(t *testing.T) {
	db := newTestDB(t)
	avail := NewAvailabilityService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	room := createRoom(t, db, "201", deluxe.ID, models.RoomAvailable)
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")
	seedBooking(t, db, guest.ID, deluxe.ID, &room.ID, "2024-06-01", "2024-06-05", models.BookingConfirmed)

	// Half-filled forms get the full list back; no dates means no overlap filter.
	rooms, err := avail.ListAvailableRooms(time.Time{}, time.Time{}, 0, 0, false)
	if err != nil {
		t.Fatalf("ListAvailableRooms: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("expected the unfiltered room list, got %d rooms", len(rooms))
	}
}
