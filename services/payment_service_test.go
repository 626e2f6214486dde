package services

import (
	"errors"
	"strings"
	"testing"

	"grandstay-backend/models"

	"gorm.io/gorm"
)

func newPaymentService(db *gorm.DB) *PaymentService {
	booking := newBookingService(db)
	return NewPaymentService(db, booking, NewAuditService(db))
}

func TestPaymentConfirmsReservedBooking(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")
	booking := seedBooking(t, db, guest.ID, deluxe.ID, nil, "2024-06-01", "2024-06-05", models.BookingReserved)

	payment, err := svc.Create(booking.ID, 360, models.PayCash, "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if payment.Status != models.PaymentCompleted {
		t.Errorf("desk payments complete immediately, got %s", payment.Status)
	}
	if !strings.HasPrefix(payment.ReceiptNumber, "RCP-") {
		t.Errorf("unexpected receipt number %q", payment.ReceiptNumber)
	}

	var reloaded models.Booking
	if err := db.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	if reloaded.Status != models.BookingConfirmed {
		t.Errorf("expected completed payment to confirm the booking, got %s", reloaded.Status)
	}
}

func TestPaymentOnInHouseBookingKeepsStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")
	booking := seedBooking(t, db, guest.ID, deluxe.ID, nil, "2024-06-01", "2024-06-05", models.BookingCheckedIn)

	if _, err := svc.Create(booking.ID, 50, models.PayCard, "minibar", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var reloaded models.Booking
	if err := db.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	if reloaded.Status != models.BookingCheckedIn {
		t.Errorf("payment must not move an in-house booking, got %s", reloaded.Status)
	}
}

func TestPaymentRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")
	booking := seedBooking(t, db, guest.ID, deluxe.ID, nil, "2024-06-01", "2024-06-05", models.BookingReserved)

	if _, err := svc.Create(booking.ID, 0, models.PayCash, "", nil); err == nil {
		t.Fatal("expected zero amount to be rejected")
	}
	if _, err := svc.Create(booking.ID, -10, models.PayCash, "", nil); err == nil {
		t.Fatal("expected negative amount to be rejected")
	}
}

func TestRefund(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	guest := createGuest(t, db, "Alice Chen", "passport", "P1234567")
	booking := seedBooking(t, db, guest.ID, deluxe.ID, nil, "2024-06-01", "2024-06-05", models.BookingReserved)

	payment, err := svc.Create(booking.ID, 360, models.PayCash, "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	refunded, err := svc.Refund(payment.ID, "guest cancelled", 1)
	if err != nil {
		t.Fatalf("Refund: %v", err)
	}
	if refunded.Status != models.PaymentRefunded {
		t.Errorf("expected refunded, got %s", refunded.Status)
	}

	// Refunding twice is invalid.
	if _, err := svc.Refund(payment.ID, "again", 1); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on double refund, got %v", err)
	}
}
