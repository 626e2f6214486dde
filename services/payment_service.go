package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"grandstay-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB      *gorm.DB
	Booking *BookingService
	Audit   *AuditService
}

func NewPaymentService(db *gorm.DB, booking *BookingService, audit *AuditService) *PaymentService {
	return &PaymentService{DB: db, Booking: booking, Audit: audit}
}

func receiptNumber() string {
	return "RCP-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create records a desk payment. Desk payments complete immediately;
// completing a payment on a reserved booking confirms it.
func (s *PaymentService) Create(bookingID uint, amount float64, method models.PaymentMethod, notes string, processedBy *uint) (*models.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	var payment models.Payment

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			return err
		}

		payment = models.Payment{
			BookingID:     bookingID,
			Amount:        amount,
			PaymentMethod: method,
			Status:        models.PaymentCompleted,
			ProcessedBy:   processedBy,
			ProcessedAt:   time.Now().UTC(),
			ReceiptNumber: receiptNumber(),
			Notes:         notes,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		actor := uint(0)
		if processedBy != nil {
			actor = *processedBy
		}
		return s.Audit.Record(tx, actor, "payment.create", "payment", payment.ID, map[string]interface{}{
			"booking_id":     bookingID,
			"amount":         amount,
			"receipt_number": payment.ReceiptNumber,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	// Payment completion drives reserved -> confirmed. Best-effort: an
	// already confirmed (or checked-in) booking keeps its status.
	actor := uint(0)
	if processedBy != nil {
		actor = *processedBy
	}
	if err := s.Booking.Confirm(bookingID, actor); err != nil && !errors.Is(err, ErrInvalidTransition) {
		log.Printf("warning: payment recorded but booking %d not confirmed: %v", bookingID, err)
	}

	return &payment, nil
}

// Refund flips a completed payment to refunded.
func (s *PaymentService) Refund(paymentID uint, reason string, actorID uint) (*models.Payment, error) {
	var payment models.Payment

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&payment, paymentID).Error; err != nil {
			return err
		}
		if payment.Status != models.PaymentCompleted {
			return ErrInvalidTransition
		}
		updates := map[string]interface{}{"status": models.PaymentRefunded}
		if reason != "" {
			updates["notes"] = strings.TrimSpace(payment.Notes + "\nrefund: " + reason)
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to refund payment: %w", err)
		}
		return s.Audit.Record(tx, actorID, "payment.refund", "payment", payment.ID, map[string]interface{}{
			"reason": reason,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return &payment, nil
}

func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) List(bookingID uint) ([]models.Payment, error) {
	q := s.DB.Order("processed_at DESC")
	if bookingID != 0 {
		q = q.Where("booking_id = ?", bookingID)
	}
	var payments []models.Payment
	if err := q.Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
