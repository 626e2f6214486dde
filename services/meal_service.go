package services

import (
	"fmt"
	"strings"

	"grandstay-backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	DB *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{DB: db}
}

// mealProgression: orders only move forward through the kitchen.
var mealProgression = map[models.MealOrderStatus]models.MealOrderStatus{
	models.MealOrdered:   models.MealPreparing,
	models.MealPreparing: models.MealReady,
	models.MealReady:     models.MealDelivered,
}

// CreateOrder accepts meal orders for in-house guests only.
func (s *MealService) CreateOrder(order *models.MealOrder) error {
	order.MealType = strings.TrimSpace(order.MealType)
	if order.MealType == "" {
		return fmt.Errorf("meal_type is required")
	}

	var booking models.Booking
	if err := s.DB.First(&booking, order.BookingID).Error; err != nil {
		return err
	}
	if booking.Status != models.BookingCheckedIn {
		return ErrInvalidTransition
	}

	if order.Status == "" {
		order.Status = models.MealOrdered
	}
	if err := s.DB.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create meal order: %w", err)
	}
	return nil
}

func (s *MealService) ListOrders(status models.MealOrderStatus) ([]models.MealOrder, error) {
	q := s.DB.Preload("Booking").Preload("Booking.Guest").Preload("Booking.Room").Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.MealOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list meal orders: %w", err)
	}
	return orders, nil
}

// Advance moves an order one step: ordered -> preparing -> ready -> delivered.
func (s *MealService) Advance(id uint) (*models.MealOrder, error) {
	var order models.MealOrder
	if err := s.DB.First(&order, id).Error; err != nil {
		return nil, err
	}

	next, ok := mealProgression[order.Status]
	if !ok {
		return nil, ErrInvalidTransition
	}
	if err := s.DB.Model(&order).Update("status", next).Error; err != nil {
		return nil, fmt.Errorf("failed to advance meal order: %w", err)
	}
	order.Status = next
	return &order, nil
}

func (s *MealService) Update(id uint, updates map[string]interface{}) (*models.MealOrder, error) {
	var order models.MealOrder
	if err := s.DB.First(&order, id).Error; err != nil {
		return nil, err
	}

	delete(updates, "id")
	delete(updates, "booking_id")
	delete(updates, "created_at")

	if err := s.DB.Model(&order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update meal order: %w", err)
	}
	return &order, nil
}
