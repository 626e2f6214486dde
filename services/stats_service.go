package services

import (
	"fmt"
	"time"

	"grandstay-backend/models"
	"grandstay-backend/utils"

	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type DashboardStats struct {
	TotalRooms           int64   `json:"total_rooms"`
	AvailableRooms       int64   `json:"available_rooms"`
	OccupiedRooms        int64   `json:"occupied_rooms"`
	TodaysCheckIns       int64   `json:"todays_checkins"`
	TodaysCheckOuts      int64   `json:"todays_checkouts"`
	PendingHousekeeping  int64   `json:"pending_housekeeping"`
	PendingKitchenOrders int64   `json:"pending_kitchen_orders"`
	TotalRevenueToday    float64 `json:"total_revenue_today"`
	OccupancyRate        float64 `json:"occupancy_rate"`
}

func (s *StatsService) Dashboard(now time.Time) (*DashboardStats, error) {
	today := utils.DateOnly(now.UTC())
	tomorrow := today.AddDate(0, 0, 1)

	var stats DashboardStats

	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := s.DB.Model(&models.Room{}).Where("status = ?", models.RoomAvailable).Count(&stats.AvailableRooms).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Room{}).Where("status = ?", models.RoomOccupied).Count(&stats.OccupiedRooms).Error; err != nil {
		return nil, err
	}

	// Arrivals due today plus arrivals already processed today.
	if err := s.DB.Model(&models.Booking{}).
		Where("check_in_date = ? AND status IN ?", today,
			[]models.BookingStatus{models.BookingReserved, models.BookingConfirmed, models.BookingCheckedIn}).
		Count(&stats.TodaysCheckIns).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Booking{}).
		Where("check_out_date = ? AND status IN ?", today,
			[]models.BookingStatus{models.BookingCheckedIn, models.BookingCheckedOut}).
		Count(&stats.TodaysCheckOuts).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.HousekeepingTask{}).
		Where("status IN ?", []models.TaskStatus{models.TaskPending, models.TaskInProgress}).
		Count(&stats.PendingHousekeeping).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.MealOrder{}).
		Where("status IN ?", []models.MealOrderStatus{models.MealOrdered, models.MealPreparing, models.MealReady}).
		Count(&stats.PendingKitchenOrders).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total float64 }
	err := s.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", models.PaymentCompleted).
		Where("processed_at >= ? AND processed_at < ?", today, tomorrow).
		Scan(&revenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	stats.TotalRevenueToday = revenue.Total

	if stats.TotalRooms > 0 {
		stats.OccupancyRate = float64(stats.OccupiedRooms) / float64(stats.TotalRooms)
	}
	return &stats, nil
}

type GuestsPerDay struct {
	Date   string `json:"date"`
	Guests int64  `json:"guests"`
}

// GuestsPerDaySeries counts in-house stays per calendar day over the last
// `days` days, feeding the dashboard area chart.
func (s *StatsService) GuestsPerDaySeries(now time.Time, days int) ([]GuestsPerDay, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	today := utils.DateOnly(now.UTC())

	out := make([]GuestsPerDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)

		var n int64
		err := s.DB.Model(&models.Booking{}).
			Where("check_in_date <= ? AND check_out_date > ?", day, day).
			Where("status IN ?", []models.BookingStatus{models.BookingCheckedIn, models.BookingCheckedOut, models.BookingConfirmed}).
			Count(&n).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count stays for %s: %w", day.Format("2006-01-02"), err)
		}
		out = append(out, GuestsPerDay{Date: day.Format("2006-01-02"), Guests: n})
	}
	return out, nil
}
