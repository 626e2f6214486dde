package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"grandstay-backend/config"
	"grandstay-backend/controllers"
	"grandstay-backend/routes"
	"grandstay-backend/services"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	logger.Info("database connection established, migrations applied")

	// Services
	auditService := services.NewAuditService(db)
	notificationService := services.NewNotificationService(db)
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db, availabilityService, auditService, notificationService)
	guestService := services.NewGuestService(db)
	roomService := services.NewRoomService(db, auditService)
	roomTypeService := services.NewRoomTypeService(db)
	paymentService := services.NewPaymentService(db, bookingService, auditService)
	housekeepingService := services.NewHousekeepingService(db)
	mealService := services.NewMealService(db)
	statsService := services.NewStatsService(db)
	authService := services.NewAuthService(db)

	// Controllers
	ctrls := routes.Controllers{
		Auth:          controllers.NewAuthController(authService),
		Bookings:      controllers.NewBookingController(bookingService, availabilityService, guestService),
		Rooms:         controllers.NewRoomController(roomService),
		RoomTypes:     controllers.NewRoomTypeController(roomTypeService),
		Guests:        controllers.NewGuestController(guestService),
		Payments:      controllers.NewPaymentController(paymentService),
		Housekeeping:  controllers.NewHousekeepingController(housekeepingService),
		Kitchen:       controllers.NewKitchenController(mealService),
		Audit:         controllers.NewAuditController(auditService),
		Notifications: controllers.NewNotificationController(notificationService),
		Stats:         controllers.NewStatsController(statsService),
	}

	router := routes.SetupRouter(ctrls, authService, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Expiry sweeper: bookings whose check-in day passed without a check-in
	// flip to expired. Once an hour is plenty at day granularity.
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			if _, err := bookingService.ExpireOverdue(time.Now()); err != nil {
				logger.Warnf("expiry sweep failed: %v", err)
			}
			select {
			case <-ticker.C:
			case <-sweeperCtx.Done():
				return
			}
		}
	}()

	go func() {
		logger.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt, then shut down gracefully.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")
	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Info("server stopped gracefully")
}
