package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"grandstay-backend/controllers"
	"grandstay-backend/middleware"
	"grandstay-backend/models"
	"grandstay-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

type Controllers struct {
	Auth          *controllers.AuthController
	Bookings      *controllers.BookingController
	Rooms         *controllers.RoomController
	RoomTypes     *controllers.RoomTypeController
	Guests        *controllers.GuestController
	Payments      *controllers.PaymentController
	Housekeeping  *controllers.HousekeepingController
	Kitchen       *controllers.KitchenController
	Audit         *controllers.AuditController
	Notifications *controllers.NotificationController
	Stats         *controllers.StatsController
}

func SetupRouter(ctrl Controllers, authSvc *services.AuthService, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(authSvc))
	{
		protected.POST("/auth/logout", ctrl.Auth.Logout)
		protected.GET("/users/me", ctrl.Auth.Me)

		users := protected.Group("/users", middleware.RequireRole(models.RoleManager))
		{
			users.GET("", ctrl.Auth.GetUsers)
			users.POST("", ctrl.Auth.CreateUser)
			users.PUT("/:id", ctrl.Auth.UpdateUser)
		}

		rooms := protected.Group("/rooms")
		{
			// /types before /:id so the literal segment wins
			rooms.GET("/types", ctrl.RoomTypes.GetRoomTypes)
			rooms.POST("/types", ctrl.RoomTypes.CreateRoomType)
			rooms.GET("/types/:id", ctrl.RoomTypes.GetRoomType)
			rooms.PUT("/types/:id", ctrl.RoomTypes.UpdateRoomType)
			rooms.DELETE("/types/:id", ctrl.RoomTypes.DeleteRoomType)

			rooms.GET("", ctrl.Rooms.GetRooms)
			rooms.POST("", ctrl.Rooms.CreateRoom)
			rooms.GET("/available", ctrl.Bookings.AvailableRooms)
			rooms.GET("/:id", ctrl.Rooms.GetRoom)
			rooms.PUT("/:id", ctrl.Rooms.UpdateRoom)
			rooms.PATCH("/:id/status", ctrl.Rooms.SetRoomStatus)
			rooms.DELETE("/:id", ctrl.Rooms.DeleteRoom)
		}

		guests := protected.Group("/guests")
		{
			guests.GET("", ctrl.Guests.GetGuests)
			guests.POST("", ctrl.Guests.CreateGuest)
			guests.GET("/:id", ctrl.Guests.GetGuest)
			guests.PUT("/:id", ctrl.Guests.UpdateGuest)
			guests.DELETE("/:id", ctrl.Guests.DeleteGuest)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", ctrl.Bookings.GetBookings)
			bookings.POST("", ctrl.Bookings.CreateBooking)
			bookings.POST("/check-in", ctrl.Bookings.CheckIn)
			bookings.POST("/check-out", ctrl.Bookings.CheckOut)
			bookings.GET("/:id", ctrl.Bookings.GetBooking)
			bookings.PUT("/:id", ctrl.Bookings.UpdateBooking)
			bookings.POST("/:id/cancel", ctrl.Bookings.Cancel)
			bookings.GET("/:id/check-in-options", ctrl.Bookings.CheckInOptions)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("", ctrl.Payments.GetPayments)
			payments.POST("", ctrl.Payments.CreatePayment)
			payments.POST("/refund", ctrl.Payments.RefundPayment)
			payments.GET("/:id", ctrl.Payments.GetPayment)
		}

		housekeeping := protected.Group("/housekeeping/tasks")
		{
			housekeeping.GET("", ctrl.Housekeeping.GetTasks)
			housekeeping.POST("", ctrl.Housekeeping.CreateTask)
			housekeeping.GET("/:id", ctrl.Housekeeping.GetTask)
			housekeeping.PUT("/:id", ctrl.Housekeeping.UpdateTask)
			housekeeping.PATCH("/:id/complete", ctrl.Housekeeping.CompleteTask)
		}

		meals := protected.Group("/meals/orders")
		{
			meals.GET("", ctrl.Kitchen.GetOrders)
			meals.POST("", ctrl.Kitchen.CreateOrder)
			meals.PUT("/:id", ctrl.Kitchen.UpdateOrder)
			meals.PATCH("/:id/advance", ctrl.Kitchen.AdvanceOrder)
		}

		audit := protected.Group("/audit", middleware.RequireRole(models.RoleManager, models.RoleAuditor))
		{
			audit.GET("/logs", ctrl.Audit.GetLogs)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", ctrl.Notifications.GetNotifications)
			notifications.POST("", ctrl.Notifications.CreateNotification)
			notifications.PATCH("/:id/read", ctrl.Notifications.MarkRead)
			notifications.POST("/mark-all-read", ctrl.Notifications.MarkAllRead)
		}

		stats := protected.Group("/stats")
		{
			stats.GET("/dashboard", ctrl.Stats.GetDashboard)
			stats.GET("/guests-per-day", ctrl.Stats.GetGuestsPerDay)
		}
	}

	return r
}
