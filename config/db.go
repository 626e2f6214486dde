package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"grandstay-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "grandstay_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// Migrate runs AutoMigrate in parent -> child order. Exposed separately so
// tests can migrate a throwaway database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.Payment{},
		&models.HousekeepingTask{},
		&models.MealOrder{},
		&models.AuditLog{},
		&models.Notification{},
	)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	SeedDatabase(db)
	return nil
}

// SeedDatabase creates reference data on an empty database: a default admin
// account, the standard room type catalogue and a floor of rooms per type.
func SeedDatabase(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Username: envOrDefault("ADMIN_USERNAME", "admin"),
				FullName: "Administrator",
				Password: string(hash),
				Role:     models.RoleAdmin,
				IsActive: true,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", BasePrice: 80, MaxOccupancy: 2, Amenities: []byte(`["wifi","tv"]`)},
			{Name: "Superior", BasePrice: 120, MaxOccupancy: 3, Amenities: []byte(`["wifi","tv","minibar"]`)},
			{Name: "Deluxe", BasePrice: 180, MaxOccupancy: 4, Amenities: []byte(`["wifi","tv","minibar","balcony"]`)},
			{Name: "Suite", BasePrice: 300, MaxOccupancy: 5, Amenities: []byte(`["wifi","tv","minibar","balcony","kitchenette"]`)},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
			return
		}
		log.Println("Room types seeded")

		rooms := make([]models.Room, 0, 16)
		for i, rt := range roomTypes {
			for j := 1; j <= 4; j++ {
				rooms = append(rooms, models.Room{
					RoomNumber: fmt.Sprintf("%d0%d", i+1, j),
					RoomTypeID: rt.ID,
					Status:     models.RoomAvailable,
					Floor:      fmt.Sprintf("%d", i+1),
				})
			}
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}
}
