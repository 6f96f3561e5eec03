package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-frontdesk/models"
)

var DB *gorm.DB

func EnvOrDefault(key, def string) string {
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
		q.Set("loc", "Local")
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

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "hotel_frontdesk")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate applies the schema for every entity. Split out of ConnectDatabase
// so tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ReceptionUser{},
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.Occupancy{},
		&models.Bill{},
	)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.Default.LogMode(logger.Warn)
	if strings.EqualFold(EnvOrDefault("DB_LOG", "warn"), "info") {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase populates the default reception login and the initial room
// inventory. Idempotent: each block only fires on an empty table.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.ReceptionUser{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword(
			[]byte(EnvOrDefault("SEED_RECEPTION_PASSWORD", "password123")), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Warn("failed to hash default reception password")
		} else {
			user := models.ReceptionUser{
				ID:       uuid.NewString(),
				Email:    "admin@hotel.com",
				Password: string(hash),
				Name:     "Reception Admin",
				Role:     "reception",
			}
			if err := DB.Create(&user).Error; err != nil {
				logrus.WithError(err).Warn("failed to seed reception user")
			} else {
				logrus.WithField("email", user.Email).Info("default reception user seeded")
			}
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		inventory := []struct {
			roomType string
			price    float64
			count    int
		}{
			{"Single", 100, 5},
			{"Double", 150, 5},
			{"Suite", 250, 3},
			{"Deluxe", 350, 2},
		}

		number := 101
		rooms := make([]models.Room, 0, 15)
		for _, tier := range inventory {
			for i := 0; i < tier.count; i++ {
				rooms = append(rooms, models.Room{
					ID:            uuid.NewString(),
					RoomNumber:    fmt.Sprintf("%d", number),
					RoomType:      tier.roomType,
					PricePerNight: tier.price,
					Status:        models.RoomStatusAvailable,
				})
				number++
			}
		}
		if err := DB.Create(&rooms).Error; err != nil {
			logrus.WithError(err).Warn("failed to seed rooms")
		} else {
			logrus.WithField("count", len(rooms)).Info("room inventory seeded")
		}
	}
}
