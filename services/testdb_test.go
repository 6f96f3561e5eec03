package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-frontdesk/config"
	"hotel-frontdesk/models"
)

// newTestDB opens an isolated sqlite database for one test. The busy
// timeout lets concurrent goroutines in the race tests queue on sqlite's
// writer lock instead of failing; the conditional UPDATEs under test are
// just as atomic there as on MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate",
		filepath.Join(t.TempDir(), "frontdesk.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number, roomType string, price float64) models.Room {
	t.Helper()

	room := models.Room{
		ID:            uuid.NewString(),
		RoomNumber:    number,
		RoomType:      roomType,
		PricePerNight: price,
		Status:        models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}
