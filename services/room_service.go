package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// RoomService is the room registry: inventory plus the atomic
// acquire/release transition that keeps a room bound to at most one active
// occupancy.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// acquireRoom flips a room from Available to Occupied in a single
// conditional UPDATE and returns the room as snapshotted after the flip.
// The status check and the write happen in one statement, so of N
// concurrent callers exactly one sees the row change; the rest get
// ErrRoomUnavailable. Run it on a transaction handle when the acquisition
// must commit or roll back together with other writes.
func acquireRoom(tx *gorm.DB, roomID string) (models.Room, error) {
	var room models.Room

	res := tx.Model(&models.Room{}).
		Where("id = ? AND status = ?", roomID, models.RoomStatusAvailable).
		Update("status", models.RoomStatusOccupied)
	if res.Error != nil {
		return room, fmt.Errorf("acquire room %s: %w", roomID, res.Error)
	}

	if res.RowsAffected == 0 {
		// Lost the race, or the room doesn't exist. Re-query to tell the
		// caller which.
		if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return room, ErrRoomNotFound
			}
			return room, fmt.Errorf("acquire room %s: %w", roomID, err)
		}
		return room, ErrRoomUnavailable
	}

	if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
		return room, fmt.Errorf("acquire room %s: %w", roomID, err)
	}
	return room, nil
}

// releaseRoom unconditionally marks a room Available again. Only checkout
// completion calls it.
func releaseRoom(tx *gorm.DB, roomID string) error {
	res := tx.Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("status", models.RoomStatusAvailable)
	if res.Error != nil {
		return fmt.Errorf("release room %s: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// TryAcquire attempts the Available -> Occupied transition.
func (s *RoomService) TryAcquire(roomID string) (models.Room, error) {
	return acquireRoom(s.DB, roomID)
}

// Release returns a room to Available.
func (s *RoomService) Release(roomID string) error {
	return releaseRoom(s.DB, roomID)
}

// SetStatus is the manual override path for reception correcting state. It
// bypasses occupancy bookkeeping entirely; the automated flows never use it.
func (s *RoomService) SetStatus(roomID, status string) (models.Room, error) {
	var room models.Room

	if !models.IsValidRoomStatus(status) {
		return room, validationf("status must be %q or %q", models.RoomStatusAvailable, models.RoomStatusOccupied)
	}

	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Update("status", status)
	if res.Error != nil {
		return room, fmt.Errorf("set room %s status: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return room, ErrRoomNotFound
	}

	if err := s.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return room, fmt.Errorf("reload room %s: %w", roomID, err)
	}
	return room, nil
}

// mysql duplicate-entry error number for unique index violations.
const mysqlErrDuplicateEntry = 1062

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}
	// sqlite (tests) reports unique violations as plain strings
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create adds a room to the inventory. Rooms start Available.
func (s *RoomService) Create(roomNumber, roomType string, pricePerNight float64) (models.Room, error) {
	var room models.Room

	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return room, validationf("room number is required")
	}
	if !models.IsValidRoomType(roomType) {
		return room, validationf("unknown room type %q", roomType)
	}
	if pricePerNight <= 0 {
		return room, validationf("price per night must be positive")
	}

	room = models.Room{
		ID:            uuid.NewString(),
		RoomNumber:    roomNumber,
		RoomType:      roomType,
		PricePerNight: pricePerNight,
		Status:        models.RoomStatusAvailable,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Room{}, ErrRoomNumberTaken
		}
		return models.Room{}, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

// GetAll returns the inventory ordered by room number.
func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id string) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("get room %s: %w", id, err)
	}
	return room, nil
}
