package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// BookingService is the booking ledger. Bookings are soft holds on a room
// *type*: no overlap checking happens here because the concrete room is only
// chosen at conversion time.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// AccompanyingGuest is a draft entry captured with a booking; real guest
// records are only created at check-in.
type AccompanyingGuest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CreateBookingInput carries a new reservation request.
type CreateBookingInput struct {
	GuestName          string
	GuestPhone         string
	RoomType           string
	CheckInDate        time.Time
	CheckOutDate       time.Time
	Notes              string
	AccompanyingGuests []AccompanyingGuest
}

// Create records a Confirmed booking. Dates are validated here and never
// mutate afterward.
func (s *BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	var booking models.Booking

	in.GuestName = strings.TrimSpace(in.GuestName)
	in.GuestPhone = strings.TrimSpace(in.GuestPhone)
	if in.GuestName == "" {
		return booking, validationf("guest name is required")
	}
	if in.GuestPhone == "" {
		return booking, validationf("guest phone is required")
	}
	if !models.IsValidRoomType(in.RoomType) {
		return booking, validationf("unknown room type %q", in.RoomType)
	}
	if in.CheckInDate.IsZero() || in.CheckOutDate.IsZero() {
		return booking, validationf("check-in and check-out dates are required")
	}
	if !in.CheckOutDate.After(in.CheckInDate) {
		return booking, validationf("check-out date must be after check-in date")
	}

	var accompanying datatypes.JSON
	if len(in.AccompanyingGuests) > 0 {
		normalized := make([]AccompanyingGuest, 0, len(in.AccompanyingGuests))
		for _, g := range in.AccompanyingGuests {
			g.Name = strings.TrimSpace(g.Name)
			if g.Name == "" {
				continue
			}
			if g.Type == "" {
				g.Type = "Adult"
			}
			normalized = append(normalized, g)
		}
		raw, err := json.Marshal(normalized)
		if err != nil {
			return booking, fmt.Errorf("encode accompanying guests: %w", err)
		}
		accompanying = datatypes.JSON(raw)
	}

	booking = models.Booking{
		ID:                 uuid.NewString(),
		GuestName:          in.GuestName,
		GuestPhone:         in.GuestPhone,
		RoomType:           in.RoomType,
		CheckInDate:        in.CheckInDate,
		CheckOutDate:       in.CheckOutDate,
		Status:             models.BookingStatusConfirmed,
		Notes:              strings.TrimSpace(in.Notes),
		AccompanyingGuests: accompanying,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

// completeBooking flips Confirmed -> Completed in one conditional UPDATE so
// a booking can only ever be completed once. Zero rows affected means the
// guard tripped (or the booking vanished); the re-query decides which error
// the caller sees.
func completeBooking(tx *gorm.DB, bookingID string) error {
	res := tx.Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, models.BookingStatusConfirmed).
		Update("status", models.BookingStatusCompleted)
	if res.Error != nil {
		return fmt.Errorf("complete booking %s: %w", bookingID, res.Error)
	}
	if res.RowsAffected == 0 {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("complete booking %s: %w", bookingID, err)
		}
		return ErrBookingAlreadyCompleted
	}
	return nil
}

// Complete marks a booking Completed. Calling it twice fails with
// ErrBookingAlreadyCompleted rather than silently succeeding.
func (s *BookingService) Complete(bookingID string) (models.Booking, error) {
	if err := completeBooking(s.DB, bookingID); err != nil {
		return models.Booking{}, err
	}
	return s.GetByID(bookingID)
}

// Pending returns bookings that have not been converted yet, soonest
// check-in first.
func (s *BookingService) Pending() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("status <> ?", models.BookingStatusCompleted).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list pending bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) GetByID(id string) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, ErrBookingNotFound
		}
		return booking, fmt.Errorf("get booking %s: %w", id, err)
	}
	return booking, nil
}
