package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// ReservationService coordinates the cross-entity transitions: direct
// check-in, booking conversion, and checkout. Each transition runs in a
// single database transaction so the room acquisition and the records it
// justifies commit or roll back together; concurrent callers racing for
// the same room are serialized by the conditional status update inside
// acquireRoom.
type ReservationService struct {
	DB *gorm.DB

	// Now supplies timestamps for check-in/checkout; tests substitute a
	// fixed clock.
	Now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db, Now: time.Now}
}

// CheckInInput is a direct walk-in check-in request.
type CheckInInput struct {
	GuestName    string
	GuestPhone   string
	GuestIDProof string
	RoomID       string
	StayNights   int
}

func (in *CheckInInput) validate() error {
	in.GuestName = strings.TrimSpace(in.GuestName)
	in.GuestPhone = strings.TrimSpace(in.GuestPhone)
	in.GuestIDProof = strings.TrimSpace(in.GuestIDProof)
	if in.GuestName == "" {
		return validationf("guest name is required")
	}
	if in.GuestPhone == "" {
		return validationf("guest phone is required")
	}
	if in.GuestIDProof == "" {
		return validationf("guest id proof is required")
	}
	if in.RoomID == "" {
		return validationf("room id is required")
	}
	if in.StayNights < 1 {
		return validationf("stay duration must be at least 1 night")
	}
	return nil
}

// CheckIn assigns a walk-in guest to a room. The room acquisition, the
// guest record and the occupancy are committed as one unit; if anything
// after the acquire fails, the room flips back to Available with the
// rollback. On ErrRoomUnavailable the caller picks a different room — there
// is no automatic reassignment.
func (s *ReservationService) CheckIn(in CheckInInput) (models.Occupancy, error) {
	var occ models.Occupancy

	if err := in.validate(); err != nil {
		return occ, err
	}

	now := s.Now()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := acquireRoom(tx, in.RoomID)
		if err != nil {
			return err
		}

		guest := models.Guest{
			ID:      uuid.NewString(),
			Name:    in.GuestName,
			Phone:   in.GuestPhone,
			IDProof: in.GuestIDProof,
		}
		if err := tx.Create(&guest).Error; err != nil {
			return fmt.Errorf("create guest: %w", err)
		}

		occ = newOccupancy(guest, room, now, now.Add(time.Duration(in.StayNights)*24*time.Hour), in.StayNights)
		if err := tx.Create(&occ).Error; err != nil {
			return fmt.Errorf("create occupancy: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Occupancy{}, err
	}
	return occ, nil
}

// ConvertBooking turns a confirmed booking into an occupancy by assigning a
// concrete room. The chosen room's type must match the booking's requested
// type; that is a business rule enforced here, not a UI filter. The stay
// starts now, not on the originally requested date, and runs until the
// booked check-out date.
//
// The acquire, the occupancy and the booking completion share one
// transaction: a conversion either fully happens or leaves the booking
// Confirmed and the room untouched.
func (s *ReservationService) ConvertBooking(bookingID, roomID, idProof string) (models.Occupancy, error) {
	var occ models.Occupancy

	idProof = strings.TrimSpace(idProof)
	if bookingID == "" {
		return occ, validationf("booking id is required")
	}
	if roomID == "" {
		return occ, validationf("room id is required")
	}
	if idProof == "" {
		return occ, validationf("guest id proof is required")
	}

	now := s.Now()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("get booking %s: %w", bookingID, err)
		}
		if booking.Status == models.BookingStatusCompleted {
			return ErrBookingAlreadyCompleted
		}

		// Type check before touching any state, so a mismatch leaves the
		// room and the booking exactly as they were.
		var room models.Room
		if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("get room %s: %w", roomID, err)
		}
		if room.RoomType != booking.RoomType {
			return ErrRoomTypeMismatch
		}

		room, err := acquireRoom(tx, roomID)
		if err != nil {
			return err
		}

		guest := models.Guest{
			ID:      uuid.NewString(),
			Name:    booking.GuestName,
			Phone:   booking.GuestPhone,
			IDProof: idProof,
		}
		if err := tx.Create(&guest).Error; err != nil {
			return fmt.Errorf("create guest: %w", err)
		}

		nights := NightsBetween(booking.CheckInDate, booking.CheckOutDate)
		occ = newOccupancy(guest, room, now, booking.CheckOutDate, nights)
		if err := tx.Create(&occ).Error; err != nil {
			return fmt.Errorf("create occupancy: %w", err)
		}

		return completeBooking(tx, booking.ID)
	})
	if err != nil {
		return models.Occupancy{}, err
	}
	return occ, nil
}

// Checkout finalizes a stay: it creates the one bill for the occupancy,
// marks the occupancy Completed and returns the room to Available, all in a
// single transaction. A crash mid-checkout rolls everything back and leaves
// the room Occupied — a human notices and re-runs checkout; the unsafe
// direction (room falsely Available) cannot happen.
func (s *ReservationService) Checkout(occupancyID string) (models.Bill, error) {
	var bill models.Bill

	if occupancyID == "" {
		return bill, validationf("occupancy id is required")
	}

	now := s.Now()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var occ models.Occupancy
		if err := tx.First(&occ, "id = ?", occupancyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOccupancyNotFound
			}
			return fmt.Errorf("get occupancy %s: %w", occupancyID, err)
		}
		if occ.Status == models.OccupancyStatusCompleted {
			return ErrAlreadyCheckedOut
		}

		bill = ComputeBill(occ, now, uuid.NewString())
		if err := tx.Create(&bill).Error; err != nil {
			return fmt.Errorf("create bill: %w", err)
		}

		// Conditional on status so two racing checkouts can never complete
		// the occupancy twice; the loser's bill insert rolls back with its
		// transaction, and the unique index on bills.occupancy_id backstops
		// invariant 4 regardless.
		res := tx.Model(&models.Occupancy{}).
			Where("id = ? AND status = ?", occ.ID, models.OccupancyStatusActive).
			Updates(map[string]any{
				"actual_check_out_date": now,
				"nights_stayed":         bill.NightsStayed,
				"status":                models.OccupancyStatusCompleted,
			})
		if res.Error != nil {
			return fmt.Errorf("complete occupancy %s: %w", occ.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyCheckedOut
		}

		return releaseRoom(tx, occ.RoomID)
	})
	if err != nil {
		return models.Bill{}, err
	}
	return bill, nil
}

func newOccupancy(guest models.Guest, room models.Room, checkIn, checkOut time.Time, nights int) models.Occupancy {
	return models.Occupancy{
		ID:            uuid.NewString(),
		GuestID:       guest.ID,
		GuestName:     guest.Name,
		GuestPhone:    guest.Phone,
		GuestIDProof:  guest.IDProof,
		RoomID:        room.ID,
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		NightsStayed:  nights,
		EstimatedBill: room.PricePerNight * float64(nights),
		Status:        models.OccupancyStatusActive,
	}
}

// ActiveOccupancies returns in-house stays, most recent check-in first.
func (s *ReservationService) ActiveOccupancies() ([]models.Occupancy, error) {
	var occupancies []models.Occupancy
	err := s.DB.
		Where("status = ?", models.OccupancyStatusActive).
		Order("check_in_date DESC").
		Find(&occupancies).Error
	if err != nil {
		return nil, fmt.Errorf("list active occupancies: %w", err)
	}
	return occupancies, nil
}

// BillByOccupancy fetches the bill created at checkout for a stay.
func (s *ReservationService) BillByOccupancy(occupancyID string) (models.Bill, error) {
	var bill models.Bill
	if err := s.DB.First(&bill, "occupancy_id = ?", occupancyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bill, ErrBillNotFound
		}
		return bill, fmt.Errorf("get bill for occupancy %s: %w", occupancyID, err)
	}
	return bill, nil
}

// DashboardStats summarizes the front desk's day.
type DashboardStats struct {
	TotalRooms     int64 `json:"totalRooms"`
	AvailableRooms int64 `json:"availableRooms"`
	OccupiedRooms  int64 `json:"occupiedRooms"`
	TodayCheckIns  int64 `json:"todayCheckIns"`
	TodayCheckOuts int64 `json:"todayCheckOuts"`
}

// Stats counts rooms by status plus today's check-ins and expected
// check-outs. Plain filtered counts, no invariants.
func (s *ReservationService) Stats() (DashboardStats, error) {
	var stats DashboardStats

	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return stats, fmt.Errorf("count rooms: %w", err)
	}
	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomStatusOccupied).
		Count(&stats.OccupiedRooms).Error; err != nil {
		return stats, fmt.Errorf("count occupied rooms: %w", err)
	}
	stats.AvailableRooms = stats.TotalRooms - stats.OccupiedRooms

	now := s.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	if err := s.DB.Model(&models.Occupancy{}).
		Where("check_in_date >= ? AND check_in_date < ?", dayStart, dayEnd).
		Count(&stats.TodayCheckIns).Error; err != nil {
		return stats, fmt.Errorf("count today check-ins: %w", err)
	}
	if err := s.DB.Model(&models.Occupancy{}).
		Where("check_out_date >= ? AND check_out_date < ? AND status = ?",
			dayStart, dayEnd, models.OccupancyStatusActive).
		Count(&stats.TodayCheckOuts).Error; err != nil {
		return stats, fmt.Errorf("count today check-outs: %w", err)
	}

	return stats, nil
}
