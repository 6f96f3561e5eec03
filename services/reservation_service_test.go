package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

func newReservationService(t *testing.T, db *gorm.DB, at time.Time) *ReservationService {
	t.Helper()
	svc := NewReservationService(db)
	svc.Now = func() time.Time { return at }
	return svc
}

func aliceCheckIn(roomID string, nights int) CheckInInput {
	return CheckInInput{
		GuestName:    "Alice",
		GuestPhone:   "555-1",
		GuestIDProof: "P1",
		RoomID:       roomID,
		StayNights:   nights,
	}
}

var testClock = time.Date(2025, 5, 12, 15, 0, 0, 0, time.UTC)

func TestCheckInValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "101", "Double", 150)

	tests := []struct {
		name   string
		mutate func(*CheckInInput)
	}{
		{name: "missing guest name", mutate: func(in *CheckInInput) { in.GuestName = "" }},
		{name: "missing guest phone", mutate: func(in *CheckInInput) { in.GuestPhone = " " }},
		{name: "missing id proof", mutate: func(in *CheckInInput) { in.GuestIDProof = "" }},
		{name: "missing room id", mutate: func(in *CheckInInput) { in.RoomID = "" }},
		{name: "zero nights", mutate: func(in *CheckInInput) { in.StayNights = 0 }},
		{name: "negative nights", mutate: func(in *CheckInInput) { in.StayNights = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := aliceCheckIn(room.ID, 3)
			tt.mutate(&in)
			_, err := svc.CheckIn(in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Validation failures leave the room untouched.
	var reloaded models.Room
	require.NoError(t, db.First(&reloaded, "id = ?", room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, reloaded.Status)
}

func TestDirectCheckIn(t *testing.T) {
	// Room 101 (Double, $150/night): Alice checks in for 3 nights.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "101", "Double", 150)

	occ, err := svc.CheckIn(aliceCheckIn(room.ID, 3))
	require.NoError(t, err)

	assert.Equal(t, models.OccupancyStatusActive, occ.Status)
	assert.Equal(t, "Alice", occ.GuestName)
	assert.Equal(t, "P1", occ.GuestIDProof)
	assert.Equal(t, "101", occ.RoomNumber)
	assert.Equal(t, "Double", occ.RoomType)
	assert.Equal(t, 150.0, occ.PricePerNight)
	assert.Equal(t, 3, occ.NightsStayed)
	assert.Equal(t, 450.0, occ.EstimatedBill)
	assert.True(t, occ.CheckOutDate.Equal(testClock.Add(72*time.Hour)))
	assert.Nil(t, occ.ActualCheckOutDate)

	var reloadedRoom models.Room
	require.NoError(t, db.First(&reloadedRoom, "id = ?", room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, reloadedRoom.Status)

	// Guest record exists and is linked.
	var guest models.Guest
	require.NoError(t, db.First(&guest, "id = ?", occ.GuestID).Error)
	assert.Equal(t, "Alice", guest.Name)

	// A second check-in attempt on the same room fails.
	_, err = svc.CheckIn(CheckInInput{
		GuestName: "Eve", GuestPhone: "555-9", GuestIDProof: "P9",
		RoomID: room.ID, StayNights: 1,
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestCheckInRoomNotFound(t *testing.T) {
	svc := newReservationService(t, newTestDB(t), testClock)
	_, err := svc.CheckIn(aliceCheckIn("no-such-room", 2))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestConcurrentCheckInsOneWinner(t *testing.T) {
	// For any number of concurrent check-in attempts on the same room, at
	// most one occupancy ends up Active; the rest observe the conflict.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "101", "Double", 150)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CheckIn(aliceCheckIn(room.ID, 2))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrRoomUnavailable)
		}
	}
	assert.Equal(t, 1, wins)

	var active int64
	require.NoError(t, db.Model(&models.Occupancy{}).
		Where("room_id = ? AND status = ?", room.ID, models.OccupancyStatusActive).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)
}

func seedConfirmedBooking(t *testing.T, svc *BookingService, roomType string, nights int) models.Booking {
	t.Helper()

	checkIn := testClock.Add(24 * time.Hour)
	booking, err := svc.Create(CreateBookingInput{
		GuestName:    "Bob",
		GuestPhone:   "555-2",
		RoomType:     roomType,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.Add(time.Duration(nights) * 24 * time.Hour),
	})
	require.NoError(t, err)
	return booking
}

func TestConvertBooking(t *testing.T) {
	// A confirmed Suite booking spanning 2 nights converts onto a Suite
	// room; the booking completes and the room becomes occupied.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	bookings := NewBookingService(db)

	room := seedRoom(t, db, "201", "Suite", 250)
	booking := seedConfirmedBooking(t, bookings, "Suite", 2)

	occ, err := svc.ConvertBooking(booking.ID, room.ID, "P2")
	require.NoError(t, err)

	assert.Equal(t, models.OccupancyStatusActive, occ.Status)
	assert.Equal(t, "Bob", occ.GuestName)
	assert.Equal(t, "P2", occ.GuestIDProof)
	assert.Equal(t, 2, occ.NightsStayed)
	assert.Equal(t, 500.0, occ.EstimatedBill)
	// The stay starts now, not on the originally requested date, and keeps
	// the booked check-out date.
	assert.True(t, occ.CheckInDate.Equal(testClock))
	assert.True(t, occ.CheckOutDate.Equal(booking.CheckOutDate))

	reloadedBooking, err := bookings.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, reloadedBooking.Status)

	var reloadedRoom models.Room
	require.NoError(t, db.First(&reloadedRoom, "id = ?", room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, reloadedRoom.Status)

	// Converting the same booking again trips the guard.
	spare := seedRoom(t, db, "202", "Suite", 250)
	_, err = svc.ConvertBooking(booking.ID, spare.ID, "P2")
	assert.ErrorIs(t, err, ErrBookingAlreadyCompleted)
}

func TestConvertBookingRoomTypeMismatch(t *testing.T) {
	// Converting a Suite booking onto a Single room fails server-side and
	// leaves no state behind.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	bookings := NewBookingService(db)

	room := seedRoom(t, db, "105", "Single", 100)
	booking := seedConfirmedBooking(t, bookings, "Suite", 2)

	_, err := svc.ConvertBooking(booking.ID, room.ID, "P2")
	assert.ErrorIs(t, err, ErrRoomTypeMismatch)

	var reloadedRoom models.Room
	require.NoError(t, db.First(&reloadedRoom, "id = ?", room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, reloadedRoom.Status)

	reloadedBooking, err := bookings.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, reloadedBooking.Status)

	var occCount int64
	require.NoError(t, db.Model(&models.Occupancy{}).Count(&occCount).Error)
	assert.EqualValues(t, 0, occCount)
}

func TestConvertBookingRoomUnavailable(t *testing.T) {
	// Losing the room leaves the booking Confirmed for a retry with a
	// different room.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	bookings := NewBookingService(db)

	room := seedRoom(t, db, "201", "Suite", 250)
	booking := seedConfirmedBooking(t, bookings, "Suite", 2)

	_, err := svc.CheckIn(aliceCheckIn(room.ID, 1))
	require.NoError(t, err)

	_, err = svc.ConvertBooking(booking.ID, room.ID, "P2")
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	reloadedBooking, err := bookings.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, reloadedBooking.Status)
}

func TestConvertBookingNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "201", "Suite", 250)

	_, err := svc.ConvertBooking("no-such-booking", room.ID, "P2")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckoutRoundTrip(t *testing.T) {
	// Alice checks in for 3 nights and checks out exactly 3 days later.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "101", "Double", 150)

	occ, err := svc.CheckIn(aliceCheckIn(room.ID, 3))
	require.NoError(t, err)

	svc.Now = func() time.Time { return testClock.Add(72 * time.Hour) }

	bill, err := svc.Checkout(occ.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, bill.NightsStayed)
	assert.Equal(t, 450.0, bill.TotalAmount)
	assert.Equal(t, 150.0, bill.PricePerNight)
	assert.Equal(t, occ.ID, bill.OccupancyID)

	var reloadedRoom models.Room
	require.NoError(t, db.First(&reloadedRoom, "id = ?", room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, reloadedRoom.Status)

	var reloadedOcc models.Occupancy
	require.NoError(t, db.First(&reloadedOcc, "id = ?", occ.ID).Error)
	assert.Equal(t, models.OccupancyStatusCompleted, reloadedOcc.Status)
	assert.Equal(t, 3, reloadedOcc.NightsStayed)
	require.NotNil(t, reloadedOcc.ActualCheckOutDate)

	fetched, err := svc.BillByOccupancy(occ.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, fetched.ID)
}

func TestCheckoutMinimumOneNight(t *testing.T) {
	// Checking out one second after check-in still bills one night.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "101", "Double", 150)

	occ, err := svc.CheckIn(aliceCheckIn(room.ID, 3))
	require.NoError(t, err)

	svc.Now = func() time.Time { return testClock.Add(time.Second) }

	bill, err := svc.Checkout(occ.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, bill.NightsStayed)
	assert.Equal(t, 150.0, bill.TotalAmount)
}

func TestCheckoutUsesSnapshotPrice(t *testing.T) {
	// Raising the room price mid-stay does not change the bill.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "101", "Double", 150)

	occ, err := svc.CheckIn(aliceCheckIn(room.ID, 1))
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Room{}).
		Where("id = ?", room.ID).
		Update("price_per_night", 999).Error)

	bill, err := svc.Checkout(occ.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, bill.PricePerNight)
	assert.Equal(t, 150.0, bill.TotalAmount)
}

func TestCheckoutIdempotenceGuard(t *testing.T) {
	// A second checkout fails and no second bill appears.
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "101", "Double", 150)

	occ, err := svc.CheckIn(aliceCheckIn(room.ID, 2))
	require.NoError(t, err)

	_, err = svc.Checkout(occ.ID)
	require.NoError(t, err)

	_, err = svc.Checkout(occ.ID)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)

	var billCount int64
	require.NoError(t, db.Model(&models.Bill{}).
		Where("occupancy_id = ?", occ.ID).
		Count(&billCount).Error)
	assert.EqualValues(t, 1, billCount)

	_, err = svc.Checkout("no-such-occupancy")
	assert.ErrorIs(t, err, ErrOccupancyNotFound)
}

func TestCheckoutFreesRoomForNextGuest(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	room := seedRoom(t, db, "101", "Double", 150)

	occ, err := svc.CheckIn(aliceCheckIn(room.ID, 1))
	require.NoError(t, err)
	_, err = svc.Checkout(occ.ID)
	require.NoError(t, err)

	// Room is acquirable again; the completed stay doesn't count against
	// the one-active-occupancy rule.
	next, err := svc.CheckIn(CheckInInput{
		GuestName: "Eve", GuestPhone: "555-9", GuestIDProof: "P9",
		RoomID: room.ID, StayNights: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OccupancyStatusActive, next.Status)
}

func TestActiveOccupancies(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	roomA := seedRoom(t, db, "101", "Double", 150)
	roomB := seedRoom(t, db, "102", "Double", 150)

	first, err := svc.CheckIn(aliceCheckIn(roomA.ID, 2))
	require.NoError(t, err)

	svc.Now = func() time.Time { return testClock.Add(time.Hour) }
	second, err := svc.CheckIn(CheckInInput{
		GuestName: "Eve", GuestPhone: "555-9", GuestIDProof: "P9",
		RoomID: roomB.ID, StayNights: 1,
	})
	require.NoError(t, err)

	active, err := svc.ActiveOccupancies()
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Most recent check-in first.
	assert.Equal(t, second.ID, active[0].ID)
	assert.Equal(t, first.ID, active[1].ID)

	_, err = svc.Checkout(first.ID)
	require.NoError(t, err)

	active, err = svc.ActiveOccupancies()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestBillByOccupancyNotFound(t *testing.T) {
	svc := newReservationService(t, newTestDB(t), testClock)
	_, err := svc.BillByOccupancy("no-such-occupancy")
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, testClock)
	roomA := seedRoom(t, db, "101", "Double", 150)
	seedRoom(t, db, "102", "Single", 100)
	seedRoom(t, db, "103", "Suite", 250)

	_, err := svc.CheckIn(aliceCheckIn(roomA.ID, 1))
	require.NoError(t, err)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalRooms)
	assert.EqualValues(t, 1, stats.OccupiedRooms)
	assert.EqualValues(t, 2, stats.AvailableRooms)
	assert.EqualValues(t, 1, stats.TodayCheckIns)

	// The 1-night stay checks out tomorrow, so it isn't in today's
	// expected check-outs.
	assert.EqualValues(t, 0, stats.TodayCheckOuts)
}
