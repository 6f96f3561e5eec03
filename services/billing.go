package services

import (
	"math"
	"time"

	"hotel-frontdesk/models"
)

// NightsBetween counts billable nights between two instants: elapsed time
// rounded up to whole 24h nights, never less than one. A guest leaving two
// hours after check-in is billed one night; crossing into the next 24h
// window bills two.
func NightsBetween(from, to time.Time) int {
	nights := int(math.Ceil(to.Sub(from).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// ComputeBill derives the final bill for an occupancy checked out at
// actualCheckOut. Pure: no clock, no storage, deterministic for its inputs.
// The price comes from the snapshot taken at check-in, never from the live
// room record.
func ComputeBill(occ models.Occupancy, actualCheckOut time.Time, billID string) models.Bill {
	nights := NightsBetween(occ.CheckInDate, actualCheckOut)
	return models.Bill{
		ID:            billID,
		OccupancyID:   occ.ID,
		GuestName:     occ.GuestName,
		GuestPhone:    occ.GuestPhone,
		RoomNumber:    occ.RoomNumber,
		RoomType:      occ.RoomType,
		PricePerNight: occ.PricePerNight,
		CheckInDate:   occ.CheckInDate,
		CheckOutDate:  actualCheckOut,
		NightsStayed:  nights,
		TotalAmount:   occ.PricePerNight * float64(nights),
	}
}
