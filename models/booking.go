package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking statuses. Current flows only produce Confirmed and Completed;
// Pending and Cancelled are reserved for manual corrections.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// Booking is a reservation for a room type on future dates. It is not bound
// to a concrete room; the room is chosen when the booking is converted into
// an occupancy. Dates never change after creation.
type Booking struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	GuestName    string    `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestPhone   string    `gorm:"column:guest_phone;size:50" json:"guestPhone"`
	RoomType     string    `gorm:"column:room_type;size:50" json:"roomType"`
	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	Status       string    `gorm:"size:50;index" json:"status"`
	Notes        string    `gorm:"type:text" json:"notes"`

	// Draft list of accompanying guests captured at booking time, kept as
	// free-form JSON until real guest records are created at check-in.
	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanyingGuests,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
