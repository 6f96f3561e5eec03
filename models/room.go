package models

import "time"

// Room statuses. The automated flows only ever move a room between these
// two values.
const (
	RoomStatusAvailable = "Available"
	RoomStatusOccupied  = "Occupied"
)

// RoomTypes lists the accepted room type names. Bookings hold a type, not a
// concrete room, so the same list validates both.
var RoomTypes = []string{"Single", "Double", "Suite", "Deluxe"}

func IsValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

func IsValidRoomStatus(s string) bool {
	return s == RoomStatusAvailable || s == RoomStatusOccupied
}

type Room struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	RoomNumber    string    `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"roomNumber"`
	RoomType      string    `gorm:"column:room_type;size:50" json:"roomType"`
	PricePerNight float64   `gorm:"column:price_per_night" json:"pricePerNight"`
	Status        string    `gorm:"size:50" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
