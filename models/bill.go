package models

import "time"

// Bill is created exactly once per occupancy, at checkout, and is immutable
// afterward. Guest and room fields are copied from the occupancy snapshot so
// the bill stays historically accurate.
type Bill struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	OccupancyID string `gorm:"column:occupancy_id;type:varchar(36);uniqueIndex" json:"occupancyId"`

	GuestName     string  `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestPhone    string  `gorm:"column:guest_phone;size:50" json:"guestPhone"`
	RoomNumber    string  `gorm:"column:room_number;size:50" json:"roomNumber"`
	RoomType      string  `gorm:"column:room_type;size:50" json:"roomType"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	NightsStayed int       `gorm:"column:nights_stayed" json:"nightsStayed"`
	TotalAmount  float64   `gorm:"column:total_amount" json:"totalAmount"`

	CreatedAt time.Time `json:"createdAt"`
}
