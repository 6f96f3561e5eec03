package models

import "time"

// Occupancy statuses.
const (
	OccupancyStatusActive    = "Active"
	OccupancyStatusCompleted = "Completed"
)

// Occupancy binds one guest to one room for a stay. Guest and room fields
// are denormalized on purpose: the room's number, type and price are
// snapshotted at check-in so later edits to the room never retroactively
// change an active stay or its bill.
//
// At most one Active occupancy may exist per room at any instant. That is
// enforced by the conditional room status update in RoomService.TryAcquire,
// not by this struct.
type Occupancy struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	GuestID      string `gorm:"column:guest_id;type:varchar(36);index" json:"guestId"`
	GuestName    string `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestPhone   string `gorm:"column:guest_phone;size:50" json:"guestPhone"`
	GuestIDProof string `gorm:"column:guest_id_proof;size:255" json:"guestIdProof"`

	RoomID        string  `gorm:"column:room_id;type:varchar(36);index" json:"roomId"`
	RoomNumber    string  `gorm:"column:room_number;size:50" json:"roomNumber"`
	RoomType      string  `gorm:"column:room_type;size:50" json:"roomType"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`

	CheckInDate        time.Time  `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate       time.Time  `gorm:"column:check_out_date" json:"checkOutDate"`
	ActualCheckOutDate *time.Time `gorm:"column:actual_check_out_date" json:"actualCheckOutDate"`

	// NightsStayed is the stay-duration estimate until checkout, then the
	// billed night count.
	NightsStayed  int     `gorm:"column:nights_stayed" json:"nightsStayed"`
	EstimatedBill float64 `gorm:"column:estimated_bill" json:"estimatedBill"`

	Status    string    `gorm:"size:50;index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
