package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-frontdesk/models"
)

func TestNightsBetween(t *testing.T) {
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "one second after check-in still bills one night",
			from: base,
			to:   base.Add(time.Second),
			want: 1,
		},
		{
			name: "two hours into day one",
			from: base,
			to:   base.Add(2 * time.Hour),
			want: 1,
		},
		{
			name: "exactly 24 hours",
			from: base,
			to:   base.Add(24 * time.Hour),
			want: 1,
		},
		{
			name: "crossing into the second night",
			from: base,
			to:   base.Add(24*time.Hour + time.Minute),
			want: 2,
		},
		{
			name: "exactly three days",
			from: base,
			to:   base.Add(72 * time.Hour),
			want: 3,
		},
		{
			name: "zero elapsed clamps to one",
			from: base,
			to:   base,
			want: 1,
		},
		{
			name: "clock skew backwards clamps to one",
			from: base,
			to:   base.Add(-time.Hour),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.from, tt.to))
		})
	}
}

func TestComputeBill(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	occ := models.Occupancy{
		ID:            "occ-1",
		GuestName:     "Alice",
		GuestPhone:    "555-1",
		RoomNumber:    "101",
		RoomType:      "Double",
		PricePerNight: 150,
		CheckInDate:   checkIn,
		Status:        models.OccupancyStatusActive,
	}

	checkOut := checkIn.Add(72 * time.Hour)
	bill := ComputeBill(occ, checkOut, "bill-1")

	assert.Equal(t, "bill-1", bill.ID)
	assert.Equal(t, "occ-1", bill.OccupancyID)
	assert.Equal(t, "Alice", bill.GuestName)
	assert.Equal(t, "101", bill.RoomNumber)
	assert.Equal(t, 3, bill.NightsStayed)
	assert.Equal(t, 450.0, bill.TotalAmount)
	assert.Equal(t, checkIn, bill.CheckInDate)
	assert.Equal(t, checkOut, bill.CheckOutDate)
}

func TestComputeBillUsesSnapshotPrice(t *testing.T) {
	// The occupancy carries the price snapshotted at check-in; the live room
	// record never participates.
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	occ := models.Occupancy{
		ID:            "occ-2",
		PricePerNight: 120,
		CheckInDate:   checkIn,
	}

	bill := ComputeBill(occ, checkIn.Add(25*time.Hour), "bill-2")
	assert.Equal(t, 2, bill.NightsStayed)
	assert.Equal(t, 240.0, bill.TotalAmount)
}

func TestComputeBillIsDeterministic(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	occ := models.Occupancy{ID: "occ-3", PricePerNight: 99, CheckInDate: checkIn}
	checkOut := checkIn.Add(30 * time.Hour)

	first := ComputeBill(occ, checkOut, "bill-3")
	second := ComputeBill(occ, checkOut, "bill-3")
	assert.Equal(t, first, second)
}
