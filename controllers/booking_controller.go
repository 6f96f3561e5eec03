package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type BookingController struct {
	BookingSvc     *services.BookingService
	ReservationSvc *services.ReservationService
}

func NewBookingController(bookingSvc *services.BookingService, reservationSvc *services.ReservationService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, ReservationSvc: reservationSvc}
}

type accompanyingGuestPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type createBookingPayload struct {
	GuestName          string                     `json:"guestName" binding:"required"`
	GuestPhone         string                     `json:"guestPhone" binding:"required"`
	RoomType           string                     `json:"roomType" binding:"required"`
	CheckInDate        string                     `json:"checkInDate" binding:"required"`
	CheckOutDate       string                     `json:"checkOutDate" binding:"required"`
	Notes              string                     `json:"notes"`
	AccompanyingGuests []accompanyingGuestPayload `json:"accompanyingGuests"`
}

// parseDate accepts both plain dates and RFC3339 timestamps, the two shapes
// the frontend sends.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateBooking records a future reservation for a room type.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "guestName, guestPhone, roomType, checkInDate and checkOutDate are required")
		return
	}

	checkIn, ok := parseDate(payload.CheckInDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkInDate format")
		return
	}
	checkOut, ok := parseDate(payload.CheckOutDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOutDate format")
		return
	}

	in := services.CreateBookingInput{
		GuestName:    payload.GuestName,
		GuestPhone:   payload.GuestPhone,
		RoomType:     payload.RoomType,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Notes:        payload.Notes,
	}
	for _, g := range payload.AccompanyingGuests {
		in.AccompanyingGuests = append(in.AccompanyingGuests, services.AccompanyingGuest{Name: g.Name, Type: g.Type})
	}

	booking, err := ctrl.BookingSvc.Create(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"booking": booking})
}

// GetBookings lists bookings not yet converted, soonest check-in first.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.Pending()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bookings": bookings})
}

type convertBookingPayload struct {
	BookingID    string `json:"bookingId" binding:"required"`
	RoomID       string `json:"roomId" binding:"required"`
	GuestIDProof string `json:"guestIdProof" binding:"required"`
}

// ConvertBooking turns a booking into an occupancy on a concrete room.
func (ctrl *BookingController) ConvertBooking(c *gin.Context) {
	var payload convertBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bookingId, roomId and guestIdProof are required")
		return
	}

	occ, err := ctrl.ReservationSvc.ConvertBooking(payload.BookingID, payload.RoomID, payload.GuestIDProof)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"checkIn": occ})
}
