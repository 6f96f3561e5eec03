package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type CheckInController struct {
	ReservationSvc *services.ReservationService
}

func NewCheckInController(svc *services.ReservationService) *CheckInController {
	return &CheckInController{ReservationSvc: svc}
}

type checkInPayload struct {
	GuestName    string `json:"guestName" binding:"required"`
	GuestPhone   string `json:"guestPhone" binding:"required"`
	GuestIDProof string `json:"guestIdProof" binding:"required"`
	RoomID       string `json:"roomId" binding:"required"`
	StayDuration int    `json:"stayDuration" binding:"required"`
}

// CheckIn handles a direct walk-in check-in.
func (ctrl *CheckInController) CheckIn(c *gin.Context) {
	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "guestName, guestPhone, guestIdProof, roomId and stayDuration are required")
		return
	}

	occ, err := ctrl.ReservationSvc.CheckIn(services.CheckInInput{
		GuestName:    payload.GuestName,
		GuestPhone:   payload.GuestPhone,
		GuestIDProof: payload.GuestIDProof,
		RoomID:       payload.RoomID,
		StayNights:   payload.StayDuration,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"checkIn": occ})
}

// ActiveCheckIns lists in-house stays.
func (ctrl *CheckInController) ActiveCheckIns(c *gin.Context) {
	occupancies, err := ctrl.ReservationSvc.ActiveOccupancies()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"checkIns": occupancies})
}

type checkoutPayload struct {
	CheckInID string `json:"checkInId" binding:"required"`
}

// Checkout finalizes a stay and returns its bill.
func (ctrl *CheckInController) Checkout(c *gin.Context) {
	var payload checkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkInId is required")
		return
	}

	bill, err := ctrl.ReservationSvc.Checkout(payload.CheckInID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bill": bill})
}

// GetBill returns the bill created at checkout for an occupancy.
func (ctrl *CheckInController) GetBill(c *gin.Context) {
	bill, err := ctrl.ReservationSvc.BillByOccupancy(c.Param("occupancyId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bill": bill})
}
