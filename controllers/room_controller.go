package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms lists the inventory ordered by room number.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rooms": rooms})
}

type createRoomPayload struct {
	RoomNumber    string  `json:"roomNumber" binding:"required"`
	RoomType      string  `json:"roomType" binding:"required"`
	PricePerNight float64 `json:"pricePerNight" binding:"required"`
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomNumber, roomType and pricePerNight are required")
		return
	}

	room, err := ctrl.RoomSvc.Create(payload.RoomNumber, payload.RoomType, payload.PricePerNight)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"room": room})
}

type updateRoomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRoomStatus is the manual override for reception correcting state.
// It does not touch occupancy bookkeeping.
func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	var payload updateRoomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	room, err := ctrl.RoomSvc.SetStatus(c.Param("id"), payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room})
}
