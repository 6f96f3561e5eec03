package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type DashboardController struct {
	ReservationSvc *services.ReservationService
}

func NewDashboardController(svc *services.ReservationService) *DashboardController {
	return &DashboardController{ReservationSvc: svc}
}

func (ctrl *DashboardController) Stats(c *gin.Context) {
	stats, err := ctrl.ReservationSvc.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
