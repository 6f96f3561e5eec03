package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// respondServiceError translates a service outcome into an HTTP response.
// Business outcomes keep their sentinel message so the frontend can match
// on it; anything unrecognized is a storage fault and logs server-side.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrOccupancyNotFound),
		errors.Is(err, services.ErrBillNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrBookingAlreadyCompleted),
		errors.Is(err, services.ErrAlreadyCheckedOut),
		errors.Is(err, services.ErrRoomNumberTaken):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrRoomTypeMismatch):
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidSession):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		logrus.WithError(err).Error("storage failure")
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
