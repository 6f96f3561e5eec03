package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/middleware"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type AuthController struct {
	AuthSvc      *services.AuthService
	SecureCookie bool
}

func NewAuthController(svc *services.AuthService, secureCookie bool) *AuthController {
	return &AuthController{AuthSvc: svc, SecureCookie: secureCookie}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and sets the session cookie.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, expires, err := ctrl.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	maxAge := int(time.Until(expires).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", ctrl.SecureCookie, true)

	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}

// Logout clears the session cookie.
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", ctrl.SecureCookie, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"loggedOut": true})
}

// Me returns the current session's user.
func (ctrl *AuthController) Me(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}
