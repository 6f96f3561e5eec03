package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
	"hotel-frontdesk/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the gin engine. Everything except
// /health and login sits behind the session middleware.
func SetupRouter(
	authSvc *services.AuthService,
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	cc *controllers.CheckInController,
	gc *controllers.GuestController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/logout", ac.Logout)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireSession(authSvc))
	{
		protected.GET("/auth/me", ac.Me)

		rooms := protected.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoomStatus)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.POST("/convert", bc.ConvertBooking)
		}

		checkins := protected.Group("/checkins")
		{
			checkins.POST("", cc.CheckIn)
			checkins.GET("/active", cc.ActiveCheckIns)
		}

		protected.POST("/checkout", cc.Checkout)
		protected.GET("/bills/:occupancyId", cc.GetBill)
		protected.GET("/guests", gc.GetGuests)
		protected.GET("/dashboard/stats", dc.Stats)
	}

	return r
}
