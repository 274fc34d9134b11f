package routes

import (
	"net/http"
	"time"

	"wardsched/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bookings *handlers.BookingHandler, rooms *handlers.RoomHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bookings)
	RegisterRoomRoutes(r, rooms, bookings)
	RegisterHealthRoute(r)
}

// RegisterBookingRoutes sets up the endpoints for booking placement.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", h.CreateBooking)
		api.PATCH("/:id", h.UpdateBooking)
		api.DELETE("/:id", h.CancelBooking)
	}
}

// RegisterRoomRoutes sets up room management and occupancy query endpoints.
func RegisterRoomRoutes(r *gin.Engine, rooms *handlers.RoomHandler, bookings *handlers.BookingHandler) {
	api := r.Group("/api/rooms")
	{
		api.GET("", rooms.ListRooms)
		api.POST("", rooms.CreateRoom)
		api.GET("/:id", rooms.GetRoom)
		api.DELETE("/:id", rooms.DeleteRoom)
		api.GET("/:id/occupancy", bookings.GetRoomOccupancy)
		api.GET("/:id/grid", bookings.GetWindowGrid)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "wardsched up"})
	})
}
