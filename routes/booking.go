package routes

import (
	"odontocarol/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", h.StartSession)
		booking.GET("/session/:sessionID", h.GetSession)
		booking.POST("/session/:sessionID/back", h.GoBack)
		booking.DELETE("/session/:sessionID", h.CancelSession)

		booking.PUT("/session/:sessionID/identity", h.SubmitIdentity)
		booking.POST("/session/:sessionID/identity/lookup", h.LookupPatient)

		booking.POST("/session/:sessionID/provider", h.AssignProvider)

		booking.GET("/session/:sessionID/calendar", h.MonthGrid)
		booking.POST("/session/:sessionID/date", h.SelectDate)
		booking.POST("/session/:sessionID/slot", h.SelectSlot)

		booking.POST("/session/:sessionID/confirm", h.Confirm)
	}
}
