package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/handlers"
	"github.com/harentsoaR/doctors-portal/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	requireAuth := middleware.AuthMiddleware(h.Gate)
	requireAdmin := middleware.AdminMiddleware(h.Gate, h.Log)

	r.GET("/", h.Health)

	// Appointment Routes
	r.GET("/appointmentOptions", h.GetAppointmentOptions)
	r.GET("/appointspecialty", h.GetSpecialties)
	r.GET("/bookings", requireAuth, h.GetBookings)
	r.POST("/bookings", h.CreateBooking)

	// Auth & user Routes
	r.GET("/jwt", h.IssueToken)
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.PUT("/users/admin/:id", requireAuth, requireAdmin, h.MakeAdmin)
	r.GET("/users/admin/:email", h.CheckAdmin)

	doctors := r.Group("/doctors", requireAuth, requireAdmin)
	{
		doctors.POST("", h.CreateDoctor)
		doctors.GET("", h.ListDoctors)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}

	// Payment Routes
	r.GET("/payment/:id", h.GetBookingForPayment)
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	r.POST("/payments", h.RecordPayment)
}
