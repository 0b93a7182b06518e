package controllers

import (
	"net/http"

	"MediBook/config/authorization"
	"MediBook/models"
	"MediBook/role"
	"MediBook/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) BookingRoutes(router gin.IRouter, g authorization.Guards) {
	bookings := router.Group("/bookings")
	bookings.POST("", append(g.Require(role.User, role.Admin), ctl.CreateBooking)...)
	bookings.GET("", append(g.Legacy(), ctl.ListBookings)...)
	bookings.PUT("/:id", append(g.Require(role.Admin, role.Doctor), ctl.UpdateBooking)...)
	bookings.DELETE("/:id", append(g.Require(role.Admin), ctl.DeleteBooking)...)
}

func (ctl *Controller) DoctorAppointmentRoutes(router gin.IRouter, g authorization.Guards) {
	appointments := router.Group("/doctor/appointments")
	appointments.GET("", append(g.Legacy(role.Doctor, role.Admin), ctl.ListDoctorAppointments)...)
	appointments.PUT("/:id/status", append(g.Legacy(role.Doctor, role.Admin), ctl.SetDoctorStatus)...)
	appointments.DELETE("/:id", append(g.Legacy(role.Doctor, role.Admin), ctl.DeleteAppointment)...)
}

/*
* Bind the booking form and pass it to the service
* Reply 201 with the assigned token number
 */
func (ctl *Controller) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if !bindRequest(c, &req) {
		return
	}
	booking, err := ctl.Bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     util.BOOKING_CREATED_SUCCESSFULLY,
		"tokenNumber": booking.TokenNumber,
		"booking":     booking,
	})
}

func (ctl *Controller) ListBookings(c *gin.Context) {
	bookings, err := ctl.Bookings.ListBookings(c.Request.Context(), c.Query("patientEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctl *Controller) UpdateBooking(c *gin.Context) {
	data, ok := bindBody(c)
	if !ok {
		return
	}
	booking, err := ctl.Bookings.UpdateBooking(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctl *Controller) DeleteBooking(c *gin.Context) {
	if err := ctl.Bookings.DeleteBooking(c.Request.Context(), c.Param("id"), util.BOOKING_NOT_FOUND); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(util.BOOKING_DELETED))
}

func (ctl *Controller) ListDoctorAppointments(c *gin.Context) {
	bookings, err := ctl.Bookings.ListDoctorAppointments(c.Request.Context(), c.Query("doctorEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctl *Controller) SetDoctorStatus(c *gin.Context) {
	data, ok := bindBody(c)
	if !ok {
		return
	}
	booking, err := ctl.Bookings.SetDoctorStatus(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctl *Controller) DeleteAppointment(c *gin.Context) {
	if err := ctl.Bookings.DeleteBooking(c.Request.Context(), c.Param("id"), util.APPOINTMENT_NOT_FOUND); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(util.APPOINTMENT_DELETED))
}
