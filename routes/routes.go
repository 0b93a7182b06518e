package routes

import (
	"net/http"

	"MediBook/config/authorization"
	"MediBook/controllers"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

/*
* Public routes first, then every resource under /api
* Routes that used to be open are guarded unless legacy mode is on
 */
func Routes(r *gin.Engine, ctl *controllers.Controller, g authorization.Guards) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if g.LegacyOpen {
		log.Warn().Msg("LEGACY_OPEN_ROUTES is on: appointment, patient, booking list and prescription routes are served without authentication")
	}

	api := r.Group("/api")
	ctl.AuthRoutes(api)
	ctl.DoctorRoutes(api, g)
	ctl.DoctorAppointmentRoutes(api, g)
	ctl.PatientRoutes(api, g)
	ctl.BookingRoutes(api, g)
	ctl.PrescriptionRoutes(api, g)
}
