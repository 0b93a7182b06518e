package controllers

import (
	"net/http"

	"MediBook/config/authorization"
	"MediBook/role"
	"MediBook/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) PatientRoutes(router gin.IRouter, g authorization.Guards) {
	patients := router.Group("/patients")
	patients.GET("", append(g.Legacy(role.Doctor, role.Admin), ctl.ListPatients)...)
	patients.DELETE("/:id", append(g.Legacy(role.Doctor, role.Admin), ctl.DeletePatientRecord)...)
}

func (ctl *Controller) ListPatients(c *gin.Context) {
	records, err := ctl.Bookings.ListPatients(c.Request.Context(), c.Query("doctorId"), c.Query("doctorName"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (ctl *Controller) DeletePatientRecord(c *gin.Context) {
	if err := ctl.Bookings.DeletePatientRecord(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(util.RECORD_DELETED))
}
