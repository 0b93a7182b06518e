package controllers

import (
	"net/http"

	"MediBook/config/authorization"
	"MediBook/models"
	"MediBook/role"
	"MediBook/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) PrescriptionRoutes(router gin.IRouter, g authorization.Guards) {
	prescriptions := router.Group("/prescriptions")
	prescriptions.POST("", append(g.Legacy(role.Doctor, role.Admin), ctl.CreatePrescription)...)
	prescriptions.GET("/doctor", append(g.Legacy(role.Doctor, role.Admin), ctl.ListDoctorPrescriptions)...)
	prescriptions.GET("/patient", append(g.Legacy(), ctl.ListPatientPrescriptions)...)
	prescriptions.PUT("/:id", append(g.Legacy(role.Doctor, role.Admin), ctl.UpdatePrescription)...)
	prescriptions.DELETE("/:id", append(g.Legacy(role.Doctor, role.Admin), ctl.DeletePrescription)...)
}

func (ctl *Controller) CreatePrescription(c *gin.Context) {
	var req models.PrescriptionRequest
	if !bindRequest(c, &req) {
		return
	}
	p, err := ctl.Prescriptions.CreatePrescription(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (ctl *Controller) ListDoctorPrescriptions(c *gin.Context) {
	list, err := ctl.Prescriptions.ListByDoctor(c.Request.Context(), c.Query("doctorEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *Controller) ListPatientPrescriptions(c *gin.Context) {
	list, err := ctl.Prescriptions.ListByPatient(c.Request.Context(), c.Query("patientEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *Controller) UpdatePrescription(c *gin.Context) {
	data, ok := bindBody(c)
	if !ok {
		return
	}
	p, err := ctl.Prescriptions.UpdatePrescription(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *Controller) DeletePrescription(c *gin.Context) {
	if err := ctl.Prescriptions.DeletePrescription(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(util.PRESCRIPTION_DELETED))
}
