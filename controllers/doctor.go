package controllers

import (
	"net/http"

	"MediBook/config/authorization"
	"MediBook/models"
	"MediBook/repository"
	"MediBook/role"
	"MediBook/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) DoctorRoutes(router gin.IRouter, g authorization.Guards) {
	doctors := router.Group("/doctors")
	doctors.POST("", append(g.Require(role.Admin), ctl.CreateDoctor)...)
	doctors.GET("", append(g.Require(), ctl.ListDoctors)...)
	doctors.GET("/:id", append(g.Require(), ctl.GetDoctor)...)
	doctors.GET("/appointments/:id", append(g.Require(), ctl.GetDoctor)...)
	doctors.PUT("/:id", append(g.Require(role.Admin), ctl.UpdateDoctor)...)
	doctors.DELETE("/:id", append(g.Require(role.Admin), ctl.DeleteDoctor)...)
}

func (ctl *Controller) CreateDoctor(c *gin.Context) {
	var req models.DoctorRequest
	if !bindRequest(c, &req) {
		return
	}
	doctor, err := ctl.Doctors.CreateDoctor(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

/*
* Read the optional filters from the query string
* doctorfrom is accepted as an alias of doctorFrom
 */
func (ctl *Controller) ListDoctors(c *gin.Context) {
	filter := repository.DoctorFilter{
		Name:       c.Query("name"),
		Specialist: c.Query("specialist"),
		Language:   c.Query("language"),
		DoctorFrom: c.Query("doctorFrom"),
	}
	if filter.DoctorFrom == "" {
		filter.DoctorFrom = c.Query("doctorfrom")
	}
	doctors, err := ctl.Doctors.ListDoctors(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (ctl *Controller) GetDoctor(c *gin.Context) {
	doctor, err := ctl.Doctors.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (ctl *Controller) UpdateDoctor(c *gin.Context) {
	data, ok := bindBody(c)
	if !ok {
		return
	}
	doctor, err := ctl.Doctors.UpdateDoctor(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (ctl *Controller) DeleteDoctor(c *gin.Context) {
	if err := ctl.Doctors.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(util.DOCTOR_DELETED))
}
