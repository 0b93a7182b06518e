package controllers

import (
	"net/http"

	"MediBook/services"
	"MediBook/util"

	"github.com/gin-gonic/gin"
)

// Controller holds the services the HTTP handlers delegate to.
type Controller struct {
	Auth          *services.AuthService
	Doctors       *services.DoctorService
	Bookings      *services.BookingService
	Prescriptions *services.PrescriptionService
}

func fail(c *gin.Context, err error) {
	c.JSON(util.StatusOf(err), util.FailedResponse(err))
}

// bindRequest decodes a typed request body and applies its binding rules.
// It writes the error response itself.
func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, util.BindingError(err))
		return false
	}
	return true
}

// bindBody decodes a JSON object body for partial updates. It writes the
// 400 itself.
func bindBody(c *gin.Context) (map[string]interface{}, bool) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil || data == nil {
		c.JSON(http.StatusBadRequest, util.MessageResponse(util.INVALID_REQUEST_BODY))
		return nil, false
	}
	return data, true
}
