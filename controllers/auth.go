package controllers

import (
	"net/http"

	"MediBook/models"
	"MediBook/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) AuthRoutes(router gin.IRouter) {
	router.POST("/register", ctl.Register)
	router.POST("/login", ctl.Login)
}

/*
* Bind the body and pass it to the service
* Reply with the acknowledgement message
 */
func (ctl *Controller) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindRequest(c, &req) {
		return
	}
	if err := ctl.Auth.Register(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(util.REGISTERED_SUCCESSFULLY))
}

/*
* Unreadable JSON is a bad request
* Missing or non-string credentials are invalid credentials
 */
func (ctl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if util.IsMalformedJSON(err) {
			fail(c, util.ValidationError(util.INVALID_REQUEST_BODY))
			return
		}
		fail(c, util.AuthError(util.INVALID_CREDENTIALS))
		return
	}
	res, err := ctl.Auth.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
