package util

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// FailedResponse renders any error as {"message": ...}. Errors that are not
// an AppError never leak their text.
func FailedResponse(err error) gin.H {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return gin.H{"message": appErr.Message}
	}
	return gin.H{"message": SERVER_ERROR}
}

func MessageResponse(msg string) gin.H {
	return gin.H{"message": msg}
}
