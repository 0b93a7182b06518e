package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ValidationError(MISSING_FIELDS), http.StatusBadRequest},
		{"conflict", ConflictError(USER_ALREADY_EXISTS), http.StatusBadRequest},
		{"auth", AuthError(INVALID_CREDENTIALS), http.StatusUnauthorized},
		{"forbidden", ForbiddenError(FORBIDDEN), http.StatusForbidden},
		{"not found", NotFoundError(DOCTOR_NOT_FOUND), http.StatusNotFound},
		{"internal", InternalError(errors.New("socket closed")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", NotFoundError(BOOKING_NOT_FOUND)), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestFailedResponse_HidesInternalDetail(t *testing.T) {
	cause := errors.New("connection refused 10.0.0.7:27017")

	body := FailedResponse(InternalError(cause))
	assert.Equal(t, SERVER_ERROR, body["message"])

	body = FailedResponse(cause)
	assert.Equal(t, SERVER_ERROR, body["message"])

	body = FailedResponse(ConflictError(USER_ALREADY_EXISTS))
	assert.Equal(t, USER_ALREADY_EXISTS, body["message"])
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := InternalError(cause)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindInternal))
	assert.False(t, IsKind(nil, KindInternal))
}
