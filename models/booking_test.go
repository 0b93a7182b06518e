package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range BookingStatuses {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus("Cancelled"))
}

func TestValidDoctorStatus(t *testing.T) {
	assert.True(t, ValidDoctorStatus(StatusReviewed))
	assert.True(t, ValidDoctorStatus(StatusNotReviewed))
	assert.False(t, ValidDoctorStatus(StatusApproved))
}
