package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValue(t *testing.T) {
	s, ok := StringValue("  Alice ")
	assert.True(t, ok)
	assert.Equal(t, "Alice", s)

	s, ok = StringValue(float64(42))
	assert.True(t, ok)
	assert.Equal(t, "42", s)

	_, ok = StringValue(true)
	assert.False(t, ok)
}

func TestGetTrimmedString_Missing(t *testing.T) {
	assert.Equal(t, "", GetTrimmedString(map[string]interface{}{}, "name"))
	assert.Equal(t, "", GetTrimmedString(map[string]interface{}{"name": []interface{}{"x"}}, "name"))
}

func TestIntValue(t *testing.T) {
	n, ok := IntValue(float64(30))
	assert.True(t, ok)
	assert.Equal(t, 30, n)

	n, ok = IntValue(" 31 ")
	assert.True(t, ok)
	assert.Equal(t, 31, n)

	_, ok = IntValue(30.5)
	assert.False(t, ok)
	_, ok = IntValue("thirty")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2020-03-15T10:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 3, 15, 5, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2020")
	assert.Error(t, err)
}
