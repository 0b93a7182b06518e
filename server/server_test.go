package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MediBook/config"
	"MediBook/events"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Env:            "test",
		LogLevel:       "debug",
		EventsDriver:   "none",
		RequestTimeout: time.Second,
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("nil map") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
}

func TestRequestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(RequestTimeout(50 * time.Millisecond))
	r.GET("/", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNewEngine_AccessLogDoesNotAlterResponse(t *testing.T) {
	SetupLogger(testConfig())
	r := NewEngine(testConfig())
	r.GET("/x", func(c *gin.Context) { c.JSON(http.StatusTeapot, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestGetDefaultOptions(t *testing.T) {
	cfg := testConfig()
	cfg.MongoEnabled = true
	cfg.JobsEnabled = true
	cfg.Port = "5000"

	opts := GetDefaultOptions(cfg)
	assert.True(t, opts.MongoEnabled)
	assert.True(t, opts.MigrationEnabled)
	assert.True(t, opts.JobsEnabled)
	assert.True(t, opts.WebServerEnabled)
	assert.Equal(t, "5000", opts.WebServerPort)
}

func TestConnect_InMemory(t *testing.T) {
	infra, err := Connect(context.Background(), GetDefaultOptions(testConfig()))
	require.NoError(t, err)
	assert.Nil(t, infra.Database)
	assert.IsType(t, events.Nop{}, infra.Publisher)
	infra.Close(context.Background())
}

func TestStart_RunsHandlersInOrder(t *testing.T) {
	opts := GetDefaultOptions(testConfig())
	opts.WebServerEnabled = false
	opts.MigrationEnabled = true
	opts.JobsEnabled = true

	var order []string
	opts.MigrationHandler = func(*Infra) error {
		order = append(order, "migrate")
		return nil
	}
	opts.JobsHandler = func(*Infra) { order = append(order, "jobs") }

	require.NoError(t, Start(opts))
	assert.Equal(t, []string{"migrate", "jobs"}, order)
}

func TestStart_MigrationFailureStops(t *testing.T) {
	opts := GetDefaultOptions(testConfig())
	opts.WebServerEnabled = false
	opts.MigrationEnabled = true
	opts.MigrationHandler = func(*Infra) error { return errors.New("index build failed") }
	opts.JobsEnabled = true
	opts.JobsHandler = func(*Infra) { t.Fatal("jobs must not start after a failed migration") }

	err := Start(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index build failed")
}

func TestStart_RequiresConfig(t *testing.T) {
	assert.Error(t, Start(Options{}))
}
