//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fleetops/internal/handler/httperr"
	"fleetops/internal/handler/middleware"
	"fleetops/internal/pkg/errs"
	"fleetops/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}

func TestErrorHandlerEmitsAbortedResponse(t *testing.T) {
	r := newErrorRouter(t)
	r.GET("/missing", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("no such row"), "Booking not found")
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/missing", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Booking not found")

	// The internal error detail never leaks into the body.
	assert.NotContains(t, rec.Body.String(), "no such row")
}

func TestErrorHandlerLogsInternalFailures(t *testing.T) {
	r := newErrorRouter(t)
	r.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.Wrap(errs.New("connection refused"), "load board"), "Internal server error")
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/fail", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorHandlerFallsBackWithoutPublicError(t *testing.T) {
	r := newErrorRouter(t)
	r.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errs.New("private failure"))
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestCustomRecoveryTurnsPanicInto500(t *testing.T) {
	r := newErrorRouter(t)
	r.GET("/boom", func(c *gin.Context) {
		panic("unexpected")
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
}
