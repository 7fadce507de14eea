package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(perSec float64, burst int) *gin.Engine {
		r := gin.New()
		r.Use(RateLimit(perSec, burst))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	do := func(r *gin.Engine, ip string) int {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("BurstThenThrottled", func(t *testing.T) {
		r := newRouter(1, 2)

		assert.Equal(t, http.StatusOK, do(r, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, do(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, do(r, "10.0.0.1"))
	})

	t.Run("ClientsLimitedIndependently", func(t *testing.T) {
		r := newRouter(1, 1)

		assert.Equal(t, http.StatusOK, do(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, do(r, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, do(r, "10.0.0.2"))
	})
}
