package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWindowLimiter(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newWindowLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	ok, _ := l.allow("1.1.1.1")
	assert.True(t, ok)
	ok, _ = l.allow("1.1.1.1")
	assert.True(t, ok)
	ok, end := l.allow("1.1.1.1")
	assert.False(t, ok)
	assert.Equal(t, now.Add(time.Minute), end)

	ok, _ = l.allow("2.2.2.2")
	assert.True(t, ok, "limits are per IP")

	now = now.Add(61 * time.Second)
	ok, _ = l.allow("1.1.1.1")
	assert.True(t, ok, "a new window resets the count")
	assert.Len(t, l.entries, 1, "expired entries are swept")
}

func TestRateLimiter_Returns429WithRetryAfter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(1, time.Minute))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w
	}
	assert.Equal(t, http.StatusNoContent, do().Code)
	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
