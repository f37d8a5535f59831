package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/domain/mocks"
	"github.com/Guyuepp/social-feed/internal/metrics"
	"github.com/Guyuepp/social-feed/internal/rest/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockUserRepo.On("GetCurrent", mock.Anything).
		Return(domain.NewUser(domain.UserRecord{ID: "u1", Username: "alice"}), nil).Once()
	mockUserRepo.On("GetCurrent", mock.Anything).
		Return(nil, errors.New("401 Unauthorized")).Once()

	r := gin.New()
	r.GET("/me", middleware.Authenticate(mockUserRepo), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec = serve(r, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockUserRepo.AssertNumberOfCalls(t, "GetCurrent", 2)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc")
	rec := serve(r, req)
	assert.Equal(t, "abc", rec.Body.String())
	assert.Equal(t, "abc", rec.Header().Get(middleware.RequestIDHeader))

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, rec.Header().Get(middleware.RequestIDHeader), 36)
}

func TestAccessLog(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog())
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	serve(r, req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "/boom", entry.Data["path"])
	assert.Equal(t, float64(1), promtest.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "500")))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS(nil))
	r.POST("/posts", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(r, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetRequestContextWithTimeout(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SetRequestContextWithTimeout(50 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
