package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homehero/homehero-server/internal/config"
	"github.com/homehero/homehero-server/internal/errs"
	"github.com/homehero/homehero-server/internal/server"
)

func newTestServer(rateLimit float64) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"http://localhost:5173"},
				RateLimit:          rateLimit,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func ok(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/")

	require.NoError(t, RequestID()(ok)(c))

	id := rec.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetRequestID(c))
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/")
	c.Request().Header.Set(RequestIDHeader, "req-123")

	require.NoError(t, RequestID()(ok)(c))

	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-123", GetRequestID(c))
}

func TestIdentify_NoSecretKeyPassesThrough(t *testing.T) {
	auth := NewAuthMiddleware(newTestServer(0))
	c, rec := newContext(http.MethodGet, "/services")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")

	require.NoError(t, auth.Identify()(ok)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, GetUserID(c))
}

func TestSetCaller_LogsThroughServerLogger(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(0)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s.Logger = &logger

	c, _ := newContext(http.MethodGet, "/")
	c.Set(RequestIDKey, "req-1")

	NewAuthMiddleware(s).setCaller(c, "user_2abc")

	assert.Equal(t, "user_2abc", GetUserID(c))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "caller identified from session token", line["message"])
	assert.Equal(t, "user_2abc", line["user_id"])
	assert.Equal(t, "req-1", line["request_id"])
}

func TestEnhanceContext_LoggerReachesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(0)
	logger := zerolog.New(&buf)
	s.Logger = &logger

	c, _ := newContext(http.MethodGet, "/")
	c.Set(RequestIDKey, "req-9")
	c.Set(UserIDKey, "u1")

	err := NewContextEnhancer(s).EnhanceContext()(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service layer")
		return nil
	})(c)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-9", line["request_id"])
	assert.Equal(t, "u1", line["user_id"])
	assert.Equal(t, "from service layer", line["message"])
}

func TestGetLogger_DefaultsToNop(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/")

	logger := GetLogger(c)

	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLimit_DisabledAtZeroRate(t *testing.T) {
	rl := NewRateLimitMiddleware(newTestServer(0))
	handler := rl.Limit()(ok)

	for i := 0; i < 50; i++ {
		c, _ := newContext(http.MethodGet, "/services")
		require.NoError(t, handler(c))
	}
}

func TestLimit_RejectsAfterBurst(t *testing.T) {
	s := newTestServer(1)
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/services", ok)

	serve := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))
		return rec
	}

	// Rate 1/s gives a burst of 4.
	for i := 0; i < 4; i++ {
		require.Equal(t, http.StatusOK, serve().Code)
	}

	rec := serve()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusTooManyRequests, body.Status)
	assert.Equal(t, "Too many requests, slow down", body.Message)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(0))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "application error keeps its shape",
			err:         errs.NewForbiddenError("Not allowed", true),
			wantStatus:  http.StatusForbidden,
			wantMessage: "Not allowed",
		},
		{
			name:        "wrapped application error",
			err:         errors.Wrap(errs.NewInvalidIDError(), "binding"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid id",
		},
		{
			name:        "unknown route",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Route not found",
		},
		{
			name:        "echo method not allowed",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "raw error is hidden",
			err:         errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/x")

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestGlobalErrorHandler_HeadHasNoBody(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(0))
	c, rec := newContext(http.MethodHead, "/x")

	global.GlobalErrorHandler(errs.NewInvalidIDError(), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Body.String())
}
