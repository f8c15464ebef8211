package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDKeepsClientHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", nil)
	req.Header.Set(SessionHeader, "session-abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := SessionID()(func(c echo.Context) error {
		assert.Equal(t, "session-abc", c.Get("session_id"))
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.Equal(t, "session-abc", rec.Header().Get(SessionHeader))
}

func TestSessionIDMintsWhenMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := SessionID()(func(c echo.Context) error {
		seen, _ = c.Get("session_id").(string)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(SessionHeader))
}
