package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postChat(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewChatHandler(nil)
	require.NoError(t, h.PostMessage(c))
	return rec
}

func TestPostMessageRejectsEmptyMessage(t *testing.T) {
	rec := postChat(t, `{"message": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message is required")
}

func TestPostMessageRejectsMalformedBody(t *testing.T) {
	rec := postChat(t, `{"message": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
