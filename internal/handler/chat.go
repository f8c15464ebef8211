// Package handler exposes the chat engine over HTTP and WebSocket.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-chatbot/internal/chat"
	"github.com/iliyamo/cinema-chatbot/internal/middleware"
)

// ChatHandler serves the request/response chat endpoint.
type ChatHandler struct {
	Engine *chat.Engine
}

func NewChatHandler(engine *chat.Engine) *ChatHandler {
	return &ChatHandler{Engine: engine}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// PostMessage handles POST /v1/chat. One user message in, one bot reply
// out. The session id comes from the X-Session-Id header (minted by the
// session middleware when absent) and is echoed back in the body so
// clients can thread the conversation.
func (h *ChatHandler) PostMessage(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	sessionID, _ := c.Get("session_id").(string)
	if sessionID == "" {
		sessionID = uuid.NewString()
		c.Response().Header().Set(middleware.SessionHeader, sessionID)
	}

	reply := h.Engine.HandleMessage(c.Request().Context(), sessionID, req.Message)
	return c.JSON(http.StatusOK, chatResponse{SessionID: sessionID, Reply: reply})
}
