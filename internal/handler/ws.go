package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-chatbot/internal/chat"
)

// WSHandler serves the streaming chat endpoint. Each connection is its
// own conversation: the session id is fixed at upgrade time and every
// text frame gets exactly one reply frame.
type WSHandler struct {
	Engine *chat.Engine
}

func NewWSHandler(engine *chat.Engine) *WSHandler {
	return &WSHandler{Engine: engine}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// browser clients connect from arbitrary origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve handles GET /ws.
func (h *WSHandler) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	sessionID, _ := c.Get("session_id").(string)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx := c.Request().Context()
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws session %s: read: %v", sessionID, err)
			}
			return nil
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply := h.Engine.HandleMessage(ctx, sessionID, string(data))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.Printf("ws session %s: write: %v", sessionID, err)
			return nil
		}
	}
}
