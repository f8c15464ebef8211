// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-chatbot/internal/handler"
)

// RegisterRoutes mounts the operational endpoints.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterChat mounts the conversation endpoints. The supplied
// middleware (session resolution, rate limiting) applies to both the
// request/response endpoint and the WebSocket upgrade.
func RegisterChat(e *echo.Echo, chatH *handler.ChatHandler, wsH *handler.WSHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("", mw...)
	g.POST("/v1/chat", chatH.PostMessage)
	g.GET("/ws", wsH.Serve)
}
