package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionHeader carries the client's conversation identifier. A client
// that wants to continue a conversation echoes back the value it got on
// the previous response.
const SessionHeader = "X-Session-Id"

// SessionID resolves the conversation identifier for a request. When the
// header is missing a fresh UUID is minted, so every request has a
// session even on first contact. The resolved id is stored in the echo
// context under "session_id" and echoed back in the response header.
func SessionID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(SessionHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set("session_id", id)
			c.Response().Header().Set(SessionHeader, id)
			return next(c)
		}
	}
}
