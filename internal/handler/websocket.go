package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

// WebSocketHandler exposes the catalog change feed
type WebSocketHandler struct {
	hub *websocket.Hub
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(hub *websocket.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// HandleWebSocket upgrades the connection and subscribes it to the feed
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	h.hub.ServeWS(c.Response(), c.Request())
	return nil
}
