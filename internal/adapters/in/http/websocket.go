package http

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"marketplace/internal/adapters/out/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS handles GET /ws: upgrades the connection and registers it with the
// hub. The read loop only drains control frames; a read error means the
// client went away and the observer is unregistered.
func (s *Server) ServeWS(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	observer := ws.NewConnObserver(conn)
	s.hub.Register(observer)

	go func() {
		defer s.hub.Unregister(observer)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	return nil
}
