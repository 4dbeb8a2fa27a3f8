package main

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"

	"github.com/GO-2016/libgoboard/game"
)

type wsMoveMessage struct {
	GameID string `json:"game_id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Player string `json:"player"`
}

type wsStateMessage struct {
	Status string `json:"status"`
	Board  string `json:"board,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleWebSocket streams move results to a connected client: each
// inbound wsMoveMessage is validated and applied against the named
// session's board, and the resulting status, together with the rendered
// board, is streamed back.
func (s *sessionStore) handleWebSocket(c echo.Context) error {
	websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()
		for {
			var msg wsMoveMessage
			if err := websocket.JSON.Receive(ws, &msg); err != nil {
				return
			}

			sess, ok := s.get(msg.GameID)
			if !ok {
				websocket.JSON.Send(ws, wsStateMessage{Status: "NOT_FOUND", Error: "no such game"})
				continue
			}
			player, ok := parsePlayer(msg.Player)
			if !ok {
				websocket.JSON.Send(ws, wsStateMessage{Status: "BAD_PLAYER", Error: "player must be black or white"})
				continue
			}

			sess.mu.Lock()
			p := game.Point{X: msg.X, Y: msg.Y}
			status := sess.board.GetPosStatus(p, player)
			if status == game.StatusOK {
				_ = sess.board.Place(p, player)
				sess.toMove = player.Opponent()
			}
			board := sess.board.Render()
			sess.mu.Unlock()

			websocket.JSON.Send(ws, wsStateMessage{Status: status.String(), Board: board})
		}
	}).ServeHTTP(c.Response(), c.Request())
	return nil
}
