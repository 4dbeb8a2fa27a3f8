package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GO-2016/libgoboard/game"
)

type newGameRequest struct {
	Size int `json:"size"`
}

type gameStateResponse struct {
	ID     string `json:"id"`
	Size   int    `json:"size"`
	Board  string `json:"board"`
	ToMove string `json:"to_move"`
	Ko     *point `json:"ko,omitempty"`
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type moveRequest struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Player string `json:"player"`
}

type moveResponse struct {
	Status string `json:"status"`
	Board  string `json:"board"`
}

func parsePlayer(s string) (game.Player, bool) {
	switch s {
	case "black", "b", "B":
		return game.PlayerBlack, true
	case "white", "w", "W":
		return game.PlayerWhite, true
	default:
		return 0, false
	}
}

func stateResponse(id string, sess *session) gameStateResponse {
	resp := gameStateResponse{
		ID:     id,
		Size:   sess.board.Dims().W,
		Board:  sess.board.Render(),
		ToMove: sess.toMove.String(),
	}
	if kp := sess.board.GetSimpleKoPoint(); kp != nil {
		resp.Ko = &point{X: kp.X, Y: kp.Y}
	}
	return resp
}

// newGame creates a new board-backed session.
func (s *sessionStore) newGame(c echo.Context) error {
	req := newGameRequest{Size: 19}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Size <= 0 {
		req.Size = 19
	}
	id, sess := s.create(req.Size)
	return c.JSON(http.StatusCreated, stateResponse(id, sess))
}

// getGame returns the current state of a session's board.
func (s *sessionStore) getGame(c echo.Context) error {
	sess, ok := s.get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such game")
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return c.JSON(http.StatusOK, stateResponse(c.Param("id"), sess))
}

// makeMove validates and applies a move against a session's board.
func (s *sessionStore) makeMove(c echo.Context) error {
	sess, ok := s.get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such game")
	}

	var req moveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	player, ok := parsePlayer(req.Player)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "player must be black or white")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p := game.Point{X: req.X, Y: req.Y}
	status := sess.board.GetPosStatus(p, player)
	if status != game.StatusOK {
		return c.JSON(http.StatusOK, moveResponse{Status: status.String(), Board: sess.board.Render()})
	}
	if err := sess.board.Place(p, player); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	sess.toMove = player.Opponent()
	return c.JSON(http.StatusOK, moveResponse{Status: status.String(), Board: sess.board.Render()})
}
