package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	store := newSessionStore()

	// Serve static files (HTML, CSS, JS for game board)
	e.Static("/", "static")

	// WebSocket endpoint for real-time game moves
	e.GET("/ws", store.handleWebSocket)

	// REST API endpoints
	e.POST("/game/new", store.newGame)       // Create new game
	e.GET("/game/:id", store.getGame)        // Get game state
	e.POST("/game/:id/move", store.makeMove) // Make a move

	addr := os.Getenv("LIBGOBOARD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Start server
	e.Logger.Fatal(e.Start(addr))
}
