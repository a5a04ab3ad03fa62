package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoomInfo serves the join-screen prefill behind the shareable
// ?room=<code> link: enough to show who is waiting, nothing about the
// board itself.
func (h *Handler) RoomInfo(c *gin.Context) {
	code := c.Param("code")

	room, ok := h.Hub.Room(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	players := room.Players()
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"room_id": code,
		"status":  room.Status(),
		"players": names,
		"seats":   2 - len(players),
	})
}

// MatchHistory lists a player's finished matches. 404s when the server
// runs without a database.
func (h *Handler) MatchHistory(c *gin.Context) {
	if h.Matches == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "match history disabled"})
		return
	}

	playerID := c.Param("player_id")
	matches, err := h.Matches.GetByPlayer(c.Request.Context(), playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
