package handlers

import (
	"net/http"

	"tictactoe_arena/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type guestRequest struct {
	DisplayName string `json:"display_name"`
}

// GuestAuth mints an ephemeral player identity. There are no accounts:
// the id lives exactly as long as someone holds the token, and nothing
// ties two sessions together.
func (h *Handler) GuestAuth(c *gin.Context) {
	var req guestRequest
	_ = c.ShouldBindJSON(&req) // display_name is optional

	playerID := uuid.New().String()
	token, err := service.GenerateJWT(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"player_id":    playerID,
		"display_name": req.DisplayName,
		"token":        token,
	})
}
