package turn

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stats godoc
// @Summary      Queue statistics
// @Tags         Turnos
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} map[string]string
// @Router       /turnos/stats [get]
func (h *TurnHandler) Stats(c *gin.Context) {
	stats, err := h.turnService.Stats(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    stats,
		"pending": h.turnService.PendingLen(c),
	})
}

func (h *TurnHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"pending": h.turnService.PendingLen(c),
	})
}
