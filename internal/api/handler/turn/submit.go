package turn

import (
	"net/http"

	"turnos/queue-service/internal/api/request"
	"turnos/queue-service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Submit godoc
// @Summary      Request a turn
// @Description  Adds a turn to the pending queue. Any priority other than "urgent" is stored as "normal".
// @Tags         Turnos
// @Accept       json
// @Produce      json
// @Param        request body request.SubmitTurnRequest true "Turn request body"
// @Success      201 {object} domain.Turn "Created turn"
// @Failure      400 {object} map[string]string "Missing name or procedure"
// @Failure      429 {object} map[string]string "Too many requests"
// @Router       /turnos [post]
func (h *TurnHandler) Submit(c *gin.Context) {
	var req request.SubmitTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turn, err := h.turnService.Submit(c, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, turn)
}
