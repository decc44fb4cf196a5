package turn

import (
	"net/http"

	"turnos/queue-service/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// ListPending godoc
// @Summary      List pending turns
// @Description  Pending turns in queue order. page_size enables paging.
// @Tags         Turnos
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Number of items per page"
// @Success      200 {array} domain.Turn
// @Router       /turnos [get]
func (h *TurnHandler) ListPending(c *gin.Context) {
	pagination := paginator.New(c)
	pending := h.turnService.ListPending(c)

	c.JSON(http.StatusOK, paginator.Apply(pagination, pending))
}
