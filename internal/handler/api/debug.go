package api

import (
	"net/http"

	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DebugHandler struct {
	q queries.DebugQueries
}

func NewDebugHandler(q queries.DebugQueries) *DebugHandler {
	return &DebugHandler{q: q}
}

// @Summary Debug snapshot
// @Description In-memory PIN and email state plus pool stats. Only routed in debug mode.
// @Tags debug
// @Produce json
// @Success 200 {object} resdto.DebugResponse
// @Router /api/debug [get]
func (h *DebugHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromDebugInfo(h.q.Snapshot(c.Request.Context())))
}
