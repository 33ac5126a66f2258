package mockserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) settlements(c *gin.Context) {
	respond(c, http.StatusOK, h.backend.Settlements(h.userID(c)))
}

func (h *handlers) latestSettlement(c *gin.Context) {
	settlement, err := h.backend.LatestSettlement(h.userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, settlement)
}

func (h *handlers) settlementPendings(c *gin.Context) {
	respond(c, http.StatusOK, h.backend.SettlementPendings(h.userID(c)))
}
