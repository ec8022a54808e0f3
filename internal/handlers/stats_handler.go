package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/services"
)

type StatsHandler struct {
	service services.StatsService
}

func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GET /api/stats/today?userId=
func (h *StatsHandler) Today(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	stats, err := h.service.Today(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[stats][today][err] userId=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
