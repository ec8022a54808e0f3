package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/services"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GET /api/reports/tasks?userId=
func (h *ReportHandler) TaskReport(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	found, err := h.service.WriteTaskReport(c.Request.Context(), userID, &buf)
	if err != nil {
		log.Printf("[report][tasks][err] userId=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating report"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="wedo-tasks.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
