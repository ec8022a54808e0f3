package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/services"
)

type NotificationHandler struct {
	service services.NotificationService
}

func NewNotificationHandler(service services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GET /api/notifications?userId=
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	notifications, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[notification][list][err] userId=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching notifications"})
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	notification, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		log.Printf("[notification][read][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error marking notification as read"})
		return
	}
	if notification == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, notification)
}

// DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("[notification][delete][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting notification"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
