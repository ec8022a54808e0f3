package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/services"
)

type FriendHandler struct {
	service services.FriendService
}

func NewFriendHandler(service services.FriendService) *FriendHandler {
	return &FriendHandler{service: service}
}

// GET /api/friends?userId=
func (h *FriendHandler) List(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	friends, err := h.service.ListWithProgress(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[friend][list][err] userId=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching friends"})
		return
	}
	if friends == nil {
		friends = []models.FriendWithProgress{}
	}
	c.JSON(http.StatusOK, friends)
}

// GET /api/friends/potential?userId=
func (h *FriendHandler) Potential(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	users, err := h.service.Potential(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[friend][potential][err] userId=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching potential friends"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// POST /api/friends
func (h *FriendHandler) Add(c *gin.Context) {
	var req struct {
		UserID   int64 `json:"userId" binding:"required"`
		FriendID int64 `json:"friendId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[friend][add][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid friend data", "errors": err.Error()})
		return
	}

	friend, err := h.service.Add(c.Request.Context(), &models.Friend{
		UserID:   req.UserID,
		FriendID: req.FriendID,
	})
	if err != nil {
		log.Printf("[friend][add][err] userId=%d friendId=%d: %v", req.UserID, req.FriendID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding friend"})
		return
	}
	log.Printf("[friend][add][ok] id=%d userId=%d friendId=%d", friend.ID, friend.UserID, friend.FriendID)
	c.JSON(http.StatusCreated, friend)
}

// DELETE /api/friends/:friendId?userId=
func (h *FriendHandler) Remove(c *gin.Context) {
	friendID, ok := idParam(c, "friendId")
	if !ok {
		return
	}
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	removed, err := h.service.Remove(c.Request.Context(), userID, friendID)
	if err != nil {
		log.Printf("[friend][remove][err] userId=%d friendId=%d: %v", userID, friendID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing friend"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Friend not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/friends/:friendId/comparison?userId=
func (h *FriendHandler) Comparison(c *gin.Context) {
	friendID, ok := idParam(c, "friendId")
	if !ok {
		return
	}
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	comparison, err := h.service.Comparison(c.Request.Context(), userID, friendID)
	if err != nil {
		log.Printf("[friend][comparison][err] userId=%d friendId=%d: %v", userID, friendID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching friend comparison data"})
		return
	}
	c.JSON(http.StatusOK, comparison)
}
