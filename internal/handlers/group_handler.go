package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/services"
)

type GroupHandler struct {
	service services.GroupService
}

func NewGroupHandler(service services.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// GET /api/groups?userId=
func (h *GroupHandler) List(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	groups, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[group][list][err] userId=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching groups"})
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}
	c.JSON(http.StatusOK, groups)
}

// GET /api/groups/:id
func (h *GroupHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	group, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[group][get][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching group"})
		return
	}
	if group == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Group not found"})
		return
	}
	c.JSON(http.StatusOK, group)
}

// POST /api/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		GoalDate    string `json:"goalDate" binding:"required"`
		CreatedBy   int64  `json:"createdBy" binding:"required"`
		Avatar      string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[group][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid group data", "errors": err.Error()})
		return
	}
	goalDate, err := parseDate(req.GoalDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid group data", "errors": err.Error()})
		return
	}

	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		GoalDate:    goalDate,
		CreatedBy:   req.CreatedBy,
		Avatar:      req.Avatar,
	}
	created, err := h.service.Create(c.Request.Context(), group)
	if err != nil {
		log.Printf("[group][create][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating group"})
		return
	}
	log.Printf("[group][create][ok] id=%d name=%q createdBy=%d", created.ID, created.Name, created.CreatedBy)
	c.JSON(http.StatusCreated, created)
}

// GET /api/groups/:id/members
func (h *GroupHandler) Members(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	members, err := h.service.Members(c.Request.Context(), id)
	if err != nil {
		log.Printf("[group][members][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching group members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GET /api/groups/:id/tasks
func (h *GroupHandler) Tasks(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	tasks, err := h.service.Tasks(c.Request.Context(), id)
	if err != nil {
		log.Printf("[group][tasks][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching group tasks"})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /api/groups/:id/progress
func (h *GroupHandler) Progress(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	progress, err := h.service.Progress(c.Request.Context(), id)
	if err != nil {
		log.Printf("[group][progress][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching group progress"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// POST /api/groups/:id/members
func (h *GroupHandler) AddMember(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	group, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[group][addMember][err] get group id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding group member"})
		return
	}
	if group == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Group not found"})
		return
	}

	var req struct {
		UserID int64            `json:"userId" binding:"required"`
		Role   models.GroupRole `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[group][addMember][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid member data", "errors": err.Error()})
		return
	}

	member, err := h.service.AddMember(c.Request.Context(), &models.GroupMember{
		GroupID: id,
		UserID:  req.UserID,
		Role:    req.Role,
	})
	if err != nil {
		log.Printf("[group][addMember][err] groupId=%d userId=%d: %v", id, req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding group member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// DELETE /api/groups/:id/members/:userId
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	groupID, ok := idParam(c, "id")
	if !ok {
		return
	}
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	removed, err := h.service.RemoveMember(c.Request.Context(), groupID, userID)
	if err != nil {
		log.Printf("[group][removeMember][err] groupId=%d userId=%d: %v", groupID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing group member"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Group member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
