package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/services"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// GET /api/tasks?userId=
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	tasks, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[task][list][err] userId=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching tasks"})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /api/tasks/today?userId=
func (h *TaskHandler) ListToday(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	tasks, err := h.service.ListByDate(c.Request.Context(), userID, time.Now())
	if err != nil {
		log.Printf("[task][today][err] userId=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching today's tasks"})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][get][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// POST /api/tasks
//
// @Summary      Create a task
// @Accept       json
// @Produce      json
// @Success      201 {object} models.Task
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		UserID      int64               `json:"userId" binding:"required"`
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description"`
		DueDate     string              `json:"dueDate" binding:"required"`
		DueTime     string              `json:"dueTime"`
		Priority    models.TaskPriority `json:"priority"`
		Private     bool                `json:"private"`
		GroupID     *int64              `json:"groupId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task data", "errors": err.Error()})
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task data", "errors": err.Error()})
		return
	}

	task := &models.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		DueTime:     req.DueTime,
		Priority:    req.Priority,
		Private:     req.Private,
		GroupID:     req.GroupID,
	}
	created, err := h.service.Create(c.Request.Context(), task)
	if err != nil {
		log.Printf("[task][create][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating task"})
		return
	}
	log.Printf("[task][create][ok] id=%d userId=%d title=%q", created.ID, created.UserID, created.Title)
	c.JSON(http.StatusCreated, created)
}

// PATCH /api/tasks/:id
//
// Partial update; fields are merged over the stored record without schema
// validation (observed product contract).
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		UserID      *int64               `json:"userId"`
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		DueDate     *string              `json:"dueDate"`
		DueTime     *string              `json:"dueTime"`
		Priority    *models.TaskPriority `json:"priority"`
		Completed   *bool                `json:"completed"`
		Private     *bool                `json:"private"`
		GroupID     *int64               `json:"groupId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task data", "errors": err.Error()})
		return
	}

	update := &models.TaskUpdate{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		DueTime:     req.DueTime,
		Priority:    req.Priority,
		Completed:   req.Completed,
		Private:     req.Private,
		GroupID:     req.GroupID,
	}
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task data", "errors": err.Error()})
			return
		}
		update.DueDate = &due
	}

	task, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		log.Printf("[task][update][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DELETE /api/tasks/:id
//
// Always reports success, even for unknown ids or internal failures. The
// client treats delete as fire-and-forget; surfacing errors here only
// produced retry loops in the UI.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][delete][err] id=%d: %v", id, err)
		c.JSON(http.StatusOK, gin.H{"success": true, "silent": true})
		return
	}
	if !deleted {
		log.Printf("[task][delete] id=%d not found, reporting success anyway", id)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
