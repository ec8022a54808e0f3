package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GET /api/users/:id
//
// @Summary      Fetch a user
// @Produce      json
// @Param        id path int true "user id"
// @Success      200 {object} models.User
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[user][get][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /api/users
//
// @Summary      Sign up
// @Accept       json
// @Produce      json
// @Success      201 {object} models.User
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Name     string `json:"name" binding:"required"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[user][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data", "errors": err.Error()})
		return
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Name:     req.Name,
		Avatar:   req.Avatar,
	}
	if err := h.service.Create(c.Request.Context(), user); err != nil {
		log.Printf("[user][create][err] username=%q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}
	log.Printf("[user][create][ok] id=%d username=%q", user.ID, user.Username)
	c.JSON(http.StatusCreated, user)
}

// GET /api/users/search?q=
func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("q")
	users, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("[user][search][err] q=%q: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error searching users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}
