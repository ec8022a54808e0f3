package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/handlers"
)

// SetupRoutes wires the /api surface. Every endpoint is public; callers
// identify themselves with a userId parameter.
func SetupRoutes(
	r *gin.Engine,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	friendHandler *handlers.FriendHandler,
	notificationHandler *handlers.NotificationHandler,
	groupHandler *handlers.GroupHandler,
	statsHandler *handlers.StatsHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {
	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("/search", userHandler.Search)
		users.GET("/:id", userHandler.GetByID)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", taskHandler.List)
		tasks.GET("/today", taskHandler.ListToday)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.POST("", taskHandler.Create)
		tasks.PATCH("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	friends := api.Group("/friends")
	{
		friends.GET("", friendHandler.List)
		friends.GET("/potential", friendHandler.Potential)
		friends.POST("", friendHandler.Add)
		friends.DELETE("/:friendId", friendHandler.Remove)
		friends.GET("/:friendId/comparison", friendHandler.Comparison)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
		notifications.DELETE("/:id", notificationHandler.Delete)
	}

	groups := api.Group("/groups")
	{
		groups.GET("", groupHandler.List)
		groups.GET("/:id", groupHandler.GetByID)
		groups.POST("", groupHandler.Create)
		groups.GET("/:id/members", groupHandler.Members)
		groups.GET("/:id/tasks", groupHandler.Tasks)
		groups.GET("/:id/progress", groupHandler.Progress)
		groups.POST("/:id/members", groupHandler.AddMember)
		groups.DELETE("/:id/members/:userId", groupHandler.RemoveMember)
	}

	api.GET("/stats/today", statsHandler.Today)
	api.GET("/reports/tasks", reportHandler.TaskReport)

	return r
}
