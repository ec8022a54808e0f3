package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/chris-kelly1/WeDo/docs"
	"github.com/chris-kelly1/WeDo/internal/bot"
	"github.com/chris-kelly1/WeDo/internal/config"
	"github.com/chris-kelly1/WeDo/internal/handlers"
	"github.com/chris-kelly1/WeDo/internal/pdf"
	"github.com/chris-kelly1/WeDo/internal/repositories"
	"github.com/chris-kelly1/WeDo/internal/routes"
	"github.com/chris-kelly1/WeDo/internal/services"
)

// @title           WeDo API
// @version         1.0
// @description     Social task tracking: tasks, streaks, friends and groups.
// @BasePath        /api

func Run() {
	cfg := config.LoadConfig()

	// === Store ===
	var (
		userRepo         repositories.UserRepository
		taskRepo         repositories.TaskRepository
		friendRepo       repositories.FriendRepository
		notificationRepo repositories.NotificationRepository
		groupRepo        repositories.GroupRepository
	)
	if cfg.Database.DSN != "" {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			log.Fatal("failed to open database: ", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("failed to close database: %v", err)
			}
		}()
		userRepo = repositories.NewUserRepository(db)
		taskRepo = repositories.NewTaskRepository(db)
		friendRepo = repositories.NewFriendRepository(db)
		notificationRepo = repositories.NewNotificationRepository(db)
		groupRepo = repositories.NewGroupRepository(db)
		log.Println("using postgres store")
	} else {
		mem := repositories.NewMemory()
		if cfg.SeedDemoData {
			if err := mem.SeedDemoData(context.Background()); err != nil {
				log.Fatal("failed to seed demo data: ", err)
			}
		}
		userRepo = mem.Users
		taskRepo = mem.Tasks
		friendRepo = mem.Friends
		notificationRepo = mem.Notifications
		groupRepo = mem.Groups
		log.Println("using in-memory store (data resets on restart)")
	}

	// === Services ===
	var emailService services.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	userService := services.NewUserService(userRepo, emailService)
	taskService := services.NewTaskService(taskRepo)
	friendService := services.NewFriendService(friendRepo, userRepo, taskRepo, notificationRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	groupService := services.NewGroupService(groupRepo, taskRepo, userRepo)
	statsService := services.NewStatsService(taskRepo, userRepo)
	reportService := services.NewReportService(userRepo, taskRepo, pdf.NewTaskReportGenerator())

	// === Telegram reminders (optional) ===
	var notifier services.Notifier
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		b, err := bot.New(cfg.Telegram.BotToken, userRepo)
		if err != nil {
			log.Fatal("failed to start telegram bot: ", err)
		}
		go func() {
			if err := b.Start(context.Background()); err != nil {
				log.Printf("telegram bot stopped: %v", err)
			}
		}()
		notifier = b
	}

	reminderService := services.NewReminderService(userRepo, taskRepo, notificationRepo, notifier)
	if cfg.Reminders.Enabled {
		scheduler := services.NewSchedulerService(time.Local)
		_, err := scheduler.ScheduleDaily(cfg.Reminders.DailyTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := reminderService.Run(jobCtx); err != nil {
				log.Printf("reminder job: %v", err)
			}
		})
		if err != nil {
			log.Fatal("failed to schedule reminders: ", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// === Handlers ===
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	friendHandler := handlers.NewFriendHandler(friendService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	groupHandler := handlers.NewGroupHandler(groupService)
	statsHandler := handlers.NewStatsHandler(statsService)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		userHandler,
		taskHandler,
		friendHandler,
		notificationHandler,
		groupHandler,
		statsHandler,
		reportHandler,
	)

	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
