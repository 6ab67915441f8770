package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/config"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/database"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/handlers"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/middleware"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/repository"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Configure logging
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logrus.WithError(err).Fatal("failed to add indexes")
	}

	// Repositories
	db := database.GetDB()
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize AI service when a key is configured; insights fall back to
	// the rule-based generator otherwise.
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Services
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)
	insightService := services.NewInsightService(projectRepo, taskRepo, aiService)

	// Handlers
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	insightHandler := handlers.NewInsightHandler(insightService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logrus.StandardLogger()))
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("/project/:projectId", taskHandler.ListTasksByProject)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PUT("/:id/position", taskHandler.RepositionTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/summarize/:projectId", insightHandler.Summarize)
			ai.POST("/ask/:projectId", insightHandler.Ask)
		}
	}

	// Start server
	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
