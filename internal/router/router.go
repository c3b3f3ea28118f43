package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vinicius-yudi/taskboard/internal/config"
	"github.com/vinicius-yudi/taskboard/internal/handlers"
	"github.com/vinicius-yudi/taskboard/internal/middleware"
	"github.com/vinicius-yudi/taskboard/internal/services"
	"github.com/vinicius-yudi/taskboard/internal/store"
	"github.com/vinicius-yudi/taskboard/internal/types"
)

func NewRouter(st *store.Store, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	boardService := services.NewBoardService(st)
	columnService := services.NewColumnService(st)
	taskService := services.NewTaskService(st, columnService)

	authHandler := handlers.NewAuthHandler(st, cfg)
	boardHandler := handlers.NewBoardHandler(boardService)
	columnHandler := handlers.NewColumnHandler(columnService)
	taskHandler := handlers.NewTaskHandler(taskService)

	authRequired := middleware.AuthMiddleware(st)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authRequired, authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		boards := api.Group("/boards", authRequired)
		{
			boards.GET("", boardHandler.List)
			boards.POST("", boardHandler.Create)
			boards.PUT("/:id", boardHandler.Update)
			boards.DELETE("/:id", boardHandler.Delete)
		}

		columns := api.Group("/columns", authRequired)
		{
			columns.GET("", columnHandler.List)
			columns.POST("", columnHandler.Create)
			columns.PUT("/:id", columnHandler.Update)
			columns.DELETE("/:id", columnHandler.Delete)
		}

		tasks := api.Group("/tasks", authRequired)
		{
			tasks.GET("", taskHandler.List)
			tasks.GET("/:id", taskHandler.Get)
			tasks.POST("", taskHandler.Create)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.PUT("/:id/move", taskHandler.Move)
			tasks.PUT("/:id/done", taskHandler.SetDone)
			tasks.DELETE("/:id", taskHandler.Delete)
		}
	}

	return r
}
