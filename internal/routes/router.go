// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"literary-calendar/backend/internal/handlers"
	"literary-calendar/backend/internal/repositories"
	"literary-calendar/backend/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB) *gin.Engine {
	r := gin.Default()

	// CORS対策
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	// リポジトリ
	eventRepo := repositories.NewEventRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// サービス
	eventService := services.NewEventService(eventRepo)
	userService := services.NewUserService(userRepo)
	jwtService := services.NewJWTService()

	// ハンドラー
	userHandler := handlers.NewUserHandler(userService, jwtService)
	eventHandler := handlers.NewEventHandler(eventService)
	dayHandler := handlers.NewDayHandler(eventService)

	assetsDir := os.Getenv("ASSETS_DIR")
	if assetsDir == "" {
		assetsDir = "shared/assets"
	}
	assetHandler := handlers.NewAssetHandler(assetsDir)

	// ルーティング
	r.GET("/api/dbcheck", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	})
	r.POST("/api/register", userHandler.RegisterHandler)
	r.POST("/api/login", userHandler.LoginHandler)
	r.GET("/api/assets/*filepath", assetHandler.ServeHandler)

	authorized := r.Group("/")
	authorized.Use(AuthMiddleware(jwtService))
	{
		authorized.GET("/api/events", eventHandler.GetEventsHandler)
		authorized.POST("/api/events", eventHandler.CreateEventHandler)
		authorized.PUT("/api/events", eventHandler.UpdateEventHandler)
		authorized.DELETE("/api/events", eventHandler.DeleteEventHandler)
		authorized.GET("/api/day", dayHandler.GetDayHandler)
	}

	return r
}
