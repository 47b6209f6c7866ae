package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires the session-scoped cart routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", sessionHeader},
		ExposeHeaders:    []string{sessionHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	cart := router.Group("/cart", sessionMiddleware())
	{
		cart.GET("", getCartHandler(deps.Sessions))
		cart.DELETE("", clearCartHandler(deps.Sessions))
		cart.POST("/items", addItemHandler(deps.Sessions))
		cart.DELETE("/items", removeItemHandler(deps.Sessions))
		cart.POST("/items/increment", incrementItemHandler(deps.Sessions))
		cart.POST("/items/decrement", decrementItemHandler(deps.Sessions))
	}

	return router
}
