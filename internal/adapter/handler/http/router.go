package http

import (
	"net/http"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteRegistrar mounts a handler's routes under /api.
type RouteRegistrar interface {
	Register(api *gin.RouterGroup)
}

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	handlers ...RouteRegistrar,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(RequestIDMiddleware())

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", requestIDHeader},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	for _, h := range handlers {
		h.Register(api)
	}

	return &Router{router: router}, nil
}

func (r *Router) Handler() http.Handler {
	return r.router
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
