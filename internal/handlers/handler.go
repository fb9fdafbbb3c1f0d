package handlers

import (
	"net/http"

	"userapi/internal/logger"
	"userapi/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public account endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Protected endpoints: authenticate resolves the bearer token into an
	// identity (or leaves the request anonymous), requireUser enforces the
	// route policy that an identity must be present.
	protected := router.Group("/", h.authenticate, h.requireUser)
	{
		protected.GET("/getUser", h.getUser)
		protected.GET("/getUsers", h.getUsers)
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
