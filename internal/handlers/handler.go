package handlers

import (
	"net/http"

	"github.com/jensfenty/Exercise-Tracker/internal/logger"
	"github.com/jensfenty/Exercise-Tracker/internal/service"

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

	// Static landing page
	router.StaticFile("/", "./views/index.html")

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Live log feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsLogFeed)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", h.createUser)
			users.GET("", h.listUsers)
			users.POST("/:id/exercises", h.addExercise)
			users.GET("/:id/logs", h.getLogs)
		}
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// respondServiceError maps a service failure onto the wire contract:
// client-input errors keep status 200 with an {error} payload (consumers of
// this API depend on that), anything else is a 500 with a generic message.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if service.IsClientError(err) {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	if h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}
