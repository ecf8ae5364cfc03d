package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trip-orchestrator/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	tripH *TripHandler,
	authH *AuthHandler,
	jwtSvc *service.JWTService,
	requireAuth bool,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", Healthz)

	auth := r.Group("/auth")
	auth.POST("/token", authH.IssueToken)

	api := r.Group("/api/v1")
	if requireAuth {
		api.Use(JWTAuthMiddleware(jwtSvc))
	}
	api.POST("/trips/recommend", tripH.Recommend)
	api.GET("/trips/history", tripH.History)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// Healthz responde el chequeo de vida del servicio.
func Healthz(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
