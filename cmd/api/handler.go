package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authUsecase "taskmanager-api/internal/auth/usecase"
	taskUsecase "taskmanager-api/internal/task/usecase"
	userUsecase "taskmanager-api/internal/user/usecase"
	"taskmanager-api/pkg/config"
	"taskmanager-api/pkg/logger"
)

// Handler owns the HTTP engine and its wiring.
type Handler struct {
	engine *gin.Engine
}

func NewHandler(authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, taskUc taskUsecase.TaskUsecase, cfg *config.Config) *Handler {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger.Get()))
	r.SetHTMLTemplate(pageTemplates())

	SetupRoutes(r, authUc, userUc, taskUc)

	return &Handler{engine: r}
}

// Engine exposes the router, mainly for tests.
func (h *Handler) Engine() *gin.Engine {
	return h.engine
}

func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
