package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/sidapp/mongo-user-service/internal/container"
	handlers "github.com/sidapp/mongo-user-service/internal/interface/http"
	"github.com/sidapp/mongo-user-service/internal/interface/middleware"
)

// Module wires the user CRUD handlers into routes under the API group:
// GET/POST /users, GET/PUT/DELETE /users/:id

type Module struct {
	Handler *handlers.UserHandler
}

func New(h *handlers.UserHandler) *Module {
	return &Module{Handler: h}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")

	cfg := container.GetConfig()
	if cfg.RateLimitEnabled {
		// Per-IP limit on the whole resource; internal traffic bypasses it.
		users.Use(middleware.RateLimit(
			container.GetRedis(),
			cfg.RateLimitMax,
			cfg.RateLimitWindow,
			middleware.KeyByIP(),
			middleware.AllowPrivateIP(),
		))
	}

	users.GET("", m.Handler.List)
	users.POST("", m.Handler.Create)
	users.GET("/:id", m.Handler.Get)
	users.PUT("/:id", m.Handler.Update)
	users.DELETE("/:id", m.Handler.Delete)
}
