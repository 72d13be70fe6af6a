package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-api/internal/container"
	handlers "github.com/oksasatya/go-auth-api/internal/interface/http"
	"github.com/oksasatya/go-auth-api/internal/interface/middleware"
	"github.com/oksasatya/go-auth-api/pkg/helpers"
)

// Module wires user HTTP handlers and the bearer-token middleware into routes.
// Public: GET /api/users/test, POST /api/users/register, POST /api/users/login
// Protected: GET /api/users/current, GET /api/users/search

type Module struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func New(h *handlers.UserHandler, jwt *helpers.JWTManager) *Module {
	return &Module{Handler: h, JWT: jwt}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")

	// Public with per-IP rate limiting against credential stuffing
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	users.GET("/test", m.Handler.Test)
	users.POST("/register", registerLimiter, m.Handler.Register)
	users.POST("/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := users.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/current", m.Handler.Current)
		auth.GET("/search", m.Handler.Search)
	}
}
