package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"notes-service/internal/core/auth"
	"notes-service/internal/domain"
	"notes-service/internal/transport/http/handler"
	mdw "notes-service/internal/transport/http/middleware"
)

// Deps carries everything the engine needs; nothing is reached through
// globals.
type Deps struct {
	Log    *zap.Logger
	JWTer  *auth.JWTer
	Users  domain.UserRepository
	UserH  *handler.UserHandler
	NoteH  *handler.NoteHandler
	AdminH *handler.AdminHandler
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(200), 400),
		mdw.RateLimitPerIP(rate.Limit(50), 100),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public: registration and login are the only routes that bypass the guard.
	users := r.Group("/users")
	users.POST("/register", d.UserH.Register)
	users.POST("/login", d.UserH.Login)

	// Everything below resolves the current user from the bearer token.
	authed := r.Group("")
	authed.Use(mdw.AuthJWT(d.JWTer, d.Users))

	authed.GET("/users/me", d.UserH.Me)

	notes := authed.Group("/notes")
	notes.POST("", d.NoteH.Create)
	notes.GET("", d.NoteH.List)
	notes.GET("/:id", d.NoteH.Get)
	notes.PUT("/:id", d.NoteH.Update)
	notes.DELETE("/:id", d.NoteH.Delete)

	// Role gate is layered on top of authentication, not merged into it:
	// wrong role → 403, no/bad token → 401.
	admin := authed.Group("/admin")
	admin.Use(mdw.RequireRole(domain.RoleAdmin))
	admin.GET("/users", d.AdminH.ListUsers)

	return r
}
