package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/notes-server/internal/api/http/handler"
	"github.com/dtroode/notes-server/internal/api/http/middleware"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// Options holds transport-level settings for the HTTP API.
type Options struct {
	CORSOrigins       []string
	MaxBodyBytes      int64
	MaxMultipartBytes int64
	Cookies           handler.CookieOptions
}

// Router builds the gin engine serving the notes API.
type Router struct {
	authService    handler.AuthService
	noteService    handler.NoteService
	tokenService   middleware.TokenService
	db             handler.Pinger
	contextManager model.ContextManager
	logger         *logger.Logger
	opts           Options
}

// New creates new HTTP Router instance.
func New(
	authService handler.AuthService,
	noteService handler.NoteService,
	tokenService middleware.TokenService,
	db handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		authService:    authService,
		noteService:    noteService,
		tokenService:   tokenService,
		db:             db,
		contextManager: contextManager,
		logger:         logger,
		opts:           opts,
	}
}

// Register wires middleware and routes and returns the engine.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()

	logging := middleware.NewLogging(r.logger)
	engine.Use(
		middleware.Recovery(r.logger),
		logging.Handle,
		cors.New(cors.Config{
			AllowOrigins:     r.opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.BodyLimit(r.opts.MaxBodyBytes, r.opts.MaxMultipartBytes),
	)

	engine.GET("/health", handler.NewHealth(r.db, r.logger).Check)

	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	api := engine.Group("/api")
	r.registerAuthRoutes(api, authenticate.Handle)
	r.registerNoteRoutes(api, authenticate.Handle)

	return engine
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup, authenticate gin.HandlerFunc) {
	h := handler.NewAuth(r.authService, r.contextManager, r.opts.Cookies, r.logger)

	auth := api.Group("/auth")
	auth.POST("/signup", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/refresh-token", h.Refresh)

	protected := auth.Group("", authenticate)
	protected.POST("/logout", h.Logout)
	protected.POST("/change-password", h.ChangePassword)
	protected.GET("/current-user", h.CurrentUser)
	protected.PATCH("/update-account", h.UpdateAccount)
}

func (r *Router) registerNoteRoutes(api *gin.RouterGroup, authenticate gin.HandlerFunc) {
	h := handler.NewNote(r.noteService, r.contextManager, r.logger)

	notes := api.Group("/notes", authenticate)
	notes.GET("", h.List)
	notes.POST("", h.Create)
	notes.GET("/:noteId", h.Get)
	notes.PUT("/:noteId", h.Update)
	notes.DELETE("/:noteId", h.Delete)
	notes.POST("/:noteId/share", h.Share)

	api.GET("/search", authenticate, h.Search)
}
