package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelier-interiors/studio-api/internal/api/handler"
	"github.com/atelier-interiors/studio-api/internal/api/middleware"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
	"github.com/atelier-interiors/studio-api/internal/core/service"
	mongodb "github.com/atelier-interiors/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/atelier-interiors/studio-api/internal/infrastructure/db/redis"
)

// Options carries the collaborators the router wires together.
type Options struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Mailer ports.Mailer
	Store  ports.ObjectStore

	JWTSecret     string
	SecureCookies bool
	MailFrom      string
	NotifyTo      string

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))
	e.Use(middleware.Session(opts.JWTSecret))

	// --- Dependencies ---
	cache := redisdb.NewPageCache(opts.Redis)

	userRepo := mongodb.NewUserRepository(opts.DB)
	projectRepo := mongodb.NewContentRepository[domain.Project, *domain.Project](opts.DB, "projects")
	serviceRepo := mongodb.NewContentRepository[domain.StudioService, *domain.StudioService](opts.DB, "services")
	blogRepo := mongodb.NewContentRepository[domain.BlogPost, *domain.BlogPost](opts.DB, "blogs")
	teamRepo := mongodb.NewContentRepository[domain.TeamMember, *domain.TeamMember](opts.DB, "team")
	leadRepo := mongodb.NewLeadRepository(opts.DB)
	noteRepo := mongodb.NewNoteRepository(opts.DB)

	authService := service.NewAuthService(userRepo, opts.JWTSecret)
	userService := service.NewUserService(userRepo, opts.Logger)
	projectService := service.NewContentService[domain.Project](domain.ResourceProjects, projectRepo, cache, opts.Logger)
	serviceService := service.NewContentService[domain.StudioService](domain.ResourceServices, serviceRepo, cache, opts.Logger)
	blogService := service.NewContentService[domain.BlogPost](domain.ResourceBlogs, blogRepo, cache, opts.Logger)
	teamService := service.NewContentService[domain.TeamMember](domain.ResourceTeam, teamRepo, cache, opts.Logger)
	leadService := service.NewLeadService(leadRepo, opts.Mailer, cache, opts.MailFrom, opts.NotifyTo, opts.Logger)
	noteService := service.NewNoteService(noteRepo, cache, opts.Logger)

	authHandler := handler.NewAuthHandler(authService, opts.SecureCookies)
	projectHandler := handler.NewContentHandler[domain.Project](domain.ResourceProjects, projectService, cache, true)
	serviceHandler := handler.NewContentHandler[domain.StudioService](domain.ResourceServices, serviceService, cache, true)
	blogHandler := handler.NewContentHandler[domain.BlogPost](domain.ResourceBlogs, blogService, cache, true)
	teamHandler := handler.NewContentHandler[domain.TeamMember](domain.ResourceTeam, teamService, cache, false)
	leadHandler := handler.NewLeadHandler(leadService)
	contactHandler := handler.NewContactHandler(leadService)
	userHandler := handler.NewUserHandler(userService)
	noteHandler := handler.NewNoteHandler(noteService)
	uploadHandler := handler.NewUploadHandler(opts.Store)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Public marketing site routes ---
	public := e.Group("/v1")
	projectHandler.RegisterPublic(public)
	serviceHandler.RegisterPublic(public)
	blogHandler.RegisterPublic(public)
	teamHandler.RegisterPublic(public)
	public.GET("/note", noteHandler.Get)
	public.POST("/contact", contactHandler.Submit)

	// --- Dashboard routes (any authenticated role enters; per-operation
	// tiers are enforced by the services' policy checks) ---
	dashboard := e.Group("/dashboard", middleware.RequireSession())
	projectHandler.RegisterDashboard(dashboard)
	serviceHandler.RegisterDashboard(dashboard)
	blogHandler.RegisterDashboard(dashboard)
	teamHandler.RegisterDashboard(dashboard)
	leadHandler.Register(dashboard)
	userHandler.Register(dashboard)
	dashboard.PUT("/note", noteHandler.Put)
	dashboard.POST("/uploads", uploadHandler.Upload)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.DB, opts.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
