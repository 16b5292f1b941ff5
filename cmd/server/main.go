package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/joho/godotenv"

	"eduadmin/application"
	"eduadmin/domain/accounts"
	"eduadmin/domain/bulkops"
	"eduadmin/domain/catalog"
	"eduadmin/domain/inbox"
	"eduadmin/infrastructure/apiclient"
	"eduadmin/infrastructure/config"
	"eduadmin/interfaces/web/handlers"
	"eduadmin/interfaces/web/presenters"
	"eduadmin/logging"
	"eduadmin/platform/events"
)

func main() {
	// Create app-wide context for graceful shutdown
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Initialize configuration
	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()

	// Initialize logging
	logger := initializeLogging(cfg)

	// Build dependencies with app context
	deps := buildDependencies(appCtx, cfg, logger)

	// Setup routes and start server
	router := setupRoutes(deps, cfg)
	startServer(router, cfg.HTTPAddr, logger, deps, appCancel)
}

// BackendAPIs groups the typed clients for the learning platform's
// REST backend.
type BackendAPIs struct {
	Users    *apiclient.UserAPI
	Packages *apiclient.PackageAPI
	Messages *apiclient.MessageAPI
	System   *apiclient.SystemAPI
}

// ApplicationServices holds application services.
type ApplicationServices struct {
	Users    *application.UserAdminService
	Packages *application.PackageAdminService
	Messages *application.MessageTriageService
	System   *application.SystemStatusService
	EventBus *events.BulkEventBus
}

// PresentationLayer groups all presentation components.
type PresentationLayer struct {
	// Presenters
	ListPresenter *presenters.ListPresenter
	BulkPresenter *presenters.BulkPresenter

	// Handlers
	UserHandlers    *handlers.UserHandlers
	PackageHandlers *handlers.PackageHandlers
	MessageHandlers *handlers.MessageHandlers
	SystemHandlers  *handlers.SystemHandlers
	SSEManager      *handlers.SSEManager
}

// Dependencies holds all application dependencies organized by layer.
type Dependencies struct {
	// Infrastructure
	Backend *apiclient.Client
	APIs    *BackendAPIs
	Logger  *logging.Logger

	// Application layer
	Services *ApplicationServices

	// Presentation layer
	Presentation *PresentationLayer
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"version", "1.0.0",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"backend_url", cfg.Backend.BaseURL,
		"actor_role", string(cfg.ActorRole),
	)

	return logger
}

// buildBackendAPIs creates the shared REST client and the typed
// per-entity API clients on top of it.
func buildBackendAPIs(cfg *config.AppConfig, logger *logging.Logger) (*apiclient.Client, *BackendAPIs) {
	client := apiclient.New(cfg.Backend, logger)

	return client, &BackendAPIs{
		Users:    apiclient.NewUserAPI(client),
		Packages: apiclient.NewPackageAPI(client),
		Messages: apiclient.NewMessageAPI(client),
		System:   apiclient.NewSystemAPI(client),
	}
}

// buildApplicationServices creates application services with dependency injection.
func buildApplicationServices(cfg *config.AppConfig, apis *BackendAPIs, logger *logging.Logger) *ApplicationServices {
	// Create event bus for bulk operation events
	eventBus := events.NewBulkEventBus()

	// Permission context for the acting principal
	actorRole := cfg.ActorRole
	if !actorRole.Valid() {
		logger.Warn("Unknown actor role, falling back to admin", "role", string(actorRole))
		actorRole = accounts.RoleAdmin
	}
	perms := bulkops.NewRolePermissions(actorRole)

	// Users: list + search + bulk + single-item mutations
	userList := application.NewListService[accounts.User](apis.Users, cfg.DefaultPerPage, logger)
	userSearch := application.NewSearchService[accounts.User](apis.Users, cfg.Search, logger)
	userBulk := application.NewBulkService("users", apis.Users, perms, userList, eventBus, logger)
	userService := application.NewUserAdminService(userList, userSearch, userBulk, apis.Users, perms, logger)

	// Packages: list + search + bulk + CRUD
	packageList := application.NewListService[catalog.Package](apis.Packages, cfg.DefaultPerPage, logger)
	packageSearch := application.NewSearchService[catalog.Package](apis.Packages, cfg.Search, logger)
	packageBulk := application.NewBulkService("packages", apis.Packages, perms, packageList, eventBus, logger)
	packageService := application.NewPackageAdminService(packageList, packageSearch, packageBulk, apis.Packages, logger)

	// Contact messages: list + search + triage status
	messageList := application.NewListService[inbox.Message](apis.Messages, cfg.DefaultPerPage, logger)
	messageSearch := application.NewSearchService[inbox.Message](apis.Messages, cfg.Search, logger)
	messageService := application.NewMessageTriageService(messageList, messageSearch, apis.Messages, logger)

	systemService := application.NewSystemStatusService(apis.System, logger)

	return &ApplicationServices{
		Users:    userService,
		Packages: packageService,
		Messages: messageService,
		System:   systemService,
		EventBus: eventBus,
	}
}

// buildPresentationLayer creates all presenters and handlers.
func buildPresentationLayer(appCtx context.Context, services *ApplicationServices) *PresentationLayer {
	// Build presenters (view logic)
	listPresenter := presenters.NewListPresenter()
	bulkPresenter := presenters.NewBulkPresenter()

	// Build handlers - orchestrate services & presenters
	sseManager := handlers.NewSSEManager(appCtx)
	userHandlers := handlers.NewUserHandlers(services.Users, listPresenter, bulkPresenter)
	packageHandlers := handlers.NewPackageHandlers(services.Packages, listPresenter, bulkPresenter)
	messageHandlers := handlers.NewMessageHandlers(services.Messages, listPresenter)
	systemHandlers := handlers.NewSystemHandlers(services.System)

	// Wire bulk events to operator toast notifications
	setupEventHandlers(services, sseManager)

	return &PresentationLayer{
		ListPresenter:   listPresenter,
		BulkPresenter:   bulkPresenter,
		UserHandlers:    userHandlers,
		PackageHandlers: packageHandlers,
		MessageHandlers: messageHandlers,
		SystemHandlers:  systemHandlers,
		SSEManager:      sseManager,
	}
}

// buildDependencies creates all application dependencies.
func buildDependencies(appCtx context.Context, cfg *config.AppConfig, logger *logging.Logger) *Dependencies {
	backend, apis := buildBackendAPIs(cfg, logger)
	services := buildApplicationServices(cfg, apis, logger)
	presentation := buildPresentationLayer(appCtx, services)

	return &Dependencies{
		Backend:      backend,
		APIs:         apis,
		Services:     services,
		Presentation: presentation,
		Logger:       logger,
	}
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	setupHTTPLogging(r, deps, cfg)
	r.Use(middleware.Recoverer)

	// System endpoints
	setupSystemRoutes(r, deps)

	// Entity list-management routes
	setupUserRoutes(r, deps)
	setupPackageRoutes(r, deps)
	setupMessageRoutes(r, deps)

	return r
}

func setupHTTPLogging(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	if cfg.HTTPLogPath == "" {
		// No HTTP logging configured, skip
		return
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		deps.Logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return
	}
	// Note: logFile is not closed here as it needs to stay open for the server lifetime

	httpLogger := httplog.NewLogger("eduadmin", httplog.Options{
		Writer: logFile,
		JSON:   true,
	})
	r.Use(httplog.RequestLogger(httpLogger))

	deps.Logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
}

func setupSystemRoutes(r *chi.Mux, deps *Dependencies) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RenderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/system/health", deps.Presentation.SystemHandlers.Health)

	r.Get("/events", deps.Presentation.SSEManager.HandleSSEConnection)
}

func setupUserRoutes(r *chi.Mux, deps *Dependencies) {
	h := deps.Presentation.UserHandlers

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.ListPage)
		r.Post("/filters", h.SetFilters)
		r.Post("/sort", h.SetSort)
		r.Post("/selection/toggle", h.ToggleSelection)
		r.Post("/selection/all", h.SelectAll)
		r.Delete("/selection", h.ClearSelection)
		r.Post("/search", h.Search)
		r.Post("/refresh", h.Refresh)
		r.Post("/bulk", h.ExecuteBulk)

		r.Put("/{userID}", h.UpdateUser)
		r.Post("/{userID}/activate", h.ActivateUser)
		r.Delete("/{userID}", h.DeactivateUser)
		r.Put("/{userID}/role", h.ChangeUserRole)
	})
}

func setupPackageRoutes(r *chi.Mux, deps *Dependencies) {
	h := deps.Presentation.PackageHandlers

	r.Route("/api/packages", func(r chi.Router) {
		r.Get("/", h.ListPage)
		r.Post("/", h.CreatePackage)
		r.Post("/filters", h.SetFilters)
		r.Post("/sort", h.SetSort)
		r.Post("/selection/toggle", h.ToggleSelection)
		r.Post("/selection/all", h.SelectAll)
		r.Delete("/selection", h.ClearSelection)
		r.Post("/search", h.Search)
		r.Post("/refresh", h.Refresh)
		r.Post("/bulk", h.ExecuteBulk)

		r.Put("/{packageID}", h.UpdatePackage)
		r.Delete("/{packageID}", h.DeletePackage)
	})
}

func setupMessageRoutes(r *chi.Mux, deps *Dependencies) {
	h := deps.Presentation.MessageHandlers

	r.Route("/api/contact-messages", func(r chi.Router) {
		r.Get("/", h.ListPage)
		r.Post("/filters", h.SetFilters)
		r.Post("/sort", h.SetSort)
		r.Post("/search", h.Search)
		r.Post("/refresh", h.Refresh)

		r.Put("/{messageID}/status", h.SetStatus)
	})
}

func startServer(router *chi.Mux, addr string, logger *logging.Logger, deps *Dependencies, appCancel context.CancelFunc) {
	server := &http.Server{Addr: addr, Handler: router}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		// Cancel app-wide context first to signal all services to shutdown
		logger.Info("Cancelling app context...")
		appCancel()

		// Close SSE connections immediately
		logger.Info("Closing SSE connections...")
		deps.Presentation.SSEManager.CloseAll()

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				logger.Error("Graceful shutdown timed out, forcing exit")
				os.Exit(1)
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			os.Exit(1)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
}

// setupEventHandlers wires bulk operation events to SSE toast
// notifications.
func setupEventHandlers(services *ApplicationServices, sseManager *handlers.SSEManager) {
	notificationHandlers := events.NewNotificationEventHandlers(sseManager)
	notificationHandlers.RegisterHandlers(services.EventBus)
}
