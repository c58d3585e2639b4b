package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"builderspace-backend/internal/config"
	"builderspace-backend/internal/features/applications"
	"builderspace-backend/internal/features/audit_logs"
	"builderspace-backend/internal/features/posts"
	"builderspace-backend/internal/features/realtime"
	system_healthcheck "builderspace-backend/internal/features/system/healthcheck"
	"builderspace-backend/internal/features/teams"
	users_controllers "builderspace-backend/internal/features/users/controllers"
	users_middleware "builderspace-backend/internal/features/users/middleware"
	users_services "builderspace-backend/internal/features/users/services"
	workspaces_controllers "builderspace-backend/internal/features/workspaces/controllers"
	workspaces_models "builderspace-backend/internal/features/workspaces/models"
	"builderspace-backend/internal/storage"
	env_utils "builderspace-backend/internal/util/env"
	"builderspace-backend/internal/util/logger"
	tls_utils "builderspace-backend/internal/util/tls"

	users_models "builderspace-backend/internal/features/users/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title BuilderSpace Backend API
// @version 1.0
// @description API for BuilderSpace
// @termsOfService http://swagger.io/terms/

// @host localhost:4010
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()

	runMigrations(log)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		// Don't compress already compressed files
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)
	setUpDependencies()
	setUpRoutes(ginApp)
	runBackgroundTasks(log)

	startServerWithGracefulShutdown(log, ginApp)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	cfg := config.GetEnv()
	var srv *http.Server
	var httpRedirectSrv *http.Server

	if cfg.EnableHTTPS && cfg.EnvMode == env_utils.EnvModeProduction {
		certManager := tls_utils.NewCertificateManager(cfg.CertsDir)
		certPath, keyPath, err := certManager.EnsureCertificates()
		if err != nil {
			log.Error("Failed to setup TLS certificates", "error", err)
			os.Exit(1)
		}
		log.Info("TLS certificates ready", "certPath", certPath, "keyPath", keyPath)

		srv = &http.Server{
			Addr:    host + ":" + cfg.HTTPSPort,
			Handler: app,
		}

		go func() {
			log.Info("Starting HTTPS server", "addr", srv.Addr)
			if err := srv.ListenAndServeTLS(certPath, keyPath); err != nil && err != http.ErrServerClosed {
				log.Error("HTTPS listen error:", "error", err)
			}
		}()

		httpRedirectSrv = &http.Server{
			Addr: host + ":" + cfg.HTTPPort,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				target := "https://" + r.Host + r.URL.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
			}),
		}

		go func() {
			log.Info("Starting HTTP redirect server", "addr", httpRedirectSrv.Addr)
			if err := httpRedirectSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("HTTP redirect listen error:", "error", err)
			}
		}()

		log.Info("BuilderSpace is running with HTTPS!", "https", "https://localhost:"+cfg.HTTPSPort, "http_redirect", "http://localhost:"+cfg.HTTPPort)
	} else {
		srv = &http.Server{
			Addr:    host + ":" + cfg.HTTPPort,
			Handler: app,
		}

		go func() {
			log.Info("Starting HTTP server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("listen:", "error", err)
			}
		}()

		log.Info("BuilderSpace is running!", "http", "http://localhost:"+cfg.HTTPPort)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	if httpRedirectSrv != nil {
		if err := httpRedirectSrv.Shutdown(ctx); err != nil {
			log.Error("HTTP redirect server forced to shutdown:", "error", err)
		}
	}

	log.Info("Server gracefully stopped")
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Mount Swagger UI
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes (only user auth routes and healthcheck should be public)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)
	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)

	// The websocket endpoint authenticates via token query parameter
	realtime.GetRealtimeController().RegisterRoutes(v1)

	// Setup auth middleware
	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	posts.GetPostController().RegisterRoutes(protected)
	applications.GetApplicationController().RegisterRoutes(protected)
	teams.GetTeamController().RegisterRoutes(protected)
	workspaces_controllers.GetWorkspaceController().RegisterRoutes(protected)
	workspaces_controllers.GetGroupChatController().RegisterRoutes(protected)
	workspaces_controllers.GetSharedLinkController().RegisterRoutes(protected)
	workspaces_controllers.GetTaskController().RegisterRoutes(protected)
}

func setUpDependencies() {
	teams.SetupDependencies()
	users_services.GetUserService().SetAuditLogWriter(audit_logs.GetAuditLogService())
}

func runBackgroundTasks(log *slog.Logger) {
	log.Info("Preparing to run background tasks...")

	go runWithPanicLogging(log, "connection prune background service", func() {
		realtime.GetConnectionPruneBackgroundService().Run()
	})
}

func runWithPanicLogging(log *slog.Logger, serviceName string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic in "+serviceName, "error", r)
		}
	}()
	fn()
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	err := storage.Migrate(
		&users_models.User{},
		&posts.Startup{},
		&posts.Hackathon{},
		&applications.Application{},
		&applications.ScreeningMessage{},
		&teams.TeamMember{},
		&workspaces_models.Workspace{},
		&workspaces_models.Message{},
		&workspaces_models.SharedLink{},
		&workspaces_models.Task{},
		&audit_logs.AuditLog{},
	)
	if err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// Setup CORS
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"Access-Control-Allow-Methods",
				"Access-Control-Allow-Headers",
				"Access-Control-Allow-Origin",
			},
			AllowCredentials: true,
		}))
	}
}
