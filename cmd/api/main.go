package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/handlers"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/profiling"
	"github.com/mentorhub/mentorhub-api/pkg/tracing"
)

// registerAuthRoutes registers registration, login and profile endpoints
func registerAuthRoutes(
	api *gin.RouterGroup,
	authRateLimiter *middleware.RateLimiter,
	authGate gin.HandlerFunc,
	authHandler *handlers.AuthHandler,
) {
	auth := api.Group("/auth")
	auth.POST("/register", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024), authHandler.Register)
	auth.POST("/login", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024), authHandler.Login)
	auth.GET("/profile", authGate, authHandler.Profile)
}

// registerResourceRoutes registers the session and feedback endpoints, all
// behind the auth gate
func registerResourceRoutes(
	api *gin.RouterGroup,
	authGate gin.HandlerFunc,
	sessionHandler *handlers.SessionHandler,
	feedbackHandler *handlers.FeedbackHandler,
) {
	sessions := api.Group("/sessions", authGate, middleware.BodySizeLimitMiddleware(256*1024))
	sessions.GET("", sessionHandler.List)
	sessions.POST("", sessionHandler.Create)
	sessions.GET("/:id", sessionHandler.Get)
	sessions.PUT("/:id", sessionHandler.Update)
	sessions.DELETE("/:id", sessionHandler.Delete)

	feedback := api.Group("/feedback", authGate, middleware.BodySizeLimitMiddleware(256*1024))
	feedback.POST("", feedbackHandler.Create)
	feedback.GET("/session/:sessionId", feedbackHandler.ListBySession)
	feedback.GET("/user", feedbackHandler.ListMine)
	feedback.PUT("/:id", feedbackHandler.Update)
	feedback.DELETE("/:id", feedbackHandler.Delete)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MentorHub API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	if cfg.UsingInsecureJWTSecret() {
		logger.Warn("JWT_SECRET not set, using the insecure development fallback; set JWT_SECRET before exposing this server")
	}

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.Server.AppEnv,
		cfg.Observability.OTLPEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize continuous profiling
	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(profiling.Config{
			Enabled:               cfg.Profiling.Enabled,
			Endpoint:              cfg.Profiling.Endpoint,
			AppName:               cfg.Profiling.AppName,
			SampleTypes:           cfg.Profiling.SampleTypes,
			UploadIntervalSeconds: cfg.Profiling.UploadIntervalSeconds,
		}, cfg.Observability.ServiceName, cfg.Observability.ServiceVersion, cfg.Server.AppEnv)
		if err != nil {
			logger.Fatal("Failed to initialize profiler", zap.Error(err))
		}
		defer stopProfiler()
	}

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize in-memory stores
	userStore := repository.NewMemoryUserStore()
	sessionStore := repository.NewMemorySessionStore()
	feedbackStore := repository.NewMemoryFeedbackStore()

	// Initialize token manager
	tokenManager := jwt.NewTokenManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)

	// Initialize services
	authService := services.NewAuthService(userStore, tokenManager)
	sessionService := services.NewSessionService(sessionStore)
	feedbackService := services.NewFeedbackService(feedbackStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	healthHandler := handlers.NewHealthHandler()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: explicit origins when configured, otherwise allow all
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}
	if len(allowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// Rate limiters: a tighter bucket for credential endpoints to slow
	// brute-force attempts
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.GeneralPerSecond), cfg.RateLimit.GeneralBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.AuthPerSecond), cfg.RateLimit.AuthBurst)
	defer generalRateLimiter.Stop()
	defer authRateLimiter.Stop()

	authGate := middleware.AuthMiddleware(tokenManager, userStore)

	// API routes
	api := router.Group("/api", generalRateLimiter.Middleware())
	api.GET("/test", healthHandler.Test)
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAuthRoutes(api, authRateLimiter, authGate, authHandler)
	registerResourceRoutes(api, authGate, sessionHandler, feedbackHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
