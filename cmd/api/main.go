// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/idracore/gms/internal/auth"
	"github.com/idracore/gms/internal/config"
	"github.com/idracore/gms/internal/email"
	"github.com/idracore/gms/internal/handler"
	"github.com/idracore/gms/internal/middleware"
	"github.com/idracore/gms/internal/obs"
	"github.com/idracore/gms/internal/repository"
	"github.com/idracore/gms/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize metrics
	obs.Init()

	// Initialize repositories
	identityRepo := repository.NewIdentityRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	grievanceRepo := repository.NewGrievanceRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewService(cfg, email.PickProvider(cfg))
	if err != nil {
		return fmt.Errorf("setting up email service: %w", err)
	}

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	identityService := service.NewIdentityService(identityRepo, passwordHasher, tokenManager, auditService)
	companyService := service.NewCompanyService(companyRepo, auditService)
	grievanceService := service.NewGrievanceService(grievanceRepo, auditService, emailService, cfg.Grievance.SLAWindow)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(identityService)
	companyHandler := handler.NewCompanyHandler(companyService)
	grievanceHandler := handler.NewGrievanceHandler(grievanceService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Redis backs rate limiting on the public endpoints; absent an address
	// the limiter is a no-op.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}

	requireAuth := middleware.RequireAuth(tokenManager, identityRepo)
	optionalAuth := middleware.OptionalAuth(tokenManager, identityRepo)
	rateLimit := middleware.RateLimit(cfg, rdb)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(obs.Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Metrics endpoint
	r.Handle("/metrics", obs.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.RegisterHandler)
			r.Post("/login", authHandler.LoginHandler)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", authHandler.ProfileHandler)
			})
		})

		// Public grievance tracking by reference; the reference itself is
		// the authorization token.
		r.Group(func(r chi.Router) {
			r.Use(rateLimit)
			r.Get("/grievances/track/{reference}", grievanceHandler.TrackHandler)
		})

		// Grievance submission accepts both anonymous and authenticated
		// callers.
		r.Group(func(r chi.Router) {
			r.Use(rateLimit)
			r.Use(optionalAuth)
			r.Post("/grievances", grievanceHandler.CreateHandler)
		})

		// Listing applies role-scoped visibility; anonymous callers see
		// public grievances only.
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/grievances", grievanceHandler.ListHandler)
			r.Get("/grievances/{id}", grievanceHandler.GetHandler)
			r.Get("/grievances/{id}/messages", grievanceHandler.ListMessagesHandler)
			r.Get("/companies", companyHandler.ListHandler)
			r.Get("/companies/{id}", companyHandler.GetHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Patch("/grievances/{id}/status", grievanceHandler.TransitionHandler)
			r.Post("/grievances/{id}/messages", grievanceHandler.AppendMessageHandler)
			r.Get("/analytics", grievanceHandler.AnalyticsHandler)
			r.Post("/companies", companyHandler.CreateHandler)
			r.Get("/audit-entries", auditHandler.QueryHandler)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		// Repositories match on gorm.ErrDuplicatedKey to detect unique
		// violations; TranslateError maps driver errors onto it.
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"requestID", chimw.GetReqID(r.Context()),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"ok":false,"error":"internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
