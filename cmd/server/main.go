package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ovenfresh/storefront/internal/catalog"
	"github.com/ovenfresh/storefront/internal/config"
	"github.com/ovenfresh/storefront/internal/handlers"
	"github.com/ovenfresh/storefront/internal/middleware"
	"github.com/ovenfresh/storefront/internal/service"
	"github.com/ovenfresh/storefront/internal/session"
	"github.com/ovenfresh/storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Load the catalog: a configured dataset file, or the built-in menu.
	// Read once here; read-only for the lifetime of the process.
	var catalogRepo catalog.Repository
	if cfg.Catalog.FilePath != "" {
		data, stats, err := catalog.LoadFile(cfg.Catalog.FilePath)
		if err != nil {
			log.Error("failed to load catalog", "file", cfg.Catalog.FilePath, "error", err)
			os.Exit(1)
		}
		log.Info("catalog loaded",
			"source", stats.Source,
			"items", stats.Items,
			"categories", stats.Categories,
		)
		catalogRepo = catalog.NewRepositoryFromCatalog(data)
	} else {
		log.Info("using built-in seed catalog")
		catalogRepo = catalog.NewInMemoryRepository()
	}

	// Initialize session store and service
	sessionStore := session.NewStore()
	storefront := service.NewStorefrontService(catalogRepo, sessionStore)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(sessionStore, log)
	menuHandler := handlers.NewMenuHandler(storefront, log)
	sessionHandler := handlers.NewSessionHandler(storefront, log)
	cartHandler := handlers.NewCartHandler(storefront, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration: the storefront page is served from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/menu", menuHandler.ListMenu)
		r.Get("/menu/{itemId}", menuHandler.GetItem)
		r.Get("/categories", menuHandler.ListCategories)

		// Session endpoints
		r.Post("/session", sessionHandler.CreateSession)
		r.Route("/session/{sessionId}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Put("/view", sessionHandler.UpdateView)
			r.Post("/favorites/{itemId}", sessionHandler.ToggleFavorite)

			// Cart endpoints
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{itemId}", cartHandler.SetQuantity)
			r.Delete("/cart/items/{itemId}", cartHandler.RemoveItem)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
