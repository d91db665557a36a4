package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"portfolio/backend/config"
	"portfolio/backend/handlers"
	"portfolio/backend/handlers/contact"
	"portfolio/backend/handlers/profile"
	"portfolio/backend/handlers/project"
	"portfolio/backend/handlers/seed"
	"portfolio/backend/logger"
	"portfolio/backend/middleware"
	"portfolio/backend/store"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	logger.Setup(cfg.LogLevel, cfg.Env)

	// Connect the document store. A missing or unreachable database is not
	// fatal: the API keeps serving and reports the state on /test.
	st := store.New(cfg.DatabaseURL, cfg.DatabaseName)
	if !st.Configured() {
		log.Warn().Msg("DATABASE_URL is not set, starting without a database")
	} else if err := st.Connect(context.Background()); err != nil {
		log.Error().Err(err).Msg("database connection failed, starting degraded")
	} else {
		log.Info().Str("database", cfg.DatabaseName).Msg("database connected")
	}

	// Create router
	r := mux.NewRouter()
	r.NotFoundHandler = handlers.NotFound()
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed()

	// Service routes
	r.HandleFunc("/", handlers.RootHandler()).Methods("GET", "OPTIONS")
	r.HandleFunc("/test", handlers.TestHandler(st)).Methods("GET", "OPTIONS")
	r.HandleFunc("/schema", handlers.SchemaHandler()).Methods("GET", "OPTIONS")

	// Public content routes
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/profile", profile.GetProfileHandler(st)).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects", project.ListProjectsHandler(st)).Methods("GET", "OPTIONS")
	api.HandleFunc("/contact", contact.SubmitContactHandler(st)).Methods("POST", "OPTIONS")
	api.HandleFunc("/seed", seed.SeedHandler(st)).Methods("POST", "OPTIONS")

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	})

	handler := c.Handler(middleware.RequestID(middleware.RequestLogger(middleware.Recover(r))))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Block until a shutdown signal arrives, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := st.Close(ctx); err != nil {
		log.Error().Err(err).Msg("closing store")
	}
}
