// Package main starts an HTTP server that answers shortest-path queries over
// the campus graph. It uses the internal handlers package to process incoming
// requests and return JSON responses.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusnav/core/cmd/api/middleware"
	"github.com/campusnav/core/internal/config"
	"github.com/campusnav/core/internal/handlers"
	"github.com/campusnav/core/internal/locator"
	"github.com/campusnav/core/internal/navigator"
	"github.com/campusnav/core/internal/parser"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	handler, err := newServer(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Server starting on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// newServer loads the campus named by cfg and returns the fully wrapped
// HTTP handler.
func newServer(cfg config.Config) (http.Handler, error) {
	def, g, err := parser.LoadCampus(cfg.CampusFile)
	if err != nil {
		return nil, fmt.Errorf("load campus: %w", err)
	}

	loc, err := locator.New(def.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("index coordinates: %w", err)
	}

	nav := navigator.New(g, navigator.WithValidation(cfg.Validation))
	log.Printf("Loaded campus %q: %d locations, %d edges, validation=%s",
		def.Name, len(g.Locations()), len(g.Edges()), nav.Validation())

	router := setupRouter(handlers.NewRouteHandler(nav, loc, def), handlers.Health(g))

	var h http.Handler = router
	h = http.TimeoutHandler(h, cfg.RequestTimeout, "Request timed out")
	h = middleware.Cors(cfg.AllowedOrigin)(h)
	h = middleware.Logging(nil)(h)
	return h, nil
}

func setupRouter(routes *handlers.RouteHandler, health http.HandlerFunc) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", health).Methods(http.MethodGet)
	routes.RegisterRoutes(router)
	return router
}
