// Package viewer serves the single-page checkplot browser: the page
// itself, the manifest API it renders from, and the image files.
//
// The page's navigation mirrors the browser package's state machine:
// prev/next wrap around, the sidebar and position indicator are derived
// from the current index, and load failures render an error banner with
// navigation disabled instead of crashing.
package viewer

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/renlliang3/astrobase/internal/manifest"
)

// Config holds viewer server configuration.
type Config struct {
	Port         int
	Title        string
	ImageDir     string // directory the /checkplots/ routes serve from
	Source       string // manifest path or URL, watched when LiveReload is set
	AboutFile    string // optional markdown file rendered at /about
	LiveReload   bool
	CORSAllowAll bool // allow all CORS origins (dev mode)
}

// Server is the checkplot viewer HTTP server.
type Server struct {
	cfg        Config
	loader     *manifest.Loader
	router     chi.Router
	httpServer *http.Server
	hub        *reloadHub

	mu      sync.RWMutex
	entries manifest.Manifest
	loadErr error
}

// New creates a viewer server over an already-attempted manifest load.
// A load failure is not fatal: the page renders the error state and the
// manifest may recover on a live reload.
func New(cfg Config, loader *manifest.Loader, entries manifest.Manifest, loadErr error) *Server {
	s := &Server{
		cfg:     cfg,
		loader:  loader,
		entries: entries,
		loadErr: loadErr,
		hub:     newReloadHub(),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.CORSAllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Get("/api/manifest", s.handleManifest)
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/viewer.js", serveAsset("application/javascript; charset=utf-8", jsContent))

	if s.cfg.ImageDir != "" {
		fs := http.StripPrefix("/checkplots/", http.FileServer(http.Dir(s.cfg.ImageDir)))
		r.Handle("/checkplots/*", fs)
	}
	if s.cfg.AboutFile != "" {
		r.Get("/about", s.handleAbout)
	}
	if s.cfg.LiveReload {
		r.Get("/ws", s.hub.handleSocket)
	}

	return r
}

// Router returns the chi router, used by tests to drive the server
// without a listener.
func (s *Server) Router() chi.Router { return s.router }

// Manifest returns the currently loaded entries and any load error.
func (s *Server) Manifest() (manifest.Manifest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries, s.loadErr
}

// setManifest swaps in a reloaded manifest.
func (s *Server) setManifest(entries manifest.Manifest, err error) {
	s.mu.Lock()
	s.entries = entries
	s.loadErr = err
	s.mu.Unlock()
}

// Start begins listening on the configured port, watching the manifest
// file first when live reload is enabled.
func (s *Server) Start() error {
	if s.cfg.LiveReload {
		if err := s.watchManifest(); err != nil {
			// Reload is a convenience; the viewer works without it.
			log.Printf("viewer: manifest watch disabled: %v", err)
		}
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("cpviewer listening on %s (manifest=%s)", addr, s.cfg.Source)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}
