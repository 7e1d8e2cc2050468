package demoserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kawa454/otoshi/internal/logging"
)

// DemoServer is a small local HTTP server for exercising the downloader
// against known fixtures: plain files, an HTML page, and arbitrary status
// codes.
type DemoServer struct {
	cfg    Config
	router chi.Router
	logger logging.Logger
}

// New creates a demo server instance with its routes mounted.
func New(cfg Config, logger logging.Logger) *DemoServer {
	s := &DemoServer{
		cfg:    cfg,
		logger: logger.With(logging.Field{Key: "component", Value: "demoserver"}),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.rootHandler)
	r.Get("/files/{name}", s.fileHandler)
	r.Get("/status/{code}", s.statusHandler)

	s.router = r
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *DemoServer) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the configured port.
func (s *DemoServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("demo server starting", logging.Field{Key: "addr", Value: addr})
	fmt.Printf("Demo server listening on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *DemoServer) rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(rootPage))
}

func (s *DemoServer) fileHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	f, ok := fixtureFiles[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Body)

	s.logger.Debug("served fixture",
		logging.Field{Key: "name", Value: name},
		logging.Field{Key: "size", Value: len(f.Body)})
}

func (s *DemoServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil || code < 100 || code > 599 {
		http.Error(w, "bad status code", http.StatusBadRequest)
		return
	}
	w.WriteHeader(code)
	fmt.Fprintf(w, "status %d\n", code)
}
