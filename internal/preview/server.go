package preview

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brickrouge-dev/brickrouge/internal/config"
	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/pkg/assets"
	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/i18n"
	"github.com/brickrouge-dev/brickrouge/pkg/instrument"
	"github.com/brickrouge-dev/brickrouge/pkg/widget"
)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Registry receives the render metrics and is served on /metrics.
	// A fresh registry is used when nil.
	Registry *prometheus.Registry

	Logger *slog.Logger
}

// Server serves the widget gallery.
type Server struct {
	config     *config.Config
	logger     *slog.Logger
	router     *chi.Mux
	registry   *prometheus.Registry
	observer   *instrument.Observer
	reload     *ReloadHub
	watcher    *Watcher
	translator atomic.Pointer[i18n.Catalog]

	mu         sync.Mutex
	httpServer *http.Server
}

// NewServer creates a preview server and loads the translation catalogs.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := options.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		router:   chi.NewRouter(),
		registry: registry,
		observer: instrument.New(instrument.WithRegistry(registry)),
	}
	s.loadCatalog()

	if cfg.Preview.HotReload {
		s.reload = NewReloadHub()
		s.watcher = NewWatcher(WatcherConfig{
			Paths:  append(cfg.WatchPaths(), cfg.AssetDirs()...),
			Ignore: append(append([]string{}, DefaultIgnore...), cfg.Preview.Ignore...),
			Logger: logger,
		})
		s.watcher.OnChange(s.handleChanges)
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures the gallery routes.
func (s *Server) setupRoutes() {
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/samples/{name}", s.handleSample)
	s.router.Get("/health", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	prefix := "/" + strings.Trim(s.config.Assets.Prefix, "/")
	s.router.Get(prefix+"/*", s.handleAsset)

	if s.reload != nil {
		s.router.Method(http.MethodGet, ReloadPath, s.reload)
	}
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              s.config.PreviewAddress(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	if s.watcher != nil {
		go func() {
			if err := s.watcher.Run(ctx); err != nil {
				s.logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	s.logger.Info("preview server running", "url", s.config.PreviewURL())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.httpServer.Shutdown(ctx)
	s.httpServer = nil
	return err
}

// session creates the render session of one request.
func (s *Server) session() *element.Session {
	resolver := assets.NewPassthroughResolver(s.config.Assets.Prefix)
	return element.NewSession(
		element.WithDocument(element.NewDocument(resolver)),
		element.WithTranslator(s.translator.Load()),
		element.WithObserver(s.observer),
		element.WithLogger(s.logger),
	)
}

func (s *Server) page(title string, samples ...widget.Sample) Page {
	return Page{
		Title:    title,
		Lang:     s.config.I18n.Locale,
		Samples:  samples,
		NotesDir: s.config.NotesPath(),
		Reload:   s.reload != nil,
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page Page) {
	ctx := element.WithSession(r.Context(), s.session())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Component().Render(ctx, w); err != nil {
		s.logger.Error("gallery render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.page("Brickrouge gallery", widget.Samples()...))
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	sample, err := widget.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.render(w, r, s.page(sample.Title, sample))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleAsset serves a file from the first asset directory holding it.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + chi.URLParam(r, "*"))
	for _, dir := range s.config.AssetDirs() {
		file := filepath.Join(dir, filepath.FromSlash(name))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			http.ServeFile(w, r, file)
			return
		}
	}
	http.NotFound(w, r)
}

// loadCatalog reloads the translation catalogs. A missing directory leaves
// an empty catalog.
func (s *Server) loadCatalog() {
	catalog := i18n.NewCatalog(s.config.I18n.Locale)
	if dir := s.config.CatalogsPath(); dir != "" {
		if _, err := os.Stat(dir); err == nil {
			if err := catalog.LoadDir(dir); err != nil {
				s.logger.Error("catalog load failed", "dir", dir, "error", errors.FromError(err, errors.CodeTranslation))
			}
		}
	}
	s.translator.Store(catalog)
}

func (s *Server) handleChanges(changes []Change) {
	cssOnly := true
	for _, change := range changes {
		s.logger.Info("changed", "path", change.Path, "type", change.Type)
		if change.Type == ChangeCatalog {
			s.loadCatalog()
		}
		if change.Type != ChangeCSS {
			cssOnly = false
		}
	}

	if cssOnly {
		s.reload.NotifyCSS(filepath.Base(changes[0].Path))
		return
	}
	s.reload.NotifyReload()
}
