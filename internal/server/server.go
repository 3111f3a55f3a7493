// Package server exposes link scanning over HTTP.
//
// Routes:
//
//	GET  /healthz    liveness probe
//	GET  /v1/config  effective extractor toggles
//	POST /v1/links   scan a document
//
// A scan request names the document kind directly or through its path:
//
//	{"path": "lib/main.dart", "text": "import 'package:http/http.dart';"}
//	{"kind": "pubspec", "text": "dependencies:\n  http: ^1.0.0\n"}
//
// and is answered in the pkg/io JSON format. Documents of unknown kind yield
// an empty list. The server keeps no state between requests.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	perrors "github.com/matzehuels/publinks/pkg/errors"
	pkgio "github.com/matzehuels/publinks/pkg/io"
	"github.com/matzehuels/publinks/pkg/links"
	"github.com/matzehuels/publinks/pkg/links/dispatch"
	"github.com/matzehuels/publinks/pkg/observability"
)

const (
	// MaxBodyBytes caps the size of a scan request.
	MaxBodyBytes = 8 << 20

	shutdownTimeout = 5 * time.Second
)

// Server answers link scan requests.
type Server struct {
	cfg        links.Config
	dispatcher *dispatch.Dispatcher
	logger     *log.Logger
}

// New creates a Server scanning with cfg. A nil logger discards output.
func New(cfg links.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{cfg: cfg, dispatcher: dispatch.New(), logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/config", s.handleConfig)
		r.Post("/links", s.handleLinks)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Infof("Listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// scanRequest is the body of POST /v1/links.
type scanRequest struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func (r scanRequest) kind() (links.Kind, error) {
	if r.Kind == "" {
		return links.DetectKind(r.Path), nil
	}
	k, ok := links.ParseKind(r.Kind)
	if !ok {
		return links.KindUnknown, perrors.New(perrors.ErrCodeInvalidKind, "unknown kind %q (available: dart, pubspec)", r.Kind)
	}
	return k, nil
}

func (s *Server) handleLinks(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	kind, err := req.kind()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	start := time.Now()
	observability.Scan().OnScanStart(ctx, req.Path, kind)
	ls := s.dispatcher.Scan(req.Text, kind, s.cfg)
	observability.Scan().OnScanComplete(ctx, req.Path, kind, len(ls), time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WriteJSON(pkgio.Results(req.Path, ls), w); err != nil {
		s.logger.Errorf("write response: %v", err)
	}
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"enableDartFiles":   s.cfg.EnableDartFiles,
		"enablePubspecFile": s.cfg.EnablePubspecFile,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, err error) {
	code := perrors.GetCode(err)
	if code == "" {
		code = perrors.ErrCodeInternal
	}
	writeJSON(w, perrors.HTTPStatus(err), map[string]string{
		"code":  string(code),
		"error": perrors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
