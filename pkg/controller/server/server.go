package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded by the server, not reflected from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

const DefaultMaxBodySize = 1 << 20

type config struct {
	maxBodySize int64
}

type Option func(*config)

// WithMaxBodySize limits the size of request bodies in bytes
func WithMaxBodySize(size int64) Option {
	return func(cfg *config) {
		cfg.maxBodySize = size
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range options {
		opt(cfg)
	}

	h := &repoHandler{uc: uc, maxBodySize: cfg.maxBodySize}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Post("/repos", h.create)
	r.Get("/repos/{id}", h.get)
	r.Put("/repos/{id}", h.updateStars)
	r.Delete("/repos/{id}", h.delete)

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
