// Package http exposes the receptionist over a JSON API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
	"github.com/nexus-lab/frontdesk/pkg/service/importer"
	"github.com/nexus-lab/frontdesk/pkg/usecase"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
	"github.com/nexus-lab/frontdesk/pkg/utils/safe"
)

type Server struct {
	router    *chi.Mux
	uc        *usecase.UseCases
	knowledge interfaces.KnowledgeStore
	importer  *importer.Importer
}

type Options func(*Server)

// WithImporter enables the CSV customer import endpoint.
func WithImporter(im *importer.Importer) Options {
	return func(s *Server) {
		s.importer = im
	}
}

func New(uc *usecase.UseCases, knowledge interfaces.KnowledgeStore, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:    r,
		uc:        uc,
		knowledge: knowledge,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/respond", s.handleRespond)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleSaveProfile)

		r.Get("/sources", s.handleListSources)
		r.Post("/sources", s.handleAddSource)
		r.Delete("/sources/{sourceID}", s.handleDeleteSource)

		r.Post("/emails/draft", s.handleDraftEmail)
		r.Post("/emails/send", s.handleSendEmail)
		r.Post("/notes/summarize", s.handleSummarizeNotes)

		r.Post("/tenants", s.handleRegisterTenant)

		if s.importer != nil {
			r.Post("/customers/import", s.handleImportCustomers)
		}
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
