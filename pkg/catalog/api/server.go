// Package api exposes the content catalog, assessments, and favorites
// over HTTP. Writes sit behind an admin role gate; reads and favorites
// only need token verification.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth"
	"github.com/go-chi/render"

	"github.com/yesigotthis/adhd-hub/pkg/assessments"
	"github.com/yesigotthis/adhd-hub/pkg/auth"
	"github.com/yesigotthis/adhd-hub/pkg/catalog"
	"github.com/yesigotthis/adhd-hub/pkg/favorites"
)

// Server wires the handlers into one router.
type Server struct {
	content     *ContentHandler
	assessments *AssessmentsHandler
	favorites   *FavoritesHandler
	tokenAuth   *jwtauth.JWTAuth
	devCORS     bool
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithDevCORS enables permissive CORS for local development.
func WithDevCORS() ServerOption {
	return func(s *Server) { s.devCORS = true }
}

// NewServer assembles the HTTP surface over its collaborators.
func NewServer(svc catalog.Service, tests *assessments.Catalog, favs *favorites.Store, tokenAuth *jwtauth.JWTAuth, opts ...ServerOption) *Server {
	s := &Server{
		content:     NewContentHandler(svc),
		assessments: NewAssessmentsHandler(tests),
		favorites:   NewFavoritesHandler(favs),
		tokenAuth:   tokenAuth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	if s.devCORS {
		r.Use(devCORS)
	}

	r.Get("/health", s.handleHealth)

	// Token parsing runs on every route; only writes require a role.
	r.Group(func(r chi.Router) {
		r.Use(auth.Verifier(s.tokenAuth))

		r.Get("/content", s.content.ListContent)
		r.Get("/content/{id}", s.content.GetContent)
		r.Post("/content/{id}/view", s.content.RecordView)

		r.Mount("/assessments", s.assessments.Routes())
		r.Mount("/favorites", s.favorites.Routes())

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin))

			r.Post("/upload", s.content.GetUploadURL)
			r.Post("/content", s.content.CreateContent)
			r.Put("/content/{id}", s.content.UpdateContent)
			r.Delete("/content/{id}", s.content.DeleteContent)
			r.Post("/content/{id}/publish", s.content.PublishContent)
			r.Post("/content/{id}/unpublish", s.content.UnpublishContent)
			r.Post("/content/{id}/archive", s.content.ArchiveContent)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func devCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+sessionHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
