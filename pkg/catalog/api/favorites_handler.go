package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/yesigotthis/adhd-hub/pkg/auth"
	"github.com/yesigotthis/adhd-hub/pkg/favorites"
)

// sessionHeader identifies anonymous sessions that carry no token.
const sessionHeader = "X-Session-ID"

// FavoritesHandler serves the per-session favorites set.
type FavoritesHandler struct {
	store *favorites.Store
}

// NewFavoritesHandler creates a handler over the favorites store.
func NewFavoritesHandler(store *favorites.Store) *FavoritesHandler {
	return &FavoritesHandler{store: store}
}

// Routes returns the favorites routes.
func (h *FavoritesHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListFavorites)
	r.Put("/{contentID}", h.AddFavorite)
	r.Delete("/{contentID}", h.RemoveFavorite)

	return r
}

// sessionKey resolves the favorites owner: the token subject when
// present, otherwise an explicit session header.
func sessionKey(r *http.Request) (string, bool) {
	if claims := auth.FromContext(r.Context()); claims.Subject != "" {
		return claims.Subject, true
	}
	if sid := r.Header.Get(sessionHeader); sid != "" {
		return "anon:" + sid, true
	}
	return "", false
}

// ListFavorites returns the session's favorited content ids.
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	key, ok := sessionKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusBadRequest)
		return
	}

	ids := h.store.List(key)
	if ids == nil {
		ids = []uuid.UUID{}
	}
	render.JSON(w, r, ids)
}

// AddFavorite marks content as a favorite for the session.
func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	key, ok := sessionKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "contentID"))
	if err != nil {
		http.Error(w, "invalid content id", http.StatusBadRequest)
		return
	}

	h.store.Add(key, id)
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite clears a favorite for the session.
func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	key, ok := sessionKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "contentID"))
	if err != nil {
		http.Error(w, "invalid content id", http.StatusBadRequest)
		return
	}

	h.store.Remove(key, id)
	w.WriteHeader(http.StatusNoContent)
}
