package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wordarena/internal/game"
	"wordarena/views/pages"
)

type HomeHandler struct {
	store *game.Store
}

func NewHomeHandler(store *game.Store) *HomeHandler {
	return &HomeHandler{store: store}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/sessions", h.createSession)
	r.NotFound(h.notFound)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.HomePage())
}

// createSession starts a fresh machine on the menu screen and hands the
// browser its session cookie.
func (h *HomeHandler) createSession(w http.ResponseWriter, r *http.Request) {
	id, _ := h.store.CreateSession()
	setSessionCookie(w, id)
	log.Info().Str("session", id).Msg("new game session")
	http.Redirect(w, r, "/play", http.StatusSeeOther)
}

func (h *HomeHandler) notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = pages.NotFoundPage().Render(r.Context(), w)
}
