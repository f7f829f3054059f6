package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wordarena/internal/game"
	"wordarena/internal/viewmodel"
	"wordarena/views/pages"
)

type GameHandler struct {
	store   *game.Store
	limiter *RateLimiter
}

func NewGameHandler(store *game.Store, limiter *RateLimiter) *GameHandler {
	return &GameHandler{store: store, limiter: limiter}
}

func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Get("/play", h.gamePage)
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.state)
		r.With(h.limiter.Middleware).Post("/input", h.input)
		r.With(h.limiter.Middleware).Post("/action", h.action)
		r.Get("/stream", h.stream)
		r.Get("/ws", h.ws)
	})
}

// machine resolves the caller's session to its machine. A missing or stale
// cookie yields (_, _, false).
func (h *GameHandler) machine(r *http.Request) (string, *game.Machine, bool) {
	id := sessionIDFromRequest(r)
	if id == "" {
		return "", nil, false
	}
	m, ok := h.store.Get(id)
	return id, m, ok
}

func (h *GameHandler) gamePage(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.machine(r)
	if !ok {
		clearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	render(w, r, pages.GamePage(viewmodel.GamePage{Title: "Word Arena", SessionID: id}))
}

func (h *GameHandler) state(w http.ResponseWriter, r *http.Request) {
	_, m, ok := h.machine(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no session")
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotView(m.Snapshot()))
}

// inputRequest is one semantic input event from the client.
type inputRequest struct {
	Kind string  `json:"kind"`
	Char string  `json:"char,omitempty"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

func (h *GameHandler) input(w http.ResponseWriter, r *http.Request) {
	id, m, ok := h.machine(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no session")
		return
	}
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input payload")
		return
	}
	ev, err := req.toEvent()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	topics := m.HandleEvent(ev)
	h.store.Publish(id, topics...)
	writeJSON(w, http.StatusOK, toSnapshotView(m.Snapshot()))
}

func (req inputRequest) toEvent() (game.Event, error) {
	kind, err := game.ParseEventKind(req.Kind)
	if err != nil {
		return game.Event{}, err
	}
	ev := game.Event{Kind: kind, X: req.X, Y: req.Y}
	if kind == game.EventKeyPress {
		runes := []rune(req.Char)
		if len(runes) != 1 {
			return game.Event{}, fmt.Errorf("key event needs one character, got %q", req.Char)
		}
		ev.Char = runes[0]
	}
	return ev, nil
}

// actionRequest is one resolved button action from the client.
type actionRequest struct {
	Action string `json:"action"`
	Tier   string `json:"tier,omitempty"`
}

func (h *GameHandler) action(w http.ResponseWriter, r *http.Request) {
	id, m, ok := h.machine(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no session")
		return
	}
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid action payload")
		return
	}
	kind, err := game.ParseActionKind(req.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	act := game.Action{Kind: kind}
	if kind == game.ActionChooseDifficulty {
		tier, err := game.ParseDifficulty(req.Tier)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		act.Tier = tier
	}
	topics := m.HandleAction(act)
	if len(topics) > 0 {
		log.Debug().Str("session", id).Str("action", req.Action).Msg("action accepted")
	}
	h.store.Publish(id, topics...)
	writeJSON(w, http.StatusOK, toSnapshotView(m.Snapshot()))
}

// stream pushes published event topics to the client over SSE; the client
// refetches state (or reads the WebSocket) when one arrives.
func (h *GameHandler) stream(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.machine(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no session")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	hub := h.store.Broadcaster(id)
	if hub == nil {
		writeError(w, http.StatusNotFound, "no session")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	writeSSE(w, game.TopicSnapshot)
	flusher.Flush()

	keepalive := time.NewTicker(25 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case topic, open := <-sub:
			if !open {
				return
			}
			writeSSE(w, topic)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, topic string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", topic, topic)
}
