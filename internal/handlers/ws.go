package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"wordarena/internal/game"
	"wordarena/internal/viewmodel"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin browser UI; the cookie is the credential.
		return true
	},
}

// wsClientMessage is an inbound frame: either an input event or an action,
// mirroring the JSON API bodies.
type wsClientMessage struct {
	Type   string  `json:"type"` // "input" or "action"
	Kind   string  `json:"kind,omitempty"`
	Char   string  `json:"char,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Action string  `json:"action,omitempty"`
	Tier   string  `json:"tier,omitempty"`
}

// wsServerMessage is an outbound frame: the topic that fired and the fresh
// snapshot.
type wsServerMessage struct {
	Topic    string             `json:"topic"`
	Snapshot viewmodel.Snapshot `json:"snapshot"`
}

// ws serves a bidirectional stream: snapshots out on every published topic,
// input events and actions in. It is the low-latency alternative to the
// SSE-plus-POST pair.
func (h *GameHandler) ws(w http.ResponseWriter, r *http.Request) {
	id, m, ok := h.machine(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no session")
		return
	}
	hub := h.store.Broadcaster(id)
	if hub == nil {
		writeError(w, http.StatusNotFound, "no session")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	log.Info().Str("session", id).Msg("websocket connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	// Reader: apply client messages to the machine, publish the results.
	go func() {
		defer cancel()
		for {
			var msg wsClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			h.applyWSMessage(id, m, msg)
		}
	}()

	// Single writer: initial snapshot, then one frame per published topic.
	if err := conn.WriteJSON(wsServerMessage{Topic: game.TopicSnapshot, Snapshot: toSnapshotView(m.Snapshot())}); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case topic, open := <-sub:
			if !open {
				return
			}
			msg := wsServerMessage{Topic: topic, Snapshot: toSnapshotView(m.Snapshot())}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
			if topic == game.TopicEnded {
				return
			}
		}
	}
}

func (h *GameHandler) applyWSMessage(id string, m *game.Machine, msg wsClientMessage) {
	// A WebSocket player never re-hits the JSON API, so each inbound frame
	// has to count as session activity or the idle sweeper reaps mid-game.
	h.store.Touch(id)
	switch msg.Type {
	case "input":
		req := inputRequest{Kind: msg.Kind, Char: msg.Char, X: msg.X, Y: msg.Y}
		ev, err := req.toEvent()
		if err != nil {
			return
		}
		h.store.Publish(id, m.HandleEvent(ev)...)
	case "action":
		kind, err := game.ParseActionKind(msg.Action)
		if err != nil {
			return
		}
		act := game.Action{Kind: kind}
		if kind == game.ActionChooseDifficulty {
			tier, err := game.ParseDifficulty(msg.Tier)
			if err != nil {
				return
			}
			act.Tier = tier
		}
		h.store.Publish(id, m.HandleAction(act)...)
	}
}
