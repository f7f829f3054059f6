package game

import "wordarena/pkg/anim"

// Snapshot is the render-facing view of the machine for one frame. The
// presentation layer reads it and draws; nothing in it references pixels.
type Snapshot struct {
	Screen           Screen
	Done             bool
	Overlay          float64 // transition overlay opacity in [0,1]
	TransitionActive bool
	HoldActive       bool
	Answer           string
	ShakeTicks       int
	Session          *SessionSnapshot
	Round            *RoundSnapshot
	Effects          []EffectSnapshot
}

// SessionSnapshot is the stats view of the active session.
type SessionSnapshot struct {
	Difficulty   Difficulty
	Score        int
	RoundsTotal  int
	RoundsPlayed int
	Stats        Stats
}

// RoundSnapshot is the current round as the renderer sees it: the scrambled
// letters with their tile states, never the solution.
type RoundSnapshot struct {
	Index   int // 1-based for display
	Total   int
	Letters []LetterSnapshot
	Length  int
}

// LetterSnapshot is one scrambled-letter tile.
type LetterSnapshot struct {
	Char  rune
	State LetterState
}

// EffectSnapshot is an active visual-effect request. Strength eases from 1
// to 0 over the effect's lifetime, holding near full and then dropping off
// like a particle alpha fade.
type EffectSnapshot struct {
	Kind             EffectKind
	Word             string
	OriginX, OriginY float64
	Strength         float64
}

// Snapshot captures a consistent render-facing view of the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Screen:           m.screen,
		Done:             m.done,
		Overlay:          m.transition.Opacity(),
		TransitionActive: m.transition.Active(),
		HoldActive:       m.hold.Active(),
		Answer:           string(m.answer),
		ShakeTicks:       m.shake.Remaining(),
	}

	if m.session != nil {
		snap.Session = &SessionSnapshot{
			Difficulty:   m.session.Difficulty,
			Score:        m.session.Score,
			RoundsTotal:  m.session.RoundsTotal(),
			RoundsPlayed: m.session.Index,
			Stats:        m.session.Stats,
		}
	}
	if m.screen == ScreenPlaying && m.round.Word != "" {
		letters := make([]LetterSnapshot, len(m.letters))
		for i, r := range []rune(m.round.Scrambled) {
			letters[i] = LetterSnapshot{Char: r, State: m.letters[i]}
		}
		snap.Round = &RoundSnapshot{
			Index:   m.round.Index + 1,
			Total:   m.session.RoundsTotal(),
			Letters: letters,
			Length:  len(letters),
		}
	}
	if len(m.effects) > 0 {
		snap.Effects = make([]EffectSnapshot, 0, len(m.effects))
		for _, e := range m.effects {
			t := float64(e.life.Remaining()) / float64(e.total)
			snap.Effects = append(snap.Effects, EffectSnapshot{
				Kind:     e.kind,
				Word:     e.word,
				OriginX:  e.originX,
				OriginY:  e.originY,
				Strength: anim.EaseOutCubic(t),
			})
		}
	}
	return snap
}
