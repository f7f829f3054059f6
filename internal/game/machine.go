package game

import (
	"strings"
	"sync"
	"unicode"

	"wordarena/pkg/anim"
)

// Screen is the top-level state of the machine.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenSettings
	ScreenPlaying
	ScreenGameOver
	// ScreenPaused is reserved; nothing transitions into it.
	ScreenPaused
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "MENU"
	case ScreenSettings:
		return "SETTINGS"
	case ScreenPlaying:
		return "PLAYING"
	case ScreenGameOver:
		return "GAME_OVER"
	case ScreenPaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// LetterState drives per-tile coloring in the presentation layer.
type LetterState int

const (
	LetterNormal LetterState = iota
	LetterSuccess
	LetterError
)

// String returns the tile state name.
func (s LetterState) String() string {
	switch s {
	case LetterSuccess:
		return "success"
	case LetterError:
		return "error"
	default:
		return "normal"
	}
}

// EffectKind names a visual-effect request emitted on answer evaluation.
type EffectKind int

const (
	EffectSuccess EffectKind = iota
	EffectError
)

// String returns the effect name used in published event topics.
func (k EffectKind) String() string {
	if k == EffectError {
		return "error"
	}
	return "success"
}

// Timing constants in logical ticks at 60 ticks/s.
const (
	holdCorrectTicks   = 60 // post-answer hold after a correct answer (1s)
	holdIncorrectTicks = 40 // post-answer hold after a wrong answer (~667ms)
	shakeDurationTicks = 15 // input-box shake after a wrong answer
	successEffectTicks = 50
	errorEffectTicks   = 40
)

// effect is an active visual-effect request with a tick lifetime. Origin is
// in normalized [0,1] screen coordinates; the core knows no pixels.
type effect struct {
	kind             EffectKind
	word             string // correct word, revealed on error effects
	originX, originY float64
	life             anim.Countdown
	total            int
}

// Published event topics.
const (
	TopicSnapshot      = "snapshot"
	TopicEnded         = "ended"
	TopicEffectSuccess = "effect:success"
	TopicEffectError   = "effect:error"
)

// Machine is the top-level game controller: it owns the current screen, the
// active session and round, the answer buffer, the fade transition, and the
// post-answer hold. All mutable state is guarded by one mutex; the serving
// layer dispatches input and the fixed-rate tick through it, so input is
// always applied between ticks, never during one.
type Machine struct {
	mu sync.Mutex

	bank    *WordBank
	done    bool
	screen  Screen
	session *Session

	round   Round
	letters []LetterState
	answer  []rune

	transition anim.Transition
	hold       anim.Countdown
	shake      anim.Countdown
	effects    []effect
}

// NewMachine creates a machine on the menu screen, entered with the initial
// fade-in.
func NewMachine(bank *WordBank) *Machine {
	m := &Machine{bank: bank, screen: ScreenMenu}
	m.transition.FadeIn()
	return m
}

// Done reports whether an explicit quit ended the game.
func (m *Machine) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// HandleEvent dispatches one input event and returns the event topics to
// publish. While a transition is active all input except Quit is ignored,
// which keeps a stray keystroke from firing an action twice mid-cut.
func (m *Machine) HandleEvent(ev Event) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return nil
	}
	if ev.Kind == EventQuit {
		m.done = true
		return []string{TopicEnded}
	}
	if m.transition.Active() {
		return nil
	}

	switch ev.Kind {
	case EventKeyEscape:
		return m.escapeLocked()
	case EventKeyPress:
		if m.screen != ScreenPlaying || m.hold.Active() || !unicode.IsLetter(ev.Char) {
			return nil
		}
		m.answer = append(m.answer, unicode.ToLower(ev.Char))
		return []string{TopicSnapshot}
	case EventKeyBackspace:
		if m.screen != ScreenPlaying || m.hold.Active() || len(m.answer) == 0 {
			return nil
		}
		m.answer = m.answer[:len(m.answer)-1]
		return []string{TopicSnapshot}
	case EventKeySubmit:
		if m.screen != ScreenPlaying || m.hold.Active() || len(m.answer) == 0 {
			return nil
		}
		return m.evaluateLocked()
	case EventPointerMove, EventPointerClick:
		// Hover and hit-testing live in the presentation layer; clicks on
		// buttons come back as Actions.
		return nil
	}
	return nil
}

// HandleAction dispatches one button action. Actions not valid for the
// current screen, or arriving while a transition runs, are ignored. The
// returned topics are what the serving layer should publish.
func (m *Machine) HandleAction(a Action) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done || m.transition.Active() {
		return nil
	}

	switch a.Kind {
	case ActionQuit:
		if m.screen != ScreenMenu {
			return nil
		}
		m.done = true
		return []string{TopicEnded}
	case ActionStartGame, ActionOpenSettings:
		if m.screen != ScreenMenu {
			return nil
		}
		m.transition.Start(m.showSettingsLocked)
	case ActionChooseDifficulty:
		if m.screen != ScreenSettings {
			return nil
		}
		tier := a.Tier
		m.transition.Start(func() { m.startSessionLocked(tier) })
	case ActionBack:
		if m.screen != ScreenSettings && m.screen != ScreenGameOver {
			return nil
		}
		m.transition.Start(m.showMenuLocked)
	case ActionPlayAgain:
		if m.screen != ScreenGameOver {
			return nil
		}
		m.transition.Start(m.showSettingsLocked)
	default:
		return nil
	}
	return []string{TopicSnapshot}
}

// Tick advances one logical frame: the fade transition (which may enter the
// queued screen), the post-answer hold (which advances the round or ends the
// session when it elapses), the shake, and effect lifetimes. It returns the
// topics to publish and whether the machine is done.
func (m *Machine) Tick() ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return nil, true
	}

	changed := false
	if m.transition.Active() {
		m.transition.Tick()
		changed = true
	}
	if m.shake.Active() {
		m.shake.Tick()
		changed = true
	}
	if !m.transition.Active() && m.hold.Tick() {
		if m.screen == ScreenPlaying && m.session != nil {
			m.advanceLocked()
		}
		changed = true
	}
	if len(m.effects) > 0 {
		alive := m.effects[:0]
		for i := range m.effects {
			m.effects[i].life.Tick()
			if m.effects[i].life.Active() {
				alive = append(alive, m.effects[i])
			}
		}
		m.effects = alive
		changed = true
	}

	if !changed {
		return nil, m.done
	}
	return []string{TopicSnapshot}, m.done
}

// evaluateLocked scores the submitted answer against the current round,
// updates stats, queues the visual effect, and starts the post-answer hold.
func (m *Machine) evaluateLocked() []string {
	topics := []string{TopicSnapshot}
	if strings.EqualFold(string(m.answer), m.round.Word) {
		m.session.Score++
		m.session.Stats.RecordCorrect()
		m.setLettersLocked(LetterSuccess)
		m.spawnEffectLocked(EffectSuccess, "", 0.5, 0.5, successEffectTicks)
		m.hold.Start(holdCorrectTicks)
		return append(topics, TopicEffectSuccess)
	}
	m.session.Stats.RecordIncorrect()
	m.setLettersLocked(LetterError)
	m.shake.Start(shakeDurationTicks)
	m.spawnEffectLocked(EffectError, m.round.Word, 0.5, 0.6, errorEffectTicks)
	m.hold.Start(holdIncorrectTicks)
	return append(topics, TopicEffectError)
}

// advanceLocked moves to the next round after a hold, or fades to the game
// over screen when the sequence is exhausted.
func (m *Machine) advanceLocked() {
	round, ok := m.session.NextRound(m.bank)
	if !ok {
		m.transition.Start(m.showGameOverLocked)
		return
	}
	m.setRoundLocked(round)
}

func (m *Machine) escapeLocked() []string {
	switch m.screen {
	case ScreenMenu:
		m.done = true
		return []string{TopicEnded}
	case ScreenSettings, ScreenPlaying, ScreenGameOver:
		m.transition.Start(m.showMenuLocked)
		return []string{TopicSnapshot}
	}
	return nil
}

// Screen-enter helpers, invoked as transition actions under the lock held by
// Tick (or directly for the initial state).

func (m *Machine) showMenuLocked() {
	m.screen = ScreenMenu
	m.session = nil
	m.round = Round{}
	m.letters = nil
	m.answer = nil
	m.hold.Stop()
	m.shake.Stop()
	m.effects = nil
}

func (m *Machine) showSettingsLocked() {
	m.screen = ScreenSettings
}

func (m *Machine) showGameOverLocked() {
	m.screen = ScreenGameOver
}

func (m *Machine) startSessionLocked(tier Difficulty) {
	m.session = NewSession(m.bank, tier)
	m.screen = ScreenPlaying
	m.hold.Stop()
	m.shake.Stop()
	m.effects = nil
	if round, ok := m.session.NextRound(m.bank); ok {
		m.setRoundLocked(round)
	}
}

func (m *Machine) setRoundLocked(round Round) {
	m.round = round
	m.letters = make([]LetterState, len([]rune(round.Scrambled)))
	m.answer = nil
}

func (m *Machine) setLettersLocked(state LetterState) {
	for i := range m.letters {
		m.letters[i] = state
	}
}

func (m *Machine) spawnEffectLocked(kind EffectKind, word string, x, y float64, ticks int) {
	e := effect{kind: kind, word: word, originX: x, originY: y, total: ticks}
	e.life.Start(ticks)
	m.effects = append(m.effects, e)
}
