package game

import (
	"strings"
	"testing"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	return NewMachine(newTestBank(t))
}

// settle ticks the machine until no transition is running.
func settle(t *testing.T, m *Machine) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !m.Snapshot().TransitionActive {
			return
		}
		m.Tick()
	}
	t.Fatal("transition never settled")
}

func typeWord(m *Machine, word string) {
	for _, ch := range word {
		m.HandleEvent(KeyPress(ch))
	}
}

// holdOut ticks through an active post-answer hold (and any transition that
// follows it).
func holdOut(t *testing.T, m *Machine) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		snap := m.Snapshot()
		if !snap.HoldActive && !snap.TransitionActive {
			return
		}
		m.Tick()
	}
	t.Fatal("hold never elapsed")
}

func startEasySession(t *testing.T, m *Machine) {
	t.Helper()
	settle(t, m)
	m.HandleAction(Action{Kind: ActionStartGame})
	settle(t, m)
	m.HandleAction(Action{Kind: ActionChooseDifficulty, Tier: DifficultyEasy})
	settle(t, m)
	if got := m.Snapshot().Screen; got != ScreenPlaying {
		t.Fatalf("screen %v, want PLAYING", got)
	}
}

func TestMachine_InitialFadeInBlocksInput(t *testing.T) {
	m := newTestMachine(t)
	snap := m.Snapshot()
	if snap.Screen != ScreenMenu {
		t.Fatalf("initial screen %v, want MENU", snap.Screen)
	}
	if !snap.TransitionActive {
		t.Fatal("initial entry should fade in")
	}
	if snap.Overlay != 1 {
		t.Errorf("initial overlay %v, want 1", snap.Overlay)
	}

	// Escape during the fade is ignored; the machine must not quit.
	m.HandleEvent(Event{Kind: EventKeyEscape})
	if m.Done() {
		t.Fatal("escape during transition should be ignored")
	}

	settle(t, m)
	if got := m.Snapshot().Overlay; got != 0 {
		t.Errorf("overlay after settle %v, want 0", got)
	}
}

func TestMachine_MenuToSettingsToPlaying(t *testing.T) {
	m := newTestMachine(t)
	settle(t, m)

	if topics := m.HandleAction(Action{Kind: ActionStartGame}); len(topics) == 0 {
		t.Fatal("start action should be accepted on the menu")
	}
	if got := m.Snapshot().Screen; got != ScreenMenu {
		t.Errorf("screen should not change before the fade completes, got %v", got)
	}
	settle(t, m)
	if got := m.Snapshot().Screen; got != ScreenSettings {
		t.Fatalf("screen %v, want SETTINGS", got)
	}

	m.HandleAction(Action{Kind: ActionChooseDifficulty, Tier: DifficultyEasy})
	settle(t, m)

	snap := m.Snapshot()
	if snap.Screen != ScreenPlaying {
		t.Fatalf("screen %v, want PLAYING", snap.Screen)
	}
	if snap.Session == nil {
		t.Fatal("session should exist")
	}
	if snap.Session.Difficulty != DifficultyEasy {
		t.Errorf("difficulty %v, want EASY", snap.Session.Difficulty)
	}
	if snap.Session.RoundsTotal != 10 {
		t.Errorf("rounds total %d, want 10", snap.Session.RoundsTotal)
	}
	if snap.Round == nil {
		t.Fatal("round should exist")
	}
	if snap.Round.Index != 1 {
		t.Errorf("round index %d, want 1", snap.Round.Index)
	}
	if len(snap.Round.Letters) == 0 {
		t.Error("round should expose scrambled letters")
	}
}

func TestMachine_ActionDuringTransitionIgnored(t *testing.T) {
	m := newTestMachine(t)
	settle(t, m)
	m.HandleAction(Action{Kind: ActionStartGame})
	if topics := m.HandleAction(Action{Kind: ActionStartGame}); topics != nil {
		t.Error("action during transition should be ignored")
	}
	settle(t, m)
	if got := m.Snapshot().Screen; got != ScreenSettings {
		t.Errorf("screen %v, want SETTINGS", got)
	}
}

func TestMachine_ActionsInvalidForScreenIgnored(t *testing.T) {
	m := newTestMachine(t)
	settle(t, m)
	if topics := m.HandleAction(Action{Kind: ActionChooseDifficulty, Tier: DifficultyHard}); topics != nil {
		t.Error("difficulty choice on the menu should be ignored")
	}
	if topics := m.HandleAction(Action{Kind: ActionPlayAgain}); topics != nil {
		t.Error("play-again on the menu should be ignored")
	}
	if got := m.Snapshot().Screen; got != ScreenMenu {
		t.Errorf("screen %v, want MENU", got)
	}
}

func TestMachine_AnswerBuffer(t *testing.T) {
	m := newTestMachine(t)
	startEasySession(t, m)

	// Backspace on an empty buffer is a no-op, repeatedly.
	m.HandleEvent(Event{Kind: EventKeyBackspace})
	m.HandleEvent(Event{Kind: EventKeyBackspace})
	if got := m.Snapshot().Answer; got != "" {
		t.Errorf("answer %q, want empty", got)
	}

	// Letters are folded to lowercase; non-letters are dropped.
	typeWord(m, "Go3 X!")
	if got := m.Snapshot().Answer; got != "gox" {
		t.Errorf("answer %q, want gox", got)
	}

	m.HandleEvent(Event{Kind: EventKeyBackspace})
	if got := m.Snapshot().Answer; got != "go" {
		t.Errorf("answer after backspace %q, want go", got)
	}

	// Submitting an empty buffer is a no-op.
	m.HandleEvent(Event{Kind: EventKeyBackspace})
	m.HandleEvent(Event{Kind: EventKeyBackspace})
	if topics := m.HandleEvent(Event{Kind: EventKeySubmit}); topics != nil {
		t.Error("empty submit should be ignored")
	}
}

func TestMachine_CorrectAnswer(t *testing.T) {
	m := newTestMachine(t)
	startEasySession(t, m)

	// Uppercase submission still matches: comparison is case-insensitive.
	typeWord(m, strings.ToUpper(m.round.Word))
	topics := m.HandleEvent(Event{Kind: EventKeySubmit})
	found := false
	for _, topic := range topics {
		if topic == TopicEffectSuccess {
			found = true
		}
	}
	if !found {
		t.Errorf("topics %v should include %q", topics, TopicEffectSuccess)
	}

	snap := m.Snapshot()
	if snap.Session.Score != 1 {
		t.Errorf("score %d, want 1", snap.Session.Score)
	}
	if snap.Session.Stats.CorrectAnswers != 1 || snap.Session.Stats.CurrentStreak != 1 {
		t.Errorf("stats %+v, want one correct and streak 1", snap.Session.Stats)
	}
	if !snap.HoldActive {
		t.Fatal("post-answer hold should be active")
	}
	for _, l := range snap.Round.Letters {
		if l.State != LetterSuccess {
			t.Errorf("letter state %v, want success", l.State)
		}
	}
	if len(snap.Effects) != 1 || snap.Effects[0].Kind != EffectSuccess {
		t.Errorf("effects %+v, want one success effect", snap.Effects)
	}
	if snap.Effects[0].Word != "" {
		t.Error("success effect must not reveal the word")
	}

	// Input is ignored while the hold runs.
	typeWord(m, "zz")
	if got := m.Snapshot().Answer; got == "zz" {
		t.Error("typing during the hold should be ignored")
	}

	holdOut(t, m)
	after := m.Snapshot()
	if after.Round.Index != 2 {
		t.Errorf("round index after hold %d, want 2", after.Round.Index)
	}
	if after.Answer != "" {
		t.Errorf("answer after advance %q, want empty", after.Answer)
	}
	for _, l := range after.Round.Letters {
		if l.State != LetterNormal {
			t.Errorf("new round letter state %v, want normal", l.State)
		}
	}
}

func TestMachine_IncorrectAnswer(t *testing.T) {
	m := newTestMachine(t)
	startEasySession(t, m)
	word := m.round.Word

	typeWord(m, "definitelywrong")
	topics := m.HandleEvent(Event{Kind: EventKeySubmit})
	found := false
	for _, topic := range topics {
		if topic == TopicEffectError {
			found = true
		}
	}
	if !found {
		t.Errorf("topics %v should include %q", topics, TopicEffectError)
	}

	snap := m.Snapshot()
	if snap.Session.Stats.IncorrectAnswers != 1 {
		t.Errorf("incorrect %d, want 1", snap.Session.Stats.IncorrectAnswers)
	}
	if snap.Session.Stats.CurrentStreak != 0 {
		t.Errorf("streak %d, want 0", snap.Session.Stats.CurrentStreak)
	}
	if snap.Session.Score != 0 {
		t.Errorf("score %d, want 0", snap.Session.Score)
	}
	if snap.ShakeTicks == 0 {
		t.Error("wrong answer should start the input shake")
	}
	if len(snap.Effects) != 1 || snap.Effects[0].Kind != EffectError {
		t.Fatalf("effects %+v, want one error effect", snap.Effects)
	}
	if snap.Effects[0].Word != word {
		t.Errorf("error effect word %q, want %q (revealed for display)", snap.Effects[0].Word, word)
	}

	holdOut(t, m)
	if got := m.Snapshot().Round.Index; got != 2 {
		t.Errorf("round index after error hold %d, want 2", got)
	}
}

func TestMachine_StreakResetDoesNotLowerBest(t *testing.T) {
	m := newTestMachine(t)
	startEasySession(t, m)

	for i := 0; i < 3; i++ {
		typeWord(m, m.round.Word)
		m.HandleEvent(Event{Kind: EventKeySubmit})
		holdOut(t, m)
	}
	typeWord(m, "nope")
	m.HandleEvent(Event{Kind: EventKeySubmit})
	holdOut(t, m)

	stats := m.Snapshot().Session.Stats
	if stats.BestStreak != 3 {
		t.Errorf("best streak %d, want 3", stats.BestStreak)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("current streak %d, want 0", stats.CurrentStreak)
	}
	if got := stats.Answered(); got != 4 {
		t.Errorf("answered %d, want 4", got)
	}
}

func TestMachine_PerfectPlaythroughReachesGameOver(t *testing.T) {
	m := newTestMachine(t)
	startEasySession(t, m)

	for i := 0; i < 10; i++ {
		typeWord(m, m.round.Word)
		m.HandleEvent(Event{Kind: EventKeySubmit})
		holdOut(t, m)
	}

	snap := m.Snapshot()
	if snap.Screen != ScreenGameOver {
		t.Fatalf("screen %v, want GAME_OVER", snap.Screen)
	}
	if snap.Session == nil {
		t.Fatal("session stats should survive into game over")
	}
	if snap.Session.Score != 10 {
		t.Errorf("score %d, want 10", snap.Session.Score)
	}
	if got := snap.Session.Stats.Accuracy(); got != 100 {
		t.Errorf("accuracy %v, want 100", got)
	}
	if snap.Session.Stats.BestStreak != 10 {
		t.Errorf("best streak %d, want 10", snap.Session.Stats.BestStreak)
	}
	if snap.Session.Stats.Answered() != snap.Session.Stats.TotalWords {
		t.Error("completed session must have answered == totalWords")
	}

	// Play again returns to difficulty select.
	m.HandleAction(Action{Kind: ActionPlayAgain})
	settle(t, m)
	if got := m.Snapshot().Screen; got != ScreenSettings {
		t.Errorf("screen %v, want SETTINGS", got)
	}
}

func TestMachine_EscapeAbandonsSession(t *testing.T) {
	m := newTestMachine(t)
	startEasySession(t, m)

	m.HandleEvent(Event{Kind: EventKeyEscape})
	settle(t, m)

	snap := m.Snapshot()
	if snap.Screen != ScreenMenu {
		t.Fatalf("screen %v, want MENU", snap.Screen)
	}
	if snap.Session != nil {
		t.Error("session should be discarded on return to menu")
	}
	if snap.Round != nil {
		t.Error("round should be cleared on return to menu")
	}
}

func TestMachine_EscapeOnMenuQuits(t *testing.T) {
	m := newTestMachine(t)
	settle(t, m)
	topics := m.HandleEvent(Event{Kind: EventKeyEscape})
	if !m.Done() {
		t.Fatal("escape on the menu should end the game")
	}
	if len(topics) != 1 || topics[0] != TopicEnded {
		t.Errorf("topics %v, want [%s]", topics, TopicEnded)
	}
	// Everything after done is inert.
	if topics := m.HandleAction(Action{Kind: ActionStartGame}); topics != nil {
		t.Error("actions after quit should be ignored")
	}
}

func TestMachine_QuitEventAlwaysWins(t *testing.T) {
	m := newTestMachine(t)
	// Still fading in: Quit (window close) must not be gated.
	m.HandleEvent(Event{Kind: EventQuit})
	if !m.Done() {
		t.Fatal("quit event should end the game even during a transition")
	}
}

func TestMachine_QuitActionOnlyOnMenu(t *testing.T) {
	m := newTestMachine(t)
	startEasySession(t, m)
	if topics := m.HandleAction(Action{Kind: ActionQuit}); topics != nil {
		t.Error("quit action should be ignored while playing")
	}
	if m.Done() {
		t.Fatal("machine should still be running")
	}
}

func TestMachine_PointerEventsAreInert(t *testing.T) {
	m := newTestMachine(t)
	settle(t, m)
	before := m.Snapshot()
	m.HandleEvent(Event{Kind: EventPointerMove, X: 0.3, Y: 0.4})
	m.HandleEvent(Event{Kind: EventPointerClick, X: 0.3, Y: 0.4})
	after := m.Snapshot()
	if before.Screen != after.Screen || after.TransitionActive {
		t.Error("pointer events must not change game state")
	}
}

func TestMachine_EffectsExpire(t *testing.T) {
	m := newTestMachine(t)
	startEasySession(t, m)
	typeWord(m, m.round.Word)
	m.HandleEvent(Event{Kind: EventKeySubmit})

	if len(m.Snapshot().Effects) != 1 {
		t.Fatal("expected an active effect")
	}
	strength := m.Snapshot().Effects[0].Strength
	m.Tick()
	if got := m.Snapshot().Effects[0].Strength; got >= strength {
		t.Errorf("effect strength should decay: %v -> %v", strength, got)
	}
	for i := 0; i < successEffectTicks+1; i++ {
		m.Tick()
	}
	if got := m.Snapshot().Effects; len(got) != 0 {
		t.Errorf("effects %+v, want none after lifetime", got)
	}
}
