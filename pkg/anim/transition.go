package anim

// DefaultFadeSpeed moves a full fade in roughly 13 ticks (~210ms at 60
// ticks/s), matching an overlay step of 20/255 per frame.
const DefaultFadeSpeed = 20.0 / 255.0

type transitionPhase int

const (
	phaseIdle transitionPhase = iota
	phaseFadingOut
	phaseFadingIn
)

// Transition runs a fade-out, invokes a queued action at full opacity, then
// automatically fades back in. While a fade is running in either direction
// the transition is active and callers are expected to suppress input.
// The zero value is idle with DefaultFadeSpeed.
type Transition struct {
	phase   transitionPhase
	opacity float64
	speed   float64
	action  func()
}

// Start begins a fade-out that will invoke action at full opacity. Requests
// made while a fade is already running are ignored and Start reports false;
// at most one action is ever queued.
func (t *Transition) Start(action func()) bool {
	if t.Active() {
		return false
	}
	t.phase = phaseFadingOut
	t.action = action
	return true
}

// FadeIn begins a fade-in from full opacity with no action. Used for the
// initial screen entry.
func (t *Transition) FadeIn() {
	t.phase = phaseFadingIn
	t.opacity = 1
	t.action = nil
}

// Tick advances the fade by one step. At full opacity the queued action is
// invoked once and the fade-in begins; at zero opacity the transition
// returns to idle.
func (t *Transition) Tick() {
	switch t.phase {
	case phaseFadingOut:
		t.opacity += t.step()
		if t.opacity >= 1 {
			t.opacity = 1
			action := t.action
			t.action = nil
			if action != nil {
				action()
			}
			t.phase = phaseFadingIn
		}
	case phaseFadingIn:
		t.opacity -= t.step()
		if t.opacity <= 0 {
			t.opacity = 0
			t.phase = phaseIdle
		}
	}
}

func (t *Transition) step() float64 {
	if t.speed > 0 {
		return t.speed
	}
	return DefaultFadeSpeed
}

// SetSpeed overrides the per-tick opacity step. Values <= 0 restore the
// default.
func (t *Transition) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	t.speed = speed
}

// Active reports whether a fade is running in either direction.
func (t *Transition) Active() bool {
	return t.phase != phaseIdle
}

// Opacity returns the overlay opacity in [0, 1].
func (t *Transition) Opacity() float64 {
	return Clamp01(t.opacity)
}
